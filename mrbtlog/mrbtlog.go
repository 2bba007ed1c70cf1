// Package mrbtlog is the thin application-level wrapper mrbtctl logs
// through, built on top of utils/binutils's zap-backed Logger.
package mrbtlog

import "github.com/mrbt-go/mrbt/utils/binutils"

var std *binutils.Logger

// Init installs the process-wide logger returned by Get. Call it once,
// early in main, with the configuration loaded from the mrbtctl config
// file.
func Init(conf *binutils.LoggerConfig) {
	std = binutils.NewLogger(conf)
}

// Get returns the process-wide logger, falling back to a development
// logger if Init was never called.
func Get() *binutils.Logger {
	if std == nil {
		std = binutils.NewLogger(&binutils.LoggerConfig{Environment: "development"})
	}
	return std
}
