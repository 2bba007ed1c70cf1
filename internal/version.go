// Package internal holds build metadata shared by the project's
// command-line tools.
package internal

// Version is the current release version of the mrbt tools.
const Version = "0.1.0"
