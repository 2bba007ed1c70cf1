package utils

import (
	"bytes"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
)

// WriteFile writes buf to a file whose path is indicated by filename.
// The file permissions are set to 0644.
func WriteFile(filename string, buf bytes.Buffer) {
	if _, err := os.Stat(filename); err == nil {
		log.Printf("%s already exists\n", filename)
		return
	}

	if err := ioutil.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		log.Printf(err.Error())
		return
	}
}

// ResolvePath returns the absolute path of file.
// This will use other as a base path if file is just a file name.
func ResolvePath(file, other string) string {
	if !filepath.IsAbs(file) {
		file = filepath.Join(filepath.Dir(other), file)
	}
	return file
}
