package sharedtest

import (
	"io/ioutil"
	"log"
	"os"
)

// WithTempFileContaining creates a temporary file with the given contents, passes its name to
// the given function, then ensures that the file is deleted.
func WithTempFileContaining(data []byte, f func(filename string)) {
	file, err := ioutil.TempFile("", "test")
	if err != nil {
		log.Fatalf("Can't create temp file: %s", err)
	}
	if _, err := file.Write(data); err != nil {
		log.Fatalf("Can't write temp file: %s", err)
	}
	_ = file.Close()
	defer (func() {
		_ = os.Remove(file.Name())
	})()
	f(file.Name())
}
