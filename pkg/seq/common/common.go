// 29 Apr 2020
// Things shared by all the commands. Exit codes and a helper that
// the tests use all over the place.

package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// FaWidth is the number of sequence characters per line when we write
// fasta format.
const FaWidth = 60

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	return WrtTempBytes([]byte(s))
}

// WrtTempBytes is WrtTemp for data which is not text, like gzipped
// input.
func WrtTempBytes(b []byte) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}

	if _, err := f_tmp.Write(b); err != nil {
		f_tmp.Close()
		return "", fmt.Errorf("writing to temp file %v: %w", f_tmp.Name(), err)
	}
	name := f_tmp.Name()
	if err := f_tmp.Close(); err != nil {
		return "", err
	}
	return name, nil
}

// DeferClose closes c and keeps the first error seen. Use it as
//     defer common.DeferClose(fp, &err)
// in functions with a named error return.
func DeferClose(c io.Closer, err *error) {
	if e := c.Close(); e != nil && *err == nil {
		*err = e
	}
}
