// brokenio is a wrapper around an io.ReadCloser. It lets us make reads
// fail at a chosen point so we can check errors get passed back up
// instead of giving half a result.
// Typical use: You get a file pointer or a reader from a compressed
// source. You write
// reader = brokenio.NewReader(reader)
// reader.SetFailAfter(n)
// Everything then functions as before until n bytes have gone through.

package brokenio

import (
	"errors"
	"fmt"
	"io"
)

// ErrBroken is what a read returns once we have decided to fail.
var ErrBroken = errors.New("brokenio: artificial read failure")

// A BrknRdrClsr passes reads through to the wrapped reader until
// failAfter bytes have been delivered. If verbose is set, the amount
// of data is reported there when the file is closed.
type BrknRdrClsr struct {
	rdr_orig  io.ReadCloser // Wrapped reader
	failAfter int           // Negative means never fail
	nCalled   int
	nByte     int
	verbose   io.Writer // nil is quiet
}

// dfltReader sets default values for a new brokenio reader.
var dfltReader = BrknRdrClsr{
	failAfter: -1,
}

// SetVerbose says where Close reports. nil turns it off.
func (r *BrknRdrClsr) SetVerbose(w io.Writer) { r.verbose = w }

// SetFailAfter sets how many bytes we pass through before failing.
// Zero means the very first read fails.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// NewReader returns a new Reader - a wrapper around the old one
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	var rOut = dfltReader
	rOut.rdr_orig = rIn
	return &rOut
}

// NopCloser is io.NopCloser, here so callers wrapping a string reader
// do not need another import.
func NopCloser(r io.Reader) io.ReadCloser { return io.NopCloser(r) }

// Read wraps the original reader and sums up the amount of data that
// has gone through. The read that would cross failAfter is cut short
// and returns ErrBroken.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	r.nCalled++
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdr_orig.Read(p)
	r.nByte += n
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	if r.verbose != nil {
		fmt.Fprintln(r.verbose, "Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	return r.rdr_orig.Close()
}
