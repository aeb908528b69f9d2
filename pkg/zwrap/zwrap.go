// Package zwrap takes a file pointer and optionally wraps it so upon
// calling Close, the decompressor will be closed, followed by the
// underlying file.
// Decompression uses pgzip, which reads ahead in blocks on other
// cores. A whole genome is a few hundred MB compressed, so this is
// where the time goes.
package zwrap

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	gzip "github.com/klauspost/pgzip"
)

type FpGzip struct { // This is what we return.
	fp   io.ReadCloser
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying backing readCloser.
func (fc *FpGzip) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	return errors.Join(fc.zrdr.Close(), fc.fp.Close())
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.fp.Read(p)
}

// Compressed says if we are decompressing or just passing bytes through.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// Wrap takes a source like a file pointer and wraps it so the
// decompressing Read and Close will be called. If the source is not
// gzipped, we get an error back.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	var fpz FpGzip
	var err error
	fpz.fp = fp
	fpz.zrdr, err = gzip.NewReader(fpz.fp)
	return &fpz, err
}

// ReadSeekCloser is what WrapMaybe needs so it can rewind after
// peeking at the header.
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// WrapMaybe will decide if the underlying stream is compressed
// and wrap the file pointer if necessary.
// If you pass in something which can seek, you get back a ReadCloser
// which cannot seek.
func WrapMaybe(fpIn ReadSeekCloser) (*FpGzip, error) {
	if out, err := Wrap(fpIn); err == nil {
		return out, nil // It was compressed. Return compressed reader.
	}
	_, err := fpIn.Seek(0, io.SeekStart)
	r := &FpGzip{
		fp: fpIn, // Leave the zrdr implicitly nil
	}
	return r, err
}

// gzMagic starts every gzip member.
var gzMagic = []byte{0x1f, 0x8b}

// bufClose reads through a bufio.Reader but closes the original.
type bufClose struct {
	*bufio.Reader
	io.Closer
}

// WrapStream is WrapMaybe for sources that cannot seek, like standard
// input. It peeks at the first two bytes instead of rewinding. An
// empty stream is passed through as plain.
func WrapStream(fpIn io.ReadCloser) (*FpGzip, error) {
	br := bufio.NewReader(fpIn)
	magic, err := br.Peek(len(gzMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	fpz := &FpGzip{fp: bufClose{br, fpIn}}
	if !bytes.Equal(magic, gzMagic) {
		return fpz, nil
	}
	if fpz.zrdr, err = gzip.NewReader(br); err != nil {
		return nil, err
	}
	return fpz, nil
}

// Open opens a file for reading. If maybe is false, the file must be
// gzipped. If maybe is true, plain files are passed through.
func Open(fname string, maybe bool) (*FpGzip, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	var fpz *FpGzip
	if maybe {
		fpz, err = WrapMaybe(fp)
	} else {
		fpz, err = Wrap(fp)
	}
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return fpz, nil
}
