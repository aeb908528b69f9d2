// 5 Jun 2025

package idmatch

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// Lookup answers whether a search key occurs in the results.
type Lookup interface {
	Has(key string) bool
}

// Results is the results file, read once.
// In substring mode we keep the file mapped and search the raw bytes.
// In exact mode we index every pair of neighbouring tab separated
// fields on every line and unmap straight away.
type Results struct {
	fp   *os.File
	mm   mmap.MMap
	keys map[string]struct{}
}

// OpenResults maps fname into memory. If exact is set, it builds the
// field pair index. A zero length file is fine and matches nothing.
func OpenResults(fname string, exact bool) (*Results, error) {
	var fp *os.File
	var err error
	var mm mmap.MMap
	if fp, err = os.Open(fname); err != nil {
		return nil, fmt.Errorf("results file: %w", err)
	}
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	if fi.Size() > 0 { // mmap refuses zero length files
		if mm, err = mmap.Map(fp, mmap.RDONLY, 0); err != nil {
			fp.Close()
			return nil, fmt.Errorf("mapping %s: %w", fname, err)
		}
	}
	r := &Results{fp: fp, mm: mm}
	if !exact {
		return r, nil
	}
	r.keys = fieldPairs(mm)
	if err := r.Close(); err != nil {
		return nil, err
	}
	return r, nil
}

// fieldPairs returns the set of "a\tb" for every pair of adjacent
// fields a, b on every line.
func fieldPairs(b []byte) map[string]struct{} {
	keys := make(map[string]struct{})
	for len(b) > 0 {
		var line []byte
		if i := bytes.IndexByte(b, '\n'); i == -1 {
			line, b = b, nil
		} else {
			line, b = b[:i], b[i+1:]
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})
		fields := strings.Split(string(line), "\t")
		for j := 0; j+1 < len(fields); j++ {
			keys[fields[j]+"\t"+fields[j+1]] = struct{}{}
		}
	}
	return keys
}

// Has reports whether key is in the results.
func (r *Results) Has(key string) bool {
	if r.keys != nil {
		_, ok := r.keys[key]
		return ok
	}
	return bytes.Contains(r.mm, []byte(key))
}

// NKeys is the size of the exact index. Zero in substring mode.
func (r *Results) NKeys() int { return len(r.keys) }

// Close unmaps and closes the file. It is safe to call twice. In exact
// mode the index stays usable after Close.
func (r *Results) Close() error {
	var err error
	if r.mm != nil {
		err = r.mm.Unmap()
		r.mm = nil
	}
	if r.fp != nil {
		if e := r.fp.Close(); err == nil {
			err = e
		}
		r.fp = nil
	}
	return err
}
