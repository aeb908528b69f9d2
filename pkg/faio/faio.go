// 4 Jun 2025

// Package faio reads and writes fasta records with the biogo readers.
// The tools here never look at the sequence letters, only at the
// header, so everything is read as DNA without checking.
package faio

import (
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/andrew-torda/seqwrangle/pkg/seq/common"
)

// NewScanner returns a scanner over the fasta records in r.
func NewScanner(r io.Reader) *seqio.Scanner {
	return seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
}

// Each calls fn on every record in r, in order. It stops at the first
// error from the reader or from fn.
func Each(r io.Reader, fn func(s *linear.Seq) error) error {
	sc := NewScanner(r)
	for sc.Next() {
		if err := fn(sc.Seq().(*linear.Seq)); err != nil {
			return err
		}
	}
	return sc.Error()
}

// Header is the comment line without the ">". biogo splits it into ID
// and Desc. We put it back together.
func Header(s *linear.Seq) string {
	if s.Desc == "" {
		return s.ID
	}
	return s.ID + " " + s.Desc
}

// Tokens returns the header split on white space. Token 0 is the
// identifier.
func Tokens(s *linear.Seq) []string {
	return strings.Fields(Header(s))
}

// NewWriter returns a fasta writer with width characters per line.
// width < 1 gets the default.
func NewWriter(w io.Writer, width int) *fasta.Writer {
	if width < 1 {
		width = common.FaWidth
	}
	return fasta.NewWriter(w, width)
}
