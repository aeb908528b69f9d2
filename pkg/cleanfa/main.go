// 6 Jun 2025
// Read a fasta file of transcripts. Throw away the short ones.
// Rename the rest to transcript_gene and throw away the rest of the
// comment. Tell the user how many bases we kept.

package cleanfa

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/seq/linear"
	"github.com/charmbracelet/log"

	"github.com/andrew-torda/seqwrangle/pkg/faio"
	"github.com/andrew-torda/seqwrangle/pkg/zwrap"
)

// ErrShortDesc is only returned in strict mode, when a header has
// fewer tokens than we need to find the gene by position.
var ErrShortDesc = errors.New("description has too few fields")

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	MinLen  int  // Drop sequences shorter than this
	Strict  bool // Headers with fewer than 4 tokens are an error
	Width   int  // Output line width
	Verbose bool
}

// Stats says what happened. TotalLen only counts the sequences we kept.
type Stats struct {
	NIn      int
	NKept    int
	TotalLen int
}

// Clean reads fasta from rdr and writes the cleaned sequences to w.
func Clean(rdr io.Reader, w io.Writer, flags *CmdFlag, logger *log.Logger) (Stats, error) {
	var st Stats
	fw := faio.NewWriter(w, flags.Width)
	err := faio.Each(rdr, func(s *linear.Seq) error {
		st.NIn++
		l := s.Len()
		if l < flags.MinLen {
			logger.Debug("too short", "id", s.ID, "len", l)
			return nil
		}
		tokens := faio.Tokens(s)
		if flags.Strict && len(tokens) <= genePos {
			return fmt.Errorf("%w: \"%s\"", ErrShortDesc, faio.Header(s))
		}
		if _, ok := GeneID(tokens); !ok {
			logger.Debug("no gene", "id", s.ID)
		}
		s.ID = NewID(tokens)
		s.Desc = ""
		if _, err := fw.Write(s); err != nil {
			return err
		}
		st.NKept++
		st.TotalLen += l
		return nil
	})
	return st, err
}

// Mymain opens the input, which may be gzipped, cleans it to wOut and
// writes the total length to wDiag. An infile of "-" is standard input,
// which may also be gzipped.
func Mymain(flags *CmdFlag, infile string, wOut, wDiag io.Writer, logger *log.Logger) error {
	var fpz *zwrap.FpGzip
	var err error
	if infile == "" || infile == "-" {
		infile = "stdin"
		fpz, err = zwrap.WrapStream(os.Stdin)
	} else {
		fpz, err = zwrap.Open(infile, true)
	}
	if err != nil {
		return err
	}
	logger.Debug("opened", "file", infile, "gzipped", fpz.Compressed())
	defer fpz.Close()

	st, err := Clean(fpz, wOut, flags, logger)
	if err != nil {
		return fmt.Errorf("%s: %w", infile, err)
	}
	logger.Debug("done", "read", st.NIn, "kept", st.NKept)
	_, err = fmt.Fprintf(wDiag, "Total len: %d\n", st.TotalLen)
	return err
}
