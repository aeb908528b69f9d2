// 10 Jun 2025
// Pull the sequences for one chromosome out of a gzipped fasta file,
// like the Ensembl cdna files, where the header says
//   >ENST00000456328.2 cdna chromosome:GRCh38:1:11869:14409:1 gene:...

package chromfa

import (
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/seq/linear"
	"github.com/charmbracelet/log"

	"github.com/andrew-torda/seqwrangle/pkg/faio"
	"github.com/andrew-torda/seqwrangle/pkg/zwrap"
)

// DfltAssembly is the genome build we expect in headers.
const DfltAssembly = "GRCh38"

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Assembly string // GRCh38 if empty
	Plain    bool   // Accept uncompressed input too
	Width    int    // Output line width
	Verbose  bool
}

// Pattern is what must appear in a header for us to keep the sequence.
// The trailing colon stops chromosome 1 matching 10, 11, ...
func Pattern(assembly, chrom string) string {
	if assembly == "" {
		assembly = DfltAssembly
	}
	return "chromosome:" + assembly + ":" + chrom + ":"
}

// Extract copies the records in rdr whose header contains
// Pattern(assembly, chrom) to w, in order. It returns the number of
// records read and written.
func Extract(rdr io.Reader, w io.Writer, chrom string, flags *CmdFlag) (nIn, nOut int, err error) {
	pat := Pattern(flags.Assembly, chrom)
	fw := faio.NewWriter(w, flags.Width)
	err = faio.Each(rdr, func(s *linear.Seq) error {
		nIn++
		if !strings.Contains(faio.Header(s), pat) {
			return nil
		}
		nOut++
		_, err := fw.Write(s)
		return err
	})
	return nIn, nOut, err
}

// Mymain opens the gzipped infile and writes the chromosome's records
// to w.
func Mymain(flags *CmdFlag, infile, chrom string, w io.Writer, logger *log.Logger) error {
	fpz, err := zwrap.Open(infile, flags.Plain)
	if err != nil {
		return err
	}
	defer fpz.Close()
	nIn, nOut, err := Extract(fpz, w, chrom, flags)
	if err != nil {
		return fmt.Errorf("%s: %w", infile, err)
	}
	logger.Debug("finished", "pattern", Pattern(flags.Assembly, chrom), "read", nIn, "written", nOut)
	if nOut == 0 {
		logger.Warn("no sequences found", "chromosome", chrom, "assembly", flags.Assembly)
	}
	return nil
}
