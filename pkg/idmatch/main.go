// 5 Jun 2025
// We have a bed file and a file of results. For each line of the bed
// file, make "identifier<tab>chromosome" and see if it appears in the
// results. Count how many do and do not.

package idmatch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/biogo/biogo/io/featio"
	"github.com/biogo/biogo/io/featio/bed"
	"github.com/charmbracelet/log"
)

// DfltResults is where we look for results if not told otherwise.
const DfltResults = "id_results.txt"

// ErrNoBed is the one error we check for and report nicely.
var ErrNoBed = errors.New("file doesn't match")

const (
	chromField = 0
	idField    = 3
	minField   = idField + 1
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Results   string // results file name
	Exact     bool   // match whole fields instead of any substring
	StrictBed bool   // parse bed with the biogo bed4 reader
	Verbose   bool
}

// Counts is what we report at the end. Match + Mismatch == Total.
type Counts struct {
	Match    int
	Mismatch int
	Total    int
}

func (c Counts) String() string {
	return fmt.Sprintf("match: %d\nmismatch: %d\ntotal: %d\n", c.Match, c.Mismatch, c.Total)
}

func (c *Counts) add(found bool) {
	if found {
		c.Match++
	} else {
		c.Mismatch++
	}
	c.Total++
}

var tabRun = regexp.MustCompile(`\t+`)

// SplitRow splits a bed line on runs of tabs, after removing the line
// terminator.
func SplitRow(line string) []string {
	line = strings.TrimRight(line, "\r\n")
	return tabRun.Split(line, -1)
}

// SearchKey is the string we look for, "identifier\tchromosome".
func SearchKey(fields []string) (string, error) {
	if len(fields) < minField {
		return "", fmt.Errorf("bed row has %d fields, need at least %d", len(fields), minField)
	}
	return fields[idField] + "\t" + fields[chromField], nil
}

// skipLine is true for blank and header lines.
func skipLine(line string) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}
	for _, p := range []string{"#", "track", "browser"} {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// Count goes through the bed rows in rdr and looks each one up.
// A row we cannot make a key from is fatal.
func Count(rdr io.Reader, lkp Lookup, logger *log.Logger) (Counts, error) {
	var c Counts
	scanner := bufio.NewScanner(rdr)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := scanner.Text()
		if skipLine(line) {
			continue
		}
		key, err := SearchKey(SplitRow(line))
		if err != nil {
			return c, fmt.Errorf("line %d: %w", lineNum, err)
		}
		found := lkp.Has(key)
		if !found {
			logger.Debug("no match", "key", strings.Replace(key, "\t", " ", 1), "line", lineNum)
		}
		c.add(found)
	}
	return c, scanner.Err()
}

// CountBed4 is Count, but the bed file is read by the biogo bed
// reader, so start and end must be numbers and fields are separated
// by exactly one tab.
func CountBed4(rdr io.Reader, lkp Lookup, logger *log.Logger) (Counts, error) {
	var c Counts
	br, err := bed.NewReader(rdr, minField)
	if err != nil {
		return c, err
	}
	sc := featio.NewScanner(br)
	for sc.Next() {
		f := sc.Feat().(*bed.Bed4)
		key := f.FeatName + "\t" + f.Chrom
		found := lkp.Has(key)
		if !found {
			logger.Debug("no match", "id", f.FeatName, "chrom", f.Chrom)
		}
		c.add(found)
	}
	if err := sc.Error(); err != nil {
		return c, fmt.Errorf("reading bed: %w", err)
	}
	return c, nil
}

// Mymain checks the bed file is there, reads up the results once and
// then counts. The counts go to w.
func Mymain(flags *CmdFlag, bedFname string, w io.Writer, logger *log.Logger) error {
	if _, err := os.Stat(bedFname); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNoBed, bedFname)
	}
	resFname := flags.Results
	if resFname == "" {
		resFname = DfltResults
	}
	res, err := OpenResults(resFname, flags.Exact)
	if err != nil {
		return err
	}
	defer res.Close()
	if flags.Exact {
		logger.Debug("indexed results", "file", resFname, "keys", res.NKeys())
	}

	fp, err := os.Open(bedFname)
	if err != nil {
		return err
	}
	defer fp.Close()

	var c Counts
	if flags.StrictBed {
		c, err = CountBed4(fp, res, logger)
	} else {
		c, err = Count(fp, res, logger)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", bedFname, err)
	}
	_, err = fmt.Fprint(w, c)
	return err
}
