// 9 Jun 2025
// Read a list of coverage values, one per line, print the smallest
// and draw a histogram.
// There is no window to pop up, so the plot goes to a file. The file
// name extension says what format.

package covhisto

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	DfltNBin   = 50
	DfltSize   = 6 // inches
	xLabel     = "Coverage"
	yLabel     = "# Transcripts"
	plotSuffix = "_histo.png"
)

// ErrEmpty means the input had no numbers in it.
var ErrEmpty = errors.New("no coverage values")

// histColor is blue at 75 % opacity.
var histColor = color.NRGBA{R: 0, G: 0, B: 255, A: 191}

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	NBin     int
	OutFname string  // plot file. Made from the input name if empty
	Width    float64 // inches
	Height   float64 // inches
	Title    string
	Verbose  bool
}

// ReadCoverage reads one integer per line. White space around the
// number is ignored, but an empty line is an error, as is anything
// that is not an integer.
func ReadCoverage(rdr io.Reader) ([]int, error) {
	var vals []int
	scanner := bufio.NewScanner(rdr)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		s := strings.TrimSpace(scanner.Text())
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		vals = append(vals, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, ErrEmpty
	}
	return vals, nil
}

// toValues converts to what the plotting and floats packages want.
// Above 2^53 the conversion rounds, which the plot does not notice.
func toValues(vals []int) plotter.Values {
	v := make(plotter.Values, len(vals))
	for i, n := range vals {
		v[i] = float64(n)
	}
	return v
}

// Min returns the smallest value. vals must not be empty.
// It stays on ints so the printed value is exact.
func Min(vals []int) int {
	return slices.Min(vals)
}

// NewPlot builds the histogram with nbin bins.
func NewPlot(vals []int, nbin int, title string) (*plot.Plot, *plotter.Histogram, error) {
	if len(vals) == 0 {
		return nil, nil, ErrEmpty
	}
	if nbin < 1 {
		nbin = DfltNBin
	}
	h, err := plotter.NewHist(toValues(vals), nbin)
	if err != nil {
		return nil, nil, err
	}
	if len(h.Bins) != nbin {
		flatBins(h, vals[0], len(vals), nbin)
	}
	h.FillColor = histColor
	h.LineStyle.Width = 0

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(h)
	return p, h, nil
}

// flatBins is for when all values are the same and plotter gives us
// a single bin. Spread nbin bins over x-0.5 to x+0.5 and put the
// weight in the middle one.
func flatBins(h *plotter.Histogram, x, n, nbin int) {
	w := 1 / float64(nbin)
	xmin := float64(x) - 0.5
	h.Bins = make([]plotter.HistogramBin, nbin)
	for i := range h.Bins {
		h.Bins[i].Min = xmin + float64(i)*w
		h.Bins[i].Max = xmin + float64(i+1)*w
	}
	h.Bins[nbin/2].Weight = float64(n)
	h.Width = w
}

// PlotFname is where the plot goes if the user did not say.
// "data/cov.txt" becomes "data/cov_histo.png".
func PlotFname(infile string) string {
	ext := filepath.Ext(infile)
	return strings.TrimSuffix(infile, ext) + plotSuffix
}

// Mymain reads infile, writes the minimum to w and saves the plot.
func Mymain(flags *CmdFlag, infile string, w io.Writer, logger *log.Logger) error {
	fp, err := os.Open(infile)
	if err != nil {
		return err
	}
	defer fp.Close()
	vals, err := ReadCoverage(fp)
	if err != nil {
		return fmt.Errorf("%s: %w", infile, err)
	}
	if _, err := fmt.Fprintln(w, "Minimum coverage:", Min(vals)); err != nil {
		return err
	}
	v := toValues(vals)
	logger.Debug("coverage", "mean", floats.Sum(v)/float64(len(v)), "max", floats.Max(v))

	p, h, err := NewPlot(vals, flags.NBin, flags.Title)
	if err != nil {
		return err
	}
	outfile := flags.OutFname
	if outfile == "" {
		outfile = PlotFname(infile)
	}
	width, height := flags.Width, flags.Height
	if width <= 0 {
		width = DfltSize
	}
	if height <= 0 {
		height = DfltSize
	}
	if err := p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, outfile); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	logger.Info("wrote histogram", "file", outfile, "values", len(vals), "bins", len(h.Bins))
	return nil
}
