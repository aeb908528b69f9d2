// 9 Jun 2025

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/seqwrangle/pkg/cmdlog"
	"github.com/andrew-torda/seqwrangle/pkg/covhisto"
	. "github.com/andrew-torda/seqwrangle/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] coverage.txt")
	flag.PrintDefaults()
}

func main() {
	var flags covhisto.CmdFlag
	flag.IntVar(&flags.NBin, "n", covhisto.DfltNBin, "number of bins")
	flag.StringVar(&flags.OutFname, "o", "", "plot file name, default from input name")
	flag.Float64Var(&flags.Width, "W", covhisto.DfltSize, "plot width in inches")
	flag.Float64Var(&flags.Height, "H", covhisto.DfltSize, "plot height in inches")
	flag.StringVar(&flags.Title, "t", "", "plot title")
	flag.BoolVar(&flags.Verbose, "v", false, "verbose")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(ExitUsageError)
	}
	logger := cmdlog.New(os.Args[0], flags.Verbose)
	if err := covhisto.Mymain(&flags, flag.Arg(0), os.Stdout, logger); err != nil {
		logger.Error("fatal", "err", err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
