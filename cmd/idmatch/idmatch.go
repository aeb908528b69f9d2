// 5 Jun 2025

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/seqwrangle/pkg/cmdlog"
	"github.com/andrew-torda/seqwrangle/pkg/idmatch"
	. "github.com/andrew-torda/seqwrangle/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] file.bed")
	flag.PrintDefaults()
}

func main() {
	var flags idmatch.CmdFlag
	flag.StringVar(&flags.Results, "r", idmatch.DfltResults, "results file to search in")
	flag.BoolVar(&flags.Exact, "x", false, "match whole fields, not any substring")
	flag.BoolVar(&flags.StrictBed, "b", false, "strict bed4 parsing")
	flag.BoolVar(&flags.Verbose, "v", false, "verbose, list the rows that do not match")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(ExitUsageError)
	}
	logger := cmdlog.New(os.Args[0], flags.Verbose)
	err := idmatch.Mymain(&flags, flag.Arg(0), os.Stdout, logger)
	switch {
	case errors.Is(err, idmatch.ErrNoBed):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	case err != nil:
		logger.Error("fatal", "err", err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
