// 6 Jun 2025

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/andrew-torda/seqwrangle/pkg/cleanfa"
	"github.com/andrew-torda/seqwrangle/pkg/cmdlog"
	. "github.com/andrew-torda/seqwrangle/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] infile.fa min_len")
	flag.PrintDefaults()
}

func mymain() int {
	var flags cleanfa.CmdFlag
	flag.BoolVar(&flags.Strict, "s", false, "strict, fail on headers with fewer than 4 fields")
	flag.IntVar(&flags.Width, "w", FaWidth, "sequence characters per output line")
	flag.BoolVar(&flags.Verbose, "v", false, "verbose")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		usage()
		return ExitUsageError
	}
	var err error
	if flags.MinLen, err = strconv.Atoi(flag.Arg(1)); err != nil {
		fmt.Fprintln(os.Stderr, "min_len must be an integer, got", flag.Arg(1))
		usage()
		return ExitUsageError
	}
	logger := cmdlog.New(os.Args[0], flags.Verbose)

	wOut := bufio.NewWriter(os.Stdout)
	err = cleanfa.Mymain(&flags, flag.Arg(0), wOut, os.Stderr, logger)
	if e := wOut.Flush(); err == nil {
		err = e
	}
	if err != nil {
		logger.Error("fatal", "err", err)
		return ExitFailure
	}
	return ExitSuccess
}

func main() {
	os.Exit(mymain())
}
