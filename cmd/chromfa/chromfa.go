// 10 Jun 2025

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/seqwrangle/pkg/chromfa"
	"github.com/andrew-torda/seqwrangle/pkg/cmdlog"
	. "github.com/andrew-torda/seqwrangle/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] genome.fa.gz chromosome")
	flag.PrintDefaults()
}

func mymain() int {
	var flags chromfa.CmdFlag
	flag.StringVar(&flags.Assembly, "a", chromfa.DfltAssembly, "assembly name in headers")
	flag.BoolVar(&flags.Plain, "p", false, "also accept uncompressed input")
	flag.IntVar(&flags.Width, "w", FaWidth, "sequence characters per output line")
	flag.BoolVar(&flags.Verbose, "v", false, "verbose")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		usage()
		return ExitUsageError
	}
	logger := cmdlog.New(os.Args[0], flags.Verbose)
	wOut := bufio.NewWriter(os.Stdout)
	err := chromfa.Mymain(&flags, flag.Arg(0), flag.Arg(1), wOut, logger)
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
