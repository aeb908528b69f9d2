// 31 July 2020

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	gzip "github.com/klauspost/pgzip"

	"github.com/andrew-torda/seqwrangle/pkg/randseq"
	. "github.com/andrew-torda/seqwrangle/pkg/seq/common"
)

// parseLen converts a command line argument to a positive integer.
func parseLen(s string) (int, error) {
	const emsg = "Failed converting %s to positive integer"
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf(emsg, s)
	}
	return int(n), nil
}

// run opens the output, compressed if asked, and writes the sequences.
func run(args *randseq.RandSeqArgs, fname string, zip bool) (err error) {
	var wrtr io.Writer = os.Stdout
	if fname != "-" && fname != "" {
		ft, e := os.Create(fname)
		if e != nil {
			return fmt.Errorf("File for output: %w", e)
		}
		defer DeferClose(ft, &err)
		wrtr = ft
	}
	if zip {
		zw := gzip.NewWriter(wrtr)
		defer DeferClose(zw, &err)
		wrtr = zw
	}
	args.Wrtr = wrtr
	_, err = randseq.RandSeqMain(args)
	return err
}

func mymain() int {
	f := flag.NewFlagSet("randseq", flag.ExitOnError)
	const iseed int64 = 1637
	var args randseq.RandSeqArgs
	var chroms string
	var zip bool

	f.StringVar(&args.Build, "a", "GRCh38", "assembly name in headers")
	f.StringVar(&chroms, "c", strings.Join(randseq.DfltChroms, ","), "comma separated chromosomes")
	f.IntVar(&args.NoGene, "n", 0, "leave the gene out of every n'th sequence")
	f.BoolVar(&args.GeneAt, "m", false, "move the gene token to the end of the header")
	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	f.BoolVar(&zip, "z", false, "gzip the output")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		return ExitUsageError
	}
	if f.NArg() < 3 || f.NArg() > 4 {
		fmt.Fprintln(f.Output(), "randseq [..] file nseq minlen [maxlen]")
		f.Usage()
		return ExitUsageError
	}
	args.Chroms = strings.Split(chroms, ",")

	var err error
	if args.Nseq, err = parseLen(f.Arg(1)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	if args.MinLen, err = parseLen(f.Arg(2)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	if f.NArg() == 4 {
		if args.MaxLen, err = parseLen(f.Arg(3)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return ExitFailure
		}
	}

	if err := run(&args, f.Arg(0), zip); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	return ExitSuccess
}

func main() {
	os.Exit(mymain())
}
