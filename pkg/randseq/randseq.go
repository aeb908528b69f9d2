// 31 July 2020
// Rewritten June 2025 to make transcript sets that look like the
// Ensembl cdna files, so the header parsing has something realistic
// to chew on.

package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
)

const (
	nPadWhite = 9 // About 1 in 9 characters becomes a line break
	dfltBuild = "GRCh38"
)

var letters = []byte{'A', 'C', 'G', 'T'}

// DfltChroms is used if RandSeqArgs.Chroms is empty.
var DfltChroms = []string{"1", "2", "X", "Y", "MT"}

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed  int64     // random number seed
	Wrtr   io.Writer // where we write to
	Build  string    // Assembly name in the chromosome token, GRCh38 by default
	Chroms []string  // Chromosomes to pick from
	Nseq   int       // number of sequences
	MinLen int       // Shortest sequence
	MaxLen int       // Longest sequence. If <= MinLen, all are MinLen
	NoGene int       // Every NoGene'th sequence has no gene token. 0 means never
	GeneAt bool      // Put the gene token somewhere other than position 3
}

// Record is what we say about each sequence we write, so tests can
// check against it.
type Record struct {
	Transcript string
	Gene       string // Empty if there is no gene token
	Chrom      string
	Len        int
}

// getseq returns a byte slice with a random sequence in it
func getseq(seqlen int, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	for i := range ret {
		ret[i] = letters[rnd.Intn(len(letters))]
	}
	return ret
}

// addNewlines breaks a sequence into lines of random length, like a
// badly behaved writer might.
func addNewlines(s []byte, rnd *rand.Rand) []byte {
	out := make([]byte, 0, len(s)+len(s)/nPadWhite+1)
	for i, c := range s {
		if i > 0 && rnd.Intn(nPadWhite) == 0 {
			out = append(out, '\n')
		}
		out = append(out, c)
	}
	return out
}

type item struct {
	hdr string
	seq []byte
}

// writeseq takes headers and sequences from a channel and writes them.
func writeseq(sChan <-chan item, wrtr io.Writer, wg *sync.WaitGroup, err *error) {
	defer wg.Done()
	for it := range sChan {
		if *err != nil {
			continue // drain the channel, so the sender does not block
		}
		if _, e := fmt.Fprintf(wrtr, ">%s\n%s\n", it.hdr, it.seq); e != nil {
			*err = e
		}
	}
}

// header builds the description line. The order of tokens is the
// Ensembl order, unless GeneAt is set, when the gene token is moved to
// the end.
func header(rec *Record, build string, start int, geneAt bool) string {
	chrTok := fmt.Sprintf("chromosome:%s:%s:%d:%d:1", build, rec.Chrom, start, start+rec.Len-1)
	tail := "gene_biotype:protein_coding transcript_biotype:protein_coding"
	switch {
	case rec.Gene == "":
		return fmt.Sprintf("%s cdna %s %s", rec.Transcript, chrTok, tail)
	case geneAt:
		return fmt.Sprintf("%s cdna %s %s gene:%s", rec.Transcript, chrTok, tail, rec.Gene)
	}
	return fmt.Sprintf("%s cdna %s gene:%s %s", rec.Transcript, chrTok, rec.Gene, tail)
}

// RandSeqMain writes random sequences to an io.Writer and returns a
// description of what it wrote.
func RandSeqMain(args *RandSeqArgs) ([]Record, error) {
	var wg sync.WaitGroup
	var werr error
	build := args.Build
	if build == "" {
		build = dfltBuild
	}
	chroms := args.Chroms
	if len(chroms) == 0 {
		chroms = DfltChroms
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	recs := make([]Record, 0, args.Nseq)
	sChan := make(chan item)
	wg.Add(1)
	go writeseq(sChan, args.Wrtr, &wg, &werr)
	for i := 0; i < args.Nseq; i++ {
		n := args.MinLen
		if args.MaxLen > args.MinLen {
			n += rnd.Intn(args.MaxLen - args.MinLen + 1)
		}
		rec := Record{
			Transcript: fmt.Sprintf("ENST%011d.%d", i+1, 1+rnd.Intn(3)),
			Chrom:      chroms[rnd.Intn(len(chroms))],
			Len:        n,
		}
		if args.NoGene == 0 || (i+1)%args.NoGene != 0 {
			rec.Gene = fmt.Sprintf("ENSG%011d.%d", rnd.Intn(100000), 1+rnd.Intn(3))
		}
		start := 1 + rnd.Intn(1000000)
		s := addNewlines(getseq(n, rnd), rnd)
		sChan <- item{header(&rec, build, start, args.GeneAt), s}
		recs = append(recs, rec)
	}
	close(sChan)
	wg.Wait()
	return recs, werr
}
