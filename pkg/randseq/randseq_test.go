// 31 July 2020

package randseq_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/seqwrangle/pkg/randseq"
)

func TestSimple(t *testing.T) {
	var sb strings.Builder
	args := randseq.RandSeqArgs{
		Wrtr:   &sb,
		Nseq:   500,
		MinLen: 10,
		MaxLen: 300,
		NoGene: 7,
	}
	recs, err := randseq.RandSeqMain(&args)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(sb.String(), ">"); n != args.Nseq {
		t.Fatal("count >, got ", n, "expected", args.Nseq)
	}
	if len(recs) != args.Nseq {
		t.Fatal("got", len(recs), "records back")
	}
	for i, r := range recs {
		if r.Len < args.MinLen || r.Len > args.MaxLen {
			t.Errorf("seq %d length %d out of range", i, r.Len)
		}
		if noGene := (i+1)%args.NoGene == 0; noGene != (r.Gene == "") {
			t.Errorf("seq %d gene \"%s\"", i, r.Gene)
		}
	}
}

// TestSeed checks the same seed gives the same file
func TestSeed(t *testing.T) {
	var out [2]strings.Builder
	var recs [2][]randseq.Record
	for i := range out {
		args := randseq.RandSeqArgs{Iseed: 42, Wrtr: &out[i], Nseq: 20, MinLen: 5, MaxLen: 50}
		var err error
		if recs[i], err = randseq.RandSeqMain(&args); err != nil {
			t.Fatal(err)
		}
	}
	if out[0].String() != out[1].String() {
		t.Fatal("same seed, different output")
	}
	if diff := cmp.Diff(recs[0], recs[1]); diff != "" {
		t.Fatal(diff)
	}
}
