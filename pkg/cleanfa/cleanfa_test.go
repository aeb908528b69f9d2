package cleanfa_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/biogo/biogo/seq/linear"
	"github.com/google/go-cmp/cmp"
	gzip "github.com/klauspost/pgzip"

	. "github.com/andrew-torda/seqwrangle/pkg/cleanfa"
	"github.com/andrew-torda/seqwrangle/pkg/cmdlog"
	"github.com/andrew-torda/seqwrangle/pkg/faio"
	"github.com/andrew-torda/seqwrangle/pkg/randseq"
	"github.com/andrew-torda/seqwrangle/pkg/seq/common"
)

func TestGeneID(t *testing.T) {
	for _, tt := range []struct {
		hdr  string
		gene string
		ok   bool
	}{
		{"T1 cdna chromosome:GRCh38:1:1:9:1 gene:G1.1 gene_biotype:x", "G1.1", true},
		{"T1 cdna chromosome:GRCh38:1:1:9:1 other gene:G2 gene_symbol:ABC", "ABC", true},
		{"T1 cdna chromosome:GRCh38:1:1:9:1 other gene_symbol:ABC gene:G2", "G2", true},
		{"T1 cdna chromosome:GRCh38:1:1:9:1 gene_symbol:ABC gene:G2", "ABC", true}, // position 3 first
		{"T1 a b c gene:G5 genes gene:G6", "G6", true},
		{"T1 a b gene:G3:extra", "G3", true},
		{"T1 a b genes c", "", false},
		{"T1 gene:G4", "G4", true},
		{"T1_unk_gene", "", false},
		{"", "", false},
	} {
		gene, ok := GeneID(strings.Fields(tt.hdr))
		if gene != tt.gene || ok != tt.ok {
			t.Errorf("\"%s\" got (%s, %v) want (%s, %v)", tt.hdr, gene, ok, tt.gene, tt.ok)
		}
	}
	if g := Gene([]string{"T1", "a", "b", "c"}); g != UnkGene {
		t.Errorf("no gene token gave %s", g)
	}
	if id := NewID(strings.Fields("TX1 a b gene:G9")); id != "TX1_G9" {
		t.Errorf("new id %s", id)
	}
}

type rec struct {
	ID, Desc string
	Len      int
}

func reread(t *testing.T, s string) []rec {
	var ret []rec
	err := faio.Each(strings.NewReader(s), func(s *linear.Seq) error {
		ret = append(ret, rec{s.ID, s.Desc, s.Len()})
		return nil
	})
	if err != nil {
		t.Fatal("rereading output", err)
	}
	return ret
}

const smallSet = `>TX001 cdna chromosome:GRCh38:1:1:100:1 gene:ENSG001.2 gene_biotype:protein_coding
ACGTACGTAC
GTACGTACGT
>TX002 desc gene:ENSG001
ACGTA
>TX003 cdna chromosome:GRCh38:X:1:100:1 gene_biotype:lncRNA
ACGTACGTACGTACGTACGT
`

func TestClean(t *testing.T) {
	var b bytes.Buffer
	flags := CmdFlag{MinLen: 10}
	st, err := Clean(strings.NewReader(smallSet), &b, &flags, cmdlog.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if want := (Stats{NIn: 3, NKept: 2, TotalLen: 40}); st != want {
		t.Errorf("stats got %+v want %+v", st, want)
	}
	want := []rec{{"TX001_ENSG001.2", "", 20}, {"TX003_lncRNA", "", 20}}
	if diff := cmp.Diff(want, reread(t, b.String())); diff != "" {
		t.Error(diff)
	}
	if strings.Contains(b.String(), "cdna") {
		t.Error("description was not cleared")
	}
}

// TestShortDropped is the example with a 50 base sequence and a
// threshold of 100.
func TestShortDropped(t *testing.T) {
	var b bytes.Buffer
	in := ">TX002 desc gene:ENSG001\n" + strings.Repeat("A", 50) + "\n"
	st, err := Clean(strings.NewReader(in), &b, &CmdFlag{MinLen: 100}, cmdlog.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalLen != 0 || st.NKept != 0 || b.Len() != 0 {
		t.Errorf("short sequence kept: %+v \"%s\"", st, b.String())
	}
}

// TestRerun feeds cleaned output back in. It must not crash and the
// gene becomes unk_gene. It is not idempotent.
func TestRerun(t *testing.T) {
	var once, twice bytes.Buffer
	flags := CmdFlag{MinLen: 1}
	if _, err := Clean(strings.NewReader(smallSet), &once, &flags, cmdlog.Discard()); err != nil {
		t.Fatal(err)
	}
	if _, err := Clean(bytes.NewReader(once.Bytes()), &twice, &flags, cmdlog.Discard()); err != nil {
		t.Fatal("rerun on cleaned output", err)
	}
	got := reread(t, twice.String())
	if got[0].ID != "TX001_ENSG001.2_"+UnkGene {
		t.Errorf("rerun id %s", got[0].ID)
	}
	flags.Strict = true
	_, err := Clean(bytes.NewReader(once.Bytes()), &twice, &flags, cmdlog.Discard())
	if !errors.Is(err, ErrShortDesc) {
		t.Errorf("strict rerun gave %v", err)
	}
}

// TestRandom checks the length filter and the names over a larger
// generated set where we know the answer.
func TestRandom(t *testing.T) {
	var in, out bytes.Buffer
	args := randseq.RandSeqArgs{Iseed: 3, Wrtr: &in, Nseq: 300, MinLen: 1, MaxLen: 400, NoGene: 5}
	recs, err := randseq.RandSeqMain(&args)
	if err != nil {
		t.Fatal(err)
	}
	const minLen = 150
	var want []rec
	wantLen := 0
	for _, r := range recs {
		if r.Len < minLen {
			continue
		}
		gene := r.Gene
		if gene == "" {
			gene = "protein_coding" // first gene token is gene_biotype
		}
		want = append(want, rec{r.Transcript + "_" + gene, "", r.Len})
		wantLen += r.Len
	}
	st, err := Clean(&in, &out, &CmdFlag{MinLen: minLen}, cmdlog.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalLen != wantLen || st.NKept != len(want) {
		t.Errorf("got %+v, want total %d kept %d", st, wantLen, len(want))
	}
	if diff := cmp.Diff(want, reread(t, out.String())); diff != "" {
		t.Error(diff)
	}
}

func TestMymain(t *testing.T) {
	fname, err := common.WrtTemp(smallSet)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	var out, diag bytes.Buffer
	if err := Mymain(&CmdFlag{MinLen: 10}, fname, &out, &diag, cmdlog.Discard()); err != nil {
		t.Fatal(err)
	}
	if diag.String() != "Total len: 40\n" {
		t.Errorf("diagnostic output \"%s\"", diag.String())
	}
	if err := Mymain(&CmdFlag{}, fname+"_gone", &out, &diag, cmdlog.Discard()); err == nil {
		t.Error("missing input should fail")
	}
}

// TestStdin feeds gzipped fasta through standard input.
func TestStdin(t *testing.T) {
	var zb bytes.Buffer
	zw := gzip.NewWriter(&zb)
	if _, err := zw.Write([]byte(smallSet)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	fname, err := common.WrtTempBytes(zb.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	fp, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	stdin := os.Stdin
	os.Stdin = fp
	defer func() { os.Stdin = stdin }()

	var out, diag bytes.Buffer
	if err := Mymain(&CmdFlag{MinLen: 10}, "-", &out, &diag, cmdlog.Discard()); err != nil {
		t.Fatal(err)
	}
	if diag.String() != "Total len: 40\n" {
		t.Errorf("diagnostic output \"%s\"", diag.String())
	}
	want := []rec{{"TX001_ENSG001.2", "", 20}, {"TX003_lncRNA", "", 20}}
	if diff := cmp.Diff(want, reread(t, out.String())); diff != "" {
		t.Error(diff)
	}
}
