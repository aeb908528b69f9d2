// 6 Jun 2025

package cleanfa

import "strings"

// UnkGene is the gene name when the header does not have one.
const UnkGene = "unk_gene"

const (
	genePrefix = "gene"
	genePos    = 3 // where Ensembl puts gene:ENSG...
)

// geneVal returns what follows the first colon in tok, up to any
// second colon. ok is false if tok does not start with genePrefix or
// has no colon.
func geneVal(tok string) (string, bool) {
	if !strings.HasPrefix(tok, genePrefix) {
		return "", false
	}
	parts := strings.Split(tok, ":")
	if len(parts) < 2 {
		return "", false
	}
	return parts[1], true
}

// GeneID looks for the gene in two steps. First the token at
// position 3. If that is not a gene token, the last gene token
// anywhere in the header, so "gene:G2 gene_symbol:ABC" gives ABC.
// ok is false if neither step finds one.
func GeneID(tokens []string) (gene string, ok bool) {
	if len(tokens) > genePos {
		if gene, ok = geneVal(tokens[genePos]); ok {
			return gene, true
		}
	}
	for _, tok := range tokens {
		if g, found := geneVal(tok); found {
			gene, ok = g, true
		}
	}
	return gene, ok
}

// Gene is GeneID with UnkGene when nothing is found.
func Gene(tokens []string) string {
	if gene, ok := GeneID(tokens); ok {
		return gene
	}
	return UnkGene
}

// Transcript is the first token of the header.
func Transcript(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}

// NewID is the identifier we write, transcript_gene.
func NewID(tokens []string) string {
	return Transcript(tokens) + "_" + Gene(tokens)
}
