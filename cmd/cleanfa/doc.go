// 6 Jun 2025
/*

cleanfa tidies up a fasta file of transcripts. Sequences shorter than
min_len are dropped. The rest are renamed to transcript_gene and the
comment is thrown away. The output goes to standard output and the
total length of the kept sequences to standard error.

Usage:
 cleanfa [options] infile.fa min_len

The input may be gzipped. Use - for standard input, which may also
be gzipped.

Flags:
  -s	Strict. A header with fewer than four words is an error.
  -v	Verbose. Say which sequences were dropped or had no gene.
  -w N
    	Write N sequence characters per line. Default 60.

The transcript is the first word of the header. The gene is normally
the fourth word, as in
 >ENST00000456328.2 cdna chromosome:GRCh38:1:11869:14409:1 gene:ENSG00000290825.1 ...
which gives ENST00000456328.2_ENSG00000290825.1. If the fourth word
does not start with "gene", we take the last word anywhere that does.
If there is none, the gene is called unk_gene.

Running cleanfa on its own output works, but is not a no-op. Every
name gets _unk_gene added.
*/
package main
