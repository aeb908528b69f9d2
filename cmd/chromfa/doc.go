// 10 Jun 2025
/*

chromfa writes the sequences from one chromosome in a gzipped fasta
file to standard output.

Usage:
 chromfa [options] genome.fa.gz chromosome

Flags:
  -a name
    	Assembly name, default GRCh38.
  -p	Also read uncompressed files.
  -v	Verbose. Report how many sequences were read and written.
  -w N
    	Write N sequence characters per line. Default 60.

A sequence is kept if its header contains
 chromosome:GRCh38:<chromosome>:
so "chromfa cdna.fa.gz 1" keeps chromosome 1, but not 10 or 11.
Sequences on scaffolds, from other assemblies, or with headers in
some other style are skipped without complaint.
*/
package main
