// 31 July 2020

/*

Randseq is for making random transcript sets for testing the code.
Usage:
	randseq [options] fname nseq minlen [maxlen]
will generate nseq sequences with lengths from minlen to maxlen and
write them to fname. Use - for standard output.

Headers look like Ensembl cdna files,
	>ENST00000000001.2 cdna chromosome:GRCh38:X:1234:1300:1 gene:ENSG00000012345.1 gene_biotype:protein_coding transcript_biotype:protein_coding

Flags:
	-a name
		assembly name in the chromosome token, default GRCh38
	-c list
		comma separated chromosomes to choose from
	-m
		move the gene token to the end of the header
	-n N
		leave the gene token out of every N'th sequence
	-r
		random number seed
	-z
		gzip the output, so it can be fed to chromfa

Sequence lines are broken at random places, so readers have to cope
with lines of any length.
*/
package main
