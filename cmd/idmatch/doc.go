// 5 Jun 2025
/*

idmatch reads a bed file and, for every row, checks if the feature name
and chromosome appear together in a results file. It prints how many
rows matched, how many did not and the total.

Usage:
 idmatch [options] file.bed

Flags:
  -b	Read the bed file strictly, as bed4. Start and end must be
  	numbers and fields are separated by single tabs.
  -r filename
    	The results file. Default is id_results.txt in the current
    	directory.
  -v	Verbose. Log each row that does not match.
  -x	Exact. Only match whole tab separated fields.

For a row
 chr1	100	200	TX001
we look for "TX001<tab>chr1" in the results file. Fields in the bed
file may be separated by more than one tab. Blank lines and lines
starting with #, track or browser are skipped.

By default the search is for the string anywhere in the results
file, so "xTX001<tab>chr1y" would count as a match. With -x, the two
words must be neighbouring fields on a line of the results file.

The results file is read once, whatever the size of the bed file.

If the bed file does not exist, we say so and stop.
*/
package main
