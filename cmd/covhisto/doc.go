// 9 Jun 2025
/*

covhisto reads coverage values, one integer per line, prints the
smallest and draws a histogram.

Usage:
 covhisto [options] coverage.txt

Flags:
  -H inches
    	Plot height. Default 6.
  -W inches
    	Plot width. Default 6.
  -n N
    	Number of bins. Default 50, whatever the range of the data.
  -o filename
    	Where to write the plot. The extension decides the format,
    	png, svg, pdf, eps, jpg or tif. Without this, coverage.txt
    	gives coverage_histo.png.
  -t title
  -v	Verbose.

The x axis is "Coverage" and the y axis "# Transcripts". Bars are
blue and partly transparent.

A line that is not an integer, including an empty line, stops the
program, as does a file with no numbers at all.
*/
package main
