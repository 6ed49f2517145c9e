// Package viz renders spectra, wavefunctions and sweeps for the terminal.
//
// Tables are styled with lipgloss; curves are drawn with asciigraph. All
// functions return strings and never write to the terminal themselves.
package viz
