// Package dataprocessing implements the table transformations of the checkna
// pipeline.
//
// The pipeline reads two related BPS survey tables: a reference table (acuan)
// counting livestock-farming households per sub-region, and a derived table
// (turunan) carrying metrics computed from the same survey. Both are keyed by
// the kabupaten code (kab) and sub-region code (kec).
//
// Processing happens in three passes:
//
// FilterRegion: restricts a table to the rows of a single kabupaten,
// preserving row and column order.
//
// BuildTemplate: the masking rule. For every reference column of the form
// n_rtup_ternak_usaha_<animal>, derived columns naming the same animal and
// matching one of the configured keywords are overwritten with the "NA"
// sentinel in rows whose reference count lies strictly between the mask
// bounds. Cells outside those rows keep their original representation.
//
// RegionLabel: cleans the human-readable kabupaten name for use in the
// output file name.
package dataprocessing
