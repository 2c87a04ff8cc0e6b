// Package dataset reads the cohort files the selection runs on and writes
// its output list.
//
// Every reader accepts plain or gzip-compressed input. Comma- and
// tab-separated files are recognised from a leading sample; anything else is
// split on runs of whitespace, matching PLINK and UKBB text output.
//
//   - ReadSamples:       IID / FID IID / PLINK .fam
//   - ReadKinshipTable:  IID1 IID2 Kinship, or a UKBB/KING/PLINK .genome table with header
//   - ReadKinshipMatrix: square .npy matrix plus the ID list naming its rows
//   - ReadPhenotypes:    FID IID Status
//   - WriteIDs:          one IID per line
//
// Parse failures wrap ErrParse and name the file and line.
package dataset
