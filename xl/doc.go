// Package xl builds spreadsheet documents in memory and writes them as
// Office Open XML (.xlsx) packages.
//
// Cells are addressed with zero-based Address values that convert to and
// from A1 notation ("C3", "$C$3") and are grouped into Range blocks
// ("A1:C3"). Every workbook owns a StyleRepository that keeps one canonical
// Style per distinct formatting, so styled cells share style instances and
// the written file carries each cell format once.
package xl
