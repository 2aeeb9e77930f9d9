// SPDX-License-Identifier: MIT

// Package codec moves sequences between files and []na.Value.
//
// Formats:
//   - JSON: a bare array of numbers and nulls, e.g. [1,null,3].
//   - CSV:  a header row plus records; every column is a candidate sequence.
//   - XLSX: one sheet laid out like the CSV form (excelize).
//   - BIN:  raw little-endian IEEE-754 doubles, as written by R's
//     writeBin(x, con, endian = "little"). Missing cells are NaN payloads,
//     so a na.Policy decides which ones count as missing.
//
// CSV and XLSX are loaded into a Table. Table.FillColumns parses the chosen
// columns with na.Parse, applies fill.LOCF, and writes the result back as
// text, leaving every other column byte-identical.
package codec
