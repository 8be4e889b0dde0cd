// Package sheet is the tabular I/O boundary for FileTransform.
//
// [ReadFirstSheet] loads the first worksheet of an .xlsx or .xlsm workbook
// into a typed [core.RowSet] using excelize. The first row is the header;
// later rows become data. Cells are typed from the stored value and its
// number format, so a serial date formatted as a date arrives as a
// [core.CellDate] and a stored number arrives as a [core.CellNumber].
//
// [WriteCSV] serializes a row-set with encoding/csv. Null cells are written
// as empty fields. The writer's quoting convention is the one
// [core.TripleQuotePatch] expects.
package sheet
