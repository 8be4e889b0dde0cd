// Package batch runs the FileTransform pipeline over a folder.
//
// [FindTargetDir] locates the input folder next to the program or one level
// up. [Processor.Run] scans it and pushes every candidate spreadsheet
// through read, classify, transform, intermediate write, quote cleanup and
// intermediate removal, one file at a time. A failing file never stops the
// batch; its outcome is recorded in the [Report].
package batch
