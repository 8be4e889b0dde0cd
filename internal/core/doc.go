// Package core provides the column transform engine for spreadsheet exports.
//
// This package is the heart of FileTransform, containing all transform logic
// independent of any file format or folder layout. It can be used by the
// batch runner, other CLI tools, or tests without modification.
//
// # Architecture
//
// The package is organized around several key concepts:
//
//   - Row-set: [RowSet] holds one file's table as typed [Cell] values with an
//     explicit [RowSet.HasColumn] query.
//   - Rules: each [Rule] is one transform ([QuoteWrap], [CustomWrap],
//     [DateFormat], [ZeroPad], [StripSeparator]) bound to target columns.
//   - Rule sets: a [RuleSet] per document [Category], registered at init time
//     and selected by filename with [Classify].
//   - Cleanup: a [Patch] applied to serialized CSV text by [CleanupFile].
//
// # Rule Registry
//
// Rule sets are registered at init time using [Register]:
//
//	core.Register(core.RuleSet{
//	    Info: core.RuleSetInfo{Category: "Usage", Keyword: "usage"},
//	    Rules: []core.Rule{
//	        core.QuoteWrap{Columns: []string{"CUST_NAME"}},
//	        core.ZeroPad{Widths: map[string]int{"CITY_GATE": 4}},
//	    },
//	})
//
// # Applying Rules
//
// [Apply] runs a rule set against a row-set in place. Two guarantees hold
// for every rule:
//
//  1. A target column missing from the row-set is skipped, never an error.
//  2. Null cells are never passed to a rule and stay null.
//
// Before any text rule runs, non-text cells are coerced with [Cell.Text].
//
// # Error Handling
//
// Pipeline errors wrap the sentinels in errors.go and are mapped to coded
// messages with [MapError]:
//
//   - SRC001-SRC003: Source errors (missing, unreadable, legacy .xls)
//   - CAT001: Unrecognized category
//   - XFM001: Transform failure
//   - OUT001, CLN001-CLN002: Output and cleanup errors
//   - DIR001: Folder not found
package core
