// Package core provides the column transform engine for spreadsheet exports.
//
// # Error Codes Reference
//
// This file defines operator-friendly error messages with codes. Every
// per-file failure written to the log carries one of these codes so a run
// can be diagnosed from the log file alone.
//
// # Source Errors (SRC001-SRC099)
//
//	SRC001 - Source not found: The input file does not exist
//	         Action: Check that the file was not moved during the run
//
//	SRC002 - Unreadable source: The spreadsheet could not be opened
//	         Action: Re-save the workbook as .xlsx and run again
//
//	SRC003 - Legacy workbook: The file is an Excel 97-2003 .xls workbook
//	         Action: Re-save the workbook as .xlsx and run again
//
// # Category Errors (CAT001-CAT099)
//
//	CAT001 - Unrecognized category: Filename contains neither keyword
//	         Action: Include "Enrollment" or "Usage" in the filename
//
// # Transform Errors (XFM001-XFM099)
//
//	XFM001 - Transform failed: A column rule failed unexpectedly
//	         Action: Check the named column for unusual values
//
// # Output Errors (OUT001-OUT099, CLN001-CLN099)
//
//	OUT001 - Write failed: An output CSV could not be written
//	         Action: Check folder permissions and free disk space
//
//	CLN001 - Cleanup target missing: The intermediate CSV disappeared
//	         Action: Check for other programs touching the folder
//
//	CLN002 - Intermediate not removed: The final file was written but the
//	         intermediate CSV could not be deleted
//	         Action: Delete the _intermediate file by hand
//
// # Folder Errors (DIR001-DIR099)
//
//	DIR001 - Folder not found: The FileTransform folder does not exist
//	         Action: Place the folder next to the program or one level up
//
// # Default Error (ERR000)
//
//	ERR000 - Unexpected error: An unexpected error occurred
//	         Action: Check the log file for details
package core

import (
	"errors"
	"fmt"
	"strings"
)

// UserMessage contains an operator-friendly error message with action guidance.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Error code for log search
}

// errorMapping binds a sentinel error to its message.
type errorMapping struct {
	target error
	msg    UserMessage
}

// errorPattern maps a substring of a third-party error to a message, for
// errors that do not wrap one of our sentinels.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// Order matters: the first match wins.
var errorMappings = []errorMapping{
	{ErrSourceNotFound, UserMessage{
		Message: "The input file does not exist",
		Action:  "Check that the file was not moved during the run",
		Code:    "SRC001",
	}},
	{ErrLegacyWorkbook, UserMessage{
		Message: "The file is an Excel 97-2003 workbook",
		Action:  "Re-save the workbook as .xlsx and run again",
		Code:    "SRC003",
	}},
	{ErrReadFailure, UserMessage{
		Message: "The spreadsheet could not be opened",
		Action:  "Re-save the workbook as .xlsx and run again",
		Code:    "SRC002",
	}},
	{ErrUnrecognizedCategory, UserMessage{
		Message: "Filename does not contain 'Enrollment' or 'Usage'",
		Action:  "Include \"Enrollment\" or \"Usage\" in the filename",
		Code:    "CAT001",
	}},
	{ErrTransformFailure, UserMessage{
		Message: "A column rule failed unexpectedly",
		Action:  "Check the named column for unusual values",
		Code:    "XFM001",
	}},
	{ErrWriteFailure, UserMessage{
		Message: "An output CSV could not be written",
		Action:  "Check folder permissions and free disk space",
		Code:    "OUT001",
	}},
	{ErrCleanupTargetMissing, UserMessage{
		Message: "The intermediate CSV was not found for quote cleanup",
		Action:  "Check for other programs touching the folder",
		Code:    "CLN001",
	}},
	{ErrIntermediateRemoval, UserMessage{
		Message: "The intermediate CSV could not be deleted",
		Action:  "Delete the _intermediate file by hand",
		Code:    "CLN002",
	}},
	{ErrTargetDirNotFound, UserMessage{
		Message: "The FileTransform folder was not found",
		Action:  "Place the folder next to the program or one level up",
		Code:    "DIR001",
	}},
}

var errorPatterns = []errorPattern{
	{
		pattern: "permission denied",
		msg: UserMessage{
			Message: "Access to a file was denied",
			Action:  "Close the workbook in Excel and check folder permissions",
			Code:    "FS001",
		},
	},
	{
		pattern: "no space left",
		msg: UserMessage{
			Message: "The disk is full",
			Action:  "Free disk space and run again",
			Code:    "FS002",
		},
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the log file for details",
	Code:    "ERR000",
}

// MapError converts a pipeline error to an operator-friendly message.
// Sentinels are matched with errors.Is first, then known substrings of
// third-party errors. Returns the default message if nothing matches.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.msg
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsKnown reports whether err maps to a specific code rather than ERR000.
func IsKnown(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its operator-friendly message.
type UserError struct {
	Technical error       // Original error for logging
	User      UserMessage // Message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
