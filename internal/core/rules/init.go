// Package rules registers the Enrollment and Usage rule sets with the core
// registry. Import this package to ensure both sets are registered.
package rules

// This file exists to provide a single import point.
// Each category file uses init() to register its rule set.
