package core

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

var (
	registry   = make(map[Category]RuleSet)
	registryMu sync.RWMutex
)

// Register adds a rule set to the registry.
// Panics if a rule set for the same category is already registered or if
// its keyword is empty.
func Register(set RuleSet) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[set.Info.Category]; exists {
		panic(fmt.Sprintf("rule set already registered: %s", set.Info.Category))
	}
	if set.Info.Keyword == "" {
		panic(fmt.Sprintf("rule set %s has no keyword", set.Info.Category))
	}

	set.Info.Keyword = strings.ToLower(set.Info.Keyword)
	registry[set.Info.Category] = set
}

// Get returns the rule set for a category.
// Returns false if not found.
func Get(category Category) (RuleSet, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	set, ok := registry[category]
	return set, ok
}

// All returns all registered rule sets in match order:
// by priority, then by category name.
func All() []RuleSet {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]RuleSet, 0, len(registry))
	for _, set := range registry {
		result = append(result, set)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Info.Priority != result[j].Info.Priority {
			return result[i].Info.Priority < result[j].Info.Priority
		}
		return result[i].Info.Category < result[j].Info.Category
	})

	return result
}

// Classify selects the rule set for a file by a case-insensitive substring
// match of each set's keyword against the file's base name. Sets are tried
// in All order, so a name containing both keywords takes the first match.
// Returns an error wrapping ErrUnrecognizedCategory when nothing matches.
func Classify(filename string) (RuleSet, error) {
	name := strings.ToLower(filepath.Base(filename))
	for _, set := range All() {
		if strings.Contains(name, set.Info.Keyword) {
			return set, nil
		}
	}
	return RuleSet{}, fmt.Errorf("%w: %s", ErrUnrecognizedCategory, filepath.Base(filename))
}

// CategoryOf returns the category Classify would choose for filename, or
// CategoryUnknown.
func CategoryOf(filename string) Category {
	set, err := Classify(filename)
	if err != nil {
		return CategoryUnknown
	}
	return set.Info.Category
}

// RuleSetCount returns the number of registered rule sets.
func RuleSetCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered rule sets.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[Category]RuleSet)
}
