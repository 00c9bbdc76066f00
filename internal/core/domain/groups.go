package domain

import "sort"

// CollapsedGroup is the bucket most categories merge into when the report
// is grouped chronologically.
const CollapsedGroup = "Script"

// standaloneCategories keep their own group even when collapsing.
var standaloneCategories = map[string]bool{
	"Typeset": true,
	"Timing":  true,
	"Encode":  true,
}

// nonDialogueCategories never receive dialogue reference lookup.
var nonDialogueCategories = map[string]bool{
	"Typeset": true,
	"Encode":  true,
}

// IsStandalone reports whether the category is exempt from collapsing.
func IsStandalone(category string) bool {
	return standaloneCategories[category]
}

// IsNonDialogue reports whether the category is exempt from reference lookup.
func IsNonDialogue(category string) bool {
	return nonDialogueCategories[category]
}

// Groups maps a group key (a category name, or CollapsedGroup) to the
// annotations in that group, in report order.
type Groups map[string][]Annotation

// Keys returns the group keys in lexicographic order, for deterministic
// section ordering in the rendered output.
func (g Groups) Keys() []string {
	keys := make([]string, 0, len(g))
	for key := range g {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
