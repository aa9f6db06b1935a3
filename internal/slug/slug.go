// Package slug implements the identifier policy for admin-created documents:
// a caller may supply a human-readable id, which is normalized and must be
// unique in its collection, or leave it blank to get a store-generated id.
package slug

import (
	"strings"
)

// Normalize trims the raw id, collapses internal whitespace runs to a single
// hyphen, and lowercases the result. Normalizing an already-normalized slug
// returns it unchanged.
func Normalize(raw string) string {
	fields := strings.Fields(raw)
	return strings.ToLower(strings.Join(fields, "-"))
}

// IsCustom reports whether the raw id names a caller-supplied slug, i.e.
// normalizes to something non-empty. Blank or whitespace-only input means
// the store should generate the identifier.
func IsCustom(raw string) bool {
	return Normalize(raw) != ""
}
