// Package textutil holds locale-aware string helpers shared by the resolvers.
package textutil

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale (or an unparseable one) is configured.
const DefaultLocale = "de-CH"

// ResolveLocale parses a BCP 47 tag, falling back to DefaultLocale.
func ResolveLocale(raw string) language.Tag {
	if tag, err := language.Parse(strings.TrimSpace(raw)); err == nil && tag != language.Und {
		return tag
	}
	return language.MustParse(DefaultLocale)
}

// SortByName sorts items in place by key using the collation rules of tag.
// The sort is stable so items with equal names keep upstream order.
func SortByName[T any](tag language.Tag, items []T, key func(T) string) {
	// Collators keep scratch buffers and are not safe for concurrent use.
	c := collate.New(tag, collate.IgnoreCase)
	slices.SortStableFunc(items, func(a, b T) int {
		return c.CompareString(key(a), key(b))
	})
}

// ContainsFold reports whether needle occurs in haystack under Unicode case folding.
func ContainsFold(haystack, needle string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(haystack), fold.String(needle))
}
