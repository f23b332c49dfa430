package catalog

import (
	"strings"
	"unicode"
)

// DefaultSubcategory is the grouping key used when an input declares no
// subcategory. Its display title is the empty string so the group renders
// untitled.
const DefaultSubcategory = "default"

// SubcategoryGroup is one subcategory bucket inside a category, holding its
// inputs in catalog declaration order.
type SubcategoryGroup struct {
	Subcategory string
	Title       string
	Inputs      []Input
}

// CategoryGroup is one category bucket with its subcategories in first-seen
// order.
type CategoryGroup struct {
	Category      string
	Title         string
	Subcategories []SubcategoryGroup
}

// Group derives the category -> subcategory -> inputs hierarchy from a flat
// input sequence, preserving first-seen order at every level. The quote form
// and the document export both render from this view, so for a fixed input
// sequence the output must be identical on every call; accumulation goes
// through slices with index maps, never through bare map iteration.
func Group(inputs []Input) []CategoryGroup {
	groups := make([]CategoryGroup, 0)
	catIndex := make(map[string]int)
	subIndex := make(map[string]map[string]int)

	for _, in := range inputs {
		ci, ok := catIndex[in.Category]
		if !ok {
			ci = len(groups)
			catIndex[in.Category] = ci
			subIndex[in.Category] = make(map[string]int)
			groups = append(groups, CategoryGroup{
				Category: in.Category,
				Title:    TitleFromKey(in.Category),
			})
		}

		sub := in.Subcategory
		if sub == "" {
			sub = DefaultSubcategory
		}

		si, ok := subIndex[in.Category][sub]
		if !ok {
			si = len(groups[ci].Subcategories)
			subIndex[in.Category][sub] = si
			title := TitleFromKey(sub)
			if sub == DefaultSubcategory {
				title = ""
			}
			groups[ci].Subcategories = append(groups[ci].Subcategories, SubcategoryGroup{
				Subcategory: sub,
				Title:       title,
			})
		}

		groups[ci].Subcategories[si].Inputs = append(groups[ci].Subcategories[si].Inputs, in)
	}

	return groups
}

// TitleFromKey turns a camelCase grouping key into display text: a space is
// inserted before each internal capital and the first letter is upper-cased.
// "countertopsAndSinks" becomes "Countertops And Sinks". The transform is
// byte-deterministic and locale-independent.
func TitleFromKey(key string) string {
	if key == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(key) + 4)
	for i, r := range key {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
