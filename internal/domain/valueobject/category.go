// Package valueobject defines immutable domain value objects.
package valueobject

// AllCategories is the sentinel selection that disables category filtering.
const AllCategories = "All"

// Category is a validated category name with provenance. A record's category
// string stays valid even after the custom category it came from is deleted.
type Category struct {
	Name   string
	Custom bool
}

// DefaultCategories is the fixed built-in category set, in display order.
var DefaultCategories = []string{
	"Entertainment",
	"Gaming",
	"Education",
	"Fitness",
	"News",
	"Work",
	"Utility",
	"Lifestyle",
	"Other",
}

// categoryColors is the fixed palette for the default categories.
var categoryColors = map[string]string{
	"Entertainment": "#ef4444",
	"Gaming":        "#8b5cf6",
	"Education":     "#3b82f6",
	"Fitness":       "#10b981",
	"News":          "#f59e0b",
	"Work":          "#6366f1",
	"Utility":       "#64748b",
	"Lifestyle":     "#ec4899",
	"Other":         "#cbd5e1",
}

// fallbackColors is the palette for custom categories, indexed by the
// category's position in the sorted breakdown.
var fallbackColors = []string{
	"#4f46e5", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6", "#06b6d4", "#ec4899",
}

// IsDefault reports whether name is one of the built-in categories.
func IsDefault(name string) bool {
	_, ok := categoryColors[name]
	return ok
}

// ColorFor returns the display color for a category: the fixed palette for
// default categories, the position-indexed fallback palette otherwise.
func ColorFor(name string, position int) string {
	if color, ok := categoryColors[name]; ok {
		return color
	}
	if position < 0 {
		position = 0
	}
	return fallbackColors[position%len(fallbackColors)]
}
