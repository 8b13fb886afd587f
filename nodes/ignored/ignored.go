// Package ignored holds the closed set of sanitized class names from spec
// §6 that are not node types at all: parse_item recognizes them and
// silently produces no node and no diagnostic, rather than falling
// through to stub synthesis. The set lives here, in its own leaf package,
// so both package sanitize (were it ever to special-case these names) and
// package parser consume the same compiled list instead of each keeping
// its own copy.
package ignored

// Classes is the closed set of ignored sanitized class names.
var Classes = map[string]bool{
	"AdSlot":                    true,
	"DisplayAd":                 true,
	"SearchPyv":                 true,
	"MealbarPromo":              true,
	"PrimetimePromo":            true,
	"PromotedSparklesWeb":       true,
	"CompactPromotedVideo":      true,
	"BrandVideoShelf":           true,
	"BrandVideoSingleton":       true,
	"StatementBanner":           true,
	"GuideSigninPromo":          true,
	"AdsEngagementPanelContent": true,
	"MiniGameCardView":          true,
}

// Is reports whether className is in the ignored set.
func Is(className string) bool {
	return Classes[className]
}
