package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconFile     = "•" // Trace file
	IconSelected = "›" // Cursor
	IconExcluded = "∅" // Filtered out of classification
	IconInvalid  = "✗" // Dropped before counting
	IconUnknown  = "?" // Unclassified
	IconOK       = " " // Space (OK - no icon to reduce noise)
)

var categoryIcons = map[Category]string{
	CategoryUnion:             "|",
	CategoryIntersection:      "&",
	CategoryConditional:       "?:",
	CategoryStringLiteral:     "\"",
	CategoryTemplateLiteral:   "`",
	CategoryKeyType:           "k",
	CategoryPropertyAccess:    "[]",
	CategoryTypeParameter:     "T",
	CategoryEmptyObject:       "{}",
	CategoryEvolvingArray:     "[…]",
	CategoryUniqueSymbol:      "§",
	CategoryIntrinsic:         "i",
	CategoryTypeDefinition:    "D",
	CategoryTypeAlias:         "=",
	CategoryTypeInstantiation: "<>",
	CategorySubstitution:      "~",
	CategoryOpaqueType:        "◼",
	CategoryUnstructured:      "◻",
	CategoryUnknown:           IconUnknown,
}

// Icon returns the short glyph shown next to a category.
func (c Category) Icon() string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return IconOK
}
