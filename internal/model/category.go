package model

// Category is the single bucket a type entry is counted under.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryUnstructured
	CategoryTypeAlias
	CategoryTypeInstantiation
	CategoryStringLiteral
	CategoryUnion
	CategoryIntersection
	CategorySubstitution
	CategoryTypeDefinition
	CategoryConditional
	CategoryIntrinsic
	CategoryTemplateLiteral
	CategoryEmptyObject
	CategoryTypeParameter
	CategoryKeyType
	CategoryPropertyAccess
	CategoryOpaqueType
	CategoryEvolvingArray
	CategoryUniqueSymbol

	numCategories
)

// Categories lists every category in report order.
var Categories = []Category{
	CategoryStringLiteral,
	CategoryTypeDefinition,
	CategoryTypeAlias,
	CategoryUnion,
	CategoryIntersection,
	CategorySubstitution,
	CategoryTypeInstantiation,
	CategoryConditional,
	CategoryIntrinsic,
	CategoryTemplateLiteral,
	CategoryEmptyObject,
	CategoryTypeParameter,
	CategoryKeyType,
	CategoryPropertyAccess,
	CategoryOpaqueType,
	CategoryUniqueSymbol,
	CategoryEvolvingArray,
	CategoryUnstructured,
	CategoryUnknown,
}

var categoryNames = [numCategories]string{
	CategoryUnknown:           "Unknown",
	CategoryUnstructured:      "Unstructured",
	CategoryTypeAlias:         "TypeAlias",
	CategoryTypeInstantiation: "TypeInstantiation",
	CategoryStringLiteral:     "StringLiteral",
	CategoryUnion:             "Union",
	CategoryIntersection:      "Intersection",
	CategorySubstitution:      "Substitution",
	CategoryTypeDefinition:    "TypeDefinition",
	CategoryConditional:       "Conditional",
	CategoryIntrinsic:         "Intrinsic",
	CategoryTemplateLiteral:   "TemplateLiteral",
	CategoryEmptyObject:       "EmptyObject",
	CategoryTypeParameter:     "TypeParameter",
	CategoryKeyType:           "KeyType",
	CategoryPropertyAccess:    "PropertyAccess",
	CategoryOpaqueType:        "OpaqueType",
	CategoryEvolvingArray:     "EvolvingArray",
	CategoryUniqueSymbol:      "UniqueSymbol",
}

// counter keys as printed in reports
var categoryKeys = [numCategories]string{
	CategoryUnknown:           "unknown",
	CategoryUnstructured:      "unstructured",
	CategoryTypeAlias:         "typeAlias",
	CategoryTypeInstantiation: "instantiations",
	CategoryStringLiteral:     "stringLiterals",
	CategoryUnion:             "unions",
	CategoryIntersection:      "intersections",
	CategorySubstitution:      "substitions",
	CategoryTypeDefinition:    "types",
	CategoryConditional:       "conditionals",
	CategoryIntrinsic:         "intrinsics",
	CategoryTemplateLiteral:   "templateLiterals",
	CategoryEmptyObject:       "emptyObjects",
	CategoryTypeParameter:     "typeParameters",
	CategoryKeyType:           "keyTypes",
	CategoryPropertyAccess:    "propertiesAccessed",
	CategoryOpaqueType:        "opaque",
	CategoryEvolvingArray:     "evolvingArrays",
	CategoryUniqueSymbol:      "uniqueSymbols",
}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return categoryNames[CategoryUnknown]
	}
	return categoryNames[c]
}

// Key is the counter name used in reports.
func (c Category) Key() string {
	if c < 0 || c >= numCategories {
		return categoryKeys[CategoryUnknown]
	}
	return categoryKeys[c]
}

// Shape is a type entry narrowed to the fields its category requires.
type Shape interface {
	Category() Category
	TypeID() TypeID
}

type Unstructured struct {
	ID         TypeID
	SymbolName string
}

type TypeAlias struct {
	ID                 TypeID
	AliasTypeArguments []TypeID
}

type TypeInstantiation struct {
	ID               TypeID
	InstantiatedType TypeID
	TypeArguments    []TypeID
}

type StringLiteral struct {
	ID          TypeID
	RecursionID *int64
	Display     string
}

type UnionType struct {
	ID          TypeID
	RecursionID *int64
	UnionTypes  []TypeID
}

type IntersectionType struct {
	ID                TypeID
	IntersectionTypes []TypeID
}

type SubstitutionType struct {
	ID                   TypeID
	SubstitutionBaseType *TypeID
	ConstraintType       *TypeID
}

type TypeDefinition struct {
	ID               TypeID
	SymbolName       string
	FirstDeclaration Location
}

type ConditionalType struct {
	ID                     TypeID
	ConditionalCheckType   TypeID
	ConditionalExtendsType *TypeID
	ConditionalTrueType    *TypeID
	ConditionalFalseType   *TypeID
}

type IntrinsicType struct {
	ID            TypeID
	IntrinsicName string
}

type TemplateLiteralType struct {
	ID TypeID
}

type EmptyObject struct {
	ID TypeID
}

type TypeParameter struct {
	ID         TypeID
	SymbolName string
}

type KeyType struct {
	ID        TypeID
	KeyofType *TypeID
}

type PropertyAccess struct {
	ID                      TypeID
	IndexedAccessObjectType *TypeID
	IndexedAccessIndexType  *TypeID
}

type OpaqueType struct {
	ID      TypeID
	Display string
}

type EvolvingArray struct {
	ID                       TypeID
	EvolvingArrayElementType TypeID
	EvolvingArrayFinalType   TypeID
}

type UniqueSymbol struct {
	ID         TypeID
	SymbolName string
}

// UnknownType keeps the whole record so it can be inspected later.
type UnknownType struct {
	Record Record
}

func (t Unstructured) Category() Category        { return CategoryUnstructured }
func (t TypeAlias) Category() Category           { return CategoryTypeAlias }
func (t TypeInstantiation) Category() Category   { return CategoryTypeInstantiation }
func (t StringLiteral) Category() Category       { return CategoryStringLiteral }
func (t UnionType) Category() Category           { return CategoryUnion }
func (t IntersectionType) Category() Category    { return CategoryIntersection }
func (t SubstitutionType) Category() Category    { return CategorySubstitution }
func (t TypeDefinition) Category() Category      { return CategoryTypeDefinition }
func (t ConditionalType) Category() Category     { return CategoryConditional }
func (t IntrinsicType) Category() Category       { return CategoryIntrinsic }
func (t TemplateLiteralType) Category() Category { return CategoryTemplateLiteral }
func (t EmptyObject) Category() Category         { return CategoryEmptyObject }
func (t TypeParameter) Category() Category       { return CategoryTypeParameter }
func (t KeyType) Category() Category             { return CategoryKeyType }
func (t PropertyAccess) Category() Category      { return CategoryPropertyAccess }
func (t OpaqueType) Category() Category          { return CategoryOpaqueType }
func (t EvolvingArray) Category() Category       { return CategoryEvolvingArray }
func (t UniqueSymbol) Category() Category        { return CategoryUniqueSymbol }
func (t UnknownType) Category() Category         { return CategoryUnknown }

func (t Unstructured) TypeID() TypeID        { return t.ID }
func (t TypeAlias) TypeID() TypeID           { return t.ID }
func (t TypeInstantiation) TypeID() TypeID   { return t.ID }
func (t StringLiteral) TypeID() TypeID       { return t.ID }
func (t UnionType) TypeID() TypeID           { return t.ID }
func (t IntersectionType) TypeID() TypeID    { return t.ID }
func (t SubstitutionType) TypeID() TypeID    { return t.ID }
func (t TypeDefinition) TypeID() TypeID      { return t.ID }
func (t ConditionalType) TypeID() TypeID     { return t.ID }
func (t IntrinsicType) TypeID() TypeID       { return t.ID }
func (t TemplateLiteralType) TypeID() TypeID { return t.ID }
func (t EmptyObject) TypeID() TypeID         { return t.ID }
func (t TypeParameter) TypeID() TypeID       { return t.ID }
func (t KeyType) TypeID() TypeID             { return t.ID }
func (t PropertyAccess) TypeID() TypeID      { return t.ID }
func (t OpaqueType) TypeID() TypeID          { return t.ID }
func (t EvolvingArray) TypeID() TypeID       { return t.ID }
func (t UniqueSymbol) TypeID() TypeID        { return t.ID }
func (t UnknownType) TypeID() TypeID         { return t.Record.ID }
