package model

import "strings"

// Flag is one symbolic type flag as written by the compiler's type dump.
type Flag string

const (
	FlagAny                             Flag = "Any"
	FlagUnknown                         Flag = "Unknown"
	FlagString                          Flag = "String"
	FlagNumber                          Flag = "Number"
	FlagBoolean                         Flag = "Boolean"
	FlagEnum                            Flag = "Enum"
	FlagBigInt                          Flag = "BigInt"
	FlagStringLiteral                   Flag = "StringLiteral"
	FlagNumberLiteral                   Flag = "NumberLiteral"
	FlagBooleanLiteral                  Flag = "BooleanLiteral"
	FlagEnumLiteral                     Flag = "EnumLiteral"
	FlagBigIntLiteral                   Flag = "BigIntLiteral"
	FlagESSymbol                        Flag = "ESSymbol"
	FlagUniqueESSymbol                  Flag = "UniqueESSymbol"
	FlagVoid                            Flag = "Void"
	FlagUndefined                       Flag = "Undefined"
	FlagNull                            Flag = "Null"
	FlagNever                           Flag = "Never"
	FlagTypeParameter                   Flag = "TypeParameter"
	FlagObject                          Flag = "Object"
	FlagUnion                           Flag = "Union"        // T | U
	FlagIntersection                    Flag = "Intersection" // T & U
	FlagIndex                           Flag = "Index"        // keyof T
	FlagIndexedAccess                   Flag = "IndexedAccess"
	FlagConditional                     Flag = "Conditional"
	FlagSubstitution                    Flag = "Substitution"
	FlagNonPrimitive                    Flag = "NonPrimitive"
	FlagTemplateLiteral                 Flag = "TemplateLiteral"
	FlagStringMapping                   Flag = "StringMapping" // Uppercase<T>, Lowercase<T>
	FlagReserved1                       Flag = "Reserved1"
	FlagReserved2                       Flag = "Reserved2"
	FlagAnyOrUnknown                    Flag = "AnyOrUnknown"
	FlagNullable                        Flag = "Nullable"
	FlagLiteral                         Flag = "Literal"
	FlagUnit                            Flag = "Unit"
	FlagFreshable                       Flag = "Freshable"
	FlagStringOrNumberLiteral           Flag = "StringOrNumberLiteral"
	FlagStringOrNumberLiteralOrUnique   Flag = "StringOrNumberLiteralOrUnique"
	FlagDefinitelyFalsy                 Flag = "DefinitelyFalsy"
	FlagPossiblyFalsy                   Flag = "PossiblyFalsy"
	FlagIntrinsic                       Flag = "Intrinsic"
	FlagStringLike                      Flag = "StringLike"
	FlagNumberLike                      Flag = "NumberLike"
	FlagBigIntLike                      Flag = "BigIntLike"
	FlagBooleanLike                     Flag = "BooleanLike"
	FlagEnumLike                        Flag = "EnumLike"
	FlagESSymbolLike                    Flag = "ESSymbolLike"
	FlagVoidLike                        Flag = "VoidLike"
	FlagPrimitive                       Flag = "Primitive"
	FlagDefinitelyNonNullable           Flag = "DefinitelyNonNullable"
	FlagDisjointDomains                 Flag = "DisjointDomains"
	FlagUnionOrIntersection             Flag = "UnionOrIntersection"
	FlagStructuredType                  Flag = "StructuredType"
	FlagTypeVariable                    Flag = "TypeVariable"
	FlagInstantiableNonPrimitive        Flag = "InstantiableNonPrimitive"
	FlagInstantiablePrimitive           Flag = "InstantiablePrimitive"
	FlagInstantiable                    Flag = "Instantiable"
	FlagStructuredOrInstantiable        Flag = "StructuredOrInstantiable"
	FlagObjectFlagsType                 Flag = "ObjectFlagsType"
	FlagSimplifiable                    Flag = "Simplifiable"
	FlagSingleton                       Flag = "Singleton"
	FlagNarrowable                      Flag = "Narrowable"
	FlagIncludesMask                    Flag = "IncludesMask"
	FlagIncludesMissingType             Flag = "IncludesMissingType"
	FlagIncludesNonWideningType         Flag = "IncludesNonWideningType"
	FlagIncludesWildcard                Flag = "IncludesWildcard"
	FlagIncludesEmptyObject             Flag = "IncludesEmptyObject"
	FlagIncludesInstantiable            Flag = "IncludesInstantiable"
	FlagIncludesConstrainedTypeVariable Flag = "IncludesConstrainedTypeVariable"
	FlagIncludesError                   Flag = "IncludesError"
	FlagNonPrimitiveUnion               Flag = "NonPrimitiveUnion"
)

var knownFlags = map[Flag]struct{}{}

func init() {
	for _, f := range []Flag{
		FlagAny, FlagUnknown, FlagString, FlagNumber, FlagBoolean, FlagEnum, FlagBigInt,
		FlagStringLiteral, FlagNumberLiteral, FlagBooleanLiteral, FlagEnumLiteral, FlagBigIntLiteral,
		FlagESSymbol, FlagUniqueESSymbol, FlagVoid, FlagUndefined, FlagNull, FlagNever,
		FlagTypeParameter, FlagObject, FlagUnion, FlagIntersection, FlagIndex, FlagIndexedAccess,
		FlagConditional, FlagSubstitution, FlagNonPrimitive, FlagTemplateLiteral, FlagStringMapping,
		FlagReserved1, FlagReserved2, FlagAnyOrUnknown, FlagNullable, FlagLiteral, FlagUnit,
		FlagFreshable, FlagStringOrNumberLiteral, FlagStringOrNumberLiteralOrUnique,
		FlagDefinitelyFalsy, FlagPossiblyFalsy, FlagIntrinsic, FlagStringLike, FlagNumberLike,
		FlagBigIntLike, FlagBooleanLike, FlagEnumLike, FlagESSymbolLike, FlagVoidLike, FlagPrimitive,
		FlagDefinitelyNonNullable, FlagDisjointDomains, FlagUnionOrIntersection, FlagStructuredType,
		FlagTypeVariable, FlagInstantiableNonPrimitive, FlagInstantiablePrimitive, FlagInstantiable,
		FlagStructuredOrInstantiable, FlagObjectFlagsType, FlagSimplifiable, FlagSingleton,
		FlagNarrowable, FlagIncludesMask, FlagIncludesMissingType, FlagIncludesNonWideningType,
		FlagIncludesWildcard, FlagIncludesEmptyObject, FlagIncludesInstantiable,
		FlagIncludesConstrainedTypeVariable, FlagIncludesError, FlagNonPrimitiveUnion,
	} {
		knownFlags[f] = struct{}{}
	}
}

// IsKnown reports whether f belongs to the flag set emitted by the compiler.
// Unknown flags are still carried on a Record; they just never match a predicate.
func (f Flag) IsKnown() bool {
	_, ok := knownFlags[f]
	return ok
}

// HasSuffix reports whether the flag name ends with suffix.
func (f Flag) HasSuffix(suffix string) bool {
	return strings.HasSuffix(string(f), suffix)
}
