package model

import (
	"encoding/json"
	"math"
	"strconv"
)

// Field names a key of a type dump entry. Presence of a field, not its value,
// is what most classification predicates look at.
type Field string

const (
	FieldID                          Field = "id"
	FieldFlags                       Field = "flags"
	FieldRecursionID                 Field = "recursionId"
	FieldIntrinsicName               Field = "intrinsicName"
	FieldDisplay                     Field = "display"
	FieldSymbolName                  Field = "symbolName"
	FieldFirstDeclaration            Field = "firstDeclaration"
	FieldReferenceLocation           Field = "referenceLocation"
	FieldDestructuringPattern        Field = "destructuringPattern"
	FieldUnionTypes                  Field = "unionTypes"
	FieldIntersectionTypes           Field = "intersectionTypes"
	FieldTypeArguments               Field = "typeArguments"
	FieldInstantiatedType            Field = "instantiatedType"
	FieldAliasTypeArguments          Field = "aliasTypeArguments"
	FieldConditionalCheckType        Field = "conditionalCheckType"
	FieldConditionalExtendsType      Field = "conditionalExtendsType"
	FieldConditionalTrueType         Field = "conditionalTrueType"
	FieldConditionalFalseType        Field = "conditionalFalseType"
	FieldIsTuple                     Field = "isTuple"
	FieldKeyofType                   Field = "keyofType"
	FieldIndexedAccessObjectType     Field = "indexedAccessObjectType"
	FieldIndexedAccessIndexType      Field = "indexedAccessIndexType"
	FieldSubstitutionBaseType        Field = "substitutionBaseType"
	FieldConstraintType              Field = "constraintType"
	FieldEvolvingArrayElementType    Field = "evolvingArrayElementType"
	FieldEvolvingArrayFinalType      Field = "evolvingArrayFinalType"
	FieldReverseMappedSourceType     Field = "reverseMappedSourceType"
	FieldReverseMappedMappedType     Field = "reverseMappedMappedType"
	FieldReverseMappedConstraintType Field = "reverseMappedConstraintType"
)

// TypeID references another entry of the same dump by its id.
type TypeID int64

// Position is a 1-based line/character pair inside a source file.
type Position struct {
	Line      int `json:"line" yaml:"line"`
	Character int `json:"character" yaml:"character"`
}

// Location points at a source file, optionally narrowed to a span.
type Location struct {
	Path  string    `json:"path" yaml:"path"`
	Start *Position `json:"start,omitempty" yaml:"start,omitempty"`
	End   *Position `json:"end,omitempty" yaml:"end,omitempty"`
}

// Record is one entry of a types.*.json dump in its flat form.
// Optional scalar fields are nil when absent or not of the expected JSON type;
// use Has to test for presence of the key itself.
type Record struct {
	ID          TypeID
	Flags       []Flag
	RecursionID *int64

	IntrinsicName *string
	Display       *string
	SymbolName    *string

	FirstDeclaration     *Location
	ReferenceLocation    *Location
	DestructuringPattern *Location

	UnionTypes         []TypeID
	IntersectionTypes  []TypeID
	TypeArguments      []TypeID
	InstantiatedType   *TypeID
	AliasTypeArguments []TypeID

	ConditionalCheckType   *TypeID
	ConditionalExtendsType *TypeID
	ConditionalTrueType    *TypeID
	ConditionalFalseType   *TypeID
	IsTuple                *bool

	KeyofType               *TypeID
	IndexedAccessObjectType *TypeID
	IndexedAccessIndexType  *TypeID

	SubstitutionBaseType *TypeID
	ConstraintType       *TypeID

	EvolvingArrayElementType *TypeID
	EvolvingArrayFinalType   *TypeID

	ReverseMappedSourceType     *TypeID
	ReverseMappedMappedType     *TypeID
	ReverseMappedConstraintType *TypeID

	present map[Field]struct{}
	raw     map[string]any
}

// NewRecord builds a Record from a decoded JSON object. It never fails:
// values of an unexpected JSON type are treated as unset but the key still
// counts as present.
func NewRecord(m map[string]any) Record {
	r := Record{
		present: make(map[Field]struct{}, len(m)),
		raw:     m,
	}
	for k := range m {
		r.present[Field(k)] = struct{}{}
	}

	if id := intValue(m[string(FieldID)]); id != nil {
		r.ID = TypeID(*id)
	}
	if flags, ok := m[string(FieldFlags)].([]any); ok {
		r.Flags = make([]Flag, 0, len(flags))
		for _, f := range flags {
			if s, ok := f.(string); ok {
				r.Flags = append(r.Flags, Flag(s))
			}
		}
	}
	r.RecursionID = intValue(m[string(FieldRecursionID)])

	r.IntrinsicName = stringValue(m[string(FieldIntrinsicName)])
	r.Display = stringValue(m[string(FieldDisplay)])
	r.SymbolName = stringValue(m[string(FieldSymbolName)])

	r.FirstDeclaration = locationValue(m[string(FieldFirstDeclaration)])
	r.ReferenceLocation = locationValue(m[string(FieldReferenceLocation)])
	r.DestructuringPattern = locationValue(m[string(FieldDestructuringPattern)])

	r.UnionTypes = idList(m[string(FieldUnionTypes)])
	r.IntersectionTypes = idList(m[string(FieldIntersectionTypes)])
	r.TypeArguments = idList(m[string(FieldTypeArguments)])
	r.InstantiatedType = idValue(m[string(FieldInstantiatedType)])
	r.AliasTypeArguments = idList(m[string(FieldAliasTypeArguments)])

	r.ConditionalCheckType = idValue(m[string(FieldConditionalCheckType)])
	r.ConditionalExtendsType = idValue(m[string(FieldConditionalExtendsType)])
	r.ConditionalTrueType = idValue(m[string(FieldConditionalTrueType)])
	r.ConditionalFalseType = idValue(m[string(FieldConditionalFalseType)])
	if b, ok := m[string(FieldIsTuple)].(bool); ok {
		r.IsTuple = &b
	}

	r.KeyofType = idValue(m[string(FieldKeyofType)])
	r.IndexedAccessObjectType = idValue(m[string(FieldIndexedAccessObjectType)])
	r.IndexedAccessIndexType = idValue(m[string(FieldIndexedAccessIndexType)])

	r.SubstitutionBaseType = idValue(m[string(FieldSubstitutionBaseType)])
	r.ConstraintType = idValue(m[string(FieldConstraintType)])

	r.EvolvingArrayElementType = idValue(m[string(FieldEvolvingArrayElementType)])
	r.EvolvingArrayFinalType = idValue(m[string(FieldEvolvingArrayFinalType)])

	r.ReverseMappedSourceType = idValue(m[string(FieldReverseMappedSourceType)])
	r.ReverseMappedMappedType = idValue(m[string(FieldReverseMappedMappedType)])
	r.ReverseMappedConstraintType = idValue(m[string(FieldReverseMappedConstraintType)])
	return r
}

// Has reports whether the entry carried the given key, whatever its value.
func (r Record) Has(f Field) bool {
	_, ok := r.present[f]
	return ok
}

// HasFlag reports whether f is one of the entry's flags.
func (r Record) HasFlag(f Flag) bool {
	for _, flag := range r.Flags {
		if flag == f {
			return true
		}
	}
	return false
}

// FindFlag returns the first flag matching match, ignoring the flags listed in without.
func (r Record) FindFlag(match func(Flag) bool, without ...Flag) (Flag, bool) {
next:
	for _, flag := range r.Flags {
		for _, w := range without {
			if flag == w {
				continue next
			}
		}
		if match(flag) {
			return flag, true
		}
	}
	return "", false
}

// DeclarationPath returns the path of the first declaration, falling back to
// the reference location only when the declaration has no path key or a null
// one. An empty path is still a path.
func (r Record) DeclarationPath() (string, bool) {
	for _, f := range []Field{FieldFirstDeclaration, FieldReferenceLocation} {
		loc, ok := r.raw[string(f)].(map[string]any)
		if !ok {
			continue
		}
		switch p := loc["path"].(type) {
		case nil:
			continue
		case string:
			return p, true
		default:
			return "", false
		}
	}
	return "", false
}

// Raw returns the decoded object the record was built from.
func (r Record) Raw() map[string]any {
	return r.raw
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.raw)
}

func (r Record) MarshalYAML() (interface{}, error) {
	return plain(r.raw), nil
}

// plain replaces json.Number values so YAML prints them as numbers.
func plain(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return string(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = plain(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plain(e)
		}
		return out
	default:
		return v
	}
}

func intValue(v any) *int64 {
	var n int64
	switch t := v.(type) {
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			f, ferr := strconv.ParseFloat(string(t), 64)
			if ferr != nil || f != math.Trunc(f) {
				return nil
			}
			i = int64(f)
		}
		n = i
	case float64:
		if t != math.Trunc(t) {
			return nil
		}
		n = int64(t)
	case int:
		n = int64(t)
	case int64:
		n = t
	default:
		return nil
	}
	return &n
}

func idValue(v any) *TypeID {
	n := intValue(v)
	if n == nil {
		return nil
	}
	id := TypeID(*n)
	return &id
}

func idList(v any) []TypeID {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	ids := make([]TypeID, 0, len(items))
	for _, item := range items {
		if id := idValue(item); id != nil {
			ids = append(ids, *id)
		}
	}
	return ids
}

func stringValue(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func locationValue(v any) *Location {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	loc := &Location{}
	if p, ok := m["path"].(string); ok {
		loc.Path = p
	}
	loc.Start = positionValue(m["start"])
	loc.End = positionValue(m["end"])
	return loc
}

func positionValue(v any) *Position {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	pos := &Position{}
	if l := intValue(m["line"]); l != nil {
		pos.Line = int(*l)
	}
	if c := intValue(m["character"]); c != nil {
		pos.Character = int(*c)
	}
	return pos
}
