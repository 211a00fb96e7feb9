package trace

import "typetrace/internal/model"

// rule is one step of the classification chain. match decides, narrow builds
// the shape once match has succeeded.
type rule struct {
	category model.Category
	match    func(model.Record) bool
	narrow   func(model.Record) model.Shape
}

// chain is evaluated top to bottom and the first match wins. Several
// predicates overlap (Object-flagged entries in particular), so the order
// decides the outcome.
var chain = []rule{
	{model.CategoryUnstructured, isUnstructured, func(r model.Record) model.Shape {
		return model.Unstructured{ID: r.ID, SymbolName: *r.SymbolName}
	}},
	{model.CategoryTypeAlias, isTypeAlias, func(r model.Record) model.Shape {
		return model.TypeAlias{ID: r.ID, AliasTypeArguments: r.AliasTypeArguments}
	}},
	{model.CategoryTypeInstantiation, isTypeInstantiation, func(r model.Record) model.Shape {
		return model.TypeInstantiation{ID: r.ID, InstantiatedType: deref(r.InstantiatedType), TypeArguments: r.TypeArguments}
	}},
	{model.CategoryStringLiteral, flagged(model.FlagStringLiteral), func(r model.Record) model.Shape {
		return model.StringLiteral{ID: r.ID, RecursionID: r.RecursionID, Display: derefString(r.Display)}
	}},
	{model.CategoryUnion, flagged(model.FlagUnion), func(r model.Record) model.Shape {
		return model.UnionType{ID: r.ID, RecursionID: r.RecursionID, UnionTypes: r.UnionTypes}
	}},
	{model.CategoryIntersection, flagged(model.FlagIntersection), func(r model.Record) model.Shape {
		return model.IntersectionType{ID: r.ID, IntersectionTypes: r.IntersectionTypes}
	}},
	{model.CategorySubstitution, flagged(model.FlagSubstitution), func(r model.Record) model.Shape {
		return model.SubstitutionType{ID: r.ID, SubstitutionBaseType: r.SubstitutionBaseType, ConstraintType: r.ConstraintType}
	}},
	{model.CategoryTypeDefinition, isTypeDefinition, func(r model.Record) model.Shape {
		def := model.TypeDefinition{ID: r.ID, SymbolName: derefString(r.SymbolName)}
		if r.FirstDeclaration != nil {
			def.FirstDeclaration = *r.FirstDeclaration
		}
		return def
	}},
	{model.CategoryConditional, isConditional, func(r model.Record) model.Shape {
		return model.ConditionalType{
			ID:                     r.ID,
			ConditionalCheckType:   deref(r.ConditionalCheckType),
			ConditionalExtendsType: r.ConditionalExtendsType,
			ConditionalTrueType:    r.ConditionalTrueType,
			ConditionalFalseType:   r.ConditionalFalseType,
		}
	}},
	{model.CategoryIntrinsic, isIntrinsic, func(r model.Record) model.Shape {
		return model.IntrinsicType{ID: r.ID, IntrinsicName: derefString(r.IntrinsicName)}
	}},
	{model.CategoryTemplateLiteral, flagged(model.FlagTemplateLiteral), func(r model.Record) model.Shape {
		return model.TemplateLiteralType{ID: r.ID}
	}},
	{model.CategoryEmptyObject, isEmptyObject, func(r model.Record) model.Shape {
		return model.EmptyObject{ID: r.ID}
	}},
	{model.CategoryTypeParameter, flagged(model.FlagTypeParameter), func(r model.Record) model.Shape {
		return model.TypeParameter{ID: r.ID, SymbolName: derefString(r.SymbolName)}
	}},
	{model.CategoryKeyType, flagged(model.FlagIndex), func(r model.Record) model.Shape {
		return model.KeyType{ID: r.ID, KeyofType: r.KeyofType}
	}},
	{model.CategoryPropertyAccess, flagged(model.FlagIndexedAccess), func(r model.Record) model.Shape {
		return model.PropertyAccess{ID: r.ID, IndexedAccessObjectType: r.IndexedAccessObjectType, IndexedAccessIndexType: r.IndexedAccessIndexType}
	}},
	{model.CategoryOpaqueType, isOpaque, func(r model.Record) model.Shape {
		return model.OpaqueType{ID: r.ID, Display: derefString(r.Display)}
	}},
	{model.CategoryEvolvingArray, isEvolvingArray, func(r model.Record) model.Shape {
		return model.EvolvingArray{
			ID:                       r.ID,
			EvolvingArrayElementType: deref(r.EvolvingArrayElementType),
			EvolvingArrayFinalType:   deref(r.EvolvingArrayFinalType),
		}
	}},
	{model.CategoryUniqueSymbol, flagged(model.FlagUniqueESSymbol), func(r model.Record) model.Shape {
		return model.UniqueSymbol{ID: r.ID, SymbolName: derefString(r.SymbolName)}
	}},
}

// Classify narrows a valid, non-excluded record to the shape of its category.
// Records no rule accepts come back as model.UnknownType.
func Classify(r model.Record) model.Shape {
	for _, step := range chain {
		if step.match(r) {
			return step.narrow(r)
		}
	}
	return model.UnknownType{Record: r}
}

// Categorize returns only the category Classify would pick.
func Categorize(r model.Record) model.Category {
	return Classify(r).Category()
}

func flagged(f model.Flag) func(model.Record) bool {
	return func(r model.Record) bool { return r.HasFlag(f) }
}

func isObject(r model.Record) bool {
	return r.HasFlag(model.FlagObject)
}

func isUnstructured(r model.Record) bool {
	return isObject(r) && r.SymbolName != nil && *r.SymbolName == "__type"
}

func isTypeAlias(r model.Record) bool {
	return isObject(r) && r.Has(model.FieldAliasTypeArguments)
}

func isTypeInstantiation(r model.Record) bool {
	return isObject(r) && r.Has(model.FieldInstantiatedType)
}

func isTypeDefinition(r model.Record) bool {
	return isObject(r) && r.Has(model.FieldSymbolName) && r.Has(model.FieldFirstDeclaration)
}

func isConditional(r model.Record) bool {
	return r.HasFlag(model.FlagConditional) && r.Has(model.FieldConditionalCheckType)
}

// intrinsics are recognised by name alone, whatever their flags.
func isIntrinsic(r model.Record) bool {
	return r.Has(model.FieldIntrinsicName)
}

func isEmptyObject(r model.Record) bool {
	return isObject(r) && r.Display != nil && *r.Display == "{}"
}

func isOpaque(r model.Record) bool {
	return isObject(r) && r.Has(model.FieldDisplay)
}

func isEvolvingArray(r model.Record) bool {
	return isObject(r) && r.Has(model.FieldEvolvingArrayElementType) && r.Has(model.FieldEvolvingArrayFinalType)
}

func deref(id *model.TypeID) model.TypeID {
	if id == nil {
		return 0
	}
	return *id
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
