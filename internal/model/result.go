package model

// Version is the tool version printed by --version and checked by --update.
const Version = "0.3.1"

// Stats holds the counters for one trace file.
type Stats struct {
	Files              int `json:"files" yaml:"files"`
	Total              int `json:"total" yaml:"total"`
	StringLiterals     int `json:"stringLiterals" yaml:"stringLiterals"`
	Types              int `json:"types" yaml:"types"`
	TypeAlias          int `json:"typeAlias" yaml:"typeAlias"`
	Unions             int `json:"unions" yaml:"unions"`
	Intersections      int `json:"intersections" yaml:"intersections"`
	Substitions        int `json:"substitions" yaml:"substitions"`
	Instantiations     int `json:"instantiations" yaml:"instantiations"`
	Conditionals       int `json:"conditionals" yaml:"conditionals"`
	Intrinsics         int `json:"intrinsics" yaml:"intrinsics"`
	TemplateLiterals   int `json:"templateLiterals" yaml:"templateLiterals"`
	EmptyObjects       int `json:"emptyObjects" yaml:"emptyObjects"`
	TypeParameters     int `json:"typeParameters" yaml:"typeParameters"`
	KeyTypes           int `json:"keyTypes" yaml:"keyTypes"`
	PropertiesAccessed int `json:"propertiesAccessed" yaml:"propertiesAccessed"`
	Opaque             int `json:"opaque" yaml:"opaque"`
	UniqueSymbols      int `json:"uniqueSymbols" yaml:"uniqueSymbols"`
	EvolvingArrays     int `json:"evolvingArrays" yaml:"evolvingArrays"`
	Unstructured       int `json:"unstructured" yaml:"unstructured"`
	Unknown            int `json:"unknown" yaml:"unknown"`
}

func (s *Stats) counter(c Category) *int {
	switch c {
	case CategoryUnstructured:
		return &s.Unstructured
	case CategoryTypeAlias:
		return &s.TypeAlias
	case CategoryTypeInstantiation:
		return &s.Instantiations
	case CategoryStringLiteral:
		return &s.StringLiterals
	case CategoryUnion:
		return &s.Unions
	case CategoryIntersection:
		return &s.Intersections
	case CategorySubstitution:
		return &s.Substitions
	case CategoryTypeDefinition:
		return &s.Types
	case CategoryConditional:
		return &s.Conditionals
	case CategoryIntrinsic:
		return &s.Intrinsics
	case CategoryTemplateLiteral:
		return &s.TemplateLiterals
	case CategoryEmptyObject:
		return &s.EmptyObjects
	case CategoryTypeParameter:
		return &s.TypeParameters
	case CategoryKeyType:
		return &s.KeyTypes
	case CategoryPropertyAccess:
		return &s.PropertiesAccessed
	case CategoryOpaqueType:
		return &s.Opaque
	case CategoryEvolvingArray:
		return &s.EvolvingArrays
	case CategoryUniqueSymbol:
		return &s.UniqueSymbols
	default:
		return &s.Unknown
	}
}

// Count returns the counter for c.
func (s *Stats) Count(c Category) int {
	return *s.counter(c)
}

// Inc bumps the counter for c.
func (s *Stats) Inc(c Category) {
	*s.counter(c)++
}

// Classified is the sum of all category counters, i.e. Total minus excluded entries.
func (s *Stats) Classified() int {
	n := 0
	for _, c := range Categories {
		n += s.Count(c)
	}
	return n
}

// Excluded is the number of valid entries that were filtered out.
func (s *Stats) Excluded() int {
	return s.Total - s.Classified()
}

// Add accumulates o into s, Files included.
func (s *Stats) Add(o Stats) {
	s.Files += o.Files
	s.Total += o.Total
	for _, c := range Categories {
		*s.counter(c) += o.Count(c)
	}
}

// FileReport is the outcome of one trace file.
type FileReport struct {
	File    string `json:"file" yaml:"file"`
	Invalid int    `json:"invalid" yaml:"invalid"`
	Stats   Stats  `json:"stats" yaml:"stats"`
}

// AnalysisResult contains the processed data from a trace directory.
type AnalysisResult struct {
	Dir     string       `json:"dir" yaml:"dir"`
	Files   []FileReport `json:"files" yaml:"files"`
	Totals  Stats        `json:"totals" yaml:"totals"`
	Samples []Record     `json:"samples" yaml:"samples"`
}
