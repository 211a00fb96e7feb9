package trace

import (
	"regexp"

	"typetrace/internal/model"
)

// PathRule excludes entries declared in files whose path matches Pattern.
type PathRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// Default path rules.
var (
	RuleNodeModules = PathRule{"node_modules", regexp.MustCompile(`node_modules`)}
	RuleTestFiles   = PathRule{"test-files", regexp.MustCompile(`(test\.ts|test\.utils\.ts|integration\.ts)$`)}
	RuleConfigFiles = PathRule{"config-files", regexp.MustCompile(`config\.ts$`)}
	RuleDeclFiles   = PathRule{"declaration-files", regexp.MustCompile(`\.d\.ts$`)}
)

var functionDisplay = regexp.MustCompile(`=>`)

// Filter decides which entries are noise and must not be classified.
// Excluded entries still count towards a file's total.
type Filter struct {
	paths []PathRule
}

// NewFilter returns a Filter with the default path rules.
func NewFilter() *Filter {
	return &Filter{
		paths: []PathRule{RuleNodeModules, RuleTestFiles, RuleConfigFiles, RuleDeclFiles},
	}
}

// Without returns a copy of f that drops the named path rules.
func (f *Filter) Without(names ...string) *Filter {
	out := &Filter{}
next:
	for _, rule := range f.paths {
		for _, n := range names {
			if rule.Name == n {
				continue next
			}
		}
		out.paths = append(out.paths, rule)
	}
	return out
}

// Rules returns the active path rules.
func (f *Filter) Rules() []PathRule {
	return append([]PathRule(nil), f.paths...)
}

// IsExcluded reports whether a valid record is filtered out.
func (f *Filter) IsExcluded(r model.Record) bool {
	if path, ok := r.DeclarationPath(); ok && f.matchPath(path) {
		return true
	}
	if r.Display != nil && functionDisplay.MatchString(*r.Display) {
		return true
	}
	if r.SymbolName != nil && *r.SymbolName == "globalThis" {
		return true
	}
	return isNonStringLiteral(r)
}

func (f *Filter) matchPath(path string) bool {
	for _, rule := range f.paths {
		if rule.Pattern.MatchString(path) {
			return true
		}
	}
	return false
}

// number, boolean, enum and bigint literals are dropped; string and template
// literals are classified.
func isNonStringLiteral(r model.Record) bool {
	_, found := r.FindFlag(func(f model.Flag) bool {
		return f.HasSuffix("Literal")
	}, model.FlagStringLiteral, model.FlagTemplateLiteral)
	return found
}
