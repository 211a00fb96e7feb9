package trace

import (
	"strings"
)

// Compiler defines how a type checker is invoked to write a trace directory.
type Compiler interface {
	TraceCommand(project, outDir string) []string
	Name() string
}

// TscCompiler runs a tsc binary found on PATH.
type TscCompiler struct{}

func (c *TscCompiler) TraceCommand(project, outDir string) []string {
	return []string{"tsc", "--noEmit", "-p", project, "--generateTrace", outDir}
}

func (c *TscCompiler) Name() string {
	return "tsc"
}

// NpxCompiler runs the project's local TypeScript through npx.
type NpxCompiler struct{}

func (c *NpxCompiler) TraceCommand(project, outDir string) []string {
	return []string{"npx", "--no-install", "tsc", "--noEmit", "-p", project, "--generateTrace", outDir}
}

func (c *NpxCompiler) Name() string {
	return "npx tsc"
}

// DetectCompiler picks the compiler named by spec ("tsc" or "npx"),
// defaulting to npx so the project's pinned TypeScript version is used.
func DetectCompiler(spec string) Compiler {
	if strings.TrimSpace(strings.ToLower(spec)) == "tsc" {
		return &TscCompiler{}
	}
	return &NpxCompiler{}
}
