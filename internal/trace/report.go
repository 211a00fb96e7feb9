package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"typetrace/internal/model"
)

// Output formats understood by Encode.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// GenerateReport renders the retained unknown records followed by one stats
// block per trace file. Verbose mode also reports skipped malformed entries.
func GenerateReport(result model.AnalysisResult, verbose bool) string {
	var sb strings.Builder

	if len(result.Samples) > 0 {
		fmt.Fprintf(&sb, "Unknown samples (%d):\n\n", len(result.Samples))
		for _, s := range result.Samples {
			data, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				fmt.Fprintf(&sb, "<unprintable record %d: %v>\n\n", s.ID, err)
				continue
			}
			sb.Write(data)
			sb.WriteString("\n\n")
		}
	}

	for _, f := range result.Files {
		fmt.Fprintf(&sb, "%s:\n\n%s\n\n", f.File, FormatStats(f.Stats))
		if verbose && f.Invalid > 0 {
			fmt.Fprintf(&sb, "%s %d malformed entries skipped\n\n", model.IconInvalid, f.Invalid)
		}
	}
	return sb.String()
}

// FormatStats prints the counters as an object literal, one counter per line.
func FormatStats(s model.Stats) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	fmt.Fprintf(&sb, "  files: %d,\n", s.Files)
	fmt.Fprintf(&sb, "  total: %d", s.Total)
	for _, c := range model.Categories {
		fmt.Fprintf(&sb, ",\n  %s: %d", c.Key(), s.Count(c))
	}
	sb.WriteString("\n}")
	return sb.String()
}

// Encode writes result to w in the requested format.
func Encode(w io.Writer, result model.AnalysisResult, format string, verbose bool) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		_, err := io.WriteString(w, GenerateReport(result, verbose))
		return err
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}
