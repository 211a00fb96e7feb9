package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"typetrace/internal/config"
	"typetrace/internal/logging"
	"typetrace/internal/model"
	"typetrace/internal/trace"
	"typetrace/internal/tui"
	"typetrace/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
	"go.uber.org/zap"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "typetrace",
		Repository: "typetrace",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	os.Exit(run())
}

// run parses the command line and returns the process exit code, so that
// deferred cleanup runs before main exits.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		return fail(err)
	}

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: typetrace [options] <trace-dir>\n\n")
		fmt.Fprintf(os.Stderr, "typetrace classifies the entries of TypeScript type traces\n")
		fmt.Fprintf(os.Stderr, "(the types.*.json files written by tsc --generateTrace) and\n")
		fmt.Fprintf(os.Stderr, "prints per-file counts of each kind of type.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  typetrace ./trace                 # Print report to stdout\n")
		fmt.Fprintf(os.Stderr, "  typetrace -v -o r.txt ./trace     # Save report with skipped entry counts\n")
		fmt.Fprintf(os.Stderr, "  typetrace --json ./trace          # Output analysis as JSON\n")
		fmt.Fprintf(os.Stderr, "  typetrace -g tsconfig.json ./out  # Generate a trace, then report\n")
		fmt.Fprintf(os.Stderr, "  typetrace --tui ./trace           # Browse the report interactively\n")
	}

	jsonFlag := pflag.BoolP("json", "j", false, "Output analysis as JSON")
	yamlFlag := pflag.BoolP("yaml", "y", false, "Output analysis as YAML")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Include skipped malformed entries in the report")
	tuiFlag := pflag.BoolP("tui", "t", false, "Browse the report in a terminal UI")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode on http://localhost:<port>")
	portFlag := pflag.IntP("port", "p", cfg.Port, "Web Mode listen port")
	jobsFlag := pflag.IntP("jobs", "J", cfg.Jobs, "Trace files decoded in parallel")
	samplesFlag := pflag.Int("samples", cfg.Samples, "Unknown records kept for inspection per run")
	generateFlag := pflag.StringP("generate", "g", "", "Run the compiler on this project with --generateTrace into <trace-dir> first")
	compilerFlag := pflag.String("compiler", cfg.Compiler, "Compiler used by --generate (npx or tsc)")
	logLevelFlag := pflag.StringP("log-level", "l", cfg.LogLevel, "Log level (debug, info, warn, error)")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return 0
	}

	if *versionFlag {
		fmt.Printf("typetrace version %s\n", model.Version)
		return 0
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return 0
	}

	cfg.Port = *portFlag
	cfg.Jobs = *jobsFlag
	cfg.Samples = *samplesFlag
	cfg.Compiler = *compilerFlag
	cfg.LogLevel = *logLevelFlag
	if pflag.NArg() > 0 {
		cfg.Dir = pflag.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		return fail(err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fail(err)
	}
	defer logger.Sync()

	if *webFlag {
		if err := web.StartServer(cfg.Port, web.Options{
			Dir:     cfg.Dir,
			Jobs:    cfg.Jobs,
			Samples: cfg.Samples,
			Logger:  logger,
		}); err != nil {
			return fail(err)
		}
		return 0
	}

	if cfg.Dir == "" {
		pflag.Usage()
		return 1
	}

	if *generateFlag != "" {
		compiler := trace.DetectCompiler(cfg.Compiler)
		logger.Info("Generating trace", zap.String("compiler", compiler.Name()), zap.String("project", *generateFlag))
		if err := trace.RunTrace(context.Background(), compiler, *generateFlag, cfg.Dir); err != nil {
			return fail(err)
		}
	}

	if *tuiFlag {
		return runTuiMode(cfg)
	}

	format := trace.FormatText
	switch {
	case *jsonFlag:
		format = trace.FormatJSON
	case *yamlFlag:
		format = trace.FormatYAML
	}
	return runReportMode(cfg, logger, format, *outputFlag, *verboseFlag)
}

func runReportMode(cfg config.Config, logger *zap.Logger, format, outputFile string, verbose bool) int {
	analyzer := trace.NewAnalyzer(
		trace.WithJobs(cfg.Jobs),
		trace.WithSamples(trace.NewSampleCollector(cfg.Samples)),
		trace.WithLogger(logger),
	)
	result, err := analyzer.Run(context.Background(), cfg.Dir)
	if err != nil {
		return fail(err)
	}

	var out io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			return 1
		}
		defer f.Close()
		out = f
	}

	if err := trace.Encode(out, result, format, verbose); err != nil {
		return fail(err)
	}
	if outputFile != "" {
		fmt.Printf("Report saved to %s\n", outputFile)
	}
	return 0
}

func runTuiMode(cfg config.Config) int {
	m := tui.InitialModel(cfg.Dir, cfg.Jobs, cfg.Samples)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		return 1
	}
	return 0
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
