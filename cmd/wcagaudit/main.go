package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/wcagaudit/internal/audit"
	"github.com/dshills/wcagaudit/internal/catalog"
	"github.com/dshills/wcagaudit/internal/config"
	"github.com/dshills/wcagaudit/internal/evaluate"
	"github.com/dshills/wcagaudit/internal/llm"
	"github.com/dshills/wcagaudit/internal/logging"
	"github.com/dshills/wcagaudit/internal/render"
	"github.com/dshills/wcagaudit/internal/sanitize"
	"github.com/dshills/wcagaudit/internal/schema"
	"github.com/dshills/wcagaudit/internal/store"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// Exit codes.
const (
	exitInput      = 3
	exitProvider   = 4
	exitEvaluation = 5
	exitStorage    = 6
)

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// analyzeFlags holds the parsed flags for the analyze command.
type analyzeFlags struct {
	configPath    string
	client        string
	product       string
	version       string
	date          string
	researchers   string
	inScope       []string
	outScope      []string
	format        string
	out           string
	model         string
	temperature   float64
	maxTokens     int
	maxInputChars int
	db            string
	offline       bool
	verbose       bool
	debug         bool
}

func main() {
	root := &cobra.Command{
		Use:           "wcagaudit",
		Short:         "Generate WCAG 2.2 AA accessibility reports from HTML",
		Long:          "wcagaudit asks an LLM to judge an HTML fragment against the 56 WCAG 2.2 A and AA success criteria and renders the verdicts as a Dutch report.",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(newAnalyzeCmd(), newServeCmd(), newCatalogCmd(), newHistoryCmd(), newShowCmd(), newDiffCmd())

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var flags analyzeFlags
	cmd := &cobra.Command{
		Use:   "analyze <html-file|->",
		Short: "Audit an HTML fragment and write the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), args[0], flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", config.DefaultPath, "Config file")
	f.StringVar(&flags.client, "client", "", "Opdrachtgever (required)")
	f.StringVar(&flags.product, "product", "", "Onderwerp (required)")
	f.StringVar(&flags.researchers, "researchers", "", "Onderzoeker(s) (required)")
	f.StringVar(&flags.version, "report-version", "", "Report version (default 1.0)")
	f.StringVar(&flags.date, "date", "", "Report date (default today, YYYY-MM-DD)")
	f.StringArrayVar(&flags.inScope, "in-scope", nil, "Sampled page or component (may be repeated)")
	f.StringArrayVar(&flags.outScope, "out-scope", nil, "Excluded page or component (may be repeated)")
	f.StringVar(&flags.format, "format", "html", "Output format: html, md or json")
	f.StringVar(&flags.out, "out", "", "Write output to file instead of stdout")
	f.StringVar(&flags.model, "model", "", "provider:model, overrides config and WCAGAUDIT_MODEL")
	f.Float64Var(&flags.temperature, "temperature", -1, "LLM temperature (default from config)")
	f.IntVar(&flags.maxTokens, "max-tokens", 0, "Maximum response tokens (default from config)")
	f.IntVar(&flags.maxInputChars, "max-input-chars", -1, "Truncate the cleaned HTML after this many characters; 0 disables (default from config)")
	f.StringVar(&flags.db, "db", "", "Archive the audit in this SQLite file (default store.path or WCAGAUDIT_DB)")
	f.BoolVar(&flags.offline, "offline", false, "Exit 3 unless the model is set explicitly via --model or WCAGAUDIT_MODEL")
	f.BoolVar(&flags.verbose, "verbose", false, "Log processing steps to stderr")
	f.BoolVar(&flags.debug, "debug", false, "Dump the full prompt (including the cleaned HTML) to stderr; use only in trusted environments")
	return cmd
}

func runAnalyze(ctx context.Context, htmlPath string, flags analyzeFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Step 1: Validate flags and load config ---
	if err := validateFormat(flags.format, "html", "md", "json"); err != nil {
		return codeError(exitInput, "invalid flags: %s", err)
	}
	if flags.offline && flags.model == "" && os.Getenv("WCAGAUDIT_MODEL") == "" {
		return codeError(exitInput, "WCAGAUDIT_MODEL environment variable not set (required with --offline)")
	}
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return codeError(exitInput, "loading config: %s", err)
	}
	applyOverrides(cfg, flags)
	if err := cfg.Validate(); err != nil {
		return codeError(exitInput, "invalid flags: %s", err)
	}
	log := initLogger(cfg.LogLevel, flags.verbose)

	// --- Step 2: Read HTML and build input ---
	log.Debug("reading html", "path", htmlPath)
	html, err := readInput(htmlPath)
	if err != nil {
		return codeError(exitInput, "reading html: %s", err)
	}
	meta := audit.NewMeta(time.Now())
	meta.Client, meta.Product, meta.Researchers = flags.client, flags.product, flags.researchers
	if flags.version != "" {
		meta.Version = flags.version
	}
	if flags.date != "" {
		meta.Date = flags.date
	}
	in := audit.Input{HTML: html, Meta: meta, InScope: flags.inScope, OutScope: flags.outScope}
	if err := audit.Validate(in); err != nil {
		return codeError(exitInput, "%s", err)
	}

	// --- Step 3: Debug dump ---
	if flags.debug {
		cleaned, _ := sanitize.Prepare(html, cfg.MaxInputChars)
		refs := catalog.Refs()
		fmt.Fprintf(os.Stderr, "=== DEBUG: prompt ===\n")
		fmt.Fprintf(os.Stderr, "[SYSTEM]\n%s\n\n[USER]\n%s\n", evaluate.BuildSystemPrompt(), evaluate.BuildUserPrompt(cleaned, refs))
		fmt.Fprintf(os.Stderr, "=== END DEBUG ===\n")
	}

	// --- Step 4: Create provider and run ---
	provider, err := llm.NewProvider(cfg.Model)
	if err != nil {
		return codeError(exitProvider, "creating LLM provider: %s", err)
	}
	svc := &audit.Service{
		Evaluator: evaluate.New(provider, evaluate.Options{
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			Logger:      log,
		}),
		MaxInputChars: cfg.MaxInputChars,
		Logger:        log,
	}
	log.Debug("calling evaluator", "model", cfg.Model)
	res, err := svc.Run(ctx, in)
	if err != nil {
		return codeError(exitEvaluation, "%s (%s)", evaluate.UserMessage(err), err)
	}
	if res.Notice != nil {
		fmt.Fprintf(os.Stderr, "WARN: %s\n", res.Notice.Message())
	}

	// --- Step 5: Archive ---
	if path := firstNonEmpty(flags.db, cfg.Store.Path); path != "" {
		st, err := store.Open(path)
		if err != nil {
			return codeError(exitStorage, "opening archive: %s", err)
		}
		defer st.Close()
		id, err := st.Save(ctx, res.Model, res.Report)
		if err != nil {
			return codeError(exitStorage, "archiving audit: %s", err)
		}
		log.Info("audit archived", "id", id, "path", path)
	}

	// --- Step 6: Render and write ---
	return writeReport(res.Report, flags.format, flags.out)
}

// applyOverrides copies explicitly set flags over cfg.
func applyOverrides(cfg *config.Config, flags analyzeFlags) {
	if flags.model != "" {
		cfg.Model = flags.model
	}
	if flags.temperature >= 0 {
		cfg.Temperature = flags.temperature
	}
	if flags.maxTokens > 0 {
		cfg.MaxTokens = flags.maxTokens
	}
	if flags.maxInputChars >= 0 {
		cfg.MaxInputChars = flags.maxInputChars
	}
}

// initLogger installs a text logger on stderr. --verbose lowers the level
// to debug.
func initLogger(level string, verbose bool) *slog.Logger {
	if verbose {
		level = "debug"
	}
	return logging.Init(level, "text", os.Stderr)
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func validateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("--format must be one of %v, got %q", allowed, format)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// stdoutIsTerminal is a variable so tests can pin it.
var stdoutIsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

// writeReport renders report in format and writes it to out, or stdout when
// out is empty.
func writeReport(report *schema.ReportData, format, out string) error {
	r, err := render.NewRenderer(format)
	if err != nil {
		return codeError(exitInput, "invalid format: %s", err)
	}
	data, err := r.Render(report)
	if err != nil {
		return codeError(exitInput, "rendering output: %s", err)
	}
	if out == "" && format == "html" && stdoutIsTerminal() {
		fmt.Fprintf(os.Stderr, "WARN: writing an HTML document to the terminal; use --out %s to save it\n", render.Filename(report, format))
	}
	return writeOutput(data, out)
}

func writeOutput(data []byte, out string) error {
	if out != "" {
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return codeError(exitInput, "writing output file: %s", err)
		}
		return nil
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return codeError(exitInput, "writing output: %s", err)
	}
	// Ensure output ends with a newline for terminal friendliness.
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Fprintln(os.Stdout)
	}
	return nil
}
