package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/wcagaudit/internal/audit"
	"github.com/dshills/wcagaudit/internal/catalog"
	"github.com/dshills/wcagaudit/internal/compare"
	"github.com/dshills/wcagaudit/internal/config"
	"github.com/dshills/wcagaudit/internal/evaluate"
	"github.com/dshills/wcagaudit/internal/llm"
	"github.com/dshills/wcagaudit/internal/logging"
	"github.com/dshills/wcagaudit/internal/server"
	"github.com/dshills/wcagaudit/internal/session"
	"github.com/dshills/wcagaudit/internal/store"
)

// --- serve ---

type serveFlags struct {
	configPath string
	addr       string
}

func newServeCmd() *cobra.Command {
	var flags serveFlags
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the browser UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), flags)
		},
	}
	cmd.Flags().StringVar(&flags.configPath, "config", config.DefaultPath, "Config file")
	cmd.Flags().StringVar(&flags.addr, "addr", "", "Listen address (default server.addr or :$PORT)")
	return cmd
}

func runServe(ctx context.Context, flags serveFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return codeError(exitInput, "loading config: %s", err)
	}
	if flags.addr != "" {
		cfg.Server.Addr = flags.addr
	}
	log := logging.Init(cfg.LogLevel, "json", os.Stdout)

	deps, cleanup, err := buildServerDeps(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.New(deps).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", cfg.Server.Addr, "model", cfg.Model, "sessions", cfg.Server.SessionBackend)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return codeError(1, "server: %s", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return codeError(1, "shutdown: %s", err)
		}
	}
	return nil
}

// buildServerDeps wires the provider, session backend and optional archive
// from cfg. cleanup closes whatever was opened.
func buildServerDeps(cfg *config.Config, log *slog.Logger) (server.Deps, func(), error) {
	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	provider, err := llm.NewProvider(cfg.Model)
	if err != nil {
		return server.Deps{}, cleanup, codeError(exitProvider, "creating LLM provider: %s", err)
	}

	var sessions session.Backend
	switch cfg.Server.SessionBackend {
	case "redis":
		sessions, err = session.NewRedis(cfg.Server.RedisURL, "wcagaudit:", cfg.Server.SessionTTL)
		if err != nil {
			return server.Deps{}, cleanup, codeError(exitStorage, "session backend: %s", err)
		}
	default:
		sessions = session.NewMemory(cfg.Server.SessionTTL)
	}
	closers = append(closers, sessions.Close)

	deps := server.Deps{
		Audit: &audit.Service{
			Evaluator: evaluate.New(provider, evaluate.Options{
				Temperature: cfg.Temperature,
				MaxTokens:   cfg.MaxTokens,
				Logger:      log,
			}),
			MaxInputChars: cfg.MaxInputChars,
			Logger:        log,
		},
		Sessions:     sessions,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		Logger:       log,
	}
	if cfg.Store.Path != "" {
		st, err := store.Open(cfg.Store.Path)
		if err != nil {
			cleanup()
			return server.Deps{}, func() {}, codeError(exitStorage, "opening archive: %s", err)
		}
		closers = append(closers, st.Close)
		deps.Archive = st
	}
	return deps, cleanup, nil
}

// --- catalog ---

func newCatalogCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the success criteria offered to the evaluator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(format, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	return cmd
}

func runCatalog(format string, w io.Writer) error {
	if err := validateFormat(format, "text", "json"); err != nil {
		return codeError(exitInput, "invalid flags: %s", err)
	}
	r := catalog.Load()
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r.Principles)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, p := range r.Principles {
		fmt.Fprintf(tw, "# %d %s\t\t\n", i+1, p.Name)
		for _, c := range p.Criteria {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Level, c.Name)
		}
	}
	fmt.Fprintf(tw, "\nWCAG %s, %d criteria\n", catalog.Version, catalog.Count())
	return tw.Flush()
}

// --- history / show / diff ---

type archiveFlags struct {
	configPath string
	db         string
}

func (a *archiveFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&a.configPath, "config", config.DefaultPath, "Config file")
	cmd.Flags().StringVar(&a.db, "db", "", "Archive SQLite file (default store.path or WCAGAUDIT_DB)")
}

// openArchive resolves the archive path from flags and config.
func openArchive(a archiveFlags) (*store.Store, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, codeError(exitInput, "loading config: %s", err)
	}
	path := firstNonEmpty(a.db, cfg.Store.Path)
	if path == "" {
		return nil, codeError(exitInput, "no archive configured: use --db, store.path or WCAGAUDIT_DB")
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, codeError(exitStorage, "opening archive: %s", err)
	}
	return st, nil
}

func getAudit(ctx context.Context, st *store.Store, arg string) (*store.Record, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return nil, codeError(exitInput, "invalid audit id %q", arg)
	}
	rec, err := st.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, codeError(exitInput, "%s", err)
	}
	if err != nil {
		return nil, codeError(exitStorage, "%s", err)
	}
	return rec, nil
}

type historyFlags struct {
	archiveFlags
	product string
	limit   int
}

func newHistoryCmd() *cobra.Command {
	var flags historyFlags
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived audits, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context(), flags, cmd.OutOrStdout())
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&flags.product, "product", "", "Only audits of this product")
	cmd.Flags().IntVar(&flags.limit, "limit", 20, "Maximum number of audits; 0 lists all")
	return cmd
}

func runHistory(ctx context.Context, flags historyFlags, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := openArchive(flags.archiveFlags)
	if err != nil {
		return err
	}
	defer st.Close()

	recs, err := st.List(ctx, flags.product, flags.limit)
	if err != nil {
		return codeError(exitStorage, "%s", err)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tCLIENT\tPRODUCT\tDATE\tPASS\tFAIL\tTOTAL\tMODEL")
	for _, r := range recs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Client, r.Product, r.Date, r.Pass, r.Fail, r.Total, r.Model)
	}
	return tw.Flush()
}

type showFlags struct {
	archiveFlags
	format string
	out    string
}

func newShowCmd() *cobra.Command {
	var flags showFlags
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Re-render an archived audit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), args[0], flags)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&flags.format, "format", "md", "Output format: html, md or json")
	cmd.Flags().StringVar(&flags.out, "out", "", "Write output to file instead of stdout")
	return cmd
}

func runShow(ctx context.Context, arg string, flags showFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := validateFormat(flags.format, "html", "md", "json"); err != nil {
		return codeError(exitInput, "invalid flags: %s", err)
	}
	st, err := openArchive(flags.archiveFlags)
	if err != nil {
		return err
	}
	defer st.Close()

	rec, err := getAudit(ctx, st, arg)
	if err != nil {
		return err
	}
	return writeReport(rec.Report, flags.format, flags.out)
}

type diffFlags struct {
	archiveFlags
	patchOut string
}

func newDiffCmd() *cobra.Command {
	var flags diffFlags
	cmd := &cobra.Command{
		Use:   "diff <old-id> <new-id>",
		Short: "Show verdict changes between two archived audits",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd.Context(), args[0], args[1], flags, cmd.OutOrStdout())
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&flags.patchOut, "patch-out", "", "Write a diff-match-patch patch between the Markdown exports to this file")
	return cmd
}

func runDiff(ctx context.Context, oldArg, newArg string, flags diffFlags, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := openArchive(flags.archiveFlags)
	if err != nil {
		return err
	}
	defer st.Close()

	a, err := getAudit(ctx, st, oldArg)
	if err != nil {
		return err
	}
	b, err := getAudit(ctx, st, newArg)
	if err != nil {
		return err
	}

	changes := compare.Compare(a.Report, b.Report)
	if len(changes) == 0 {
		fmt.Fprintln(w, "No verdict changes.")
	}
	regressions := 0
	for _, c := range changes {
		marker := " "
		if c.Regressed() {
			marker = "!"
			regressions++
		}
		fmt.Fprintf(w, "%s %s\n", marker, c)
	}
	if len(changes) > 0 {
		fmt.Fprintf(w, "\n%d change(s), %d regression(s)\n", len(changes), regressions)
	}

	if flags.patchOut != "" {
		patch, err := compare.Patch(a.Report, b.Report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "WARN: patch generation failed: %s\n", err)
			return nil
		}
		if err := os.WriteFile(flags.patchOut, []byte(patch), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "WARN: patch write failed: %s\n", err)
		}
	}
	return nil
}
