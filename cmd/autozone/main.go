package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"autozone/internal/catalog"
	"autozone/internal/metrics"
	"autozone/internal/order"
	"autozone/internal/session"
	"autozone/internal/state"
	"autozone/internal/summary"
)

// Config holds CLI flags. The zero-flag defaults give the plain text desk.
type Config struct {
	SummaryPath   string
	SummaryFormat string // text|xlsx|both
	StateBackend  string // memory|pebble|badger
	MetricsFile   string
	LogLevel      string
}

func main() {
	cfg := readFlags()
	if err := run(cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, session.ErrInputClosed) {
			fmt.Fprintf(os.Stderr, "autozone: %v\n", err)
		}
		os.Exit(1)
	}
}

func readFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.SummaryPath, "summary", summary.DefaultPath, "text summary written at exit (overwritten)")
	flag.StringVar(&cfg.SummaryFormat, "summary-format", "text", "summary output: text|xlsx|both")
	flag.StringVar(&cfg.StateBackend, "state-backend", "memory", "line item backend: memory|pebble|badger")
	flag.StringVar(&cfg.MetricsFile, "metrics-file", "", "write session metrics in Prometheus textfile format to this path")
	flag.StringVar(&cfg.LogLevel, "log-level", "warn", "log level: debug|info|warn|error|disabled")
	flag.Parse()
	return cfg
}

func newLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(lvl).With().Timestamp().Logger(), nil
}

func openStore(backend string) (state.Store, error) {
	switch backend {
	case "memory", "":
		return state.NewInMemoryStore(), nil
	case "pebble":
		return state.NewPebbleStore()
	case "badger":
		return state.NewBadgerStore()
	}
	return nil, fmt.Errorf("unknown state backend %q", backend)
}

func buildSink(cfg Config, sessionID string) (summary.Writer, error) {
	text := summary.NewTextFileWriter(cfg.SummaryPath)
	book := summary.NewXLSXWriter(summary.WorkbookPath(cfg.SummaryPath), sessionID)
	switch cfg.SummaryFormat {
	case "text", "":
		return text, nil
	case "xlsx":
		return book, nil
	case "both":
		return summary.NewMultiWriter(text, book), nil
	}
	return nil, fmt.Errorf("unknown summary format %q", cfg.SummaryFormat)
}

func run(cfg Config, in io.Reader, out, errOut io.Writer) error {
	logger, err := newLogger(cfg.LogLevel, errOut)
	if err != nil {
		return err
	}
	sessionID := uuid.New().String()
	logger = logger.With().Str("session", sessionID).Logger()

	st, err := openStore(cfg.StateBackend)
	if err != nil {
		return fmt.Errorf("init state: %w", err)
	}
	defer st.Close()

	sink, err := buildSink(cfg, sessionID)
	if err != nil {
		return err
	}

	mreg := metrics.NewRegistry()
	logger.Debug().Str("backend", cfg.StateBackend).Str("summary", cfg.SummaryPath).Str("format", cfg.SummaryFormat).Msg("starting order desk")

	s := session.New(in, out, session.Config{
		Catalog: catalog.Default(),
		Order:   order.New(st),
		Sink:    sink,
		Metrics: mreg,
		Logger:  logger,
	})
	runErr := s.Run()
	if runErr != nil {
		logger.Warn().Err(runErr).Msg("session ended without a summary")
	}

	if cfg.MetricsFile != "" {
		if err := mreg.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error().Err(err).Msg("metrics not written")
		}
	}
	return runErr
}
