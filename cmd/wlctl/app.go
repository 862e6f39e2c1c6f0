package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sort"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/warlight-go/internal/config"
	"github.com/preston-bernstein/warlight-go/internal/logging"
	"github.com/preston-bernstein/warlight-go/internal/metrics"
	"github.com/preston-bernstein/warlight-go/pkg/warlight"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	envFileVar     = "WLCTL_ENV_FILE"
	defaultEnvFile = ".env"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type command struct {
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"token":      {summary: "exchange email and password for an API token", run: runToken},
	"query":      {summary: "print the feed of a game", run: runQuery},
	"create":     {summary: "create a game from a template", run: runCreate},
	"delete":     {summary: "delete a lobby game", run: runDelete},
	"gameids":    {summary: "list game ids of a ladder or tournament", run: runGameIDs},
	"validate":   {summary: "validate an invite token", run: runValidate},
	"mapdetails": {summary: "apply map detail commands from a file", run: runMapDetails},
}

// app carries what every command needs.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	recorder *metrics.Recorder
	stdout   io.Writer
	stderr   io.Writer
}

// usageError marks errors caused by bad command line input.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		usage(stderr)
		if len(args) == 0 {
			return exitUsage
		}
		return exitOK
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "wlctl: unknown command %q\n", args[0])
		usage(stderr)
		return exitUsage
	}

	envFile := os.Getenv(envFileVar)
	if envFile == "" {
		envFile = defaultEnvFile
	}
	if err := config.LoadDotEnv(envFile); err != nil {
		fmt.Fprintf(stderr, "wlctl: load %s: %v\n", envFile, err)
		return exitError
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: "wlctl",
		Version: appVersion,
		Output:  stderr,
	})

	rec, reg, err := metrics.Setup(metrics.TelemetryConfig{Enabled: cfg.Metrics.Enabled})
	if err != nil {
		logging.Error(logger, "metrics setup failed", err)
		return exitError
	}
	if reg != nil {
		defer func() {
			if err := metrics.WriteTextfile(cfg.Metrics.Textfile, reg); err != nil {
				logging.Error(logger, "metrics textfile write failed", err, logging.FieldPath, cfg.Metrics.Textfile)
			}
		}()
	}

	a := &app{cfg: cfg, logger: logger, recorder: rec, stdout: stdout, stderr: stderr}
	err = cmd.run(ctx, a, args[1:])
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	}

	fmt.Fprintf(stderr, "wlctl %s: %v\n", args[0], err)
	var uErr usageError
	if errors.As(err, &uErr) || errors.Is(err, warlight.ErrInvalidArgument) {
		return exitUsage
	}
	return exitError
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: wlctl <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-11s %s\n", name, commands[name].summary)
	}
}

func (a *app) clientConfig() warlight.Config {
	return warlight.Config{
		BaseURL:    a.cfg.Warlight.BaseURL,
		Email:      a.cfg.Warlight.Email,
		APIToken:   a.cfg.Warlight.APIToken,
		HTTPClient: &http.Client{Timeout: a.cfg.Warlight.HTTPTimeout},
		Logger:     a.logger,
		Recorder:   a.recorder,
	}
}

// client returns an authenticated client, logging in with the configured
// password when no token is set.
func (a *app) client(ctx context.Context) (*warlight.Client, error) {
	wl := a.cfg.Warlight
	if wl.Email == "" {
		return nil, errors.New("WARLIGHT_EMAIL is not set")
	}
	if wl.HasToken() {
		return warlight.NewClient(a.clientConfig()), nil
	}
	if wl.Password == "" {
		return nil, errors.New("set WARLIGHT_API_TOKEN or WARLIGHT_PASSWORD")
	}
	logging.Debug(a.logger, "no api token configured, logging in", logging.FieldOperation, warlight.OpGetAPIToken)
	return warlight.Login(ctx, a.clientConfig(), wl.Email, wl.Password)
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(a *app, name string) *flag.FlagSet {
	fs := flag.NewFlagSet("wlctl "+name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usageError{err: err}
	}
	return nil
}

func required(flagName string) error {
	return usageError{err: fmt.Errorf("-%s is required", flagName)}
}
