package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/1broseidon/winrules/internal/backend"
	"github.com/1broseidon/winrules/internal/config"
	"github.com/1broseidon/winrules/internal/engine"
	"github.com/1broseidon/winrules/internal/rules"
)

var version = "0.1.0"

type options struct {
	configPath string
	dryRun     bool
	logLevel   string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "winrules",
		Short:         "Rule-driven window placement daemon for X11",
		Long:          "winrules watches for new windows and applies placement and state rules\nmatched on window class, title, role, process and type.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon(opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"config file (default ~/.config/winrules/config.yaml)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false,
		"log matches without applying actions")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info",
		"log level (debug|info|warn|error)")
	cmd.Flags().BoolP("version", "V", false, "print version and exit")

	cmd.AddCommand(newValidateCommand(opts))

	return cmd
}

func newValidateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:          "validate",
		Short:        "Validate the rule configuration and exit",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(opts)
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			compiled, err := rules.Compile(cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rule(s) OK\n", path, len(compiled))
			return nil
		},
	}
}

func runDaemon(opts *options) error {
	logger := newLogger(opts.logLevel)

	path, err := resolveConfigPath(opts)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config not found: %s (create it and add rules, then restart)", path)
	}

	loadRules := func() ([]*rules.CompiledRule, error) {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		return rules.Compile(cfg)
	}

	ruleset, err := loadRules()
	if err != nil {
		return err
	}

	srv, err := backend.Connect()
	if err != nil {
		return err
	}
	defer srv.Close()

	for i, mon := range srv.Monitors() {
		logger.Info("monitor",
			"index", i,
			"name", mon.Name,
			"geometry", fmt.Sprintf("%dx%d+%d+%d", mon.Width, mon.Height, mon.X, mon.Y))
	}

	// Hot reload is best-effort: a broken watcher only disables it.
	reloadRequests := make(chan string, 1)
	watchConfig(logger, path, reloadRequests)

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for range hup {
			requestReload(reloadRequests, "received SIGHUP")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng := engine.New(srv, logger, ruleset, opts.dryRun, loadRules)
	return eng.Run(ctx, reloadRequests)
}

func resolveConfigPath(opts *options) (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	return config.DefaultConfigPath()
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
}

// requestReload queues a reload without blocking; one pending request is
// enough.
func requestReload(reloadRequests chan<- string, reason string) {
	select {
	case reloadRequests <- reason:
	default:
	}
}
