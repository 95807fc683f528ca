package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/Veraticus/vowsync/internal/cli"
	"github.com/Veraticus/vowsync/internal/common"
	"github.com/Veraticus/vowsync/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// app carries the configuration shared by every command. Each root command
// gets its own viper instance so commands can be executed repeatedly in
// tests.
type app struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	rootCmd := &cobra.Command{
		Use:   "vowsync",
		Short: "💍 Wedding planning ledger",
		Long: `vowsync keeps a wedding's guests, items, vendors, payments, budget and bar
orders in one local database, tells you what is overdue or over budget, and
reconciles vendor payments against your bank statements.`,
		PersistentPreRunE: a.initConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/vowsync/config.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("db", "", "database path (default: "+config.DefaultDatabasePath+")")
	flags.String("wedding", "", "wedding id (default: the only wedding in the database)")

	// Bind flags to viper
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))
	_ = a.v.BindPFlag(config.KeyDatabasePath, flags.Lookup("db"))
	_ = a.v.BindPFlag(config.KeyWeddingID, flags.Lookup("wedding"))

	rootCmd.AddCommand(
		a.weddingCmd(),
		a.eventsCmd(),
		a.guestsCmd(),
		a.itemsCmd(),
		a.vendorsCmd(),
		a.paymentsCmd(),
		a.invoicesCmd(),
		a.budgetCmd(),
		a.barCmd(),
		a.importCmd(),
		a.browseCmd(),
		a.migrateCmd(),
		versionCmd(),
	)

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Info("Interrupted")
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, cli.FormatError(common.UserMessage(err)))
		slog.Debug("Command failed", "error", err)
		os.Exit(1)
	}
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		if _, err := os.Stat(a.cfgFile); errors.Is(err, os.ErrNotExist) {
			return common.NewUserError(
				fmt.Sprintf("Config file %s does not exist", a.cfgFile),
				fmt.Errorf("%w: %s", common.ErrMissingConfig, a.cfgFile))
		}
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		a.v.AddConfigPath(filepath.Join(home, ".config", "vowsync"))
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("VOWSYNC")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return a.setupLogging(cmd)
}

func (a *app) setupLogging(cmd *cobra.Command) error {
	level, err := common.ParseLevel(a.v.GetString(config.KeyLogLevel))
	if err != nil {
		return err
	}

	format := a.v.GetString(config.KeyLogFormat)
	if format != "console" && format != "json" {
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, format)
	}

	common.SetupLogger(cmd.ErrOrStderr(), level, format)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vowsync %s\n", version)
		},
	}
}
