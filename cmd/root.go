package cmd

import (
	"fmt"
	"io"

	"shoestock/internal/config"
	"shoestock/internal/csv"
	"shoestock/internal/inventory"
	"shoestock/internal/logging"
	"shoestock/internal/shell"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	v         = viper.New()
	cfg       *config.Config
	logCloser io.Closer
)

// persistentKeys maps root flags to config keys. Subcommands list their own
// bindings in Annotations.
var persistentKeys = map[string]string{
	"file":        "file",
	"import-mode": "import_mode",
	"currency":    "currency",
	"log-level":   "log_level",
	"log-file":    "log_file",
}

var rootCmd = &cobra.Command{
	Use:   "shoestock",
	Short: "A terminal inventory tracker for a shoe retailer",
	Long: `Shoestock keeps a shoe inventory in a plain comma-separated file.

Run without a command to open the interactive console: import stock,
capture new products, view and value the inventory, search by code, and
get restock and sale advice.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runShell,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("shoestock failed")
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnFinalize(closeLog)

	flags := rootCmd.PersistentFlags()
	flags.String("file", config.DefaultFile, "Inventory file")
	flags.String("import-mode", "append", "Import mode: append or replace")
	flags.String("currency", "£", "Currency symbol used in reports")
	flags.String("log-level", "warn", "Log level: trace, debug, info, warn, error or off")
	flags.String("log-file", "", "Write logs to this file instead of stderr")

	config.SetDefaults(v)

	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(pullCmd)
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
}

// setup binds the running command's flags, then loads config and logging.
func setup(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd); err != nil {
		return err
	}

	c, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = c

	closer, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	logCloser = closer

	log.Debug().Str("command", cmd.Name()).Str("file", cfg.File).Str("import_mode", cfg.ImportMode).Msg("config loaded")
	return nil
}

func bindFlags(cmd *cobra.Command) error {
	bind := func(keys map[string]string) error {
		for name, key := range keys {
			flag := cmd.Flags().Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
		return nil
	}
	if err := bind(persistentKeys); err != nil {
		return err
	}
	return bind(cmd.Annotations)
}

func closeLog() {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
}

func newSession() *inventory.Service {
	return inventory.NewService(csv.NewFile(cfg.File), inventory.Options{
		Currency:   cfg.Currency,
		ImportMode: inventory.ImportMode(cfg.ImportMode),
	})
}

// loadSession imports the backing file. Commands that only read the
// inventory fail when it cannot be imported.
func loadSession() (*inventory.Service, error) {
	svc := newSession()
	if _, err := svc.Import(); err != nil {
		return nil, fmt.Errorf("failed to import inventory: %w", err)
	}
	return svc, nil
}

func runShell(cmd *cobra.Command, args []string) error {
	return shell.New(newSession(), cfg.File, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
}
