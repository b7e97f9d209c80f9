// Command indexer-rpc works with indexer RPC configuration documents.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/movelabs/indexer-rpc/internal/api/coins"
	"github.com/movelabs/indexer-rpc/internal/api/objects"
	"github.com/movelabs/indexer-rpc/internal/api/transactions"
	"github.com/movelabs/indexer-rpc/internal/config"
	"github.com/movelabs/indexer-rpc/internal/logging"
	"github.com/movelabs/indexer-rpc/internal/nameservice"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand constructs the root Cobra command. It registers the
// configuration tooling subcommands and the global logging flags.
func newRootCommand() *cobra.Command {
	logCfg := logging.DefaultConfig()

	root := &cobra.Command{
		Use:          "indexer-rpc",
		Short:        "Indexer RPC configuration tools",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Initialize(logCfg)
		},
	}
	root.PersistentFlags().StringVar(&logCfg.Level, "log-level", logCfg.Level,
		"log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logCfg.Format, "log-format", logCfg.Format,
		"log format (text, json)")

	root.AddCommand(newGenerateConfigCommand())
	root.AddCommand(newCheckConfigCommand())
	return root
}

func newGenerateConfigCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "generate-config",
		Short: "Print an example configuration document",
		Long: "Print a configuration document with every field set to its default value, " +
			"suitable as a starting template.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			example := config.Example()

			var out []byte
			var err error
			switch format {
			case "toml":
				out, err = toml.Marshal(example)
			case "yaml":
				out, err = yaml.Marshal(example)
			default:
				return fmt.Errorf("invalid format: %s (must be toml or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("failed to serialize example config: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "output format (toml, yaml)")
	return cmd
}

func newCheckConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check-config FILE",
		Short: "Check a configuration document against the built-in defaults",
		Long: "Load a configuration document, layer it over the built-in defaults the " +
			"service would use, and validate every resolved record. Unrecognized fields " +
			"are reported as warnings, exactly as they would be at start-up.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}

			finished := cfg.Finish()
			objectsCfg := finished.Objects.Finish(objects.DefaultConfig())
			transactionsCfg := finished.Transactions.Finish(transactions.DefaultConfig())
			nameServiceCfg := finished.NameService.Finish(nameservice.DefaultConfig())
			coinsCfg := finished.Coins.Finish(coins.DefaultConfig())
			limits := finished.PackageResolver.Finish()

			for _, v := range []interface{ Validate() error }{
				objectsCfg, transactionsCfg, nameServiceCfg, coinsCfg, limits,
			} {
				if err := v.Validate(); err != nil {
					return fmt.Errorf("invalid configuration: %w", err)
				}
			}
			if finished.BigtableConfig != nil {
				if err := finished.BigtableConfig.Validate(); err != nil {
					return fmt.Errorf("invalid configuration: %w", err)
				}
				slog.Info("bigtable KV backend enabled",
					"instance_id", finished.BigtableConfig.InstanceID)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "configuration OK")
			return nil
		},
	}
}
