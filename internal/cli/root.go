package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
	"github.com/osse101/GardenPlanner_Go/internal/config"
	"github.com/osse101/GardenPlanner_Go/internal/logger"
	"github.com/osse101/GardenPlanner_Go/internal/planner"
	"github.com/osse101/GardenPlanner_Go/internal/utils"
)

// app carries the global flags and the lazily started planner service
type app struct {
	catalogPath string
	asJSON      bool
	outPath     string
	verbose     bool

	once sync.Once
	svc  planner.Service
	err  error
}

// service opens the catalog and starts the planner on first use
func (a *app) service() (planner.Service, error) {
	a.once.Do(func() {
		cat, err := catalog.Open(a.catalogPath)
		if err != nil {
			a.err = fmt.Errorf("failed to load catalog: %w", err)
			return
		}
		a.svc = planner.NewService(cat, planner.Config{Workers: 1})
	})
	return a.svc, a.err
}

func (a *app) close(ctx context.Context) error {
	if a.svc == nil {
		return nil
	}
	return a.svc.Shutdown(ctx)
}

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "planner",
		Short: "Garden planner - simulate harvests and crafter production",
		Long: `Garden planner decodes garden save codes and simulates what the layout
harvests, what the crafters make of it and what it is worth.

Plans can be given as flags or as a YAML/JSON plan file. Flags win over the file.

Examples:
  planner simulate --code v0.2_DIM-1_CROPS-TNNNNNNNN --days 30
  planner produce --plan plan.yaml --strategy open
  planner value --plan plan.yaml --json
  planner normalize v0.1_DIM-1_CROPS-Ct.QUCoSpNcBcNN.HPNN
  planner catalog resolve "spicy peper"
  planner schema > catalog.schema.json`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logger.LogLevelWarn
			if a.verbose {
				level = logger.LogLevelDebug
			}
			logger.InitLoggerWithWriter(logger.NewConfig(level, logger.LogFormatText,
				logger.DefaultServiceName, logger.DefaultVersion, logger.EnvironmentDev, false), cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close(cmd.Context())
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.catalogPath, "catalog", os.Getenv(config.EnvCatalogPath),
		"Path to a catalog override file (default: embedded catalog)")
	rootCmd.PersistentFlags().BoolVar(&a.asJSON, "json", false,
		"Print the full report as JSON")
	rootCmd.PersistentFlags().StringVarP(&a.outPath, "out", "o", "",
		"Also write the JSON report to this file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Enable verbose output")

	rootCmd.AddCommand(newSimulateCommand(a))
	rootCmd.AddCommand(newProduceCommand(a))
	rootCmd.AddCommand(newValueCommand(a))
	rootCmd.AddCommand(newNormalizeCommand(a))
	rootCmd.AddCommand(newCatalogCommand(a))
	rootCmd.AddCommand(newSchemaCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// emit writes the JSON report to --out when set, then prints it either as
// JSON or through the text renderer
func (a *app) emit(w io.Writer, report any, text func(io.Writer)) error {
	if a.outPath != "" {
		if err := utils.SaveJSON(a.outPath, report); err != nil {
			return err
		}
	}
	if a.asJSON {
		return writeJSON(w, report)
	}
	text(w)
	return nil
}
