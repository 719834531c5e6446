// Package cmd provides the CLI commands for mobile-tariffs.
package cmd

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mobile-tariffs/adapters/hclcatalog"
	"mobile-tariffs/core/catalog"
	"mobile-tariffs/core/ui"
	"mobile-tariffs/internal/config"
	"mobile-tariffs/internal/errors"
	"mobile-tariffs/internal/logging"
)

const version = "0.1.0"

type options struct {
	cfgFile     string
	catalogFile string
	format      string
	verbose     bool
	noColor     bool
}

// app is what every subcommand works against once the root has run
type app struct {
	catalog *catalog.Catalog
	ui      *ui.Writer
	out     io.Writer
	format  string
}

// reportedError has already been shown to the user; Execute only sets the exit code.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// Execute runs the CLI
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		var reported reportedError
		if !stderrors.As(err, &reported) {
			fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		}
	}
	logging.Sync()
	return err
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}
	a := &app{}

	root := &cobra.Command{
		Use:   "mobile-tariffs",
		Short: "Browse mobile operators and pick a tariff",
		Long: `mobile-tariffs lists mobile network operators with their
connection descriptors and tariff plans, and confirms a tariff by price.

Examples:
  mobile-tariffs operators --details
  mobile-tariffs tariffs mts
  mobile-tariffs select mts 499
  mobile-tariffs --catalog ./operators.hcl stats`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.mobile-tariffs.json)")
	flags.StringVar(&opts.catalogFile, "catalog", "", "HCL catalog file replacing the built-in operators")
	flags.StringVar(&opts.format, "format", config.FormatText, "output format (text, json)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		operatorsCmd(a),
		tariffsCmd(a),
		selectCmd(a),
		statsCmd(a),
		aboutCmd(a),
		versionCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command, opts *options) error {
	path := opts.cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.Catalog.File = opts.catalogFile
	}
	if flags.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if flags.Changed("no-color") {
		cfg.Output.NoColor = opts.noColor
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return errors.Wrap(errors.TypeConfig, "failed to initialize logging", err)
	}

	if cfg.Catalog.File != "" {
		a.catalog, err = hclcatalog.NewLoader().LoadFile(cfg.Catalog.File)
		if err != nil {
			return err
		}
	} else {
		a.catalog = catalog.Default()
	}
	logging.Debug("catalog ready",
		zap.String("source", catalogSource(cfg)),
		zap.Int("operators", a.catalog.Len()))

	a.out = cmd.OutOrStdout()
	a.ui = ui.NewWriter(a.out, cfg.Output.NoColor)
	a.format = cfg.Output.Format
	return nil
}

func catalogSource(cfg *config.Config) string {
	if cfg.Catalog.File == "" {
		return "built-in"
	}
	return cfg.Catalog.File
}

// lookup resolves an operator or reports NOT_FOUND
func (a *app) lookup(id string) (catalog.Operator, error) {
	op, ok := a.catalog.Get(id)
	if !ok {
		logging.Debug("operator lookup missed", zap.String("operator", id))
		return catalog.Operator{}, errors.NotFound("operator", id)
	}
	return op, nil
}

func (a *app) jsonOutput() bool {
	return a.format == config.FormatJSON
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Internal("failed to encode output", err)
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mobile-tariffs version %s\n", version)
		},
	}
}
