package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/Gautam-Hegde/notte-go/internal/common/logtrace"
	"github.com/Gautam-Hegde/notte-go/pkg/notte"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput   bool
	outputFormat string
	configFile   string
	apiKeyFlag   string
	serverFlag   string
	useLocal     bool
	verbose      bool
	errorMode    string
)

var ErrAlreadyHandled = errors.New("already handled")

var okLabel = color.New(color.FgGreen)
var errorLabel = color.New(color.FgRed)

// newRootCmd builds the command tree. Flags are bound to the package globals
// and reset to their defaults on every call.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "notte [command] [flags]",
		Short: "Notte CLI - drive hosted browser sessions and agents",
		Long: `Notte CLI is a command line interface for the Notte browser automation API.
It starts and closes browser sessions, runs agents on them and reports their status.

Examples:
  # Store credentials
  notte config set --key sk-...

  # Start a session, then close it
  notte sessions start --timeout 5
  notte sessions close

  # Run an agent on the last session
  notte agents run --agent-config '{"task":"find the price"}'`,
		PersistentPreRunE: preRunHandlePersistents,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
		SilenceErrors: true, // Prevent Cobra from printing the error
		SilenceUsage:  true, // Prevent Cobra from printing usage on error
	}

	// Set up persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "", "", "Path to configuration file (.yaml or .toml) to override default")
	pf.StringVarP(&apiKeyFlag, "api-key", "", "", "Notte API key, overrides the config file and NOTTE_API_KEY")
	pf.StringVarP(&serverFlag, "server", "", "", "Notte server URL, overrides the config file and NOTTE_SERVER_URL")
	pf.BoolVarP(&useLocal, "local", "", false, "Use the local development server ("+notte.LocalServerURL+")")
	pf.BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
	pf.StringVarP(&outputFormat, "output", "o", "", "Output format: yaml")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log requests to stderr")
	pf.StringVarP(&errorMode, "error-mode", "", string(notte.ErrorModeDeveloper), "Error detail: developer, user or agent")

	// Add commands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newEnvCmd())
	rootCmd.AddCommand(newSessionsCmd())
	rootCmd.AddCommand(newAgentsCmd())
	return rootCmd
}

// Execute runs the CLI and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		if !errors.Is(err, ErrAlreadyHandled) {
			printError(rootCmd, err)
		}
		os.Exit(1)
	}
}

// preRunHandlePersistents loads .env and the config file, then attaches the
// logger and error mode to the command context.
func preRunHandlePersistents(cmd *cobra.Command, args []string) error {
	if err := notte.LoadDotEnv(); err != nil {
		return err
	}

	mode, err := notte.ParseErrorMode(errorMode)
	if err != nil {
		return err
	}
	if outputFormat != "" && outputFormat != "yaml" {
		return errors.New("unsupported output format " + outputFormat + ", only yaml is supported")
	}

	if configFile == "" {
		configFile, err = GetDefaultConfigPath()
		if err != nil {
			return err
		}
	}
	if err := LoadConfig(configFile); err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := logtrace.InitLogger(verbose)
	ctx = logger.WithContext(ctx)
	ctx = notte.WithErrorMode(ctx, mode)
	cmd.SetContext(ctx)
	return nil
}

// newVersionCmd creates and returns a new version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of notte CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, map[string]string{
				"version":     getCLIVersion(),
				"config_file": configFile,
			}, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "notte CLI %s\n", getCLIVersion())
				fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n", configFile)
			})
		},
	}
}

// getCLIVersion returns the current CLI version
func getCLIVersion() string {
	return "v0.1.0"
}
