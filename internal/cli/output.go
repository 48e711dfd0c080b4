package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gautam-Hegde/notte-go/pkg/notte"
	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"sigs.k8s.io/yaml"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var titleCase = cases.Title(language.English)

// printResult writes value as JSON or YAML when requested, and otherwise
// calls human to print the human-readable form.
func printResult(cmd *cobra.Command, value any, human func()) error {
	switch {
	case jsonOutput:
		return printJSON(cmd, map[string]any{"result": 1, "value": value})
	case outputFormat == "yaml":
		return printYAML(cmd, value)
	}
	human()
	return nil
}

// printJSON prints data as indented JSON to the command output
func printJSON(cmd *cobra.Command, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func printYAML(cmd *cobra.Command, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	yamlData, err := yaml.JSONToYAML(jsonData)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(yamlData))
	return nil
}

// printError reports err on stderr, or on stdout as {"error": ...} in JSON
// mode. Detail follows --error-mode.
func printError(cmd *cobra.Command, err error) {
	mode, parseErr := notte.ParseErrorMode(errorMode)
	if parseErr != nil {
		mode = notte.ErrorModeDeveloper
	}
	msg := notte.FormatError(notte.WithErrorMode(context.Background(), mode), err)
	if jsonOutput {
		printJSON(cmd, map[string]string{"error": msg})
		return
	}
	errorLabel.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", msg)
}

// statusLabel renders a server status such as "running" or "closed" with a
// colour matching its state.
func statusLabel(status string) string {
	label := titleCase.String(strings.ReplaceAll(status, "_", " "))
	switch strings.ToLower(status) {
	case "active", "running", "ok":
		return okLabel.Sprint(label)
	case "closed", "stopped", "completed":
		return color.New(color.FgYellow).Sprint(label)
	case "failed", "error", "timed_out":
		return errorLabel.Sprint(label)
	}
	return label
}
