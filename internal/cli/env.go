package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newEnvCmd() *cobra.Command {
	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Inspect the Notte environment",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	envCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the status reported by the Notte server",
		Long: `Show the status reported by the Notte server.

Examples:
  notte env status
  notte env status --local -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			status, err := client.Env.Status(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(cmd, status, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "notte CLI %s\n", getCLIVersion())
				fmt.Fprintf(cmd.OutOrStdout(), "Server: %s\n", client.Env.ServerURL())
				keys := make([]string, 0, len(status))
				for k := range status {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					v := status[k]
					if s, ok := v.(string); ok && k == "status" {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", titleCase.String(k), statusLabel(s))
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", titleCase.String(k), v)
				}
			})
		},
	})
	return envCmd
}
