package cli

import (
	"fmt"

	"github.com/Gautam-Hegde/notte-go/pkg/api"
	"github.com/Gautam-Hegde/notte-go/pkg/notte"
	"github.com/spf13/cobra"
)

func newSessionsCmd() *cobra.Command {
	sessionsCmd := &cobra.Command{
		Use:     "sessions",
		Aliases: []string{"session"},
		Short:   "Start, close and inspect browser sessions",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	sessionsCmd.AddCommand(
		newSessionsStartCmd(),
		newSessionsCloseCmd(),
		newSessionsStatusCmd(),
		newSessionsListCmd(),
	)
	return sessionsCmd
}

func newSessionsStartCmd() *cobra.Command {
	var (
		timeout    int
		maxSteps   int
		screenshot bool
		proxies    []string
	)
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new browser session",
		Long: `Start a new browser session. The session id is remembered so that
"notte sessions close" and "notte agents run" can omit it.

Examples:
  notte sessions start
  notte sessions start --timeout 10 --screenshot -j`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			req := api.SessionStartRequest{
				TimeoutMinutes: timeout,
				MaxSteps:       maxSteps,
				Proxies:        proxies,
			}
			if cmd.Flags().Changed("screenshot") {
				req.Screenshot = &screenshot
			}
			s, err := client.Sessions.Start(cmd.Context(), req)
			if err != nil {
				return err
			}
			if err := saveState(s.LastSessionResponse.ID, ""); err != nil {
				return err
			}
			return printSession(cmd, s.LastSessionResponse)
		},
	}
	cmd.Flags().IntVar(&timeout, "timeout", api.DefaultOperationSessionTimeoutInMinutes, "Session timeout in minutes")
	cmd.Flags().IntVar(&maxSteps, "max-steps", api.DefaultMaxNbSteps, "Maximum number of steps in the trajectory")
	cmd.Flags().BoolVar(&screenshot, "screenshot", false, "Include a screenshot in the response")
	cmd.Flags().StringSliceVar(&proxies, "proxy", nil, "Proxy to use, may be repeated")
	return cmd
}

func newSessionsCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close [SESSION_ID]",
		Short: "Close a session, by default the last one started",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			s, err := client.Sessions.Close(cmd.Context(), argOr(args, GetConfig().LastSessionID))
			if err != nil {
				return err
			}
			if err := saveState(s.LastSessionResponse.ID, ""); err != nil {
				return err
			}
			return printSession(cmd, s.LastSessionResponse)
		},
	}
}

func newSessionsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [SESSION_ID]",
		Short: "Show the status of a session, by default the last one started",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			s, err := client.Sessions.Status(cmd.Context(), argOr(args, GetConfig().LastSessionID))
			if err != nil {
				return err
			}
			return printSession(cmd, s.LastSessionResponse)
		},
	}
}

func newSessionsListCmd() *cobra.Command {
	var (
		all   bool
		limit int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			list, err := client.Sessions.List(cmd.Context(), &notte.SessionListRequest{OnlyActive: !all, Limit: limit})
			if err != nil {
				return err
			}
			return printResult(cmd, list, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", titleCase.String("sessions"))
				for _, s := range list {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s  %s  created %s\n", s.ID, statusLabel(s.Status), s.CreatedAt)
				}
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Include sessions that are no longer active")
	cmd.Flags().IntVar(&limit, "limit", api.DefaultListLimit, "Maximum number of sessions to return")
	return cmd
}

func printSession(cmd *cobra.Command, s *api.SessionResponse) error {
	return printResult(cmd, s, func() {
		fmt.Fprintf(cmd.OutOrStdout(), "Session: %s\n", s.ID)
		fmt.Fprintf(cmd.OutOrStdout(), "Status: %s\n", statusLabel(s.Status))
		fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", s.CreatedAt)
		fmt.Fprintf(cmd.OutOrStdout(), "Updated: %s\n", s.UpdatedAt)
		if !s.ExpiresAt.IsNil() {
			fmt.Fprintf(cmd.OutOrStdout(), "Expires: %s\n", s.ExpiresAt.String())
		}
	})
}

func argOr(args []string, fallback string) string {
	if len(args) > 0 {
		return args[0]
	}
	return fallback
}
