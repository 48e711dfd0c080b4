package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/Gautam-Hegde/notte-go/pkg/agents"
	"github.com/Gautam-Hegde/notte-go/pkg/api"
	"github.com/Gautam-Hegde/notte-go/pkg/notte"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

func newAgentsCmd() *cobra.Command {
	agentsCmd := &cobra.Command{
		Use:     "agents",
		Aliases: []string{"agent"},
		Short:   "Run, stop and inspect agents",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	agentsCmd.AddCommand(
		newAgentsRunCmd(),
		newAgentsStopCmd(),
		newAgentsStatusCmd(),
		newAgentsListCmd(),
	)
	return agentsCmd
}

// buildAgentConfig parses raw, or the file named after a leading '@', and
// applies each path=value edit. Values that are valid JSON are stored as
// such, anything else as a string.
func buildAgentConfig(raw string, sets []string) (map[string]any, error) {
	data := []byte(raw)
	if strings.HasPrefix(raw, "@") {
		var err error
		data, err = os.ReadFile(strings.TrimPrefix(raw, "@"))
		if err != nil {
			return nil, errors.Wrap(err, "unable to read agent config")
		}
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		data = []byte("{}")
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.New("agent config is not valid JSON")
	}

	for _, set := range sets {
		path, value, ok := strings.Cut(set, "=")
		if !ok || path == "" {
			return nil, errors.Errorf("invalid --set %q, expected path=value", set)
		}
		var err error
		if gjson.Valid(value) {
			data, err = sjson.SetRawBytes(data, path, []byte(value))
		} else {
			data, err = sjson.SetBytes(data, path, value)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "unable to set %s", path)
		}
	}

	var cfg map[string]any
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "agent config must be a JSON object")
	}
	return cfg, nil
}

func newAgentsRunCmd() *cobra.Command {
	var (
		sessionID   string
		agentConfig string
		sets        []string
		maxActions  int
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an agent on a session, by default the last one started",
		Long: `Run an agent on a session. The agent configuration is a JSON object given
inline or as @file, and may be edited with --set path=value.

Examples:
  notte agents run --agent-config '{"task":"find the price"}'
  notte agents run --agent-config @agent.json --set task="book a table" --set parameters.max_tabs=2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildAgentConfig(agentConfig, sets)
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			a, err := client.Agents.Run(cmd.Context(), api.AgentRunRequest{
				SessionID:   valueOr(sessionID, GetConfig().LastSessionID),
				AgentConfig: cfg,
				MaxActions:  maxActions,
			})
			if err != nil {
				return err
			}
			if err := saveState(a.LastAgentResponse.SessionID, a.LastAgentResponse.ID); err != nil {
				return err
			}
			return printAgent(cmd, a.LastAgentResponse)
		},
	}
	cmd.Flags().StringVar(&sessionID, "session-id", "", "Session to run the agent on (default: last session)")
	cmd.Flags().StringVar(&agentConfig, "agent-config", "{}", "Agent configuration as JSON, or @file")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Set path=value in the agent configuration, may be repeated")
	cmd.Flags().IntVar(&maxActions, "max-actions", api.DefaultMaxNbActions, "Maximum number of actions the agent can perform")
	return cmd
}

func newAgentsStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop [AGENT_ID]",
		Short: "Stop an agent, by default the last one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			a, err := client.Agents.Stop(cmd.Context(), argOr(args, GetConfig().LastAgentID))
			if err != nil {
				return err
			}
			if err := saveState("", a.LastAgentResponse.ID); err != nil {
				return err
			}
			return printAgent(cmd, a.LastAgentResponse)
		},
	}
}

func newAgentsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [AGENT_ID]",
		Short: "Show the status and output of an agent, by default the last one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			status, err := client.Agents.Status(cmd.Context(), argOr(args, GetConfig().LastAgentID))
			if err != nil {
				return err
			}
			return printAgentStatus(cmd, status)
		},
	}
}

func newAgentsListCmd() *cobra.Command {
	var (
		all   bool
		limit int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			list, err := client.Agents.List(cmd.Context(), &notte.AgentListRequest{OnlyActive: !all, Limit: limit})
			if err != nil {
				return err
			}
			return printResult(cmd, list, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", titleCase.String("agents"))
				for _, a := range list {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s  %s  session %s\n", a.ID, statusLabel(a.Status), a.SessionID)
				}
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Include agents that are no longer active")
	cmd.Flags().IntVar(&limit, "limit", api.DefaultListLimit, "Maximum number of agents to return")
	return cmd
}

func printAgent(cmd *cobra.Command, a *api.AgentResponse) error {
	return printResult(cmd, a, func() {
		fmt.Fprintf(cmd.OutOrStdout(), "Agent: %s\n", a.ID)
		fmt.Fprintf(cmd.OutOrStdout(), "Session: %s\n", a.SessionID)
		fmt.Fprintf(cmd.OutOrStdout(), "Status: %s\n", statusLabel(a.Status))
		if len(a.Data) > 0 {
			data, _ := json.MarshalIndent(a.Data, "", "  ")
			fmt.Fprintf(cmd.OutOrStdout(), "Output:\n%s\n", data)
		}
	})
}

func printAgentStatus(cmd *cobra.Command, s agents.StatusResponse) error {
	return printResult(cmd, s, func() {
		fmt.Fprintf(cmd.OutOrStdout(), "Agent: %s\n", s.ID)
		fmt.Fprintf(cmd.OutOrStdout(), "Session: %s\n", s.SessionID)
		fmt.Fprintf(cmd.OutOrStdout(), "Status: %s\n", statusLabel(s.Status))
		fmt.Fprintf(cmd.OutOrStdout(), "Updated: %s\n", s.UpdatedAt)
		if s.Output != nil {
			data, _ := json.MarshalIndent(*s.Output, "", "  ")
			fmt.Fprintf(cmd.OutOrStdout(), "Output:\n%s\n", data)
		}
	})
}
