package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default name of the config file
const DefaultConfigFile = "config.yaml"

// ConfigFormatVersion is the current version of the configuration file format
const ConfigFormatVersion = "0.1.0"

// configVersionConstraint accepts files written by any 0.1.x CLI.
var configVersionConstraint = func() *semver.Constraints {
	c, err := semver.NewConstraint("~" + ConfigFormatVersion)
	if err != nil {
		panic(err)
	}
	return c
}()

// Config represents the configuration for the Notte CLI
type Config struct {
	// Version of the configuration file format
	Version string `json:"version" yaml:"version" toml:"version"`
	// ServerURL is the URL of the Notte API
	ServerURL string `json:"server_url,omitempty" yaml:"server_url,omitempty" toml:"server_url,omitempty"`
	// APIKey is the Notte API key
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" toml:"api_key,omitempty"`
	// LastSessionID is the session most recently started or inspected
	LastSessionID string `json:"last_session_id,omitempty" yaml:"last_session_id,omitempty" toml:"last_session_id,omitempty"`
	// LastAgentID is the agent most recently run or stopped
	LastAgentID string `json:"last_agent_id,omitempty" yaml:"last_agent_id,omitempty" toml:"last_agent_id,omitempty"`
}

var config *Config

// GetDefaultConfigPath returns the default path for the config file
// It uses the OS-specific config directory (e.g., ~/.config/notte on Linux)
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user config directory")
	}
	return filepath.Join(configDir, "notte", DefaultConfigFile), nil
}

func isTOML(file string) bool {
	return strings.EqualFold(filepath.Ext(file), ".toml")
}

// LoadConfig loads the configuration from file. A missing file yields an
// empty configuration.
func LoadConfig(file string) error {
	content, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			config = &Config{Version: ConfigFormatVersion}
			return nil
		}
		return errors.Wrap(err, "unable to read config file")
	}

	var c Config
	if isTOML(file) {
		_, err = toml.Decode(string(content), &c)
	} else {
		err = yaml.Unmarshal(content, &c)
	}
	if err != nil {
		return errors.Wrapf(err, "unable to parse config file %s", file)
	}
	if err := c.ValidateConfig(); err != nil {
		return errors.Wrapf(err, "invalid config file %s", file)
	}

	config = &c
	return nil
}

// GetConfig returns the current configuration
func GetConfig() *Config {
	if config == nil {
		config = &Config{Version: ConfigFormatVersion}
	}
	return config
}

// WriteConfig writes the configuration to file, in TOML when the file name
// ends in .toml and YAML otherwise.
func (cfg *Config) WriteConfig(file string) error {
	if file == "" {
		return errors.New("file path cannot be empty")
	}

	err := os.MkdirAll(filepath.Dir(file), 0o700)
	if err != nil {
		return errors.Wrap(err, "unable to create config directory")
	}

	if cfg.Version == "" {
		cfg.Version = ConfigFormatVersion
	}

	var data []byte
	if isTOML(file) {
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(cfg)
		data = buf.Bytes()
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return errors.Wrap(err, "unable to generate configuration")
	}

	if err := os.WriteFile(file, data, 0o600); err != nil {
		return errors.Wrap(err, "unable to write config file")
	}
	return nil
}

// ValidateConfig checks the format version and server URL.
func (cfg *Config) ValidateConfig() error {
	if cfg.Version == "" {
		return errors.New("version is required")
	}
	v, err := semver.NewVersion(cfg.Version)
	if err != nil {
		return errors.Wrapf(err, "invalid version %q", cfg.Version)
	}
	if !configVersionConstraint.Check(v) {
		return errors.Errorf("unsupported config version %s, expected %s", cfg.Version, ConfigFormatVersion)
	}
	if cfg.ServerURL != "" && !strings.HasPrefix(cfg.ServerURL, "http://") && !strings.HasPrefix(cfg.ServerURL, "https://") {
		return errors.New("server_url must start with http:// or https://")
	}
	return nil
}

// MorphServer ensures the server URL is properly formatted
// Adds https:// prefix if missing and removes trailing slashes
func MorphServer(server string) string {
	if server == "" {
		return server
	}
	server = strings.TrimRight(server, "/")
	if !strings.HasPrefix(server, "http://") && !strings.HasPrefix(server, "https://") {
		server = "https://" + server
	}
	return server
}

// maskKey hides all but the last four characters of key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

// saveState records the last session and agent ids so that later
// invocations can omit them.
func saveState(sessionID, agentID string) error {
	cfg := GetConfig()
	if sessionID != "" {
		cfg.LastSessionID = sessionID
	}
	if agentID != "" {
		cfg.LastAgentID = agentID
	}
	return cfg.WriteConfig(configFile)
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  `Manage CLI configuration settings like the API key and server URL.`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	var setAPIKey, setServer string
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Store the API key and server URL in the config file",
		Long: `Store the API key and server URL in the config file.

Examples:
  notte config set --key sk-...
  notte config set --url http://localhost:8000 --config ./notte.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if setAPIKey == "" && setServer == "" {
				return errors.New("nothing to set, use --key or --url")
			}
			cfg := GetConfig()
			if setAPIKey != "" {
				cfg.APIKey = setAPIKey
			}
			if setServer != "" {
				cfg.ServerURL = MorphServer(setServer)
			}
			if err := cfg.WriteConfig(configFile); err != nil {
				return errors.Wrap(err, "failed to write config")
			}
			return printResult(cmd, map[string]string{
				"server":      cfg.ServerURL,
				"config_file": configFile,
			}, func() {
				okLabel.Fprintf(cmd.OutOrStdout(), "Configuration saved\n")
				fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n", configFile)
			})
		},
	}
	setCmd.Flags().StringVar(&setAPIKey, "key", "", "Notte API key to store")
	setCmd.Flags().StringVar(&setServer, "url", "", "Notte server URL to store (e.g. https://api.notte.cc)")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *GetConfig()
			cfg.APIKey = maskKey(cfg.APIKey)
			return printResult(cmd, map[string]any{
				"config_file": configFile,
				"value":       cfg,
			}, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n", configFile)
				fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", cfg.Version)
				fmt.Fprintf(cmd.OutOrStdout(), "Server: %s\n", valueOr(cfg.ServerURL, "(default)"))
				fmt.Fprintf(cmd.OutOrStdout(), "API key: %s\n", valueOr(cfg.APIKey, "(not set)"))
				fmt.Fprintf(cmd.OutOrStdout(), "Last session: %s\n", valueOr(cfg.LastSessionID, "-"))
				fmt.Fprintf(cmd.OutOrStdout(), "Last agent: %s\n", valueOr(cfg.LastAgentID, "-"))
			})
		},
	}

	configCmd.AddCommand(setCmd, showCmd)
	return configCmd
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
