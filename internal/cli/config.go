package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viant/pydeploy"
	"gopkg.in/yaml.v3"
)

const envPrefix = "PYDEPLOY"

// loadConfig layers defaults, config file, PYDEPLOY_* environment variables and flags
func (a *App) loadConfig(cmd *cobra.Command) (*pydeploy.Config, error) {
	v := viper.New()
	defaults := pydeploy.DefaultConfig()
	v.SetDefault("project", defaults.Project)
	v.SetDefault("venvDir", defaults.VenvDir)
	v.SetDefault("scratchDir", defaults.ScratchDir)
	v.SetDefault("timeoutMs", defaults.TimeoutMs)
	v.SetDefault("host.url", defaults.Host.URL)
	v.SetDefault("host.user", defaults.Host.User)
	v.SetDefault("host.credentials", defaults.Host.Credentials)
	v.SetDefault("host.keyFile", defaults.Host.KeyFile)
	v.SetDefault("host.knownHosts", defaults.Host.KnownHosts)
	v.SetDefault("host.insecure", defaults.Host.Insecure)
	v.SetDefault("python.version", defaults.Python.Version)
	v.SetDefault("python.url", defaults.Python.URL)
	v.SetDefault("python.makeInstall", defaults.Python.MakeInstall)
	v.SetDefault("virtualenv.url", defaults.Virtualenv.URL)
	v.SetDefault("source.dir", defaults.Source.Dir)
	v.SetDefault("source.probeFile", defaults.Source.ProbeFile)
	v.SetDefault("policy.mode", defaults.Policy.Mode)
	v.SetDefault("trace.enabled", defaults.Trace.Enabled)
	v.SetDefault("trace.file", defaults.Trace.File)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if a.flags.config != "" {
		v.SetConfigFile(a.flags.config)
	} else {
		v.SetConfigName("pydeploy")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.flags.config != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	pf := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		"host.url":         "host",
		"host.user":        "user",
		"host.credentials": "credentials",
		"host.keyFile":     "key",
		"host.insecure":    "insecure",
		"policy.mode":      "policy",
		"trace.file":       "trace-file",
	} {
		if err := v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			return nil, err
		}
	}

	config := &pydeploy.Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if config.Trace.File != "" {
		config.Trace.Enabled = true
	}
	if config.Host.User == "" {
		config.Host.User = hostUser(config.Host.URL)
	}
	config.Host.URL = hostURL(config.Host.URL)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// hostURL accepts user@host:port shorthand and drops the user part, which goes to host.user
func hostURL(host string) string {
	if host == "" || strings.Contains(host, "://") {
		return host
	}
	if idx := strings.Index(host, "@"); idx != -1 {
		host = host[idx+1:]
	}
	return "ssh://" + host + "/"
}

// hostUser returns user from user@host shorthand
func hostUser(host string) string {
	if strings.Contains(host, "://") {
		return ""
	}
	if idx := strings.Index(host, "@"); idx != -1 {
		return host[:idx]
	}
	return ""
}

func (a *App) newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err = encoder.Encode(config); err != nil {
				return err
			}
			return encoder.Close()
		},
	})
	return configCmd
}
