package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"BaselExplorer/internal/config"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var ee *exitErr
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	root := &cobra.Command{
		Use:           "basel",
		Short:         "Explore Basel capital requirements",
		Long:          "basel teaches bank capital regulation: risk-weighted assets, credit provisioning, leverage and a multi-year bank simulation.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath(), "Path to YAML config")

	loadConfig := func() (*config.Config, error) {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return nil, codeError(3, "load config: %s", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, codeError(3, "config validation: %s", err)
		}
		return cfg, nil
	}

	root.AddCommand(
		newServeCmd(loadConfig),
		newSimulateCmd(loadConfig),
		newShowCmd(),
		newRWACmd(),
		newProvisionCmd(),
		newConstraintCmd(),
	)
	return root
}

func defaultConfigPath() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "configs/config.yaml"
}
