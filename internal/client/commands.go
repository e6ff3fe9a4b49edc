package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-steward-keeper/internal/config"
	"github.com/MKhiriev/go-steward-keeper/internal/logger"
	"github.com/MKhiriev/go-steward-keeper/models"
)

const clientRole = "steward-client"

// opener builds the device runtime for one command invocation.
type opener func(ctx context.Context, configPath string) (Client, *logger.Logger, error)

// cli carries the state shared by every command of one invocation.
type cli struct {
	open       opener
	configPath string

	client Client
	log    *logger.Logger
}

// NewRootCommand returns the steward command tree backed by the configured
// relay and local store.
func NewRootCommand(info models.AppBuildInfo) *cobra.Command {
	return newRootCommand(openClient, info)
}

func newRootCommand(open opener, info models.AppBuildInfo) *cobra.Command {
	c := &cli{open: open}

	root := &cobra.Command{
		Use:   "steward",
		Short: "Back up a secret with trusted stewards and recover it with their approval",
		Long: `steward splits a vault secret into shards held by trusted stewards.
Any threshold of them can approve a recovery; fewer learn nothing.`,
		Version:            info.String(),
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  c.setup,
		PersistentPostRunE: c.teardown,
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to the JSON config file (default $CONFIG)")

	root.AddCommand(
		newVaultCommand(c),
		newBackupCommand(c),
		newInviteCommand(c),
		newRecoveryCommand(c),
		newShardsCommand(c),
		newListenCommand(c),
	)

	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	client, log, err := c.open(cmd.Context(), c.configPath)
	if err != nil {
		return err
	}
	c.client = client
	c.log = log

	cmd.SetContext(log.WithContext(cmd.Context()))
	return nil
}

func (c *cli) teardown(*cobra.Command, []string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *cli) printer(cmd *cobra.Command) *printer {
	return newPrinter(cmd.OutOrStdout())
}

func openClient(ctx context.Context, configPath string) (Client, *logger.Logger, error) {
	cfg, err := config.GetClientConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewFileLogger(clientRole, logFilePath(cfg.App.LogFile))
	app, err := NewApp(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	return app, log, nil
}

// logFilePath keeps log lines out of command output: without an explicit
// path the log goes to the user config directory.
func logFilePath(configured string) string {
	if configured != "" {
		return configured
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "steward-keeper", "client.log")
}
