package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-steward-keeper/internal/service"
	"github.com/MKhiriev/go-steward-keeper/models"
)

func newBackupCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Configure and distribute vault backups",
	}
	cmd.AddCommand(
		newBackupConfigureCommand(c),
		newBackupDistributeCommand(c),
		newBackupStatusCommand(c),
		newBackupRemoveCommand(c),
	)
	return cmd
}

// parseStewards turns NAME or NAME=PUBKEY arguments into stewards. A bare
// name is a placeholder filled in when the invitation is redeemed.
func parseStewards(args []string) ([]models.Steward, error) {
	stewards := make([]models.Steward, 0, len(args))
	for _, arg := range args {
		name, pubkey, _ := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: steward %q has no name", service.ErrInvalidConfiguration, arg)
		}
		stewards = append(stewards, models.Steward{Name: &name, Pubkey: strings.TrimSpace(pubkey)})
	}
	return stewards, nil
}

func newBackupConfigureCommand(c *cli) *cobra.Command {
	var (
		threshold int
		stewards  []string
		relays    []string
	)

	cmd := &cobra.Command{
		Use:   "configure VAULT_ID",
		Short: "Set the threshold and the stewards of a vault backup",
		Example: `  steward backup configure 0193... --threshold 2 \
    --steward alice --steward bob --steward carol=9f2c...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := parseStewards(stewards)
			if err != nil {
				return err
			}

			cfg, err := c.client.Services().BackupService.CreateConfig(cmd.Context(), args[0], threshold, len(list), list, relays, "")
			if err != nil {
				return err
			}

			p := c.printer(cmd)
			p.Success("backup configured: %d of %d stewards can recover", cfg.Threshold, cfg.TotalShards)
			if n := cfg.CountByStatus(models.StewardInvited); n > 0 {
				p.Warn("%d steward(s) still need an invitation: steward invite create %s NAME", n, args[0])
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&threshold, "threshold", "k", 0, "number of stewards needed to recover")
	cmd.Flags().StringArrayVarP(&stewards, "steward", "s", nil, "steward as NAME or NAME=PUBKEY (repeatable)")
	cmd.Flags().StringArrayVar(&relays, "relay", nil, "relay URL for this backup (repeatable, defaults to the device relays)")
	_ = cmd.MarkFlagRequired("threshold")
	_ = cmd.MarkFlagRequired("steward")
	return cmd
}

func newBackupDistributeCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "distribute VAULT_ID",
		Short: "Split the vault secret and send one shard to every steward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.client.Services().BackupService.DistributeVaultContent(cmd.Context(), args[0])
			p := c.printer(cmd)
			switch {
			case errors.Is(err, service.ErrPartialDistribution):
				p.Warn("distribution %d reached %d of %d stewards", cfg.DistributionVersion,
					len(cfg.Stewards)-cfg.CountByStatus(models.StewardError), len(cfg.Stewards))
				return nil
			case err != nil:
				return err
			}

			p.Success("distribution %d sent to %d stewards", cfg.DistributionVersion, len(cfg.Stewards))
			return nil
		},
	}
}

func newBackupStatusCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status VAULT_ID",
		Short: "Show the backup configuration and steward states",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backups := c.client.Services().BackupService
			cfg, err := backups.GetConfig(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p := c.printer(cmd)
			p.Field("threshold", fmt.Sprintf("%d of %d", cfg.Threshold, cfg.TotalShards))
			p.Field("distribution", cfg.DistributionVersion)
			p.Field("ready", backups.IsReadyToDistribute(cfg))
			p.Field("relays", strings.Join(cfg.Relays, ", "))
			p.Field("updated", formatTime(cfg.LastUpdated))
			if cfg.ContentChanged {
				p.Warn("vault content changed since the last distribution; run `backup distribute`")
			}

			rows := make([][]any, 0, len(cfg.Stewards))
			for _, s := range cfg.Stewards {
				ack := "-"
				if s.AckDistributionVersion != nil {
					ack = fmt.Sprint(*s.AckDistributionVersion)
				}
				rows = append(rows, []any{s.DisplayName(), short(s.Pubkey), s.Status, ack, deref(s.ErrorReason, "")})
			}
			p.Line("")
			p.Table("STEWARD\tPUBKEY\tSTATUS\tACKED\tERROR", rows)
			return nil
		},
	}
}

func newBackupRemoveCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "remove VAULT_ID PUBKEY",
		Short: "Remove a steward and tell them to discard their shard",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.client.Services().BackupService.RemoveSteward(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			c.printer(cmd).Success("steward %s removed", short(args[1]))
			return nil
		},
	}
}
