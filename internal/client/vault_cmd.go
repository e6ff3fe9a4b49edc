package client

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-steward-keeper/models"
)

func newVaultCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Manage vaults on this device",
	}
	cmd.AddCommand(
		newVaultCreateCommand(c),
		newVaultUpdateCommand(c),
		newVaultListCommand(c),
		newVaultShowCommand(c),
		newVaultDeleteCommand(c),
	)
	return cmd
}

// readContent returns the inline content or, when file is set, the file
// contents.
func readContent(content, file string) (string, error) {
	if file == "" {
		return content, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read content file: %w", err)
	}
	return string(data), nil
}

func newVaultCreateCommand(c *cli) *cobra.Command {
	var name, content, file, instructions string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a vault holding a secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := readContent(content, file)
			if err != nil {
				return err
			}
			var instr *string
			if instructions != "" {
				instr = &instructions
			}

			vault, err := c.client.Services().VaultService.CreateVault(cmd.Context(), name, text, instr)
			if err != nil {
				return err
			}

			c.printer(cmd).Success("vault %s created", vault.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "vault name")
	cmd.Flags().StringVar(&content, "content", "", "secret content")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the secret from a file")
	cmd.Flags().StringVar(&instructions, "instructions", "", "recovery instructions shipped with every shard")
	_ = cmd.MarkFlagRequired("name")
	cmd.MarkFlagsMutuallyExclusive("content", "file")
	return cmd
}

func newVaultUpdateCommand(c *cli) *cobra.Command {
	var content, file string

	cmd := &cobra.Command{
		Use:   "update VAULT_ID",
		Short: "Replace the secret of a vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readContent(content, file)
			if err != nil {
				return err
			}
			vault, err := c.client.Services().VaultService.UpdateContent(cmd.Context(), args[0], text)
			if err != nil {
				return err
			}

			p := c.printer(cmd)
			p.Success("vault %s updated", vault.ID)
			if vault.BackupConfig != nil {
				p.Warn("run `steward backup distribute %s` to refresh the stewards' shards", vault.ID)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&content, "content", "", "secret content")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the secret from a file")
	cmd.MarkFlagsMutuallyExclusive("content", "file")
	cmd.MarkFlagsOneRequired("content", "file")
	return cmd
}

func backupSummary(v models.Vault) string {
	cfg := v.BackupConfig
	if cfg == nil {
		return "-"
	}
	return fmt.Sprintf("%d-of-%d, %d holding", cfg.Threshold, cfg.TotalShards, cfg.CountByStatus(models.StewardHoldingKey))
}

func newVaultListCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List vaults owned or guarded by this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vaults, err := c.client.Services().VaultService.ListVaults(cmd.Context())
			if err != nil {
				return err
			}

			p := c.printer(cmd)
			if len(vaults) == 0 {
				p.Line("no vaults")
				return nil
			}

			rows := make([][]any, 0, len(vaults))
			for _, v := range vaults {
				role := "steward"
				if v.OwnerPubkey == c.client.Pubkey() {
					role = "owner"
				}
				rows = append(rows, []any{v.ID, v.Name, role, backupSummary(v), formatTime(v.UpdatedAt)})
			}
			p.Table("ID\tNAME\tROLE\tBACKUP\tUPDATED", rows)
			return nil
		},
	}
}

func newVaultShowCommand(c *cli) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show VAULT_ID",
		Short: "Show a vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			vaults := c.client.Services().VaultService

			v, err := vaults.GetVault(ctx, args[0])
			if err != nil {
				return err
			}

			p := c.printer(cmd)
			p.Field("id", v.ID)
			p.Field("name", v.Name)
			p.Field("owner", v.OwnerPubkey)
			p.Field("created", formatTime(v.CreatedAt))
			p.Field("updated", formatTime(v.UpdatedAt))
			p.Field("backup", backupSummary(v))
			p.Field("instructions", deref(v.Instructions, "-"))
			if shard, ok := v.HeldShard(); ok {
				p.Field("held shard", fmt.Sprintf("#%d of %d (version %d)", shard.ShardIndex, shard.TotalShards, shard.Version()))
			}

			if reveal {
				content, err := vaults.OpenContent(ctx, v.ID)
				if err != nil {
					return err
				}
				p.Field("content", content)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "print the decrypted secret")
	return cmd
}

func newVaultDeleteCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete VAULT_ID",
		Short: "Delete a vault and everything recorded for it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.client.Services().VaultService.DeleteVault(cmd.Context(), args[0]); err != nil {
				return err
			}
			c.printer(cmd).Success("vault %s deleted", args[0])
			return nil
		},
	}
}
