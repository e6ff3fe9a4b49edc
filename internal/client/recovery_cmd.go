package client

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-steward-keeper/models"
)

func newRecoveryCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recovery",
		Short: "Request, approve and perform vault recoveries",
	}
	cmd.AddCommand(
		newRecoveryStartCommand(c),
		newRecoveryListCommand(c),
		newRecoveryShowCommand(c),
		newRecoveryRespondCommand(c, "approve", true),
		newRecoveryRespondCommand(c, "deny", false),
		newRecoveryPerformCommand(c),
		newRecoveryCancelCommand(c),
	)
	return cmd
}

func newRecoveryStartCommand(c *cli) *cobra.Command {
	var (
		stewards  []string
		threshold int
		expires   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "start VAULT_ID",
		Short: "Ask the stewards of a vault to release their shards",
		Long: `Ask the stewards of a vault to release their shards.

Without --steward the request goes to every steward known for the vault and
the threshold defaults to the backup threshold.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := c.client.Services().RecoveryService.InitiateRecovery(cmd.Context(), args[0], stewards, threshold, expires)
			if err != nil {
				return err
			}

			c.printer(cmd).Success("recovery %s requested from %d stewards, %d needed, expires %s",
				req.ID, len(req.Responses), req.Threshold, formatTime(req.ExpiresAt))
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&stewards, "steward", "s", nil, "steward pubkey (repeatable)")
	cmd.Flags().IntVarP(&threshold, "threshold", "k", 0, "approvals needed")
	cmd.Flags().DurationVar(&expires, "expires", 0, "request lifetime (default from config)")
	return cmd
}

func newRecoveryListCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list VAULT_ID",
		Short: "List recovery requests of a vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := c.client.Services().RecoveryService.ListRecoveryRequests(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p := c.printer(cmd)
			if len(reqs) == 0 {
				p.Line("no recovery requests")
				return nil
			}

			now := time.Now()
			rows := make([][]any, 0, len(reqs))
			for _, r := range reqs {
				direction := "outgoing"
				if r.Incoming {
					direction = "incoming"
				}
				rows = append(rows, []any{
					r.ID, direction, r.StatusAt(now),
					fmt.Sprintf("%d/%d", r.ApprovedCount(), r.Threshold),
					short(r.InitiatorPubkey), formatTime(r.ExpiresAt),
				})
			}
			p.Table("ID\tDIRECTION\tSTATUS\tAPPROVED\tINITIATOR\tEXPIRES", rows)
			return nil
		},
	}
}

func newRecoveryShowCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show REQUEST_ID",
		Short: "Show a recovery request and its responses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.client.Services().RecoveryService.GetRecoveryRequest(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p := c.printer(cmd)
			p.Field("id", r.ID)
			p.Field("vault", r.VaultID)
			p.Field("initiator", r.InitiatorPubkey)
			p.Field("status", r.StatusAt(time.Now()))
			p.Field("approved", fmt.Sprintf("%d of %d needed", r.ApprovedCount(), r.Threshold))
			p.Field("requested", formatTime(r.RequestedAt))
			p.Field("expires", formatTime(r.ExpiresAt))
			if r.RecoveredAt != nil {
				p.Field("recovered", formatTime(*r.RecoveredAt))
			}

			pubkeys := make([]string, 0, len(r.Responses))
			for pk := range r.Responses {
				pubkeys = append(pubkeys, pk)
			}
			sort.Strings(pubkeys)

			rows := make([][]any, 0, len(pubkeys))
			for _, pk := range pubkeys {
				resp := r.Responses[pk]
				at := "-"
				if resp.RespondedAt != nil {
					at = formatTime(*resp.RespondedAt)
				}
				rows = append(rows, []any{short(pk), resp.Status, at})
			}
			p.Line("")
			p.Table("STEWARD\tRESPONSE\tAT", rows)
			return nil
		},
	}
}

// newRecoveryRespondCommand builds the steward-side approve or deny command.
func newRecoveryRespondCommand(c *cli, use string, approved bool) *cobra.Command {
	desc := "Deny a recovery request"
	if approved {
		desc = "Approve a recovery request and release the held shard"
	}

	return &cobra.Command{
		Use:   use + " REQUEST_ID",
		Short: desc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.client.Services().RecoveryService.SubmitResponse(cmd.Context(), args[0], approved)
			if err != nil {
				return err
			}

			verdict := models.ResponseDenied
			if approved {
				verdict = models.ResponseApproved
			}
			c.printer(cmd).Success("recovery %s %s", r.ID, verdict)
			return nil
		},
	}
}

func newRecoveryPerformCommand(c *cli) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "perform REQUEST_ID",
		Short: "Reconstruct the vault secret from the approved shards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := c.client.Services().RecoveryService.PerformRecovery(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p := c.printer(cmd)
			p.Success("vault recovered")
			if !quiet {
				p.Line("%s", secret)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the recovered secret")
	return cmd
}

func newRecoveryCancelCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel REQUEST_ID",
		Short: "Cancel a pending recovery request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.client.Services().RecoveryService.CancelRecovery(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			c.printer(cmd).Success("recovery %s cancelled", r.ID)
			return nil
		},
	}
}
