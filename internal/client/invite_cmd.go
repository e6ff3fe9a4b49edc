package client

import (
	"github.com/spf13/cobra"
)

func newInviteCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invite",
		Short: "Invite stewards and answer invitations",
	}
	cmd.AddCommand(
		newInviteCreateCommand(c),
		newInviteListCommand(c),
		newInviteAcceptCommand(c),
		newInviteDeclineCommand(c),
	)
	return cmd
}

func newInviteCreateCommand(c *cli) *cobra.Command {
	var relays []string

	cmd := &cobra.Command{
		Use:   "create VAULT_ID NAME",
		Short: "Mint an invitation link for a steward",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, link, err := c.client.Services().InvitationService.GenerateInvitation(cmd.Context(), args[0], args[1], "", relays)
			if err != nil {
				return err
			}

			p := c.printer(cmd)
			p.Success("invitation %s for %s", inv.Code, inv.InviteeName)
			p.Line("%s", link)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&relays, "relay", nil, "relay URL embedded in the link (repeatable)")
	return cmd
}

func newInviteListCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list VAULT_ID",
		Short: "List the invitations of a vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invs, err := c.client.Services().InvitationService.ListInvitations(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p := c.printer(cmd)
			if len(invs) == 0 {
				p.Line("no invitations")
				return nil
			}

			rows := make([][]any, 0, len(invs))
			for _, inv := range invs {
				rows = append(rows, []any{inv.Code, inv.InviteeName, inv.Status, short(deref(inv.RedeemedBy, "")), formatTime(inv.CreatedAt)})
			}
			p.Table("CODE\tINVITEE\tSTATUS\tREDEEMED BY\tCREATED", rows)
			return nil
		},
	}
}

func newInviteAcceptCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "accept LINK",
		Short: "Accept an invitation and become a steward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := c.client.Services().InvitationService.AcceptInvitation(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			c.printer(cmd).Success("accepted invitation %s from %s", link.Code, short(link.OwnerPubkey))
			return nil
		},
	}
}

func newInviteDeclineCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "decline LINK",
		Short: "Decline an invitation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := c.client.Services().InvitationService.DeclineInvitation(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			c.printer(cmd).Success("declined invitation %s from %s", link.Code, short(link.OwnerPubkey))
			return nil
		},
	}
}
