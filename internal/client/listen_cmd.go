package client

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func newListenCommand(c *cli) *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Process incoming invitations, shards and recovery messages",
		Long: `Process incoming invitations, shards and recovery messages.

Runs until interrupted, or for --for when given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}

			c.printer(cmd).Line("listening as %s", short(c.client.Pubkey()))
			return c.client.Listen(ctx)
		},
	}
	cmd.Flags().DurationVar(&duration, "for", 0, "stop after this long")
	return cmd
}
