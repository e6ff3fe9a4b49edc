package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newShardsCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "shards",
		Short: "List the shards this device guards for other owners",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shards, err := c.client.Services().CustodyService.ListHeldShards(cmd.Context())
			if err != nil {
				return err
			}

			p := c.printer(cmd)
			if len(shards) == 0 {
				p.Line("no shards held")
				return nil
			}

			rows := make([][]any, 0, len(shards))
			for _, s := range shards {
				received := "-"
				if s.ReceivedAt != nil {
					received = formatTime(time.Unix(*s.ReceivedAt, 0))
				}
				rows = append(rows, []any{
					s.Vault(), deref(s.VaultName, ""), deref(s.OwnerName, short(s.CreatorPubkey)),
					s.Version(), fmt.Sprintf("%d of %d", s.Threshold, s.TotalShards), received,
				})
			}
			p.Table("VAULT\tNAME\tOWNER\tVERSION\tTHRESHOLD\tRECEIVED", rows)
			return nil
		},
	}
}
