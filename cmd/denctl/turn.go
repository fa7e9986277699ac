package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/status"

	"github.com/cory-johannsen/goblinden/internal/denserver/denv1"
)

func turnCmd(o *options) *cobra.Command {
	c := &cobra.Command{Use: "turn", Short: "Control the den server's turn counter"}
	c.AddCommand(&cobra.Command{
		Use:   "end",
		Short: "End the current turn and pay every den its income",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withClient(cmd, func(ctx context.Context, c denv1.DenServiceClient) error {
				resp, err := c.EndTurn(ctx, &denv1.EndTurnRequest{})
				if err != nil {
					// a partial payout still ends the turn; report it before failing
					if partial := turnDetail(err); partial != nil {
						printTurn(cmd.OutOrStdout(), partial)
					}
					return err
				}
				if o.json() {
					return printJSON(cmd.OutOrStdout(), resp)
				}
				printTurn(cmd.OutOrStdout(), resp)
				return nil
			})
		},
	})
	return c
}

func printTurn(w io.Writer, resp *denv1.EndTurnResponse) {
	fmt.Fprintf(w, "turn %d: paid %d dens", resp.GetTurn(), resp.GetPaid())
	if resp.GetFailed() > 0 {
		fmt.Fprintf(w, ", %d failed", resp.GetFailed())
	}
	fmt.Fprintln(w)
}

// turnDetail returns the EndTurnResponse attached to a failed EndTurn, if any.
func turnDetail(err error) *denv1.EndTurnResponse {
	for _, d := range status.Convert(err).Details() {
		if resp, ok := d.(*denv1.EndTurnResponse); ok {
			return resp
		}
	}
	return nil
}
