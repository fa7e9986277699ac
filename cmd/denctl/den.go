package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/cory-johannsen/goblinden/internal/denserver/denv1"
)

func denCmd(o *options) *cobra.Command {
	c := &cobra.Command{Use: "den", Short: "Manage dens hosted by a den server"}
	c.AddCommand(
		denCreateCmd(o),
		denListCmd(o),
		denShowCmd(o),
		denBuildingsCmd(o),
		denBuildCmd(o),
		denSlotCmd(o, "demolish", "Demolish the building in a slot", func(ctx context.Context, c denv1.DenServiceClient, r *denv1.SlotRequest) (*denv1.DenResponse, error) {
			return c.Demolish(ctx, r)
		}),
		denSlotCmd(o, "unassign", "Remove the character working a slot", func(ctx context.Context, c denv1.DenServiceClient, r *denv1.SlotRequest) (*denv1.DenResponse, error) {
			return c.Unassign(ctx, r)
		}),
		denSlotCmd(o, "unlock", "Pay a locked slot's unlock cost", func(ctx context.Context, c denv1.DenServiceClient, r *denv1.SlotRequest) (*denv1.DenResponse, error) {
			return c.UnlockSlot(ctx, r)
		}),
		denAssignCmd(o),
		denCandidatesCmd(o),
		denCollectCmd(o),
	)
	return c
}

// slotArg parses a slot index argument.
func slotArg(s string) (int32, error) {
	idx, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("slot must be an integer, got %q", s)
	}
	return int32(idx), nil
}

// printDen writes a den response as JSON or as a slot table followed by what
// the operation spent.
func (o *options) printDen(cmd *cobra.Command, resp *denv1.DenResponse) error {
	if o.json() {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	renderDen(cmd.OutOrStdout(), resp.GetDen())
	if spent := resp.GetSpent().Economy(); !spent.IsZero() {
		fmt.Fprintf(cmd.OutOrStdout(), "spent %s\n", spent)
	}
	return nil
}

func denCreateCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a den with the server's layout and opening stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withClient(cmd, func(ctx context.Context, c denv1.DenServiceClient) error {
				resp, err := c.CreateDen(ctx, &denv1.CreateDenRequest{})
				if err != nil {
					return err
				}
				return o.printDen(cmd, resp)
			})
		},
	}
}

func denListCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List hosted den IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withClient(cmd, func(ctx context.Context, c denv1.DenServiceClient) error {
				resp, err := c.ListDens(ctx, &denv1.ListDensRequest{})
				if err != nil {
					return err
				}
				if o.json() {
					return printJSON(cmd.OutOrStdout(), resp)
				}
				tw := newTable(cmd.OutOrStdout(), "")
				tw.AppendHeader(table.Row{"Den"})
				for _, id := range resp.GetDenIds() {
					tw.AppendRow(table.Row{id})
				}
				tw.Render()
				return nil
			})
		},
	}
}

func denShowCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <den>",
		Short: "Show a den's slots, stock and income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withClient(cmd, func(ctx context.Context, c denv1.DenServiceClient) error {
				resp, err := c.GetDen(ctx, &denv1.GetDenRequest{DenId: args[0]})
				if err != nil {
					return err
				}
				return o.printDen(cmd, resp)
			})
		},
	}
}

func denBuildingsCmd(o *options) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "buildings",
		Short: "List the catalog the server builds from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withClient(cmd, func(ctx context.Context, c denv1.DenServiceClient) error {
				resp, err := c.ListBuildings(ctx, &denv1.ListBuildingsRequest{Category: category})
				if err != nil {
					return err
				}
				if o.json() {
					return printJSON(cmd.OutOrStdout(), resp)
				}
				renderBuildings(cmd.OutOrStdout(), "", resp.GetBuildings())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list this slot category")
	return cmd
}

func denBuildCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "build <den> <slot> <building>",
		Short: "Build a catalog building in an empty slot",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := slotArg(args[1])
			if err != nil {
				return err
			}
			return o.withClient(cmd, func(ctx context.Context, c denv1.DenServiceClient) error {
				resp, err := c.Build(ctx, &denv1.BuildRequest{DenId: args[0], Slot: idx, BuildingId: args[2]})
				if err != nil {
					return err
				}
				return o.printDen(cmd, resp)
			})
		},
	}
}

// denSlotCmd builds a "<verb> <den> <slot>" command around one slot RPC.
func denSlotCmd(o *options, use, short string, call func(context.Context, denv1.DenServiceClient, *denv1.SlotRequest) (*denv1.DenResponse, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <den> <slot>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := slotArg(args[1])
			if err != nil {
				return err
			}
			return o.withClient(cmd, func(ctx context.Context, c denv1.DenServiceClient) error {
				resp, err := call(ctx, c, &denv1.SlotRequest{DenId: args[0], Slot: idx})
				if err != nil {
					return err
				}
				return o.printDen(cmd, resp)
			})
		},
	}
}

func denAssignCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <den> <slot> <character>",
		Short: "Put a character to work in a built slot",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := slotArg(args[1])
			if err != nil {
				return err
			}
			return o.withClient(cmd, func(ctx context.Context, c denv1.DenServiceClient) error {
				resp, err := c.Assign(ctx, &denv1.AssignRequest{DenId: args[0], Slot: idx, CharacterId: args[2]})
				if err != nil {
					return err
				}
				return o.printDen(cmd, resp)
			})
		},
	}
}

func denCandidatesCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "candidates <den> <slot>",
		Short: "List what can be built in a slot right now",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := slotArg(args[1])
			if err != nil {
				return err
			}
			return o.withClient(cmd, func(ctx context.Context, c denv1.DenServiceClient) error {
				resp, err := c.Candidates(ctx, &denv1.SlotRequest{DenId: args[0], Slot: idx})
				if err != nil {
					return err
				}
				if o.json() {
					return printJSON(cmd.OutOrStdout(), resp)
				}
				renderBuildings(cmd.OutOrStdout(), fmt.Sprintf("slot %d", idx), resp.GetBuildings())
				return nil
			})
		},
	}
}

func denCollectCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "collect <den>",
		Short: "Show the income a den earns per turn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withClient(cmd, func(ctx context.Context, c denv1.DenServiceClient) error {
				resp, err := c.Collect(ctx, &denv1.CollectRequest{DenId: args[0]})
				if err != nil {
					return err
				}
				if o.json() {
					return printJSON(cmd.OutOrStdout(), resp)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "turn %d: income %s, stock %s\n", resp.GetTurn(), resp.GetIncome().Economy(), resp.GetBalance().Economy())
				return nil
			})
		},
	}
}
