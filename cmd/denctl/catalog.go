package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/goblinden/internal/denserver/denv1"
	"github.com/cory-johannsen/goblinden/internal/game/building"
	"github.com/cory-johannsen/goblinden/internal/game/den"
	"github.com/cory-johannsen/goblinden/internal/game/economy"
	"github.com/cory-johannsen/goblinden/internal/scripting"
)

func catalogCmd(o *options) *cobra.Command {
	c := &cobra.Command{Use: "catalog", Short: "Inspect the building catalog on disk"}
	c.AddCommand(catalogListCmd(o))
	c.AddCommand(catalogCheckCmd(o))
	return c
}

func catalogListCmd(o *options) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List building definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := building.LoadCatalog(o.catalogDir())
			if err != nil {
				return err
			}
			defs := cat.All()
			if category != "" {
				c, err := building.ParseCategory(category)
				if err != nil {
					return err
				}
				defs = cat.ByCategory(c)
			}
			bs := denv1.Buildings(defs)
			if o.json() {
				return printJSON(cmd.OutOrStdout(), &denv1.ListBuildingsResponse{Buildings: bs})
			}
			renderBuildings(cmd.OutOrStdout(), "", bs)
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list this slot category")
	return cmd
}

// checkReport summarises a content check.
type checkReport struct {
	Buildings int      `json:"buildings"`
	Slots     int      `json:"slots"`
	Scripts   int      `json:"scripts"`
	Warnings  []string `json:"warnings,omitempty"`
}

func catalogCheckCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the catalog, the den layout and the unlock scripts together",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := checkContent(o.catalogDir(), o.layoutFile(), o.scriptDir())
			if err != nil {
				return err
			}
			if o.json() {
				return printJSON(cmd.OutOrStdout(), report)
			}
			tw := newTable(cmd.OutOrStdout(), "content check")
			tw.AppendRow(table.Row{"buildings", report.Buildings})
			tw.AppendRow(table.Row{"slots", report.Slots})
			tw.AppendRow(table.Row{"scripts", report.Scripts})
			for _, w := range report.Warnings {
				tw.AppendRow(table.Row{"warning", w})
			}
			tw.Render()
			return nil
		},
	}
}

// checkContent loads every content source and cross-checks them. Load errors
// fail the check; mismatches between layout and catalog are warnings.
func checkContent(catalogDir, layoutFile, scriptDir string) (checkReport, error) {
	cat, err := building.LoadCatalog(catalogDir)
	if err != nil {
		return checkReport{}, err
	}
	layout, err := den.LoadLayout(layoutFile)
	if err != nil {
		return checkReport{}, err
	}
	d, err := den.New(cat, layout)
	if err != nil {
		return checkReport{}, err
	}
	report := checkReport{Buildings: cat.Len(), Slots: d.Len()}

	if scriptDir != "" {
		mgr := scripting.NewManager(zap.NewNop())
		defer mgr.Close()
		if err := mgr.Load(scriptDir, 0); err != nil {
			return checkReport{}, err
		}
		report.Scripts = len(mgr.Scripts())
		d.UnlockOverride = mgr.UnlockOverride
	}

	slots := map[building.Category]int{}
	for _, s := range d.Slots() {
		slots[s.Category]++
	}
	for _, c := range building.Categories() {
		n := len(cat.ByCategory(c))
		switch {
		case slots[c] > 0 && n == 0:
			report.Warnings = append(report.Warnings, fmt.Sprintf("%d %s slots but no %s buildings", slots[c], c, c))
		case slots[c] == 0 && n > 0:
			report.Warnings = append(report.Warnings, fmt.Sprintf("%d %s buildings but no %s slots", n, c, c))
		}
	}
	for _, def := range cat.All() {
		if def.Limited() && def.MaxCount > slots[def.Category] {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("%s allows %d instances but the layout has %d %s slots", def.ID, def.MaxCount, slots[def.Category], def.Category))
		}
		if ok, err := d.Unlockable(def.ID); err == nil && !ok && len(def.Requires()) == 0 && def.StaticOverride() == nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("%s is locked by script in an empty den", def.ID))
		}
	}
	return report, nil
}

func layoutCmd(o *options) *cobra.Command {
	c := &cobra.Command{Use: "layout", Short: "Inspect the den layout on disk"}
	c.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the slots a new den starts with",
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := den.LoadLayout(o.layoutFile())
			if err != nil {
				return err
			}
			rows := layoutRows(layout)
			if o.json() {
				return printJSON(cmd.OutOrStdout(), rows)
			}
			tw := newTable(cmd.OutOrStdout(), o.layoutFile())
			tw.AppendHeader(table.Row{"Slots", "Category", "State", "Unlock cost"})
			for _, r := range rows {
				state := "open"
				if !r.Unlocked {
					state = "locked"
				}
				tw.AppendRow(table.Row{r.Span, r.Category, state, amount(denv1.AmountOf(r.UnlockCost))})
			}
			tw.AppendFooter(table.Row{"", "", "total", layout.Size()})
			tw.Render()
			return nil
		},
	})
	return c
}

// layoutRow is one slot group with its index span resolved.
type layoutRow struct {
	Span       string            `json:"slots"`
	Category   building.Category `json:"category"`
	Unlocked   bool              `json:"unlocked"`
	UnlockCost economy.Amount    `json:"unlock_cost"`
}

func layoutRows(l den.Layout) []layoutRow {
	rows := make([]layoutRow, 0, len(l.Slots))
	first := 0
	for _, g := range l.Slots {
		span := strconv.Itoa(first)
		if g.Count > 1 {
			span = fmt.Sprintf("%d-%d", first, first+g.Count-1)
		}
		rows = append(rows, layoutRow{Span: span, Category: g.Category, Unlocked: g.Unlocked, UnlockCost: g.UnlockCost})
		first += g.Count
	}
	return rows
}
