package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/cory-johannsen/goblinden/internal/denserver/denv1"
)

// printJSON writes v as indented JSON. Wire messages go through protojson
// with their proto field names.
func printJSON(w io.Writer, v any) error {
	if m, ok := v.(proto.Message); ok {
		b, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true}.Marshal(m)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", m.ProtoReflect().Descriptor().FullName(), err)
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer, title string) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	if title != "" {
		tw.SetTitle(title)
	}
	return tw
}

func amount(a *denv1.Amount) string {
	if e := a.Economy(); !e.IsZero() {
		return e.String()
	}
	return "-"
}

func renderBuildings(w io.Writer, title string, bs []*denv1.Building) {
	tw := newTable(w, title)
	tw.AppendHeader(table.Row{"ID", "Name", "Category", "Cost", "Income", "Max", "Requires"})
	for _, b := range bs {
		limit := "-"
		if b.GetMaxCount() > 0 {
			limit = strconv.Itoa(int(b.GetMaxCount()))
		}
		tw.AppendRow(table.Row{b.GetId(), b.GetName(), b.GetCategory(), amount(b.GetCost()), amount(b.GetIncome()), limit, strings.Join(b.GetRequires(), ", ")})
	}
	tw.Render()
}

func renderDen(w io.Writer, d *denv1.Den) {
	tw := newTable(w, "den "+d.GetId())
	tw.AppendHeader(table.Row{"Slot", "Category", "State", "Building", "Character", "Unlock cost"})
	for _, s := range d.GetSlots() {
		state := "open"
		if !s.GetUnlocked() {
			state = "locked"
		}
		tw.AppendRow(table.Row{s.GetIndex(), s.GetCategory(), state, s.GetBuildingId(), s.GetCharacterId(), amount(s.GetUnlockCost())})
	}
	tw.AppendFooter(table.Row{"", "", "", "turn " + strconv.FormatInt(d.GetTurn(), 10), "stock " + d.GetBalance().Economy().String(), "income " + d.GetIncome().Economy().String()})
	tw.Render()
}
