// Package denv1 holds the goblinden.v1.DenService wire contract. The message
// and service code is generated from api/proto/goblinden/v1/den.proto; this
// file adds the conversions between catalog and economy types and their wire
// form.
package denv1

//go:generate protoc -I ../../../api/proto --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative goblinden/v1/den.proto

import (
	"github.com/cory-johannsen/goblinden/internal/game/building"
	"github.com/cory-johannsen/goblinden/internal/game/economy"
)

// AmountOf converts an economy amount to its wire form.
func AmountOf(a economy.Amount) *Amount {
	return &Amount{Gold: int64(a.Gold), Food: int64(a.Food)}
}

// Economy converts a wire amount back. A nil amount is zero.
func (x *Amount) Economy() economy.Amount {
	return economy.Amount{Gold: int(x.GetGold()), Food: int(x.GetFood())}
}

// Buildings converts catalog definitions to their wire form.
func Buildings(defs []*building.Definition) []*Building {
	out := make([]*Building, len(defs))
	for i, d := range defs {
		b := &Building{
			Id:          d.ID,
			Name:        d.Name,
			Icon:        d.Icon,
			Description: d.Description,
			Category:    d.Category.String(),
			Cost:        AmountOf(d.Cost),
			Income:      AmountOf(d.Income),
			MaxCount:    int32(d.MaxCount),
			Requires:    d.Requires(),
		}
		for _, e := range d.Effects {
			b.Effects = append(b.Effects, &Effect{Type: e.Type, Icon: e.Icon, Description: e.Description})
		}
		out[i] = b
	}
	return out
}
