package denv1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/goblinden/internal/denserver/denv1"
	"github.com/cory-johannsen/goblinden/internal/game/building"
	"github.com/cory-johannsen/goblinden/internal/game/economy"
)

func TestProto_DenResponse_Roundtrip(t *testing.T) {
	orig := &denv1.DenResponse{
		Den: &denv1.Den{
			Id:      "7d0c4a5e-7f6e-4a0c-9a51-4f3b1a0d2e11",
			Turn:    3,
			Balance: &denv1.Amount{Gold: 150, Food: 60},
			Income:  &denv1.Amount{Food: 10},
			Slots: []*denv1.Slot{
				{Index: 0, Category: "breeding", Unlocked: true},
				{Index: 1, Category: "resource", Unlocked: true, BuildingId: "farm", CharacterId: "grik"},
				{Index: 2, Category: "resource", UnlockCost: &denv1.Amount{Gold: 100, Food: 50}},
			},
		},
		Spent: &denv1.Amount{Gold: 50},
	}
	data, err := proto.Marshal(orig)
	require.NoError(t, err)
	got := &denv1.DenResponse{}
	require.NoError(t, proto.Unmarshal(data, got))
	assert.True(t, proto.Equal(orig, got), "got %v", got)
	assert.Equal(t, "grik", got.GetDen().GetSlots()[1].GetCharacterId())
	assert.Equal(t, economy.Amount{Gold: 100, Food: 50}, got.GetDen().GetSlots()[2].GetUnlockCost().Economy())
}

func TestProto_EndTurnResponse_Roundtrip(t *testing.T) {
	orig := &denv1.EndTurnResponse{Turn: 9, Paid: 4, Failed: 1}
	data, err := proto.Marshal(orig)
	require.NoError(t, err)
	var got denv1.EndTurnResponse
	require.NoError(t, proto.Unmarshal(data, &got))
	assert.Equal(t, int64(9), got.GetTurn())
	assert.Equal(t, int32(4), got.GetPaid())
	assert.Equal(t, int32(1), got.GetFailed())
}

func TestProto_JSONUsesProtoNames(t *testing.T) {
	b, err := protojson.MarshalOptions{UseProtoNames: true}.Marshal(&denv1.BuildRequest{DenId: "d", Slot: 2, BuildingId: "farm"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"den_id"`)
	assert.Contains(t, string(b), `"building_id"`)

	var got denv1.BuildRequest
	require.NoError(t, protojson.Unmarshal(b, &got))
	assert.Equal(t, "farm", got.GetBuildingId())
	assert.Equal(t, int32(2), got.GetSlot())
}

func TestProto_ServiceDescriptor(t *testing.T) {
	sd := denv1.File_goblinden_v1_den_proto.Services().ByName("DenService")
	require.NotNil(t, sd)
	assert.Equal(t, 12, sd.Methods().Len())
	endTurn := sd.Methods().ByName("EndTurn")
	require.NotNil(t, endTurn)
	assert.Equal(t, "goblinden.v1.EndTurnResponse", string(endTurn.Output().FullName()))
	assert.Equal(t, denv1.DenService_ServiceDesc.ServiceName, string(sd.FullName()))
}

func TestAmount_NilIsZero(t *testing.T) {
	var a *denv1.Amount
	assert.True(t, a.Economy().IsZero())
}

func TestAmountOf_RoundtripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := economy.Amount{
			Gold: rapid.IntRange(0, 1<<40).Draw(t, "gold"),
			Food: rapid.IntRange(0, 1<<40).Draw(t, "food"),
		}
		data, err := proto.Marshal(denv1.AmountOf(a))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var got denv1.Amount
		if err := proto.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.Economy() != a {
			t.Fatalf("got %v, want %v", got.Economy(), a)
		}
	})
}

func TestBuildings_ConvertsDefinitions(t *testing.T) {
	shrine := &building.Definition{
		ID:       "shrine",
		Name:     "Shrine",
		Category: building.CategoryGlobal,
		Cost:     economy.Amount{Gold: 100, Food: 50},
		MaxCount: 1,
		Unlock:   &building.UnlockCondition{RequiredBuildings: []string{"farm"}},
		Effects:  []building.Effect{{Type: "morale", Description: "+1 morale"}},
	}
	got := denv1.Buildings([]*building.Definition{shrine})
	require.Len(t, got, 1)
	b := got[0]
	assert.Equal(t, "shrine", b.GetId())
	assert.Equal(t, "global", b.GetCategory())
	assert.Equal(t, int32(1), b.GetMaxCount())
	assert.Equal(t, []string{"farm"}, b.GetRequires())
	assert.Equal(t, economy.Amount{Gold: 100, Food: 50}, b.GetCost().Economy())
	require.Len(t, b.GetEffects(), 1)
	assert.Equal(t, "morale", b.GetEffects()[0].GetType())
}
