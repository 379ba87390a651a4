package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitializeSubsystems(t *testing.T) {
	var p Player
	p.InitializeSubsystems()

	assert.NotNil(t, p.Stash)
	assert.NotNil(t, p.StorageMap)
	assert.True(t, p.Initialized)

	if assert.Len(t, p.Prey, 3) {
		for i, slot := range p.Prey {
			assert.Equal(t, uint8(i), slot.Slot)
		}
	}
	if assert.Len(t, p.TaskHunting, 3) {
		for i, slot := range p.TaskHunting {
			assert.Equal(t, uint8(i), slot.Slot)
		}
	}
}

func TestInitializeSubsystemsKeepsLoadedSlots(t *testing.T) {
	p := Player{
		Prey:        []PreySlot{{Slot: 1, State: 2, RaceID: 21}},
		TaskHunting: []TaskHuntingSlot{{Slot: 0, State: 1, RaceID: 34}},
	}
	p.InitializeSubsystems()

	assert.Len(t, p.Prey, 3, "missing slots are backfilled, loaded ones kept")
	assert.Len(t, p.TaskHunting, 3)

	var loaded *PreySlot
	for i := range p.Prey {
		if p.Prey[i].Slot == 1 {
			loaded = &p.Prey[i]
		}
	}
	if assert.NotNil(t, loaded) {
		assert.Equal(t, uint8(2), loaded.State)
		assert.Equal(t, uint16(21), loaded.RaceID)
	}
}

func TestInitializeSubsystemsIdempotent(t *testing.T) {
	var p Player
	p.InitializeSubsystems()
	p.InitializeSubsystems()

	assert.Len(t, p.Prey, 3)
	assert.Len(t, p.TaskHunting, 3)
}

func TestUpdateDerivedStateClampsVitals(t *testing.T) {
	p := Player{Health: 900, HealthMax: 500, Mana: 300, ManaMax: 100}
	p.UpdateDerivedState()

	assert.Equal(t, int32(500), p.Health)
	assert.Equal(t, int32(100), p.Mana)

	p = Player{Health: 400, HealthMax: 500, Mana: 50, ManaMax: 100}
	p.UpdateDerivedState()

	assert.Equal(t, int32(400), p.Health)
	assert.Equal(t, int32(50), p.Mana)
}

func TestLoginAPIValidate(t *testing.T) {
	valid := LoginAPI{Account: "tester", Password: "secret", Character: "Arkand"}
	assert.NoError(t, valid.Validate())

	missingAccount := LoginAPI{Character: "Arkand"}
	assert.ErrorContains(t, missingAccount.Validate(), "account")

	missingCharacter := LoginAPI{Account: "tester"}
	assert.ErrorContains(t, missingCharacter.Validate(), "character")
}

func TestVIPEntryAPIValidate(t *testing.T) {
	valid := VIPEntryAPI{AccountID: 7, PlayerID: 3}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&VIPEntryAPI{PlayerID: 3}).Validate())
	assert.Error(t, (&VIPEntryAPI{AccountID: 7}).Validate())
}

func TestVIPGroupAPIValidate(t *testing.T) {
	valid := VIPGroupAPI{GroupID: 4, AccountID: 7}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&VIPGroupAPI{GroupID: 4}).Validate())
}

func TestPresenceAPIValidate(t *testing.T) {
	assert.NoError(t, (&PresenceAPI{PlayerID: 5}).Validate())
	assert.Error(t, (&PresenceAPI{}).Validate())
}
