package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPickup(t *testing.T) {
	coin := NewPickup(PickupCoin, 64, 32, 5)

	require.NotNil(t, coin)
	assert.Equal(t, PickupCoin, coin.Kind)
	assert.Equal(t, 5, coin.Value)
	assert.True(t, coin.Alive)

	heal := NewPickup(PickupHeal, 0, 0, 1)
	assert.Equal(t, PickupHeal, heal.Kind)
	assert.Equal(t, 1, heal.Value)
}

func TestNewNPC(t *testing.T) {
	npc := NewNPC("shopkeeper", 120, 88)

	require.NotNil(t, npc)
	assert.Equal(t, "shopkeeper", npc.Name)
	assert.True(t, npc.Alive)
	assert.Equal(t, 120.0, npc.X)
}
