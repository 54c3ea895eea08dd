package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(48, 96, "blaster", 4)

	require.NotNil(t, p)
	assert.Equal(t, 48.0, p.X)
	assert.Equal(t, 96.0, p.Y)
	assert.Equal(t, 4, p.Health)
	assert.Equal(t, 4, p.MaxHealth)
	assert.Equal(t, "blaster", p.Weapon)
	assert.True(t, p.Owned["blaster"])
	assert.True(t, p.Alive)
	assert.True(t, p.FacingRight)
	assert.Equal(t, 0, p.Money)
}

func TestPlayer_Heal_ClampsAtMax(t *testing.T) {
	p := NewPlayer(0, 0, "blaster", 4)
	p.Health = 1

	p.Heal(2)
	assert.Equal(t, 3, p.Health)

	p.Heal(10)
	assert.Equal(t, 4, p.Health, "healing never exceeds max health")

	p.Heal(1)
	assert.Equal(t, 4, p.Health)
}

func TestPlayer_AddMoney(t *testing.T) {
	p := NewPlayer(0, 0, "blaster", 4)

	p.AddMoney(5)
	p.AddMoney(50)
	assert.Equal(t, 55, p.Money)
	assert.Equal(t, 55, p.MoneyEarned)

	// Spending reduces the balance but not the run total.
	p.Money -= 40
	assert.Equal(t, 15, p.Money)
	assert.Equal(t, 55, p.MoneyEarned)
}

func TestPlayer_IsInvincible(t *testing.T) {
	p := NewPlayer(0, 0, "blaster", 4)
	assert.False(t, p.IsInvincible())

	p.IframeTicks = 30
	assert.True(t, p.IsInvincible())

	p.IframeTicks = 0
	assert.False(t, p.IsInvincible())
}
