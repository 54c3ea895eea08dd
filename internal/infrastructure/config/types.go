package config

import "image/color"

// GameConfig holds every loaded table.
type GameConfig struct {
	Weapons      *WeaponsConfig
	Difficulties *DifficultiesConfig
	Entities     *EntitiesConfig
	Generation   *GenerationConfig
}

// WeaponsConfig is the root table for weapons.yaml.
type WeaponsConfig struct {
	Starter string                  `yaml:"starter"`
	Weapons map[string]WeaponConfig `yaml:"weapons"`
	Items   map[string]ItemConfig   `yaml:"items"`
}

// WeaponConfig describes one weapon. A weapon is melee when MeleeRange
// is positive, ranged otherwise.
type WeaponConfig struct {
	Name            string   `yaml:"name"`
	Damage          int      `yaml:"damage"`
	Cooldown        int      `yaml:"cooldown"` // ticks between attacks
	ProjectileSpeed float64  `yaml:"projectileSpeed"`
	ProjectileCount int      `yaml:"projectileCount"`
	SpreadStep      float64  `yaml:"spreadStep"` // radians between projectiles
	ProjectileLife  int      `yaml:"projectileLife"`
	MeleeRange      float64  `yaml:"meleeRange"`
	Auto            bool     `yaml:"auto"`
	Price           int      `yaml:"price"`
	Color           [3]uint8 `yaml:"color"`
}

// Melee reports whether the weapon swings instead of firing.
func (w WeaponConfig) Melee() bool {
	return w.MeleeRange > 0
}

// RGBA returns the weapon's projectile color as a render color.
func (w WeaponConfig) RGBA() color.RGBA {
	return color.RGBA{w.Color[0], w.Color[1], w.Color[2], 255}
}

// ItemConfig describes a shop-only consumable or upgrade.
// Kind is one of "heart", "elixir", "armor".
type ItemConfig struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Price int    `yaml:"price"`
}

// DifficultiesConfig is the root table for difficulties.yaml. Order
// lists tier ids from easiest to hardest.
type DifficultiesConfig struct {
	Order []string                    `yaml:"order"`
	Tiers map[string]DifficultyConfig `yaml:"tiers"`
}

// DifficultyConfig is one tier's multiplier set.
type DifficultyConfig struct {
	Name       string  `yaml:"name"`
	EnemyHP    float64 `yaml:"enemyHp"`
	BossHP     float64 `yaml:"bossHp"`
	Money      float64 `yaml:"money"`
	EnemySpeed float64 `yaml:"enemySpeed"`
	Damage     float64 `yaml:"damage"`
	Locked     bool    `yaml:"locked"` // not selectable until unlocked
}

// Tier is one difficulty resolved against the tier ordering.
type Tier struct {
	DifficultyConfig
	ID    string
	Index int // position in ascending order, 0 = easiest
	Count int // total number of tiers
}

// Hardest reports whether this is the top tier.
func (t Tier) Hardest() bool {
	return t.Index == t.Count-1
}

// SecondHardest reports whether this is the tier directly below the top.
func (t Tier) SecondHardest() bool {
	return t.Index == t.Count-2
}

// Tier resolves a tier id into a Tier. The boolean is false for ids
// not present in the ordering.
func (d *DifficultiesConfig) Tier(id string) (Tier, bool) {
	cfg, ok := d.Tiers[id]
	if !ok {
		return Tier{}, false
	}
	for i, name := range d.Order {
		if name == id {
			return Tier{DifficultyConfig: cfg, ID: id, Index: i, Count: len(d.Order)}, true
		}
	}
	return Tier{}, false
}

// EntitiesConfig is the root table for entities.yaml.
type EntitiesConfig struct {
	Player  PlayerConfig           `yaml:"player"`
	Enemies map[string]EnemyConfig `yaml:"enemies"`
}

// PlayerConfig holds the player's base stats.
type PlayerConfig struct {
	MaxHealth int `yaml:"maxHealth"`
}

// EnemyConfig holds one archetype's unscaled base stats.
type EnemyConfig struct {
	Name         string  `yaml:"name"`
	Health       int     `yaml:"health"`
	Damage       int     `yaml:"damage"`
	Speed        float64 `yaml:"speed"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	ShotCooldown int     `yaml:"shotCooldown"` // 0 disables the ranged sub-behavior
	ShotSpeed    float64 `yaml:"shotSpeed"`
	Bounty       int     `yaml:"bounty"`
}

// Get returns the config for an archetype name.
func (e *EntitiesConfig) Get(name string) (EnemyConfig, bool) {
	cfg, ok := e.Enemies[name]
	return cfg, ok
}

// GenerationConfig is the root table for generation.yaml.
type GenerationConfig struct {
	Cols          int `yaml:"cols"`
	Rows          int `yaml:"rows"`
	TerminalLevel int `yaml:"terminalLevel"`
	ShopInterval  int `yaml:"shopInterval"`

	Scatter  ScatterConfig  `yaml:"scatter"`
	Hazards  HazardConfig   `yaml:"hazards"`
	Exit     ExitConfig     `yaml:"exit"`
	Spawning SpawningConfig `yaml:"spawning"`
	Pickups  PickupsConfig  `yaml:"pickups"`
}

// ScatterConfig bounds the random wall/platform segments of a combat room.
type ScatterConfig struct {
	MinSegments int `yaml:"minSegments"`
	MaxSegments int `yaml:"maxSegments"`
	MinLength   int `yaml:"minLength"`
	MaxLength   int `yaml:"maxLength"`
}

// HazardConfig bounds the floor hazard strip.
type HazardConfig struct {
	MinLength   int `yaml:"minLength"`
	MaxLength   int `yaml:"maxLength"`
	SafeColumns int `yaml:"safeColumns"` // minimum distance from spawn, in columns
}

// ExitConfig fixes the exit tile's floor position.
type ExitConfig struct {
	Col int `yaml:"col"`
}

// SpawningConfig tunes enemy placement.
type SpawningConfig struct {
	BaseCount    int     `yaml:"baseCount"`
	LevelDivisor int     `yaml:"levelDivisor"`
	MaxCount     int     `yaml:"maxCount"`
	ArcherLevel  int     `yaml:"archerLevel"` // first level archers may appear
	ArcherChance float64 `yaml:"archerChance"`
	TankLevel    int     `yaml:"tankLevel"`
	TankChance   float64 `yaml:"tankChance"`
	RetryBudget  int     `yaml:"retryBudget"`
	FallbackCol  int     `yaml:"fallbackCol"`
	FallbackRow  int     `yaml:"fallbackRow"`
}

// PickupsConfig tunes the generated room loot.
type PickupsConfig struct {
	HealChance float64 `yaml:"healChance"`
	MaxCoins   int     `yaml:"maxCoins"`
	CoinValue  int     `yaml:"coinValue"`
	DropRow    int     `yaml:"dropRow"`
}
