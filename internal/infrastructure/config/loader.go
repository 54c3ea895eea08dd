package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads the game's data tables from YAML files via fs.FS.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader reading from a directory on disk.
func NewLoader(dir string) *Loader {
	return &Loader{fsys: os.DirFS(dir)}
}

// NewFSLoader creates a loader reading from an fs.FS.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

func load[T any](fsys fs.FS, name string) (*T, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var cfg T
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return &cfg, nil
}

// LoadWeapons loads and validates weapons.yaml.
func (l *Loader) LoadWeapons() (*WeaponsConfig, error) {
	cfg, err := load[WeaponsConfig](l.fsys, "weapons.yaml")
	if err != nil {
		return nil, err
	}
	if err := validateWeapons(cfg); err != nil {
		return nil, fmt.Errorf("weapons.yaml: %w", err)
	}
	return cfg, nil
}

// LoadDifficulties loads and validates difficulties.yaml.
func (l *Loader) LoadDifficulties() (*DifficultiesConfig, error) {
	cfg, err := load[DifficultiesConfig](l.fsys, "difficulties.yaml")
	if err != nil {
		return nil, err
	}
	if err := validateDifficulties(cfg); err != nil {
		return nil, fmt.Errorf("difficulties.yaml: %w", err)
	}
	return cfg, nil
}

// LoadEntities loads and validates entities.yaml.
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	cfg, err := load[EntitiesConfig](l.fsys, "entities.yaml")
	if err != nil {
		return nil, err
	}
	if err := validateEntities(cfg); err != nil {
		return nil, fmt.Errorf("entities.yaml: %w", err)
	}
	return cfg, nil
}

// LoadGeneration loads and validates generation.yaml.
func (l *Loader) LoadGeneration() (*GenerationConfig, error) {
	cfg, err := load[GenerationConfig](l.fsys, "generation.yaml")
	if err != nil {
		return nil, err
	}
	if err := validateGeneration(cfg); err != nil {
		return nil, fmt.Errorf("generation.yaml: %w", err)
	}
	return cfg, nil
}

// LoadAll loads every table.
func (l *Loader) LoadAll() (*GameConfig, error) {
	weapons, err := l.LoadWeapons()
	if err != nil {
		return nil, err
	}

	difficulties, err := l.LoadDifficulties()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	generation, err := l.LoadGeneration()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Weapons:      weapons,
		Difficulties: difficulties,
		Entities:     entities,
		Generation:   generation,
	}, nil
}

func validateWeapons(cfg *WeaponsConfig) error {
	if len(cfg.Weapons) == 0 {
		return fmt.Errorf("no weapons defined")
	}
	if _, ok := cfg.Weapons[cfg.Starter]; !ok {
		return fmt.Errorf("starter weapon %q not defined", cfg.Starter)
	}
	for id, w := range cfg.Weapons {
		if w.Cooldown <= 0 {
			return fmt.Errorf("weapon %q: cooldown must be positive", id)
		}
		if w.Melee() {
			if w.ProjectileCount > 0 {
				return fmt.Errorf("weapon %q: melee weapons cannot fire projectiles", id)
			}
		} else {
			if w.ProjectileCount <= 0 {
				return fmt.Errorf("weapon %q: ranged weapons need at least one projectile", id)
			}
			if w.ProjectileSpeed <= 0 {
				return fmt.Errorf("weapon %q: projectile speed must be positive", id)
			}
			if w.ProjectileLife <= 0 {
				return fmt.Errorf("weapon %q: projectile life must be positive", id)
			}
		}
	}
	for id, item := range cfg.Items {
		switch item.Kind {
		case "heart", "elixir", "armor":
		default:
			return fmt.Errorf("item %q: unknown kind %q", id, item.Kind)
		}
		if item.Price <= 0 {
			return fmt.Errorf("item %q: price must be positive", id)
		}
	}
	return nil
}

func validateDifficulties(cfg *DifficultiesConfig) error {
	if len(cfg.Order) < 2 {
		return fmt.Errorf("need at least two tiers, got %d", len(cfg.Order))
	}
	for _, id := range cfg.Order {
		tier, ok := cfg.Tiers[id]
		if !ok {
			return fmt.Errorf("tier %q listed in order but not defined", id)
		}
		if tier.EnemyHP <= 0 || tier.BossHP <= 0 || tier.Money <= 0 || tier.EnemySpeed <= 0 || tier.Damage <= 0 {
			return fmt.Errorf("tier %q: multipliers must be positive", id)
		}
	}
	return nil
}

func validateEntities(cfg *EntitiesConfig) error {
	if cfg.Player.MaxHealth <= 0 {
		return fmt.Errorf("player maxHealth must be positive")
	}
	required := []string{"walker", "archer", "tank", "midboss", "overlord"}
	for _, name := range required {
		e, ok := cfg.Enemies[name]
		if !ok {
			return fmt.Errorf("missing enemy archetype %q", name)
		}
		if e.Health <= 0 {
			return fmt.Errorf("enemy %q: health must be positive", name)
		}
		if e.Width <= 0 || e.Height <= 0 {
			return fmt.Errorf("enemy %q: size must be positive", name)
		}
		if e.ShotCooldown > 0 && e.ShotSpeed <= 0 {
			return fmt.Errorf("enemy %q: shot speed must be positive when shooting", name)
		}
	}
	return nil
}

func validateGeneration(cfg *GenerationConfig) error {
	if cfg.Cols < 16 || cfg.Rows < 8 {
		return fmt.Errorf("room extent %dx%d too small", cfg.Cols, cfg.Rows)
	}
	if cfg.TerminalLevel <= 0 {
		return fmt.Errorf("terminalLevel must be positive")
	}
	if cfg.ShopInterval <= 1 {
		return fmt.Errorf("shopInterval must be greater than one")
	}
	if cfg.Exit.Col <= 0 || cfg.Exit.Col >= cfg.Cols-1 {
		return fmt.Errorf("exit column %d outside the room interior", cfg.Exit.Col)
	}
	if cfg.Scatter.MinLength > cfg.Scatter.MaxLength || cfg.Scatter.MinSegments > cfg.Scatter.MaxSegments {
		return fmt.Errorf("scatter bounds inverted")
	}
	if cfg.Hazards.MinLength > cfg.Hazards.MaxLength {
		return fmt.Errorf("hazard bounds inverted")
	}
	if cfg.Spawning.RetryBudget <= 0 {
		return fmt.Errorf("retryBudget must be positive")
	}
	if cfg.Spawning.FallbackCol <= 0 || cfg.Spawning.FallbackCol >= cfg.Cols-1 ||
		cfg.Spawning.FallbackRow <= 0 || cfg.Spawning.FallbackRow >= cfg.Rows-1 {
		return fmt.Errorf("fallback spawn cell outside the room interior")
	}
	return nil
}
