package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tunables is the on-disk override file for gameplay values. Any section or
// field left out of the file keeps its compiled-in default.
type Tunables struct {
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Meteor     MeteorConfig     `yaml:"meteor"`
	Coin       CoinConfig       `yaml:"coin"`
}

// CurrentTunables snapshots the active gameplay values.
func CurrentTunables() Tunables {
	return Tunables{
		Player:     Player,
		Physics:    Physics,
		Projectile: Projectile,
		Meteor:     Meteor,
		Coin:       Coin,
	}
}

// ParseTunables decodes YAML on top of the current values.
func ParseTunables(data []byte) (Tunables, error) {
	t := CurrentTunables()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tunables{}, fmt.Errorf("failed to parse tunables: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tunables{}, err
	}
	return t, nil
}

// Validate rejects values the game loop cannot run with.
func (t Tunables) Validate() error {
	if t.Physics.CellSize <= 0 {
		return fmt.Errorf("physics.cell_size must be positive, got %d", t.Physics.CellSize)
	}
	if t.Meteor.Count < 0 {
		return fmt.Errorf("meteor.count must not be negative, got %d", t.Meteor.Count)
	}
	if t.Meteor.MinY < 0 || t.Meteor.MinY >= float64(C.Height) {
		return fmt.Errorf("meteor.min_y must be in [0, %d), got %v", C.Height, t.Meteor.MinY)
	}
	if t.Coin.StepX <= 0 {
		return fmt.Errorf("coin.step_x must be positive, got %v", t.Coin.StepX)
	}
	if t.Player.Width <= 0 || t.Player.Height <= 0 {
		return fmt.Errorf("player size must be positive, got %vx%v", t.Player.Width, t.Player.Height)
	}
	return nil
}

// Apply makes t the active gameplay values.
func (t Tunables) Apply() {
	Player = t.Player
	Physics = t.Physics
	Projectile = t.Projectile
	Meteor = t.Meteor
	Coin = t.Coin
}

// LoadTunables reads a YAML override file and applies it.
func LoadTunables(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tunables %s: %w", path, err)
	}
	t, err := ParseTunables(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	t.Apply()
	return nil
}
