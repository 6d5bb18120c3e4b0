package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tuning holds every gameplay constant. The embedded tuning.yaml documents
// the defaults; a disk copy under prefabs/ overrides it and may be hot
// reloaded while the game runs.
type Tuning struct {
	Player  PlayerSpec  `yaml:"player"`
	Monster MonsterSpec `yaml:"monster"`
	Blast   BlastSpec   `yaml:"blast"`
	Physics PhysicsSpec `yaml:"physics"`
}

type PlayerSpec struct {
	Speed      float64 `yaml:"speed"`
	BodyRadius float64 `yaml:"body_radius"`
}

type MonsterSpec struct {
	Speed      float64 `yaml:"speed"`
	BodyRadius float64 `yaml:"body_radius"`
	Mass       float64 `yaml:"mass"`

	SpawnDistance float64 `yaml:"spawn_distance"`
	SpawnPeriod   float64 `yaml:"spawn_period"`
	SpawnLimit    uint32  `yaml:"spawn_limit"`
}

type BlastSpec struct {
	Radius      float64 `yaml:"radius"`
	Lifetime    float64 `yaml:"lifetime"`
	SpawnPeriod float64 `yaml:"spawn_period"`
}

type PhysicsSpec struct {
	DisplacementFactor float64 `yaml:"displacement_factor"`
}

// LoadSpec reads and unmarshals one yaml file from the prefab store.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadTuning loads tuning.yaml.
func LoadTuning() (*Tuning, error) {
	t, err := LoadSpec[Tuning]("tuning.yaml")
	if err != nil {
		return nil, err
	}
	return &t, nil
}
