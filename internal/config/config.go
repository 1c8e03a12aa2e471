// Package config provides YAML-based loading of match settings and board maps
// for the arena, with embedded defaults.
package config

import (
	"time"
)

// Settings holds every tunable rule of a match.
type Settings struct {
	BoardSize       int    `yaml:"board_size"`
	RobotHP         int    `yaml:"robot_hp"`
	AttackRange     [2]int `yaml:"attack_range"` // inclusive [min, max]
	CollisionDamage int    `yaml:"collision_damage"`
	SuicideDamage   int    `yaml:"suicide_damage"`
	SpawnEvery      int    `yaml:"spawn_every"`
	SpawnPerPlayer  int    `yaml:"spawn_per_player"`
	MaxTurns        int    `yaml:"max_turns"`

	TurnIntervalMS    int `yaml:"turn_interval_ms"`
	DecisionTimeoutMS int `yaml:"decision_timeout_ms"`
}

// TurnInterval is the delay between turns when a match is watched live.
func (s Settings) TurnInterval() time.Duration {
	return time.Duration(s.TurnIntervalMS) * time.Millisecond
}

// DecisionTimeout bounds a single robot decision. Zero means no bound.
func (s Settings) DecisionTimeout() time.Duration {
	return time.Duration(s.DecisionTimeoutMS) * time.Millisecond
}

// Point is a board cell written as [x, y] in YAML.
type Point [2]int

// Map describes a board: which cells are obstacles and which are spawn cells.
//
// Layout rows use '#' for obstacles, 'S' for spawn cells and '.' (or any other
// rune) for open floor. Spawn and Obstacle lists are merged with the layout.
type Map struct {
	Name     string   `yaml:"name"`
	Size     int      `yaml:"size,omitempty"` // defaults to the layout height, then board_size
	Layout   []string `yaml:"layout,omitempty"`
	Spawn    []Point  `yaml:"spawn,omitempty"`
	Obstacle []Point  `yaml:"obstacle,omitempty"`
}
