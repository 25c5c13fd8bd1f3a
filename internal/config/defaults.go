package config

import (
	_ "embed"
)

//go:embed defaults/tigrao.yaml
var defaultTigraoYAML []byte

// DefaultTigraoConfig returns the built-in configuration.
func DefaultTigraoConfig() TigraoConfig {
	return TigraoConfig{
		Board: BoardConfig{
			Rows: 8,
			Cols: 8,
		},
		Speed: SpeedConfig{
			Initial: 1.0,
			Min:     MinSpeed,
			Max:     MaxSpeed,
			Step:    0.1,
		},
		Pace: PaceConfig{
			MatchDelay:  0.3,
			SettleDelay: 0.5,
		},
		Engine: EngineConfig{
			MaxChainPasses: 100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tigrao":
		return defaultTigraoYAML
	default:
		return nil
	}
}
