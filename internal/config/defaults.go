package config

import (
	_ "embed"
)

//go:embed defaults/slide2048.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/slide2048.yaml and is used when the embedded copy
// cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Animation: Animation{
			FPS:          60,
			MoveVelocity: 20,
		},
		Geometry: Geometry{
			CellWidth:  200,
			CellHeight: 200,
		},
		Render: Render{
			TileCols: 10,
			TileRows: 5,
		},
		Palette: Palette{
			Tiles: []string{
				"#EDE5DA",
				"#EEE1C9",
				"#F3B27A",
				"#F69665",
				"#F77C5F",
				"#F75F3B",
				"#EDD073",
				"#EDCC63",
				"#ECCA50",
			},
			Font:       "#776E65",
			Outline:    "#BBADA0",
			Background: "#CDC0B4",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
