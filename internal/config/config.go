// Package config provides YAML-based configuration loading for slide2048.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunable parameters of the game.
// The grid itself is always 4x4 and is not configurable.
type Config struct {
	Animation Animation `yaml:"animation"`
	Geometry  Geometry  `yaml:"geometry"`
	Render    Render    `yaml:"render"`
	Palette   Palette   `yaml:"palette"`
}

// Animation defines the pacing of the settle loop.
type Animation struct {
	FPS          int `yaml:"fps"`
	MoveVelocity int `yaml:"move_velocity"` // Pixels per frame
}

// Geometry defines the pixel space tiles move through.
type Geometry struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// Render defines how pixel space maps onto terminal cells.
type Render struct {
	TileCols int `yaml:"tile_cols"`
	TileRows int `yaml:"tile_rows"`
}

// Palette defines tile and board colours as hex triplets or ANSI codes.
type Palette struct {
	Tiles      []string `yaml:"tiles"` // Indexed by log2(value)-1
	Font       string   `yaml:"font"`
	Outline    string   `yaml:"outline"`
	Background string   `yaml:"background"`
}

// Validate checks that the configuration can drive an exact animation.
// The per-frame velocity must evenly divide both cell dimensions so that
// tiles always come to rest on a cell boundary.
func (c Config) Validate() error {
	var errs []error

	if c.Animation.FPS <= 0 {
		errs = append(errs, fmt.Errorf("animation.fps must be positive, got %d", c.Animation.FPS))
	}
	if c.Geometry.CellWidth <= 0 || c.Geometry.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("geometry cell size must be positive, got %dx%d",
			c.Geometry.CellWidth, c.Geometry.CellHeight))
	}

	v := c.Animation.MoveVelocity
	switch {
	case v <= 0:
		errs = append(errs, fmt.Errorf("animation.move_velocity must be positive, got %d", v))
	case c.Geometry.CellWidth > 0 && c.Geometry.CellWidth%v != 0:
		errs = append(errs, fmt.Errorf("animation.move_velocity %d does not divide cell_width %d", v, c.Geometry.CellWidth))
	case c.Geometry.CellHeight > 0 && c.Geometry.CellHeight%v != 0:
		errs = append(errs, fmt.Errorf("animation.move_velocity %d does not divide cell_height %d", v, c.Geometry.CellHeight))
	}

	// Need room for a border plus at least one character of tile face.
	if c.Render.TileCols < 2 || c.Render.TileRows < 2 {
		errs = append(errs, fmt.Errorf("render tile size must be at least 2x2, got %dx%d",
			c.Render.TileCols, c.Render.TileRows))
	}
	if len(c.Palette.Tiles) == 0 {
		errs = append(errs, errors.New("palette.tiles must not be empty"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
