package assets

import (
	"embed"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"strconv"
	"strings"

	"github.com/automoto/kallis-world/config"
	"github.com/lafriks/go-tiled"
)

//go:embed levels/*.tmx
var assetFS embed.FS

// ErrLevelNotFound is returned when no map exists for a level index.
var ErrLevelNotFound = errors.New("level not found")

// Tile is one placed map tile in y-up world space. X/Y is its bottom-left
// corner.
type Tile struct {
	Col, Row int
	X, Y     float64
	Size     float64
	Kind     string
	Color    color.RGBA
}

// TileMap is a loaded level: every tile layer keyed by name, already scaled
// to world pixels.
type TileMap struct {
	Name     string
	Width    int // in tiles
	Height   int // in tiles
	TileSize float64

	Layers map[string][]Tile

	Background    color.RGBA
	HasBackground bool
}

// PixelWidth is the width of the map in world pixels.
func (m *TileMap) PixelWidth() float64 {
	return float64(m.Width) * m.TileSize
}

// PixelHeight is the height of the map in world pixels.
func (m *TileMap) PixelHeight() float64 {
	return float64(m.Height) * m.TileSize
}

// Layer returns the tiles of the named layer, or nil if the map has none.
func (m *TileMap) Layer(name string) []Tile {
	return m.Layers[name]
}

// MapLoader loads the tile map of a numbered level.
type MapLoader interface {
	LoadLevel(index int) (*TileMap, error)
}

// LevelLoader reads Tiled maps from a file system.
type LevelLoader struct {
	fsys        fs.FS
	pattern     string
	tileScaling float64
}

// NewLevelLoader loads the levels shipped with the game.
func NewLevelLoader() *LevelLoader {
	return NewLevelLoaderFS(assetFS, config.Level.PathPattern, config.Level.TileScaling)
}

// NewLevelLoaderFS loads levels named by pattern (a format string taking the
// level index) from fsys.
func NewLevelLoaderFS(fsys fs.FS, pattern string, tileScaling float64) *LevelLoader {
	return &LevelLoader{
		fsys:        fsys,
		pattern:     pattern,
		tileScaling: tileScaling,
	}
}

// LoadLevel loads and scales the map of the given level.
func (l *LevelLoader) LoadLevel(index int) (*TileMap, error) {
	path := fmt.Sprintf(l.pattern, index)
	if _, err := fs.Stat(l.fsys, path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, path)
	}

	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load map %s: %w", path, err)
	}

	return l.convert(path, levelMap)
}

func (l *LevelLoader) convert(path string, levelMap *tiled.Map) (*TileMap, error) {
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("map %s: tiles must be square, got %dx%d", path, levelMap.TileWidth, levelMap.TileHeight)
	}

	tm := &TileMap{
		Name:     path,
		Width:    levelMap.Width,
		Height:   levelMap.Height,
		TileSize: float64(levelMap.TileWidth) * l.tileScaling,
		Layers:   make(map[string][]Tile, len(levelMap.Layers)),
	}

	if levelMap.BackgroundColor != nil {
		tm.Background = color.RGBAModel.Convert(levelMap.BackgroundColor).(color.RGBA)
		tm.HasBackground = true
	}

	for _, layer := range levelMap.Layers {
		if len(layer.Tiles) < levelMap.Width*levelMap.Height {
			return nil, fmt.Errorf("map %s: layer %q has %d tiles, want %d",
				path, layer.Name, len(layer.Tiles), levelMap.Width*levelMap.Height)
		}

		var tiles []Tile
		for row := 0; row < levelMap.Height; row++ {
			for col := 0; col < levelMap.Width; col++ {
				tile := layer.Tiles[row*levelMap.Width+col]
				if tile.IsNil() {
					continue
				}

				t := Tile{
					Col:   col,
					Row:   row,
					X:     float64(col) * tm.TileSize,
					Y:     float64(levelMap.Height-1-row) * tm.TileSize,
					Size:  tm.TileSize,
					Color: config.White,
				}

				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					t.Kind = tilesetTile.Properties.GetString("kind")
					if hex := tilesetTile.Properties.GetString("color"); hex != "" {
						c, err := ParseHexColor(hex)
						if err != nil {
							return nil, fmt.Errorf("map %s: tile %d: %w", path, tile.ID, err)
						}
						t.Color = c
					}
				}
				tiles = append(tiles, t)
			}
		}
		tm.Layers[layer.Name] = tiles
	}

	return tm, nil
}

// ParseHexColor parses Tiled's "#RRGGBB" and "#AARRGGBB" colors.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	switch len(hex) {
	case 6:
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	case 8:
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(v >> 24)}, nil
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q: want 6 or 8 hex digits", s)
	}
}
