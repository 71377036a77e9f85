package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

//go:embed data
var levelFS embed.FS

// ErrNoSpawn is returned for maps without a PlayerSpawn object.
var ErrNoSpawn = errors.New("levels: no player spawn")

// Object group names read from a map.
const (
	groupTerrain     = "Terrain"
	groupPlatforms   = "FloatingPlatforms"
	groupTransitions = "Transitions"
	groupItems       = "Items"
	groupSpawn       = "PlayerSpawn"
)

const defaultThickness = 1.0

// Load reads a bundled level by name, e.g. "overworld".
func Load(name string) (*Level, error) {
	return LoadFile(levelFS, "data/"+name+".tmx")
}

// Names lists the bundled levels.
func Names() ([]string, error) {
	matches, err := fs.Glob(levelFS, "data/*.tmx")
	if err != nil {
		return nil, fmt.Errorf("glob levels: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}

// LoadFile parses a TMX file from fsys. One tile edge is one world unit and
// the map is centred on the origin.
func LoadFile(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size must be positive", tmxPath)
	}

	u := unitConverter{
		tileW:   float64(levelMap.TileWidth),
		tileH:   float64(levelMap.TileHeight),
		originX: float64(levelMap.Width) / 2,
		originZ: float64(levelMap.Height) / 2,
	}
	level := &Level{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width),
		Depth: float64(levelMap.Height),
	}

	spawned := false
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case groupTerrain:
				level.Terrain = append(level.Terrain, u.box(o))
			case groupPlatforms:
				level.Platforms = append(level.Platforms, Platform{
					Box:    u.box(o),
					Travel: o.Properties.GetFloat("travel"),
					Period: o.Properties.GetFloat("period"),
				})
			case groupTransitions:
				level.Transitions = append(level.Transitions, Transition{
					Box: u.box(o),
					Destination: mgl64.Vec3{
						o.Properties.GetFloat("destX"),
						o.Properties.GetFloat("destY"),
						o.Properties.GetFloat("destZ"),
					},
				})
			case groupItems:
				kind := o.Properties.GetString("item")
				if kind == "" {
					kind = o.Name
				}
				level.Items = append(level.Items, Item{
					Box:   u.box(o),
					Kind:  kind,
					Value: o.Properties.GetInt("value"),
				})
			case groupSpawn:
				x, z := u.point(o.X, o.Y)
				level.Spawn = mgl64.Vec3{x, o.Properties.GetFloat("elevation"), z}
				spawned = true
			}
		}
	}

	if !spawned {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSpawn)
	}
	return level, nil
}

type unitConverter struct {
	tileW, tileH     float64
	originX, originZ float64
}

func (u unitConverter) point(px, py float64) (x, z float64) {
	return px/u.tileW - u.originX, py/u.tileH - u.originZ
}

// box reads the footprint from the object rectangle and the vertical extent
// from the "top" and "thickness" properties.
func (u unitConverter) box(o *tiled.Object) Box {
	x, z := u.point(o.X+o.Width/2, o.Y+o.Height/2)
	thickness := o.Properties.GetFloat("thickness")
	if thickness <= 0 {
		thickness = defaultThickness
	}
	top := o.Properties.GetFloat("top")
	return Box{
		Center: mgl64.Vec3{x, top - thickness/2, z},
		HalfExtents: mgl64.Vec3{
			o.Width / u.tileW / 2,
			thickness / 2,
			o.Height / u.tileH / 2,
		},
	}
}
