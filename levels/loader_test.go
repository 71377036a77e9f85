package levels

import (
	"errors"
	"math"
	"testing"
	"testing/fstest"
)

func TestLoadOverworld(t *testing.T) {
	level, err := Load("overworld")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if level.Width != 48 || level.Depth != 48 {
		t.Errorf("expected 48x48, got %vx%v", level.Width, level.Depth)
	}
	if len(level.Terrain) != 3 {
		t.Errorf("expected 3 terrain boxes, got %d", len(level.Terrain))
	}
	if len(level.Platforms) != 1 || level.Platforms[0].Travel != 2 {
		t.Errorf("expected one platform with travel 2, got %+v", level.Platforms)
	}
	if len(level.Transitions) != 1 || level.Transitions[0].Destination.Z() != 10 {
		t.Errorf("expected one transition to z 10, got %+v", level.Transitions)
	}
	if len(level.Items) != 3 {
		t.Errorf("expected 3 items, got %d", len(level.Items))
	}
	if level.Spawn.X() != 0 || level.Spawn.Z() != 0 {
		t.Errorf("expected spawn at the origin, got %v", level.Spawn)
	}

	ground := level.Terrain[0]
	if math.Abs(ground.Top()) > 1e-9 {
		t.Errorf("expected ground top 0, got %v", ground.Top())
	}
	if ground.HalfExtents.X() != 24 || ground.HalfExtents.Z() != 24 {
		t.Errorf("expected ground to cover the map, got %v", ground.HalfExtents)
	}

	plateau := level.Terrain[1]
	if plateau.Center.X() != 11 || plateau.Center.Z() != 0 {
		t.Errorf("expected plateau centre (11, 0), got %v", plateau.Center)
	}
	if plateau.Top() != 2 {
		t.Errorf("expected plateau top 2, got %v", plateau.Top())
	}
}

func TestLoadFileWithoutSpawn(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.tmx": &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Terrain">
  <object id="1" x="0" y="0" width="64" height="64"/>
 </objectgroup>
</map>
`)},
	}

	_, err := LoadFile(fsys, "empty.tmx")
	if !errors.Is(err, ErrNoSpawn) {
		t.Errorf("expected ErrNoSpawn, got %v", err)
	}
}

func TestNames(t *testing.T) {
	names, err := Names()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) == 0 || names[0] != "overworld" {
		t.Errorf("expected overworld, got %v", names)
	}
}
