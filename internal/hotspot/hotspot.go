// Package hotspot locates and names marker tiles in a level's hot-spot
// layer. Markers encode gameplay triggers (movement cues, waits, dialogue,
// level-control events, death and collect zones) at fixed grid cells.
package hotspot

import (
	"fmt"

	"github.com/leveltools/levelscope/internal/level"
)

// LayerType is the layer type tag that carries hot-spot markers.
const LayerType = "hot_spots"

// TileSize is the pixel span of one grid cell. Grid indices map to world
// coordinates as pixel = index * TileSize.
const TileSize = 32

// Code is a hot-spot tile value. -1 and 0 mean "no marker"; every other
// value names a trigger kind.
type Code int

// Known marker codes. -2 and -3 are real markers, not sentinels.
const (
	CodeNone               Code = 0
	CodeGoRight            Code = 1
	CodeGoLeft             Code = 2
	CodeGoUp               Code = 3
	CodeGoDown             Code = 4
	CodeGoUpRight          Code = 5
	CodeGoUpLeft           Code = 6
	CodeGoDownRight        Code = 7
	CodeGoDownLeft         Code = 8
	CodeWaitShort          Code = 9
	CodeWaitMedium         Code = 10
	CodeWaitLong           Code = 11
	CodeAttack             Code = 12
	CodeTalk               Code = 13
	CodeWalkAndTalk        Code = 14
	CodeTakeCameraFocus    Code = 15
	CodeReleaseCameraFocus Code = 16
	CodeEndLevel           Code = 17
	CodeGameEvent          Code = 18
	CodeDeath              Code = -2
	CodeCollect            Code = -3
)

// names maps codes to display labels. Module-scoped, read-only.
var names = map[Code]string{
	CodeNone:               "NONE",
	CodeGoRight:            "GO_RIGHT",
	CodeGoLeft:             "GO_LEFT",
	CodeGoUp:               "GO_UP",
	CodeGoDown:             "GO_DOWN",
	CodeGoUpRight:          "GO_UP_RIGHT",
	CodeGoUpLeft:           "GO_UP_LEFT",
	CodeGoDownRight:        "GO_DOWN_RIGHT",
	CodeGoDownLeft:         "GO_DOWN_LEFT",
	CodeWaitShort:          "WAIT_SHORT",
	CodeWaitMedium:         "WAIT_MEDIUM",
	CodeWaitLong:           "WAIT_LONG",
	CodeAttack:             "ATTACK",
	CodeTalk:               "TALK",
	CodeWalkAndTalk:        "WALK_AND_TALK",
	CodeTakeCameraFocus:    "TAKE_CAMERA_FOCUS",
	CodeReleaseCameraFocus: "RELEASE_CAMERA_FOCUS",
	CodeEndLevel:           "END_LEVEL",
	CodeGameEvent:          "GAME_EVENT",
	CodeDeath:              "DEATH",
	CodeCollect:            "COLLECT",
}

// Name returns the display label for the code. Unmapped codes render as
// TYPE_<value>.
func (c Code) Name() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("TYPE_%d", int(c))
}

// IsEmpty reports whether the code is one of the two "no marker" sentinels.
func (c Code) IsEmpty() bool {
	return c == -1 || c == 0
}

// Category groups marker codes for display purposes.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryMovement
	CategoryWait
	CategoryInteraction
	CategoryControl
	CategorySpecial
)

// Category returns the display group for the code.
func (c Code) Category() Category {
	switch {
	case c >= CodeGoRight && c <= CodeGoDownLeft:
		return CategoryMovement
	case c >= CodeWaitShort && c <= CodeWaitLong:
		return CategoryWait
	case c >= CodeAttack && c <= CodeWalkAndTalk:
		return CategoryInteraction
	case c >= CodeTakeCameraFocus && c <= CodeGameEvent:
		return CategoryControl
	case c == CodeDeath || c == CodeCollect:
		return CategorySpecial
	}
	return CategoryUnknown
}

// Spot is one marker cell found in the grid.
type Spot struct {
	Row  int
	Col  int
	Code Code
}

// PixelX returns the marker's world X coordinate (column * TileSize).
func (s Spot) PixelX() int {
	return s.Col * TileSize
}

// PixelY returns the marker's world Y coordinate (row * TileSize).
func (s Spot) PixelY() int {
	return s.Row * TileSize
}

// Scan walks the layer's grid in row-major order and returns every
// non-sentinel cell. Returns nil for non-tile layers.
func Scan(layer *level.Layer) []Spot {
	if layer == nil || layer.World == nil {
		return nil
	}

	var spots []Spot
	for row, cells := range layer.World.Tiles {
		for col, val := range cells {
			code := Code(val)
			if code.IsEmpty() {
				continue
			}
			spots = append(spots, Spot{Row: row, Col: col, Code: code})
		}
	}
	return spots
}
