package hotspot

import (
	"testing"

	"github.com/leveltools/levelscope/internal/level"
)

func TestCodeName(t *testing.T) {
	tests := []struct {
		name     string
		code     Code
		expected string
	}{
		{"movement", CodeGoRight, "GO_RIGHT"},
		{"diagonal movement", CodeGoDownLeft, "GO_DOWN_LEFT"},
		{"wait", CodeWaitMedium, "WAIT_MEDIUM"},
		{"interaction", CodeTalk, "TALK"},
		{"camera control", CodeReleaseCameraFocus, "RELEASE_CAMERA_FOCUS"},
		{"level end", CodeEndLevel, "END_LEVEL"},
		{"death trigger", CodeDeath, "DEATH"},
		{"collect trigger", CodeCollect, "COLLECT"},
		{"zero", CodeNone, "NONE"},
		{"unmapped positive", Code(42), "TYPE_42"},
		{"unmapped negative", Code(-7), "TYPE_-7"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.code.Name(); got != tc.expected {
				t.Errorf("Name() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestCodeIsEmpty(t *testing.T) {
	tests := []struct {
		code     Code
		expected bool
	}{
		{Code(-1), true},
		{Code(0), true},
		{Code(1), false},
		{CodeDeath, false},
		{CodeCollect, false},
		{Code(42), false},
	}

	for _, tc := range tests {
		if got := tc.code.IsEmpty(); got != tc.expected {
			t.Errorf("Code(%d).IsEmpty() = %v, expected %v", tc.code, got, tc.expected)
		}
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code     Code
		expected Category
	}{
		{CodeGoRight, CategoryMovement},
		{CodeGoDownLeft, CategoryMovement},
		{CodeWaitShort, CategoryWait},
		{CodeAttack, CategoryInteraction},
		{CodeWalkAndTalk, CategoryInteraction},
		{CodeTakeCameraFocus, CategoryControl},
		{CodeGameEvent, CategoryControl},
		{CodeDeath, CategorySpecial},
		{CodeCollect, CategorySpecial},
		{Code(42), CategoryUnknown},
		{CodeNone, CategoryUnknown},
	}

	for _, tc := range tests {
		if got := tc.code.Category(); got != tc.expected {
			t.Errorf("Code(%d).Category() = %v, expected %v", tc.code, got, tc.expected)
		}
	}
}

func TestSpotPixelCoordinates(t *testing.T) {
	s := Spot{Row: 2, Col: 3, Code: CodeGoRight}

	if got := s.PixelX(); got != 96 {
		t.Errorf("PixelX() = %d, expected 96", got)
	}
	if got := s.PixelY(); got != 64 {
		t.Errorf("PixelY() = %d, expected 64", got)
	}
}

func TestScanSkipsSentinels(t *testing.T) {
	layer := &level.Layer{
		Type: LayerType,
		World: &level.World{Tiles: [][]int{
			{-1, 0, -1},
			{0, -1, 0},
		}},
	}

	if spots := Scan(layer); len(spots) != 0 {
		t.Errorf("Expected no spots in all-sentinel grid, got %d", len(spots))
	}
}

func TestScanRowMajorOrder(t *testing.T) {
	layer := &level.Layer{
		Type: LayerType,
		World: &level.World{Tiles: [][]int{
			{-1, 13, -1},
			{1, 0, -2},
			{-1, -1, -3},
		}},
	}

	spots := Scan(layer)
	expected := []Spot{
		{Row: 0, Col: 1, Code: CodeTalk},
		{Row: 1, Col: 0, Code: CodeGoRight},
		{Row: 1, Col: 2, Code: CodeDeath},
		{Row: 2, Col: 2, Code: CodeCollect},
	}

	if len(spots) != len(expected) {
		t.Fatalf("Scan() returned %d spots, expected %d", len(spots), len(expected))
	}
	for i, want := range expected {
		if spots[i] != want {
			t.Errorf("spots[%d] = %+v, expected %+v", i, spots[i], want)
		}
	}
}

func TestScanNilLayer(t *testing.T) {
	if spots := Scan(nil); spots != nil {
		t.Errorf("Scan(nil) = %v, expected nil", spots)
	}
	if spots := Scan(&level.Layer{Type: LayerType}); spots != nil {
		t.Errorf("Scan(non-tile layer) = %v, expected nil", spots)
	}
}
