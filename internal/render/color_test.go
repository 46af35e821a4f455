package render

import (
	"testing"

	"github.com/vovakirdan/tui-wheel/internal/core"
)

func TestContrastColor(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#FFFFFF", "#000000"},
		{"#FFEAA7", "#000000"},
		{"#4ECDC4", "#000000"},
		{"#FF6B6B", "#000000"},
		{"#000000", "#ffffff"},
		{"#333333", "#ffffff"},
		{"#45B7D1", "#000000"},
		{"#BB8FCE", "#000000"},
		{"#0000FF", "#ffffff"},
		{"", "#ffffff"},
		{"red", "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			if got := ContrastColor(tt.hex).Hex(); got != tt.want {
				t.Errorf("ContrastColor(%q) = %s, want %s", tt.hex, got, tt.want)
			}
		})
	}
}

func TestLighten(t *testing.T) {
	tests := []struct {
		hex     string
		percent float64
		want    string
	}{
		{"#000000", 20, "#333333"},
		{"#FF6B6B", 20, "#ff9e9e"},
		{"#F0F0F0", 20, "#ffffff"},
		{"#336699", 0, "#336699"},
		{"#101010", -20, "#000000"},
	}

	for _, tt := range tests {
		c, ok := ParseColor(tt.hex)
		if !ok {
			t.Fatalf("ParseColor(%q) failed", tt.hex)
		}
		if got := Lighten(c, tt.percent).Hex(); got != tt.want {
			t.Errorf("Lighten(%s, %v) = %s, want %s", tt.hex, tt.percent, got, tt.want)
		}
	}
}

func TestSegmentColorFallback(t *testing.T) {
	if SegmentColor("garbage") != FallbackFill {
		t.Error("unparseable colour did not fall back")
	}
	if got := SegmentColor("#4ECDC4").Hex(); got != "#4ecdc4" {
		t.Errorf("SegmentColor = %s", got)
	}
}

func TestToCore(t *testing.T) {
	c, _ := ParseColor("#ff6b6b")
	if ToCore(c) != core.ColorRed {
		t.Errorf("ToCore = %s, want %s", ToCore(c).Hex(), core.ColorRed.Hex())
	}
}

func TestPaintAt(t *testing.T) {
	p := Radial(Black, White)
	if p.At(0) != Black || p.At(1) != White {
		t.Error("gradient ends wrong")
	}
	if got := p.At(2); got != White {
		t.Errorf("At(2) = %v, want clamped to end", got.Hex())
	}
	if Solid(White).At(0.5) != White {
		t.Error("solid paint varied")
	}
}
