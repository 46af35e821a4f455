package wheel

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// PointerAngle is the fixed pointer direction (straight up, y grows downwards).
const PointerAngle = 3 * math.Pi / 2

// AngleStep returns the angular width of one of n segments.
func AngleStep(n int) float64 {
	return TwoPi / float64(n)
}

// LayoutOffset is the rotation that centres segment 0 under the pointer at angle 0.
// Renderers and the resolver must use the same value.
func LayoutOffset(n int) float64 {
	return -math.Pi/2 - AngleStep(n)/2
}

// Normalize maps an angle into [0, 2π).
func Normalize(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// -tiny + 2π can round up to exactly 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}

// Resolve returns the index of the segment under the pointer when the wheel
// is rotated by angle and holds n segments. It returns -1 when n < 1.
//
// A pointer sitting exactly on a boundary selects the segment whose arc starts there.
func Resolve(angle float64, n int) int {
	return Explain(angle, n).Index
}

// ResolveDetail is Resolve with its intermediate values, for logging.
type ResolveDetail struct {
	Angle     float64 // normalised rotation
	Effective float64 // rotation including the layout offset
	Diff      float64 // pointer distance from the start of segment 0
	Index     int
}

// Explain returns the intermediate values Resolve works with.
func Explain(angle float64, n int) ResolveDetail {
	if n < 1 {
		return ResolveDetail{Index: -1}
	}
	norm := Normalize(angle)
	effective := Normalize(norm + LayoutOffset(n))
	diff := Normalize(PointerAngle - effective)
	return ResolveDetail{
		Angle:     norm,
		Effective: effective,
		Diff:      diff,
		Index:     int(math.Floor(diff/AngleStep(n))) % n,
	}
}

// CenterAngle returns the rotation that puts the middle of segment index under the pointer.
func CenterAngle(index, n int) float64 {
	return Normalize(-float64(index) * AngleStep(n))
}
