package model

// Rating is a half-point star rating stored as an integer count of
// half-points (0..10). Integer storage keeps half-point comparisons exact;
// the float value exists for display only.
type Rating int

const (
	MinRating Rating = 0
	MaxRating Rating = 10 // 5.0 stars
	StarCount        = 5
)

// StarGlyph is the three-way star classification used by the detail readout.
type StarGlyph string

const (
	StarFull  StarGlyph = "full"
	StarHalf  StarGlyph = "half"
	StarEmpty StarGlyph = "empty"
)

// FromHalfPoints clamps n into the valid rating domain.
func FromHalfPoints(n int) Rating {
	r := Rating(n)
	if r < MinRating {
		return MinRating
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}

// Value returns the display value (0.0, 0.5, ... 5.0).
func (r Rating) Value() float64 {
	return float64(r) / 2
}

// HalfPoints returns the raw half-point count.
func (r Rating) HalfPoints() int {
	return int(r)
}

// Valid reports whether r lies in the half-point domain.
func (r Rating) Valid() bool {
	return r >= MinRating && r <= MaxRating
}

// Tap applies the primary interaction on star s (1..5): the new rating is s,
// unless the rating already equals s, in which case the full star toggles
// down to a half star.
func (r Rating) Tap(star int) Rating {
	full := FromHalfPoints(clampStar(star) * 2)
	if r == full {
		return FromHalfPoints(full.HalfPoints() - 1)
	}
	return full
}

// TapHalf applies the secondary interaction on star s: always s - 0.5,
// bypassing the toggle rule.
func (r Rating) TapHalf(star int) Rating {
	return FromHalfPoints(clampStar(star)*2 - 1)
}

// ClassifyStar classifies star index (1..5) against the rating:
// full when rating >= index, half when index-0.5 <= rating < index,
// empty otherwise. Exact at half-point boundaries.
func (r Rating) ClassifyStar(index int) StarGlyph {
	threshold := Rating(index * 2)
	switch {
	case r >= threshold:
		return StarFull
	case r == threshold-1:
		return StarHalf
	default:
		return StarEmpty
	}
}

// WholeStars returns floor(value). The card header shows only full/empty
// stars against this count while the numeric readout keeps the exact
// half-point value; the asymmetry is intentional.
func (r Rating) WholeStars() int {
	return int(r) / 2
}

func clampStar(star int) int {
	if star < 1 {
		return 1
	}
	if star > StarCount {
		return StarCount
	}
	return star
}
