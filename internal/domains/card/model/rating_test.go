package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTap(t *testing.T) {
	tests := []struct {
		name    string
		current Rating
		star    int
		want    Rating
	}{
		{"set from zero", 0, 3, 6},
		{"raise rating", 4, 5, 10},
		{"lower rating", 10, 2, 4},
		{"toggle full down to half", 6, 3, 5},
		{"toggle at one star", 2, 1, 1},
		{"toggle at five stars", 10, 5, 9},
		{"half value does not toggle", 5, 3, 6},
		{"tap above current half", 7, 4, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.current.Tap(tt.star))
		})
	}
}

func TestTapNeverLeavesDomain(t *testing.T) {
	for r := MinRating; r <= MaxRating; r++ {
		for star := 1; star <= StarCount; star++ {
			got := r.Tap(star)
			assert.True(t, got.Valid(), "Tap(%d) on %d left domain: %d", star, r, got)

			gotHalf := r.TapHalf(star)
			assert.True(t, gotHalf.Valid(), "TapHalf(%d) on %d left domain: %d", star, r, gotHalf)
		}
	}
}

func TestTapHalf(t *testing.T) {
	// Secondary interaction always lands on star - 0.5, no toggle
	assert.Equal(t, Rating(5), Rating(0).TapHalf(3))
	assert.Equal(t, Rating(5), Rating(5).TapHalf(3))
	assert.Equal(t, Rating(5), Rating(6).TapHalf(3))
	assert.Equal(t, Rating(1), Rating(10).TapHalf(1))
	assert.Equal(t, Rating(9), Rating(0).TapHalf(5))
}

func TestClassifyStar(t *testing.T) {
	tests := []struct {
		name   string
		rating Rating
		index  int
		want   StarGlyph
	}{
		{"exactly at index is full", 6, 3, StarFull},
		{"above index is full", 8, 3, StarFull},
		{"exactly half below is half", 5, 3, StarHalf},
		{"below half boundary is empty", 4, 3, StarEmpty},
		{"zero rating first star empty", 0, 1, StarEmpty},
		{"half point first star", 1, 1, StarHalf},
		{"max rating last star full", 10, 5, StarFull},
		{"nine halves last star half", 9, 5, StarHalf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rating.ClassifyStar(tt.index))
		})
	}
}

func TestWholeStars(t *testing.T) {
	// Header strip floors the value; 4.5 shows four stars
	assert.Equal(t, 0, Rating(0).WholeStars())
	assert.Equal(t, 0, Rating(1).WholeStars())
	assert.Equal(t, 1, Rating(2).WholeStars())
	assert.Equal(t, 4, Rating(9).WholeStars())
	assert.Equal(t, 5, Rating(10).WholeStars())
}

func TestFromHalfPointsClamps(t *testing.T) {
	assert.Equal(t, MinRating, FromHalfPoints(-3))
	assert.Equal(t, MaxRating, FromHalfPoints(11))
	assert.Equal(t, Rating(7), FromHalfPoints(7))
}

func TestValue(t *testing.T) {
	assert.Equal(t, 0.0, Rating(0).Value())
	assert.Equal(t, 2.5, Rating(5).Value())
	assert.Equal(t, 5.0, Rating(10).Value())
}
