package starfield_test

import (
	"math/rand"
	"testing"

	"starscape/internal/starfield"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLengthAndRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	positions := starfield.Generate(rng, starfield.DefaultCount, starfield.DefaultExtent)

	require.Len(t, positions, 3*starfield.DefaultCount)
	for i, v := range positions {
		if v < -100 || v >= 100 {
			t.Fatalf("coordinate %d = %v outside [-100, 100)", i, v)
		}
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a := starfield.Generate(rand.New(rand.NewSource(1)), starfield.DefaultCount, starfield.DefaultExtent)
	b := starfield.Generate(rand.New(rand.NewSource(2)), starfield.DefaultCount, starfield.DefaultExtent)

	assert.Len(t, a, 15000)
	assert.Len(t, b, 15000)
	assert.NotEqual(t, a, b)
}

func TestGenerateSameSeedRepeats(t *testing.T) {
	a := starfield.Generate(rand.New(rand.NewSource(99)), 100, 10)
	b := starfield.Generate(rand.New(rand.NewSource(99)), 100, 10)
	assert.Equal(t, a, b)
}

func TestGenerateCoversBothSigns(t *testing.T) {
	positions := starfield.Generate(rand.New(rand.NewSource(3)), 1000, 100)
	var neg, pos int
	for _, v := range positions {
		if v < 0 {
			neg++
		} else {
			pos++
		}
	}
	// uniform over a symmetric range: roughly half each
	assert.InDelta(t, 1500, neg, 150)
	assert.InDelta(t, 1500, pos, 150)
}

func TestGenerateEmpty(t *testing.T) {
	assert.Empty(t, starfield.Generate(rand.New(rand.NewSource(1)), 0, 100))
	assert.Empty(t, starfield.Generate(rand.New(rand.NewSource(1)), -3, 100))
}

type fixedRand struct{ v float64 }

func (f fixedRand) Float64() float64 { return f.v }
func (f fixedRand) Intn(n int) int   { return 0 }

func TestGenerateBounds(t *testing.T) {
	low := starfield.Generate(fixedRand{0}, 1, 100)
	assert.Equal(t, []float32{-100, -100, -100}, low)

	high := starfield.Generate(fixedRand{0.9999999999}, 1, 100)
	for _, v := range high {
		assert.Less(t, v, float32(100))
	}
}

func TestNew(t *testing.T) {
	stars := starfield.New(rand.New(rand.NewSource(5)), starfield.Options{
		Count:     10,
		Extent:    100,
		Color:     0xFFFFFF,
		Size:      0.5,
		Opacity:   0.7,
		Threshold: 2,
	})
	assert.Equal(t, "stars", stars.Name())
	assert.Equal(t, 10, stars.Len())
	assert.Equal(t, float32(2), stars.Threshold)
	assert.True(t, stars.Material().Transparent)
}
