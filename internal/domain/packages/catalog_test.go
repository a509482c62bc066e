package packages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	pkg, ok := Get("team")
	require.True(t, ok)
	assert.Equal(t, "Team license", pkg.Name)
	assert.True(t, pkg.IsGroup)

	// lookup is case-insensitive
	upper, ok := Get("TEAM")
	require.True(t, ok)
	assert.Equal(t, pkg, upper)

	padded, ok := Get("  Full ")
	require.True(t, ok)
	assert.Equal(t, "Full edition", padded.Name)

	_, ok = Get("enterprise")
	assert.False(t, ok)
}

func TestFullPrice(t *testing.T) {
	team, _ := Get("team")
	assert.Equal(t, 698.0, team.FullPrice(10))
	assert.Equal(t, 349.0, team.FullPrice(BaseLicenses))

	basic, _ := Get("basic")
	// non-group packages ignore the seat argument
	assert.Equal(t, 39.0, basic.FullPrice(0))
	assert.Equal(t, 39.0, basic.FullPrice(10))

	fullteam, _ := Get("fullteam")
	assert.Equal(t, 2000.0, fullteam.FullPrice(10))
}

func TestFullName(t *testing.T) {
	team, _ := Get("team")
	assert.Equal(t, "Team license—10 seats", team.FullName(10))
	assert.Equal(t, "Team license", team.FullName(0))

	pro, _ := Get("pro")
	assert.Equal(t, "Pro", pro.FullName(10))
}

func TestIndividual(t *testing.T) {
	cases := map[string]string{
		"basic":    "basic",
		"pro":      "pro",
		"team":     "pro",
		"full":     "full",
		"fullteam": "full",
		"training": "full",
	}
	for key, want := range cases {
		pkg, ok := Get(key)
		require.True(t, ok, key)
		assert.Equal(t, want, pkg.Individual(), key)
	}
}

func TestFromFlags(t *testing.T) {
	// flag lookup resolves to the same records as key lookup
	for _, key := range []string{"basic", "pro", "full", "training", "team", "fullteam"} {
		want, _ := Get(key)
		var f Flags
		switch key {
		case "basic":
			f.Basic = true
		case "pro":
			f.Pro = true
		case "full":
			f.Full = true
		case "training":
			f.Training = true
		case "team":
			f.Team = true
		case "fullteam":
			f.Fullteam = true
		}
		got, ok := FromFlags(f)
		require.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	// first set flag wins
	got, ok := FromFlags(Flags{Pro: true, Fullteam: true})
	require.True(t, ok)
	assert.Equal(t, "pro", got.Key)

	_, ok = FromFlags(Flags{})
	assert.False(t, ok)
}

func TestCatalogPrices(t *testing.T) {
	prices := map[string]float64{
		"basic":    39,
		"pro":      89,
		"full":     289,
		"training": 749,
		"team":     349,
		"fullteam": 1000,
	}
	for key, want := range prices {
		pkg, ok := Get(key)
		require.True(t, ok, key)
		assert.Equal(t, want, pkg.Price, key)
	}
}
