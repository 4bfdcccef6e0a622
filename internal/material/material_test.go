package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupSolidClass(t *testing.T) {
	c, err := Lookup("C24")
	require.NoError(t, err)

	assert.Equal(t, Solid, c.Family)
	assert.Equal(t, 24.0, c.FmK)
	assert.Equal(t, 4.0, c.FvK)
	assert.Equal(t, 11000.0, c.E0Mean)
	assert.Equal(t, 7400.0, c.E005)
	assert.Equal(t, 350.0, c.RhoK)
	assert.Equal(t, 1.3, c.GammaM())
	assert.Equal(t, 0.67, c.Kcr())
}

func TestLookupGlulamClass(t *testing.T) {
	c, err := Lookup("GL28h")
	require.NoError(t, err)

	assert.Equal(t, Glulam, c.Family)
	assert.Equal(t, 28.0, c.FmK)
	assert.Equal(t, 1.25, c.GammaM())
	assert.Equal(t, 0.70, c.BetaN())
	assert.Equal(t, 0.65, c.Beta0())
}

func TestLookupUnknownClass(t *testing.T) {
	_, err := Lookup("C99")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownClass)

	// no interpolation between grades
	_, err = Lookup("C25")
	assert.ErrorIs(t, err, ErrUnknownClass)
}

func TestListFamilies(t *testing.T) {
	solid := List(Solid)
	assert.Len(t, solid, 10)
	assert.Contains(t, solid, "C14")
	assert.Contains(t, solid, "C40")
	assert.NotContains(t, solid, "GL24h")

	glulam := List(Glulam)
	assert.Len(t, glulam, 7)
	assert.Contains(t, glulam, "GL20h")
	assert.Contains(t, glulam, "GL32h")

	all := List("")
	assert.Len(t, all, 17)
}

func TestCharringRatesPerFamily(t *testing.T) {
	c24, err := Lookup("C24")
	require.NoError(t, err)
	gl24, err := Lookup("GL24h")
	require.NoError(t, err)

	// notional rates differ between solid and glulam, one-dimensional do not
	assert.Equal(t, 0.80, c24.BetaN())
	assert.Equal(t, 0.70, gl24.BetaN())
	assert.Equal(t, c24.Beta0(), gl24.Beta0())
}
