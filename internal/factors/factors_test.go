package factors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrmazanek/pozar-drevo/internal/material"
	"github.com/petrmazanek/pozar-drevo/internal/section"
)

func TestKmodTable(t *testing.T) {
	assert.Equal(t, 0.60, Kmod(1, Permanent))
	assert.Equal(t, 0.80, Kmod(1, MediumTerm))
	assert.Equal(t, 1.10, Kmod(2, Instantaneous))
	assert.Equal(t, 0.50, Kmod(3, Permanent))
	assert.Equal(t, 0.65, Kmod(3, MediumTerm))
}

func TestKmodPanicsOutsideTable(t *testing.T) {
	assert.Panics(t, func() { Kmod(4, Permanent) })
	assert.Panics(t, func() { Kmod(1, Duration("forever")) })
}

func TestShortestDuration(t *testing.T) {
	assert.Equal(t, MediumTerm, Shortest([]Duration{Permanent, MediumTerm}))
	assert.Equal(t, Instantaneous, Shortest([]Duration{Permanent, ShortTerm, Instantaneous}))
	assert.Equal(t, Permanent, Shortest([]Duration{Permanent}))
	assert.Equal(t, Permanent, Shortest(nil))
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("medium_term")
	require.NoError(t, err)
	assert.Equal(t, MediumTerm, d)

	_, err = ParseDuration("sometimes")
	assert.Error(t, err)
}

func TestKdef(t *testing.T) {
	assert.Equal(t, 0.60, Kdef(material.Solid, 1))
	assert.Equal(t, 0.80, Kdef(material.Solid, 2))
	assert.Equal(t, 2.00, Kdef(material.Glulam, 3))
	assert.Panics(t, func() { Kdef(material.Solid, 5) })
}

func TestKhSolid(t *testing.T) {
	// at and above the 150 mm reference depth kh stays 1.0
	kh, err := Kh(material.Solid, 150)
	require.NoError(t, err)
	assert.Equal(t, 1.0, kh)

	kh, err = Kh(material.Solid, 200)
	require.NoError(t, err)
	assert.Equal(t, 1.0, kh)

	// just below the breakpoint the factor starts to grow
	kh, err = Kh(material.Solid, 149)
	require.NoError(t, err)
	assert.Greater(t, kh, 1.0)
	assert.InDelta(t, math.Pow(150.0/149.0, 0.2), kh, 1e-12)

	kh, err = Kh(material.Solid, 100)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(1.5, 0.2), kh, 1e-12)

	// very shallow sections hit the 1.3 cap
	kh, err = Kh(material.Solid, 30)
	require.NoError(t, err)
	assert.Equal(t, 1.3, kh)
}

func TestKhGlulam(t *testing.T) {
	kh, err := Kh(material.Glulam, 600)
	require.NoError(t, err)
	assert.Equal(t, 1.0, kh)

	kh, err = Kh(material.Glulam, 300)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(2.0, 0.1), kh, 1e-12)

	kh, err = Kh(material.Glulam, 50)
	require.NoError(t, err)
	assert.Equal(t, 1.1, kh)
}

func TestKhZeroDepth(t *testing.T) {
	_, err := Kh(material.Solid, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, section.ErrInvalidGeometry)
}

func TestKcritRegions(t *testing.T) {
	// stocky section, low slenderness: no reduction
	kcrit, lambda := Kcrit(24, 7400, 100, 200, 4000)
	assert.LessOrEqual(t, lambda, 0.75)
	assert.Equal(t, 1.0, kcrit)

	// mid-range slenderness: linear interpolation
	kcrit, lambda = Kcrit(24, 7400, 60, 300, 4000)
	require.Greater(t, lambda, 0.75)
	require.LessOrEqual(t, lambda, 1.4)
	assert.InDelta(t, 1.56-0.75*lambda, kcrit, 1e-12)

	// very slender: inverse-quadratic branch
	kcrit, lambda = Kcrit(24, 7400, 30, 400, 10000)
	require.Greater(t, lambda, 1.4)
	assert.InDelta(t, 1.0/(lambda*lambda), kcrit, 1e-12)
}

func TestPsiTable(t *testing.T) {
	p := PsiFor(CatA)
	assert.Equal(t, Psi{0.7, 0.5, 0.3}, p)

	p = PsiFor(Snow)
	assert.Equal(t, Psi{0.5, 0.2, 0.0}, p)

	p = PsiFor(CatE)
	assert.Equal(t, Psi{1.0, 0.9, 0.8}, p)

	assert.Panics(t, func() { PsiFor(Category("cat_Z")) })
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("snow")
	require.NoError(t, err)
	assert.Equal(t, Snow, c)

	_, err = ParseCategory("cat_Z")
	assert.Error(t, err)
}
