package loads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrmazanek/pozar-drevo/internal/factors"
)

func referenceLoads() []Load {
	return []Load{
		{Name: "dead", ValueKNM: 2.0, Duration: "permanent"},
		{Name: "live", ValueKNM: 3.0, Duration: "medium_term", Category: "cat_A"},
	}
}

func TestComponentsValidation(t *testing.T) {
	comps, err := Components(referenceLoads())
	require.NoError(t, err)
	require.Len(t, comps, 2)
	assert.True(t, comps[0].Permanent)
	assert.False(t, comps[1].Permanent)
	assert.Equal(t, factors.Psi{Psi0: 0.7, Psi1: 0.5, Psi2: 0.3}, comps[1].Psi)

	_, err = Components(nil)
	assert.Error(t, err)

	_, err = Components([]Load{{ValueKNM: -1, Duration: "permanent"}})
	assert.Error(t, err)

	_, err = Components([]Load{{ValueKNM: 1, Duration: "weird"}})
	assert.Error(t, err)

	_, err = Components([]Load{{ValueKNM: 1, Duration: "short_term", Category: "cat_Z"}})
	assert.Error(t, err)
}

func TestComponentsDefaultsCategory(t *testing.T) {
	comps, err := Components([]Load{{ValueKNM: 3, Duration: "medium_term"}})
	require.NoError(t, err)
	assert.Equal(t, factors.PsiFor(factors.CatA), comps[0].Psi)
}

func TestULSSingleVariable(t *testing.T) {
	comps, err := Components(referenceLoads())
	require.NoError(t, err)

	combos := ULS(comps, 1)
	require.Len(t, combos, 2)

	// permanent only: 1.35 * 2.0 with the permanent kmod
	assert.InDelta(t, 2.70, combos[0].QdKNM, 1e-12)
	assert.Equal(t, 0.60, combos[0].Kmod)

	// live load leading: 1.35*2.0 + 1.5*3.0 with the medium-term kmod
	assert.InDelta(t, 7.20, combos[1].QdKNM, 1e-12)
	assert.Equal(t, 0.80, combos[1].Kmod)
	assert.Equal(t, "live", combos[1].Leading)

	gov := Governing(combos)
	assert.Equal(t, "live", gov.Leading)
}

func TestULSTwoVariablesEnumeratesLeading(t *testing.T) {
	cases := []Load{
		{Name: "dead", ValueKNM: 2.0, Duration: "permanent"},
		{Name: "live", ValueKNM: 3.0, Duration: "medium_term", Category: "cat_A"},
		{Name: "snow", ValueKNM: 1.5, Duration: "short_term", Category: "snow"},
	}
	comps, err := Components(cases)
	require.NoError(t, err)

	combos := ULS(comps, 1)
	require.Len(t, combos, 3)

	// live leading: 1.35*2 + 1.5*3 + 1.5*0.5*1.5
	assert.InDelta(t, 2.7+4.5+1.125, combos[1].QdKNM, 1e-12)
	// snow leading: 1.35*2 + 1.5*0.7*3 + 1.5*1.5
	assert.InDelta(t, 2.7+3.15+2.25, combos[2].QdKNM, 1e-12)

	// both mixed combinations carry the shortest duration present
	assert.Equal(t, 0.90, combos[1].Kmod)
	assert.Equal(t, 0.90, combos[2].Kmod)

	gov := Governing(combos)
	assert.Equal(t, "live", gov.Leading)
	assert.InDelta(t, 8.325, gov.QdKNM, 1e-12)
}

func TestGoverningAccountsForKmod(t *testing.T) {
	// a permanent-heavy beam: the permanent-only combination has the lower
	// demand but also the lower kmod, and can govern the ratio
	combos := []Combination{
		{Name: "g only", QdKNM: 10.0, Kmod: 0.60},
		{Name: "q leading", QdKNM: 11.0, Kmod: 0.90},
	}
	gov := Governing(combos)
	assert.Equal(t, "g only", gov.Name)
}

func TestSLSCombinations(t *testing.T) {
	comps, err := Components(referenceLoads())
	require.NoError(t, err)

	assert.InDelta(t, 5.0, Characteristic(comps), 1e-12)
	assert.InDelta(t, 2.0+0.3*3.0, QuasiPermanent(comps), 1e-12)
	assert.InDelta(t, 2.0+0.5*3.0, AccidentalFire(comps), 1e-12)
}

func TestInternalForces(t *testing.T) {
	assert.InDelta(t, 14.4, MomentKNM(7.2, 4.0), 1e-12)
	assert.InDelta(t, 14.4, ShearKN(7.2, 4.0), 1e-12)
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{ServiceClass: 1, SpanM: 4.0, Loads: referenceLoads()})
	require.NoError(t, err)

	assert.InDelta(t, 14.4, res.MEdKNM, 1e-12)
	assert.InDelta(t, 14.4, res.VEdKN, 1e-12)
	assert.InDelta(t, 5.0, res.CharacteristicKNM, 1e-12)
	assert.Equal(t, "live", res.Governing.Leading)
}

func TestCalculateRejectsBadInput(t *testing.T) {
	_, err := Calculate(Input{ServiceClass: 4, SpanM: 4.0, Loads: referenceLoads()})
	assert.Error(t, err)

	_, err = Calculate(Input{ServiceClass: 1, SpanM: 0, Loads: referenceLoads()})
	assert.Error(t, err)

	_, err = Calculate(Input{ServiceClass: 1, SpanM: 4.0})
	assert.Error(t, err)
}

func TestCombinationOrderIrrelevant(t *testing.T) {
	reversed := []Load{referenceLoads()[1], referenceLoads()[0]}
	a, err := Calculate(Input{ServiceClass: 1, SpanM: 4.0, Loads: referenceLoads()})
	require.NoError(t, err)
	b, err := Calculate(Input{ServiceClass: 1, SpanM: 4.0, Loads: reversed})
	require.NoError(t, err)

	assert.Equal(t, a.Governing.QdKNM, b.Governing.QdKNM)
	assert.Equal(t, a.CharacteristicKNM, b.CharacteristicKNM)
}
