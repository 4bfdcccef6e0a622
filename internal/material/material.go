// Package material holds the timber strength class tables from EN 338
// (solid timber) and EN 14080 (glued laminated timber). The tables are
// fixed; classes are looked up by name with no interpolation between grades.
package material

import (
	"errors"
	"fmt"
	"sort"
)

type Family string

const (
	Solid  Family = "solid"
	Glulam Family = "glulam"
)

var ErrUnknownClass = errors.New("unknown timber class")

// Class is a timber strength class. Strengths and moduli in MPa,
// densities in kg/m3.
type Class struct {
	Name    string  `json:"name"`
	Family  Family  `json:"family"`
	FmK     float64 `json:"fm_k"`     // characteristic bending strength
	Ft0K    float64 `json:"ft_0_k"`   // tension parallel to grain
	FvK     float64 `json:"fv_k"`     // shear strength
	E0Mean  float64 `json:"e_0_mean"` // mean modulus of elasticity
	E005    float64 `json:"e_0_05"`   // 5th-percentile modulus
	RhoK    float64 `json:"rho_k"`    // characteristic density
	RhoMean float64 `json:"rho_mean"` // mean density
}

// familyProps are the per-family design constants: the partial material
// factor (EN 1995-1-1 table 2.3), the crack factor for shear (cl. 6.1.7)
// and the charring rates (EN 1995-1-2 table 3.1, mm/min).
type familyProps struct {
	gammaM float64
	kcr    float64
	beta0  float64 // one-dimensional charring
	betaN  float64 // notional charring, corners and fissures included
}

var familyTable = map[Family]familyProps{
	Solid:  {gammaM: 1.30, kcr: 0.67, beta0: 0.65, betaN: 0.80},
	Glulam: {gammaM: 1.25, kcr: 0.67, beta0: 0.65, betaN: 0.70},
}

// GammaM is the partial material factor per EN 1995-1-1 table 2.3.
func (c Class) GammaM() float64 { return familyTable[c.Family].gammaM }

// Kcr reduces the effective shear width for cracking per EN 1995-1-1 cl. 6.1.7.
func (c Class) Kcr() float64 { return familyTable[c.Family].kcr }

// Beta0 is the one-dimensional charring rate [mm/min].
func (c Class) Beta0() float64 { return familyTable[c.Family].beta0 }

// BetaN is the notional charring rate [mm/min].
func (c Class) BetaN() float64 { return familyTable[c.Family].betaN }

// EN 338:2016 softwood classes.
var solidClasses = []Class{
	{Name: "C14", Family: Solid, FmK: 14, Ft0K: 8, FvK: 3.0, E0Mean: 7000, E005: 4700, RhoK: 290, RhoMean: 350},
	{Name: "C16", Family: Solid, FmK: 16, Ft0K: 10, FvK: 3.2, E0Mean: 8000, E005: 5400, RhoK: 310, RhoMean: 370},
	{Name: "C18", Family: Solid, FmK: 18, Ft0K: 11, FvK: 3.4, E0Mean: 9000, E005: 6000, RhoK: 320, RhoMean: 380},
	{Name: "C20", Family: Solid, FmK: 20, Ft0K: 12, FvK: 3.6, E0Mean: 9500, E005: 6400, RhoK: 330, RhoMean: 390},
	{Name: "C22", Family: Solid, FmK: 22, Ft0K: 13, FvK: 3.8, E0Mean: 10000, E005: 6700, RhoK: 340, RhoMean: 410},
	{Name: "C24", Family: Solid, FmK: 24, Ft0K: 14, FvK: 4.0, E0Mean: 11000, E005: 7400, RhoK: 350, RhoMean: 420},
	{Name: "C27", Family: Solid, FmK: 27, Ft0K: 16, FvK: 4.0, E0Mean: 11500, E005: 7700, RhoK: 370, RhoMean: 450},
	{Name: "C30", Family: Solid, FmK: 30, Ft0K: 18, FvK: 4.0, E0Mean: 12000, E005: 8000, RhoK: 380, RhoMean: 460},
	{Name: "C35", Family: Solid, FmK: 35, Ft0K: 21, FvK: 4.0, E0Mean: 13000, E005: 8700, RhoK: 400, RhoMean: 480},
	{Name: "C40", Family: Solid, FmK: 40, Ft0K: 24, FvK: 4.0, E0Mean: 14000, E005: 9400, RhoK: 420, RhoMean: 500},
}

// EN 14080:2013 homogeneous glulam classes.
var glulamClasses = []Class{
	{Name: "GL20h", Family: Glulam, FmK: 20, Ft0K: 16.0, FvK: 3.5, E0Mean: 8400, E005: 7000, RhoK: 340, RhoMean: 370},
	{Name: "GL22h", Family: Glulam, FmK: 22, Ft0K: 17.6, FvK: 3.5, E0Mean: 10500, E005: 8800, RhoK: 370, RhoMean: 410},
	{Name: "GL24h", Family: Glulam, FmK: 24, Ft0K: 19.2, FvK: 3.5, E0Mean: 11500, E005: 9600, RhoK: 385, RhoMean: 420},
	{Name: "GL26h", Family: Glulam, FmK: 26, Ft0K: 20.8, FvK: 3.5, E0Mean: 12100, E005: 10100, RhoK: 405, RhoMean: 445},
	{Name: "GL28h", Family: Glulam, FmK: 28, Ft0K: 22.3, FvK: 3.5, E0Mean: 12600, E005: 10500, RhoK: 425, RhoMean: 460},
	{Name: "GL30h", Family: Glulam, FmK: 30, Ft0K: 24.0, FvK: 3.5, E0Mean: 13600, E005: 11300, RhoK: 430, RhoMean: 480},
	{Name: "GL32h", Family: Glulam, FmK: 32, Ft0K: 25.6, FvK: 3.5, E0Mean: 14200, E005: 11800, RhoK: 440, RhoMean: 490},
}

var classIndex = buildIndex()

func buildIndex() map[string]Class {
	idx := make(map[string]Class, len(solidClasses)+len(glulamClasses))
	for _, c := range solidClasses {
		idx[c.Name] = c
	}
	for _, c := range glulamClasses {
		idx[c.Name] = c
	}
	return idx
}

// Lookup returns the strength class with the given name.
func Lookup(name string) (Class, error) {
	c, ok := classIndex[name]
	if !ok {
		return Class{}, fmt.Errorf("%w: %q", ErrUnknownClass, name)
	}
	return c, nil
}

// List returns the class names of one family, or of both when family is
// empty, in ascending strength order.
func List(family Family) []string {
	var names []string
	for _, c := range solidClasses {
		if family == "" || family == Solid {
			names = append(names, c.Name)
		}
	}
	for _, c := range glulamClasses {
		if family == "" || family == Glulam {
			names = append(names, c.Name)
		}
	}
	sort.Strings(names)
	return names
}
