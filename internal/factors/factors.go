// Package factors resolves the Eurocode 5 modification factors: kmod
// (EN 1995-1-1 table 3.1), kdef (table 3.2), the depth factor kh
// (cl. 3.2/3.3), the lateral-stability factor kcrit (cl. 6.3.3) and the
// EN 1990 psi combination factors.
//
// Enumerated inputs are expected to be validated at the API boundary; a
// table miss past that point is a programming error and panics.
package factors

import (
	"fmt"
	"math"

	"github.com/petrmazanek/pozar-drevo/internal/material"
	"github.com/petrmazanek/pozar-drevo/internal/section"
)

type ServiceClass int

func (sc ServiceClass) Valid() bool { return sc >= 1 && sc <= 3 }

// Duration is the load-duration class per EN 1995-1-1 cl. 2.3.1.2.
type Duration string

const (
	Permanent     Duration = "permanent"
	LongTerm      Duration = "long_term"
	MediumTerm    Duration = "medium_term"
	ShortTerm     Duration = "short_term"
	Instantaneous Duration = "instantaneous"
)

// durationRank orders classes from longest to shortest duration.
var durationRank = map[Duration]int{
	Permanent:     0,
	LongTerm:      1,
	MediumTerm:    2,
	ShortTerm:     3,
	Instantaneous: 4,
}

func ParseDuration(s string) (Duration, error) {
	d := Duration(s)
	if _, ok := durationRank[d]; !ok {
		return "", fmt.Errorf("unknown load duration class %q", s)
	}
	return d, nil
}

// Shortest returns the shortest-duration class of the set. kmod for a
// combination is taken for the shortest duration present (cl. 3.1.3(2)).
func Shortest(ds []Duration) Duration {
	out := Permanent
	for _, d := range ds {
		if durationRank[d] > durationRank[out] {
			out = d
		}
	}
	return out
}

// EN 1995-1-1 table 3.1 for solid timber and glulam (identical columns).
var kmodTable = map[ServiceClass]map[Duration]float64{
	1: {Permanent: 0.60, LongTerm: 0.70, MediumTerm: 0.80, ShortTerm: 0.90, Instantaneous: 1.10},
	2: {Permanent: 0.60, LongTerm: 0.70, MediumTerm: 0.80, ShortTerm: 0.90, Instantaneous: 1.10},
	3: {Permanent: 0.50, LongTerm: 0.55, MediumTerm: 0.65, ShortTerm: 0.70, Instantaneous: 0.90},
}

// Kmod returns the strength modification factor. Panics on an out-of-table
// pair; both inputs must be validated before the engine runs.
func Kmod(sc ServiceClass, d Duration) float64 {
	row, ok := kmodTable[sc]
	if !ok {
		panic(fmt.Sprintf("factors: service class %d outside table 3.1", sc))
	}
	k, ok := row[d]
	if !ok {
		panic(fmt.Sprintf("factors: duration %q outside table 3.1", d))
	}
	return k
}

// EN 1995-1-1 table 3.2; solid and glulam share the same row.
var kdefTable = map[material.Family]map[ServiceClass]float64{
	material.Solid:  {1: 0.60, 2: 0.80, 3: 2.00},
	material.Glulam: {1: 0.60, 2: 0.80, 3: 2.00},
}

// Kdef returns the creep deformation factor.
func Kdef(f material.Family, sc ServiceClass) float64 {
	row, ok := kdefTable[f]
	if !ok {
		panic(fmt.Sprintf("factors: family %q outside table 3.2", f))
	}
	k, ok := row[sc]
	if !ok {
		panic(fmt.Sprintf("factors: service class %d outside table 3.2", sc))
	}
	return k
}

// Kh is the depth factor for bending. Below the reference depth (150 mm
// solid, 600 mm glulam) the characteristic bending strength may be
// increased, capped at 1.3 (solid) or 1.1 (glulam).
func Kh(f material.Family, hMM float64) (float64, error) {
	if hMM <= 0 {
		return 0, fmt.Errorf("%w: depth %.1f mm", section.ErrInvalidGeometry, hMM)
	}
	switch f {
	case material.Solid:
		if hMM >= 150 {
			return 1.0, nil
		}
		return math.Min(math.Pow(150/hMM, 0.2), 1.3), nil
	case material.Glulam:
		if hMM >= 600 {
			return 1.0, nil
		}
		return math.Min(math.Pow(600/hMM, 0.1), 1.1), nil
	default:
		panic(fmt.Sprintf("factors: unknown family %q", f))
	}
}

// Kcrit returns the lateral-torsional buckling reduction factor and the
// relative slenderness for bending, using the simplified critical stress
// for a rectangle: sigma_m,crit = 0.78 b^2 E_0,05 / (h lef).
func Kcrit(fmK, e005, bMM, hMM, lefMM float64) (kcrit, lambdaRelM float64) {
	sigmaCrit := 0.78 * bMM * bMM * e005 / (hMM * lefMM)
	lambdaRelM = math.Sqrt(fmK / sigmaCrit)
	switch {
	case lambdaRelM <= 0.75:
		kcrit = 1.0
	case lambdaRelM <= 1.4:
		kcrit = 1.56 - 0.75*lambdaRelM
	default:
		kcrit = 1.0 / (lambdaRelM * lambdaRelM)
	}
	return kcrit, lambdaRelM
}

// Category is the EN 1990 imposed-load category used to pick psi factors.
type Category string

const (
	CatA Category = "cat_A" // residential
	CatB Category = "cat_B" // offices
	CatC Category = "cat_C" // congregation areas
	CatD Category = "cat_D" // shopping
	CatE Category = "cat_E" // storage
	CatH Category = "cat_H" // roofs, not accessible
	Snow Category = "snow"  // altitude below 1000 m
	Wind Category = "wind"
)

type Psi struct {
	Psi0 float64 `json:"psi_0"`
	Psi1 float64 `json:"psi_1"`
	Psi2 float64 `json:"psi_2"`
}

// EN 1990 table A1.1.
var psiTable = map[Category]Psi{
	CatA: {0.7, 0.5, 0.3},
	CatB: {0.7, 0.5, 0.3},
	CatC: {0.7, 0.7, 0.6},
	CatD: {0.7, 0.7, 0.6},
	CatE: {1.0, 0.9, 0.8},
	CatH: {0.0, 0.0, 0.0},
	Snow: {0.5, 0.2, 0.0},
	Wind: {0.6, 0.2, 0.0},
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := psiTable[c]; !ok {
		return "", fmt.Errorf("unknown load category %q", s)
	}
	return c, nil
}

// PsiFor returns the combination factors for a category. Panics on an
// unknown category; validate with ParseCategory first.
func PsiFor(c Category) Psi {
	p, ok := psiTable[c]
	if !ok {
		panic(fmt.Sprintf("factors: category %q outside table A1.1", c))
	}
	return p
}
