// Package loads builds EN 1990 design combinations for a simply supported
// beam under uniformly distributed line loads.
package loads

import (
	"fmt"

	"github.com/petrmazanek/pozar-drevo/internal/factors"
)

// Partial safety factors for the STR ultimate limit state (EN 1990 eq. 6.10).
const (
	GammaG = 1.35
	GammaQ = 1.50
)

// Load is one characteristic load case [kN/m]. Permanent loads use duration
// "permanent"; variable loads carry an EN 1990 category for psi factors
// (cat_A when empty). Collection order matters for display only.
type Load struct {
	Name     string  `json:"name"`
	ValueKNM float64 `json:"value_kn_m"`
	Duration string  `json:"duration"`
	Category string  `json:"category,omitempty"`
}

// Component is a parsed, validated load case.
type Component struct {
	Name      string
	QKNM      float64
	Permanent bool
	Duration  factors.Duration
	Psi       factors.Psi
}

// Components parses and validates the load collection.
func Components(cases []Load) ([]Component, error) {
	if len(cases) == 0 {
		return nil, fmt.Errorf("at least one load case required")
	}
	out := make([]Component, 0, len(cases))
	for i, c := range cases {
		if c.ValueKNM < 0 {
			return nil, fmt.Errorf("load %q: negative characteristic value", nameOf(c, i))
		}
		d, err := factors.ParseDuration(c.Duration)
		if err != nil {
			return nil, fmt.Errorf("load %q: %w", nameOf(c, i), err)
		}
		comp := Component{Name: nameOf(c, i), QKNM: c.ValueKNM, Duration: d, Permanent: d == factors.Permanent}
		if !comp.Permanent {
			cat := c.Category
			if cat == "" {
				cat = string(factors.CatA)
			}
			pc, err := factors.ParseCategory(cat)
			if err != nil {
				return nil, fmt.Errorf("load %q: %w", nameOf(c, i), err)
			}
			comp.Psi = factors.PsiFor(pc)
		}
		out = append(out, comp)
	}
	return out, nil
}

func nameOf(c Load, i int) string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("load %d", i+1)
}

// Combination is one ULS design combination with the kmod that governs it
// (shortest load duration present in the combination).
type Combination struct {
	Name    string  `json:"name"`
	Leading string  `json:"leading,omitempty"`
	QdKNM   float64 `json:"q_d_kn_m"`
	Kmod    float64 `json:"kmod"`
}

// ULS enumerates eq. 6.10 combinations: the permanent-only combination plus
// one combination per candidate leading variable load, all other variable
// loads entering at their psi0-reduced value.
func ULS(comps []Component, sc factors.ServiceClass) []Combination {
	var perm float64
	var variables []Component
	for _, c := range comps {
		if c.Permanent {
			perm += c.QKNM
		} else {
			variables = append(variables, c)
		}
	}

	combos := []Combination{{
		Name:  "6.10 permanent only",
		QdKNM: GammaG * perm,
		Kmod:  factors.Kmod(sc, factors.Permanent),
	}}

	for i, lead := range variables {
		qd := GammaG * perm
		durations := []factors.Duration{factors.Permanent}
		for j, v := range variables {
			if j == i {
				qd += GammaQ * v.QKNM
			} else {
				qd += GammaQ * v.Psi.Psi0 * v.QKNM
			}
			durations = append(durations, v.Duration)
		}
		combos = append(combos, Combination{
			Name:    fmt.Sprintf("6.10 leading %s", lead.Name),
			Leading: lead.Name,
			QdKNM:   qd,
			Kmod:    factors.Kmod(sc, factors.Shortest(durations)),
		})
	}
	return combos
}

// Governing picks the combination with the worst demand-to-capacity ratio.
// Capacity scales with kmod, so the governing combination maximizes qd/kmod,
// not qd alone. Ties keep the first combination found at the maximum.
func Governing(combos []Combination) Combination {
	gov := combos[0]
	best := gov.QdKNM / gov.Kmod
	for _, c := range combos[1:] {
		if r := c.QdKNM / c.Kmod; r > best {
			best = r
			gov = c
		}
	}
	return gov
}

// Characteristic returns the governing characteristic SLS combination
// (G + Q_lead + sum psi0*Q_i), maximized over the leading choice.
func Characteristic(comps []Component) float64 {
	var perm float64
	var variables []Component
	for _, c := range comps {
		if c.Permanent {
			perm += c.QKNM
		} else {
			variables = append(variables, c)
		}
	}
	if len(variables) == 0 {
		return perm
	}
	best := 0.0
	for i := range variables {
		q := perm
		for j, v := range variables {
			if j == i {
				q += v.QKNM
			} else {
				q += v.Psi.Psi0 * v.QKNM
			}
		}
		if q > best {
			best = q
		}
	}
	return best
}

// QuasiPermanent returns G + sum psi2*Q_i.
func QuasiPermanent(comps []Component) float64 {
	var q float64
	for _, c := range comps {
		if c.Permanent {
			q += c.QKNM
		} else {
			q += c.Psi.Psi2 * c.QKNM
		}
	}
	return q
}

// AccidentalFire returns the governing accidental combination for the fire
// situation (EN 1990 eq. 6.11b): G + psi1*Q_lead + sum psi2*Q_i.
func AccidentalFire(comps []Component) float64 {
	var perm float64
	var variables []Component
	for _, c := range comps {
		if c.Permanent {
			perm += c.QKNM
		} else {
			variables = append(variables, c)
		}
	}
	if len(variables) == 0 {
		return perm
	}
	best := 0.0
	for i := range variables {
		q := perm
		for j, v := range variables {
			if j == i {
				q += v.Psi.Psi1 * v.QKNM
			} else {
				q += v.Psi.Psi2 * v.QKNM
			}
		}
		if q > best {
			best = q
		}
	}
	return best
}

// MomentKNM is the midspan moment of a simply supported beam under UDL.
func MomentKNM(qKNM, spanM float64) float64 {
	return qKNM * spanM * spanM / 8
}

// ShearKN is the support shear of a simply supported beam under UDL.
func ShearKN(qKNM, spanM float64) float64 {
	return qKNM * spanM / 2
}

// Input and Result expose the builder as a standalone tool.
type Input struct {
	ServiceClass int     `json:"service_class"`
	SpanM        float64 `json:"span_m"`
	Loads        []Load  `json:"loads"`
}

type Result struct {
	Combinations      []Combination `json:"combinations"`
	Governing         Combination   `json:"governing"`
	MEdKNM            float64       `json:"m_ed_knm"`
	VEdKN             float64       `json:"v_ed_kn"`
	CharacteristicKNM float64       `json:"characteristic_kn_m"`
	QuasiPermanentKNM float64       `json:"quasi_permanent_kn_m"`
	FireKNM           float64       `json:"fire_kn_m"`
}

func Calculate(in Input) (Result, error) {
	sc := factors.ServiceClass(in.ServiceClass)
	if !sc.Valid() {
		return Result{}, fmt.Errorf("service class must be 1, 2 or 3")
	}
	if in.SpanM <= 0 {
		return Result{}, fmt.Errorf("span must be positive")
	}
	comps, err := Components(in.Loads)
	if err != nil {
		return Result{}, err
	}
	combos := ULS(comps, sc)
	gov := Governing(combos)
	return Result{
		Combinations:      combos,
		Governing:         gov,
		MEdKNM:            MomentKNM(gov.QdKNM, in.SpanM),
		VEdKN:             ShearKN(gov.QdKNM, in.SpanM),
		CharacteristicKNM: Characteristic(comps),
		QuasiPermanentKNM: QuasiPermanent(comps),
		FireKNM:           AccidentalFire(comps),
	}, nil
}
