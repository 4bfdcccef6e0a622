// Package sls runs the serviceability checks: instantaneous deflection
// under the characteristic combination and final deflection including creep
// (EN 1995-1-1 cl. 7.2 with kdef per cl. 2.2.3).
package sls

import (
	"github.com/petrmazanek/pozar-drevo/internal/calc/loads"
	"github.com/petrmazanek/pozar-drevo/internal/calc/uls"
	"github.com/petrmazanek/pozar-drevo/internal/factors"
)

// Default span-fraction limits. Both are inputs; national annexes and
// project specs override them.
const (
	DefaultInstLimitRatio = 300
	DefaultFinLimitRatio  = 200
)

type Input struct {
	MaterialClass  string       `json:"material_class"`
	SpanM          float64      `json:"span_m"`
	WidthMM        float64      `json:"width_mm"`
	HeightMM       float64      `json:"height_mm"`
	ServiceClass   int          `json:"service_class"`
	Loads          []loads.Load `json:"loads"`
	InstLimitRatio float64      `json:"inst_limit_ratio,omitempty"`
	FinLimitRatio  float64      `json:"fin_limit_ratio,omitempty"`
}

type Result struct {
	Instantaneous uls.CheckResult `json:"instantaneous"`
	Final         uls.CheckResult `json:"final"`
	WInstMM       float64         `json:"w_inst_mm"`
	WFinMM        float64         `json:"w_fin_mm"`
	Kdef          float64         `json:"kdef"`
	AllPassed     bool            `json:"all_passed"`
}

// deflectionMM is the midspan deflection of a simply supported beam under
// UDL: 5 q L^4 / (384 E I). 1 kN/m equals 1 N/mm, so q passes through.
func deflectionMM(qKNM, spanM, eMPa, iMM4 float64) float64 {
	lMM := spanM * 1000
	return 5 * qKNM * lMM * lMM * lMM * lMM / (384 * eMPa * iMM4)
}

func Calculate(in Input) (Result, error) {
	mat, sec, sc, comps, err := uls.Validate(in.MaterialClass, in.SpanM, in.WidthMM, in.HeightMM, in.ServiceClass, in.Loads)
	if err != nil {
		return Result{}, err
	}
	if in.InstLimitRatio <= 0 {
		in.InstLimitRatio = DefaultInstLimitRatio
	}
	if in.FinLimitRatio <= 0 {
		in.FinLimitRatio = DefaultFinLimitRatio
	}

	kdef := factors.Kdef(mat.Family, sc)
	wInst := deflectionMM(loads.Characteristic(comps), in.SpanM, mat.E0Mean, sec.Iy())
	wFin := finalDeflection(comps, in.SpanM, mat.E0Mean, sec.Iy(), kdef)

	lMM := in.SpanM * 1000
	instLimit := lMM / in.InstLimitRatio
	finLimit := lMM / in.FinLimitRatio

	instCheck := check("instantaneous deflection", wInst, instLimit)
	finCheck := check("final deflection", wFin, finLimit)

	return Result{
		Instantaneous: instCheck,
		Final:         finCheck,
		WInstMM:       wInst,
		WFinMM:        wFin,
		Kdef:          kdef,
		AllPassed:     instCheck.Passed && finCheck.Passed,
	}, nil
}

func check(name string, w, limit float64) uls.CheckResult {
	u := w / limit
	return uls.CheckResult{
		Name:        name,
		Demand:      w,
		Capacity:    limit,
		Unit:        "mm",
		Utilization: u,
		Passed:      u <= 1.0,
		Clause:      "EN 1995-1-1 7.2",
	}
}

// finalDeflection applies the creep growth per load component
// (cl. 2.2.3(5)): permanent parts grow by (1 + kdef), the leading variable
// load by (1 + psi2*kdef), the remaining variable loads enter with
// (psi0 + psi2*kdef). The leading choice maximizing the total governs.
func finalDeflection(comps []loads.Component, spanM, eMPa, iMM4, kdef float64) float64 {
	var wPerm, best float64
	var variables []loads.Component
	for _, c := range comps {
		w := deflectionMM(c.QKNM, spanM, eMPa, iMM4)
		if c.Permanent {
			wPerm += w * (1 + kdef)
		} else {
			variables = append(variables, c)
		}
	}
	if len(variables) == 0 {
		return wPerm
	}
	for i := range variables {
		wFin := wPerm
		for j, v := range variables {
			w := deflectionMM(v.QKNM, spanM, eMPa, iMM4)
			if j == i {
				wFin += w * (1 + v.Psi.Psi2*kdef)
			} else {
				wFin += w * (v.Psi.Psi0 + v.Psi.Psi2*kdef)
			}
		}
		if wFin > best {
			best = wFin
		}
	}
	return best
}
