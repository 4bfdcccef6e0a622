// Package uls runs the ultimate limit state checks for a simply supported
// timber beam: bending (EN 1995-1-1 cl. 6.1.6), shear (cl. 6.1.7) and
// lateral-torsional buckling (cl. 6.3.3).
package uls

import (
	"fmt"

	"github.com/petrmazanek/pozar-drevo/internal/calc/loads"
	"github.com/petrmazanek/pozar-drevo/internal/factors"
	"github.com/petrmazanek/pozar-drevo/internal/material"
	"github.com/petrmazanek/pozar-drevo/internal/section"
)

// CheckResult is the outcome of a single code check. A utilization above
// 1.0 is a normal, fully reported verdict, not an error.
type CheckResult struct {
	Name        string  `json:"name"`
	Demand      float64 `json:"demand"`
	Capacity    float64 `json:"capacity"`
	Unit        string  `json:"unit"`
	Utilization float64 `json:"utilization"`
	Passed      bool    `json:"passed"`
	Clause      string  `json:"clause"`
	Combination string  `json:"combination,omitempty"`
}

func newCheck(name, clause, unit, combo string, demand, capacity float64) CheckResult {
	u := demand / capacity
	return CheckResult{
		Name:        name,
		Demand:      demand,
		Capacity:    capacity,
		Unit:        unit,
		Utilization: u,
		Passed:      u <= 1.0,
		Clause:      clause,
		Combination: combo,
	}
}

// Params carries the design values for one pass of the strength checks.
// The fire module supplies fire design strengths and Kcr = 1 here (the
// charred layer has already fallen away, so no crack reduction applies).
type Params struct {
	FmdMPa    float64 // design bending strength, size factor included
	FvdMPa    float64 // design shear strength
	FmkMPa    float64 // characteristic bending strength, for kcrit
	E005MPa   float64 // 5th-percentile modulus, for kcrit
	Kcr       float64 // effective shear width factor
	LefFactor float64 // effective length for buckling, lef = factor * span
}

// SectionChecks holds the three strength checks for one geometry.
type SectionChecks struct {
	Bending    CheckResult
	Shear      CheckResult
	Buckling   CheckResult
	Kcrit      float64
	LambdaRelM float64
}

// CheckSection evaluates bending, shear and lateral-torsional buckling for
// one section under the given design moment [kNm] and shear force [kN].
func CheckSection(sec section.Rectangle, spanM float64, p Params, mEdKNM, vEdKN float64, combo string) SectionChecks {
	sigmaM := mEdKNM * 1e6 / sec.Wy()
	tau := 1.5 * vEdKN * 1e3 / (p.Kcr * sec.A())

	lefMM := p.LefFactor * spanM * 1000
	kcrit, lambda := factors.Kcrit(p.FmkMPa, p.E005MPa, sec.B, sec.H, lefMM)

	return SectionChecks{
		Bending:    newCheck("bending", "EN 1995-1-1 6.1.6", "MPa", combo, sigmaM, p.FmdMPa),
		Shear:      newCheck("shear", "EN 1995-1-1 6.1.7", "MPa", combo, tau, p.FvdMPa),
		Buckling:   newCheck("lateral-torsional buckling", "EN 1995-1-1 6.3.3", "MPa", combo, sigmaM, kcrit*p.FmdMPa),
		Kcrit:      kcrit,
		LambdaRelM: lambda,
	}
}

type Input struct {
	MaterialClass string       `json:"material_class"`
	SpanM         float64      `json:"span_m"`
	WidthMM       float64      `json:"width_mm"`
	HeightMM      float64      `json:"height_mm"`
	ServiceClass  int          `json:"service_class"`
	Loads         []loads.Load `json:"loads"`
	LefFactor     float64      `json:"lef_factor,omitempty"`
}

type Result struct {
	Bending    CheckResult `json:"bending"`
	Shear      CheckResult `json:"shear"`
	Buckling   CheckResult `json:"buckling"`
	MEdKNM     float64     `json:"m_ed_knm"`
	VEdKN      float64     `json:"v_ed_kn"`
	Kmod       float64     `json:"kmod"`
	Kh         float64     `json:"kh"`
	GammaM     float64     `json:"gamma_m"`
	Kcrit      float64     `json:"kcrit"`
	LambdaRelM float64     `json:"lambda_rel_m"`
	AllPassed  bool        `json:"all_passed"`
	Notes      string      `json:"notes,omitempty"`
}

// Calculate validates the inputs, builds the design combinations and runs
// the three ULS checks against the governing one. Every check utilization
// scales with qd/kmod, so a single governing combination covers all three.
func Calculate(in Input) (Result, error) {
	mat, sec, sc, comps, err := Validate(in.MaterialClass, in.SpanM, in.WidthMM, in.HeightMM, in.ServiceClass, in.Loads)
	if err != nil {
		return Result{}, err
	}
	if in.LefFactor <= 0 {
		in.LefFactor = 1.0
	}

	gov := loads.Governing(loads.ULS(comps, sc))
	kh, err := factors.Kh(mat.Family, sec.H)
	if err != nil {
		return Result{}, err
	}

	p := Params{
		FmdMPa:    kh * gov.Kmod * mat.FmK / mat.GammaM(),
		FvdMPa:    gov.Kmod * mat.FvK / mat.GammaM(),
		FmkMPa:    mat.FmK,
		E005MPa:   mat.E005,
		Kcr:       mat.Kcr(),
		LefFactor: in.LefFactor,
	}
	mEd := loads.MomentKNM(gov.QdKNM, in.SpanM)
	vEd := loads.ShearKN(gov.QdKNM, in.SpanM)
	checks := CheckSection(sec, in.SpanM, p, mEd, vEd, gov.Name)

	return Result{
		Bending:    checks.Bending,
		Shear:      checks.Shear,
		Buckling:   checks.Buckling,
		MEdKNM:     mEd,
		VEdKN:      vEd,
		Kmod:       gov.Kmod,
		Kh:         kh,
		GammaM:     mat.GammaM(),
		Kcrit:      checks.Kcrit,
		LambdaRelM: checks.LambdaRelM,
		AllPassed:  checks.Bending.Passed && checks.Shear.Passed && checks.Buckling.Passed,
		Notes:      section.SpanDepthNote(in.SpanM, sec.H),
	}, nil
}

// Validate is shared with the SLS and fire checkers: the same geometry,
// material and load-collection rules apply to every limit state.
func Validate(matName string, spanM, bMM, hMM float64, serviceClass int, cases []loads.Load) (material.Class, section.Rectangle, factors.ServiceClass, []loads.Component, error) {
	mat, err := material.Lookup(matName)
	if err != nil {
		return material.Class{}, section.Rectangle{}, 0, nil, err
	}
	sec, err := section.New(bMM, hMM)
	if err != nil {
		return material.Class{}, section.Rectangle{}, 0, nil, err
	}
	if err := section.ValidateSpan(spanM); err != nil {
		return material.Class{}, section.Rectangle{}, 0, nil, err
	}
	sc := factors.ServiceClass(serviceClass)
	if !sc.Valid() {
		return material.Class{}, section.Rectangle{}, 0, nil, fmt.Errorf("service class must be 1, 2 or 3")
	}
	comps, err := loads.Components(cases)
	if err != nil {
		return material.Class{}, section.Rectangle{}, 0, nil, err
	}
	return mat, sec, sc, comps, nil
}
