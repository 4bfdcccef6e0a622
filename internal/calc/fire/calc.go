// Package fire verifies a beam for standard fire exposure with the reduced
// cross-section method of EN 1995-1-2 cl. 4.2.2: char the exposed faces at
// the notional rate, strip the zero-strength layer, and re-run the strength
// checks on what is left with the fire design values.
package fire

import (
	"errors"
	"fmt"

	"github.com/petrmazanek/pozar-drevo/internal/calc/loads"
	"github.com/petrmazanek/pozar-drevo/internal/calc/uls"
	"github.com/petrmazanek/pozar-drevo/internal/material"
	"github.com/petrmazanek/pozar-drevo/internal/section"
)

const (
	// D0MM is the zero-strength layer below the char line (cl. 4.2.2(2)).
	D0MM = 7.0
	// KFi converts characteristic strength to the 20% quantile (table 2.1).
	KFi = 1.25
	// Fire-situation factors per cl. 2.3 and 4.2.2.
	GammaMFi = 1.0
	KmodFi   = 1.0
)

// ErrSectionConsumed marks a fire rating whose charring eats the whole
// cross-section. It is a distinct terminal fire verdict, not an ordinary
// utilization failure.
var ErrSectionConsumed = errors.New("cross-section fully consumed by charring")

type RateClass string

const (
	Notional       RateClass = "notional"        // beta_n, corners and fissures included
	OneDimensional RateClass = "one_dimensional" // beta_0, protected arrises
)

// Scenario is the requested fire exposure. Ratings run R15 to R120 in
// 15-minute steps. Three exposed faces leave the top edge protected
// (beam recessed into a floor); four faces expose the free-standing beam.
type Scenario struct {
	RatingMin    int    `json:"rating_min"`
	ExposedFaces int    `json:"exposed_faces"`
	RateClass    string `json:"rate_class,omitempty"`
}

func (s Scenario) validate() (RateClass, error) {
	if s.RatingMin < 15 || s.RatingMin > 120 || s.RatingMin%15 != 0 {
		return "", fmt.Errorf("fire rating must be R15..R120 in 15-minute steps, got R%d", s.RatingMin)
	}
	if s.ExposedFaces != 3 && s.ExposedFaces != 4 {
		return "", fmt.Errorf("exposed faces must be 3 or 4, got %d", s.ExposedFaces)
	}
	switch rc := RateClass(s.RateClass); rc {
	case "", Notional:
		return Notional, nil
	case OneDimensional:
		return OneDimensional, nil
	default:
		return "", fmt.Errorf("unknown charring rate class %q", s.RateClass)
	}
}

// Reduced is the residual cross-section after charring.
type Reduced struct {
	BMM       float64 `json:"b_mm"`
	HMM       float64 `json:"h_mm"`
	BetaMMMin float64 `json:"beta_mm_min"`
	DCharMM   float64 `json:"d_char_mm"`
	DEfMM     float64 `json:"d_ef_mm"`
}

// Reduce computes the residual section for the scenario. Both sides char in
// width; the height loses one or two layers depending on exposure.
func Reduce(s Scenario, sec section.Rectangle, mat material.Class) (Reduced, error) {
	rc, err := s.validate()
	if err != nil {
		return Reduced{}, err
	}
	beta := mat.BetaN()
	if rc == OneDimensional {
		beta = mat.Beta0()
	}
	dChar := beta * float64(s.RatingMin)
	dEf := dChar + D0MM

	b := sec.B - 2*dEf
	h := sec.H - dEf
	if s.ExposedFaces == 4 {
		h = sec.H - 2*dEf
	}
	r := Reduced{BMM: b, HMM: h, BetaMMMin: beta, DCharMM: dChar, DEfMM: dEf}
	if b <= 0 || h <= 0 {
		return r, fmt.Errorf("%w: R%d leaves %.1fx%.1f mm of %.0fx%.0f mm",
			ErrSectionConsumed, s.RatingMin, b, h, sec.B, sec.H)
	}
	return r, nil
}

type Input struct {
	MaterialClass string       `json:"material_class"`
	SpanM         float64      `json:"span_m"`
	WidthMM       float64      `json:"width_mm"`
	HeightMM      float64      `json:"height_mm"`
	ServiceClass  int          `json:"service_class"`
	Loads         []loads.Load `json:"loads"`
	LefFactor     float64      `json:"lef_factor,omitempty"`
	Scenario      Scenario     `json:"scenario"`
}

type Result struct {
	Scenario  Scenario        `json:"scenario"`
	Reduced   Reduced         `json:"reduced"`
	Consumed  bool            `json:"consumed"`
	QdFiKNM   float64         `json:"q_d_fi_kn_m"`
	MEdFiKNM  float64         `json:"m_ed_fi_knm"`
	VEdFiKN   float64         `json:"v_ed_fi_kn"`
	EtaFi     float64         `json:"eta_fi"`
	FmdFiMPa  float64         `json:"fm_d_fi_mpa"`
	FvdFiMPa  float64         `json:"fv_d_fi_mpa"`
	Bending   uls.CheckResult `json:"bending"`
	Shear     uls.CheckResult `json:"shear"`
	Buckling  uls.CheckResult `json:"buckling"`
	AllPassed bool            `json:"all_passed"`
}

// Calculate runs the two fire stages. A consumed section is reported as a
// failed verdict with Consumed set; input errors abort as usual.
func Calculate(in Input) (Result, error) {
	mat, sec, sc, comps, err := uls.Validate(in.MaterialClass, in.SpanM, in.WidthMM, in.HeightMM, in.ServiceClass, in.Loads)
	if err != nil {
		return Result{}, err
	}
	if _, err := in.Scenario.validate(); err != nil {
		return Result{}, err
	}
	if in.LefFactor <= 0 {
		in.LefFactor = 1.0
	}

	qFi := loads.AccidentalFire(comps)
	gov := loads.Governing(loads.ULS(comps, sc))
	etaFi := 0.0
	if gov.QdKNM > 0 {
		etaFi = qFi / gov.QdKNM
	}

	res := Result{
		Scenario: in.Scenario,
		QdFiKNM:  qFi,
		MEdFiKNM: loads.MomentKNM(qFi, in.SpanM),
		VEdFiKN:  loads.ShearKN(qFi, in.SpanM),
		EtaFi:    etaFi,
		FmdFiMPa: KmodFi * KFi * mat.FmK / GammaMFi,
		FvdFiMPa: KmodFi * KFi * mat.FvK / GammaMFi,
	}

	red, err := Reduce(in.Scenario, sec, mat)
	res.Reduced = red
	if err != nil {
		if errors.Is(err, ErrSectionConsumed) {
			res.Consumed = true
			res.AllPassed = false
			return res, nil
		}
		return Result{}, err
	}

	redSec := section.Rectangle{B: red.BMM, H: red.HMM}
	// No kh and no crack reduction on the residual section: the heat-affected
	// outer layer is already stripped off (cl. 4.2.2, note in fire shear).
	p := uls.Params{
		FmdMPa:    res.FmdFiMPa,
		FvdMPa:    res.FvdFiMPa,
		FmkMPa:    mat.FmK,
		E005MPa:   mat.E005,
		Kcr:       1.0,
		LefFactor: in.LefFactor,
	}
	combo := fmt.Sprintf("6.11b fire R%d", in.Scenario.RatingMin)
	checks := uls.CheckSection(redSec, in.SpanM, p, res.MEdFiKNM, res.VEdFiKN, combo)

	res.Bending = fireCheck(checks.Bending)
	res.Shear = fireCheck(checks.Shear)
	res.Buckling = fireCheck(checks.Buckling)
	res.AllPassed = res.Bending.Passed && res.Shear.Passed && res.Buckling.Passed
	return res, nil
}

func fireCheck(c uls.CheckResult) uls.CheckResult {
	c.Name += " (fire)"
	c.Clause = "EN 1995-1-2 4.2.2 + " + c.Clause
	return c
}
