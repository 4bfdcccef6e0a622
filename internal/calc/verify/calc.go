// Package verify runs the complete beam verification: ULS strength checks,
// SLS deflection checks and the optional fire re-verification, merged into
// one report. No engineering logic lives here, only orchestration.
package verify

import (
	"github.com/petrmazanek/pozar-drevo/internal/calc/fire"
	"github.com/petrmazanek/pozar-drevo/internal/calc/loads"
	"github.com/petrmazanek/pozar-drevo/internal/calc/sls"
	"github.com/petrmazanek/pozar-drevo/internal/calc/uls"
)

type Input struct {
	MaterialClass  string         `json:"material_class"`
	SpanM          float64        `json:"span_m"`
	WidthMM        float64        `json:"width_mm"`
	HeightMM       float64        `json:"height_mm"`
	ServiceClass   int            `json:"service_class"`
	Loads          []loads.Load   `json:"loads"`
	LefFactor      float64        `json:"lef_factor,omitempty"`
	InstLimitRatio float64        `json:"inst_limit_ratio,omitempty"`
	FinLimitRatio  float64        `json:"fin_limit_ratio,omitempty"`
	Fire           *fire.Scenario `json:"fire,omitempty"`
}

type Result struct {
	Checks         []uls.CheckResult `json:"checks"`
	ULS            uls.Result        `json:"uls"`
	SLS            sls.Result        `json:"sls"`
	Fire           *fire.Result      `json:"fire,omitempty"`
	AllPassed      bool              `json:"all_passed"`
	MaxUtilization float64           `json:"max_utilization"`
	Notes          string            `json:"notes,omitempty"`
}

// Calculate produces the full verification report. Structural errors
// (invalid geometry, unknown material, bad fire rating) abort with no
// partial report; failed checks are always fully reported.
func Calculate(in Input) (Result, error) {
	ulsRes, err := uls.Calculate(uls.Input{
		MaterialClass: in.MaterialClass,
		SpanM:         in.SpanM,
		WidthMM:       in.WidthMM,
		HeightMM:      in.HeightMM,
		ServiceClass:  in.ServiceClass,
		Loads:         in.Loads,
		LefFactor:     in.LefFactor,
	})
	if err != nil {
		return Result{}, err
	}

	slsRes, err := sls.Calculate(sls.Input{
		MaterialClass:  in.MaterialClass,
		SpanM:          in.SpanM,
		WidthMM:        in.WidthMM,
		HeightMM:       in.HeightMM,
		ServiceClass:   in.ServiceClass,
		Loads:          in.Loads,
		InstLimitRatio: in.InstLimitRatio,
		FinLimitRatio:  in.FinLimitRatio,
	})
	if err != nil {
		return Result{}, err
	}

	res := Result{
		ULS:   ulsRes,
		SLS:   slsRes,
		Notes: ulsRes.Notes,
	}
	res.Checks = append(res.Checks,
		ulsRes.Bending, ulsRes.Shear, ulsRes.Buckling,
		slsRes.Instantaneous, slsRes.Final,
	)
	res.AllPassed = ulsRes.AllPassed && slsRes.AllPassed

	if in.Fire != nil {
		fireRes, err := fire.Calculate(fire.Input{
			MaterialClass: in.MaterialClass,
			SpanM:         in.SpanM,
			WidthMM:       in.WidthMM,
			HeightMM:      in.HeightMM,
			ServiceClass:  in.ServiceClass,
			Loads:         in.Loads,
			LefFactor:     in.LefFactor,
			Scenario:      *in.Fire,
		})
		if err != nil {
			return Result{}, err
		}
		res.Fire = &fireRes
		if !fireRes.Consumed {
			res.Checks = append(res.Checks, fireRes.Bending, fireRes.Shear, fireRes.Buckling)
		}
		res.AllPassed = res.AllPassed && fireRes.AllPassed
	}

	for _, c := range res.Checks {
		if c.Utilization > res.MaxUtilization {
			res.MaxUtilization = c.Utilization
		}
	}
	return res, nil
}
