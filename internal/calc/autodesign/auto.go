// Package autodesign searches for the smallest uniform section increase
// that satisfies a requested fire rating, keeping the ambient checks in view.
package autodesign

import (
	"fmt"

	"github.com/petrmazanek/pozar-drevo/internal/calc/fire"
)

type FireAutoInput struct {
	fire.Input
}

type FireAutoResult struct {
	WidthMM  float64     `json:"width_mm"`
	HeightMM float64     `json:"height_mm"`
	DeltaMM  float64     `json:"delta_mm"`
	Result   fire.Result `json:"result"`
	Notes    string      `json:"notes"`
}

// Fire upsizes width and height together in 10 mm steps until the fire
// checks pass, up to +500 mm. The original section is tried first.
func Fire(in FireAutoInput) (FireAutoResult, error) {
	for delta := 0.0; delta <= 500; delta += 10 {
		trial := in.Input
		trial.WidthMM = in.WidthMM + delta
		trial.HeightMM = in.HeightMM + delta
		res, err := fire.Calculate(trial)
		if err != nil {
			return FireAutoResult{}, err
		}
		if res.AllPassed {
			notes := "Section satisfies the requested fire rating."
			if delta > 0 {
				notes = fmt.Sprintf("Section increased by %.0f mm on both dimensions to satisfy R%d.", delta, in.Scenario.RatingMin)
			}
			return FireAutoResult{
				WidthMM:  trial.WidthMM,
				HeightMM: trial.HeightMM,
				DeltaMM:  delta,
				Result:   res,
				Notes:    notes,
			}, nil
		}
	}
	return FireAutoResult{}, fmt.Errorf("no section within +500 mm satisfies R%d", in.Scenario.RatingMin)
}
