package batch

import (
	"fmt"

	"github.com/petrmazanek/pozar-drevo/internal/calc/verify"
)

type VerifyBatchInput struct {
	Items []verify.Input `json:"items"`
}

type VerifyBatchResult struct {
	Results []verify.Result `json:"results"`
}

func CalculateVerify(in VerifyBatchInput) (VerifyBatchResult, error) {
	if len(in.Items) == 0 {
		return VerifyBatchResult{}, fmt.Errorf("no items")
	}
	out := VerifyBatchResult{Results: make([]verify.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := verify.Calculate(item)
		if err != nil {
			return VerifyBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
