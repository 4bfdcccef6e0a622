package verify

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/petrmazanek/pozar-drevo/internal/auth"
	"github.com/petrmazanek/pozar-drevo/internal/repo"
)

// Handler runs the full verification. With a Repo configured, results are
// saved to the authenticated user's history; persistence failures are logged
// but never fail the calculation response.
type Handler struct {
	Repo repo.Repository
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if h.Repo != nil {
		if userID, ok := auth.UserID(r.Context()); ok {
			payload, err := json.Marshal(res)
			if err == nil {
				_, err = h.Repo.SaveVerification(r.Context(), userID, repo.VerificationRecord{
					Material:       input.MaterialClass,
					SpanM:          input.SpanM,
					WidthMM:        input.WidthMM,
					HeightMM:       input.HeightMM,
					Passed:         res.AllPassed,
					MaxUtilization: res.MaxUtilization,
					Payload:        payload,
				})
			}
			if err != nil {
				log.Printf("SaveVerification Error: %v", err)
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
