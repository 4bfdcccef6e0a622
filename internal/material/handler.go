package material

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Handler struct{}

// List serves the strength class tables; ?family=solid|glulam filters,
// ?class=C24 returns a single class.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if name := r.URL.Query().Get("class"); name != "" {
		c, err := Lookup(name)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, ErrUnknownClass) {
				status = http.StatusNotFound
			}
			http.Error(w, err.Error(), status)
			return
		}
		json.NewEncoder(w).Encode(c)
		return
	}

	family := Family(r.URL.Query().Get("family"))
	var out []Class
	for _, name := range List(family) {
		c, _ := Lookup(name)
		out = append(out, c)
	}
	json.NewEncoder(w).Encode(out)
}
