package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"forest-ca/pkg/forest"
)

// FieldHandler serves field generation and stepping.
type FieldHandler struct {
	maxSize int
	maxBody int64
}

// RandomField handles GET /v1/field/random?size=&grass=&trees=&flames=&seed=.
func (h *FieldHandler) RandomField(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var s forest.Seeding
	var err error
	if s.Size, err = intQuery(q.Get("size"), "size", true); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	for _, p := range []struct {
		name string
		dst  *int
	}{{"grass", &s.Grass}, {"trees", &s.Trees}, {"flames", &s.Flames}} {
		if *p.dst, err = intQuery(q.Get(p.name), p.name, false); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if v := q.Get("seed"); v != "" {
		if s.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid seed")
			return
		}
	}
	if s.Size < 1 || s.Size > h.maxSize {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("size must be between 1 and %d", h.maxSize))
		return
	}

	f, err := s.Field()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, f)
}

// Step handles POST /v1/simulation/step. The body is the current field and
// the response is the field one tick later.
func (h *FieldHandler) Step(w http.ResponseWriter, r *http.Request) {
	f, ok := h.decodeField(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, forest.Step(f))
}

// Census handles POST /v1/field/census.
func (h *FieldHandler) Census(w http.ResponseWriter, r *http.Request) {
	f, ok := h.decodeField(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, forest.Census(f))
}

func (h *FieldHandler) decodeField(w http.ResponseWriter, r *http.Request) (forest.Field, bool) {
	var f forest.Field
	body := http.MaxBytesReader(w, r.Body, h.maxBody)
	if err := json.NewDecoder(body).Decode(&f); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "Field too large")
			return nil, false
		}
		respondError(w, http.StatusBadRequest, "Invalid field: "+err.Error())
		return nil, false
	}
	if err := f.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	if f.Side() > h.maxSize {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("field side %d exceeds %d", f.Side(), h.maxSize))
		return nil, false
	}
	return f, true
}

func intQuery(v, name string, required bool) (int, error) {
	if v == "" {
		if required {
			return 0, fmt.Errorf("missing %s", name)
		}
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q", name, v)
	}
	return n, nil
}
