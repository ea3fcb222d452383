package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gph82/GAIN-GRN/internal/boundary"
	"github.com/gph82/GAIN-GRN/internal/sse"
)

// IntervalJSON is the wire form of one SSE interval.
type IntervalJSON struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

// BoundaryRequest represents a boundary-detection request.
type BoundaryRequest struct {
	SSEs            map[string][]IntervalJSON `json:"sses"`
	SequenceLength  int                       `json:"sequence_length"`
	BracketSize     int                       `json:"bracket_size,omitempty"`
	DomainThreshold int                       `json:"domain_threshold,omitempty"`
	CoilWeight      float64                   `json:"coil_weight,omitempty"`
}

// BoundaryResponse represents the detected domain extent.
type BoundaryResponse struct {
	Found    bool `json:"found"`
	Start    int  `json:"start,omitempty"`
	Boundary int  `json:"boundary,omitempty"`
}

func decodeSSEMap(in map[string][]IntervalJSON) (sse.Map, error) {
	m := make(sse.Map, len(in))
	for name, list := range in {
		for _, iv := range list {
			parsed, err := sse.NewInterval(iv.First, iv.Last)
			if err != nil {
				return nil, err
			}
			m[name] = append(m[name], parsed)
		}
	}
	return m, nil
}

// DetectBoundaryHandler handles boundary-detection requests.
func DetectBoundaryHandler(w http.ResponseWriter, r *http.Request) {
	var req BoundaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.SequenceLength <= 0 {
		http.Error(w, `{"error": "sequence_length must be positive"}`, http.StatusBadRequest)
		return
	}

	m, err := decodeSSEMap(req.SSEs)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	opts := boundary.DefaultOptions()
	if req.BracketSize > 0 {
		opts.BracketSize = req.BracketSize
	}
	if req.DomainThreshold > 0 {
		opts.DomainThreshold = req.DomainThreshold
	}
	opts.CoilWeight = req.CoilWeight

	res, ok := boundary.Detect(m, req.SequenceLength, opts)
	resp := BoundaryResponse{Found: ok}
	if ok {
		resp.Start = res.Start
		resp.Boundary = res.Boundary
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
