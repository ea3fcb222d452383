package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gph82/GAIN-GRN/internal/segment"
)

// SegmentRequest represents an element-grouping request over a boolean
// membership array.
type SegmentRequest struct {
	Mask        []bool `json:"mask"`
	DomainStart int    `json:"domain_start"`
	DomainEnd   int    `json:"domain_end"`
	Spacing     int    `json:"spacing"`
	MinLength   int    `json:"min_length"`
}

// ElementJSON is the wire form of one grouped element.
type ElementJSON struct {
	Start  int   `json:"start"`
	End    int   `json:"end"`
	Breaks []int `json:"breaks,omitempty"`
}

// SegmentResponse lists the grouped elements in ascending order.
type SegmentResponse struct {
	Elements []ElementJSON `json:"elements"`
}

// GroupSegmentsHandler handles element-grouping requests.
func GroupSegmentsHandler(w http.ResponseWriter, r *http.Request) {
	var req SegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.MinLength <= 0 {
		http.Error(w, `{"error": "min_length must be positive"}`, http.StatusBadRequest)
		return
	}
	if req.DomainEnd <= 0 {
		req.DomainEnd = len(req.Mask)
	}

	elements := segment.Group(req.Mask, req.DomainStart, req.DomainEnd, req.Spacing, req.MinLength)
	resp := SegmentResponse{Elements: make([]ElementJSON, 0, len(elements))}
	for _, el := range elements {
		resp.Elements = append(resp.Elements, ElementJSON{Start: el.Start, End: el.End, Breaks: el.Breaks})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
