package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gph82/GAIN-GRN/pkg/gaingrn"
)

// IndexingRequest carries everything needed to detect and index one
// target sequence: its secondary structure, per-residue letters, the
// reference alignment rows, and the curated anchor table.
type IndexingRequest struct {
	Name      string                    `json:"name"`
	Sequence  string                    `json:"sequence"`
	SSEs      map[string][]IntervalJSON `json:"sses"`
	Letters   map[int]string            `json:"letters,omitempty"`
	Alignment map[string]string         `json:"alignment"`

	AnchorColumns  []int     `json:"anchor_columns"`
	Occupations    []float64 `json:"occupations"`
	BoundaryColumn int       `json:"boundary_column"`

	GPS       []int  `json:"gps,omitempty"`
	SplitMode string `json:"split_mode,omitempty"`
}

// IndexingResponse carries the assigned nomenclature.
type IndexingResponse struct {
	Start     int                    `json:"start"`
	Boundary  int                    `json:"boundary"`
	Segments  map[string]ElementJSON `json:"segments"`
	Centers   map[string]int         `json:"centers"`
	Residues  map[string]int         `json:"residues"`
	Unindexed []int                  `json:"unindexed,omitempty"`
}

// IndexDomainHandler runs the full pipeline for one sequence.
func IndexDomainHandler(w http.ResponseWriter, r *http.Request) {
	var req IndexingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Sequence == "" {
		http.Error(w, `{"error": "sequence is required"}`, http.StatusBadRequest)
		return
	}

	m, err := decodeSSEMap(req.SSEs)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	letters := make(gaingrn.Letters, len(req.Letters))
	for res, code := range req.Letters {
		if len(code) > 0 {
			letters[res] = code[0]
		}
	}

	dom, err := gaingrn.DetectDomain(req.Name, req.Sequence, m, letters)
	if err != nil {
		if errors.Is(err, gaingrn.ErrNotADomain) {
			http.Error(w, `{"error": "not a GAIN domain"}`, http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	columns, err := gaingrn.MapToAlignment(req.Name, dom.Sequence, req.Alignment)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusUnprocessableEntity)
		return
	}

	anchors, err := gaingrn.NewAnchors(req.AnchorColumns, req.Occupations, req.BoundaryColumn)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	mode := gaingrn.SplitSingle
	if req.SplitMode == "double" {
		mode = gaingrn.SplitDouble
	}
	idx := gaingrn.Index(dom, columns, anchors, gaingrn.Options{Mode: mode, GPS: req.GPS})

	resp := IndexingResponse{
		Start:     dom.Start,
		Boundary:  dom.Boundary,
		Segments:  make(map[string]ElementJSON, len(idx.Segments)),
		Centers:   idx.Centers,
		Residues:  idx.Residues,
		Unindexed: idx.Unindexed,
	}
	for label, el := range idx.Segments {
		resp.Segments[label] = ElementJSON{Start: el.Start, End: el.End, Breaks: el.Breaks}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
