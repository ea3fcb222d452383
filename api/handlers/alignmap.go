package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gph82/GAIN-GRN/internal/alignmap"
)

// AlignMapRequest represents an index-mapping request.
type AlignMapRequest struct {
	Name      string            `json:"name"`
	Sequence  string            `json:"sequence"`
	Alignment map[string]string `json:"alignment"`
	Truncated []bool            `json:"truncated,omitempty"`
}

// ColumnJSON is the wire form of one residue's alignment column.
type ColumnJSON struct {
	Index  int  `json:"index"`
	Mapped bool `json:"mapped"`
}

// AlignMapResponse lists one column per residue.
type AlignMapResponse struct {
	Columns []ColumnJSON `json:"columns"`
}

// BuildAlignMapHandler handles index-mapping requests.
func BuildAlignMapHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignMapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	m, err := alignmap.Build(req.Name, req.Sequence, req.Alignment, alignmap.Options{Truncated: req.Truncated})
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusUnprocessableEntity)
		return
	}

	resp := AlignMapResponse{Columns: make([]ColumnJSON, m.Len())}
	for i := range resp.Columns {
		col, ok := m.At(i)
		resp.Columns[i] = ColumnJSON{Index: col, Mapped: ok}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
