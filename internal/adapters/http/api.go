package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"svw.info/worksheets/internal/domain"
)

// JSON API for programmatic consumers; the worksheet pages do not use it.

type symbolGenerateReq struct {
	domain.SymbolParams
	Seed int64 `json:"seed,omitempty"`
}

type symbolGenerateResp struct {
	Puzzle     *domain.SymbolPuzzle `json:"puzzle,omitempty"`
	Seed       int64                `json:"seed,omitempty"`
	Attempts   int                  `json:"attempts,omitempty"`
	DurationMs int64                `json:"durationMs,omitempty"`
	Error      string               `json:"error,omitempty"`
}

func (h *Handler) handleAPISymbolGrid(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	var req symbolGenerateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(symbolGenerateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	puz, st, err := h.UC.GenerateSymbolGrid(r.Context(), seed, req.SymbolParams)
	if err != nil {
		w.WriteHeader(statusForError(err))
		_ = json.NewEncoder(w).Encode(symbolGenerateResp{Error: err.Error(), Attempts: st.Attempts})
		return
	}
	_ = json.NewEncoder(w).Encode(symbolGenerateResp{
		Puzzle:     puz,
		Seed:       seed,
		Attempts:   st.Attempts,
		DurationMs: st.Duration.Milliseconds(),
	})
}

type kenkenGenerateReq struct {
	domain.KenKenSpec
	Seed int64 `json:"seed,omitempty"`
}

type kenkenGenerateResp struct {
	Puzzle     *domain.KenKenPuzzle `json:"puzzle,omitempty"`
	Seed       int64                `json:"seed,omitempty"`
	Attempts   int                  `json:"attempts,omitempty"`
	Nodes      int                  `json:"nodes,omitempty"`
	DurationMs int64                `json:"durationMs,omitempty"`
	Error      string               `json:"error,omitempty"`
}

func (h *Handler) handleAPIKenKen(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	var req kenkenGenerateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(kenkenGenerateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	puz, st, err := h.UC.GenerateKenKen(r.Context(), seed, req.KenKenSpec)
	if err != nil {
		w.WriteHeader(statusForError(err))
		_ = json.NewEncoder(w).Encode(kenkenGenerateResp{Error: err.Error(), Attempts: st.Attempts, Nodes: st.Nodes})
		return
	}
	_ = json.NewEncoder(w).Encode(kenkenGenerateResp{
		Puzzle:     puz,
		Seed:       seed,
		Attempts:   st.Attempts,
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	})
}

type kenkenSolveReq struct {
	Puzzle       *domain.KenKenPuzzle `json:"puzzle"`
	MaxSolutions int                  `json:"maxSolutions,omitempty"`
}

type kenkenSolveResp struct {
	Solutions  [][][]int `json:"solutions"`
	Nodes      int       `json:"nodes,omitempty"`
	DurationMs int64     `json:"durationMs,omitempty"`
	Error      string    `json:"error,omitempty"`
}

func (h *Handler) handleAPIKenKenSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	var req kenkenSolveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Puzzle == nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(kenkenSolveResp{Error: "invalid JSON or missing puzzle"})
		return
	}
	maxSolutions := req.MaxSolutions
	if maxSolutions <= 0 {
		maxSolutions = 2
	}
	found, st, err := h.UC.SolveKenKen(r.Context(), req.Puzzle, maxSolutions)
	if err != nil {
		w.WriteHeader(statusForError(err))
		_ = json.NewEncoder(w).Encode(kenkenSolveResp{Error: err.Error(), Nodes: st.Nodes})
		return
	}
	if found == nil {
		found = [][][]int{}
	}
	_ = json.NewEncoder(w).Encode(kenkenSolveResp{Solutions: found, Nodes: st.Nodes, DurationMs: st.Duration.Milliseconds()})
}

type validateReq struct {
	Size int     `json:"size"`
	Grid [][]int `json:"grid"`
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleAPIKenKenValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Size < 1 || len(req.Grid) != req.Size {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "grid does not match size"})
		return
	}
	for _, row := range req.Grid {
		if len(row) != req.Size {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(validateResp{Error: "grid does not match size"})
			return
		}
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), req.Size, req.Grid)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}
