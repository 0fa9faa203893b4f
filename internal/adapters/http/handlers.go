// Package httpadapter serves the worksheet pages and a small JSON API on
// top of the puzzle use cases.
package httpadapter

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"svw.info/worksheets/internal/config"
	"svw.info/worksheets/internal/domain"
	"svw.info/worksheets/internal/usecase"
)

type Handler struct {
	UC   *usecase.Service
	Cfg  *config.Config
	Tmpl *template.Template
	Log  *zap.Logger
}

func New(uc *usecase.Service, cfg *config.Config, tmpl *template.Template, log *zap.Logger) *Handler {
	return &Handler{UC: uc, Cfg: cfg, Tmpl: tmpl, Log: log}
}

// Register mounts all worksheet and API routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.handleLanding)
	r.Get("/symbol-grid", h.handleSymbolIndex)
	r.Post("/symbol-grid/generate", h.handleSymbolGenerate)
	r.Get("/kenken", h.handleKenKenIndex)
	r.Post("/kenken/generate", h.handleKenKenGenerate)

	r.Post("/api/symbol-grid", h.handleAPISymbolGrid)
	r.Post("/api/kenken", h.handleAPIKenKen)
	r.Post("/api/kenken/solve", h.handleAPIKenKenSolve)
	r.Post("/api/kenken/validate", h.handleAPIKenKenValidate)
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.Log.Error("template render failed", zap.String("template", name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// ---- Landing ----

func (h *Handler) handleLanding(w http.ResponseWriter, r *http.Request) {
	h.render(w, "landing.tmpl", nil)
}

// ---- Symbol grid pages ----

type symbolIndexData struct {
	Presets []config.SymbolPreset
	Error   string
}

func (h *Handler) handleSymbolIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, "symbol_index.tmpl", symbolIndexData{Presets: h.Cfg.SymbolPresets})
}

// parseSymbolForm extracts generation parameters from the form: a known
// preset name wins, otherwise the explicit custom fields are read.
func (h *Handler) parseSymbolForm(r *http.Request) (domain.SymbolParams, int, bool, string) {
	var params domain.SymbolParams
	if preset, ok := h.Cfg.SymbolPreset(r.FormValue("preset")); ok {
		params = preset.Params
	} else {
		var errs []error
		intField := func(name string) int {
			v, err := strconv.Atoi(r.FormValue(name))
			errs = append(errs, err)
			return v
		}
		params.GridSize = intField("grid_size")
		params.NumSymbols = intField("num_symbols")
		params.ValueMin = intField("value_min")
		params.ValueMax = intField("value_max")
		frac, err := strconv.ParseFloat(r.FormValue("hint_fraction"), 64)
		errs = append(errs, err)
		params.HintFraction = frac
		params.DistinctValues = r.FormValue("distinct_values") == "on"
		for _, err := range errs {
			if err != nil {
				return params, 0, false, "Invalid parameter: " + err.Error()
			}
		}
	}

	// The display tables bound how many symbols a worksheet can show,
	// regardless of what the generator itself would accept.
	if params.NumSymbols > len(config.Symbols) {
		return params, 0, false, fmt.Sprintf("num_symbols may not exceed the %d available symbols", len(config.Symbols))
	}

	count, msg := parseCount(r.FormValue("count"))
	if msg != "" {
		return params, 0, false, msg
	}
	return params, count, r.FormValue("show_answers") == "on", ""
}

func parseCount(raw string) (int, string) {
	if raw == "" {
		return 1, ""
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, "Invalid puzzle count"
	}
	if count != 1 && count != 2 && count != 4 {
		return 0, "Puzzle count must be 1, 2, or 4"
	}
	return count, ""
}

type symbolWorksheetData struct {
	Puzzles     []symbolView
	Count       int
	ShowAnswers bool
}

func (h *Handler) handleSymbolGenerate(w http.ResponseWriter, r *http.Request) {
	params, count, showAnswers, msg := h.parseSymbolForm(r)
	if msg != "" {
		h.render(w, "symbol_index.tmpl", symbolIndexData{Presets: h.Cfg.SymbolPresets, Error: msg})
		return
	}

	views := make([]symbolView, 0, count)
	for i := 0; i < count; i++ {
		puz, st, err := h.UC.GenerateSymbolGrid(r.Context(), time.Now().UnixNano()+int64(i), params)
		if err != nil {
			h.Log.Warn("symbol grid generation failed", zap.Error(err))
			h.render(w, "symbol_index.tmpl", symbolIndexData{Presets: h.Cfg.SymbolPresets, Error: err.Error()})
			return
		}
		h.Log.Debug("symbol grid generated",
			zap.Int("gridSize", puz.GridSize()),
			zap.Int("hints", len(puz.Hints)),
			zap.Int("attempts", st.Attempts),
			zap.Duration("dur", st.Duration),
		)
		views = append(views, buildSymbolView(puz))
	}
	h.render(w, "symbol_worksheet.tmpl", symbolWorksheetData{Puzzles: views, Count: count, ShowAnswers: showAnswers})
}

// ---- KenKen pages ----

type kenkenIndexData struct {
	Presets []config.KenKenPreset
	Error   string
}

func (h *Handler) handleKenKenIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, "kenken_index.tmpl", kenkenIndexData{Presets: h.Cfg.KenKenPresets})
}

type kenkenWorksheetData struct {
	Puzzles     []kenkenView
	Count       int
	ShowAnswers bool
}

func (h *Handler) handleKenKenGenerate(w http.ResponseWriter, r *http.Request) {
	preset, ok := h.Cfg.KenKenPreset(r.FormValue("preset"))
	if !ok {
		h.render(w, "kenken_index.tmpl", kenkenIndexData{Presets: h.Cfg.KenKenPresets, Error: "Invalid preset"})
		return
	}
	count, msg := parseCount(r.FormValue("count"))
	if msg != "" {
		h.render(w, "kenken_index.tmpl", kenkenIndexData{Presets: h.Cfg.KenKenPresets, Error: msg})
		return
	}

	views := make([]kenkenView, 0, count)
	for i := 0; i < count; i++ {
		puz, st, err := h.UC.GenerateKenKen(r.Context(), time.Now().UnixNano()+int64(i), preset.Spec)
		if err != nil {
			h.Log.Warn("kenken generation failed", zap.Error(err))
			h.render(w, "kenken_index.tmpl", kenkenIndexData{Presets: h.Cfg.KenKenPresets, Error: err.Error()})
			return
		}
		h.Log.Debug("kenken generated",
			zap.Int("size", puz.Size),
			zap.Int("cages", len(puz.Cages)),
			zap.Int("attempts", st.Attempts),
			zap.Int("nodes", st.Nodes),
			zap.Duration("dur", st.Duration),
		)
		views = append(views, buildKenKenView(puz))
	}
	h.render(w, "kenken_worksheet.tmpl", kenkenWorksheetData{
		Puzzles:     views,
		Count:       count,
		ShowAnswers: r.FormValue("show_answers") == "on",
	})
}

// statusForError maps the two error kinds onto HTTP statuses: caller
// mistakes are 400, exhausted retry budgets 500.
func statusForError(err error) int {
	if errors.Is(err, domain.ErrInvalidParameter) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
