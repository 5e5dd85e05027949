package http

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/couchcryptid/route-grade-etl/internal/grade"
)

const maxPyramidBody = 1 << 20

type gradeAPI struct {
	engine       *grade.Engine
	defaultScale grade.Scale
}

func (a *gradeAPI) routes(r chi.Router) {
	r.Get("/scales", a.listScales)
	r.Get("/scales/{scale}", a.getScale)

	r.Route("/grades", func(r chi.Router) {
		r.Get("/detect", a.detect)
		r.Get("/normalize", a.normalize)
		r.Get("/denormalize", a.denormalize)
		r.Get("/convert", a.convert)
		r.Get("/compare", a.compare)
		r.Post("/pyramid", a.pyramid)
	})
}

type scaleResponse struct {
	Scale   grade.Scale   `json:"scale"`
	Unrated string        `json:"unrated"`
	Grades  []grade.Entry `json:"grades"`
}

type normalizeResponse struct {
	grade.Result
	Classified bool                   `json:"classified"`
	Display    map[grade.Scale]string `json:"display"`
}

type pyramidRequest struct {
	Ordinals []float64 `json:"ordinals"`
	Labels   []string  `json:"labels"`
	Rounding string    `json:"rounding"`
}

func (a *gradeAPI) listScales(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"scales": grade.Scales})
}

func (a *gradeAPI) getScale(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "scale")
	scale, ok := grade.ParseScale(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown scale %q", name))
		return
	}
	table, _ := a.engine.Registry().Table(scale)
	entries := table.Entries()
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Ordinal < entries[j].Ordinal })
	writeJSON(w, http.StatusOK, scaleResponse{
		Scale:   scale,
		Unrated: table.Unrated(),
		Grades:  entries,
	})
}

func (a *gradeAPI) detect(w http.ResponseWriter, r *http.Request) {
	token, ok := requiredParam(w, r, "token")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"token": token,
		"scale": string(a.engine.DetectScale(token)),
	})
}

func (a *gradeAPI) normalize(w http.ResponseWriter, r *http.Request) {
	token, ok := requiredParam(w, r, "token")
	if !ok {
		return
	}
	discipline := grade.ParseDiscipline(r.URL.Query().Get("discipline"))

	var res grade.Result
	if name := r.URL.Query().Get("scale"); name != "" {
		scale, ok := grade.ParseScale(name)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown scale %q", name))
			return
		}
		res = a.engine.NormalizeAs(token, scale, discipline)
	} else {
		res = a.engine.Classify(token, discipline)
	}

	display := make(map[grade.Scale]string, len(grade.Scales))
	for _, s := range grade.Scales {
		display[s] = a.engine.Denormalize(res.Ordinal, s)
	}
	writeJSON(w, http.StatusOK, normalizeResponse{Result: res, Classified: res.Classified(), Display: display})
}

func (a *gradeAPI) denormalize(w http.ResponseWriter, r *http.Request) {
	ordinal, ok := floatParam(w, r, "ordinal")
	if !ok {
		return
	}
	scale, ok := a.scaleParam(w, r, "scale")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ordinal": ordinal,
		"scale":   scale,
		"token":   a.engine.Denormalize(ordinal, scale),
	})
}

func (a *gradeAPI) convert(w http.ResponseWriter, r *http.Request) {
	token, ok := requiredParam(w, r, "token")
	if !ok {
		return
	}
	target, ok := a.scaleParam(w, r, "to")
	if !ok {
		return
	}
	discipline := grade.ParseDiscipline(r.URL.Query().Get("discipline"))
	res := a.engine.Classify(token, discipline)

	writeJSON(w, http.StatusOK, map[string]any{
		"token":     token,
		"scale":     res.Scale,
		"ordinal":   res.Ordinal,
		"to":        target,
		"converted": a.engine.Convert(token, discipline, target),
	})
}

func (a *gradeAPI) compare(w http.ResponseWriter, r *http.Request) {
	stored, ok := floatParam(w, r, "ordinal")
	if !ok {
		return
	}
	filter, ok := requiredParam(w, r, "filter")
	if !ok {
		return
	}
	op, err := grade.ParseOperator(r.URL.Query().Get("op"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	discipline := grade.ParseDiscipline(r.URL.Query().Get("discipline"))
	target := a.engine.Classify(filter, discipline)

	// A filter grade without an ordinal does not constrain the result.
	match := true
	if target.Outcome == grade.OutcomeClassified {
		match = grade.Compare(stored, target.Ordinal, op)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ordinal":        stored,
		"filter":         filter,
		"filter_ordinal": target.Ordinal,
		"filter_outcome": target.Outcome,
		"op":             op,
		"match":          match,
	})
}

func (a *gradeAPI) pyramid(w http.ResponseWriter, r *http.Request) {
	var req pyramidRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPyramidBody))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	rounding, err := grade.ParseRounding(req.Rounding)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Labels) == 0 {
		writeError(w, http.StatusBadRequest, "labels are required")
		return
	}

	bins := a.engine.Pyramid(req.Ordinals, req.Labels, rounding)
	if bins == nil {
		bins = []grade.PyramidBin{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"rounding": rounding, "bins": bins})
}

func requiredParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("missing query parameter %q", name))
		return "", false
	}
	return v, true
}

func floatParam(w http.ResponseWriter, r *http.Request, name string) (float64, bool) {
	s, ok := requiredParam(w, r, name)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s %q", name, s))
		return 0, false
	}
	return v, true
}

// scaleParam reads a scale name, falling back to the configured display scale.
func (a *gradeAPI) scaleParam(w http.ResponseWriter, r *http.Request, name string) (grade.Scale, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return a.defaultScale, true
	}
	scale, ok := grade.ParseScale(v)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown scale %q", v))
		return "", false
	}
	return scale, true
}
