package guide

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/EmpoweredVote/senkyo-guide/internal/dataset"
	"github.com/EmpoweredVote/senkyo-guide/internal/electiondocs"
	"github.com/EmpoweredVote/senkyo-guide/internal/registry"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=300")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// storeError maps a store failure onto a status code.
func storeError(w http.ResponseWriter, r *http.Request, err error, what string) {
	if errors.Is(err, dataset.ErrNotFound) {
		http.Error(w, what+" not found", http.StatusNotFound)
		return
	}
	log.Error("store lookup failed", zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, "Failed to load "+what, http.StatusInternalServerError)
}

func PrefecturesHandler(w http.ResponseWriter, r *http.Request) {
	summaries, err := store.ListPrefectures(r.Context())
	if err != nil {
		storeError(w, r, err, "prefectures")
		return
	}
	writeJSON(w, summaries)
}

func PrefectureHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	pref, err := store.GetPrefecture(r.Context(), code)
	if err != nil {
		storeError(w, r, err, "prefecture")
		return
	}
	writeJSON(w, pref)
}

func BlocksHandler(w http.ResponseWriter, r *http.Request) {
	blocks, err := store.ListBlocks(r.Context())
	if err != nil {
		storeError(w, r, err, "blocks")
		return
	}
	writeJSON(w, blocks)
}

func BlockHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	block, err := store.GetBlock(r.Context(), code)
	if err != nil {
		storeError(w, r, err, "block")
		return
	}
	writeJSON(w, block)
}

// BlockPrefecturesHandler lists the generated prefectures filed under one
// block. Unknown block codes are 404; a known block with no data is [].
func BlockPrefecturesHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if _, ok := registry.Block(code); !ok {
		http.Error(w, "block not found", http.StatusNotFound)
		return
	}
	summaries, err := store.ListPrefectures(r.Context())
	if err != nil {
		storeError(w, r, err, "prefectures")
		return
	}
	out := make([]electiondocs.PrefectureSummary, 0)
	for _, s := range summaries {
		if s.BlockCode == code {
			out = append(out, s)
		}
	}
	writeJSON(w, out)
}

func PartyColorsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, PartyColorsResponse{
		Colors:   registry.PartyColors(),
		Fallback: registry.FallbackColor(),
	})
}

// MapHandler returns all 47 tiles, flagging those with a generated record.
func MapHandler(w http.ResponseWriter, r *http.Request) {
	summaries, err := store.ListPrefectures(r.Context())
	if err != nil {
		storeError(w, r, err, "prefectures")
		return
	}
	have := make(map[string]bool, len(summaries))
	for _, s := range summaries {
		have[s.Code] = true
	}

	prefs := registry.Prefectures()
	tiles := make([]MapTile, 0, len(prefs))
	for _, p := range prefs {
		tiles = append(tiles, MapTile{
			Code:      p.Code,
			Name:      p.Name,
			BlockCode: p.BlockCode,
			Col:       p.Col,
			Row:       p.Row,
			Color:     registry.ColorForPrefecture(p.Code),
			HasData:   have[p.Code],
		})
	}
	writeJSON(w, MapResponse{Blocks: registry.Blocks(), Tiles: tiles})
}
