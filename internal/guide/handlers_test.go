package guide

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EmpoweredVote/senkyo-guide/internal/dataset"
	"github.com/EmpoweredVote/senkyo-guide/internal/electiondocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubStore struct {
	summaries   []electiondocs.PrefectureSummary
	blocks      []electiondocs.Block
	prefectures map[string]electiondocs.Prefecture
	err         error
}

func (s stubStore) ListPrefectures(context.Context) ([]electiondocs.PrefectureSummary, error) {
	return s.summaries, s.err
}

func (s stubStore) ListBlocks(context.Context) ([]electiondocs.Block, error) {
	return s.blocks, s.err
}

func (s stubStore) GetBlock(_ context.Context, code string) (electiondocs.Block, error) {
	if s.err != nil {
		return electiondocs.Block{}, s.err
	}
	for _, b := range s.blocks {
		if b.Code == code {
			return b, nil
		}
	}
	return electiondocs.Block{}, dataset.ErrNotFound
}

func (s stubStore) GetPrefecture(_ context.Context, code string) (electiondocs.Prefecture, error) {
	if s.err != nil {
		return electiondocs.Prefecture{}, s.err
	}
	p, ok := s.prefectures[code]
	if !ok {
		return electiondocs.Prefecture{}, dataset.ErrNotFound
	}
	return p, nil
}

func newStub() stubStore {
	tokyo := electiondocs.Prefecture{Code: "13", Name: "東京都", BlockCode: "05", BlockName: "東京",
		Districts: []electiondocs.District{{Number: 1}, {Number: 2}}}
	kanagawa := electiondocs.Prefecture{Code: "14", Name: "神奈川県", BlockCode: "04", BlockName: "南関東",
		Districts: []electiondocs.District{{Number: 1}}}
	return stubStore{
		summaries: []electiondocs.PrefectureSummary{tokyo.Summary(), kanagawa.Summary()},
		blocks:    []electiondocs.Block{{Code: "05", Name: "東京", Seats: 19}},
		prefectures: map[string]electiondocs.Prefecture{
			"13": tokyo,
			"14": kanagawa,
		},
	}
}

func get(t *testing.T, s dataset.Store, path string) *httptest.ResponseRecorder {
	t.Helper()
	Init(s, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	SetupRoutes().ServeHTTP(rec, req)
	return rec
}

func TestPrefectures(t *testing.T) {
	rec := get(t, newStub(), "/prefectures")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []electiondocs.PrefectureSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "13", got[0].Code)
	assert.Equal(t, 2, got[0].DistrictCount)
}

func TestPrefecture(t *testing.T) {
	rec := get(t, newStub(), "/prefectures/13")
	require.Equal(t, http.StatusOK, rec.Code)

	var got electiondocs.Prefecture
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "東京都", got.Name)
	assert.Len(t, got.Districts, 2)
}

func TestNotFound(t *testing.T) {
	for _, path := range []string{"/prefectures/99", "/blocks/42", "/blocks/42/prefectures"} {
		t.Run(path, func(t *testing.T) {
			rec := get(t, newStub(), path)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestStoreFailureIs500(t *testing.T) {
	s := newStub()
	s.err = errors.New("connection refused")
	rec := get(t, s, "/blocks")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestBlock(t *testing.T) {
	rec := get(t, newStub(), "/blocks/05")
	require.Equal(t, http.StatusOK, rec.Code)

	var got electiondocs.Block
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 19, got.Seats)
}

func TestBlockPrefectures(t *testing.T) {
	rec := get(t, newStub(), "/blocks/05/prefectures")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []electiondocs.PrefectureSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "13", got[0].Code)

	// Known block without generated data.
	rec = get(t, newStub(), "/blocks/01/prefectures")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestPartyColors(t *testing.T) {
	rec := get(t, newStub(), "/parties/colors")
	require.Equal(t, http.StatusOK, rec.Code)

	var got PartyColorsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.NotEmpty(t, got.Colors)
	assert.Equal(t, "#6b7280", got.Fallback)
}

func TestMap(t *testing.T) {
	rec := get(t, newStub(), "/map")
	require.Equal(t, http.StatusOK, rec.Code)

	var got MapResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got.Blocks, 11)
	require.Len(t, got.Tiles, 47)

	withData := 0
	for _, tile := range got.Tiles {
		if tile.HasData {
			withData++
		}
		if tile.Code == "13" {
			assert.Equal(t, "05", tile.BlockCode)
			assert.NotEmpty(t, tile.Color)
		}
	}
	assert.Equal(t, 2, withData)
}
