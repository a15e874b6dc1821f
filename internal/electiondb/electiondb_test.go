package electiondb

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/EmpoweredVote/senkyo-guide/internal/dataset"
	"github.com/EmpoweredVote/senkyo-guide/internal/db"
	"github.com/EmpoweredVote/senkyo-guide/internal/electiondocs"
	"github.com/EmpoweredVote/senkyo-guide/internal/generate"
	"github.com/EmpoweredVote/senkyo-guide/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleDataset() generate.Dataset {
	tokyo, _ := registry.Block("05")
	block := electiondocs.ExtractBlock(
		"定数: 19議席\n\n## 各党の比例名簿\n\n### 自民\n1. 山田太郎\n\n### 立憲\n1. 佐藤花子\n\n### 公明\n1. 鈴木一郎\n", tokyo)
	pref := electiondocs.ExtractPrefecture("# 東京都\n\n## 東京都の政治的争点\n\n### 物価高\n\n---\n\n## 第1区\n\n", "13", "05")
	prefs := []electiondocs.Prefecture{pref}
	return generate.Dataset{
		Blocks:      []electiondocs.Block{block},
		Prefectures: prefs,
		Summaries:   generate.BuildSummaries(prefs),
	}
}

// partyOrder is the document order of sampleDataset's party lists. It is
// deliberately not sorted, so a store that reorders keys fails.
var partyOrder = []string{"自民", "立憲", "公明"}

func TestIDsAreStable(t *testing.T) {
	assert.Equal(t, PrefectureID("13"), PrefectureID("13"))
	assert.NotEqual(t, PrefectureID("13"), BlockID("13"))
	assert.Equal(t, uint8(5), uint8(PrefectureID("13").Version()))
}

func TestRows(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	prefs, blocks, err := Rows(sampleDataset(), now)
	require.NoError(t, err)

	require.Len(t, prefs, 1)
	p := prefs[0]
	assert.Equal(t, PrefectureID("13"), p.ID)
	assert.Equal(t, "東京都", p.Name)
	assert.Equal(t, "東京", p.BlockName)
	assert.Equal(t, 1, p.DistrictCount)
	assert.Equal(t, now, p.ImportedAt)

	var detail electiondocs.Prefecture
	require.NoError(t, json.Unmarshal(p.Detail, &detail))
	assert.Equal(t, "13", detail.Code)

	require.Len(t, blocks, 1)
	assert.Equal(t, 19, blocks[0].Seats)
	assert.Equal(t, 0, blocks[0].Position)

	var b electiondocs.Block
	require.NoError(t, json.Unmarshal(blocks[0].Detail, &b))
	assert.Equal(t, partyOrder, b.PartyLists.Parties())
}

func TestImportNilDB(t *testing.T) {
	assert.Error(t, Import(nil, sampleDataset(), ImportOptions{}, zap.NewNop()))
}

// TestImportRoundTrip needs a scratch Postgres database.
func TestImportRoundTrip(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	d, err := db.Connect(dsn, false)
	require.NoError(t, err)
	require.NoError(t, Migrate(d))

	ds := sampleDataset()
	require.NoError(t, Import(d, ds, ImportOptions{Wipe: true}, zap.NewNop()))
	// Second run upserts in place.
	require.NoError(t, Import(d, ds, ImportOptions{}, zap.NewNop()))

	ctx := context.Background()
	s := NewStore(d)

	summaries, err := s.ListPrefectures(ctx)
	require.NoError(t, err)
	assert.Equal(t, ds.Summaries, summaries)

	p, err := s.GetPrefecture(ctx, "13")
	require.NoError(t, err)
	assert.Equal(t, ds.Prefectures[0].Issues, p.Issues)

	b, err := s.GetBlock(ctx, "05")
	require.NoError(t, err)
	assert.Equal(t, 19, b.Seats)
	assert.Equal(t, partyOrder, b.PartyLists.Parties())

	blocks, err := s.ListBlocks(ctx)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, partyOrder, blocks[0].PartyLists.Parties())

	_, err = s.GetBlock(ctx, "99")
	assert.ErrorIs(t, err, dataset.ErrNotFound)
}
