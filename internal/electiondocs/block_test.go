package electiondocs

import (
	"encoding/json"
	"testing"

	"github.com/EmpoweredVote/senkyo-guide/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blockDoc = `# 比例東京ブロック

構成: 東京都
定数: 8議席

## 2024年選挙結果
| 政党 | 議席 |
|------|------|
| 自民 | 5 |
| 立憲 | 3 |
| 合計 | 8 |

## 2026年選挙の構図
与野党が拮抗。

新党の動向が焦点。

## 各党の比例名簿

### 自民
1. 山田太郎
2. 鈴木一郎

### 立憲
1. 佐藤花子
`

func tokyo(t *testing.T) registry.BlockInfo {
	t.Helper()
	b, ok := registry.Block("05")
	require.True(t, ok)
	return b
}

func TestExtractBlock(t *testing.T) {
	b := ExtractBlock(blockDoc, tokyo(t))

	assert.Equal(t, "05", b.Code)
	assert.Equal(t, "05_tokyo", b.DirName)
	assert.Equal(t, "東京", b.Name)
	assert.Equal(t, "東京都", b.Composition)
	assert.Equal(t, 8, b.Seats)
	assert.Equal(t, []BlockSeat{{Party: "自民", Seats: 5}, {Party: "立憲", Seats: 3}}, b.Results2024)
	assert.LessOrEqual(t, b.SeatTotal(), b.Seats)
	assert.Equal(t, "与野党が拮抗。\n\n新党の動向が焦点。", b.Situation2026)

	assert.Equal(t, []string{"自民", "立憲"}, b.PartyLists.Parties())
	ldp, ok := b.PartyLists.Get("自民")
	require.True(t, ok)
	assert.Equal(t, []string{"1. 山田太郎", "2. 鈴木一郎"}, ldp)
}

func TestExtractBlock_MissingSections(t *testing.T) {
	b := ExtractBlock("# 空のブロック\n", tokyo(t))
	assert.Equal(t, "", b.Composition)
	assert.Equal(t, 0, b.Seats)
	assert.NotNil(t, b.Results2024)
	assert.Empty(t, b.Results2024)
	assert.Equal(t, "", b.Situation2026)
	assert.Equal(t, 0, b.PartyLists.Len())

	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"partyLists":{}`)
	assert.Contains(t, string(out), `"results2024":[]`)
}

func TestExtractBlock_UnparsableSeatsReadAsZero(t *testing.T) {
	doc := "## 2024年選挙結果\n| 政党 | 議席 |\n| 自民 | - |\n| 国民 | 2議席 |\n"
	b := ExtractBlock(doc, tokyo(t))
	assert.Equal(t, []BlockSeat{{Party: "自民", Seats: 0}, {Party: "国民", Seats: 2}}, b.Results2024)
}

func TestExtractBlock_PartyListWithoutHeadings(t *testing.T) {
	b := ExtractBlock("## 各党の比例名簿\n\n未発表\n", tokyo(t))
	assert.Equal(t, 0, b.PartyLists.Len())
}

func TestPartyLists_JSONKeepsOrder(t *testing.T) {
	var pl PartyLists
	pl.Set("立憲", []string{"a"})
	pl.Append("自民", "b")
	pl.Append("自民", "c")
	pl.Set("維新", nil)

	out, err := json.Marshal(pl)
	require.NoError(t, err)
	assert.Equal(t, `{"立憲":["a"],"自民":["b","c"],"維新":[]}`, string(out))

	var back PartyLists
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, []string{"立憲", "自民", "維新"}, back.Parties())
	got, _ := back.Get("自民")
	assert.Equal(t, []string{"b", "c"}, got)
}

func TestPartyLists_UnmarshalNull(t *testing.T) {
	var pl PartyLists
	require.NoError(t, json.Unmarshal([]byte(`null`), &pl))
	assert.Equal(t, 0, pl.Len())
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &pl))
}

func TestExtractBlock_AlignmentRowsAreNotSeats(t *testing.T) {
	doc := "定数: 5議席\n\n## 2024年選挙結果\n| 政党 | 議席 |\n|:---|---:|\n| 自民 | 3 |\n| 公明 | 2 |\n\n"
	b := ExtractBlock(doc, tokyo(t))

	assert.Equal(t, []BlockSeat{{Party: "自民", Seats: 3}, {Party: "公明", Seats: 2}}, b.Results2024)
	for _, row := range b.Results2024 {
		assert.NotContains(t, row.Party, "---")
	}
}
