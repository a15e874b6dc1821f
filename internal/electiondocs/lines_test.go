package electiondocs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResultLine(t *testing.T) {
	c, ok := ParseResultLine("山田太郎（自民） ████ 48.3% 12,345票 当選")
	require.True(t, ok)
	assert.Equal(t, "山田太郎", c.Name)
	assert.Equal(t, "自民", c.Party)
	require.NotNil(t, c.Percentage)
	assert.Equal(t, 48.3, *c.Percentage)
	require.NotNil(t, c.Votes)
	assert.Equal(t, 12345, *c.Votes)
	assert.Equal(t, StatusElected, c.Status)
}

func TestParseResultLine_Statuses(t *testing.T) {
	tests := []struct {
		line string
		want CandidateStatus
	}{
		{"佐藤花子（立憲） ██░░ 40.1% 10,200票 比例復活", StatusProportional},
		{"鈴木一郎（維新） █░░░ 11.6% 2,950票", StatusLost},
		{"高橋次郎（共産） ░░░░ 0.5% 120票 落選", StatusLost},
		// 当選 outranks 比例 when both appear.
		{"田中三郎（公明） ██░░ 30.0% 8,000票 比例当選", StatusElected},
	}
	for _, tt := range tests {
		c, ok := ParseResultLine(tt.line)
		require.True(t, ok, tt.line)
		assert.Equal(t, tt.want, c.Status, tt.line)
	}
}

func TestParseResultLine_IdeographicSpace(t *testing.T) {
	c, ok := ParseResultLine("山田太郎（自民）　████　48.3%　12,345票")
	require.True(t, ok)
	assert.Equal(t, 12345, *c.Votes)
	assert.Equal(t, StatusLost, c.Status)
}

func TestParseResultLine_Mismatch(t *testing.T) {
	for _, line := range []string{
		"",
		"投票率: 55.2%",
		"山田太郎（自民） 48.3% 12,345票",
		"山田太郎 ████ 48.3% 12,345票",
	} {
		_, ok := ParseResultLine(line)
		assert.False(t, ok, line)
	}
}

func TestParseResult2024(t *testing.T) {
	block := `山田太郎（自民） ████████░░ 48.3% 12,345票 当選
佐藤花子（立憲） ██████░░░░ 40.1% 10,200票 比例復活

これは候補行ではない
投票率: 55.21% / 票差: 2,145票 / (8.2pt差)
`
	res := ParseResult2024(block)
	require.Len(t, res.Candidates, 2)
	assert.Equal(t, "山田太郎", res.Candidates[0].Name)
	assert.Equal(t, "佐藤花子", res.Candidates[1].Name)
	require.NotNil(t, res.Turnout)
	assert.Equal(t, 55.21, *res.Turnout)
	require.NotNil(t, res.Margin)
	assert.Equal(t, 2145, *res.Margin)
	require.NotNil(t, res.MarginPt)
	assert.Equal(t, 8.2, *res.MarginPt)
}

func TestParseResult2024_AbsentAggregates(t *testing.T) {
	res := ParseResult2024("山田太郎（自民） ████ 48.3% 12,345票 当選\n")
	assert.Nil(t, res.Turnout)
	assert.Nil(t, res.Margin)
	assert.Nil(t, res.MarginPt)

	empty := ParseResult2024("")
	assert.NotNil(t, empty.Candidates)
	assert.Empty(t, empty.Candidates)
}

func TestParseCandidateLine(t *testing.T) {
	c, ok := ParseCandidateLine("山田太郎（自民・現職、52歳） 衆議院議員、当選3回")
	require.True(t, ok)
	assert.Equal(t, "山田太郎", c.Name)
	assert.Equal(t, "自民", c.Party)
	assert.Equal(t, "現職", c.Status)
	require.NotNil(t, c.Age)
	assert.Equal(t, 52, *c.Age)
	assert.Equal(t, "衆議院議員", c.Title)
	require.NotNil(t, c.Wins)
	assert.Equal(t, 3, *c.Wins)
}

func TestParseCandidateLine_Optional(t *testing.T) {
	c, ok := ParseCandidateLine("鈴木一郎（維新・新人） 元市議会議員")
	require.True(t, ok)
	assert.Equal(t, "新人", c.Status)
	assert.Nil(t, c.Age)
	assert.Nil(t, c.Wins)
	assert.Equal(t, "元市議会議員", c.Title)

	c, ok = ParseCandidateLine("佐藤花子（立憲・前職、47歳） 当選2回")
	require.True(t, ok)
	assert.Equal(t, "", c.Title)
	require.NotNil(t, c.Wins)
	assert.Equal(t, 2, *c.Wins)
}

func TestParseCandidates2026_SkipsNonMatching(t *testing.T) {
	got := ParseCandidates2026("山田太郎（自民・現職、52歳） 衆議院議員\n※調整中\n\n鈴木一郎（維新・新人） 会社員\n")
	require.Len(t, got, 2)
	assert.Equal(t, "鈴木一郎", got[1].Name)
}

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, StatusElected, ClassifyStatus("当選"))
	assert.Equal(t, StatusProportional, ClassifyStatus("比例復活"))
	assert.Equal(t, StatusElected, ClassifyStatus("比例復活ではなく当選"))
	assert.Equal(t, StatusLost, ClassifyStatus(""))
}

func TestParseLeadingNumbers(t *testing.T) {
	n, ok := parseLeadingInt("5議席")
	assert.True(t, ok)
	assert.Equal(t, 5, n)

	_, ok = parseLeadingInt("-")
	assert.False(t, ok)

	f, ok := parseLeadingFloat("48.3.1")
	assert.True(t, ok)
	assert.Equal(t, 48.3, f)

	assert.Equal(t, "12345", stripThousands("12,345"))
}
