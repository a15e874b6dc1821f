package electiondocs

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var jaPrinter = message.NewPrinter(language.Japanese)

// barWidth is the number of glyphs in a rendered vote bar.
const barWidth = 20

// statusText is the trailing text written for each status.
var statusText = map[CandidateStatus]string{
	StatusElected:      "当選",
	StatusProportional: "比例復活",
	StatusLost:         "",
}

// FormatVotes renders n with Japanese thousands grouping ("12,345").
func FormatVotes(n int) string {
	return jaPrinter.Sprintf("%d", n)
}

// VoteBar renders a fixed-width bar for pct (0-100).
func VoteBar(pct float64) string {
	filled := int(pct/100*barWidth + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// FormatResultLine renders c in the historical-candidate line grammar. It
// returns false when the candidate lacks the numbers the grammar requires.
func FormatResultLine(c Candidate) (string, bool) {
	if c.Percentage == nil || c.Votes == nil {
		return "", false
	}
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteString("（" + c.Party + "） ")
	b.WriteString(VoteBar(*c.Percentage))
	b.WriteString(" " + strconv.FormatFloat(*c.Percentage, 'f', -1, 64) + "%")
	b.WriteString(" " + FormatVotes(*c.Votes) + "票")
	if s := statusText[c.Status]; s != "" {
		b.WriteString(" " + s)
	}
	return b.String(), true
}

// FormatCandidate2026Line renders c in the forward-looking line grammar.
func FormatCandidate2026Line(c Candidate2026) string {
	var b strings.Builder
	b.WriteString(c.Name + "（" + c.Party + "・" + c.Status)
	if c.Age != nil {
		b.WriteString("、" + strconv.Itoa(*c.Age) + "歳")
	}
	b.WriteString("） ")
	b.WriteString(c.Title)
	if c.Wins != nil {
		if c.Title != "" {
			b.WriteString("、")
		}
		b.WriteString("当選" + strconv.Itoa(*c.Wins) + "回")
	}
	return b.String()
}

// FormatResult2024 renders r as the contents of a result fence.
func FormatResult2024(r ElectionResult) string {
	var lines []string
	for _, c := range r.Candidates {
		if l, ok := FormatResultLine(c); ok {
			lines = append(lines, l)
		}
	}
	var agg []string
	if r.Turnout != nil {
		agg = append(agg, "投票率: "+strconv.FormatFloat(*r.Turnout, 'f', -1, 64)+"%")
	}
	if r.Margin != nil {
		agg = append(agg, "票差: "+FormatVotes(*r.Margin)+"票")
	}
	if r.MarginPt != nil {
		agg = append(agg, "("+strconv.FormatFloat(*r.MarginPt, 'f', -1, 64)+"pt差)")
	}
	if len(agg) > 0 {
		lines = append(lines, "", strings.Join(agg, " / "))
	}
	return strings.Join(lines, "\n") + "\n"
}
