package electiondocs

import (
	"regexp"
	"strconv"
	"strings"
)

// ws matches one run of whitespace, including the ideographic space.
const ws = `[\s\x{3000}]`

var (
	// 山田太郎（自民） ████░░ 48.3% 12,345票 当選
	resultLineRe = regexp.MustCompile(`^(.+?)（(.+?)）` + ws + `+[█░]+` + ws + `+([\d.]+)%` + ws + `+([\d,]+)票` + ws + `*(.*)`)

	turnoutRe  = regexp.MustCompile(`投票率:` + ws + `*([\d.]+)%`)
	marginRe   = regexp.MustCompile(`票差:` + ws + `*([\d,]+)票`)
	marginPtRe = regexp.MustCompile(`([\d.]+)pt差`)

	// 山田太郎（自民・現職、52歳） 衆議院議員、当選3回
	candidateLineRe = regexp.MustCompile(`^(.+?)（(.+?)・(.+?)(?:、(\d+)歳)?）` + ws + `+(.*)`)
	winsRe          = regexp.MustCompile(`当選(\d+)回`)
	winsStripRe     = regexp.MustCompile(`、?当選\d+回`)
)

const (
	electedToken      = "当選"
	proportionalToken = "比例"
)

// ClassifyStatus maps the trailing text of a result line to a status.
// "当選" is checked before "比例", so text carrying both reads as elected.
func ClassifyStatus(trailing string) CandidateStatus {
	switch {
	case strings.Contains(trailing, electedToken):
		return StatusElected
	case strings.Contains(trailing, proportionalToken):
		return StatusProportional
	default:
		return StatusLost
	}
}

// ParseResultLine parses one historical candidate line.
func ParseResultLine(line string) (Candidate, bool) {
	m := resultLineRe.FindStringSubmatch(line)
	if m == nil {
		return Candidate{}, false
	}
	c := Candidate{
		Name:   strings.TrimSpace(m[1]),
		Party:  strings.TrimSpace(m[2]),
		Status: ClassifyStatus(m[5]),
	}
	if pct, ok := parseLeadingFloat(m[3]); ok {
		c.Percentage = &pct
	}
	if votes, ok := parseLeadingInt(stripThousands(m[4])); ok {
		c.Votes = &votes
	}
	return c, true
}

// ParseResult2024 reads the fenced result block of a district. Candidate
// lines keep document order; aggregate lines may appear anywhere.
func ParseResult2024(block string) ElectionResult {
	res := ElectionResult{Candidates: []Candidate{}}
	for _, line := range splitLines(block) {
		if c, ok := ParseResultLine(line); ok {
			res.Candidates = append(res.Candidates, c)
			continue
		}
		if m := turnoutRe.FindStringSubmatch(line); m != nil {
			if v, ok := parseLeadingFloat(m[1]); ok {
				res.Turnout = &v
			}
		}
		if m := marginRe.FindStringSubmatch(line); m != nil {
			if v, ok := parseLeadingInt(stripThousands(m[1])); ok {
				res.Margin = &v
			}
		}
		if m := marginPtRe.FindStringSubmatch(line); m != nil {
			if v, ok := parseLeadingFloat(m[1]); ok {
				res.MarginPt = &v
			}
		}
	}
	return res
}

// ParseCandidateLine parses one forward-looking candidate line.
func ParseCandidateLine(line string) (Candidate2026, bool) {
	m := candidateLineRe.FindStringSubmatch(line)
	if m == nil {
		return Candidate2026{}, false
	}
	c := Candidate2026{
		Name:   strings.TrimSpace(m[1]),
		Party:  strings.TrimSpace(m[2]),
		Status: strings.TrimSpace(m[3]),
	}
	if m[4] != "" {
		if age, err := strconv.Atoi(m[4]); err == nil {
			c.Age = &age
		}
	}
	trailing := strings.TrimSpace(m[5])
	if w := winsRe.FindStringSubmatch(trailing); w != nil {
		if wins, err := strconv.Atoi(w[1]); err == nil {
			c.Wins = &wins
		}
	}
	title := trailing
	if loc := winsStripRe.FindStringIndex(title); loc != nil {
		title = title[:loc[0]] + title[loc[1]:]
	}
	c.Title = strings.TrimSpace(title)
	return c, true
}

// ParseCandidates2026 reads the fenced forward-looking block of a district.
func ParseCandidates2026(block string) []Candidate2026 {
	out := []Candidate2026{}
	for _, line := range splitLines(block) {
		if c, ok := ParseCandidateLine(line); ok {
			out = append(out, c)
		}
	}
	return out
}
