package electiondocs

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/EmpoweredVote/senkyo-guide/internal/registry"
)

// Headings of a prefecture document.
const (
	headBasicInfo       = "## 基本情報"
	headCharacteristics = "## 選挙の特徴"
	subRegion           = "### 地域構成"
	subCharacteristics  = "### 選挙区の特徴"
	subResult2024       = "### 2024年選挙結果"
	subOutlook2026      = "### 2026年選挙の構図"
)

// The issues heading carries a free prefix ("## 東京都の政治的争点").
var issuesHeadRe = regexp.MustCompile(`## .+?政治的争点\n\n`)

// ExtractPrefecture maps a prefecture document to its record. It never fails:
// a section that cannot be found leaves its field empty.
func ExtractPrefecture(text, code, blockCode string) Prefecture {
	text = normalizeNewlines(text)

	p := Prefecture{
		Code:      code,
		BlockCode: blockCode,
		BlockName: registry.BlockName(blockCode),
		Issues:    []string{},
		Districts: []District{},
	}
	if m := titleRe.FindStringSubmatch(text); m != nil {
		p.Name = m[1]
	}
	if m := mapImageRe.FindStringSubmatch(text); m != nil {
		p.MapImage = m[1]
	}
	p.BasicInfo = headingBody(text, headBasicInfo, ruleDelim)
	p.Issues = extractIssues(text)
	p.ElectionCharacteristics = headingBody(text, headCharacteristics, ruleDelim)

	for _, sec := range districtSections(text) {
		p.Districts = append(p.Districts, extractDistrict(sec.number, sec.body))
	}
	return p
}

func extractIssues(text string) []string {
	issues := []string{}
	loc := issuesHeadRe.FindStringIndex(text)
	if loc == nil {
		return issues
	}
	rest := text[loc[1]:]
	end := strings.Index(rest, ruleDelim)
	if end < 0 {
		return issues
	}
	for _, m := range issueRe.FindAllStringSubmatch(rest[:end], -1) {
		issues = append(issues, m[1])
	}
	return issues
}

type districtSection struct {
	number int
	body   string
}

// districtSections splits text at every "## 第N区" heading; each section runs
// to the next such heading or the end of the document.
func districtSections(text string) []districtSection {
	locs := districtRe.FindAllStringSubmatchIndex(text, -1)
	out := make([]districtSection, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		n, err := strconv.Atoi(text[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		out = append(out, districtSection{number: n, body: text[loc[0]:end]})
	}
	return out
}

func extractDistrict(number int, section string) District {
	d := District{
		Number:            number,
		RegionDescription: headingBody(section, subRegion, subHeadingDelim),
		Characteristics:   headingBody(section, subCharacteristics, subHeadingDelim),
		Result2024:        ElectionResult{Candidates: []Candidate{}},
		Candidates2026:    []Candidate2026{},
		Analysis2026:      textAfterFence(section, subOutlook2026),
	}
	if block, ok := fencedBlock(section, subResult2024); ok {
		d.Result2024 = ParseResult2024(block)
	}
	if block, ok := fencedBlock(section, subOutlook2026); ok {
		d.Candidates2026 = ParseCandidates2026(block)
	}
	return d
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	return strings.ReplaceAll(s, "\r\n", "\n")
}
