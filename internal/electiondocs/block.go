package electiondocs

import (
	"regexp"
	"strings"

	"github.com/EmpoweredVote/senkyo-guide/internal/registry"
)

const (
	headSituation2026 = "## 2026年選挙の構図\n"
	headPartyLists    = "## 各党の比例名簿"
	totalRowLabel     = "合計"
)

var (
	compositionRe = regexp.MustCompile(`構成:` + ws + `*(.+)`)
	seatsRe       = regexp.MustCompile(`定数:` + ws + `*(\d+)議席`)
	// Heading, the table header row, then every consecutive "|" row.
	seatTableRe = regexp.MustCompile(`## 2024年選挙結果\n\|[\s\S]*?\n((?:\|.*\n)+)`)
	separatorRe = regexp.MustCompile(`^:?-+:?$`)
	partyHeadRe = regexp.MustCompile(`^### (.+)`)
)

// ExtractBlock maps a block-level document to its record. Like
// ExtractPrefecture it never fails.
func ExtractBlock(text string, info registry.BlockInfo) Block {
	text = normalizeNewlines(text)

	b := Block{
		Code:        info.Code,
		DirName:     info.DirName,
		Name:        info.Name,
		Results2024: []BlockSeat{},
	}
	if m := compositionRe.FindStringSubmatch(text); m != nil {
		b.Composition = m[1]
	}
	if m := seatsRe.FindStringSubmatch(text); m != nil {
		b.Seats, _ = parseLeadingInt(m[1])
	}
	b.Results2024 = extractSeatTable(text)
	if i := strings.Index(text, headSituation2026); i >= 0 {
		rest := text[i+len(headSituation2026):]
		b.Situation2026 = strings.TrimSpace(bodyUntilAny(rest, headingDelim))
	}
	b.PartyLists = extractPartyLists(text)
	return b
}

func extractSeatTable(text string) []BlockSeat {
	seats := []BlockSeat{}
	m := seatTableRe.FindStringSubmatch(text)
	if m == nil {
		return seats
	}
	for _, row := range strings.Split(strings.TrimSpace(m[1]), "\n") {
		cols := splitRow(row)
		if len(cols) < 2 || cols[0] == totalRowLabel || isSeparatorRow(cols) {
			continue
		}
		n, _ := parseLeadingInt(cols[1])
		seats = append(seats, BlockSeat{Party: cols[0], Seats: n})
	}
	return seats
}

// splitRow splits a table row on "|" and keeps the non-empty trimmed cells.
func splitRow(row string) []string {
	var cols []string
	for _, c := range strings.Split(row, "|") {
		if c = strings.TrimSpace(c); c != "" {
			cols = append(cols, c)
		}
	}
	return cols
}

// isSeparatorRow reports a "|---|---|" alignment row. These are not seat
// rows and are dropped rather than read as a zero-seat party "---".
func isSeparatorRow(cols []string) bool {
	for _, c := range cols {
		if !separatorRe.MatchString(c) {
			return false
		}
	}
	return true
}

// extractPartyLists groups the lines after the party-list heading under the
// most recent "### <party>" heading.
func extractPartyLists(text string) PartyLists {
	var lists PartyLists
	i := strings.Index(text, headPartyLists)
	if i < 0 {
		return lists
	}
	current := ""
	for _, line := range strings.Split(text[i:], "\n") {
		if m := partyHeadRe.FindStringSubmatch(line); m != nil {
			current = m[1]
			lists.Set(current, []string{})
			continue
		}
		if current != "" && strings.TrimSpace(line) != "" && !strings.HasPrefix(line, "#") {
			lists.Append(current, strings.TrimSpace(line))
		}
	}
	return lists
}
