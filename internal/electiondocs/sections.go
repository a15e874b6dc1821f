package electiondocs

import (
	"regexp"
	"strconv"
	"strings"
)

// Section delimiters. A section body runs from the end of its heading to the
// first of its terminators; a section whose heading or terminator is missing
// yields "".
const (
	ruleDelim       = "\n---"
	subHeadingDelim = "\n### "
	headingDelim    = "\n## "
	fence           = "```"
)

var (
	titleRe    = regexp.MustCompile(`(?m)^# (.+)$`)
	mapImageRe = regexp.MustCompile(`!\[区割り図\]\(\.\./images/(.+?)\)`)
	issueRe    = regexp.MustCompile(`### (.+)`)
	districtRe = regexp.MustCompile(`## 第(\d+)区`)
	leadingNum = regexp.MustCompile(`^[+-]?\d+`)
	leadingDec = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)`)
)

// bodyUntil returns the text between the end of heading and the first
// occurrence of stop after it.
func bodyUntil(text, heading, stop string) (string, bool) {
	i := strings.Index(text, heading)
	if i < 0 {
		return "", false
	}
	rest := text[i+len(heading):]
	j := strings.Index(rest, stop)
	if j < 0 {
		return "", false
	}
	return rest[:j], true
}

// bodyUntilAny is bodyUntil with several terminators, the earliest winning.
// End of text always terminates.
func bodyUntilAny(rest string, stops ...string) string {
	end := len(rest)
	for _, s := range stops {
		if j := strings.Index(rest, s); j >= 0 && j < end {
			end = j
		}
	}
	return rest[:end]
}

// headingBody returns the trimmed body of a heading that must be followed by
// a blank line, up to stop.
func headingBody(text, heading, stop string) string {
	body, ok := bodyUntil(text, heading+"\n\n", stop)
	if !ok {
		return ""
	}
	return strings.TrimSpace(body)
}

// fencedBlock returns the raw contents of the code fence opened directly
// under heading.
func fencedBlock(section, heading string) (string, bool) {
	return bodyUntil(section, heading+"\n\n"+fence+"\n", fence)
}

// textAfterFence returns the prose that follows the code fence under heading.
// The fence must be closed by a line followed by a blank line; the prose ends
// at a rule, the next top-level heading or the end of the section.
func textAfterFence(section, heading string) string {
	open := heading + "\n\n" + fence
	i := strings.Index(section, open)
	if i < 0 {
		return ""
	}
	rest := section[i+len(open):]
	for {
		j := strings.Index(rest, fence)
		if j < 0 {
			return ""
		}
		rest = rest[j+len(fence):]
		if strings.HasPrefix(rest, "\n\n") {
			return strings.TrimSpace(bodyUntilAny(rest[2:], ruleDelim, headingDelim))
		}
	}
}

// splitLines returns the non-blank lines of block.
func splitLines(block string) []string {
	var out []string
	for _, l := range strings.Split(block, "\n") {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// parseLeadingInt reads the integer prefix of s, ignoring anything after it.
func parseLeadingInt(s string) (int, bool) {
	m := leadingNum.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseLeadingFloat reads the decimal prefix of s ("48.3.1" reads as 48.3).
func parseLeadingFloat(s string) (float64, bool) {
	m := leadingDec.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func stripThousands(s string) string {
	return strings.ReplaceAll(s, ",", "")
}
