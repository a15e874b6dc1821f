// Package electiondocs turns the election documentation markdown into typed
// records.
//
// The documents follow a fixed authoring convention: headings delimit
// sections, district results and candidate lineups live in fenced blocks
// with one entry per line, and block seat tables are markdown tables. The
// extractors match that convention with regular expressions and never fail:
// a missing section leaves its field empty and a line that does not fit its
// grammar is skipped.
package electiondocs
