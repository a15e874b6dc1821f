package electiondocs

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CandidateStatus is the outcome tag of a historical district candidate.
type CandidateStatus string

const (
	StatusElected      CandidateStatus = "elected"
	StatusProportional CandidateStatus = "proportional"
	StatusLost         CandidateStatus = "lost"
)

// Candidate is one line of a district's 2024 result.
type Candidate struct {
	Name       string          `json:"name"`
	Party      string          `json:"party"`
	Percentage *float64        `json:"percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	Votes      *int            `json:"votes,omitempty" validate:"omitempty,gte=0"`
	Status     CandidateStatus `json:"status,omitempty" validate:"omitempty,oneof=elected proportional lost"`
}

// ElectionResult is a district's historical race. Optional aggregates are
// nil when the document does not state them.
type ElectionResult struct {
	Candidates []Candidate `json:"candidates" validate:"dive"`
	Turnout    *float64    `json:"turnout,omitempty"`
	Margin     *int        `json:"margin,omitempty" validate:"omitempty,gte=0"`
	MarginPt   *float64    `json:"marginPt,omitempty"`
}

// Candidate2026 is a forward-looking candidate entry.
type Candidate2026 struct {
	Name   string `json:"name"`
	Party  string `json:"party"`
	Status string `json:"status"` // 現職, 前職, 新人, 元職 ...
	Age    *int   `json:"age,omitempty" validate:"omitempty,gt=0"`
	Title  string `json:"title,omitempty"`
	Wins   *int   `json:"wins,omitempty" validate:"omitempty,gte=0"`
}

// District is a single-member constituency section of a prefecture document.
type District struct {
	Number            int             `json:"number" validate:"gt=0"`
	RegionDescription string          `json:"regionDescription"`
	Characteristics   string          `json:"characteristics"`
	Result2024        ElectionResult  `json:"result2024"`
	Candidates2026    []Candidate2026 `json:"candidates2026" validate:"dive"`
	Analysis2026      string          `json:"analysis2026"`
}

// Prefecture is the full record extracted from one prefecture document.
type Prefecture struct {
	Code                    string     `json:"code" validate:"len=2,numeric"`
	Name                    string     `json:"name"`
	BlockCode               string     `json:"blockCode" validate:"len=2,numeric,knownblock"`
	BlockName               string     `json:"blockName"`
	BasicInfo               string     `json:"basicInfo"`
	Issues                  []string   `json:"issues"`
	ElectionCharacteristics string     `json:"electionCharacteristics"`
	Districts               []District `json:"districts" validate:"dive"`
	MapImage                string     `json:"mapImage,omitempty"`
}

// PrefectureSummary is the index projection of a Prefecture.
type PrefectureSummary struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	BlockCode     string `json:"blockCode"`
	BlockName     string `json:"blockName"`
	DistrictCount int    `json:"districtCount"`
}

// Summary projects p for index views.
func (p Prefecture) Summary() PrefectureSummary {
	return PrefectureSummary{
		Code:          p.Code,
		Name:          p.Name,
		BlockCode:     p.BlockCode,
		BlockName:     p.BlockName,
		DistrictCount: len(p.Districts),
	}
}

// BlockSeat is one row of a block's seat table.
type BlockSeat struct {
	Party string `json:"party"`
	Seats int    `json:"seats" validate:"gte=0"`
}

// Block is the record extracted from a block-level document.
type Block struct {
	Code          string      `json:"code" validate:"len=2,numeric,knownblock"`
	DirName       string      `json:"dirName"`
	Name          string      `json:"name"`
	Composition   string      `json:"composition"`
	Seats         int         `json:"seats" validate:"gte=0"`
	Results2024   []BlockSeat `json:"results2024" validate:"dive"`
	Situation2026 string      `json:"situation2026"`
	PartyLists    PartyLists  `json:"partyLists"`
}

// SeatTotal sums the seat table.
func (b Block) SeatTotal() int {
	n := 0
	for _, s := range b.Results2024 {
		n += s.Seats
	}
	return n
}

// PartyLists maps a party to its ranked proportional list. Parties keep the
// order they appear in the document, including in JSON.
type PartyLists struct {
	order []string
	lists map[string][]string
}

// Set replaces the list for party, appending party to the order if new.
func (pl *PartyLists) Set(party string, names []string) {
	if pl.lists == nil {
		pl.lists = map[string][]string{}
	}
	if _, ok := pl.lists[party]; !ok {
		pl.order = append(pl.order, party)
	}
	pl.lists[party] = names
}

// Append adds name to the end of party's list.
func (pl *PartyLists) Append(party, name string) {
	if _, ok := pl.lists[party]; !ok {
		pl.Set(party, nil)
	}
	pl.lists[party] = append(pl.lists[party], name)
}

// Get returns party's list.
func (pl PartyLists) Get(party string) ([]string, bool) {
	l, ok := pl.lists[party]
	return l, ok
}

// Parties returns the party names in document order.
func (pl PartyLists) Parties() []string {
	out := make([]string, len(pl.order))
	copy(out, pl.order)
	return out
}

// Len is the number of parties.
func (pl PartyLists) Len() int { return len(pl.order) }

func (pl PartyLists) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, party := range pl.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(party)
		if err != nil {
			return nil, err
		}
		names := pl.lists[party]
		if names == nil {
			names = []string{}
		}
		v, err := json.Marshal(names)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (pl *PartyLists) UnmarshalJSON(data []byte) error {
	*pl = PartyLists{}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("partyLists: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		party, ok := tok.(string)
		if !ok {
			return fmt.Errorf("partyLists: expected key, got %v", tok)
		}
		var names []string
		if err := dec.Decode(&names); err != nil {
			return fmt.Errorf("partyLists %q: %w", party, err)
		}
		if names == nil {
			names = []string{}
		}
		pl.Set(party, names)
	}
	_, err = dec.Token()
	return err
}
