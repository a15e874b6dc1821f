// Package registry holds the fixed lookup tables of the guide: the eleven
// proportional blocks, prefecture names and their owning block, the tile map
// grid and party colours. Tables are parsed once from an embedded YAML file
// and never mutated afterwards.
package registry

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

//go:embed tables.yaml
var tablesYAML []byte

// BlockInfo describes one proportional-representation block.
type BlockInfo struct {
	Code    string `yaml:"code" json:"code"`
	DirName string `yaml:"dir" json:"dirName"`
	Name    string `yaml:"name" json:"name"`
	Color   string `yaml:"color" json:"color"`
}

// PrefectureInfo is a prefecture's static identity and map tile position.
type PrefectureInfo struct {
	Code      string `yaml:"code" json:"code"`
	Name      string `yaml:"name" json:"name"`
	BlockCode string `yaml:"block" json:"blockCode"`
	Col       int    `yaml:"col" json:"col"`
	Row       int    `yaml:"row" json:"row"`
}

// PartyColor maps a party label fragment to its display colour.
type PartyColor struct {
	Party string `yaml:"party" json:"party"`
	Color string `yaml:"color" json:"color"`
}

type tables struct {
	FallbackColor        string           `yaml:"fallback_color"`
	UnassignedBlockColor string           `yaml:"unassigned_block_color"`
	Blocks               []BlockInfo      `yaml:"blocks"`
	Prefectures          []PrefectureInfo `yaml:"prefectures"`
	PartyColors          []PartyColor     `yaml:"party_colors"`
}

var (
	tbl          tables
	blockByCode  map[string]BlockInfo
	prefByCode   map[string]PrefectureInfo
	prefsByBlock map[string][]PrefectureInfo
)

func init() {
	t, err := parseTables(tablesYAML)
	if err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
	tbl = t

	blockByCode = make(map[string]BlockInfo, len(t.Blocks))
	for _, b := range t.Blocks {
		blockByCode[b.Code] = b
	}
	prefByCode = make(map[string]PrefectureInfo, len(t.Prefectures))
	prefsByBlock = make(map[string][]PrefectureInfo, len(t.Blocks))
	for _, p := range t.Prefectures {
		prefByCode[p.Code] = p
		prefsByBlock[p.BlockCode] = append(prefsByBlock[p.BlockCode], p)
	}
}

func parseTables(data []byte) (tables, error) {
	var t tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return tables{}, fmt.Errorf("parse tables: %w", err)
	}
	known := make(map[string]bool, len(t.Blocks))
	for _, b := range t.Blocks {
		if known[b.Code] {
			return tables{}, fmt.Errorf("duplicate block code %q", b.Code)
		}
		known[b.Code] = true
	}
	for _, p := range t.Prefectures {
		if !known[p.BlockCode] {
			return tables{}, fmt.Errorf("prefecture %s references unknown block %q", p.Code, p.BlockCode)
		}
	}
	return t, nil
}

// Blocks returns the blocks in their defined sequence.
func Blocks() []BlockInfo {
	out := make([]BlockInfo, len(tbl.Blocks))
	copy(out, tbl.Blocks)
	return out
}

// Block looks up a block by its two-digit code.
func Block(code string) (BlockInfo, bool) {
	b, ok := blockByCode[code]
	return b, ok
}

// BlockName returns the block's display name, or "" for an unknown code.
func BlockName(code string) string {
	return blockByCode[code].Name
}

// Prefectures returns every prefecture in code order.
func Prefectures() []PrefectureInfo {
	out := make([]PrefectureInfo, len(tbl.Prefectures))
	copy(out, tbl.Prefectures)
	return out
}

// Prefecture looks up a prefecture by its two-digit code.
func Prefecture(code string) (PrefectureInfo, bool) {
	p, ok := prefByCode[code]
	return p, ok
}

// PrefecturesInBlock lists the prefectures a block is made of.
func PrefecturesInBlock(blockCode string) []PrefectureInfo {
	src := prefsByBlock[blockCode]
	out := make([]PrefectureInfo, len(src))
	copy(out, src)
	return out
}

// BlockForPrefecture returns the code of the block that owns a prefecture.
func BlockForPrefecture(prefCode string) (string, bool) {
	p, ok := prefByCode[prefCode]
	if !ok {
		return "", false
	}
	return p.BlockCode, true
}

// PartyColors returns the colour table in match order.
func PartyColors() []PartyColor {
	out := make([]PartyColor, len(tbl.PartyColors))
	copy(out, tbl.PartyColors)
	return out
}

// FallbackColor is used for parties with no entry.
func FallbackColor() string { return tbl.FallbackColor }

// ColorForParty returns the colour of the first entry whose label is
// contained in party.
func ColorForParty(party string) string {
	for _, pc := range tbl.PartyColors {
		if strings.Contains(party, pc.Party) {
			return pc.Color
		}
	}
	return tbl.FallbackColor
}

// ColorForPrefecture returns the map colour of the prefecture's block.
func ColorForPrefecture(prefCode string) string {
	p, ok := prefByCode[prefCode]
	if !ok {
		return tbl.UnassignedBlockColor
	}
	if b, ok := blockByCode[p.BlockCode]; ok {
		return b.Color
	}
	return tbl.UnassignedBlockColor
}
