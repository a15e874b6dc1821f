package guide

import "github.com/EmpoweredVote/senkyo-guide/internal/registry"

// MapTile is one square of the tile map of Japan.
type MapTile struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	BlockCode string `json:"blockCode"`
	Col       int    `json:"col"`
	Row       int    `json:"row"`
	Color     string `json:"color"`
	HasData   bool   `json:"hasData"`
}

type MapResponse struct {
	Blocks []registry.BlockInfo `json:"blocks"`
	Tiles  []MapTile            `json:"tiles"`
}

type PartyColorsResponse struct {
	Colors   []registry.PartyColor `json:"colors"`
	Fallback string                `json:"fallback"`
}
