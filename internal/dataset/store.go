// Package dataset is the read side of the generated data: the four lookups
// the presentation layer relies on, behind a Store interface.
package dataset

import (
	"context"
	"errors"

	"github.com/EmpoweredVote/senkyo-guide/internal/electiondocs"
)

// ErrNotFound is returned for an unknown block or prefecture code.
var ErrNotFound = errors.New("not found")

// Store serves generated election records.
type Store interface {
	// ListPrefectures returns every summary in traversal order.
	ListPrefectures(ctx context.Context) ([]electiondocs.PrefectureSummary, error)

	// ListBlocks returns every block in traversal order.
	ListBlocks(ctx context.Context) ([]electiondocs.Block, error)

	// GetBlock returns one block, or ErrNotFound.
	GetBlock(ctx context.Context, code string) (electiondocs.Block, error)

	// GetPrefecture returns one full prefecture record, or ErrNotFound when
	// the code is unknown or its record cannot be read.
	GetPrefecture(ctx context.Context, code string) (electiondocs.Prefecture, error)
}
