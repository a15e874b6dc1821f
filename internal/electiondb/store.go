package electiondb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/EmpoweredVote/senkyo-guide/internal/dataset"
	"github.com/EmpoweredVote/senkyo-guide/internal/electiondocs"
	"gorm.io/gorm"
)

// Store serves records imported by Import.
type Store struct {
	db *gorm.DB
}

var _ dataset.Store = (*Store)(nil)

func NewStore(d *gorm.DB) *Store {
	return &Store{db: d}
}

func (s *Store) ListPrefectures(ctx context.Context) ([]electiondocs.PrefectureSummary, error) {
	var rows []PrefectureRow
	if err := s.db.WithContext(ctx).
		Select("code", "name", "block_code", "block_name", "district_count").
		Order("position").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list prefectures: %w", err)
	}
	out := make([]electiondocs.PrefectureSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, electiondocs.PrefectureSummary{
			Code:          r.Code,
			Name:          r.Name,
			BlockCode:     r.BlockCode,
			BlockName:     r.BlockName,
			DistrictCount: r.DistrictCount,
		})
	}
	return out, nil
}

func (s *Store) ListBlocks(ctx context.Context) ([]electiondocs.Block, error) {
	var rows []BlockRow
	if err := s.db.WithContext(ctx).Order("position").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	out := make([]electiondocs.Block, 0, len(rows))
	for _, r := range rows {
		var b electiondocs.Block
		if err := json.Unmarshal(r.Detail, &b); err != nil {
			return nil, fmt.Errorf("decode block %s: %w", r.Code, err)
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *Store) GetBlock(ctx context.Context, code string) (electiondocs.Block, error) {
	var row BlockRow
	if err := s.db.WithContext(ctx).First(&row, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return electiondocs.Block{}, dataset.ErrNotFound
		}
		return electiondocs.Block{}, fmt.Errorf("get block %s: %w", code, err)
	}
	var b electiondocs.Block
	if err := json.Unmarshal(row.Detail, &b); err != nil {
		return electiondocs.Block{}, fmt.Errorf("decode block %s: %w", code, err)
	}
	return b, nil
}

func (s *Store) GetPrefecture(ctx context.Context, code string) (electiondocs.Prefecture, error) {
	var row PrefectureRow
	if err := s.db.WithContext(ctx).First(&row, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return electiondocs.Prefecture{}, dataset.ErrNotFound
		}
		return electiondocs.Prefecture{}, fmt.Errorf("get prefecture %s: %w", code, err)
	}
	var p electiondocs.Prefecture
	if err := json.Unmarshal(row.Detail, &p); err != nil {
		return electiondocs.Prefecture{}, dataset.ErrNotFound
	}
	return p, nil
}
