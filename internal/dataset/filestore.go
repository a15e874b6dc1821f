package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/EmpoweredVote/senkyo-guide/internal/electiondocs"
	"github.com/EmpoweredVote/senkyo-guide/internal/generate"
	"go.uber.org/zap"
)

// FileStore reads a generated-data directory. Summaries and blocks are
// loaded once at open; prefecture details are read on demand through a
// code -> path table built at open.
type FileStore struct {
	summaries []electiondocs.PrefectureSummary
	blocks    []electiondocs.Block
	blockIdx  map[string]int
	details   map[string]string
	log       *zap.Logger
}

// OpenFileStore loads dir, as written by generate.Write.
func OpenFileStore(dir string, log *zap.Logger) (*FileStore, error) {
	s := &FileStore{
		blockIdx: map[string]int{},
		details:  map[string]string{},
		log:      log,
	}
	if err := readJSON(filepath.Join(dir, generate.PrefecturesFile), &s.summaries); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, generate.BlocksFile), &s.blocks); err != nil {
		return nil, err
	}
	if s.summaries == nil {
		s.summaries = []electiondocs.PrefectureSummary{}
	}
	if s.blocks == nil {
		s.blocks = []electiondocs.Block{}
	}
	for i, b := range s.blocks {
		s.blockIdx[b.Code] = i
	}

	entries, err := os.ReadDir(filepath.Join(dir, generate.DistrictsDir))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("list details: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		code := strings.TrimSuffix(e.Name(), ".json")
		s.details[code] = filepath.Join(dir, generate.DistrictsDir, e.Name())
	}
	return s, nil
}

// ListPrefectures returns a copy; callers may modify it freely.
func (s *FileStore) ListPrefectures(ctx context.Context) ([]electiondocs.PrefectureSummary, error) {
	out := make([]electiondocs.PrefectureSummary, len(s.summaries))
	copy(out, s.summaries)
	return out, nil
}

// ListBlocks returns a copy of the block slice. Party lists inside each block
// are still shared and must be treated as read-only.
func (s *FileStore) ListBlocks(ctx context.Context) ([]electiondocs.Block, error) {
	out := make([]electiondocs.Block, len(s.blocks))
	copy(out, s.blocks)
	return out, nil
}

func (s *FileStore) GetBlock(ctx context.Context, code string) (electiondocs.Block, error) {
	i, ok := s.blockIdx[code]
	if !ok {
		return electiondocs.Block{}, ErrNotFound
	}
	return s.blocks[i], nil
}

func (s *FileStore) GetPrefecture(ctx context.Context, code string) (electiondocs.Prefecture, error) {
	path, ok := s.details[code]
	if !ok {
		return electiondocs.Prefecture{}, ErrNotFound
	}
	var p electiondocs.Prefecture
	if err := readJSON(path, &p); err != nil {
		s.log.Warn("prefecture detail unreadable", zap.String("code", code), zap.Error(err))
		return electiondocs.Prefecture{}, ErrNotFound
	}
	return p, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
