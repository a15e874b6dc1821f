package generate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/EmpoweredVote/senkyo-guide/internal/logging"
	"go.uber.org/zap"
)

// Output file layout of the generated-data directory.
const (
	PrefecturesFile = "prefectures.json"
	BlocksFile      = "blocks.json"
	DistrictsDir    = "districts"
)

// DetailFile is the per-prefecture file name for code.
func DetailFile(code string) string {
	return filepath.Join(DistrictsDir, code+".json")
}

// Write persists ds under outDir: the summary list, the block list and one
// full record per prefecture.
func Write(ds Dataset, outDir string, log *zap.Logger) error {
	if err := os.MkdirAll(filepath.Join(outDir, DistrictsDir), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, p := range ds.Prefectures {
		if err := writeJSON(filepath.Join(outDir, DetailFile(p.Code)), p, log); err != nil {
			return err
		}
	}
	if err := writeJSON(filepath.Join(outDir, PrefecturesFile), ds.Summaries, log); err != nil {
		return err
	}
	return writeJSON(filepath.Join(outDir, BlocksFile), ds.Blocks, log)
}

func writeJSON(path string, v any, log *zap.Logger) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logging.LogWrite(log, path, len(data))
	return nil
}
