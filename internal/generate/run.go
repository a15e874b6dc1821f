// Package generate runs the document-to-data pass: it extracts every block
// and prefecture document of the docs tree, derives the summary index,
// checks the dataset invariants and writes the generated-data directory.
package generate

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Options configures one pass.
type Options struct {
	DocsDir string
	OutDir  string
	// Strict fails the run when validation reports issues.
	Strict bool
	// DryRun extracts and validates without writing.
	DryRun bool
}

// Run executes one pass. Extraction problems are logged and degrade the
// output; only an unusable docs root, a strict validation failure or a
// failed write return an error.
func Run(opts Options, log *zap.Logger) (Dataset, Report, error) {
	st, err := os.Stat(opts.DocsDir)
	if err != nil {
		return Dataset{}, Report{}, fmt.Errorf("docs dir: %w", err)
	}
	if !st.IsDir() {
		return Dataset{}, Report{}, fmt.Errorf("docs dir %s is not a directory", opts.DocsDir)
	}

	ds, rep := Extract(os.DirFS(opts.DocsDir), log)
	rep.Issues = Validate(ds)
	for _, is := range rep.Issues {
		log.Warn("validation issue",
			zap.String("kind", is.Kind),
			zap.String("code", is.Code),
			zap.String("issue", is.Message))
	}
	if opts.Strict && len(rep.Issues) > 0 {
		return ds, rep, fmt.Errorf("%w: %d issues", ErrInvalidDataset, len(rep.Issues))
	}

	if !opts.DryRun {
		if err := Write(ds, opts.OutDir, log); err != nil {
			return ds, rep, err
		}
	}

	log.Info("generation complete",
		zap.Int("prefectures", rep.Prefectures),
		zap.Int("blocks", rep.Blocks),
		zap.Int("districts", rep.Districts),
		zap.Int("skipped", len(rep.Skipped)),
		zap.Int("issues", len(rep.Issues)))
	return ds, rep, nil
}
