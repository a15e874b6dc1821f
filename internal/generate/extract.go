package generate

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/EmpoweredVote/senkyo-guide/internal/electiondocs"
	"github.com/EmpoweredVote/senkyo-guide/internal/logging"
	"github.com/EmpoweredVote/senkyo-guide/internal/registry"
	"go.uber.org/zap"
)

const (
	blockFilePrefix = "00_hirei_"
	reservedPrefix  = "00_"
	docSuffix       = ".md"
)

var prefFileRe = regexp.MustCompile(`^(\d{2})_`)

// Dataset is the output of one generation pass.
type Dataset struct {
	Blocks      []electiondocs.Block
	Prefectures []electiondocs.Prefecture
	Summaries   []electiondocs.PrefectureSummary
}

// Report counts what a pass produced and what it left out.
type Report struct {
	Blocks      int
	Prefectures int
	Districts   int
	Skipped     []string
	Issues      []Issue
}

// Extract walks the document tree rooted at docs. Blocks are visited in
// registry order and prefecture documents in directory order. Documents that
// cannot be read are logged and left out; nothing here fails the pass.
func Extract(docs fs.FS, log *zap.Logger) (Dataset, Report) {
	ds := Dataset{
		Blocks:      []electiondocs.Block{},
		Prefectures: []electiondocs.Prefecture{},
	}
	var rep Report

	for _, info := range registry.Blocks() {
		entries, err := fs.ReadDir(docs, info.DirName)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logging.LogSkip(log, "block directory", info.DirName, err)
				rep.Skipped = append(rep.Skipped, info.DirName)
			}
			continue
		}

		if name, ok := blockFile(entries); ok {
			p := path.Join(info.DirName, name)
			if b, err := extractBlockFile(docs, p, info, log); err != nil {
				logging.LogSkip(log, "block document", p, err)
				rep.Skipped = append(rep.Skipped, p)
			} else {
				ds.Blocks = append(ds.Blocks, b)
			}
		}

		for _, e := range entries {
			code, ok := prefectureCode(e.Name())
			if !ok {
				continue
			}
			p := path.Join(info.DirName, e.Name())
			pref, err := extractPrefectureFile(docs, p, code, info.Code, log)
			if err != nil {
				logging.LogSkip(log, "prefecture document", p, err)
				rep.Skipped = append(rep.Skipped, p)
				continue
			}
			ds.Prefectures = append(ds.Prefectures, pref)
			rep.Districts += len(pref.Districts)
		}
	}

	ds.Summaries = BuildSummaries(ds.Prefectures)
	rep.Blocks = len(ds.Blocks)
	rep.Prefectures = len(ds.Prefectures)
	return ds, rep
}

// blockFile picks the first "00_hirei_*" entry.
func blockFile(entries []fs.DirEntry) (string, bool) {
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), blockFilePrefix) {
			return e.Name(), true
		}
	}
	return "", false
}

// prefectureCode reports the code of a prefecture document name ("13_tokyo.md").
func prefectureCode(name string) (string, bool) {
	if strings.HasPrefix(name, reservedPrefix) || !strings.HasSuffix(name, docSuffix) {
		return "", false
	}
	m := prefFileRe.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func extractBlockFile(docs fs.FS, p string, info registry.BlockInfo, log *zap.Logger) (electiondocs.Block, error) {
	start := time.Now()
	raw, err := fs.ReadFile(docs, p)
	if err != nil {
		return electiondocs.Block{}, fmt.Errorf("read %s: %w", p, err)
	}
	b := electiondocs.ExtractBlock(string(raw), info)
	logging.LogExtract(log, "block", info.Code, len(b.Results2024), time.Since(start))
	return b, nil
}

func extractPrefectureFile(docs fs.FS, p, code, blockCode string, log *zap.Logger) (electiondocs.Prefecture, error) {
	start := time.Now()
	raw, err := fs.ReadFile(docs, p)
	if err != nil {
		return electiondocs.Prefecture{}, fmt.Errorf("read %s: %w", p, err)
	}
	pref := electiondocs.ExtractPrefecture(string(raw), code, blockCode)
	logging.LogExtract(log, "prefecture", code, len(pref.Districts), time.Since(start))
	return pref, nil
}
