package electiondb

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/EmpoweredVote/senkyo-guide/internal/db"
	"github.com/EmpoweredVote/senkyo-guide/internal/generate"
	"github.com/EmpoweredVote/senkyo-guide/internal/logging"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates the schema and tables.
func Migrate(d *gorm.DB) error {
	if err := db.EnsureSchema(d, Schema); err != nil {
		return fmt.Errorf("ensure schema %s: %w", Schema, err)
	}
	if err := d.AutoMigrate(&PrefectureRow{}, &BlockRow{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// ImportOptions controls Import.
type ImportOptions struct {
	// Wipe truncates both tables first so codes missing from ds disappear.
	Wipe bool
}

// Rows converts ds into table rows, keeping traversal order in Position.
func Rows(ds generate.Dataset, now time.Time) ([]PrefectureRow, []BlockRow, error) {
	prefs := make([]PrefectureRow, 0, len(ds.Prefectures))
	for i, p := range ds.Prefectures {
		detail, err := json.Marshal(p)
		if err != nil {
			return nil, nil, fmt.Errorf("encode prefecture %s: %w", p.Code, err)
		}
		s := p.Summary()
		prefs = append(prefs, PrefectureRow{
			ID:            PrefectureID(p.Code),
			Code:          p.Code,
			Position:      i,
			Name:          s.Name,
			BlockCode:     s.BlockCode,
			BlockName:     s.BlockName,
			DistrictCount: s.DistrictCount,
			Issues:        p.Issues,
			Detail:        detail,
			ImportedAt:    now,
		})
	}

	blocks := make([]BlockRow, 0, len(ds.Blocks))
	for i, b := range ds.Blocks {
		detail, err := json.Marshal(b)
		if err != nil {
			return nil, nil, fmt.Errorf("encode block %s: %w", b.Code, err)
		}
		blocks = append(blocks, BlockRow{
			ID:         BlockID(b.Code),
			Code:       b.Code,
			Position:   i,
			Name:       b.Name,
			Seats:      b.Seats,
			Detail:     detail,
			ImportedAt: now,
		})
	}
	return prefs, blocks, nil
}

// Import writes ds to Postgres in one transaction, upserting by code.
func Import(d *gorm.DB, ds generate.Dataset, opts ImportOptions, log *zap.Logger) error {
	if d == nil {
		return errors.New("nil database")
	}
	prefs, blocks, err := Rows(ds, time.Now().UTC())
	if err != nil {
		return err
	}

	return d.Transaction(func(tx *gorm.DB) error {
		if opts.Wipe {
			if err := tx.Exec(`TRUNCATE TABLE ` + Schema + `.prefectures, ` + Schema + `.blocks`).Error; err != nil {
				return fmt.Errorf("wipe: %w", err)
			}
		}

		start := time.Now()
		if len(blocks) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "code"}},
				DoUpdates: clause.AssignmentColumns([]string{"position", "name", "seats", "detail", "imported_at"}),
			}).Create(&blocks).Error; err != nil {
				return fmt.Errorf("upsert blocks: %w", err)
			}
		}
		logging.LogImport(log, "blocks", len(blocks), time.Since(start))

		start = time.Now()
		if len(prefs) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "code"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"position", "name", "block_code", "block_name",
					"district_count", "issues", "detail", "imported_at",
				}),
			}).Create(&prefs).Error; err != nil {
				return fmt.Errorf("upsert prefectures: %w", err)
			}
		}
		logging.LogImport(log, "prefectures", len(prefs), time.Since(start))
		return nil
	})
}
