package electiondb

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const Schema = "senkyo"

// PrefectureRow is one prefecture. Detail holds the full record as JSON text.
// Detail columns must stay json: jsonb reorders object keys, and party lists
// are keyed in document order.
type PrefectureRow struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;column:id"`
	Code          string         `gorm:"uniqueIndex;size:2;column:code"`
	Position      int            `gorm:"column:position"`
	Name          string         `gorm:"column:name"`
	BlockCode     string         `gorm:"index;size:2;column:block_code"`
	BlockName     string         `gorm:"column:block_name"`
	DistrictCount int            `gorm:"column:district_count"`
	Issues        pq.StringArray `gorm:"type:text[];column:issues"`
	Detail        []byte         `gorm:"type:json;column:detail"`
	ImportedAt    time.Time      `gorm:"column:imported_at"`
}

func (PrefectureRow) TableName() string { return Schema + ".prefectures" }

// BlockRow is one proportional block, with the record as JSON.
type BlockRow struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;column:id"`
	Code       string    `gorm:"uniqueIndex;size:2;column:code"`
	Position   int       `gorm:"column:position"`
	Name       string    `gorm:"column:name"`
	Seats      int       `gorm:"column:seats"`
	Detail     []byte    `gorm:"type:json;column:detail"`
	ImportedAt time.Time `gorm:"column:imported_at"`
}

func (BlockRow) TableName() string { return Schema + ".blocks" }
