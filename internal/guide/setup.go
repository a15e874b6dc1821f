package guide

import (
	"github.com/EmpoweredVote/senkyo-guide/internal/dataset"
	"go.uber.org/zap"
)

var (
	store dataset.Store
	log   = zap.NewNop()
)

// Init wires the store the handlers read from.
func Init(s dataset.Store, l *zap.Logger) {
	store = s
	if l != nil {
		log = l
	}
}
