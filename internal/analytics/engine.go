// Package analytics answers composite questions that require joining
// several temporal streams at a consistent point in time. Every query is
// parameterized; user input only ever travels as bound arguments.
package analytics

import (
	"database/sql"
	"time"

	"github.com/hrsight/employees-api/internal/domain"
)

type joinEngine struct {
	db *sql.DB
	// now is replaceable so date-relative reports are testable.
	now func() time.Time
}

// NewJoinEngine creates a new instance of JoinEngine
func NewJoinEngine(db *sql.DB) domain.JoinEngine {
	return &joinEngine{db: db, now: time.Now}
}

func (e *joinEngine) today() string {
	return e.now().Format("2006-01-02")
}
