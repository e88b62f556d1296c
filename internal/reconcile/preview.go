package reconcile

import (
	"time"

	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
)

// Preview is a persisted report snapshot.
type Preview struct {
	ID        int64
	Type      ledger.ReadType
	StoreCode string
	Day       string // YYYY-MM-DD in the store timezone
	Report    *Report
	CreatedAt time.Time
}

// Actor is the employee a report is generated for.
type Actor struct {
	EmployeeID string
	Name       string
}
