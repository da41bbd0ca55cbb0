package models

import "time"

type StatusLog struct {
	ID               int64     `db:"id"`
	SideShiftOrderID string    `db:"sideshift_order_id"`
	OldStatus        string    `db:"old_status"`
	NewStatus        string    `db:"new_status"`
	Fingerprint      string    `db:"fingerprint"`
	EmittedAt        time.Time `db:"emitted_at"`
}
