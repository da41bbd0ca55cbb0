package models

import "time"

type WatchedOrder struct {
	ID               string    `db:"id"`
	SideShiftOrderID string    `db:"sideshift_order_id"`
	UserID           string    `db:"user_id"`
	LastStatus       string    `db:"last_status"`
	CreatedAt        time.Time `db:"created_at"`
}
