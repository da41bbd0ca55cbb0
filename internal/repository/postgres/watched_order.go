package postgres

import (
	"swaphub/models"

	"github.com/jmoiron/sqlx"
)

type WatchedOrderRepository struct {
	conn *sqlx.DB
}

func NewWatchedOrderRepository(conn *sqlx.DB) WatchedOrderRepo {
	return &WatchedOrderRepository{
		conn: conn,
	}
}

func (r *WatchedOrderRepository) StoreIdempotent(m *models.WatchedOrder) error {
	if _, err := r.conn.Exec("INSERT INTO watched_orders (id,sideshift_order_id,user_id,last_status,created_at) VALUES (gen_random_uuid(),$1,$2,$3,$4) ON CONFLICT (sideshift_order_id) DO NOTHING", m.SideShiftOrderID, m.UserID, m.LastStatus, m.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *WatchedOrderRepository) SetStatus(sideShiftOrderID, status string) error {
	if _, err := r.conn.Exec("UPDATE watched_orders SET last_status = $1 WHERE sideshift_order_id = $2", status, sideShiftOrderID); err != nil {
		return err
	}

	return nil
}

func (r *WatchedOrderRepository) GetPending() ([]models.WatchedOrder, error) {
	var watched []models.WatchedOrder

	if err := r.conn.Select(&watched, "SELECT * FROM watched_orders WHERE last_status NOT IN ('settled','expired','refunded','failed') ORDER BY created_at"); err != nil {
		return nil, err
	}

	return watched, nil
}
