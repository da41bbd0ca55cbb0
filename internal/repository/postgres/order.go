package postgres

import (
	"swaphub/models"

	"github.com/jmoiron/sqlx"
)

type OrderRepository struct {
	conn *sqlx.DB
}

func NewOrderRepository(conn *sqlx.DB) OrderRepo {
	return &OrderRepository{
		conn: conn,
	}
}

// StoreWithWatched inserts the order and its watch registration in one
// transaction. The watched row insert is on-conflict-do-nothing so re-runs
// after a crash stay idempotent.
func (r *OrderRepository) StoreWithWatched(m *models.Order) error {
	tx, err := r.conn.Beginx()
	if err != nil {
		return err
	}

	if err := storeOrderTx(tx, m); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func storeOrderTx(tx *sqlx.Tx, m *models.Order) error {
	if _, err := tx.NamedExec("INSERT INTO orders (id,sideshift_order_id,user_id,from_asset,from_network,from_amount,to_asset,to_network,settle_amount,deposit_address,deposit_memo,status,created_at,updated_at) VALUES (:id,:sideshift_order_id,:user_id,:from_asset,:from_network,:from_amount,:to_asset,:to_network,:settle_amount,:deposit_address,:deposit_memo,:status,:created_at,:updated_at)", m); err != nil {
		return err
	}

	if _, err := tx.Exec("INSERT INTO watched_orders (id,sideshift_order_id,user_id,last_status,created_at) VALUES (gen_random_uuid(),$1,$2,$3,$4) ON CONFLICT (sideshift_order_id) DO NOTHING", m.SideShiftOrderID, m.UserID, m.Status, m.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *OrderRepository) GetBySideShiftID(sideShiftOrderID string) (*models.Order, error) {
	var order models.Order

	if err := r.conn.QueryRowx("SELECT * FROM orders WHERE sideshift_order_id = $1 LIMIT 1", sideShiftOrderID).StructScan(&order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *OrderRepository) GetNonTerminal() ([]models.Order, error) {
	var orders []models.Order

	if err := r.conn.Select(&orders, "SELECT * FROM orders WHERE status NOT IN ('settled','expired','refunded','failed') ORDER BY created_at"); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrderRepository) GetHistory(userID string, limit int) ([]models.Order, error) {
	var orders []models.Order

	if err := r.conn.Select(&orders, "SELECT * FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2", userID, limit); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrderRepository) SetStatus(sideShiftOrderID, status string) error {
	if _, err := r.conn.Exec("UPDATE orders SET status = $1, updated_at = now() WHERE sideshift_order_id = $2", status, sideShiftOrderID); err != nil {
		return err
	}

	return nil
}
