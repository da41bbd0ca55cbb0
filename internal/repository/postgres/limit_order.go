package postgres

import (
	"time"

	"swaphub/models"

	"github.com/jmoiron/sqlx"
)

type LimitOrderRepository struct {
	conn *sqlx.DB
}

func NewLimitOrderRepository(conn *sqlx.DB) LimitOrderRepo {
	return &LimitOrderRepository{
		conn: conn,
	}
}

func (r *LimitOrderRepository) Store(m *models.LimitOrder) error {
	if _, err := r.conn.NamedExec("INSERT INTO limit_orders (id,user_id,from_asset,from_network,to_asset,to_network,amount,target_price,condition,ref_asset,ref_chain,status,retry_count,retry_after,last_error,created_at) VALUES (:id,:user_id,:from_asset,:from_network,:to_asset,:to_network,:amount,:target_price,:condition,:ref_asset,:ref_chain,:status,:retry_count,:retry_after,:last_error,:created_at)", m); err != nil {
		return err
	}

	return nil
}

func (r *LimitOrderRepository) GetByID(id string) (*models.LimitOrder, error) {
	var order models.LimitOrder

	if err := r.conn.QueryRowx("SELECT * FROM limit_orders WHERE id = $1 LIMIT 1", id).StructScan(&order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *LimitOrderRepository) GetArmed(now time.Time) ([]models.LimitOrder, error) {
	var orders []models.LimitOrder

	if err := r.conn.Select(&orders, "SELECT * FROM limit_orders WHERE status = 'armed' AND (retry_after IS NULL OR retry_after <= $1) ORDER BY created_at", now); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *LimitOrderRepository) GetRefAssets() ([]RefAsset, error) {
	var refs []RefAsset

	if err := r.conn.Select(&refs, "SELECT DISTINCT ref_asset, ref_chain FROM limit_orders WHERE status = 'armed'"); err != nil {
		return nil, err
	}

	return refs, nil
}

func (r *LimitOrderRepository) SetStatus(id, status string) error {
	if _, err := r.conn.Exec("UPDATE limit_orders SET status = $1 WHERE id = $2", status, id); err != nil {
		return err
	}

	return nil
}

func (r *LimitOrderRepository) SetRetry(id string, retryCount int, retryAfter time.Time, lastError string) error {
	if _, err := r.conn.Exec("UPDATE limit_orders SET status = 'armed', retry_count = $1, retry_after = $2, last_error = $3 WHERE id = $4", retryCount, retryAfter, lastError, id); err != nil {
		return err
	}

	return nil
}

func (r *LimitOrderRepository) MarkDead(id, lastError string) error {
	if _, err := r.conn.Exec("UPDATE limit_orders SET status = 'dead', last_error = $1 WHERE id = $2", lastError, id); err != nil {
		return err
	}

	return nil
}
