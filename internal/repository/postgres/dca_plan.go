package postgres

import (
	"time"

	"swaphub/models"

	"github.com/jmoiron/sqlx"
)

type DCAPlanRepository struct {
	conn *sqlx.DB
}

func NewDCAPlanRepository(conn *sqlx.DB) DCAPlanRepo {
	return &DCAPlanRepository{
		conn: conn,
	}
}

func (r *DCAPlanRepository) Store(m *models.DCAPlan) error {
	if _, err := r.conn.NamedExec("INSERT INTO dca_plans (id,user_id,from_asset,from_network,to_asset,to_network,amount,interval_hours,next_execution_at,is_active,executed_count,created_at) VALUES (:id,:user_id,:from_asset,:from_network,:to_asset,:to_network,:amount,:interval_hours,:next_execution_at,:is_active,:executed_count,:created_at)", m); err != nil {
		return err
	}

	return nil
}

func (r *DCAPlanRepository) GetByID(id string) (*models.DCAPlan, error) {
	var plan models.DCAPlan

	if err := r.conn.QueryRowx("SELECT * FROM dca_plans WHERE id = $1 LIMIT 1", id).StructScan(&plan); err != nil {
		return nil, err
	}

	return &plan, nil
}

// ClaimDue atomically reserves every due active plan. Rows are taken with
// FOR UPDATE SKIP LOCKED so concurrent scheduler instances never claim the
// same plan, and next_execution_at is pushed to the lock sentinel
// (now + maxProcessing) inside the same transaction. A claimed plan stays
// invisible to peers until the sentinel elapses, so a crashed instance
// cannot wedge it forever.
func (r *DCAPlanRepository) ClaimDue(now time.Time, maxProcessing time.Duration) ([]models.DCAPlan, error) {
	tx, err := r.conn.Beginx()
	if err != nil {
		return nil, err
	}

	var plans []models.DCAPlan

	if err := tx.Select(&plans, "SELECT * FROM dca_plans WHERE is_active = true AND next_execution_at <= $1 FOR UPDATE SKIP LOCKED", now); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	sentinel := now.Add(maxProcessing)

	for _, plan := range plans {
		if _, err := tx.Exec("UPDATE dca_plans SET next_execution_at = $1 WHERE id = $2", sentinel, plan.ID); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *DCAPlanRepository) Reschedule(id string, at time.Time) error {
	if _, err := r.conn.Exec("UPDATE dca_plans SET next_execution_at = $1 WHERE id = $2", at, id); err != nil {
		return err
	}

	return nil
}

// CompleteExecution records one executed plan run: the order insert, the
// watch registration, the executed_count increment and the reschedule all
// commit together.
func (r *DCAPlanRepository) CompleteExecution(plan *models.DCAPlan, order *models.Order, nextAt time.Time) error {
	tx, err := r.conn.Beginx()
	if err != nil {
		return err
	}

	if err := storeOrderTx(tx, order); err != nil {
		_ = tx.Rollback()
		return err
	}

	if _, err := tx.Exec("UPDATE dca_plans SET executed_count = executed_count + 1, next_execution_at = $1 WHERE id = $2", nextAt, plan.ID); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
