package postgres

import (
	"swaphub/models"

	"github.com/jmoiron/sqlx"
)

type StatusLogRepository struct {
	conn *sqlx.DB
}

func NewStatusLogRepository(conn *sqlx.DB) StatusLogRepo {
	return &StatusLogRepository{
		conn: conn,
	}
}

func (r *StatusLogRepository) Append(m *models.StatusLog) error {
	if _, err := r.conn.NamedExec("INSERT INTO status_log (sideshift_order_id,old_status,new_status,fingerprint,emitted_at) VALUES (:sideshift_order_id,:old_status,:new_status,:fingerprint,:emitted_at)", m); err != nil {
		return err
	}

	return nil
}

func (r *StatusLogRepository) GetByOrder(sideShiftOrderID string) ([]models.StatusLog, error) {
	var logs []models.StatusLog

	if err := r.conn.Select(&logs, "SELECT * FROM status_log WHERE sideshift_order_id = $1 ORDER BY id", sideShiftOrderID); err != nil {
		return nil, err
	}

	return logs, nil
}
