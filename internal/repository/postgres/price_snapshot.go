package postgres

import (
	"swaphub/models"

	"github.com/jmoiron/sqlx"
)

type PriceSnapshotRepository struct {
	conn *sqlx.DB
}

func NewPriceSnapshotRepository(conn *sqlx.DB) PriceSnapshotRepo {
	return &PriceSnapshotRepository{
		conn: conn,
	}
}

func (r *PriceSnapshotRepository) Upsert(m *models.PriceSnapshot) error {
	if _, err := r.conn.NamedExec("INSERT INTO price_snapshots (id,asset,chain,price,updated_at,expires_at) VALUES (:id,:asset,:chain,:price,:updated_at,:expires_at) ON CONFLICT (asset,chain) DO UPDATE SET price = EXCLUDED.price, updated_at = EXCLUDED.updated_at, expires_at = EXCLUDED.expires_at", m); err != nil {
		return err
	}

	return nil
}

func (r *PriceSnapshotRepository) Get(asset, chain string) (*models.PriceSnapshot, error) {
	var snapshot models.PriceSnapshot

	if err := r.conn.QueryRowx("SELECT * FROM price_snapshots WHERE asset = $1 AND chain = $2 LIMIT 1", asset, chain).StructScan(&snapshot); err != nil {
		return nil, err
	}

	return &snapshot, nil
}
