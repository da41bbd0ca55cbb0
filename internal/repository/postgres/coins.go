package postgres

import (
	"database/sql"
	"encoding/json"
	"time"

	"swaphub/models"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var ErrUserNotFound = errors.New("user not found")

type CoinStats struct {
	TotalUsers    int             `db:"total_users" json:"totalUsers"`
	TotalSupply   decimal.Decimal `db:"total_supply" json:"totalSupply"`
	TotalGifted   decimal.Decimal `db:"total_gifted" json:"totalGifted"`
	TotalDeducted decimal.Decimal `db:"total_deducted" json:"totalDeducted"`
}

type CoinsRepository struct {
	conn *sqlx.DB
}

func NewCoinsRepository(conn *sqlx.DB) CoinsRepo {
	return &CoinsRepository{
		conn: conn,
	}
}

// Adjust mutates one user balance. The balance update, the signed gift-log
// row and the admin audit row commit in a single transaction so the gift-log
// sum always reconciles against balance minus initial balance.
func (r *CoinsRepository) Adjust(adminID, targetUserID, action string, amount decimal.Decimal, note string) (*models.User, error) {
	tx, err := r.conn.Beginx()
	if err != nil {
		return nil, err
	}

	var user models.User

	if err := tx.QueryRowx("SELECT * FROM users WHERE id = $1 FOR UPDATE", targetUserID).StructScan(&user); err != nil {
		_ = tx.Rollback()

		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	var logged decimal.Decimal

	switch action {
	case models.CoinActionGift:
		user.CoinBalance = user.CoinBalance.Add(amount)
		logged = amount
	case models.CoinActionDeduct:
		user.CoinBalance = user.CoinBalance.Sub(amount)
		logged = amount
	case models.CoinActionReset:
		logged = user.InitialBalance.Sub(user.CoinBalance)
		user.CoinBalance = user.InitialBalance
	default:
		_ = tx.Rollback()
		return nil, errors.Errorf("unknown coin action %q", action)
	}

	if _, err := tx.Exec("UPDATE users SET coin_balance = $1 WHERE id = $2", user.CoinBalance, user.ID); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if _, err := tx.Exec("INSERT INTO coin_gift_logs (id,admin_id,target_user_id,action,amount,note,created_at) VALUES (gen_random_uuid(),$1,$2,$3,$4,NULLIF($5,''),$6)", adminID, targetUserID, action, logged, note, time.Now().UTC()); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := appendAuditTx(tx, adminID, "coins."+action, targetUserID, map[string]string{
		"amount": logged.String(),
		"note":   note,
	}); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *CoinsRepository) Stats() (*CoinStats, error) {
	var stats CoinStats

	if err := r.conn.QueryRowx(`SELECT
		(SELECT count(*) FROM users) AS total_users,
		(SELECT coalesce(sum(coin_balance),0) FROM users) AS total_supply,
		(SELECT coalesce(sum(amount),0) FROM coin_gift_logs WHERE action = 'gift') AS total_gifted,
		(SELECT coalesce(sum(amount),0) FROM coin_gift_logs WHERE action = 'deduct') AS total_deducted`).StructScan(&stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// GiftAll credits every user in one transaction and returns the number of
// users credited.
func (r *CoinsRepository) GiftAll(adminID string, amount decimal.Decimal, note string) (int, error) {
	tx, err := r.conn.Beginx()
	if err != nil {
		return 0, err
	}

	res, err := tx.Exec("UPDATE users SET coin_balance = coin_balance + $1", amount)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}

	if _, err := tx.Exec("INSERT INTO coin_gift_logs (id,admin_id,target_user_id,action,amount,note,created_at) SELECT gen_random_uuid(), $1, id, 'gift', $2, NULLIF($3,''), $4 FROM users", adminID, amount, note, time.Now().UTC()); err != nil {
		_ = tx.Rollback()
		return 0, err
	}

	if err := appendAuditTx(tx, adminID, "coins.gift_all", "", map[string]string{
		"amount": amount.String(),
		"note":   note,
	}); err != nil {
		_ = tx.Rollback()
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(affected), nil
}

func appendAuditTx(tx *sqlx.Tx, adminID, action, targetUserID string, payload map[string]string) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if _, err := tx.Exec("INSERT INTO admin_audit_log (id,admin_id,action,target_user_id,payload,created_at) VALUES (gen_random_uuid(),$1,$2,NULLIF($3,''),$4,$5)", adminID, action, targetUserID, string(raw), time.Now().UTC()); err != nil {
		return err
	}

	return nil
}
