package postgres

import (
	"swaphub/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	conn *sqlx.DB
}

func NewUserRepository(conn *sqlx.DB) UserRepo {
	return &UserRepository{
		conn: conn,
	}
}

func (r *UserRepository) GetByID(id string) (*models.User, error) {
	var user models.User

	if err := r.conn.QueryRowx("SELECT * FROM users WHERE id = $1 LIMIT 1", id).StructScan(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetSettings(userID string) (*models.UserSettings, error) {
	var settings models.UserSettings

	if err := r.conn.QueryRowx("SELECT * FROM user_settings WHERE user_id = $1 LIMIT 1", userID).StructScan(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}
