package main

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func (a *App) InitDB(dbConfig *DB) error {
	db, err := sqlx.Connect("postgres", dbConfig.DSN())
	if err != nil {
		return err
	}

	db.SetMaxOpenConns(a.Config.PoolMax)
	db.SetMaxIdleConns(a.Config.PoolMax)
	db.SetConnMaxIdleTime(30 * time.Second)

	a.DB = db

	return nil
}
