package repository

import (
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"time"
)

// GameRepository is the storage access layer of the game backend. Every
// world-scoped statement filters by the world id the repository was created
// with; cross-world id collisions are legal and disambiguated that way.
type GameRepository struct {
	DB      *sqlx.DB
	worldID uint8
}

func New(dsn string, worldID uint8) (*GameRepository, error) {
	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetConnMaxLifetime(4 * time.Minute)
	db.SetMaxOpenConns(32)
	db.SetMaxIdleConns(8)
	return &GameRepository{DB: db, worldID: worldID}, nil
}

func (r *GameRepository) WorldID() uint8 {
	return r.worldID
}

func withTransaction(db *sqlx.DB, txFunc func(*sqlx.Tx) error) error {
	tx, err := db.Beginx()
	if err != nil {
		return err
	}

	if err = txFunc(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return rbErr
		}
		return err
	}
	return tx.Commit()
}

func placeholders(n int) string {
	ph := make([]byte, 0, n*2)
	for i := 0; i < n; i++ {
		ph = append(ph, '?')
		if i != n-1 {
			ph = append(ph, ',')
		}
	}
	return string(ph)
}
