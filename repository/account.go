package repository

import (
	"database/sql"
	"emberfall_backend/model"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var ErrAccountNotFound = errors.New("account not found")

const sessionLifetime = 24 * time.Hour

// AccountByDescriptor loads an account by name or email; an all-digit
// descriptor is treated as an account number (pre-session protocol clients
// still log in by number).
func (r *GameRepository) AccountByDescriptor(descriptor string) (*AccountRow, error) {
	if id, err := strconv.ParseUint(descriptor, 10, 32); err == nil {
		return r.accountBy("SELECT id, name, email, password, type, premdays FROM accounts WHERE id = ?", id)
	}
	return r.accountBy("SELECT id, name, email, password, type, premdays FROM accounts WHERE name = ? OR email = ?", descriptor, descriptor)
}

// AccountBySession loads the account a live session token belongs to.
func (r *GameRepository) AccountBySession(token string) (*AccountRow, error) {
	query := `SELECT a.id, a.name, a.email, a.password, a.type, a.premdays
		FROM accounts a
		INNER JOIN account_sessions s ON s.account_id = a.id
		WHERE s.token = ? AND s.expires > ?`
	return r.accountBy(query, token, time.Now().Unix())
}

func (r *GameRepository) accountBy(query string, args ...interface{}) (*AccountRow, error) {
	var row AccountRow
	if err := r.DB.Get(&row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &row, nil
}

// AccountCharacters returns the account's roster on this world, including
// soft-deleted characters so callers can check the deletion marker.
func (r *GameRepository) AccountCharacters(accountID uint32) ([]model.AccountCharacter, error) {
	var rows []AccountCharacterRow
	query := "SELECT name, deletion FROM players WHERE account_id = ? AND world_id = ?"
	if err := r.DB.Select(&rows, query, accountID, r.worldID); err != nil {
		return nil, fmt.Errorf("select account %d players: %w", accountID, err)
	}

	characters := make([]model.AccountCharacter, 0, len(rows))
	for _, row := range rows {
		characters = append(characters, model.AccountCharacter{Name: row.Name, Deletion: row.Deletion})
	}
	return characters, nil
}

// CreateSession issues a fresh session token for the account.
func (r *GameRepository) CreateSession(accountID uint32) (string, error) {
	token := uuid.NewString()
	expires := time.Now().Add(sessionLifetime).Unix()
	query := "INSERT INTO account_sessions (token, account_id, expires) VALUES (?, ?, ?)"
	if _, err := r.DB.Exec(query, token, accountID, expires); err != nil {
		return "", fmt.Errorf("insert session account %d: %w", accountID, err)
	}
	return token, nil
}
