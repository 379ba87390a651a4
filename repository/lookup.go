package repository

import (
	"database/sql"
	"errors"
	"fmt"
)

// Group ids at or above gamemaster carry the special VIP flag; regular
// players cannot see those characters on their VIP lists.
const groupIDGamemaster = 3

func (r *GameRepository) AccountType(accountID uint32) (uint8, error) {
	var accountType uint8
	query := "SELECT type FROM accounts WHERE id = ?"
	if err := r.DB.Get(&accountType, query, accountID); err != nil {
		return 0, err
	}
	return accountType, nil
}

// NameByGUID resolves a world-scoped player id to its name; empty when the
// player does not exist on this world.
func (r *GameRepository) NameByGUID(guid uint32) (string, error) {
	var name string
	query := "SELECT name FROM players WHERE id = ? AND world_id = ?"
	if err := r.DB.Get(&name, query, guid, r.worldID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return name, nil
}

// GUIDByName resolves a player name to its world-scoped id; zero when absent.
func (r *GameRepository) GUIDByName(name string) (uint32, error) {
	var guid uint32
	query := "SELECT id FROM players WHERE name = ? AND world_id = ?"
	if err := r.DB.Get(&guid, query, name, r.worldID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return guid, nil
}

// GUIDByNameEx resolves a name to (canonical name, guid, special VIP flag).
// The stored spelling wins over the caller's capitalization.
func (r *GameRepository) GUIDByNameEx(name string) (string, uint32, bool, error) {
	var row struct {
		Name    string `db:"name"`
		ID      uint32 `db:"id"`
		GroupID uint16 `db:"group_id"`
	}
	query := "SELECT name, id, group_id FROM players WHERE name = ? AND world_id = ?"
	if err := r.DB.Get(&row, query, name, r.worldID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", 0, false, nil
		}
		return "", 0, false, err
	}
	return row.Name, row.ID, row.GroupID >= groupIDGamemaster, nil
}

// FormatPlayerName returns the stored spelling of a player name; the input
// name when the player is unknown.
func (r *GameRepository) FormatPlayerName(name string) (string, error) {
	var stored string
	query := "SELECT name FROM players WHERE name = ? AND world_id = ?"
	if err := r.DB.Get(&stored, query, name, r.worldID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return name, nil
		}
		return name, err
	}
	return stored, nil
}

func (r *GameRepository) IncreaseBankBalance(guid uint32, amount uint64) error {
	query := "UPDATE players SET balance = balance + ? WHERE id = ? AND world_id = ?"
	if _, err := r.DB.Exec(query, amount, guid, r.worldID); err != nil {
		return fmt.Errorf("increase balance player %d: %w", guid, err)
	}
	return nil
}

func (r *GameRepository) HasBiddedOnHouse(guid uint32) (bool, error) {
	var id uint32
	query := "SELECT id FROM houses WHERE highest_bidder = ? AND world_id = ? LIMIT 1"
	if err := r.DB.Get(&id, query, guid, r.worldID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
