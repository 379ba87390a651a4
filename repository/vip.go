package repository

import (
	"emberfall_backend/model"
	"fmt"
)

// VIP reads return an empty slice both when no rows match and when the query
// fails; the service layer logs the failure but callers cannot tell the two
// apart. Client UI treats them identically, so the ambiguity is deliberate.

func (r *GameRepository) VIPEntries(accountID uint32) ([]model.VIPEntry, error) {
	var rows []VIPEntryRow
	query := `SELECT player_id,
		(SELECT name FROM players WHERE id = player_id) AS name,
		description, icon, notify
		FROM account_viplist WHERE account_id = ? AND world_id = ?`
	if err := r.DB.Select(&rows, query, accountID, r.worldID); err != nil {
		return nil, fmt.Errorf("select account_viplist account %d: %w", accountID, err)
	}

	entries := make([]model.VIPEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, model.VIPEntry{
			PlayerID:    row.PlayerID,
			Name:        row.Name,
			Description: row.Description,
			Icon:        row.Icon,
			Notify:      row.Notify,
		})
	}
	return entries, nil
}

func (r *GameRepository) AddVIPEntry(accountID, guid uint32, description string, icon uint32, notify bool) error {
	query := "INSERT INTO account_viplist (account_id, player_id, world_id, description, icon, notify) VALUES (?, ?, ?, ?, ?, ?)"
	if _, err := r.DB.Exec(query, accountID, guid, r.worldID, description, icon, notify); err != nil {
		return fmt.Errorf("insert account_viplist account %d player %d: %w", accountID, guid, err)
	}
	return nil
}

func (r *GameRepository) EditVIPEntry(accountID, guid uint32, description string, icon uint32, notify bool) error {
	query := "UPDATE account_viplist SET description = ?, icon = ?, notify = ? WHERE account_id = ? AND player_id = ? AND world_id = ?"
	if _, err := r.DB.Exec(query, description, icon, notify, accountID, guid, r.worldID); err != nil {
		return fmt.Errorf("update account_viplist account %d player %d: %w", accountID, guid, err)
	}
	return nil
}

func (r *GameRepository) RemoveVIPEntry(accountID, guid uint32) error {
	query := "DELETE FROM account_viplist WHERE account_id = ? AND player_id = ? AND world_id = ?"
	if _, err := r.DB.Exec(query, accountID, guid, r.worldID); err != nil {
		return fmt.Errorf("delete account_viplist account %d player %d: %w", accountID, guid, err)
	}
	return nil
}

// VIPGroupEntries ignores guid; groups are account-scoped. The parameter is
// kept so the surface matches the VIP list reads.
func (r *GameRepository) VIPGroupEntries(accountID, _ uint32) ([]model.VIPGroupEntry, error) {
	var rows []VIPGroupRow
	query := "SELECT id, name, customizable FROM account_vipgroups WHERE account_id = ?"
	if err := r.DB.Select(&rows, query, accountID); err != nil {
		return nil, fmt.Errorf("select account_vipgroups account %d: %w", accountID, err)
	}

	entries := make([]model.VIPGroupEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, model.VIPGroupEntry{
			ID:           row.ID,
			Name:         row.Name,
			Customizable: row.Customizable,
		})
	}
	return entries, nil
}

func (r *GameRepository) AddVIPGroupEntry(groupID uint8, accountID uint32, name string, customizable bool) error {
	query := "INSERT INTO account_vipgroups (id, account_id, name, customizable) VALUES (?, ?, ?, ?)"
	if _, err := r.DB.Exec(query, groupID, accountID, name, customizable); err != nil {
		return fmt.Errorf("insert account_vipgroups account %d group %d: %w", accountID, groupID, err)
	}
	return nil
}

func (r *GameRepository) EditVIPGroupEntry(groupID uint8, accountID uint32, name string, customizable bool) error {
	query := "UPDATE account_vipgroups SET name = ?, customizable = ? WHERE id = ? AND account_id = ?"
	if _, err := r.DB.Exec(query, name, customizable, groupID, accountID); err != nil {
		return fmt.Errorf("update account_vipgroups account %d group %d: %w", accountID, groupID, err)
	}
	return nil
}

func (r *GameRepository) RemoveVIPGroupEntry(groupID uint8, accountID uint32) error {
	query := "DELETE FROM account_vipgroups WHERE id = ? AND account_id = ?"
	if _, err := r.DB.Exec(query, groupID, accountID); err != nil {
		return fmt.Errorf("delete account_vipgroups account %d group %d: %w", accountID, groupID, err)
	}
	return nil
}

func (r *GameRepository) AddGuidVIPGroupEntry(groupID uint8, accountID, guid uint32) error {
	query := "INSERT INTO account_vipgrouplist (account_id, player_id, vipgroup_id) VALUES (?, ?, ?)"
	if _, err := r.DB.Exec(query, accountID, guid, groupID); err != nil {
		return fmt.Errorf("insert account_vipgrouplist account %d player %d group %d: %w", accountID, guid, groupID, err)
	}
	return nil
}

func (r *GameRepository) RemoveGuidVIPGroupEntry(accountID, guid uint32) error {
	query := "DELETE FROM account_vipgrouplist WHERE account_id = ? AND player_id = ?"
	if _, err := r.DB.Exec(query, accountID, guid); err != nil {
		return fmt.Errorf("delete account_vipgrouplist account %d player %d: %w", accountID, guid, err)
	}
	return nil
}
