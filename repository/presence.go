package repository

import "fmt"

// The players_online relation is the cluster-visible authority for presence;
// the in-process cache in the presence service only dedupes login events.

func (r *GameRepository) InsertOnlinePlayer(guid uint32) error {
	query := "INSERT INTO players_online (player_id, world_id) VALUES (?, ?)"
	if _, err := r.DB.Exec(query, guid, r.worldID); err != nil {
		return fmt.Errorf("insert players_online player %d: %w", guid, err)
	}
	return nil
}

func (r *GameRepository) DeleteOnlinePlayer(guid uint32) error {
	query := "DELETE FROM players_online WHERE player_id = ? AND world_id = ?"
	if _, err := r.DB.Exec(query, guid, r.worldID); err != nil {
		return fmt.Errorf("delete players_online player %d: %w", guid, err)
	}
	return nil
}

func (r *GameRepository) OnlineCount() (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM players_online WHERE world_id = ?"
	if err := r.DB.Get(&count, query, r.worldID); err != nil {
		return 0, fmt.Errorf("count players_online: %w", err)
	}
	return count, nil
}
