package repository

import (
	"emberfall_backend/model"
	"fmt"
	"time"
)

// CountWorlds reports how many worlds are configured.
func (r *GameRepository) CountWorlds() (int, error) {
	var count int
	if err := r.DB.Get(&count, "SELECT COUNT(*) FROM worlds"); err != nil {
		return 0, fmt.Errorf("count worlds: %w", err)
	}
	return count, nil
}

// InsertWorld writes one world row with creation set to now.
func (r *GameRepository) InsertWorld(w model.World) error {
	query := "INSERT INTO worlds (name, type, motd, location, ip, port, creation) VALUES (?, ?, ?, ?, ?, ?, ?)"
	if _, err := r.DB.Exec(query, w.Name, w.Type, w.Motd, w.Location, w.IP, w.Port, time.Now().Unix()); err != nil {
		return fmt.Errorf("insert world %s: %w", w.Name, err)
	}
	return nil
}

func (r *GameRepository) Worlds() ([]model.World, error) {
	var rows []WorldRow
	if err := r.DB.Select(&rows, "SELECT id, name, type, motd, location, ip, port, creation FROM worlds"); err != nil {
		return nil, fmt.Errorf("select worlds: %w", err)
	}

	worlds := make([]model.World, 0, len(rows))
	for _, row := range rows {
		worlds = append(worlds, model.World{
			ID:       row.ID,
			Name:     row.Name,
			Type:     row.Type,
			Motd:     row.Motd,
			Location: row.Location,
			IP:       row.IP,
			Port:     row.Port,
			Creation: row.Creation,
		})
	}
	return worlds, nil
}
