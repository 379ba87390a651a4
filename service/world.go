package service

import (
	"emberfall_backend/config"
	"emberfall_backend/model"
	"fmt"
)

// WorldService keeps the worlds relation from ever being empty and exposes
// the configured worlds to the login surface.
type WorldService struct {
	store  WorldStore
	cfg    *config.Config
	logger LoggerInterface
}

func NewWorldService(store WorldStore, cfg *config.Config, logger LoggerInterface) *WorldService {
	return &WorldService{store: store, cfg: cfg, logger: logger}
}

// EnsureFirstWorld synthesizes world id 1 from the server configuration when
// the relation is empty. Best-effort: failures are logged, startup continues.
func (s *WorldService) EnsureFirstWorld() {
	count, err := s.store.CountWorlds()
	if err != nil {
		s.logger.Exception(fmt.Sprintf("EnsureFirstWorld(): %v", err))
		return
	}
	if count > 0 {
		return
	}

	worldType := s.cfg.WorldType
	if s.cfg.Retro {
		worldType = "retro-" + worldType
	}

	world := model.World{
		Name:     s.cfg.ServerName,
		Type:     worldType,
		Motd:     s.cfg.Motd,
		Location: s.cfg.WorldLocation,
		IP:       s.cfg.IP,
		Port:     uint16(s.cfg.GamePort),
	}

	if err := s.store.InsertWorld(world); err != nil {
		s.logger.Exception(fmt.Sprintf("Failed to add initial world id 1 - %s to database: %v", world.Name, err))
		return
	}
	s.logger.Info(fmt.Sprintf("Added initial world id 1 - %s to database", world.Name))
}

// LoadWorlds returns every configured world; empty when the relation cannot
// be read.
func (s *WorldService) LoadWorlds() []model.World {
	worlds, err := s.store.Worlds()
	if err != nil {
		s.logger.Exception(fmt.Sprintf("LoadWorlds(): %v", err))
		return []model.World{}
	}
	return worlds
}
