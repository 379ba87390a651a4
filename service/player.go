package service

import (
	"emberfall_backend/model"
	"emberfall_backend/repository"
	"errors"
	"fmt"
)

// PlayerService is the boolean facade over the load and save pipelines. The
// repository surfaces typed errors with stage context; this layer collapses
// them to success/failure plus one structured log record, which is the
// contract the session layer consumes.
type PlayerService struct {
	players PlayerStore
	logger  LoggerInterface
}

func NewPlayerService(players PlayerStore, logger LoggerInterface) *PlayerService {
	return &PlayerService{players: players, logger: logger}
}

// LoadPlayerByID populates the shell in place. On failure the shell may be
// partially populated and must be discarded by the caller.
func (s *PlayerService) LoadPlayerByID(p *model.Player, id uint32, full bool) bool {
	if err := s.players.LoadPlayerByID(p, id, full); err != nil {
		s.logger.Warning(fmt.Sprintf("LoadPlayerByID(): error while loading player %d: %v", id, err))
		return false
	}
	return true
}

// LoadPlayerByName behaves like LoadPlayerByID for a (name, world) lookup.
func (s *PlayerService) LoadPlayerByName(p *model.Player, name string, full bool) bool {
	if err := s.players.LoadPlayerByName(p, name, full); err != nil {
		s.logger.Warning(fmt.Sprintf("LoadPlayerByName(): error while loading player %s: %v", name, err))
		return false
	}
	return true
}

// SavePlayer runs the save pipeline. A failed stage rolled the transaction
// back, so the last successful save stays authoritative; the typed stage
// error never propagates past this method.
func (s *PlayerService) SavePlayer(p *model.Player) bool {
	if err := s.players.SavePlayer(p); err != nil {
		var stageErr *repository.StageError
		if errors.As(err, &stageErr) {
			s.logger.Exception(fmt.Sprintf("SavePlayer(): error occurred saving player %s at stage %s: %v", stageErr.Player, stageErr.Stage, stageErr.Err))
		} else {
			s.logger.Exception(fmt.Sprintf("SavePlayer(): error occurred saving player: %v", err))
		}
		return false
	}
	return true
}
