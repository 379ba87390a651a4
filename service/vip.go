package service

import (
	"emberfall_backend/model"
	"fmt"
)

// VIPService applies the best-effort write policy: a failed VIP mutation is
// logged with its statement context and swallowed, because VIP state is not
// critical to gameplay continuity. Reads return an empty slice whether the
// account has no entries or the query failed; downstream UI treats both the
// same way.
type VIPService struct {
	store  VIPStore
	logger LoggerInterface
}

func NewVIPService(store VIPStore, logger LoggerInterface) *VIPService {
	return &VIPService{store: store, logger: logger}
}

func (s *VIPService) GetVIPEntries(accountID uint32) []model.VIPEntry {
	entries, err := s.store.VIPEntries(accountID)
	if err != nil {
		s.logger.Exception(fmt.Sprintf("Failed to get VIP entries for account %d: %v", accountID, err))
		return []model.VIPEntry{}
	}
	return entries
}

func (s *VIPService) AddVIPEntry(accountID, guid uint32, description string, icon uint32, notify bool) {
	if err := s.store.AddVIPEntry(accountID, guid, description, icon, notify); err != nil {
		s.logger.Exception(fmt.Sprintf("Failed to add VIP entry for account %d: %v", accountID, err))
	}
}

func (s *VIPService) EditVIPEntry(accountID, guid uint32, description string, icon uint32, notify bool) {
	if err := s.store.EditVIPEntry(accountID, guid, description, icon, notify); err != nil {
		s.logger.Exception(fmt.Sprintf("Failed to edit VIP entry for account %d: %v", accountID, err))
	}
}

func (s *VIPService) RemoveVIPEntry(accountID, guid uint32) {
	if err := s.store.RemoveVIPEntry(accountID, guid); err != nil {
		s.logger.Exception(fmt.Sprintf("Failed to remove VIP entry for account %d: %v", accountID, err))
	}
}

func (s *VIPService) GetVIPGroupEntries(accountID, guid uint32) []model.VIPGroupEntry {
	entries, err := s.store.VIPGroupEntries(accountID, guid)
	if err != nil {
		s.logger.Exception(fmt.Sprintf("Failed to get VIP group entries for account %d: %v", accountID, err))
		return []model.VIPGroupEntry{}
	}
	return entries
}

func (s *VIPService) AddVIPGroupEntry(groupID uint8, accountID uint32, name string, customizable bool) {
	if err := s.store.AddVIPGroupEntry(groupID, accountID, name, customizable); err != nil {
		s.logger.Exception(fmt.Sprintf("Failed to add VIP group entry for account %d and group %d: %v", accountID, groupID, err))
	}
}

func (s *VIPService) EditVIPGroupEntry(groupID uint8, accountID uint32, name string, customizable bool) {
	if err := s.store.EditVIPGroupEntry(groupID, accountID, name, customizable); err != nil {
		s.logger.Exception(fmt.Sprintf("Failed to update VIP group entry for account %d and group %d: %v", accountID, groupID, err))
	}
}

func (s *VIPService) RemoveVIPGroupEntry(groupID uint8, accountID uint32) {
	if err := s.store.RemoveVIPGroupEntry(groupID, accountID); err != nil {
		s.logger.Exception(fmt.Sprintf("Failed to remove VIP group entry for account %d and group %d: %v", accountID, groupID, err))
	}
}

func (s *VIPService) AddGuidVIPGroupEntry(groupID uint8, accountID, guid uint32) {
	if err := s.store.AddGuidVIPGroupEntry(groupID, accountID, guid); err != nil {
		s.logger.Exception(fmt.Sprintf("Failed to add VIP group member for account %d, player %d and group %d: %v", accountID, guid, groupID, err))
	}
}

func (s *VIPService) RemoveGuidVIPGroupEntry(accountID, guid uint32) {
	if err := s.store.RemoveGuidVIPGroupEntry(accountID, guid); err != nil {
		s.logger.Exception(fmt.Sprintf("Failed to remove VIP group member for account %d and player %d: %v", accountID, guid, err))
	}
}
