package service

import (
	"emberfall_backend/model"

	"github.com/stretchr/testify/mock"
)

type MockVIPService struct {
	mock.Mock
}

func (m *MockVIPService) GetVIPEntries(accountID uint32) []model.VIPEntry {
	args := m.Called(accountID)
	return args.Get(0).([]model.VIPEntry)
}

func (m *MockVIPService) AddVIPEntry(accountID, guid uint32, description string, icon uint32, notify bool) {
	m.Called(accountID, guid, description, icon, notify)
}

func (m *MockVIPService) EditVIPEntry(accountID, guid uint32, description string, icon uint32, notify bool) {
	m.Called(accountID, guid, description, icon, notify)
}

func (m *MockVIPService) RemoveVIPEntry(accountID, guid uint32) {
	m.Called(accountID, guid)
}

func (m *MockVIPService) GetVIPGroupEntries(accountID, guid uint32) []model.VIPGroupEntry {
	args := m.Called(accountID, guid)
	return args.Get(0).([]model.VIPGroupEntry)
}

func (m *MockVIPService) AddVIPGroupEntry(groupID uint8, accountID uint32, name string, customizable bool) {
	m.Called(groupID, accountID, name, customizable)
}

func (m *MockVIPService) EditVIPGroupEntry(groupID uint8, accountID uint32, name string, customizable bool) {
	m.Called(groupID, accountID, name, customizable)
}

func (m *MockVIPService) RemoveVIPGroupEntry(groupID uint8, accountID uint32) {
	m.Called(groupID, accountID)
}

func (m *MockVIPService) AddGuidVIPGroupEntry(groupID uint8, accountID, guid uint32) {
	m.Called(groupID, accountID, guid)
}

func (m *MockVIPService) RemoveGuidVIPGroupEntry(accountID, guid uint32) {
	m.Called(accountID, guid)
}
