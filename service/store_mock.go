package service

import (
	"emberfall_backend/model"
	"emberfall_backend/repository"

	"github.com/stretchr/testify/mock"
)

type MockAccountStore struct {
	mock.Mock
}

func (m *MockAccountStore) AccountByDescriptor(descriptor string) (*repository.AccountRow, error) {
	args := m.Called(descriptor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.AccountRow), args.Error(1)
}

func (m *MockAccountStore) AccountBySession(token string) (*repository.AccountRow, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.AccountRow), args.Error(1)
}

func (m *MockAccountStore) AccountCharacters(accountID uint32) ([]model.AccountCharacter, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AccountCharacter), args.Error(1)
}

func (m *MockAccountStore) AccountType(accountID uint32) (uint8, error) {
	args := m.Called(accountID)
	return args.Get(0).(uint8), args.Error(1)
}

func (m *MockAccountStore) CreateSession(accountID uint32) (string, error) {
	args := m.Called(accountID)
	return args.String(0), args.Error(1)
}

type MockPlayerStore struct {
	mock.Mock
}

func (m *MockPlayerStore) LoadPlayerByID(p *model.Player, id uint32, full bool) error {
	args := m.Called(p, id, full)
	return args.Error(0)
}

func (m *MockPlayerStore) LoadPlayerByName(p *model.Player, name string, full bool) error {
	args := m.Called(p, name, full)
	return args.Error(0)
}

func (m *MockPlayerStore) SavePlayer(p *model.Player) error {
	args := m.Called(p)
	return args.Error(0)
}

type MockVIPStore struct {
	mock.Mock
}

func (m *MockVIPStore) VIPEntries(accountID uint32) ([]model.VIPEntry, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VIPEntry), args.Error(1)
}

func (m *MockVIPStore) AddVIPEntry(accountID, guid uint32, description string, icon uint32, notify bool) error {
	args := m.Called(accountID, guid, description, icon, notify)
	return args.Error(0)
}

func (m *MockVIPStore) EditVIPEntry(accountID, guid uint32, description string, icon uint32, notify bool) error {
	args := m.Called(accountID, guid, description, icon, notify)
	return args.Error(0)
}

func (m *MockVIPStore) RemoveVIPEntry(accountID, guid uint32) error {
	args := m.Called(accountID, guid)
	return args.Error(0)
}

func (m *MockVIPStore) VIPGroupEntries(accountID, guid uint32) ([]model.VIPGroupEntry, error) {
	args := m.Called(accountID, guid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VIPGroupEntry), args.Error(1)
}

func (m *MockVIPStore) AddVIPGroupEntry(groupID uint8, accountID uint32, name string, customizable bool) error {
	args := m.Called(groupID, accountID, name, customizable)
	return args.Error(0)
}

func (m *MockVIPStore) EditVIPGroupEntry(groupID uint8, accountID uint32, name string, customizable bool) error {
	args := m.Called(groupID, accountID, name, customizable)
	return args.Error(0)
}

func (m *MockVIPStore) RemoveVIPGroupEntry(groupID uint8, accountID uint32) error {
	args := m.Called(groupID, accountID)
	return args.Error(0)
}

func (m *MockVIPStore) AddGuidVIPGroupEntry(groupID uint8, accountID, guid uint32) error {
	args := m.Called(groupID, accountID, guid)
	return args.Error(0)
}

func (m *MockVIPStore) RemoveGuidVIPGroupEntry(accountID, guid uint32) error {
	args := m.Called(accountID, guid)
	return args.Error(0)
}

type MockWorldStore struct {
	mock.Mock
}

func (m *MockWorldStore) CountWorlds() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockWorldStore) InsertWorld(w model.World) error {
	args := m.Called(w)
	return args.Error(0)
}

func (m *MockWorldStore) Worlds() ([]model.World, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.World), args.Error(1)
}

type MockPresenceStore struct {
	mock.Mock
}

func (m *MockPresenceStore) InsertOnlinePlayer(guid uint32) error {
	args := m.Called(guid)
	return args.Error(0)
}

func (m *MockPresenceStore) DeleteOnlinePlayer(guid uint32) error {
	args := m.Called(guid)
	return args.Error(0)
}

func (m *MockPresenceStore) OnlineCount() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}
