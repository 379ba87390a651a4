package service

import (
	"emberfall_backend/model"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) GameWorldAuthentication(descriptor, password, characterName string, oldProtocol bool) (uint32, bool) {
	args := m.Called(descriptor, password, characterName, oldProtocol)
	return args.Get(0).(uint32), args.Bool(1)
}

func (m *MockAuthService) GetAccountType(accountID uint32) uint8 {
	args := m.Called(accountID)
	return args.Get(0).(uint8)
}

func (m *MockAuthService) CreateSession(accountID uint32) (string, error) {
	args := m.Called(accountID)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Characters(accountID uint32) ([]model.AccountCharacter, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AccountCharacter), args.Error(1)
}
