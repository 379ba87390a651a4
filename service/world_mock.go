package service

import (
	"emberfall_backend/model"

	"github.com/stretchr/testify/mock"
)

type MockWorldService struct {
	mock.Mock
}

func (m *MockWorldService) EnsureFirstWorld() {
	m.Called()
}

func (m *MockWorldService) LoadWorlds() []model.World {
	args := m.Called()
	return args.Get(0).([]model.World)
}

type MockPresenceService struct {
	mock.Mock
}

func (m *MockPresenceService) SetOnline(guid uint32, online bool) {
	m.Called(guid, online)
}

func (m *MockPresenceService) IsOnline(guid uint32) bool {
	args := m.Called(guid)
	return args.Bool(0)
}

func (m *MockPresenceService) OnlineCount() int {
	args := m.Called()
	return args.Int(0)
}
