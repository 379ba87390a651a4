package service

import (
	"emberfall_backend/model"

	"github.com/stretchr/testify/mock"
)

type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) LoadPlayerByID(p *model.Player, id uint32, full bool) bool {
	args := m.Called(p, id, full)
	return args.Bool(0)
}

func (m *MockPlayerService) LoadPlayerByName(p *model.Player, name string, full bool) bool {
	args := m.Called(p, name, full)
	return args.Bool(0)
}

func (m *MockPlayerService) SavePlayer(p *model.Player) bool {
	args := m.Called(p)
	return args.Bool(0)
}
