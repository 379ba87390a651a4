package service

import (
	"emberfall_backend/model"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetVIPEntries(t *testing.T) {
	store := new(MockVIPStore)
	log := new(MockLoggerService)
	entries := []model.VIPEntry{{PlayerID: 3, Name: "Friend", Icon: 2, Notify: true}}
	store.On("VIPEntries", uint32(7)).Return(entries, nil)

	svc := NewVIPService(store, log)
	assert.Equal(t, entries, svc.GetVIPEntries(7))
}

func TestGetVIPEntriesFailureReturnsEmpty(t *testing.T) {
	store := new(MockVIPStore)
	log := new(MockLoggerService)
	store.On("VIPEntries", uint32(7)).Return(nil, errors.New("connection lost"))
	log.On("Exception", mock.AnythingOfType("string")).Return()

	svc := NewVIPService(store, log)
	entries := svc.GetVIPEntries(7)

	assert.NotNil(t, entries)
	assert.Empty(t, entries)
	log.AssertExpectations(t)
}

func TestVIPWritesSwallowFailures(t *testing.T) {
	boom := errors.New("deadlock")

	tests := []struct {
		name     string
		mockFunc func(*MockVIPStore)
		call     func(*VIPService)
	}{
		{
			"Add VIP entry",
			func(store *MockVIPStore) {
				store.On("AddVIPEntry", uint32(7), uint32(3), "buddy", uint32(2), true).Return(boom)
			},
			func(svc *VIPService) { svc.AddVIPEntry(7, 3, "buddy", 2, true) },
		},
		{
			"Edit VIP entry",
			func(store *MockVIPStore) {
				store.On("EditVIPEntry", uint32(7), uint32(3), "buddy", uint32(2), true).Return(boom)
			},
			func(svc *VIPService) { svc.EditVIPEntry(7, 3, "buddy", 2, true) },
		},
		{
			"Remove VIP entry",
			func(store *MockVIPStore) {
				store.On("RemoveVIPEntry", uint32(7), uint32(3)).Return(boom)
			},
			func(svc *VIPService) { svc.RemoveVIPEntry(7, 3) },
		},
		{
			"Add VIP group",
			func(store *MockVIPStore) {
				store.On("AddVIPGroupEntry", uint8(4), uint32(7), "Guild mates", true).Return(boom)
			},
			func(svc *VIPService) { svc.AddVIPGroupEntry(4, 7, "Guild mates", true) },
		},
		{
			"Edit VIP group",
			func(store *MockVIPStore) {
				store.On("EditVIPGroupEntry", uint8(4), uint32(7), "Guild mates", true).Return(boom)
			},
			func(svc *VIPService) { svc.EditVIPGroupEntry(4, 7, "Guild mates", true) },
		},
		{
			"Remove VIP group",
			func(store *MockVIPStore) {
				store.On("RemoveVIPGroupEntry", uint8(4), uint32(7)).Return(boom)
			},
			func(svc *VIPService) { svc.RemoveVIPGroupEntry(4, 7) },
		},
		{
			"Add VIP group member",
			func(store *MockVIPStore) {
				store.On("AddGuidVIPGroupEntry", uint8(4), uint32(7), uint32(3)).Return(boom)
			},
			func(svc *VIPService) { svc.AddGuidVIPGroupEntry(4, 7, 3) },
		},
		{
			"Remove VIP group member",
			func(store *MockVIPStore) {
				store.On("RemoveGuidVIPGroupEntry", uint32(7), uint32(3)).Return(boom)
			},
			func(svc *VIPService) { svc.RemoveGuidVIPGroupEntry(7, 3) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockVIPStore)
			log := new(MockLoggerService)
			tt.mockFunc(store)
			log.On("Exception", mock.AnythingOfType("string")).Return()

			// The mutation must neither panic nor surface the error.
			tt.call(NewVIPService(store, log))

			store.AssertExpectations(t)
			log.AssertNumberOfCalls(t, "Exception", 1)
		})
	}
}

func TestGetVIPGroupEntriesFailureReturnsEmpty(t *testing.T) {
	store := new(MockVIPStore)
	log := new(MockLoggerService)
	store.On("VIPGroupEntries", uint32(7), uint32(0)).Return(nil, errors.New("connection lost"))
	log.On("Exception", mock.AnythingOfType("string")).Return()

	svc := NewVIPService(store, log)
	groups := svc.GetVIPGroupEntries(7, 0)

	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}
