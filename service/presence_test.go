package service

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testTracker(store *MockPresenceStore, log *MockLoggerService) (*PresenceTracker, prometheus.Gauge) {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "players_online_test"})
	return NewPresenceTracker(store, gauge, log), gauge
}

func TestSetOnlineDuplicateLogin(t *testing.T) {
	store := new(MockPresenceStore)
	log := new(MockLoggerService)
	store.On("InsertOnlinePlayer", uint32(10)).Return(nil)

	tracker, gauge := testTracker(store, log)

	tracker.SetOnline(10, true)
	tracker.SetOnline(10, true)
	tracker.SetOnline(10, true)

	assert.Equal(t, float64(1), testutil.ToFloat64(gauge), "repeated logins must not double-count")
	store.AssertNumberOfCalls(t, "InsertOnlinePlayer", 1)
	assert.True(t, tracker.IsOnline(10))
}

func TestSetOnlineLoginLogoutCycle(t *testing.T) {
	store := new(MockPresenceStore)
	log := new(MockLoggerService)
	store.On("InsertOnlinePlayer", uint32(10)).Return(nil)
	store.On("DeleteOnlinePlayer", uint32(10)).Return(nil)

	tracker, gauge := testTracker(store, log)

	tracker.SetOnline(10, true)
	assert.Equal(t, float64(1), testutil.ToFloat64(gauge))

	tracker.SetOnline(10, false)
	assert.Equal(t, float64(0), testutil.ToFloat64(gauge))
	assert.False(t, tracker.IsOnline(10))

	// A second login after logout counts again.
	tracker.SetOnline(10, true)
	assert.Equal(t, float64(1), testutil.ToFloat64(gauge))
	store.AssertNumberOfCalls(t, "InsertOnlinePlayer", 2)
}

func TestSetOnlineLogoutAlwaysProcessed(t *testing.T) {
	store := new(MockPresenceStore)
	log := new(MockLoggerService)
	store.On("DeleteOnlinePlayer", uint32(10)).Return(nil)

	tracker, _ := testTracker(store, log)

	// Even without a tracked login the relation delete still runs; the
	// process may have restarted since the player logged in.
	tracker.SetOnline(10, false)
	store.AssertNumberOfCalls(t, "DeleteOnlinePlayer", 1)
}

func TestSetOnlineZeroGUIDIgnored(t *testing.T) {
	store := new(MockPresenceStore)
	log := new(MockLoggerService)

	tracker, gauge := testTracker(store, log)

	tracker.SetOnline(0, true)
	tracker.SetOnline(0, false)

	assert.Equal(t, float64(0), testutil.ToFloat64(gauge))
	store.AssertNotCalled(t, "InsertOnlinePlayer", mock.Anything)
	store.AssertNotCalled(t, "DeleteOnlinePlayer", mock.Anything)
}

func TestSetOnlineStoreFailureLogged(t *testing.T) {
	store := new(MockPresenceStore)
	log := new(MockLoggerService)
	store.On("InsertOnlinePlayer", uint32(10)).Return(errors.New("deadlock"))
	log.On("Exception", mock.AnythingOfType("string")).Return()

	tracker, gauge := testTracker(store, log)

	tracker.SetOnline(10, true)

	// The cache and gauge still advance so the session is not re-counted on
	// the next login event.
	assert.Equal(t, float64(1), testutil.ToFloat64(gauge))
	assert.True(t, tracker.IsOnline(10))
	log.AssertExpectations(t)
}

func TestOnlineCount(t *testing.T) {
	store := new(MockPresenceStore)
	log := new(MockLoggerService)
	store.On("OnlineCount").Return(42, nil)

	tracker, _ := testTracker(store, log)
	assert.Equal(t, 42, tracker.OnlineCount())
}

func TestOnlineCountFailure(t *testing.T) {
	store := new(MockPresenceStore)
	log := new(MockLoggerService)
	store.On("OnlineCount").Return(0, errors.New("connection lost"))
	log.On("Exception", mock.AnythingOfType("string")).Return()

	tracker, _ := testTracker(store, log)
	assert.Zero(t, tracker.OnlineCount())
	log.AssertExpectations(t)
}
