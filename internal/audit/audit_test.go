package audit

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	id := uuid.New()
	before := time.Now().Unix()
	event := NewEvent(ActionCreate, EntityItem, id)
	after := time.Now().Unix()

	assert.Equal(t, ActionCreate, event.Action)
	assert.Equal(t, EntityItem, event.Entity)
	assert.Equal(t, id, event.ID)
	assert.GreaterOrEqual(t, event.Timestamp, before)
	assert.LessOrEqual(t, event.Timestamp, after)
}

func TestPublisher_Publish(t *testing.T) {
	pub := NewPublisher()
	mock := &mockObserver{}
	pub.Subscribe(mock)

	event := NewEvent(ActionUpdate, EntityUser, uuid.New())
	pub.Publish(event)

	mock.mu.Lock()
	defer mock.mu.Unlock()
	require.Len(t, mock.events, 1)
	assert.Equal(t, event, mock.events[0])
}

func TestPublisher_PublishMultipleObservers(t *testing.T) {
	pub := NewPublisher()
	mock1 := &mockObserver{}
	mock2 := &mockObserver{}
	pub.Subscribe(mock1)
	pub.Subscribe(mock2)

	pub.Publish(NewEvent(ActionDelete, EntityWishlist, uuid.New()))

	assert.Len(t, mock1.events, 1)
	assert.Len(t, mock2.events, 1)
}

func TestPublisher_Close(t *testing.T) {
	pub := NewPublisher()
	mock := &mockObserver{}
	pub.Subscribe(mock)

	err := pub.Close()

	assert.NoError(t, err)
	assert.True(t, mock.closed)
}

func TestPublisher_CloseClosesAllOnError(t *testing.T) {
	pub := NewPublisher()
	failing := &mockObserver{closeErr: errors.New("disk full")}
	healthy := &mockObserver{}
	pub.Subscribe(failing)
	pub.Subscribe(healthy)

	err := pub.Close()

	assert.ErrorContains(t, err, "disk full")
	assert.True(t, healthy.closed)
}

// Mock observer для тестов
type mockObserver struct {
	mu       sync.Mutex
	events   []Event
	closed   bool
	closeErr error
}

func (m *mockObserver) Notify(event Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

func (m *mockObserver) Close() error {
	m.closed = true
	return m.closeErr
}

// === FileObserver tests ===

func TestFileObserver_Notify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")

	obs, err := NewFileObserver(path)
	require.NoError(t, err)
	defer obs.Close()

	event := NewEvent(ActionCreate, EntitySubscription, uuid.New())
	obs.Notify(event)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed Event
	err = json.Unmarshal(content[:len(content)-1], &parsed) // убираем \n
	require.NoError(t, err)
	assert.Equal(t, event, parsed)
}

func TestFileObserver_MultipleWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")

	obs, err := NewFileObserver(path)
	require.NoError(t, err)

	obs.Notify(NewEvent(ActionCreate, EntityItem, uuid.New()))
	obs.Notify(NewEvent(ActionDelete, EntityUser, uuid.New()))
	require.NoError(t, obs.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"action":"create"`)
	assert.Contains(t, lines[1], `"entity":"user"`)
}

func TestFileObserver_InvalidPath(t *testing.T) {
	_, err := NewFileObserver("/nonexistent/path/audit.log")
	assert.Error(t, err)
}

// === HTTPObserver tests ===

func TestHTTPObserver_Notify(t *testing.T) {
	var received Event
	var receivedContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	obs := NewHTTPObserver(server.URL)
	event := NewEvent(ActionUpdate, EntityItem, uuid.New())
	obs.Notify(event)

	assert.Equal(t, "application/json", receivedContentType)
	assert.Equal(t, event, received)
}

func TestHTTPObserver_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	obs := NewHTTPObserver(server.URL)
	// Не должно паниковать
	obs.Notify(NewEvent(ActionDelete, EntityItem, uuid.New()))
}

func TestHTTPObserver_ConnectionError(t *testing.T) {
	obs := NewHTTPObserver("http://localhost:99999") // несуществующий порт
	// Не должно паниковать
	obs.Notify(NewEvent(ActionDelete, EntityItem, uuid.New()))
}

func TestHTTPObserver_Close(t *testing.T) {
	obs := NewHTTPObserver("http://example.com")
	assert.NoError(t, obs.Close())
}

// === Event JSON serialization ===

func TestEvent_JSONFormat(t *testing.T) {
	event := Event{
		Timestamp: 1234567890,
		Action:    ActionCreate,
		Entity:    EntityWishlist,
		ID:        uuid.MustParse("7f1c1c6e-1f7a-4b1e-9a55-0c0b8f9d2a10"),
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	expected := `{"ts":1234567890,"action":"create","entity":"wishlist","id":"7f1c1c6e-1f7a-4b1e-9a55-0c0b8f9d2a10"}`
	assert.JSONEq(t, expected, string(data))
}
