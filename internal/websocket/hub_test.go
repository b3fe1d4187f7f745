package websocket

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test double for Client that captures sent messages
type mockClient struct {
	id       string
	userID   string
	messages [][]byte
	mu       sync.Mutex
	closed   bool
}

func newMockClient(id string, userID string) *mockClient {
	return &mockClient{
		id:       id,
		userID:   userID,
		messages: make([][]byte, 0),
	}
}

func (m *mockClient) ID() string {
	return m.id
}

func (m *mockClient) UserID() string {
	return m.userID
}

func (m *mockClient) Send(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClientClosed
	}
	m.messages = append(m.messages, data)
	return nil
}

func (m *mockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockClient) GetMessages() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([][]byte, len(m.messages))
	copy(copied, m.messages)
	return copied
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()

	client1 := newMockClient("client-1", "auth0|alice")
	client2 := newMockClient("client-2", "auth0|alice")
	client3 := newMockClient("client-3", "auth0|bob")

	hub.Register(client1)
	hub.Register(client2)
	hub.Register(client3)

	assert.Equal(t, 2, hub.ClientCount("auth0|alice"))
	assert.Equal(t, 1, hub.ClientCount("auth0|bob"))
	assert.Equal(t, 0, hub.ClientCount("auth0|nobody"))
	assert.Equal(t, 3, hub.TotalClientCount())

	hub.Unregister(client1)
	assert.Equal(t, 1, hub.ClientCount("auth0|alice"))

	hub.Unregister(client2)
	hub.Unregister(client3)
	assert.Equal(t, 0, hub.ClientCount("auth0|alice"))
	assert.Equal(t, 0, hub.TotalClientCount())
}

func TestHub_Broadcast_UserIsolation(t *testing.T) {
	hub := NewHub()

	aliceLaptop := newMockClient("alice-laptop", "auth0|alice")
	alicePhone := newMockClient("alice-phone", "auth0|alice")
	bob := newMockClient("bob", "auth0|bob")

	hub.Register(aliceLaptop)
	hub.Register(alicePhone)
	hub.Register(bob)

	hub.Broadcast("auth0|alice", ExpenseCreated(map[string]interface{}{"id": "42"}))

	time.Sleep(10 * time.Millisecond)

	assert.Len(t, aliceLaptop.GetMessages(), 1)
	assert.Len(t, alicePhone.GetMessages(), 1)
	assert.Len(t, bob.GetMessages(), 0, "other users must not see the event")
}

func TestHub_ConcurrentAccess(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup
	clientCount := 50

	clients := make([]*mockClient, clientCount)
	for i := 0; i < clientCount; i++ {
		clients[i] = newMockClient(fmt.Sprintf("client-%d", i), fmt.Sprintf("user-%d", i%5))
	}

	for i := 0; i < clientCount; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			hub.Register(clients[idx])
		}(i)
	}
	wg.Wait()

	assert.Equal(t, clientCount, hub.TotalClientCount())

	for i := 0; i < clientCount; i++ {
		wg.Add(2)
		go func(idx int) {
			defer wg.Done()
			hub.Broadcast(fmt.Sprintf("user-%d", idx%5), ExpenseUpdated(map[string]interface{}{"id": idx}))
		}(i)
		go func(idx int) {
			defer wg.Done()
			hub.Unregister(clients[idx])
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, hub.TotalClientCount())
}

func TestHub_UnregisterNonexistent(t *testing.T) {
	hub := NewHub()

	require.NotPanics(t, func() {
		hub.Unregister(newMockClient("client-1", "auth0|alice"))
	})
}

func TestHub_BroadcastToUserWithoutConnections(t *testing.T) {
	hub := NewHub()

	require.NotPanics(t, func() {
		hub.Broadcast("auth0|nobody", AccountCleared(nil))
	})
}
