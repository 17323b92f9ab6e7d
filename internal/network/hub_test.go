package network

import (
	"os"
	"rogue-engine/pkg/api"
	"rogue-engine/pkg/logger"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestBroadcaster_SendTo(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("a")

	assert.True(t, b.HasSubscriber("a"))
	assert.False(t, b.HasSubscriber("b"))
	assert.False(t, b.SendTo("b", api.ServerResponse{Type: "UPDATE"}))

	require.True(t, b.SendTo("a", api.ServerResponse{Type: "UPDATE", Turn: 3}))
	msg := <-ch
	assert.Equal(t, 3, msg.Turn)
}

func TestBroadcaster_ReRegisterClosesOld(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("a")
	fresh := b.Register("a")

	_, open := <-old
	assert.False(t, open)
	assert.Equal(t, 1, b.SubscriberCount())

	b.SendTo("a", api.ServerResponse{Type: "UPDATE"})
	assert.Len(t, fresh, 1)
}

func TestBroadcaster_FullChannelDrops(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("a")

	for i := 0; i < cap(ch); i++ {
		require.True(t, b.SendTo("a", api.ServerResponse{Turn: i}))
	}
	assert.False(t, b.SendTo("a", api.ServerResponse{Turn: -1}))
	assert.Len(t, ch, cap(ch))
}

func TestBroadcaster_BroadcastAndUnregister(t *testing.T) {
	b := NewBroadcaster()
	a := b.Register("a")
	c := b.Register("c")

	b.Broadcast(api.ServerResponse{Type: "SHUTDOWN"})
	assert.Equal(t, "SHUTDOWN", (<-a).Type)
	assert.Equal(t, "SHUTDOWN", (<-c).Type)

	b.Unregister("a")
	_, open := <-a
	assert.False(t, open)
	assert.Equal(t, 1, b.SubscriberCount())

	// повторный Unregister безопасен
	b.Unregister("a")
}
