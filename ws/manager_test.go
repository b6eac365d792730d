package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendToUserNotConnected(t *testing.T) {
	m := NewManager()

	err := m.SendToUser("u1", []byte("hello"))
	assert.Error(t, err)
	assert.False(t, m.IsConnected("u1"))
	assert.Empty(t, m.List())
}
