package multiplexer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMessageRouterFunc 测试函数适配器
func TestMessageRouterFunc(t *testing.T) {
	var got Message
	var router MessageRouter = MessageRouterFunc(func(_ context.Context, msg Message) error {
		got = msg
		return nil
	})

	msg := &ChunkFetching{}
	assert.NoError(t, router.Route(context.Background(), msg))
	assert.Same(t, msg, got)
}
