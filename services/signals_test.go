package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusDeliversInOrder(t *testing.T) {
	bus := NewBus[OpenChatRequest]()
	var got []string

	bus.Subscribe(func(r OpenChatRequest) { got = append(got, "a:"+r.Source) })
	bus.Subscribe(func(r OpenChatRequest) { got = append(got, "b:"+r.Source) })

	n := bus.Publish(OpenChatRequest{Source: "nav"})
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"a:nav", "b:nav"}, got)
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus[int]()
	calls := 0

	unsub := bus.Subscribe(func(int) { calls++ })
	bus.Publish(1)
	unsub()
	unsub()
	bus.Publish(2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.Len())
}

func TestBusPublishWithoutSubscribers(t *testing.T) {
	bus := NewBus[OpenChatRequest]()
	assert.Equal(t, 0, bus.Publish(OpenChatRequest{}))
}

func TestBusSubscriberMayUnsubscribeDuringPublish(t *testing.T) {
	bus := NewBus[int]()
	var unsub func()
	calls := 0
	unsub = bus.Subscribe(func(int) {
		calls++
		unsub()
	})

	bus.Publish(1)
	bus.Publish(2)
	assert.Equal(t, 1, calls)
}
