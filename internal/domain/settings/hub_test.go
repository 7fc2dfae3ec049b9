package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHubFanOut(t *testing.T) {
	h := NewHub(nil)

	_, ch1, unsub1 := h.Subscribe()
	_, ch2, unsub2 := h.Subscribe()
	defer unsub1()
	defer unsub2()

	ev := Event{Kind: KindContactInfo, Data: ContactInfo{Phone: "+962771234567"}}
	h.Publish(ev)

	assert.Equal(t, ev, recv(t, ch1))
	assert.Equal(t, ev, recv(t, ch2))
}

func TestHubUnsubscribeStopsDelivery(t *testing.T) {
	h := NewHub(nil)

	_, ch, unsub := h.Subscribe()
	require.Equal(t, 1, h.Subscribers())

	unsub()
	assert.Equal(t, 0, h.Subscribers())

	// channel is closed after unsubscribe
	_, open := <-ch
	assert.False(t, open)

	// publishing after unsubscribe must not panic
	h.Publish(Event{Kind: KindBusinessHours, Data: DefaultBusinessHours()})
}

func TestHubUnsubscribeIdempotent(t *testing.T) {
	h := NewHub(nil)
	_, _, unsub := h.Subscribe()
	unsub()
	unsub()
	assert.Equal(t, 0, h.Subscribers())
}

func TestHubDropsWhenSubscriberLags(t *testing.T) {
	h := NewHub(nil)
	_, ch, unsub := h.Subscribe()
	defer unsub()

	for i := 0; i < 20; i++ {
		h.Publish(Event{Kind: KindWhatsAppNumbers, Data: WhatsAppNumbers{}})
	}
	// buffer is 8; the rest were dropped, and Publish never blocked
	assert.Len(t, ch, 8)
}
