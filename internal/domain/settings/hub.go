package settings

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Kind identifies which singleton an Event carries.
type Kind string

const (
	KindWhatsAppNumbers Kind = "whatsappNumbers"
	KindContactInfo     Kind = "contactInfo"
	KindBusinessHours   Kind = "businessHours"
)

// Event is one settings change, pushed to every subscriber.
type Event struct {
	Kind Kind `json:"kind"`
	Data any  `json:"data"`
}

// Hub owns one Firestore listener per singleton document and fans changes
// out to any number of subscribers. Consumers subscribe to the hub instead
// of opening their own listeners against the same documents.
type Hub struct {
	repo *Repo
	log  *logrus.Entry

	mu    sync.RWMutex
	subs  map[string]chan Event
	stops []func()
}

func NewHub(repo *Repo) *Hub {
	return &Hub{
		repo: repo,
		log:  logrus.WithField("context", "settings.hub"),
		subs: map[string]chan Event{},
	}
}

// Start attaches the three shared listeners. Call Stop to detach them.
func (h *Hub) Start(ctx context.Context) {
	h.stops = append(h.stops,
		h.repo.WatchWhatsAppNumbers(ctx, func(n WhatsAppNumbers) {
			h.Publish(Event{Kind: KindWhatsAppNumbers, Data: n})
		}),
		h.repo.WatchContactInfo(ctx, func(c ContactInfo) {
			h.Publish(Event{Kind: KindContactInfo, Data: c})
		}),
		h.repo.WatchBusinessHours(ctx, func(b BusinessHours) {
			h.Publish(Event{Kind: KindBusinessHours, Data: b})
		}),
	)
	h.log.Info("settings listeners attached")
}

func (h *Hub) Stop() {
	for _, stop := range h.stops {
		stop()
	}
	h.stops = nil

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, ch := range h.subs {
		close(ch)
		delete(h.subs, id)
	}
}

// Publish fans an event out to all subscribers. Slow consumers have the
// event dropped rather than blocking the listener goroutine.
func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			h.log.WithField("subscriber", id).Warn("subscriber lagging, event dropped")
		}
	}
}

// Subscribe registers a consumer. The unsubscribe function closes the
// channel and must be called on consumer teardown.
func (h *Hub) Subscribe() (string, <-chan Event, func()) {
	id := uuid.NewString()
	ch := make(chan Event, 8)

	h.mu.Lock()
	h.subs[id] = ch
	h.mu.Unlock()

	unsub := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
	}
	return id, ch, unsub
}

// Current reads the present value of every singleton, so a late subscriber
// can be primed before streaming changes.
func (h *Hub) Current(ctx context.Context) ([]Event, error) {
	if h.repo == nil {
		return nil, nil
	}
	numbers, err := h.repo.GetWhatsAppNumbers(ctx)
	if err != nil {
		return nil, err
	}
	info, err := h.repo.GetContactInfo(ctx)
	if err != nil {
		return nil, err
	}
	hours, err := h.repo.GetBusinessHours(ctx)
	if err != nil {
		return nil, err
	}
	return []Event{
		{Kind: KindWhatsAppNumbers, Data: numbers},
		{Kind: KindContactInfo, Data: info},
		{Kind: KindBusinessHours, Data: hours},
	}, nil
}

// Subscribers reports the current subscriber count.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
