package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"github.com/valkey-io/valkey-go"
)

type Channel string

func (c Channel) String() string {
	return string(c)
}

const (
	NOTICE_CHANNEL  Channel = "toolcrib.notice"
	STORE_CHANNEL   Channel = "toolcrib.store"
	SESSION_CHANNEL Channel = "toolcrib.session"
)

type MessageType string

const (
	ERROR_NOTICE    MessageType = "error_notice"
	SUCCESS_NOTICE  MessageType = "success_notice"
	STORE_RELOADED  MessageType = "store_reloaded"
	SESSION_CHANGED MessageType = "session_changed"
)

const (
	mirrorQueueSize    = 64
	mirrorTimeout      = time.Second
	mirrorDrainTimeout = 2 * time.Second
)

type Event struct {
	ID        string         `json:"id"`
	Type      MessageType    `json:"type"`
	Channel   Channel        `json:"channel"`
	Data      map[string]any `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
}

type EventHandler func(event Event) error

type mirroredEvent struct {
	channel Channel
	id      string
	payload string
}

// mirrorFunc delivers one serialized event to the external broker.
type mirrorFunc func(ctx context.Context, channel Channel, payload string) error

// EventBus fans events out to in-process handlers. When a valkey client is
// configured every event is also mirrored, in publish order, to the channel of
// the same name by a background worker so Publish never waits on the network.
type EventBus struct {
	client   valkey.Client
	logger   logger.Logger
	handlers map[Channel][]EventHandler
	mutex    sync.RWMutex
	ctx      context.Context
	cancel   context.CancelFunc

	mirror  mirrorFunc
	outbox  chan mirroredEvent
	drained chan struct{}
	closed  bool
}

// New accepts a nil client for a purely local bus.
func New(client valkey.Client) *EventBus {
	var mirror mirrorFunc
	if client != nil {
		mirror = func(ctx context.Context, channel Channel, payload string) error {
			return client.Do(ctx, client.B().Publish().Channel(channel.String()).Message(payload).Build()).
				Error()
		}
	}

	eb := newBus(mirror)
	eb.client = client
	return eb
}

func newBus(mirror mirrorFunc) *EventBus {
	ctx, cancel := context.WithCancel(context.Background())

	eb := &EventBus{
		logger:   logger.New("EventBus"),
		handlers: make(map[Channel][]EventHandler),
		ctx:      ctx,
		cancel:   cancel,
		mirror:   mirror,
	}

	if mirror != nil {
		eb.outbox = make(chan mirroredEvent, mirrorQueueSize)
		eb.drained = make(chan struct{})
		go eb.runMirror()
	}

	return eb
}

func (eb *EventBus) Publish(channel Channel, event Event) error {
	log := eb.logger.Function("Publish")

	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if event.Channel == "" {
		event.Channel = channel
	}

	eb.notifyLocalHandlers(channel, event)

	if eb.mirror == nil {
		return nil
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		return log.Err("failed to marshal event", err, "eventID", event.ID)
	}

	eb.enqueue(mirroredEvent{channel: channel, id: event.ID, payload: string(eventData)})
	return nil
}

func (eb *EventBus) enqueue(event mirroredEvent) {
	eb.mutex.RLock()
	defer eb.mutex.RUnlock()

	if eb.closed {
		return
	}

	select {
	case eb.outbox <- event:
	default:
		eb.logger.Function("enqueue").
			Warn("mirror queue full, event dropped", "channel", event.channel, "eventID", event.id)
	}
}

func (eb *EventBus) runMirror() {
	log := eb.logger.Function("runMirror")
	defer close(eb.drained)

	for event := range eb.outbox {
		ctx, cancel := context.WithTimeout(eb.ctx, mirrorTimeout)
		err := eb.mirror(ctx, event.channel, event.payload)
		cancel()

		if err != nil {
			log.Er("failed to publish event to valkey", err, "channel", event.channel, "eventID", event.id)
			continue
		}
		log.Debug("Event published", "channel", event.channel, "eventID", event.id)
	}
}

func (eb *EventBus) Subscribe(channel Channel, handler EventHandler) {
	log := eb.logger.Function("Subscribe")

	eb.mutex.Lock()
	eb.handlers[channel] = append(eb.handlers[channel], handler)
	eb.mutex.Unlock()

	log.Debug("Handler subscribed to channel", "channel", channel)
}

func (eb *EventBus) notifyLocalHandlers(channel Channel, event Event) {
	log := eb.logger.Function("notifyLocalHandlers")

	eb.mutex.RLock()
	handlers := append([]EventHandler(nil), eb.handlers[channel]...)
	eb.mutex.RUnlock()

	for i, handler := range handlers {
		go func(h EventHandler, handlerIndex int) {
			if err := h(event); err != nil {
				log.Er(
					"handler failed",
					err,
					"channel",
					channel,
					"eventID",
					event.ID,
					"handlerIndex",
					handlerIndex,
				)
			}
		}(handler, i)
	}
}

// Close flushes queued mirror events for a bounded time, then drops the rest.
func (eb *EventBus) Close() error {
	log := eb.logger.Function("Close")

	eb.mutex.Lock()
	alreadyClosed := eb.closed
	eb.closed = true
	if !alreadyClosed && eb.outbox != nil {
		close(eb.outbox)
	}
	eb.mutex.Unlock()

	if alreadyClosed {
		return nil
	}

	if eb.drained != nil {
		select {
		case <-eb.drained:
		case <-time.After(mirrorDrainTimeout):
			log.Warn("mirror queue not drained before close")
		}
	}

	eb.cancel()
	if eb.client != nil {
		eb.client.Close()
	}

	log.Info("EventBus closed")
	return nil
}

func (eb *EventBus) PublishNotice(kind MessageType, message string) error {
	return eb.Publish(NOTICE_CHANNEL, Event{
		Type: kind,
		Data: map[string]any{"message": message},
	})
}
