package event

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// sendTimeout bounds how long one stuck subscriber can hold up a broadcast.
const sendTimeout = 200 * time.Millisecond

type SSEServer struct {
	clients map[string]map[chan Event]bool
	events  chan Event
	mu      sync.Mutex
}

func NewSSEServer() EventSender {
	return &SSEServer{
		clients: make(map[string]map[chan Event]bool),
		events:  make(chan Event, 256),
	}
}

// Register subscribes a client channel to a topic.
func (s *SSEServer) Register(topic string, client chan Event) {
	s.mu.Lock()
	if _, ok := s.clients[topic]; !ok {
		s.clients[topic] = make(map[chan Event]bool)
	}
	s.clients[topic][client] = true
	total := len(s.clients[topic])
	s.mu.Unlock()
	log.Info().Msgf("New client registered to topic %s. Total clients: %d", topic, total)
}

// Unregister removes a client channel from a topic and closes it. Closing
// happens under the same lock the dispatch loop sends under, so a broadcast
// can never hit a closed channel.
func (s *SSEServer) Unregister(topic string, client chan Event) {
	s.mu.Lock()
	if clients, ok := s.clients[topic]; ok {
		if clients[client] {
			delete(clients, client)
			close(client)
		}
		if len(clients) == 0 {
			delete(s.clients, topic)
		}
	}
	remaining := len(s.clients[topic])
	s.mu.Unlock()
	log.Info().Msgf("Client unregistered from topic %s. Remaining clients: %d", topic, remaining)
}

// Broadcast queues an event for every current subscriber of its topic.
func (s *SSEServer) Broadcast(event Event) {
	s.events <- event
}

// Run drains the event queue. A single loop dispatches everything, so
// subscribers of one topic observe events in broadcast order.
func (s *SSEServer) Run() {
	for event := range s.events {
		s.mu.Lock()
		for client := range s.clients[event.Topic] {
			select {
			case client <- event:
			case <-time.After(sendTimeout):
				log.Warn().
					Str("topic", event.Topic).
					Str("type", event.Type).
					Msg("dropping event for slow client")
			}
		}
		s.mu.Unlock()
	}
}
