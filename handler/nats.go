package handler

import (
	"encoding/json"
	"log"

	"comments-service/metrics"
	"comments-service/model"

	"github.com/nats-io/nats.go"
)

const fetchSubject = "comments.fetched"

// EventPublisher publishes fetch events to NATS. Publishing is best-effort:
// a broker failure is logged and counted, never surfaced to the HTTP caller.
type EventPublisher struct {
	conn *nats.Conn
}

func NewEventPublisher(natsURL string) (*EventPublisher, error) {
	nc, err := nats.Connect(natsURL)
	if err != nil {
		return nil, err
	}
	return &EventPublisher{conn: nc}, nil
}

func (p *EventPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

func (p *EventPublisher) PublishFetch(event model.FetchEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[ERROR] Failed to marshal fetch event: %v", err)
		metrics.NatsMessagesPublished.WithLabelValues(fetchSubject, "error").Inc()
		return
	}

	if err := p.conn.Publish(fetchSubject, data); err != nil {
		log.Printf("[ERROR] Failed to publish fetch event: %v", err)
		metrics.NatsMessagesPublished.WithLabelValues(fetchSubject, "error").Inc()
		return
	}

	metrics.NatsMessagesPublished.WithLabelValues(fetchSubject, "ok").Inc()
	log.Printf("[INFO] Published fetch event for videoId=%s (%d threads, %d replies)",
		event.VideoID, event.ThreadCount, event.ReplyCount)
}
