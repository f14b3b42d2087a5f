// Package event announces ticket changes to other systems.
package event

import (
	"context"
	"time"
)

const (
	TypeTicketPurchased = "ticket.purchased"
	TypeTicketCancelled = "ticket.cancelled"
)

// TicketEvent is the JSON payload published for every ticket mutation.
type TicketEvent struct {
	Type        string    `json:"type"`
	TicketID    string    `json:"ticket_id"`
	ScreeningID string    `json:"screening_id,omitempty"`
	MovieTitle  string    `json:"movie_title,omitempty"`
	CinemaName  string    `json:"cinema_name,omitempty"`
	ShowTime    string    `json:"show_time,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, evt TicketEvent) error
	Close() error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, TicketEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
