// Package provider contains the calendar-source clients that feed the
// engine. The engine never fetches events itself; these clients are the
// upstream collaborators that produce the event lists it consumes, and
// only the HTTP layer composes the two.
package provider

import (
	"context"
	"fmt"
	"time"

	"clashcal/internal/calendar"
)

// Client fetches events for one source calendar within a window.
type Client interface {
	ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]calendar.Event, error)
}

// Multi fans a ListEvents call out to a named set of clients, typically
// one Google client plus an ICS client, and concatenates the results.
type Multi struct {
	clients map[string]Client
}

// NewMulti creates an empty multi-source client.
func NewMulti() *Multi {
	return &Multi{clients: make(map[string]Client)}
}

// Register adds a named source client.
func (m *Multi) Register(name string, c Client) {
	m.clients[name] = c
}

// HasSources reports whether any client is registered.
func (m *Multi) HasSources() bool {
	return len(m.clients) > 0
}

// ListAll fetches the given calendar from every registered client and
// merges the results. A calendar unknown to a client yields no events
// from it, but a transport failure fails the whole call: a partial event
// list would silently hide conflicts.
func (m *Multi) ListAll(ctx context.Context, calendarIDs []string, timeMin, timeMax time.Time) ([]calendar.Event, error) {
	var all []calendar.Event
	for name, client := range m.clients {
		for _, id := range calendarIDs {
			events, err := client.ListEvents(ctx, id, timeMin, timeMax)
			if err != nil {
				return nil, fmt.Errorf("provider %s, calendar %s: %w", name, id, err)
			}
			all = append(all, events...)
		}
	}
	return all, nil
}
