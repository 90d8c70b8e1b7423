package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"clashcal/internal/calendar"
	"clashcal/internal/util"
)

// maxOccurrences caps recurrence expansion per event as a guard against
// pathological rules.
const maxOccurrences = 1000

// ICS fetches events from ICS feeds. Sources maps a calendar id to its
// feed URL; RRULE recurrences are expanded within the query window.
type ICS struct {
	client  *http.Client
	sources map[string]string
}

// NewICS creates an ICS client over the configured sources.
func NewICS(sources map[string]string) *ICS {
	return &ICS{
		client:  &http.Client{Timeout: 15 * time.Second},
		sources: sources,
	}
}

// ListEvents implements Client. An unknown calendar id yields no events;
// a fetch or parse failure fails the call.
func (c *ICS) ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]calendar.Event, error) {
	url, ok := c.sources[calendarID]
	if !ok {
		return nil, nil
	}

	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ICS feed: %w", err)
	}

	cal, err := ical.ParseCalendar(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ICS feed: %w", err)
	}

	var events []calendar.Event
	for _, ve := range cal.Events() {
		expanded, err := expandVEvent(calendarID, ve, timeMin, timeMax)
		if err != nil {
			// Skip the broken VEVENT but keep the rest of the feed.
			util.Warn("Skipping unparseable ICS event", "calendar_id", calendarID, "error", err)
			continue
		}
		events = append(events, expanded...)
	}
	return events, nil
}

func (c *ICS) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// expandVEvent converts one VEVENT into concrete engine events. A
// non-recurring event inside the window yields one; an RRULE yields one
// per occurrence, each carrying the base event's duration.
func expandVEvent(calendarID string, ve *ical.VEvent, timeMin, timeMax time.Time) ([]calendar.Event, error) {
	uidProp := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uidProp == nil || uidProp.Value == "" {
		return nil, fmt.Errorf("missing UID")
	}
	uid := uidProp.Value

	summary := ""
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		summary = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return nil, fmt.Errorf("event %s: bad DTSTART: %w", uid, err)
	}
	end, err := ve.GetEndAt()
	if err != nil {
		// DTEND is optional in ICS; fall back to a zero-duration
		// instant, which the overlap math degrades explicitly.
		end = start
	}

	rruleProp := ve.GetProperty(ical.ComponentPropertyRrule)
	if rruleProp == nil || rruleProp.Value == "" {
		if start.Before(timeMax) && end.After(timeMin) || start.Equal(timeMin) {
			return []calendar.Event{{
				ID:         uid,
				Summary:    summary,
				Start:      start,
				End:        end,
				CalendarID: calendarID,
			}}, nil
		}
		return nil, nil
	}

	rule, err := rrule.StrToRRule(rruleProp.Value)
	if err != nil {
		return nil, fmt.Errorf("event %s: bad RRULE %q: %w", uid, rruleProp.Value, err)
	}
	rule.DTStart(start)

	occurrences := rule.Between(timeMin.In(start.Location()), timeMax.In(start.Location()), true)
	if len(occurrences) > maxOccurrences {
		occurrences = occurrences[:maxOccurrences]
	}

	duration := end.Sub(start)
	events := make([]calendar.Event, 0, len(occurrences))
	for _, occStart := range occurrences {
		events = append(events, calendar.Event{
			ID:         fmt.Sprintf("%s_%s", uid, occStart.UTC().Format("20060102T150405Z")),
			Summary:    summary,
			Start:      occStart,
			End:        occStart.Add(duration),
			CalendarID: calendarID,
		})
	}
	return events, nil
}
