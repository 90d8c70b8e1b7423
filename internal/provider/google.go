package provider

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	oauthgoogle "golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"clashcal/internal/calendar"
	"clashcal/internal/config"
)

// Google fetches events from the Google Calendar API, either with a
// service-account credentials file or an OAuth token source.
type Google struct {
	credentialsFile string
	scopes          []string
	tokenSource     oauth2.TokenSource
}

// NewGoogle creates a client from provider configuration.
func NewGoogle(cfg config.GoogleProviderConfig) *Google {
	return &Google{
		credentialsFile: cfg.CredentialsFile,
		scopes:          cfg.Scopes,
	}
}

// NewGoogleWithToken creates a client that authenticates with an OAuth
// refresh token obtained out of band.
func NewGoogleWithToken(cfg config.GoogleProviderConfig, token *oauth2.Token) *Google {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scopes:       cfg.Scopes,
		Endpoint:     oauthgoogle.Endpoint,
	}
	return &Google{
		scopes:      cfg.Scopes,
		tokenSource: oauthCfg.TokenSource(context.Background(), token),
	}
}

// service returns a configured Calendar API service.
func (g *Google) service(ctx context.Context) (*gcal.Service, error) {
	var opts []option.ClientOption
	switch {
	case g.tokenSource != nil:
		opts = append(opts, option.WithTokenSource(g.tokenSource))
	case g.credentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(g.credentialsFile), option.WithScopes(g.scopes...))
	default:
		return nil, fmt.Errorf("google provider has no credentials configured")
	}

	service, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}
	return service, nil
}

// ListEvents implements Client. Recurring events are expanded by the API
// (singleEvents=true) so the engine only ever sees concrete instances.
func (g *Google) ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]calendar.Event, error) {
	service, err := g.service(ctx)
	if err != nil {
		return nil, err
	}

	call := service.Events.List(calendarID).
		Context(ctx).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime")

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]calendar.Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		ev, err := convertGoogleEvent(calendarID, item)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func convertGoogleEvent(calendarID string, item *gcal.Event) (calendar.Event, error) {
	start, err := parseGoogleTime(item.Start)
	if err != nil {
		return calendar.Event{}, fmt.Errorf("event %s start: %w", item.Id, err)
	}
	end, err := parseGoogleTime(item.End)
	if err != nil {
		return calendar.Event{}, fmt.Errorf("event %s end: %w", item.Id, err)
	}

	return calendar.Event{
		ID:         item.Id,
		Summary:    item.Summary,
		Start:      start,
		End:        end,
		CalendarID: calendarID,
	}, nil
}

// parseGoogleTime handles both timed (DateTime) and all-day (Date)
// event boundaries.
func parseGoogleTime(t *gcal.EventDateTime) (time.Time, error) {
	if t == nil {
		return time.Time{}, fmt.Errorf("missing time")
	}
	if t.DateTime != "" {
		return time.Parse(time.RFC3339, t.DateTime)
	}
	if t.Date != "" {
		return time.Parse("2006-01-02", t.Date)
	}
	return time.Time{}, fmt.Errorf("empty time")
}
