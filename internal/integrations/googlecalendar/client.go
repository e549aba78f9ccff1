package googlecalendar

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
	"github.com/m04kA/SMC-ScheduleAssistant/internal/infra/credstore"
)

// Client клиент Google Calendar API
// Токен пользователя берется из хранилища; истекший access token
// обновляется TokenSource по refresh token, обновленный токен
// сохраняется обратно
type Client struct {
	oauthConfig *oauth2.Config
	tokens      *credstore.Store
	calendarIDs []string
	loc         *time.Location
	log         Logger
}

// NewClient создает новый экземпляр клиента Google Calendar
// calendarIDs - список календарей, занятость которых учитывается при поиске
// слотов; события создаются в первом из них
func NewClient(oauthConfig *oauth2.Config, tokens *credstore.Store, calendarIDs []string, loc *time.Location, log Logger) *Client {
	if len(calendarIDs) == 0 {
		calendarIDs = []string{domain.DefaultCalendarID}
	}
	return &Client{
		oauthConfig: oauthConfig,
		tokens:      tokens,
		calendarIDs: calendarIDs,
		loc:         loc,
		log:         log,
	}
}

// ListEvents возвращает события всех настроенных календарей за окно,
// отсортированные по началу
func (c *Client) ListEvents(ctx context.Context, userID string, window domain.TimeInterval) ([]Event, error) {
	svc, err := c.serviceFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0)
	for _, calendarID := range c.calendarIDs {
		items, err := c.listCalendar(ctx, svc, calendarID, window)
		if err != nil {
			return nil, err
		}
		events = append(events, items...)
	}

	sortEventsByStart(events)
	return events, nil
}

// ListBusy возвращает занятые интервалы всех настроенных календарей за окно
// События на весь день блокируют весь день
func (c *Client) ListBusy(ctx context.Context, userID string, window domain.TimeInterval) ([]domain.TimeInterval, error) {
	events, err := c.ListEvents(ctx, userID, window)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.TimeInterval, 0, len(events))
	for _, ev := range events {
		busy = append(busy, domain.TimeInterval{Start: ev.Start, End: ev.End})
	}
	return busy, nil
}

// CreateEvent создает событие в первом настроенном календаре
func (c *Client) CreateEvent(ctx context.Context, userID string, title string, interval domain.TimeInterval) (*Event, error) {
	svc, err := c.serviceFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	calendarID := c.calendarIDs[0]
	event := &calendar.Event{
		Summary: title,
		Start: &calendar.EventDateTime{
			DateTime: interval.Start.In(c.loc).Format(time.RFC3339),
			TimeZone: c.loc.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: interval.End.In(c.loc).Format(time.RFC3339),
			TimeZone: c.loc.String(),
		},
		Reminders: &calendar.EventReminders{
			UseDefault:      true,
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := svc.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateEvent - insert event: %v", ErrWriteCalendar, err)
	}

	c.log.Info("Created calendar event id=%s calendar=%s start=%s", created.Id, calendarID, interval.Start.Format(time.RFC3339))

	return &Event{
		ID:         created.Id,
		CalendarID: calendarID,
		Title:      title,
		Start:      interval.Start,
		End:        interval.End,
	}, nil
}

// serviceFor строит calendar.Service под токен конкретного пользователя
func (c *Client) serviceFor(ctx context.Context, userID string) (*calendar.Service, error) {
	token, err := c.tokens.Get(ctx, userID)
	if errors.Is(err, credstore.ErrCredentialsNotFound) {
		return nil, fmt.Errorf("%w: user=%s", ErrNoCredentials, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: serviceFor - load token: %v", ErrReadCalendar, err)
	}

	source := c.oauthConfig.TokenSource(ctx, token)
	svc, err := calendar.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("%w: serviceFor - build service: %v", ErrReadCalendar, err)
	}

	// TokenSource мог обновить access token - сохраняем свежий
	if fresh, err := source.Token(); err == nil && fresh.AccessToken != token.AccessToken {
		if saveErr := c.tokens.Save(ctx, userID, fresh); saveErr != nil {
			c.log.Warn("Failed to persist refreshed token for user=%s: %v", userID, saveErr)
		}
	}

	return svc, nil
}

// listCalendar читает события одного календаря за окно
func (c *Client) listCalendar(ctx context.Context, svc *calendar.Service, calendarID string, window domain.TimeInterval) ([]Event, error) {
	call := svc.Events.List(calendarID).
		TimeMin(window.Start.Format(time.RFC3339)).
		TimeMax(window.End.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)

	events := make([]Event, 0)
	pageToken := ""
	for {
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("%w: listCalendar - list %s: %v", ErrReadCalendar, calendarID, err)
		}

		for _, item := range resp.Items {
			ev, ok := c.convertEvent(calendarID, item)
			if !ok {
				continue
			}
			events = append(events, ev)
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return events, nil
}

// convertEvent переводит событие API в модель клиента
// События с датой без времени (на весь день) разворачиваются в полные сутки
func (c *Client) convertEvent(calendarID string, item *calendar.Event) (Event, bool) {
	if item.Start == nil || item.End == nil {
		return Event{}, false
	}

	ev := Event{
		ID:         item.Id,
		CalendarID: calendarID,
		Title:      item.Summary,
	}

	if item.Start.DateTime != "" {
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			c.log.Warn("Skipping event %s with bad start %q: %v", item.Id, item.Start.DateTime, err)
			return Event{}, false
		}
		end, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			c.log.Warn("Skipping event %s with bad end %q: %v", item.Id, item.End.DateTime, err)
			return Event{}, false
		}
		ev.Start = start.In(c.loc)
		ev.End = end.In(c.loc)
		return ev, true
	}

	// Событие на весь день: Date без времени, End.Date эксклюзивный
	start, err := time.ParseInLocation(domain.DateFormat, item.Start.Date, c.loc)
	if err != nil {
		c.log.Warn("Skipping all-day event %s with bad start %q: %v", item.Id, item.Start.Date, err)
		return Event{}, false
	}
	end, err := time.ParseInLocation(domain.DateFormat, item.End.Date, c.loc)
	if err != nil {
		c.log.Warn("Skipping all-day event %s with bad end %q: %v", item.Id, item.End.Date, err)
		return Event{}, false
	}
	ev.Start = start
	ev.End = end
	ev.AllDay = true
	return ev, true
}

func sortEventsByStart(events []Event) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
}
