package timeapi_adapter

import (
	"context"
	"regexp"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hendrikderyck/steven-car-company/internal/constants"
	"github.com/hendrikderyck/steven-car-company/internal/contextkeys"
	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
	"github.com/hendrikderyck/steven-car-company/internal/core/port"
)

var (
	// "9:41:22 am" or "21:41:22", optionally suffixed with the zone.
	timePattern = regexp.MustCompile(`(\d{1,2}:\d{2}:\d{2})\s*((?:am|pm)?)\s*(?:CES?T)?`)
	// "Friday, August 29, 2025"
	datePattern     = regexp.MustCompile(`([A-Z][a-z]+day),?\s+([A-Z][a-z]+)\s+(\d{1,2}),\s+(\d{4})`)
	timezonePattern = regexp.MustCompile(`\b(CEST|CET|UTC)\b`)
)

// Adapter scrapes the Leuven world-clock page for the showroom clock widget.
// The clock is decoration: any failure falls back to server time in the
// Brussels zone, never to an error.
type Adapter struct {
	client *resty.Client
}

var _ port.TimeFetcherPort = (*Adapter)(nil)

func NewAdapter() *Adapter {
	return &Adapter{
		client: resty.New().
			SetTimeout(10 * time.Second).
			SetHeader("User-Agent", constants.UserAgent),
	}
}

func NewAdapterWithClient(client *resty.Client) *Adapter {
	return &Adapter{client: client}
}

func (a *Adapter) FetchTime(ctx context.Context) *domain.TimeData {
	logger := contextkeys.LoggerFromContext(ctx)

	resp, err := a.client.R().SetContext(ctx).Get(constants.WorldClockURL)
	if err != nil || resp.IsError() {
		logger.Warn("World clock fetch failed, using server time", port.Fields{
			"error": errString(err, resp),
		})
		return fallbackTime()
	}

	html := resp.String()

	timeMatch := timePattern.FindStringSubmatch(html)
	dateMatch := datePattern.FindStringSubmatch(html)
	if timeMatch == nil || dateMatch == nil {
		logger.Warn("World clock page did not match expected layout, using server time", nil)
		return fallbackTime()
	}

	clock := timeMatch[1]
	if timeMatch[2] != "" {
		clock += " " + timeMatch[2]
	}

	timezone := "CET"
	if tz := timezonePattern.FindString(html); tz != "" {
		timezone = tz
	}

	return &domain.TimeData{
		Time:      clock,
		Date:      dateMatch[0],
		Timezone:  timezone,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		FetchedAt: "remote",
	}
}

// fallbackTime renders the server clock in the Brussels zone so the widget
// stays plausible when the upstream page is unreachable.
func fallbackTime() *domain.TimeData {
	loc, err := time.LoadLocation("Europe/Brussels")
	if err != nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)

	timezone := "CET"
	if name, _ := now.Zone(); name != "" {
		timezone = name
	}

	return &domain.TimeData{
		Time:      now.Format("15:04:05"),
		Date:      now.Format("Monday, January 2, 2006"),
		Timezone:  timezone,
		Timestamp: now.UTC().Format(time.RFC3339),
		FetchedAt: "local",
	}
}

func errString(err error, resp *resty.Response) string {
	if err != nil {
		return err.Error()
	}
	if resp != nil {
		return resp.Status()
	}
	return "unknown"
}
