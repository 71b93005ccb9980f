package timeapi_adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFallbackTimeIsPlausible(t *testing.T) {
	data := fallbackTime()

	require.Equal(t, "local", data.FetchedAt)
	require.Regexp(t, `^\d{2}:\d{2}:\d{2}$`, data.Time)
	require.Regexp(t, `^[A-Z][a-z]+day, [A-Z][a-z]+ \d{1,2}, \d{4}$`, data.Date)
	require.Contains(t, []string{"CET", "CEST", "UTC"}, data.Timezone)

	ts, err := time.Parse(time.RFC3339, data.Timestamp)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestTimePatternMatchesWorldClockMarkup(t *testing.T) {
	html := `<span id="ct" class="h1">2:41:22 pm</span>
		<span id="ctdat">Friday, August 29, 2025</span>
		<span>CEST</span>`

	m := timePattern.FindStringSubmatch(html)
	require.NotNil(t, m)
	require.Equal(t, "2:41:22", m[1])
	require.Equal(t, "pm", m[2])

	d := datePattern.FindStringSubmatch(html)
	require.NotNil(t, d)
	require.Equal(t, "Friday, August 29, 2025", d[0])

	require.Equal(t, "CEST", timezonePattern.FindString(html))
}

// FetchTime must degrade, never error, when the upstream page is missing.
func TestFetchTimeNeverReturnsNil(t *testing.T) {
	adapter := NewAdapter()
	adapter.client.SetTimeout(time.Millisecond) // force the remote fetch to fail

	data := adapter.FetchTime(context.Background())
	require.NotNil(t, data)
	require.Equal(t, "local", data.FetchedAt)
}
