package organiser

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sessionwatch/lib/telemetry"
	"sessionwatch/lib/timezone"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseSessionDate(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/scrapers/organiser")
	defer cleanup()

	now := time.Date(2026, time.February, 18, 10, 0, 0, 0, timezone.Location)

	testCases := []struct {
		text     string
		expected time.Time
		ok       bool
	}{
		{
			text:     "Sat 21 Feb – BOOKINGS: 10/20",
			expected: time.Date(2026, time.February, 21, 0, 0, 0, 0, timezone.Location),
			ok:       true,
		},
		{
			text:     "sat 7 mar social session",
			expected: time.Date(2026, time.March, 7, 0, 0, 0, 0, timezone.Location),
			ok:       true,
		},
		{
			// not a real calendar date
			text: "Sat 31 Feb – BOOKINGS: 10/20",
			ok:   false,
		},
		{
			text: "Sunday 22 Feb – BOOKINGS: 10/20",
			ok:   false,
		},
		{
			text: "no date in here at all",
			ok:   false,
		},
	}

	for _, test := range testCases {
		date, ok := ParseSessionDate(test.text, now)
		require.Equal(t, test.ok, ok, test.text)
		if test.ok {
			require.True(t, date.Equal(test.expected), test.text)
		}
	}
}

func spoilerSection(title string) string {
	return fmt.Sprintf(
		`<div class="su-spoiler"><div class="su-spoiler-title">%s</div><div class="su-spoiler-content">details</div></div>`,
		title,
	)
}

func pageMarkup(titles ...string) []byte {
	body := ""
	for _, title := range titles {
		body += spoilerSection(title)
	}
	return []byte(fmt.Sprintf(`<html><body><div class="entry-content">%s</div></body></html>`, body))
}

func TestExtractSessions(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/scrapers/organiser")
	defer cleanup()

	now := time.Date(2026, time.February, 18, 10, 0, 0, 0, timezone.Location)

	markup := pageMarkup(
		"Sat 21 Feb – Indoor – BOOKINGS: 12 / 20",
		"Sun 22 Feb – Social – BOOKINGS: 3 / 20",
		"Saturday announcements, no counter here",
		"BOOKINGS: 5/20",
		"Sat 28 Feb – Indoor – BOOKINGS: 4/20",
	)

	sessions, err := ExtractSessions(markup, now)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Session{
		{
			Description:    "Sat 21 Feb – Indoor – BOOKINGS: 12 / 20",
			CurrentSignups: 12,
			MaxSignups:     20,
			Date:           time.Date(2026, time.February, 21, 0, 0, 0, 0, timezone.Location),
		},
		{
			Description:    "Sat 28 Feb – Indoor – BOOKINGS: 4/20",
			CurrentSignups: 4,
			MaxSignups:     20,
			Date:           time.Date(2026, time.February, 28, 0, 0, 0, 0, timezone.Location),
		},
	}
	if diff := cmp.Diff(expected, sessions); diff != "" {
		t.Fatal(diff)
	}
}

func TestExtractSessionsNoDate(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/scrapers/organiser")
	defer cleanup()

	now := time.Date(2026, time.February, 18, 10, 0, 0, 0, timezone.Location)

	sessions, err := ExtractSessions(pageMarkup("Saturday mystery session – BOOKINGS: 9/20"), now)
	if err != nil {
		t.Fatal(err)
	}

	require.Len(t, sessions, 1)
	require.True(t, sessions[0].Date.IsZero())
}

const passwordForm = `<html><body><form class="post-password-form" method="post"><input type="password" name="post_password"></form></body></html>`

func organiserServer(t *testing.T, password string) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/wp-login.php", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if r.FormValue("post_password") == password {
			http.SetCookie(w, &http.Cookie{Name: "wp-postpass_1", Value: "ok"})
		}
		http.Redirect(w, r, r.Header.Get("Referer"), http.StatusFound)
	})
	mux.HandleFunc("/organiser", func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("wp-postpass_1"); err != nil {
			fmt.Fprint(w, passwordForm)
			return
		}
		w.Write(pageMarkup("Sat 21 Feb – Indoor – BOOKINGS: 12 / 20"))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestFetchPage(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/scrapers/organiser")
	defer cleanup()

	server := organiserServer(t, "hunter2")

	client, err := NewClient(ClientOptions{
		PageUrl:  server.URL + "/organiser",
		Password: "hunter2",
	})
	if err != nil {
		t.Fatal(err)
	}

	markup, err := client.FetchPage(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	require.Contains(t, string(markup), "BOOKINGS: 12 / 20")
}

func TestFetchPageWrongPassword(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/scrapers/organiser")
	defer cleanup()

	server := organiserServer(t, "hunter2")

	client, err := NewClient(ClientOptions{
		PageUrl:  server.URL + "/organiser",
		Password: "wrong",
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = client.FetchPage(context.Background())
	require.ErrorIs(t, err, ErrLoginFailed)
}
