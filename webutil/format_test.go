package webutil

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{`<script>alert("x")</script>`, "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;"},
		{"Tom & Jerry's", "Tom &amp; Jerry&#x27;s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeHTML(tt.in), "input %q", tt.in)
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.March, 4, 21, 5, 9, 0, time.UTC)
	assert.Equal(t, "Mar 4, 2024, 09:05 PM", FormatDate(ts))
}

func TestFormatTimestamp(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	full := func(d time.Duration) string { return now.Add(-d).Format(timestampLayout) }
	small := func(s string) string {
		return `<br><small style="color: #3b82f6; font-weight: 600;">` + s + `</small>`
	}

	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{"just now", 30 * time.Second, full(30*time.Second) + small("Just now")},
		{"one minute", 90 * time.Second, full(90*time.Second) + small("1 min ago")},
		{"minutes", 45 * time.Minute, full(45*time.Minute) + small("45 mins ago")},
		{"one hour", 61 * time.Minute, full(61*time.Minute) + small("1 hour ago")},
		{"hours", 5 * time.Hour, full(5*time.Hour) + small("5 hours ago")},
		{"one day", 25 * time.Hour, full(25*time.Hour) + small("1 day ago")},
		{"days", 6 * 24 * time.Hour, full(6*24*time.Hour) + small("6 days ago")},
		{"week old", 7 * 24 * time.Hour, full(7 * 24 * time.Hour)},
		{"future", -time.Hour, full(-time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(now.Add(-tt.age), now))
		})
	}
}

func TestFormData(t *testing.T) {
	values := url.Values{
		"name":  {"Ann"},
		"email": {"first@x.io", "second@x.io"},
		"empty": {},
	}

	data := FormData(values)

	assert.Equal(t, map[string]string{"name": "Ann", "email": "second@x.io"}, data)
}
