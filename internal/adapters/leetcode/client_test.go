package leetcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCalendar(t *testing.T) {
	t.Parallel()

	t.Run("maps timestamps to dates", func(t *testing.T) {
		t.Parallel()
		// 1710720000 = 2024-03-18 00:00 UTC
		counts := parseCalendar(`{"1710720000": 3, "1710806400": 1}`)

		assert.Equal(t, 3, counts["2024-03-18"])
		assert.Equal(t, 1, counts["2024-03-19"])
	})

	t.Run("skips malformed keys", func(t *testing.T) {
		t.Parallel()
		counts := parseCalendar(`{"not-a-timestamp": 2, "1710720000": 1}`)

		assert.Len(t, counts, 1)
		assert.Equal(t, 1, counts["2024-03-18"])
	})

	t.Run("empty or unreadable input yields empty map", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, parseCalendar(""))
		assert.Empty(t, parseCalendar("{{{"))
	})
}

func TestParseCompanies(t *testing.T) {
	t.Parallel()

	t.Run("wrapped stats object", func(t *testing.T) {
		t.Parallel()
		names := parseCompanies(`{"stats": [{"tagName": "Google"}, {"tagName": "Meta"}]}`)
		assert.Equal(t, []string{"Google", "Meta"}, names)
	})

	t.Run("bare list", func(t *testing.T) {
		t.Parallel()
		names := parseCompanies(`[{"tagName": "Amazon"}]`)
		assert.Equal(t, []string{"Amazon"}, names)
	})

	t.Run("empty and garbage", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, parseCompanies(""))
		assert.Nil(t, parseCompanies("not json"))
	})
}

func TestParseAcceptanceRate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "49.5%", parseAcceptanceRate(`{"acRate": "49.5%"}`))
	assert.Equal(t, "", parseAcceptanceRate(""))
	assert.Equal(t, "", parseAcceptanceRate("broken"))
}

func TestNewClient_Options(t *testing.T) {
	t.Parallel()

	c := NewClient("someone",
		WithSession("sess", "csrf"),
		WithMaxRetries(5),
	)

	assert.Equal(t, "someone", c.username)
	assert.Equal(t, "sess", c.sessionID)
	assert.Equal(t, "csrf", c.csrfToken)
	assert.Equal(t, 5, c.maxRetries)

	// non-positive values keep the defaults
	d := NewClient("someone", WithMaxRetries(0))
	assert.Equal(t, 3, d.maxRetries)
}
