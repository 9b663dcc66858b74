package tsml

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeetingsParsesFeedAndCaches(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		// Day arrives as a number or a quoted string depending on the feed.
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "Morning Light", "day": 0, "time": "09:00", "group": "Serenity", "group_id": 10},
			{"id": 2, "name": "Midweek", "day": "3", "time": "18:00"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Hour)

	meetings, err := client.Meetings(context.Background())
	require.NoError(t, err)
	require.Len(t, meetings, 2)
	assert.Equal(t, 0, meetings[0].Day)
	assert.Equal(t, "Serenity", meetings[0].Group)
	assert.Equal(t, int64(10), meetings[0].GroupID)
	assert.Equal(t, 3, meetings[1].Day)

	// Second lookup within the TTL is served from cache.
	_, err = client.Meetings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestMeetingsEmptyFeedURL(t *testing.T) {
	client := NewClient("", time.Hour)
	meetings, err := client.Meetings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, meetings)
}

func TestMeetingsFeedFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Hour)
	_, err := client.Meetings(context.Background())
	assert.Error(t, err)
}
