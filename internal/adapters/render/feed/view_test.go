package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lets-share-cli/internal/domain"
)

func TestRenderFeedWithPosts(t *testing.T) {
	now := time.Date(2026, 8, 14, 11, 0, 0, 0, time.UTC)
	edited := now.Add(-1 * time.Hour)

	output, err := Render([]domain.Post{
		{
			ID:          2,
			Description: "Shipped the new search box today.",
			CreatedAt:   now.Add(-2 * time.Hour),
			UpdatedAt:   &edited,
			Author:      domain.User{ID: 1, FullName: "Ada Lovelace"},
		},
		{
			ID:          1,
			Description: "Hello world!",
			CreatedAt:   now.Add(-3 * 24 * time.Hour),
			Author:      domain.User{ID: 2, FullName: "Grace Hopper"},
		},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "Share Feed")
	assert.Contains(t, output, "2 posts")
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "2 hours ago")
	assert.Contains(t, output, "(edited)")
	assert.Contains(t, output, "Shipped the new search box today.")
	assert.Contains(t, output, "Grace Hopper")
	assert.Contains(t, output, "3 days ago")
}

func TestRenderEmptyFeed(t *testing.T) {
	output, err := Render(nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "0 posts")
	assert.Contains(t, output, "No posts yet.")
}

func TestRenderFilteredFeedEchoesQuery(t *testing.T) {
	now := time.Date(2026, 8, 14, 11, 0, 0, 0, time.UTC)

	output, err := Render([]domain.Post{
		{
			ID:          3,
			Description: "coffee break thoughts",
			CreatedAt:   now.Add(-30 * time.Minute),
			Author:      domain.User{ID: 1, FullName: "Ada Lovelace"},
		},
	}, RenderOptions{Now: now, Query: "coffee"})

	require.NoError(t, err)
	assert.Contains(t, output, `1 post matching "coffee"`)
	assert.Contains(t, output, "30 minutes ago")
}

func TestRenderFilteredFeedWithoutMatches(t *testing.T) {
	output, err := Render(nil, RenderOptions{Query: "nothing"})

	require.NoError(t, err)
	assert.Contains(t, output, `No posts match "nothing".`)
}

func TestFormatPostedAt(t *testing.T) {
	now := time.Date(2026, 8, 14, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		want      string
	}{
		{"just now", now.Add(-20 * time.Second), "just now"},
		{"single minute", now.Add(-1 * time.Minute), "1 minute ago"},
		{"minutes", now.Add(-45 * time.Minute), "45 minutes ago"},
		{"single hour", now.Add(-1 * time.Hour), "1 hour ago"},
		{"hours", now.Add(-13 * time.Hour), "13 hours ago"},
		{"days", now.Add(-2 * 24 * time.Hour), "2 days ago"},
		{"older than a week", now.Add(-10 * 24 * time.Hour), "04 Aug 2026"},
		{"zero time", time.Time{}, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatPostedAt(tt.createdAt, now))
		})
	}
}
