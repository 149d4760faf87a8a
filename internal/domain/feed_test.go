package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postAt(id int64, description string, created time.Time) Post {
	return Post{ID: id, Description: description, CreatedAt: created}
}

func TestFeedReplaceSortsNewestFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	var feed Feed
	feed.Replace([]Post{
		postAt(1, "first", base.Add(1*time.Hour)),
		postAt(3, "third", base.Add(3*time.Hour)),
		postAt(2, "second", base.Add(2*time.Hour)),
	})

	posts := feed.Posts()
	require.Len(t, posts, 3)
	assert.Equal(t, int64(3), posts[0].ID)
	assert.Equal(t, int64(2), posts[1].ID)
	assert.Equal(t, int64(1), posts[2].ID)
}

func TestFeedReplaceDropsDuplicateIDs(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	var feed Feed
	feed.Replace([]Post{
		postAt(1, "newer copy", base.Add(2*time.Hour)),
		postAt(1, "older copy", base.Add(1*time.Hour)),
		postAt(2, "other", base.Add(3*time.Hour)),
	})

	posts := feed.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, int64(2), posts[0].ID)
	assert.Equal(t, int64(1), posts[1].ID)
	assert.Equal(t, "newer copy", posts[1].Description)
}

func TestFeedPrependKeepsOrdering(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	var feed Feed
	feed.Replace([]Post{
		postAt(2, "p2", base.Add(2*time.Hour)),
		postAt(1, "p1", base.Add(1*time.Hour)),
	})
	feed.Prepend(postAt(3, "p3", base.Add(3*time.Hour)))

	posts := feed.Posts()
	require.Len(t, posts, 3)
	assert.Equal(t, int64(3), posts[0].ID)
	assert.Equal(t, int64(2), posts[1].ID)
	assert.Equal(t, int64(1), posts[2].ID)
}

func TestFeedPrependReplacesExistingID(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	var feed Feed
	feed.Replace([]Post{
		postAt(2, "p2", base.Add(2*time.Hour)),
		postAt(1, "p1", base.Add(1*time.Hour)),
	})
	feed.Prepend(postAt(1, "p1 again", base.Add(3*time.Hour)))

	posts := feed.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, int64(1), posts[0].ID)
	assert.Equal(t, "p1 again", posts[0].Description)
	assert.Equal(t, int64(2), posts[1].ID)
}

func TestFeedPatchPreservesPosition(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	updated := base.Add(4 * time.Hour)

	var feed Feed
	feed.Replace([]Post{
		postAt(2, "p2", base.Add(2*time.Hour)),
		postAt(1, "p1", base.Add(1*time.Hour)),
	})

	patched := postAt(1, "x", base.Add(1*time.Hour))
	patched.UpdatedAt = &updated
	require.NoError(t, feed.Patch(1, patched))

	posts := feed.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, int64(2), posts[0].ID)
	assert.Equal(t, int64(1), posts[1].ID)
	assert.Equal(t, "x", posts[1].Description)
	assert.True(t, posts[1].Edited())
}

func TestFeedPatchUnknownIDReturnsNotFound(t *testing.T) {
	var feed Feed
	feed.Replace([]Post{postAt(1, "p1", time.Now())})

	err := feed.Patch(99, postAt(99, "missing", time.Now()))
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestFeedUniquenessAcrossOperations(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	var feed Feed
	feed.Replace([]Post{
		postAt(1, "p1", base.Add(1*time.Hour)),
		postAt(2, "p2", base.Add(2*time.Hour)),
	})
	feed.Prepend(postAt(3, "p3", base.Add(3*time.Hour)))
	require.NoError(t, feed.Patch(2, postAt(2, "p2 edited", base.Add(2*time.Hour))))
	feed.Prepend(postAt(2, "p2 again", base.Add(5*time.Hour)))

	seen := map[int64]int{}
	for _, post := range feed.Posts() {
		seen[post.ID]++
	}
	for id, count := range seen {
		assert.Equalf(t, 1, count, "post id %d appears %d times", id, count)
	}
}

func TestFeedPostsReturnsCopy(t *testing.T) {
	var feed Feed
	feed.Replace([]Post{postAt(1, "p1", time.Now())})

	posts := feed.Posts()
	posts[0].Description = "mutated"

	assert.Equal(t, "p1", feed.Posts()[0].Description)
}

func TestSessionAuthenticated(t *testing.T) {
	assert.False(t, Session{}.Authenticated())
	assert.False(t, Session{RefreshToken: "r"}.Authenticated())
	assert.True(t, Session{AccessToken: "a"}.Authenticated())
}
