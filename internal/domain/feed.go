package domain

import "sort"

// Feed is the local post cache: an ordered sequence, newest first, with
// post IDs kept unique across every merge operation.
//
// Feed is not safe for concurrent use; callers serialize access.
type Feed struct {
	posts []Post
}

// Replace swaps the entire cache for the given posts, re-sorted by
// creation time descending. Duplicate IDs are dropped, first kept.
func (f *Feed) Replace(posts []Post) {
	next := make([]Post, len(posts))
	copy(next, posts)

	sort.SliceStable(next, func(i, j int) bool {
		return next[i].CreatedAt.After(next[j].CreatedAt)
	})

	f.posts = dedupeByID(next)
}

// Prepend inserts a post at the front of the cache. Any existing entry
// with the same ID is removed first so the ID stays unique.
func (f *Feed) Prepend(post Post) {
	next := make([]Post, 0, len(f.posts)+1)
	next = append(next, post)
	for _, existing := range f.posts {
		if existing.ID == post.ID {
			continue
		}
		next = append(next, existing)
	}
	f.posts = next
}

// Patch replaces the post with the given ID in place, preserving its
// cache position. Returns ErrPostNotFound if the ID is not cached.
func (f *Feed) Patch(id int64, post Post) error {
	for i := range f.posts {
		if f.posts[i].ID == id {
			post.ID = id
			f.posts[i] = post
			return nil
		}
	}
	return ErrPostNotFound
}

// Posts returns a copy of the cached posts in feed order.
func (f *Feed) Posts() []Post {
	posts := make([]Post, len(f.posts))
	copy(posts, f.posts)
	return posts
}

func (f *Feed) Len() int {
	return len(f.posts)
}

func dedupeByID(posts []Post) []Post {
	seen := make(map[int64]struct{}, len(posts))
	result := posts[:0]
	for _, post := range posts {
		if _, ok := seen[post.ID]; ok {
			continue
		}
		seen[post.ID] = struct{}{}
		result = append(result, post)
	}
	return result
}
