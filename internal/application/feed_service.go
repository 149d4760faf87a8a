package application

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/lets-share-cli/internal/adapters/api"
	"github.com/bnema/lets-share-cli/internal/domain"
)

// PostsService is the slice of the API layer the feed needs.
type PostsService interface {
	List(ctx context.Context) ([]domain.Post, error)
	Create(ctx context.Context, draft domain.PostDraft) (domain.Post, error)
	Update(ctx context.Context, id int64, draft domain.PostDraft) (domain.Post, error)
}

// FeedSnapshot is an immutable view of the feed cache for rendering.
type FeedSnapshot struct {
	Posts   []domain.Post
	Loading bool
	Err     string
}

// FeedService maintains the local post cache. Every mutation happens
// under one lock, so readers never observe a partial write; a failed
// service call always leaves the previous cache intact.
type FeedService struct {
	posts PostsService
	log   *slog.Logger

	mu        sync.Mutex
	feed      domain.Feed
	loading   bool
	errMsg    string
	listeners []func(FeedSnapshot)
}

func NewFeedService(posts PostsService, log *slog.Logger) *FeedService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &FeedService{posts: posts, log: log}
}

func (s *FeedService) Subscribe(fn func(FeedSnapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *FeedService) Snapshot() FeedSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FeedSnapshot{
		Posts:   s.feed.Posts(),
		Loading: s.loading,
		Err:     s.errMsg,
	}
}

// FetchAll replaces the entire cache with the server's post list. A
// call that arrives while another fetch is still loading is a silent
// no-op, not an error: one network call, one cache replacement.
func (s *FeedService) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		s.log.Debug("fetch already in flight, skipping")
		return nil
	}
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
	s.notify()

	posts, err := s.posts.List(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.errMsg = api.Detail(err)
	} else {
		s.feed.Replace(posts)
	}
	s.mu.Unlock()
	s.notify()

	return err
}

// Refresh is a full re-fetch; it is the only way to recover the
// unfiltered feed after a Search.
func (s *FeedService) Refresh(ctx context.Context) error {
	return s.FetchAll(ctx)
}

// Create publishes the draft and prepends the server-confirmed post to
// the cache. The cache is only touched after the request succeeds.
func (s *FeedService) Create(ctx context.Context, draft domain.PostDraft) (domain.Post, error) {
	s.setLoading(true)

	post, err := s.posts.Create(ctx, draft)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.errMsg = api.Detail(err)
	} else {
		s.errMsg = ""
		s.feed.Prepend(post)
	}
	s.mu.Unlock()
	s.notify()

	if err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

// Edit replaces the post in place with the server's merged response;
// its cache position is unchanged.
func (s *FeedService) Edit(ctx context.Context, id int64, draft domain.PostDraft) (domain.Post, error) {
	s.setLoading(true)

	post, err := s.posts.Update(ctx, id, draft)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.errMsg = api.Detail(err)
	} else {
		s.errMsg = ""
		if patchErr := s.feed.Patch(id, post); patchErr != nil {
			// Post not cached locally; nothing to patch.
			s.log.Debug("edited post not in cache", "post_id", id)
		}
	}
	s.mu.Unlock()
	s.notify()

	if err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

// Search replaces the cache with the posts matching the query in their
// description or author name. The filtering is lossy by design: the
// full feed comes back only via Refresh.
func (s *FeedService) Search(ctx context.Context, query string) error {
	s.setLoading(true)

	posts, err := s.posts.List(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.errMsg = api.Detail(err)
	} else {
		s.errMsg = ""
		s.feed.Replace(filterPosts(posts, query))
	}
	s.mu.Unlock()
	s.notify()

	return err
}

func filterPosts(posts []domain.Post, query string) []domain.Post {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return posts
	}

	needle := strings.ToLower(trimmed)
	matched := make([]domain.Post, 0, len(posts))
	for _, post := range posts {
		if strings.Contains(strings.ToLower(post.Description), needle) ||
			strings.Contains(strings.ToLower(post.Author.FullName), needle) {
			matched = append(matched, post)
		}
	}
	return matched
}

func (s *FeedService) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	if loading {
		s.errMsg = ""
	}
	s.mu.Unlock()
	s.notify()
}

func (s *FeedService) notify() {
	s.mu.Lock()
	listeners := slices.Clone(s.listeners)
	snap := FeedSnapshot{
		Posts:   s.feed.Posts(),
		Loading: s.loading,
		Err:     s.errMsg,
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}
