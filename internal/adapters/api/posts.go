package api

import (
	"context"
	"fmt"

	"github.com/bnema/lets-share-cli/internal/domain"
)

const postsPath = "/posts"

// PostsAPI is a thin typed wrapper over the gateway for the posts
// resource. Errors pass through normalized, never re-interpreted.
type PostsAPI struct {
	client *Client
}

func NewPostsAPI(client *Client) *PostsAPI {
	return &PostsAPI{client: client}
}

func (p *PostsAPI) List(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	if err := p.client.Get(ctx, postsPath, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (p *PostsAPI) Create(ctx context.Context, draft domain.PostDraft) (domain.Post, error) {
	if err := draft.Validate(); err != nil {
		return domain.Post{}, err
	}

	var post domain.Post
	if err := p.client.Post(ctx, postsPath, draft, &post); err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

func (p *PostsAPI) Update(ctx context.Context, id int64, draft domain.PostDraft) (domain.Post, error) {
	if err := draft.Validate(); err != nil {
		return domain.Post{}, err
	}

	var post domain.Post
	if err := p.client.Put(ctx, fmt.Sprintf("%s/%d", postsPath, id), draft, &post); err != nil {
		return domain.Post{}, err
	}
	return post, nil
}
