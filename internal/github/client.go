// Package github resolves repository references to the metadata displayed on
// cards. Unauthenticated access works for public repositories; a token from
// GITHUB_TOKEN raises the rate limit and reaches private repositories.
package github

import (
	"context"
	"fmt"
	"os"
	"strings"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	"github.com/laststance/gitbox-sub002/internal/services/repocard"
)

// Client wraps the GitHub API for repository lookups.
type Client struct {
	api *gh.Client
}

// NewClient builds a client, authenticated when token is non-empty.
func NewClient(ctx context.Context, token string) *Client {
	if token == "" {
		return &Client{api: gh.NewClient(nil)}
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{api: gh.NewClient(oauth2.NewClient(ctx, ts))}
}

// NewClientFromEnv builds a client using the GITHUB_TOKEN environment
// variable when set.
func NewClientFromEnv(ctx context.Context) *Client {
	return NewClient(ctx, os.Getenv("GITHUB_TOKEN"))
}

// LookupRepo implements repocard.RepoLookup.
func (c *Client) LookupRepo(ctx context.Context, fullName string) (*repocard.RepoInfo, error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" {
		return nil, fmt.Errorf("invalid repository reference %q", fullName)
	}

	repo, _, err := c.api.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("fetching repository %s: %w", fullName, err)
	}

	return &repocard.RepoInfo{
		FullName:    repo.GetFullName(),
		URL:         repo.GetHTMLURL(),
		Description: repo.GetDescription(),
		Stars:       repo.GetStargazersCount(),
		Language:    repo.GetLanguage(),
	}, nil
}
