package githubapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/secmon-lab/ghloc/pkg/domain/interfaces"
	"github.com/secmon-lab/ghloc/pkg/domain/model"
	"github.com/secmon-lab/ghloc/pkg/domain/types"
	"github.com/secmon-lab/ghloc/pkg/utils/logging"
	"github.com/secmon-lab/ghloc/pkg/utils/safe"
)

const perPage = 100

type Client struct {
	client *github.Client

	// installation tokens can not call /user/repos, so repositories are listed from the installation instead
	appAuth bool
}

var _ interfaces.GitHub = (*Client)(nil)

type options struct {
	baseURL string
}

type Option func(*options)

// WithBaseURL sets the REST API base URL, e.g. https://github.example.com/api/v3/ for GitHub Enterprise Server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// NewWithToken creates a client authenticated with a personal access token.
func NewWithToken(ctx context.Context, token types.GitHubToken, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "token is empty")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	return newClient(oauth2.NewClient(ctx, ts), false, opts...)
}

// NewWithApp creates a client authenticated as a GitHub App installation.
func NewWithApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey, opts ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	itr, err := ghinstallation.New(http.DefaultTransport, int64(appID), int64(installID), []byte(pem))
	if err != nil {
		return nil, goerr.Wrap(err, "Failed to create github app transport", goerr.V("appID", appID))
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.baseURL != "" {
		itr.BaseURL = strings.TrimSuffix(o.baseURL, "/")
	}

	return newClient(&http.Client{Transport: itr}, true, opts...)
}

func newClient(httpClient *http.Client, appAuth bool, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	client := github.NewClient(httpClient)
	if o.baseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(o.baseURL, "/") + "/")
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid base URL", goerr.V("baseURL", o.baseURL))
		}
		client.BaseURL = baseURL
	}

	return &Client{
		client:  client,
		appAuth: appAuth,
	}, nil
}

func (x *Client) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	if x.appAuth {
		return x.listInstallationRepos(ctx)
	}

	var allRepos []*model.Repository
	opts := &github.RepositoryListOptions{ListOptions: github.ListOptions{PerPage: perPage}}

	for {
		// empty user means the authenticated user
		repos, resp, err := x.client.Repositories.List(ctx, "", opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list repositories")
		}

		for _, repo := range repos {
			allRepos = append(allRepos, toRepository(repo))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Info("Listed repositories", slog.Int("count", len(allRepos)))
	return allRepos, nil
}

func (x *Client) listInstallationRepos(ctx context.Context) ([]*model.Repository, error) {
	var allRepos []*model.Repository
	opts := &github.ListOptions{PerPage: perPage}

	for {
		result, resp, err := x.client.Apps.ListRepos(ctx, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list installation repos")
		}

		for _, repo := range result.Repositories {
			allRepos = append(allRepos, toRepository(repo))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Info("Listed installation repos", slog.Int("count", len(allRepos)))
	return allRepos, nil
}

func toRepository(repo *github.Repository) *model.Repository {
	return &model.Repository{
		Owner:         repo.GetOwner().GetLogin(),
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		URL:           repo.GetURL(),
		DefaultBranch: repo.GetDefaultBranch(),
	}
}

func (x *Client) GetRateLimit(ctx context.Context) (*model.RateLimit, error) {
	limits, _, err := x.client.RateLimits(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get rate limit")
	}

	core := limits.GetCore()
	if core == nil {
		return nil, goerr.New("core rate limit is missing in response")
	}

	return &model.RateLimit{
		Limit:     core.Limit,
		Remaining: core.Remaining,
		Reset:     core.Reset.Time,
	}, nil
}

func (x *Client) ListRefs(ctx context.Context, repo *model.Repository) ([]*model.Ref, error) {
	var refs []*model.Ref
	opts := &github.ReferenceListOptions{ListOptions: github.ListOptions{PerPage: perPage}}

	for {
		result, resp, err := x.client.Git.ListMatchingRefs(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			// https://docs.github.com/en/rest/git/refs : 409 Conflict when the repository is empty
			if hasStatus(resp, err, http.StatusConflict) {
				logging.From(ctx).Debug("Repository is empty", slog.String("repo", repo.FullName))
				return nil, nil
			}
			return nil, goerr.Wrap(err, "failed to list git refs", goerr.V("repo", repo.FullName))
		}

		for _, ref := range result {
			refs = append(refs, &model.Ref{
				Name: ref.GetRef(),
				URL:  ref.GetURL(),
				SHA:  types.CommitSHA(ref.GetObject().GetSHA()),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return refs, nil
}

func (x *Client) GetTree(ctx context.Context, repo *model.Repository, sha types.CommitSHA) (*model.Tree, error) {
	tree, _, err := x.client.Git.GetTree(ctx, repo.Owner, repo.Name, sha.String(), true)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get git tree", goerr.V("repo", repo.FullName), goerr.V("sha", sha))
	}

	paths := make([]string, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		paths = append(paths, entry.GetPath())
	}

	return &model.Tree{
		SHA:       sha,
		Paths:     paths,
		Truncated: tree.GetTruncated(),
	}, nil
}

func (x *Client) GetFileContent(ctx context.Context, repo *model.Repository, path string, ref types.CommitSHA) (*model.FileContent, error) {
	opts := &github.RepositoryContentGetOptions{Ref: ref.String()}

	file, _, resp, err := x.client.Repositories.GetContents(ctx, repo.Owner, repo.Name, path, opts)
	if err != nil {
		if hasStatus(resp, err, http.StatusNotFound) {
			return model.NewNotFoundContent(path), nil
		}
		return nil, goerr.Wrap(err, "failed to get file content", goerr.V("repo", repo.FullName), goerr.V("path", path))
	}

	// directory listing, submodule or symlink
	if file == nil || file.GetType() != "file" {
		logging.From(ctx).Debug("Path is not a regular file",
			slog.String("repo", repo.FullName),
			slog.String("path", path),
			slog.String("type", file.GetType()),
		)
		return model.NewNotFoundContent(path), nil
	}

	// Contents API does not inline files larger than 1MB
	if file.GetEncoding() == "none" {
		return x.downloadContent(ctx, repo, path, opts)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode file content", goerr.V("repo", repo.FullName), goerr.V("path", path))
	}

	return model.NewFoundContent(path, []byte(content)), nil
}

func (x *Client) downloadContent(ctx context.Context, repo *model.Repository, path string, opts *github.RepositoryContentGetOptions) (*model.FileContent, error) {
	rc, resp, err := x.client.Repositories.DownloadContents(ctx, repo.Owner, repo.Name, path, opts)
	if err != nil {
		if hasStatus(resp, err, http.StatusNotFound) {
			return model.NewNotFoundContent(path), nil
		}
		return nil, goerr.Wrap(err, "failed to download file content", goerr.V("repo", repo.FullName), goerr.V("path", path))
	}
	defer safe.Close(ctx, rc)

	// the raw download response is returned without a status check
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return model.NewNotFoundContent(path), nil
	}
	if resp != nil && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return nil, goerr.New("failed to download file content",
			goerr.V("repo", repo.FullName),
			goerr.V("path", path),
			goerr.V("status", resp.StatusCode),
		)
	}

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read file content", goerr.V("repo", repo.FullName), goerr.V("path", path))
	}

	return model.NewFoundContent(path, data), nil
}

func hasStatus(resp *github.Response, err error, status int) bool {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return ghErr.Response.StatusCode == status
	}
	return resp != nil && resp.StatusCode == status
}
