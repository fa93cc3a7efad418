package model

import (
	"strings"
	"time"

	"github.com/secmon-lab/ghloc/pkg/domain/types"
)

// Repository is a repository visible to the authenticated account.
type Repository struct {
	Owner         string
	Name          string
	FullName      string
	URL           string // API URL, e.g. https://api.github.com/repos/octocat/hello
	DefaultBranch string
}

// MatchUser reports whether the repository URL contains the given username. The match is a plain substring match and does not check ownership.
func (x *Repository) MatchUser(username string) bool {
	return strings.Contains(x.URL, username)
}

// SelectRepositories returns repositories whose URL contains username, preserving their order.
func SelectRepositories(repos []*Repository, username string) []*Repository {
	var selected []*Repository
	for _, repo := range repos {
		if repo.MatchUser(username) {
			selected = append(selected, repo)
		}
	}
	return selected
}

// Ref is a git reference of a repository.
type Ref struct {
	Name string
	URL  string
	SHA  types.CommitSHA
}

// SelectDefaultBranchRef returns the first ref whose URL contains branch, or nil.
func SelectDefaultBranchRef(refs []*Ref, branch string) *Ref {
	for _, ref := range refs {
		if strings.Contains(ref.URL, branch) {
			return ref
		}
	}
	return nil
}

// Tree is a recursive listing of a commit's tree.
type Tree struct {
	SHA       types.CommitSHA
	Paths     []string
	Truncated bool
}

type RateLimit struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// Exhausted reports whether no request is left in the current window.
func (x *RateLimit) Exhausted() bool {
	return x != nil && x.Remaining == 0
}
