package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ghloc/pkg/domain/interfaces"
	"github.com/secmon-lab/ghloc/pkg/domain/model"
	"github.com/secmon-lab/ghloc/pkg/domain/types"
	"github.com/secmon-lab/ghloc/pkg/utils/logging"
)

// CountLines counts lines of every file ending in input.Extension on the default branch of the repositories selected by input.Username, then writes the report.
func (x *UseCase) CountLines(ctx context.Context, input *model.CountLinesInput) (*model.Report, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	gh := x.clients.GitHub()
	if gh == nil {
		return nil, goerr.New("GitHub client is not configured")
	}

	runID := types.NewRunID()
	ctx = logging.WithAttrs(ctx, "run_id", runID)
	startedAt := logging.CtxTime(ctx)

	allRepos, err := gh.ListRepositories(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories")
	}
	repos := model.SelectRepositories(allRepos, input.Username)
	logging.From(ctx).Info("Selected repositories",
		"username", input.Username,
		"visible", len(allRepos),
		"selected", len(repos),
	)

	report := model.NewReport()
	for i, repo := range repos {
		repoCtx := logging.WithAttrs(ctx, "repo", repo.FullName)
		logging.From(repoCtx).Info("Scanning repository",
			"progress", i+1,
			"total", len(repos),
		)

		if err := x.waitForRateLimit(repoCtx, gh); err != nil {
			return nil, err
		}

		if err := countRepository(repoCtx, gh, repo, input.Extension, report); err != nil {
			return nil, goerr.Wrap(err, "failed to count lines of repository", goerr.V("repo", repo.FullName))
		}
	}

	if _, err := fmt.Fprintf(x.stdout, "Total number of lines %d\n", report.Total()); err != nil {
		return nil, goerr.Wrap(err, "failed to write total")
	}

	if err := writeCSV(ctx, input.OutputPath, report); err != nil {
		return nil, err
	}
	logging.From(ctx).Info("Report saved",
		"path", input.OutputPath,
		"files", report.Len(),
		"total_lines", report.Total(),
	)

	if err := x.exportBigQuery(ctx, runID, input.Username, startedAt, report); err != nil {
		return nil, err
	}
	if err := x.uploadCSV(ctx, runID, input.Username, report); err != nil {
		return nil, err
	}

	return report, nil
}

func countRepository(ctx context.Context, gh interfaces.GitHub, repo *model.Repository, ext string, report *model.Report) error {
	sha, found, err := resolveCommit(ctx, gh, repo)
	if err != nil {
		return err
	}
	if !found {
		logging.From(ctx).Debug("No default branch reference, skip repository",
			"default_branch", repo.DefaultBranch,
		)
		return nil
	}

	tree, err := gh.GetTree(ctx, repo, sha)
	if err != nil {
		return goerr.Wrap(err, "failed to get tree", goerr.V("sha", sha))
	}
	if tree.Truncated {
		logging.From(ctx).Warn("Tree is truncated, some files are not counted",
			"sha", sha,
			"entries", len(tree.Paths),
		)
	}

	for _, path := range tree.Paths {
		if !strings.HasSuffix(path, ext) {
			continue
		}

		content, err := gh.GetFileContent(ctx, repo, path, sha)
		if err != nil {
			return goerr.Wrap(err, "failed to get file content", goerr.V("path", path))
		}
		if !content.Found() {
			logging.From(ctx).Debug("Content not found, skip file", "path", path)
			continue
		}

		lines, err := model.CountLines(content.Data)
		if err != nil {
			return goerr.Wrap(err, "failed to count lines", goerr.V("path", path))
		}

		report.Add(model.LineCountRecord{
			NumberLines: lines,
			FilePath:    path,
			Repo:        repo.URL,
		})
	}

	return nil
}

// resolveCommit returns the SHA of the first ref whose URL contains the default branch name. found is false when there is no such ref.
func resolveCommit(ctx context.Context, gh interfaces.GitHub, repo *model.Repository) (sha types.CommitSHA, found bool, err error) {
	refs, err := gh.ListRefs(ctx, repo)
	if err != nil {
		return "", false, goerr.Wrap(err, "failed to list refs")
	}

	ref := model.SelectDefaultBranchRef(refs, repo.DefaultBranch)
	if ref == nil {
		return "", false, nil
	}
	return ref.SHA, true, nil
}
