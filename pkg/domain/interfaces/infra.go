package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub BigQuery Storage

import (
	"context"
	"io"

	"cloud.google.com/go/bigquery"

	"github.com/secmon-lab/ghloc/pkg/domain/model"
	"github.com/secmon-lab/ghloc/pkg/domain/types"
)

type GitHub interface {
	// ListRepositories returns every repository visible to the authenticated account.
	ListRepositories(ctx context.Context) ([]*model.Repository, error)
	GetRateLimit(ctx context.Context) (*model.RateLimit, error)
	// ListRefs returns all git references of the repository. An empty repository has no refs.
	ListRefs(ctx context.Context, repo *model.Repository) ([]*model.Ref, error)
	GetTree(ctx context.Context, repo *model.Repository, sha types.CommitSHA) (*model.Tree, error)
	// GetFileContent returns a ContentNotFound result instead of an error when the path cannot be resolved to a file.
	GetFileContent(ctx context.Context, repo *model.Repository, path string, ref types.CommitSHA) (*model.FileContent, error)
}

type BigQuery interface {
	Insert(ctx context.Context, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

type Storage interface {
	Upload(ctx context.Context, object string, contentType string, r io.Reader) error
}
