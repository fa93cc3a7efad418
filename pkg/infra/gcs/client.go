package gcs

import (
	"context"
	"io"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"

	"github.com/secmon-lab/ghloc/pkg/domain/interfaces"
	"github.com/secmon-lab/ghloc/pkg/domain/types"
)

type Client struct {
	client *storage.Client
	bucket types.GCSBucket
}

var _ interfaces.Storage = (*Client)(nil)

func New(ctx context.Context, bucket types.GCSBucket, options ...option.ClientOption) (*Client, error) {
	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client")
	}

	return &Client{
		client: client,
		bucket: bucket,
	}, nil
}

// Upload implements interfaces.Storage. The object is overwritten if it exists.
func (x *Client) Upload(ctx context.Context, object string, contentType string, r io.Reader) error {
	w := x.client.Bucket(x.bucket.String()).Object(object).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write object", goerr.V("bucket", x.bucket), goerr.V("object", object))
	}

	// the object is committed on Close
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to close object writer", goerr.V("bucket", x.bucket), goerr.V("object", object))
	}

	return nil
}

func (x *Client) Close() error {
	return x.client.Close()
}
