package usecase

import (
	"bytes"
	"context"
	"os"
	"path"
	"path/filepath"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ghloc/pkg/domain/interfaces"
	"github.com/secmon-lab/ghloc/pkg/domain/model"
	"github.com/secmon-lab/ghloc/pkg/domain/types"
	"github.com/secmon-lab/ghloc/pkg/utils/logging"
	"github.com/secmon-lab/ghloc/pkg/utils/safe"
)

// writeCSV replaces the file at outputPath with the report. The content is written to a temporary file in the same directory and renamed.
func writeCSV(ctx context.Context, outputPath string, report *model.Report) error {
	tmp, err := os.CreateTemp(filepath.Dir(outputPath), "."+filepath.Base(outputPath)+".*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary file", goerr.V("path", outputPath))
	}
	tmpPath := tmp.Name()

	if err := report.WriteCSV(tmp); err != nil {
		safe.Close(ctx, tmp)
		safe.Remove(ctx, tmpPath)
		return goerr.Wrap(err, "failed to write report", goerr.V("path", tmpPath))
	}
	if err := tmp.Close(); err != nil {
		safe.Remove(ctx, tmpPath)
		return goerr.Wrap(err, "failed to close temporary file", goerr.V("path", tmpPath))
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		safe.Remove(ctx, tmpPath)
		return goerr.Wrap(err, "failed to change file mode", goerr.V("path", tmpPath))
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		safe.Remove(ctx, tmpPath)
		return goerr.Wrap(err, "failed to rename report", goerr.V("from", tmpPath), goerr.V("to", outputPath))
	}

	return nil
}

func (x *UseCase) exportBigQuery(ctx context.Context, runID types.RunID, username string, ts time.Time, report *model.Report) error {
	bq := x.clients.BigQuery()
	if bq == nil {
		return nil
	}
	if report.Len() == 0 {
		logging.From(ctx).Info("No rows to insert into BigQuery")
		return nil
	}

	if err := createOrUpdateBigQueryTable(ctx, bq, &model.LineCountRow{}); err != nil {
		return err
	}

	rows := report.Rows(runID, username, ts.UTC())
	if err := bq.Insert(ctx, rows); err != nil {
		return goerr.Wrap(err, "failed to insert line counts to BigQuery", goerr.V("rows", len(rows)))
	}
	logging.From(ctx).Info("Inserted line counts into BigQuery", "rows", len(rows))

	return nil
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, row *model.LineCountRow) error {
	schema, err := bqs.Infer(row)
	if err != nil {
		return goerr.Wrap(err, "failed to infer line count schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return goerr.Wrap(err, "failed to create BigQuery table")
		}
		return nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return goerr.Wrap(err, "failed to update BigQuery table")
	}

	return nil
}

func (x *UseCase) uploadCSV(ctx context.Context, runID types.RunID, username string, report *model.Report) error {
	storage := x.clients.Storage()
	if storage == nil {
		return nil
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf); err != nil {
		return err
	}

	object := reportObjectName(x.storagePrefix, username, runID)
	if err := storage.Upload(ctx, object, "text/csv", &buf); err != nil {
		return goerr.Wrap(err, "failed to upload report", goerr.V("object", object))
	}
	logging.From(ctx).Info("Uploaded report", "object", object)

	return nil
}

func reportObjectName(prefix, username string, runID types.RunID) string {
	return path.Join(prefix, username, runID.String()+".csv")
}
