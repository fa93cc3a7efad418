package model

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ghloc/pkg/domain/types"
)

// LineCountRecord is one counted file.
type LineCountRecord struct {
	NumberLines int
	FilePath    string
	Repo        string
}

// Report accumulates line count records of a run and keeps their running total.
type Report struct {
	records []LineCountRecord
	total   int64
}

func NewReport() *Report {
	return &Report{}
}

func (x *Report) Add(record LineCountRecord) {
	x.records = append(x.records, record)
	x.total += int64(record.NumberLines)
}

// Records returns a copy of the accumulated records in insertion order.
func (x *Report) Records() []LineCountRecord {
	records := make([]LineCountRecord, len(x.records))
	copy(records, x.records)
	return records
}

func (x *Report) Total() int64 {
	return x.total
}

func (x *Report) Len() int {
	return len(x.records)
}

var csvHeader = []string{"", "number_lines", "file_path", "repo"}

// WriteCSV writes the records with a leading 0-based index column.
func (x *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return goerr.Wrap(err, "failed to write CSV header")
	}

	for i, record := range x.records {
		row := []string{
			strconv.Itoa(i),
			strconv.Itoa(record.NumberLines),
			record.FilePath,
			record.Repo,
		}
		if err := cw.Write(row); err != nil {
			return goerr.Wrap(err, "failed to write CSV row", goerr.V("index", i))
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush CSV")
	}
	return nil
}

// LineCountRow is the exported form of a record.
type LineCountRow struct {
	RunID       types.RunID `bigquery:"run_id" json:"run_id"`
	Timestamp   time.Time   `bigquery:"timestamp" json:"timestamp"`
	Username    string      `bigquery:"username" json:"username"`
	NumberLines int64       `bigquery:"number_lines" json:"number_lines"`
	FilePath    string      `bigquery:"file_path" json:"file_path"`
	Repo        string      `bigquery:"repo" json:"repo"`
}

func (x *Report) Rows(runID types.RunID, username string, ts time.Time) []*LineCountRow {
	rows := make([]*LineCountRow, 0, len(x.records))
	for _, record := range x.records {
		rows = append(rows, &LineCountRow{
			RunID:       runID,
			Timestamp:   ts,
			Username:    username,
			NumberLines: int64(record.NumberLines),
			FilePath:    record.FilePath,
			Repo:        record.Repo,
		})
	}
	return rows
}
