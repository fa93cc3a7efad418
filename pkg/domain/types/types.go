package types

import "github.com/google/uuid"

type RunID string

// NewRunID returns a random identifier for one counting run. It is attached to exported rows and object names.
func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (x RunID) String() string {
	return string(x)
}

type (
	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
	GCSBucket       string
)

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }
func (x GCSBucket) String() string       { return string(x) }
