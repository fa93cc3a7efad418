package model

import (
	"bytes"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ghloc/pkg/domain/types"
)

type ContentStatus int

const (
	ContentNotFound ContentStatus = iota
	ContentFound
)

func (x ContentStatus) String() string {
	switch x {
	case ContentFound:
		return "found"
	case ContentNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// FileContent is the outcome of fetching one file. Data is set only when Status is ContentFound.
type FileContent struct {
	Path   string
	Status ContentStatus
	Data   []byte
}

func NewFoundContent(path string, data []byte) *FileContent {
	return &FileContent{Path: path, Status: ContentFound, Data: data}
}

func NewNotFoundContent(path string) *FileContent {
	return &FileContent{Path: path, Status: ContentNotFound}
}

func (x *FileContent) Found() bool {
	return x != nil && x.Status == ContentFound
}

// CountLines returns the number of "\n" separated segments in data, that is the
// newline count plus one. Empty content counts as 1 and a trailing newline adds
// an extra segment.
func CountLines(data []byte) (int, error) {
	if !utf8.Valid(data) {
		return 0, goerr.Wrap(types.ErrInvalidContent, "content is not valid UTF-8")
	}
	return bytes.Count(data, []byte("\n")) + 1, nil
}
