package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ghloc/pkg/domain/types"
)

const (
	DefaultExtension  = ".py"
	DefaultOutputPath = "results.csv"
)

type CountLinesInput struct {
	// Username is matched as a substring of each repository URL. An empty value matches every repository.
	Username   string
	Extension  string
	OutputPath string
}

func (x *CountLinesInput) Validate() error {
	if x.Extension == "" {
		return goerr.Wrap(types.ErrValidationFailed, "extension is empty")
	}
	if x.OutputPath == "" {
		return goerr.Wrap(types.ErrValidationFailed, "output path is empty")
	}
	return nil
}
