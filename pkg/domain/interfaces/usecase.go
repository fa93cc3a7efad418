package interfaces

import (
	"context"

	"github.com/secmon-lab/ghloc/pkg/domain/model"
)

type UseCase interface {
	CountLines(ctx context.Context, input *model.CountLinesInput) (*model.Report, error)
}
