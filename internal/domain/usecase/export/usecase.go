package export

import (
	"context"

	"weather-query-api/internal/domain/model"
)

type UseCase interface {
	// Export renders every saved query, oldest first, in the requested format
	Export(ctx context.Context, format string) (*model.ExportDocument, error)
}
