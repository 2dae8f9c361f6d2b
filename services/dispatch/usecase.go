package dispatch

import (
	"context"

	"github.com/google/uuid"

	"github.com/loopline/dispatch/internal/pkg/models"
)

// DispatchUC defines the interface for dispatch business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/loopline/dispatch/services/dispatch DispatchUC
type DispatchUC interface {
	CreateRequest(ctx context.Context, req *models.Request) (*models.Request, error)
	GetRequest(ctx context.Context, requestID uuid.UUID) (*models.Request, error)
	CancelRequest(ctx context.Context, requestID uuid.UUID) error
	SearchRequest(ctx context.Context, requestID uuid.UUID) error
	RunSweep(ctx context.Context) (*models.SweepSummary, error)
}
