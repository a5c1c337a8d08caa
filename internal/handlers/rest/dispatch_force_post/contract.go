//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_force_post_test
package dispatch_force_post

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ForceAssign(ctx context.Context, orderID string, courierID int64) (*entities.DispatchResult, error)
}
