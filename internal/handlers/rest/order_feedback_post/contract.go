//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_feedback_post_test
package order_feedback_post

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SubmitFeedback(ctx context.Context, orderID string) error
}
