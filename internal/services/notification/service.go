package notification

import (
	"context"

	"walet/internal/services/walet"

	"go.uber.org/zap"
)

// Service logs entity alerts.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new notification service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Notify logs an entity mutation.
func (s *Service) Notify(ctx context.Context, action walet.Action, entityName string, id int64) {
	s.logger.Info("entity alert",
		zap.String("entity", entityName),
		zap.String("action", string(action)),
		zap.Int64("id", id),
	)
}
