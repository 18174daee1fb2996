package walet

import (
	"context"
	"errors"
	"time"

	apperrors "walet/internal/errors"
	"walet/internal/models"
	"walet/internal/repositories"
	"walet/internal/utils/pagination"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type service struct {
	repo     repositories.WaletRepository
	notifier Notifier
	encoder  PasswordEncoder
	validate *validator.Validate
	metrics  MetricsCollector
	logger   *zap.Logger
}

// NewService creates a new walet service
func NewService(
	repo repositories.WaletRepository,
	notifier Notifier,
	config WaletConfig,
	metrics MetricsCollector,
	logger *zap.Logger,
) Service {
	if repo == nil {
		panic("repo is required")
	}
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var encoder PasswordEncoder = PlainEncoder{}
	if config.HashPasswords {
		encoder = BcryptEncoder{Cost: config.BcryptCost}
	}

	return &service{
		repo:     repo,
		notifier: notifier,
		encoder:  encoder,
		validate: validator.New(),
		metrics:  metrics,
		logger:   logger,
	}
}

func (s *service) Create(ctx context.Context, w *models.Walet) (result *models.Walet, err error) {
	defer s.observe(OpCreate, time.Now(), &err)
	s.logger.Debug("request to save Walet", zap.Stringer("walet", w))

	if err := s.check(w); err != nil {
		return nil, err
	}
	if w.ID != nil {
		return nil, apperrors.ErrWaletIDExists
	}
	if err := s.encodePassword(w); err != nil {
		return nil, err
	}

	result, err = s.repo.Save(ctx, w)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, ActionCreated, apperrors.WaletEntityName, *result.ID)
	return result, nil
}

func (s *service) Update(ctx context.Context, id int64, w *models.Walet) (result *models.Walet, err error) {
	defer s.observe(OpUpdate, time.Now(), &err)
	s.logger.Debug("request to update Walet", zap.Int64("id", id), zap.Stringer("walet", w))

	if err := s.check(w); err != nil {
		return nil, err
	}
	if err := s.checkIdentity(ctx, id, w); err != nil {
		return nil, err
	}
	if err := s.encodePassword(w); err != nil {
		return nil, err
	}

	result, err = s.repo.Save(ctx, w)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, ActionUpdated, apperrors.WaletEntityName, id)
	return result, nil
}

func (s *service) PartialUpdate(ctx context.Context, id int64, patch *models.Walet) (result *models.Walet, err error) {
	defer s.observe(OpPartialUpdate, time.Now(), &err)
	s.logger.Debug("request to partial update Walet", zap.Int64("id", id), zap.Stringer("walet", patch))

	if err := s.check(patch); err != nil {
		return nil, err
	}
	if err := s.checkIdentity(ctx, id, patch); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrWaletNotFound) {
			return nil, apperrors.ErrWaletNotFound
		}
		return nil, err
	}

	changes := *patch
	if err := s.encodePassword(&changes); err != nil {
		return nil, err
	}
	existing.Merge(&changes)

	result, err = s.repo.Save(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, ActionUpdated, apperrors.WaletEntityName, id)
	return result, nil
}

func (s *service) GetAll(ctx context.Context, sort []pagination.Sort) (result []models.Walet, err error) {
	defer s.observe(OpGetAll, time.Now(), &err)
	s.logger.Debug("request to get all Walets")

	return s.repo.FindAll(ctx, sort)
}

func (s *service) Get(ctx context.Context, id int64) (result *models.Walet, err error) {
	defer s.observe(OpGet, time.Now(), &err)
	s.logger.Debug("request to get Walet", zap.Int64("id", id))

	result, err = s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrWaletNotFound) {
			return nil, apperrors.ErrWaletNotFound
		}
		return nil, err
	}
	return result, nil
}

func (s *service) Delete(ctx context.Context, id int64) (err error) {
	defer s.observe(OpDelete, time.Now(), &err)
	s.logger.Debug("request to delete Walet", zap.Int64("id", id))

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.notifier.Notify(ctx, ActionDeleted, apperrors.WaletEntityName, id)
	return nil
}

// check runs the struct validation rules of the walet body.
func (s *service) check(w *models.Walet) error {
	if w == nil {
		return apperrors.NewBadRequestAlert("Request body is required", apperrors.WaletEntityName, "validation")
	}
	if err := s.validate.Struct(w); err != nil {
		return apperrors.NewBadRequestAlert(err.Error(), apperrors.WaletEntityName, "validation")
	}
	return nil
}

// checkIdentity applies the id rules shared by Update and PartialUpdate.
func (s *service) checkIdentity(ctx context.Context, id int64, w *models.Walet) error {
	if w.ID == nil {
		return apperrors.ErrWaletIDNull
	}
	if *w.ID != id {
		return apperrors.ErrWaletIDInvalid
	}

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrWaletIDNotFound
	}
	return nil
}

func (s *service) encodePassword(w *models.Walet) error {
	if w.Password == nil {
		return nil
	}
	encoded, err := s.encoder.Encode(*w.Password)
	if err != nil {
		return err
	}
	w.Password = &encoded
	return nil
}

func (s *service) observe(op string, start time.Time, err *error) {
	s.metrics.RecordOperationDuration(op, time.Since(start))
	if *err == nil {
		s.metrics.RecordOperationResult(op, "success")
		return
	}

	s.metrics.RecordOperationResult(op, "failure")
	var alert *apperrors.BadRequestAlertError
	var domain *apperrors.DomainError
	switch {
	case errors.As(*err, &alert):
		s.metrics.RecordError(op, alert.ErrorKey)
	case errors.As(*err, &domain):
		s.metrics.RecordError(op, domain.Code)
	default:
		s.metrics.RecordError(op, "internal")
		s.logger.Error("walet operation failed", zap.String("operation", op), zap.Error(*err))
	}
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, Action, string, int64) {}
