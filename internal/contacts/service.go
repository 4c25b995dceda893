package contacts

import (
	"context"
	"errors"
	"fmt"

	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RepositoryPort defines data access methods for contact messages.
type RepositoryPort interface {
	Create(ctx context.Context, msg Message) (Message, error)
	List(ctx context.Context, limit int) ([]Message, error)
}

// AckNotifier queues an acknowledgement email for a submitted message.
type AckNotifier interface {
	EnqueueContactAck(ctx context.Context, to, name, reference string) error
}

// Service handles contact message business logic.
type Service struct {
	repo     RepositoryPort
	notifier AckNotifier
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, notifier AckNotifier, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// Submit validates and persists a contact message, then queues an
// acknowledgement email. A queue failure does not fail the submission.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (Message, error) {
	if err := s.validate.Struct(req); err != nil {
		return Message{}, fmt.Errorf("contacts: validate: %w", err)
	}

	msg := Message{
		Reference: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Body:      req.Body,
	}
	saved, err := s.repo.Create(ctx, msg)
	if err != nil {
		return Message{}, fmt.Errorf("contacts: create: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.EnqueueContactAck(ctx, saved.Email, saved.Name, saved.Reference); err != nil && s.logger != nil {
			s.logger.Warn("enqueue contact ack", slog.Any("error", err), slog.String("reference", saved.Reference))
		}
	}
	return saved, nil
}

// List returns recent contact messages for support staff.
func (s *Service) List(ctx context.Context, limit int) ([]Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.List(ctx, limit)
}

// IsValidationError reports whether the error came from payload validation.
func IsValidationError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}
