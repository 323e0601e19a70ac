package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/charity_box_app/internal/apperrors"
	"github.com/SscSPs/charity_box_app/internal/core/domain"
	portsrepo "github.com/SscSPs/charity_box_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/charity_box_app/internal/core/ports/services"
	"github.com/SscSPs/charity_box_app/internal/dto"
	"github.com/SscSPs/charity_box_app/internal/platform/metrics"
	"github.com/google/uuid"
)

func isExpected(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrInvalidState)
}

// boxService implements the BoxSvcFacade interface
type boxService struct {
	BaseService
	boxRepo      portsrepo.BoxReader
	uow          portsrepo.UnitOfWork
	deletePolicy domain.BoxDeletePolicy
	metrics      *metrics.Collector
}

// BoxServiceOption is a functional option for configuring the box service
type BoxServiceOption func(*boxService)

// WithDeletePolicy sets what happens to money left in a deleted box
func WithDeletePolicy(policy domain.BoxDeletePolicy) BoxServiceOption {
	return func(s *boxService) {
		if policy.IsValid() {
			s.deletePolicy = policy
		}
	}
}

// WithBoxMetrics adds the metrics collector
func WithBoxMetrics(m *metrics.Collector) BoxServiceOption {
	return func(s *boxService) {
		s.metrics = m
	}
}

// NewBoxService creates a new box service with the provided options
func NewBoxService(repo portsrepo.BoxReader, uow portsrepo.UnitOfWork, options ...BoxServiceOption) portssvc.BoxSvcFacade {
	svc := &boxService{
		boxRepo:      repo,
		uow:          uow,
		deletePolicy: domain.DeletePolicyDiscard,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BoxSvcFacade = (*boxService)(nil)

func (s *boxService) CreateBox(ctx context.Context, userID string) (*domain.Box, error) {
	box := domain.NewBox(uuid.NewString())
	box.AuditFields = domain.NewAuditFields(userID, time.Now())

	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		return repos.Boxes.SaveBox(ctx, box)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save box", slog.String("box_id", box.BoxID))
		return nil, fmt.Errorf("failed to create box: %w", err)
	}

	s.LogInfo(ctx, "Collection box registered", slog.String("box_id", box.BoxID))
	return &box, nil
}

func (s *boxService) GetBoxByID(ctx context.Context, boxID string) (*domain.Box, error) {
	box, err := s.boxRepo.FindBoxByID(ctx, boxID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find box by ID", slog.String("box_id", boxID))
		return nil, err
	}
	return box, nil
}

func (s *boxService) ListBoxSummaries(ctx context.Context) ([]domain.BoxSummary, error) {
	boxes, err := s.boxRepo.ListBoxes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list boxes")
		return nil, fmt.Errorf("failed to list boxes: %w", err)
	}

	summaries := make([]domain.BoxSummary, 0, len(boxes))
	for _, box := range boxes {
		summaries = append(summaries, box.Summary())
	}
	s.LogDebug(ctx, "Boxes listed", slog.Int("count", len(summaries)))
	return summaries, nil
}

func (s *boxService) Deposit(ctx context.Context, boxID string, req dto.DepositRequest, userID string) (*domain.Box, error) {
	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateDeposit(currency, req.Amount); err != nil {
		return nil, err
	}

	var updated domain.Box
	err = s.uow.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		box, err := repos.Boxes.FindBoxByIDForUpdate(ctx, boxID)
		if err != nil {
			return err
		}
		if err := box.Deposit(currency, *req.Amount); err != nil {
			return err
		}
		box.Touch(userID, time.Now())
		if err := repos.Boxes.UpdateBox(ctx, *box); err != nil {
			return err
		}
		updated = *box
		return nil
	})
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to deposit into box", slog.String("box_id", boxID))
		return nil, err
	}

	s.metrics.RecordDeposit(currency.String())
	s.LogInfo(ctx, "Deposit accepted",
		slog.String("box_id", boxID),
		slog.String("currency", currency.String()),
		slog.String("amount", req.Amount.String()))
	return &updated, nil
}

func (s *boxService) DeleteBox(ctx context.Context, boxID string, userID string) error {
	var discarded map[domain.Currency]string
	err := s.uow.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		box, err := repos.Boxes.FindBoxByIDForUpdate(ctx, boxID)
		if err != nil {
			return err
		}

		if !box.IsEmpty() {
			if s.deletePolicy == domain.DeletePolicyRequireEmpty {
				return fmt.Errorf("%w: box %s still holds money and cannot be deleted", apperrors.ErrInvalidState, boxID)
			}
			discarded = make(map[domain.Currency]string)
			for c, amount := range box.NonZeroAmounts() {
				discarded[c] = amount.String()
			}
			box.Empty()
			box.Touch(userID, time.Now())
			if err := repos.Boxes.UpdateBox(ctx, *box); err != nil {
				return err
			}
		}
		return repos.Boxes.DeleteBox(ctx, boxID)
	})
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to delete box", slog.String("box_id", boxID))
		return err
	}

	if len(discarded) > 0 {
		s.LogWarn(ctx, "Box deleted with money inside, amounts discarded",
			slog.String("box_id", boxID),
			slog.String("user_id", userID),
			slog.Any("discarded", discarded))
	}
	s.LogInfo(ctx, "Collection box unregistered", slog.String("box_id", boxID))
	return nil
}
