package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
	"github.com/yigit/enrollment/internal/pkg/validation"
)

// CreditProgramStore is the persistence used by CreditProgramService
type CreditProgramStore interface {
	GetAll(ctx context.Context) ([]*models.CreditProgram, error)
	GetByID(ctx context.Context, id int64) (*models.CreditProgram, error)
	Create(ctx context.Context, program *models.CreditProgram) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// CreditProgramService defines the interface for credit program operations
type CreditProgramService interface {
	GetAllCreditPrograms(ctx context.Context) ([]*models.CreditProgram, error)
	GetCreditProgramByID(ctx context.Context, id int64) (*models.CreditProgram, error)
	CreateCreditProgram(ctx context.Context, program *models.CreditProgram) (int64, error)
	DeleteCreditProgram(ctx context.Context, id int64) error
}

type creditProgramServiceImpl struct {
	store CreditProgramStore
}

// NewCreditProgramService creates a new credit program service instance
func NewCreditProgramService(store CreditProgramStore) CreditProgramService {
	return &creditProgramServiceImpl{store: store}
}

// GetAllCreditPrograms retrieves all credit programs
func (s *creditProgramServiceImpl) GetAllCreditPrograms(ctx context.Context) ([]*models.CreditProgram, error) {
	programs, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving credit programs: %w", err)
	}
	return programs, nil
}

// GetCreditProgramByID retrieves a credit program by ID
func (s *creditProgramServiceImpl) GetCreditProgramByID(ctx context.Context, id int64) (*models.CreditProgram, error) {
	if err := validation.PositiveID("id", id); err != nil {
		return nil, err
	}

	program, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCreditProgramNotFound) {
			return nil, apperrors.ErrCreditProgramNotFound
		}
		return nil, fmt.Errorf("error retrieving credit program: %w", err)
	}
	return program, nil
}

// CreateCreditProgram creates a new credit program
func (s *creditProgramServiceImpl) CreateCreditProgram(ctx context.Context, program *models.CreditProgram) (int64, error) {
	if program == nil {
		return 0, apperrors.NewBadRequestError("credit program is required")
	}
	if err := validation.Name("name", program.Name); err != nil {
		return 0, err
	}
	program.Name = strings.TrimSpace(program.Name)

	id, err := s.store.Create(ctx, program)
	if err != nil {
		return 0, fmt.Errorf("error creating credit program: %w", err)
	}
	program.ID = id
	return id, nil
}

// DeleteCreditProgram removes a credit program that nothing references
func (s *creditProgramServiceImpl) DeleteCreditProgram(ctx context.Context, id int64) error {
	if err := validation.PositiveID("id", id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.ErrCreditProgramNotFound, apperrors.ErrCreditProgramInUse) {
			return err
		}
		return fmt.Errorf("error deleting credit program: %w", err)
	}
	return nil
}
