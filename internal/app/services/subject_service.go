package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
	"github.com/yigit/enrollment/internal/pkg/validation"
)

// SubjectStore is the persistence used by SubjectService
type SubjectStore interface {
	GetAll(ctx context.Context) ([]*models.Subject, error)
	GetByCreditProgramID(ctx context.Context, creditProgramID int64) ([]*models.Subject, error)
	Create(ctx context.Context, subject *models.Subject) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// SubjectService defines the interface for subject operations
type SubjectService interface {
	GetAllSubjects(ctx context.Context) ([]*models.Subject, error)
	GetSubjectsByCreditProgram(ctx context.Context, creditProgramID int64) ([]*models.Subject, error)
	CreateSubject(ctx context.Context, subject *models.Subject) (int64, error)
	DeleteSubject(ctx context.Context, id int64) error
}

type subjectServiceImpl struct {
	store SubjectStore
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(store SubjectStore) SubjectService {
	return &subjectServiceImpl{store: store}
}

// GetAllSubjects retrieves all subjects
func (s *subjectServiceImpl) GetAllSubjects(ctx context.Context) ([]*models.Subject, error) {
	subjects, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects: %w", err)
	}
	return subjects, nil
}

// GetSubjectsByCreditProgram retrieves the subjects of a credit program.
// An unknown program yields an empty list.
func (s *subjectServiceImpl) GetSubjectsByCreditProgram(ctx context.Context, creditProgramID int64) ([]*models.Subject, error) {
	if err := validation.PositiveID("creditProgramId", creditProgramID); err != nil {
		return nil, err
	}

	subjects, err := s.store.GetByCreditProgramID(ctx, creditProgramID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects of credit program: %w", err)
	}
	return subjects, nil
}

// CreateSubject creates a new subject. Zero credits means the default.
func (s *subjectServiceImpl) CreateSubject(ctx context.Context, subject *models.Subject) (int64, error) {
	if subject == nil {
		return 0, apperrors.NewBadRequestError("subject is required")
	}
	if err := validation.Name("name", subject.Name); err != nil {
		return 0, err
	}
	if subject.Credits == 0 {
		subject.Credits = models.DefaultSubjectCredits
	}
	if subject.Credits < 0 {
		return 0, apperrors.NewValidationError("credits", "credits must be greater than zero")
	}
	if err := validation.OptionalPositiveID("creditProgramId", subject.CreditProgramID); err != nil {
		return 0, err
	}
	subject.Name = strings.TrimSpace(subject.Name)

	id, err := s.store.Create(ctx, subject)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCreditProgramRef) {
			return 0, err
		}
		return 0, fmt.Errorf("error creating subject: %w", err)
	}
	subject.ID = id
	return id, nil
}

// DeleteSubject removes a subject without enrollments or teacher assignments
func (s *subjectServiceImpl) DeleteSubject(ctx context.Context, id int64) error {
	if err := validation.PositiveID("id", id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.ErrSubjectNotFound, apperrors.ErrSubjectInUse) {
			return err
		}
		return fmt.Errorf("error deleting subject: %w", err)
	}
	return nil
}
