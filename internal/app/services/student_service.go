package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
	"github.com/yigit/enrollment/internal/pkg/logger"
	"github.com/yigit/enrollment/internal/pkg/validation"
)

// StudentStore is the persistence used by StudentService
type StudentStore interface {
	GetAllDetails(ctx context.Context) ([]*models.StudentDetail, error)
	GetDetailByID(ctx context.Context, id int64) (*models.StudentDetail, error)
	Create(ctx context.Context, student *models.Student) (int64, error)
	Update(ctx context.Context, student *models.Student) error
	DeleteWithEnrollments(ctx context.Context, id int64) error
}

// StudentService defines the interface for student operations
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]*models.StudentDetail, error)
	GetStudentByID(ctx context.Context, id int64) (*models.StudentDetail, error)
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	UpdateStudent(ctx context.Context, pathID int64, student *models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
}

type studentServiceImpl struct {
	store StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(store StudentStore) StudentService {
	return &studentServiceImpl{store: store}
}

// validateStudent checks and normalizes student fields before they are stored
func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return apperrors.NewBadRequestError("student is required")
	}

	if err := validation.Name("name", student.Name); err != nil {
		return err
	}
	err := validation.NewStringValidation("documentNumber", student.DocumentNumber).
		WithMaxLength(validation.DocumentNumberMaxLength).
		Validate()
	if err != nil {
		return err
	}
	if err := validation.OptionalPositiveID("creditProgramId", student.CreditProgramID); err != nil {
		return err
	}

	student.Name = strings.TrimSpace(student.Name)
	student.DocumentNumber = strings.TrimSpace(student.DocumentNumber)
	return nil
}

// GetAllStudents retrieves all students with their credit program name
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.StudentDetail, error) {
	students, err := s.store.GetAllDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.StudentDetail, error) {
	if err := validation.PositiveID("id", id); err != nil {
		return nil, err
	}

	student, err := s.store.GetDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// CreateStudent creates a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	if err := s.validateStudent(student); err != nil {
		return 0, err
	}

	id, err := s.store.Create(ctx, student)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrDocumentNumberExists, apperrors.ErrCreditProgramRef) {
			return 0, err
		}
		return 0, fmt.Errorf("error creating student: %w", err)
	}
	student.ID = id
	return id, nil
}

// UpdateStudent fully replaces the student identified by pathID.
// The body id must match the path id.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, pathID int64, student *models.Student) error {
	if student == nil || student.ID != pathID {
		return apperrors.ErrStudentIDMismatch
	}
	if err := validation.PositiveID("id", pathID); err != nil {
		return err
	}
	if err := s.validateStudent(student); err != nil {
		return err
	}

	if err := s.store.Update(ctx, student); err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound,
			apperrors.ErrDocumentNumberExists,
			apperrors.ErrCreditProgramRef,
			apperrors.ErrConcurrentModification) {
			return err
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	return nil
}

// DeleteStudent removes the student and all of its enrollments
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if err := validation.PositiveID("id", id); err != nil {
		return err
	}

	if err := s.store.DeleteWithEnrollments(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound, apperrors.ErrConcurrentModification) {
			return err
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	logger.Info().Int64("studentID", id).Msg("Student deleted with enrollments")
	return nil
}
