package services

import (
	"context"
	"fmt"

	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
	"github.com/yigit/enrollment/internal/pkg/validation"
)

// TeacherAssignmentStore is the persistence used by TeacherAssignmentService
type TeacherAssignmentStore interface {
	GetAllDetails(ctx context.Context) ([]*models.TeacherSubjectDetail, error)
	Create(ctx context.Context, assignment *models.TeacherSubject) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// TeacherAssignmentService defines the interface for assigning teachers to subjects
type TeacherAssignmentService interface {
	GetAllAssignments(ctx context.Context) ([]*models.TeacherSubjectDetail, error)
	AssignTeacher(ctx context.Context, assignment *models.TeacherSubject) (int64, error)
	DeleteAssignment(ctx context.Context, id int64) error
}

type teacherAssignmentServiceImpl struct {
	store TeacherAssignmentStore
}

// NewTeacherAssignmentService creates a new teacher assignment service instance
func NewTeacherAssignmentService(store TeacherAssignmentStore) TeacherAssignmentService {
	return &teacherAssignmentServiceImpl{store: store}
}

func (s *teacherAssignmentServiceImpl) GetAllAssignments(ctx context.Context) ([]*models.TeacherSubjectDetail, error) {
	assignments, err := s.store.GetAllDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teacher assignments: %w", err)
	}
	return assignments, nil
}

// AssignTeacher makes the teacher one of the subject's teachers.
// The first assignment of a subject decides its teacher for enrollments.
func (s *teacherAssignmentServiceImpl) AssignTeacher(ctx context.Context, assignment *models.TeacherSubject) (int64, error) {
	if assignment == nil {
		return 0, apperrors.NewBadRequestError("assignment is required")
	}
	if err := validation.PositiveID("teacherId", assignment.TeacherID); err != nil {
		return 0, err
	}
	if err := validation.PositiveID("subjectId", assignment.SubjectID); err != nil {
		return 0, err
	}

	id, err := s.store.Create(ctx, assignment)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrTeacherAssignmentExists, apperrors.ErrTeacherAssignmentRef) {
			return 0, err
		}
		return 0, fmt.Errorf("error assigning teacher: %w", err)
	}
	assignment.ID = id
	return id, nil
}

func (s *teacherAssignmentServiceImpl) DeleteAssignment(ctx context.Context, id int64) error {
	if err := validation.PositiveID("id", id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.ErrTeacherAssignmentNotFound) {
			return err
		}
		return fmt.Errorf("error deleting teacher assignment: %w", err)
	}
	return nil
}
