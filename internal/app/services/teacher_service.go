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

// TeacherStore is the persistence used by TeacherService
type TeacherStore interface {
	GetAll(ctx context.Context) ([]*models.Teacher, error)
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	Create(ctx context.Context, teacher *models.Teacher) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// TeacherService defines the interface for teacher operations
type TeacherService interface {
	GetAllTeachers(ctx context.Context) ([]*models.Teacher, error)
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	CreateTeacher(ctx context.Context, teacher *models.Teacher) (int64, error)
	DeleteTeacher(ctx context.Context, id int64) error
}

type teacherServiceImpl struct {
	store TeacherStore
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(store TeacherStore) TeacherService {
	return &teacherServiceImpl{store: store}
}

func (s *teacherServiceImpl) GetAllTeachers(ctx context.Context) ([]*models.Teacher, error) {
	teachers, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}
	return teachers, nil
}

func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if err := validation.PositiveID("id", id); err != nil {
		return nil, err
	}

	teacher, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeacherNotFound) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return teacher, nil
}

func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, teacher *models.Teacher) (int64, error) {
	if teacher == nil {
		return 0, apperrors.NewBadRequestError("teacher is required")
	}
	if err := validation.Name("name", teacher.Name); err != nil {
		return 0, err
	}
	teacher.Name = strings.TrimSpace(teacher.Name)

	id, err := s.store.Create(ctx, teacher)
	if err != nil {
		return 0, fmt.Errorf("error creating teacher: %w", err)
	}
	teacher.ID = id
	return id, nil
}

func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id int64) error {
	if err := validation.PositiveID("id", id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.ErrTeacherNotFound, apperrors.ErrTeacherInUse) {
			return err
		}
		return fmt.Errorf("error deleting teacher: %w", err)
	}
	return nil
}
