package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/app/repositories"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
	"github.com/yigit/enrollment/internal/pkg/logger"
	"github.com/yigit/enrollment/internal/pkg/validation"
)

// RejectionReason tags why an enrollment attempt was refused
type RejectionReason string

const (
	ReasonDuplicateEnrollment     RejectionReason = "DuplicateEnrollment"
	ReasonEnrollmentLimitExceeded RejectionReason = "EnrollmentLimitExceeded"
	ReasonNoTeacherAssigned       RejectionReason = "NoTeacherAssigned"
	ReasonTeacherConflict         RejectionReason = "TeacherConflict"
)

// Message returns the human-readable text shown to API clients
func (r RejectionReason) Message() string {
	switch r {
	case ReasonDuplicateEnrollment:
		return "the subject is already assigned to the student"
	case ReasonEnrollmentLimitExceeded:
		return fmt.Sprintf("the student already has %d subjects assigned", models.MaxSubjectsPerStudent)
	case ReasonNoTeacherAssigned:
		return "no teacher is assigned to the subject"
	case ReasonTeacherConflict:
		return "the student already has a subject with the same teacher"
	default:
		return string(r)
	}
}

// EnrollmentRejection is returned when an enrollment breaks one of the rules.
// It unwraps to a coded apperrors.CustomError on ErrBadRequest whose details
// carry the reason tag.
type EnrollmentRejection struct {
	Reason RejectionReason
}

func (e *EnrollmentRejection) Error() string {
	return e.Reason.Message()
}

func (e *EnrollmentRejection) Unwrap() error {
	return apperrors.NewCustomError(apperrors.ErrBadRequest, e.Reason.Message()).
		WithCode(string(dto.ErrorCodeEnrollmentRejected)).
		WithDetails(map[string]interface{}{"reason": string(e.Reason)})
}

func reject(reason RejectionReason) error {
	return &EnrollmentRejection{Reason: reason}
}

// EnrollmentStore is the persistence used by EnrollmentService
type EnrollmentStore interface {
	GetAllDetails(ctx context.Context) ([]*models.StudentSubjectDetail, error)
	GetDetailsByStudentID(ctx context.Context, studentID int64) ([]*models.StudentSubjectDetail, error)
	GetStudentNamesBySubjectID(ctx context.Context, subjectID int64) ([]*models.EnrolledStudent, error)
	Delete(ctx context.Context, id int64) error
	WithStudentLock(ctx context.Context, studentID int64, fn func(ctx context.Context, tx repositories.EnrollmentTx) error) error
}

// EnrollmentService defines the interface for enrollment operations
type EnrollmentService interface {
	Enroll(ctx context.Context, studentID, subjectID int64) (*models.StudentSubject, error)
	ListEnrollments(ctx context.Context) ([]*models.StudentSubjectDetail, error)
	ListEnrollmentsByStudent(ctx context.Context, studentID int64) ([]*models.StudentSubjectDetail, error)
	ListStudentsBySubject(ctx context.Context, subjectID int64) ([]*models.EnrolledStudent, error)
	DeleteEnrollment(ctx context.Context, id int64) error
}

type enrollmentServiceImpl struct {
	store EnrollmentStore
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(store EnrollmentStore) EnrollmentService {
	return &enrollmentServiceImpl{store: store}
}

// Enroll applies the enrollment rules in order and stops at the first one that fails:
// duplicate, subject limit, teacher presence, teacher conflict. The enrollment is
// inserted only when every rule passes.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, studentID, subjectID int64) (*models.StudentSubject, error) {
	if err := validation.PositiveID("studentId", studentID); err != nil {
		return nil, err
	}
	if err := validation.PositiveID("subjectId", subjectID); err != nil {
		return nil, err
	}

	var created *models.StudentSubject
	err := s.store.WithStudentLock(ctx, studentID, func(ctx context.Context, tx repositories.EnrollmentTx) error {
		exists, err := tx.Exists(ctx, studentID, subjectID)
		if err != nil {
			return err
		}
		if exists {
			return reject(ReasonDuplicateEnrollment)
		}

		count, err := tx.CountByStudentID(ctx, studentID)
		if err != nil {
			return err
		}
		if count >= models.MaxSubjectsPerStudent {
			return reject(ReasonEnrollmentLimitExceeded)
		}

		teacherID, err := tx.FirstTeacherIDForSubject(ctx, subjectID)
		if err != nil {
			if errors.Is(err, apperrors.ErrTeacherAssignmentNotFound) {
				return reject(ReasonNoTeacherAssigned)
			}
			return err
		}

		conflict, err := tx.StudentHasTeacher(ctx, studentID, teacherID)
		if err != nil {
			return err
		}
		if conflict {
			return reject(ReasonTeacherConflict)
		}

		enrollment := &models.StudentSubject{StudentID: studentID, SubjectID: subjectID}
		id, err := tx.Create(ctx, enrollment)
		if err != nil {
			if errors.Is(err, apperrors.ErrEnrollmentExists) {
				return reject(ReasonDuplicateEnrollment)
			}
			return err
		}
		enrollment.ID = id
		created = enrollment
		return nil
	})
	if err != nil {
		var rejection *EnrollmentRejection
		if errors.As(err, &rejection) {
			logger.Info().
				Int64("studentID", studentID).
				Int64("subjectID", subjectID).
				Str("reason", string(rejection.Reason)).
				Msg("Enrollment rejected")
			return nil, err
		}
		if apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("error enrolling student: %w", err)
	}

	logger.Info().Int64("studentID", studentID).Int64("subjectID", subjectID).Int64("enrollmentID", created.ID).Msg("Student enrolled")
	return created, nil
}

// ListEnrollments returns every enrollment with student, subject and teacher names
func (s *enrollmentServiceImpl) ListEnrollments(ctx context.Context) ([]*models.StudentSubjectDetail, error) {
	enrollments, err := s.store.GetAllDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}
	return enrollments, nil
}

// ListEnrollmentsByStudent returns the enrollments of one student
func (s *enrollmentServiceImpl) ListEnrollmentsByStudent(ctx context.Context, studentID int64) ([]*models.StudentSubjectDetail, error) {
	if err := validation.PositiveID("studentId", studentID); err != nil {
		return nil, err
	}

	enrollments, err := s.store.GetDetailsByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student enrollments: %w", err)
	}
	return enrollments, nil
}

// ListStudentsBySubject returns the names of the students enrolled in a subject
func (s *enrollmentServiceImpl) ListStudentsBySubject(ctx context.Context, subjectID int64) ([]*models.EnrolledStudent, error) {
	if err := validation.PositiveID("subjectId", subjectID); err != nil {
		return nil, err
	}

	students, err := s.store.GetStudentNamesBySubjectID(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolled students: %w", err)
	}
	return students, nil
}

// DeleteEnrollment removes one enrollment
func (s *enrollmentServiceImpl) DeleteEnrollment(ctx context.Context, id int64) error {
	if err := validation.PositiveID("id", id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrEnrollmentNotFound) {
			return apperrors.ErrEnrollmentNotFound
		}
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	return nil
}
