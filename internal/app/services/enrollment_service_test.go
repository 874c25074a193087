package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/app/models/dto"
	"github.com/yigit/enrollment/internal/app/repositories"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
)

// memoryEnrollmentStore keeps enrollments and teacher assignments in memory.
// WithStudentLock works on a copy that is kept only when fn succeeds.
type memoryEnrollmentStore struct {
	mu          sync.Mutex
	nextID      int64
	enrollments []models.StudentSubject
	assignments []models.TeacherSubject
	creates     int
}

func (m *memoryEnrollmentStore) assign(teacherID, subjectID int64) {
	m.assignments = append(m.assignments, models.TeacherSubject{
		ID:        int64(len(m.assignments) + 1),
		TeacherID: teacherID,
		SubjectID: subjectID,
	})
}

func (m *memoryEnrollmentStore) enroll(studentID, subjectID int64) {
	m.nextID++
	m.enrollments = append(m.enrollments, models.StudentSubject{ID: m.nextID, StudentID: studentID, SubjectID: subjectID})
}

func (m *memoryEnrollmentStore) countFor(studentID int64) int {
	n := 0
	for _, e := range m.enrollments {
		if e.StudentID == studentID {
			n++
		}
	}
	return n
}

func (m *memoryEnrollmentStore) GetAllDetails(ctx context.Context) ([]*models.StudentSubjectDetail, error) {
	out := []*models.StudentSubjectDetail{}
	for _, e := range m.enrollments {
		out = append(out, &models.StudentSubjectDetail{ID: e.ID, StudentID: e.StudentID, SubjectID: e.SubjectID})
	}
	return out, nil
}

func (m *memoryEnrollmentStore) GetDetailsByStudentID(ctx context.Context, studentID int64) ([]*models.StudentSubjectDetail, error) {
	out := []*models.StudentSubjectDetail{}
	for _, e := range m.enrollments {
		if e.StudentID == studentID {
			out = append(out, &models.StudentSubjectDetail{ID: e.ID, StudentID: e.StudentID, SubjectID: e.SubjectID})
		}
	}
	return out, nil
}

func (m *memoryEnrollmentStore) GetStudentNamesBySubjectID(ctx context.Context, subjectID int64) ([]*models.EnrolledStudent, error) {
	return []*models.EnrolledStudent{}, nil
}

func (m *memoryEnrollmentStore) Delete(ctx context.Context, id int64) error {
	for i, e := range m.enrollments {
		if e.ID == id {
			m.enrollments = append(m.enrollments[:i], m.enrollments[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrEnrollmentNotFound
}

func (m *memoryEnrollmentStore) WithStudentLock(ctx context.Context, studentID int64, fn func(ctx context.Context, tx repositories.EnrollmentTx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memoryEnrollmentTx{
		store:       m,
		nextID:      m.nextID,
		enrollments: append([]models.StudentSubject(nil), m.enrollments...),
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	m.nextID = tx.nextID
	m.enrollments = tx.enrollments
	return nil
}

type memoryEnrollmentTx struct {
	store       *memoryEnrollmentStore
	nextID      int64
	enrollments []models.StudentSubject
}

func (t *memoryEnrollmentTx) Exists(ctx context.Context, studentID, subjectID int64) (bool, error) {
	for _, e := range t.enrollments {
		if e.StudentID == studentID && e.SubjectID == subjectID {
			return true, nil
		}
	}
	return false, nil
}

func (t *memoryEnrollmentTx) CountByStudentID(ctx context.Context, studentID int64) (int, error) {
	n := 0
	for _, e := range t.enrollments {
		if e.StudentID == studentID {
			n++
		}
	}
	return n, nil
}

func (t *memoryEnrollmentTx) FirstTeacherIDForSubject(ctx context.Context, subjectID int64) (int64, error) {
	assignments := append([]models.TeacherSubject(nil), t.store.assignments...)
	sort.Slice(assignments, func(i, j int) bool { return assignments[i].ID < assignments[j].ID })
	for _, a := range assignments {
		if a.SubjectID == subjectID {
			return a.TeacherID, nil
		}
	}
	return 0, apperrors.ErrTeacherAssignmentNotFound
}

func (t *memoryEnrollmentTx) StudentHasTeacher(ctx context.Context, studentID, teacherID int64) (bool, error) {
	for _, e := range t.enrollments {
		if e.StudentID != studentID {
			continue
		}
		for _, a := range t.store.assignments {
			if a.SubjectID == e.SubjectID && a.TeacherID == teacherID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (t *memoryEnrollmentTx) Create(ctx context.Context, enrollment *models.StudentSubject) (int64, error) {
	t.store.creates++
	t.nextID++
	enrollment.ID = t.nextID
	t.enrollments = append(t.enrollments, *enrollment)
	return t.nextID, nil
}

func assertRejected(t *testing.T, err error, want RejectionReason) {
	t.Helper()
	var rejection *EnrollmentRejection
	if !errors.As(err, &rejection) {
		t.Fatalf("expected rejection %s, got %v", want, err)
	}
	if rejection.Reason != want {
		t.Fatalf("expected rejection %s, got %s", want, rejection.Reason)
	}
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("rejection should match ErrBadRequest")
	}
}

func TestEnrollSucceeds(t *testing.T) {
	store := &memoryEnrollmentStore{}
	store.assign(1, 10)
	svc := NewEnrollmentService(store)

	enrollment, err := svc.Enroll(context.Background(), 7, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enrollment.ID == 0 || enrollment.StudentID != 7 || enrollment.SubjectID != 10 {
		t.Fatalf("unexpected enrollment: %+v", enrollment)
	}
	if store.countFor(7) != 1 {
		t.Fatalf("expected 1 stored enrollment, got %d", store.countFor(7))
	}
}

func TestEnrollDuplicate(t *testing.T) {
	store := &memoryEnrollmentStore{}
	store.assign(1, 10)
	store.enroll(7, 10)
	svc := NewEnrollmentService(store)

	_, err := svc.Enroll(context.Background(), 7, 10)
	assertRejected(t, err, ReasonDuplicateEnrollment)
	if store.countFor(7) != 1 {
		t.Fatalf("duplicate attempt must not insert")
	}
}

func TestEnrollLimitExceeded(t *testing.T) {
	store := &memoryEnrollmentStore{}
	for subject := int64(1); subject <= 4; subject++ {
		store.assign(subject, subject)
	}
	store.enroll(7, 1)
	store.enroll(7, 2)
	store.enroll(7, 3)
	svc := NewEnrollmentService(store)

	_, err := svc.Enroll(context.Background(), 7, 4)
	assertRejected(t, err, ReasonEnrollmentLimitExceeded)
	if store.countFor(7) != models.MaxSubjectsPerStudent {
		t.Fatalf("expected %d enrollments, got %d", models.MaxSubjectsPerStudent, store.countFor(7))
	}
	if store.creates != 0 {
		t.Fatalf("rejected attempt reached the insert")
	}
}

func TestEnrollDuplicateCheckedBeforeLimit(t *testing.T) {
	store := &memoryEnrollmentStore{}
	store.enroll(7, 1)
	store.enroll(7, 2)
	store.enroll(7, 3)
	svc := NewEnrollmentService(store)

	_, err := svc.Enroll(context.Background(), 7, 2)
	assertRejected(t, err, ReasonDuplicateEnrollment)
}

func TestEnrollNoTeacherAssigned(t *testing.T) {
	store := &memoryEnrollmentStore{}
	svc := NewEnrollmentService(store)

	_, err := svc.Enroll(context.Background(), 7, 10)
	assertRejected(t, err, ReasonNoTeacherAssigned)
	if store.creates != 0 {
		t.Fatalf("rejected attempt reached the insert")
	}
}

func TestEnrollTeacherConflict(t *testing.T) {
	store := &memoryEnrollmentStore{}
	store.assign(1, 10)
	store.assign(1, 11)
	store.enroll(7, 10)
	svc := NewEnrollmentService(store)

	_, err := svc.Enroll(context.Background(), 7, 11)
	assertRejected(t, err, ReasonTeacherConflict)
}

func TestEnrollFirstTeacherWins(t *testing.T) {
	store := &memoryEnrollmentStore{}
	// Subject 11 is taught by teacher 2 first and teacher 1 second.
	store.assign(2, 11)
	store.assign(1, 11)
	store.assign(1, 10)
	store.enroll(7, 10)
	svc := NewEnrollmentService(store)

	if _, err := svc.Enroll(context.Background(), 7, 11); err != nil {
		t.Fatalf("only the first teacher of the subject is compared, got %v", err)
	}
}

func TestEnrollScenario(t *testing.T) {
	const (
		subjectA, subjectB, subjectC, subjectD, subjectE = 1, 2, 3, 4, 5
		t1, t2, t3                                       = 1, 2, 3
		student                                          = 100
	)
	store := &memoryEnrollmentStore{}
	store.assign(t1, subjectA)
	store.assign(t2, subjectB)
	store.assign(t1, subjectC)
	store.assign(t3, subjectE)
	store.enroll(student, subjectA)
	store.enroll(student, subjectB)
	svc := NewEnrollmentService(store)
	ctx := context.Background()

	_, err := svc.Enroll(ctx, student, subjectC)
	assertRejected(t, err, ReasonTeacherConflict)

	_, err = svc.Enroll(ctx, student, subjectD)
	assertRejected(t, err, ReasonNoTeacherAssigned)

	if _, err := svc.Enroll(ctx, student, subjectE); err != nil {
		t.Fatalf("expected enrollment in E to succeed, got %v", err)
	}
	if store.countFor(student) != 3 {
		t.Fatalf("expected 3 enrollments, got %d", store.countFor(student))
	}
}

func TestEnrollConcurrentAttemptsRespectLimit(t *testing.T) {
	store := &memoryEnrollmentStore{}
	for subject := int64(1); subject <= 6; subject++ {
		store.assign(subject, subject)
	}
	svc := NewEnrollmentService(store)

	var wg sync.WaitGroup
	for subject := int64(1); subject <= 6; subject++ {
		wg.Add(1)
		go func(subject int64) {
			defer wg.Done()
			_, _ = svc.Enroll(context.Background(), 7, subject)
		}(subject)
	}
	wg.Wait()

	if got := store.countFor(7); got != models.MaxSubjectsPerStudent {
		t.Fatalf("expected %d enrollments, got %d", models.MaxSubjectsPerStudent, got)
	}
}

func TestEnrollInvalidIDs(t *testing.T) {
	svc := NewEnrollmentService(&memoryEnrollmentStore{})

	_, err := svc.Enroll(context.Background(), 0, 1)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteEnrollment(t *testing.T) {
	store := &memoryEnrollmentStore{}
	store.enroll(7, 10)
	svc := NewEnrollmentService(store)

	if err := svc.DeleteEnrollment(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := svc.DeleteEnrollment(context.Background(), 1)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRejectionMessages(t *testing.T) {
	reasons := []RejectionReason{
		ReasonDuplicateEnrollment,
		ReasonEnrollmentLimitExceeded,
		ReasonNoTeacherAssigned,
		ReasonTeacherConflict,
	}
	seen := map[string]bool{}
	for _, r := range reasons {
		msg := (&EnrollmentRejection{Reason: r}).Error()
		if msg == "" || msg == string(r) {
			t.Errorf("reason %s has no message", r)
		}
		if seen[msg] {
			t.Errorf("message %q is shared by two reasons", msg)
		}
		seen[msg] = true
	}
}

func TestRejectionCarriesCodeAndReason(t *testing.T) {
	err := error(&EnrollmentRejection{Reason: ReasonNoTeacherAssigned})

	var custom *apperrors.CustomError
	if !errors.As(err, &custom) {
		t.Fatalf("rejection should expose a CustomError")
	}
	if custom.Code != string(dto.ErrorCodeEnrollmentRejected) {
		t.Fatalf("unexpected code %q", custom.Code)
	}
	if custom.Details["reason"] != string(ReasonNoTeacherAssigned) {
		t.Fatalf("unexpected details %#v", custom.Details)
	}
	if custom.Message != ReasonNoTeacherAssigned.Message() {
		t.Fatalf("unexpected message %q", custom.Message)
	}
}
