package services

import (
	"context"
	"errors"
	"testing"

	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
)

type memoryStudentStore struct {
	students    map[int64]*models.Student
	enrollments map[int64]int
	nextID      int64
	updates     int
}

func newMemoryStudentStore() *memoryStudentStore {
	return &memoryStudentStore{
		students:    map[int64]*models.Student{},
		enrollments: map[int64]int{},
	}
}

func (m *memoryStudentStore) GetAllDetails(ctx context.Context) ([]*models.StudentDetail, error) {
	out := []*models.StudentDetail{}
	for _, s := range m.students {
		out = append(out, &models.StudentDetail{ID: s.ID, Name: s.Name, DocumentNumber: s.DocumentNumber, CreditProgramID: s.CreditProgramID})
	}
	return out, nil
}

func (m *memoryStudentStore) GetDetailByID(ctx context.Context, id int64) (*models.StudentDetail, error) {
	s, ok := m.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return &models.StudentDetail{ID: s.ID, Name: s.Name, DocumentNumber: s.DocumentNumber, CreditProgramID: s.CreditProgramID}, nil
}

func (m *memoryStudentStore) Create(ctx context.Context, student *models.Student) (int64, error) {
	for _, s := range m.students {
		if s.DocumentNumber == student.DocumentNumber {
			return 0, apperrors.ErrDocumentNumberExists
		}
	}
	m.nextID++
	stored := *student
	stored.ID = m.nextID
	m.students[stored.ID] = &stored
	return stored.ID, nil
}

func (m *memoryStudentStore) Update(ctx context.Context, student *models.Student) error {
	m.updates++
	if _, ok := m.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	stored := *student
	m.students[student.ID] = &stored
	return nil
}

func (m *memoryStudentStore) DeleteWithEnrollments(ctx context.Context, id int64) error {
	if _, ok := m.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(m.enrollments, id)
	delete(m.students, id)
	return nil
}

func TestCreateStudentTrimsAndStores(t *testing.T) {
	store := newMemoryStudentStore()
	svc := NewStudentService(store)

	student := &models.Student{Name: "  Ana Gomez ", DocumentNumber: " 1020 "}
	id, err := svc.CreateStudent(context.Background(), student)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != student.ID {
		t.Fatalf("returned id %d does not match student id %d", id, student.ID)
	}
	if got := store.students[id]; got.Name != "Ana Gomez" || got.DocumentNumber != "1020" {
		t.Fatalf("fields were not trimmed: %+v", got)
	}
}

func TestCreateStudentValidation(t *testing.T) {
	zero := int64(0)
	tests := []struct {
		name    string
		student *models.Student
	}{
		{"nil", nil},
		{"empty name", &models.Student{Name: "  ", DocumentNumber: "1"}},
		{"empty document", &models.Student{Name: "Ana", DocumentNumber: ""}},
		{"invalid program", &models.Student{Name: "Ana", DocumentNumber: "1", CreditProgramID: &zero}},
	}

	svc := NewStudentService(newMemoryStudentStore())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateStudent(context.Background(), tt.student)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateStudentDuplicateDocument(t *testing.T) {
	svc := NewStudentService(newMemoryStudentStore())
	ctx := context.Background()

	if _, err := svc.CreateStudent(ctx, &models.Student{Name: "Ana", DocumentNumber: "1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.CreateStudent(ctx, &models.Student{Name: "Luis", DocumentNumber: "1"})
	if !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestUpdateStudentIDMismatch(t *testing.T) {
	store := newMemoryStudentStore()
	svc := NewStudentService(store)

	err := svc.UpdateStudent(context.Background(), 1, &models.Student{ID: 2, Name: "Ana", DocumentNumber: "1"})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
	if store.updates != 0 {
		t.Fatalf("store must not be touched on id mismatch")
	}
}

func TestUpdateStudentNotFound(t *testing.T) {
	svc := NewStudentService(newMemoryStudentStore())

	err := svc.UpdateStudent(context.Background(), 5, &models.Student{ID: 5, Name: "Ana", DocumentNumber: "1"})
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteStudentCascades(t *testing.T) {
	store := newMemoryStudentStore()
	svc := NewStudentService(store)
	ctx := context.Background()

	id, err := svc.CreateStudent(ctx, &models.Student{Name: "Ana", DocumentNumber: "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store.enrollments[id] = 2

	if err := svc.DeleteStudent(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.enrollments[id]; ok {
		t.Fatalf("enrollments were not removed")
	}
	if _, err := svc.GetStudentByID(ctx, id); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := svc.DeleteStudent(ctx, id); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
