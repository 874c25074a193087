package repositories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/enrollment/internal/app/migrations"
	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/app/repositories"
	"github.com/yigit/enrollment/internal/app/services"
	"github.com/yigit/enrollment/internal/config"
	"github.com/yigit/enrollment/internal/db"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
	"github.com/yigit/enrollment/internal/pkg/helpers"
	"github.com/yigit/enrollment/internal/pkg/logger"
	"github.com/yigit/enrollment/internal/seed"
)

// openTestDB connects to ENROLLMENT_TEST_DATABASE_URL, applies the migrations and
// empties every table. The test is skipped when the variable is unset.
func openTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := config.GetEnv("ENROLLMENT_TEST_DATABASE_URL", "")
	if url == "" {
		t.Skip("ENROLLMENT_TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := migrations.NewMigrator(pool, logger.Get()).MigrateFromDirectory(ctx, "../../../migrations"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	_, err = pool.Exec(ctx, `TRUNCATE student_subject, teacher_subject, students, subjects, teachers, credit_programs RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return pool
}

// created returns a helper that unwraps (id, err) results and fails t on error
func created(t *testing.T) func(id int64, err error) int64 {
	return func(id int64, err error) int64 {
		t.Helper()
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		return id
	}
}

func TestEnrollmentAgainstPostgres(t *testing.T) {
	pool := openTestDB(t)
	repos := repositories.NewRepositories(pool)
	ctx := context.Background()
	must := created(t)

	programID := must(repos.CreditProgramRepository.Create(ctx, &models.CreditProgram{Name: "Systems"}))
	studentID := must(repos.StudentRepository.Create(ctx, &models.Student{
		Name: "Ana", DocumentNumber: "1020", CreditProgramID: helpers.Int64Ptr(programID),
	}))

	subject := func(name string) int64 {
		return must(repos.SubjectRepository.Create(ctx, &models.Subject{Name: name, Credits: 3, CreditProgramID: helpers.Int64Ptr(programID)}))
	}
	teacher := func(name string) int64 {
		return must(repos.TeacherRepository.Create(ctx, &models.Teacher{Name: name}))
	}
	assign := func(teacherID, subjectID int64) {
		must(repos.TeacherSubjectRepository.Create(ctx, &models.TeacherSubject{TeacherID: teacherID, SubjectID: subjectID}))
	}

	a, b, c, d, e := subject("A"), subject("B"), subject("C"), subject("D"), subject("E")
	t1, t2, t3 := teacher("T1"), teacher("T2"), teacher("T3")
	assign(t1, a)
	assign(t2, b)
	assign(t1, c)
	assign(t3, e)

	svc := services.NewEnrollmentService(repos.StudentSubjectRepository)
	for _, s := range []int64{a, b} {
		if _, err := svc.Enroll(ctx, studentID, s); err != nil {
			t.Fatalf("enroll %d: %v", s, err)
		}
	}

	var rejection *services.EnrollmentRejection
	if _, err := svc.Enroll(ctx, studentID, a); !errors.As(err, &rejection) || rejection.Reason != services.ReasonDuplicateEnrollment {
		t.Fatalf("expected DuplicateEnrollment, got %v", err)
	}
	if _, err := svc.Enroll(ctx, studentID, c); !errors.As(err, &rejection) || rejection.Reason != services.ReasonTeacherConflict {
		t.Fatalf("expected TeacherConflict, got %v", err)
	}
	if _, err := svc.Enroll(ctx, studentID, d); !errors.As(err, &rejection) || rejection.Reason != services.ReasonNoTeacherAssigned {
		t.Fatalf("expected NoTeacherAssigned, got %v", err)
	}
	if _, err := svc.Enroll(ctx, studentID, e); err != nil {
		t.Fatalf("enroll E: %v", err)
	}

	details, err := repos.StudentSubjectRepository.GetDetailsByStudentID(ctx, studentID)
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if len(details) != 3 {
		t.Fatalf("expected 3 enrollments, got %d", len(details))
	}
	if details[0].TeacherName == nil || *details[0].TeacherName != "T1" {
		t.Fatalf("expected first teacher name T1, got %v", details[0].TeacherName)
	}

	f := subject("F")
	assign(teacher("T4"), f)
	if _, err := svc.Enroll(ctx, studentID, f); !errors.As(err, &rejection) || rejection.Reason != services.ReasonEnrollmentLimitExceeded {
		t.Fatalf("expected EnrollmentLimitExceeded, got %v", err)
	}

	if err := repos.TeacherRepository.Delete(ctx, t1); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict deleting an assigned teacher, got %v", err)
	}

	if err := repos.StudentRepository.DeleteWithEnrollments(ctx, studentID); err != nil {
		t.Fatalf("delete student: %v", err)
	}
	if _, err := repos.StudentRepository.GetDetailByID(ctx, studentID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	remaining, err := repos.StudentSubjectRepository.CountByStudentID(ctx, studentID)
	if err != nil || remaining != 0 {
		t.Fatalf("expected enrollments to be removed, got %d (%v)", remaining, err)
	}
}

func TestDocumentNumberIsUnique(t *testing.T) {
	pool := openTestDB(t)
	repo := repositories.NewStudentRepository(pool)
	ctx := context.Background()
	must := created(t)

	must(repo.Create(ctx, &models.Student{Name: "Ana", DocumentNumber: "1"}))
	_, err := repo.Create(ctx, &models.Student{Name: "Luis", DocumentNumber: "1"})
	if !errors.Is(err, apperrors.ErrDocumentNumberExists) {
		t.Fatalf("expected duplicate document error, got %v", err)
	}
}

func TestDefaultDataSeedsOnce(t *testing.T) {
	pool := openTestDB(t)
	database := &db.PostgresDB{Pool: pool}
	repos := repositories.NewRepositories(pool)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := seed.CreateDefaultData(ctx, database, logger.Get()); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}

	programs, err := repos.CreditProgramRepository.GetAll(ctx)
	if err != nil || len(programs) != 1 {
		t.Fatalf("expected one credit program, got %d (%v)", len(programs), err)
	}
	subjects, err := repos.SubjectRepository.GetAll(ctx)
	if err != nil || len(subjects) != len(seed.DefaultSubjects) {
		t.Fatalf("expected %d subjects, got %d (%v)", len(seed.DefaultSubjects), len(subjects), err)
	}
	assignments, err := repos.TeacherSubjectRepository.GetAllDetails(ctx)
	if err != nil || len(assignments) != len(seed.DefaultSubjects) {
		t.Fatalf("expected one assignment per subject, got %d (%v)", len(assignments), err)
	}
}
