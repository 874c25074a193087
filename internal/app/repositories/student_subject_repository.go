package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/enrollment/internal/app/models"
	"github.com/yigit/enrollment/internal/db"
	"github.com/yigit/enrollment/internal/pkg/apperrors"
	"github.com/yigit/enrollment/internal/pkg/dberrors"
	"github.com/yigit/enrollment/internal/pkg/logger"
)

const studentSubjectUniqueConstraint = "student_subject_student_subject_key"

// EnrollmentTx is the view of the store the enrollment rules run against.
// All calls share one transaction that holds the student's enrollment lock.
type EnrollmentTx interface {
	Exists(ctx context.Context, studentID, subjectID int64) (bool, error)
	CountByStudentID(ctx context.Context, studentID int64) (int, error)
	FirstTeacherIDForSubject(ctx context.Context, subjectID int64) (int64, error)
	StudentHasTeacher(ctx context.Context, studentID, teacherID int64) (bool, error)
	Create(ctx context.Context, enrollment *models.StudentSubject) (int64, error)
}

// StudentSubjectRepository handles enrollment database operations
type StudentSubjectRepository struct {
	conn db.Querier
	sb   squirrel.StatementBuilderType
}

// NewStudentSubjectRepository creates a new StudentSubjectRepository
func NewStudentSubjectRepository(conn db.Querier) *StudentSubjectRepository {
	return &StudentSubjectRepository{
		conn: conn,
		sb:   psql,
	}
}

// detailQuery joins enrollments to student, subject and the subject's first teacher
func (r *StudentSubjectRepository) detailQuery() squirrel.SelectBuilder {
	return r.sb.Select("ss.id", "ss.student_id", "ss.subject_id", "st.name", "st.document_number", "sj.name", "ft.name").
		From("student_subject ss").
		Join("students st ON st.id = ss.student_id").
		Join("subjects sj ON sj.id = ss.subject_id").
		LeftJoin(`LATERAL (
			SELECT t.name FROM teacher_subject ts
			JOIN teachers t ON t.id = ts.teacher_id
			WHERE ts.subject_id = ss.subject_id
			ORDER BY ts.id ASC
			LIMIT 1
		) ft ON TRUE`)
}

func (r *StudentSubjectRepository) listDetails(ctx context.Context, where squirrel.Sqlizer) ([]*models.StudentSubjectDetail, error) {
	query := r.detailQuery().OrderBy("ss.id ASC")
	if where != nil {
		query = query.Where(where)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list enrollments SQL")
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list enrollments query")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.StudentSubjectDetail{}
	for rows.Next() {
		e := &models.StudentSubjectDetail{}
		if err := rows.Scan(&e.ID, &e.StudentID, &e.SubjectID, &e.StudentName, &e.StudentDocumentNumber, &e.SubjectName, &e.TeacherName); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return enrollments, nil
}

// GetAllDetails retrieves every enrollment with names
func (r *StudentSubjectRepository) GetAllDetails(ctx context.Context) ([]*models.StudentSubjectDetail, error) {
	return r.listDetails(ctx, nil)
}

// GetDetailsByStudentID retrieves the enrollments of one student
func (r *StudentSubjectRepository) GetDetailsByStudentID(ctx context.Context, studentID int64) ([]*models.StudentSubjectDetail, error) {
	return r.listDetails(ctx, squirrel.Eq{"ss.student_id": studentID})
}

// GetStudentNamesBySubjectID retrieves the names of the students enrolled in a subject
func (r *StudentSubjectRepository) GetStudentNamesBySubjectID(ctx context.Context, subjectID int64) ([]*models.EnrolledStudent, error) {
	sql, args, err := r.sb.Select("st.name").
		From("student_subject ss").
		Join("students st ON st.id = ss.student_id").
		Where(squirrel.Eq{"ss.subject_id": subjectID}).
		OrderBy("ss.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build enrolled students query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("subjectID", subjectID).Msg("Error executing enrolled students query")
		return nil, fmt.Errorf("error querying enrolled students: %w", err)
	}

	students, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.EnrolledStudent, error) {
		s := &models.EnrolledStudent{}
		err := row.Scan(&s.StudentName)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning enrolled student rows: %w", err)
	}

	return students, nil
}

// Exists reports whether the student is already enrolled in the subject
func (r *StudentSubjectRepository) Exists(ctx context.Context, studentID, subjectID int64) (bool, error) {
	sub := r.sb.Select("1").
		From("student_subject").
		Where(squirrel.Eq{"student_id": studentID, "subject_id": subjectID})

	return r.exists(ctx, sub, "enrollment exists")
}

// StudentHasTeacher reports whether any subject the student is enrolled in is
// taught by the teacher
func (r *StudentSubjectRepository) StudentHasTeacher(ctx context.Context, studentID, teacherID int64) (bool, error) {
	sub := r.sb.Select("1").
		From("student_subject ss").
		Join("teacher_subject ts ON ts.subject_id = ss.subject_id").
		Where(squirrel.Eq{"ss.student_id": studentID, "ts.teacher_id": teacherID})

	return r.exists(ctx, sub, "student has teacher")
}

func (r *StudentSubjectRepository) exists(ctx context.Context, sub squirrel.SelectBuilder, what string) (bool, error) {
	sql, args, err := r.sb.Select().Column(squirrel.Expr("EXISTS(?)", sub)).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build %s query: %w", what, err)
	}

	var found bool
	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&found); err != nil {
		logger.Error().Err(err).Str("query", what).Msg("Error executing exists query")
		return false, fmt.Errorf("error checking %s: %w", what, err)
	}

	return found, nil
}

// CountByStudentID counts the student's enrollments
func (r *StudentSubjectRepository) CountByStudentID(ctx context.Context, studentID int64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("student_subject").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count enrollments query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error counting enrollments")
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}

	return count, nil
}

// Create inserts an enrollment and returns its ID
func (r *StudentSubjectRepository) Create(ctx context.Context, enrollment *models.StudentSubject) (int64, error) {
	sql, args, err := r.sb.Insert("student_subject").
		Columns("student_id", "subject_id").
		Values(enrollment.StudentID, enrollment.SubjectID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	var id int64
	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, studentSubjectUniqueConstraint):
			return 0, apperrors.ErrEnrollmentExists
		case dberrors.IsForeignKeyViolation(err):
			return 0, apperrors.ErrEnrollmentReference
		}
		logger.Error().Err(err).Msg("Error executing create enrollment query")
		return 0, fmt.Errorf("error creating enrollment: %w", err)
	}

	return id, nil
}

// Delete removes an enrollment by ID
func (r *StudentSubjectRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("student_subject").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete enrollment query: %w", err)
	}

	cmdTag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("enrollmentID", id).Msg("Error executing delete enrollment query")
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

type enrollmentTx struct {
	*StudentSubjectRepository
	teachers *TeacherSubjectRepository
}

func (t *enrollmentTx) FirstTeacherIDForSubject(ctx context.Context, subjectID int64) (int64, error) {
	return t.teachers.FirstTeacherIDForSubject(ctx, subjectID)
}

// WithStudentLock runs fn in a transaction holding a per-student advisory lock,
// so concurrent enrollments of the same student are serialized. The transaction
// commits only when fn returns nil.
func (r *StudentSubjectRepository) WithStudentLock(ctx context.Context, studentID int64, fn func(ctx context.Context, tx EnrollmentTx) error) error {
	return db.InTx(ctx, r.conn, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", studentID); err != nil {
			if errors.Is(err, context.DeadlineExceeded) || dberrors.IsSerializationFailure(err) {
				return apperrors.ErrConcurrentModification
			}
			logger.Error().Err(err).Int64("studentID", studentID).Msg("Error acquiring enrollment lock")
			return fmt.Errorf("error acquiring enrollment lock: %w", err)
		}

		return fn(ctx, &enrollmentTx{
			StudentSubjectRepository: NewStudentSubjectRepository(tx),
			teachers:                 NewTeacherSubjectRepository(tx),
		})
	})
}
