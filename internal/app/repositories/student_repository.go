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

const studentDocumentNumberConstraint = "students_document_number_key"

// StudentRepository handles student database operations
type StudentRepository struct {
	conn db.Querier
	sb   squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(conn db.Querier) *StudentRepository {
	return &StudentRepository{
		conn: conn,
		sb:   psql,
	}
}

// detailQuery selects students joined to their (optional) credit program
func (r *StudentRepository) detailQuery() squirrel.SelectBuilder {
	return r.sb.Select("s.id", "s.name", "s.document_number", "s.credit_program_id", "cp.name").
		From("students s").
		LeftJoin("credit_programs cp ON cp.id = s.credit_program_id")
}

func scanStudentDetail(row pgx.Row) (*models.StudentDetail, error) {
	detail := &models.StudentDetail{}
	err := row.Scan(&detail.ID, &detail.Name, &detail.DocumentNumber, &detail.CreditProgramID, &detail.CreditProgramName)
	return detail, err
}

// mapWriteError translates constraint violations raised by insert/update
func (r *StudentRepository) mapWriteError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, studentDocumentNumberConstraint):
		return apperrors.ErrDocumentNumberExists
	case dberrors.IsForeignKeyViolation(err):
		return apperrors.ErrCreditProgramRef
	case dberrors.IsSerializationFailure(err):
		return apperrors.ErrConcurrentModification
	}
	return nil
}

// GetAllDetails retrieves all students with their credit program name
func (r *StudentRepository) GetAllDetails(ctx context.Context) ([]*models.StudentDetail, error) {
	sql, args, err := r.detailQuery().OrderBy("s.id ASC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all students SQL")
		return nil, fmt.Errorf("failed to build get all students query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.StudentDetail{}
	for rows.Next() {
		detail, err := scanStudentDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// GetDetailByID retrieves one student with its credit program name
func (r *StudentRepository) GetDetailByID(ctx context.Context, id int64) (*models.StudentDetail, error) {
	sql, args, err := r.detailQuery().Where(squirrel.Eq{"s.id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	detail, err := scanStudentDetail(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return detail, nil
}

// Create inserts a student and returns its ID
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("name", "document_number", "credit_program_id").
		Values(student.Name, student.DocumentNumber, student.CreditProgramID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if mapped := r.mapWriteError(err); mapped != nil {
			return 0, mapped
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// Update replaces every column of an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"name":              student.Name,
			"document_number":   student.DocumentNumber,
			"credit_program_id": student.CreditProgramID,
		}).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		if mapped := r.mapWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// DeleteWithEnrollments removes the student's enrollments and then the student in
// one transaction. Nothing is deleted when the student does not exist.
func (r *StudentRepository) DeleteWithEnrollments(ctx context.Context, id int64) error {
	return db.InTx(ctx, r.conn, func(ctx context.Context, tx pgx.Tx) error {
		enrollSQL, enrollArgs, err := r.sb.Delete("student_subject").Where(squirrel.Eq{"student_id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete enrollments query: %w", err)
		}

		removed, err := tx.Exec(ctx, enrollSQL, enrollArgs...)
		if err != nil {
			logger.Error().Err(err).Int64("studentID", id).Msg("Error deleting student enrollments")
			return fmt.Errorf("error deleting student enrollments: %w", err)
		}

		studentSQL, studentArgs, err := r.sb.Delete("students").Where(squirrel.Eq{"id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete student query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, studentSQL, studentArgs...)
		if err != nil {
			if dberrors.IsSerializationFailure(err) {
				return apperrors.ErrConcurrentModification
			}
			logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
			return fmt.Errorf("error deleting student: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}

		logger.Debug().Int64("studentID", id).Int64("enrollmentsRemoved", removed.RowsAffected()).Msg("Student deleted")
		return nil
	})
}
