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

// TeacherSubjectRepository handles teacher assignment database operations
type TeacherSubjectRepository struct {
	conn db.Querier
	sb   squirrel.StatementBuilderType
}

// NewTeacherSubjectRepository creates a new TeacherSubjectRepository
func NewTeacherSubjectRepository(conn db.Querier) *TeacherSubjectRepository {
	return &TeacherSubjectRepository{
		conn: conn,
		sb:   psql,
	}
}

// GetAllDetails retrieves all assignments with teacher and subject names
func (r *TeacherSubjectRepository) GetAllDetails(ctx context.Context) ([]*models.TeacherSubjectDetail, error) {
	sql, args, err := r.sb.Select("ts.id", "ts.teacher_id", "ts.subject_id", "t.name", "s.name").
		From("teacher_subject ts").
		Join("teachers t ON t.id = ts.teacher_id").
		Join("subjects s ON s.id = ts.subject_id").
		OrderBy("ts.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher assignments query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get teacher assignments query")
		return nil, fmt.Errorf("error querying teacher assignments: %w", err)
	}
	defer rows.Close()

	assignments := []*models.TeacherSubjectDetail{}
	for rows.Next() {
		a := &models.TeacherSubjectDetail{}
		if err := rows.Scan(&a.ID, &a.TeacherID, &a.SubjectID, &a.TeacherName, &a.SubjectName); err != nil {
			return nil, fmt.Errorf("error scanning teacher assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teacher assignment rows: %w", err)
	}

	return assignments, nil
}

// FirstTeacherIDForSubject returns the teacher of the subject's oldest assignment.
// A subject may have several teachers; the lowest assignment id wins.
func (r *TeacherSubjectRepository) FirstTeacherIDForSubject(ctx context.Context, subjectID int64) (int64, error) {
	sql, args, err := r.sb.Select("teacher_id").
		From("teacher_subject").
		Where(squirrel.Eq{"subject_id": subjectID}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build first teacher query: %w", err)
	}

	var teacherID int64
	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&teacherID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrTeacherAssignmentNotFound
		}
		logger.Error().Err(err).Int64("subjectID", subjectID).Msg("Error querying first teacher of subject")
		return 0, fmt.Errorf("error querying first teacher of subject: %w", err)
	}

	return teacherID, nil
}

// Create inserts an assignment and returns its ID
func (r *TeacherSubjectRepository) Create(ctx context.Context, assignment *models.TeacherSubject) (int64, error) {
	sql, args, err := r.sb.Insert("teacher_subject").
		Columns("teacher_id", "subject_id").
		Values(assignment.TeacherID, assignment.SubjectID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create teacher assignment query: %w", err)
	}

	var id int64
	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "teacher_subject_teacher_subject_key"):
			return 0, apperrors.ErrTeacherAssignmentExists
		case dberrors.IsForeignKeyViolation(err):
			return 0, apperrors.ErrTeacherAssignmentRef
		}
		logger.Error().Err(err).Msg("Error executing create teacher assignment query")
		return 0, fmt.Errorf("error creating teacher assignment: %w", err)
	}

	return id, nil
}

// Delete removes an assignment by ID
func (r *TeacherSubjectRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("teacher_subject").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete teacher assignment query: %w", err)
	}

	cmdTag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("teacherSubjectID", id).Msg("Error executing delete teacher assignment query")
		return fmt.Errorf("error deleting teacher assignment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherAssignmentNotFound
	}

	return nil
}
