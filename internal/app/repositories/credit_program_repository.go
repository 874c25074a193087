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

// CreditProgramRepository handles credit program database operations
type CreditProgramRepository struct {
	conn db.Querier
	sb   squirrel.StatementBuilderType
}

// NewCreditProgramRepository creates a new CreditProgramRepository
func NewCreditProgramRepository(conn db.Querier) *CreditProgramRepository {
	return &CreditProgramRepository{
		conn: conn,
		sb:   psql,
	}
}

// GetAll retrieves all credit programs
func (r *CreditProgramRepository) GetAll(ctx context.Context) ([]*models.CreditProgram, error) {
	sql, args, err := r.sb.Select("id", "name", "description").
		From("credit_programs").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all credit programs SQL")
		return nil, fmt.Errorf("failed to build get all credit programs query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all credit programs query")
		return nil, fmt.Errorf("error querying credit programs: %w", err)
	}
	defer rows.Close()

	programs := []*models.CreditProgram{}
	for rows.Next() {
		program := &models.CreditProgram{}
		if err := rows.Scan(&program.ID, &program.Name, &program.Description); err != nil {
			return nil, fmt.Errorf("error scanning credit program row: %w", err)
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating credit program rows: %w", err)
	}

	return programs, nil
}

// GetByID retrieves a credit program by ID
func (r *CreditProgramRepository) GetByID(ctx context.Context, id int64) (*models.CreditProgram, error) {
	sql, args, err := r.sb.Select("id", "name", "description").
		From("credit_programs").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get credit program query: %w", err)
	}

	program := &models.CreditProgram{}
	err = r.conn.QueryRow(ctx, sql, args...).Scan(&program.ID, &program.Name, &program.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCreditProgramNotFound
		}
		logger.Error().Err(err).Int64("creditProgramID", id).Msg("Error scanning credit program row")
		return nil, fmt.Errorf("error getting credit program by ID: %w", err)
	}

	return program, nil
}

// Create inserts a credit program and returns its ID
func (r *CreditProgramRepository) Create(ctx context.Context, program *models.CreditProgram) (int64, error) {
	sql, args, err := r.sb.Insert("credit_programs").
		Columns("name", "description").
		Values(program.Name, program.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create credit program query: %w", err)
	}

	var id int64
	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create credit program query")
		return 0, fmt.Errorf("error creating credit program: %w", err)
	}

	return id, nil
}

// Delete removes a credit program. Programs still referenced by students or subjects are kept.
func (r *CreditProgramRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("credit_programs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete credit program query: %w", err)
	}

	cmdTag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCreditProgramInUse
		}
		logger.Error().Err(err).Int64("creditProgramID", id).Msg("Error executing delete credit program query")
		return fmt.Errorf("error deleting credit program: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCreditProgramNotFound
	}

	return nil
}
