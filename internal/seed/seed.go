package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/enrollment/internal/app/models"
	appRepos "github.com/yigit/enrollment/internal/app/repositories"
	"github.com/yigit/enrollment/internal/db"
	"github.com/yigit/enrollment/internal/pkg/helpers"
)

// DefaultSubjects are created in the default credit program
var DefaultSubjects = []string{
	"Calculus I",
	"Linear Algebra",
	"Physics I",
	"Programming Fundamentals",
	"Data Structures",
	"Databases",
	"Operating Systems",
	"Computer Networks",
	"Software Engineering",
	"Discrete Mathematics",
}

// DefaultTeachers each teach two consecutive DefaultSubjects
var DefaultTeachers = []string{
	"Laura Ortiz",
	"Carlos Ramirez",
	"Marta Herrera",
	"Jorge Castillo",
	"Sofia Vargas",
}

// Transactor runs work inside a database transaction; *db.PostgresDB implements it
type Transactor interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// CreateDefaultData creates a credit program with its subjects and teachers when the
// store has no credit programs yet. Everything is created in one transaction.
func CreateDefaultData(ctx context.Context, database Transactor, lgr zerolog.Logger) error {
	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repos := appRepos.NewRepositories(tx)

		programs, err := repos.CreditProgramRepository.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("checking existing credit programs: %w", err)
		}
		if len(programs) > 0 {
			lgr.Info().Int("creditPrograms", len(programs)).Msg("Default data already present, skipping seed")
			return nil
		}

		lgr.Info().Msg("Creating default data (credit program, subjects, teachers)...")

		programID, err := repos.CreditProgramRepository.Create(ctx, &appModels.CreditProgram{
			Name:        "Systems Engineering",
			Description: helpers.StringPtr("Default credit program"),
		})
		if err != nil {
			return fmt.Errorf("creating default credit program: %w", err)
		}

		subjectIDs := make([]int64, 0, len(DefaultSubjects))
		for _, name := range DefaultSubjects {
			id, err := repos.SubjectRepository.Create(ctx, &appModels.Subject{
				Name:            name,
				Credits:         appModels.DefaultSubjectCredits,
				CreditProgramID: helpers.Int64Ptr(programID),
			})
			if err != nil {
				return fmt.Errorf("creating subject %q: %w", name, err)
			}
			subjectIDs = append(subjectIDs, id)
		}

		for i, name := range DefaultTeachers {
			teacherID, err := repos.TeacherRepository.Create(ctx, &appModels.Teacher{Name: name})
			if err != nil {
				return fmt.Errorf("creating teacher %q: %w", name, err)
			}

			for _, subjectID := range subjectIDs[2*i : 2*i+2] {
				_, err := repos.TeacherSubjectRepository.Create(ctx, &appModels.TeacherSubject{TeacherID: teacherID, SubjectID: subjectID})
				if err != nil {
					return fmt.Errorf("assigning teacher %q: %w", name, err)
				}
			}
		}

		lgr.Info().
			Int("subjects", len(subjectIDs)).
			Int("teachers", len(DefaultTeachers)).
			Msg("Default data created")
		return nil
	})
}
