package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/yigit/enrollment/internal/db"
)

// psql builds PostgreSQL ($n) placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	CreditProgramRepository  *CreditProgramRepository
	StudentRepository        *StudentRepository
	SubjectRepository        *SubjectRepository
	TeacherRepository        *TeacherRepository
	StudentSubjectRepository *StudentSubjectRepository
	TeacherSubjectRepository *TeacherSubjectRepository
}

// NewRepositories initializes all repositories on conn (a pool or a transaction)
func NewRepositories(conn db.Querier) *Repositories {
	return &Repositories{
		CreditProgramRepository:  NewCreditProgramRepository(conn),
		StudentRepository:        NewStudentRepository(conn),
		SubjectRepository:        NewSubjectRepository(conn),
		TeacherRepository:        NewTeacherRepository(conn),
		StudentSubjectRepository: NewStudentSubjectRepository(conn),
		TeacherSubjectRepository: NewTeacherSubjectRepository(conn),
	}
}
