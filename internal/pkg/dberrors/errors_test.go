package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassification(t *testing.T) {
	unique := &pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: "students_document_number_key"}
	fk := &pgconn.PgError{Code: CodeForeignKeyViolation}
	serial := &pgconn.PgError{Code: CodeSerializationFailure}
	deadlock := &pgconn.PgError{Code: CodeDeadlockDetected}
	wrapped := fmt.Errorf("insert student: %w", unique)

	if !IsDuplicateConstraintError(wrapped, "students_document_number_key") {
		t.Error("wrapped unique violation should match its constraint")
	}
	if !IsDuplicateConstraintError(unique, "") {
		t.Error("empty constraint name should match any unique violation")
	}
	if IsDuplicateConstraintError(unique, "other_key") {
		t.Error("different constraint must not match")
	}
	if !IsForeignKeyViolation(fk) || IsForeignKeyViolation(unique) {
		t.Error("foreign key classification is wrong")
	}
	if !IsSerializationFailure(serial) || !IsSerializationFailure(deadlock) {
		t.Error("serialization failures not detected")
	}
	if IsForeignKeyViolation(errors.New("plain")) {
		t.Error("non-pg errors must not match")
	}
}
