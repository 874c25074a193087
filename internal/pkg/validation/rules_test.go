package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/yigit/enrollment/internal/pkg/apperrors"
)

func TestName(t *testing.T) {
	if err := Name("name", "Ada Lovelace"); err != nil {
		t.Fatalf("valid name rejected: %v", err)
	}

	for _, bad := range []string{"", "   ", strings.Repeat("x", NameMaxLength+1)} {
		err := Name("name", bad)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("Name(%q) = %v, want validation failure", bad, err)
		}
	}
}

func TestNameCountsCharactersNotBytes(t *testing.T) {
	if err := Name("name", strings.Repeat("ñ", NameMaxLength)); err != nil {
		t.Errorf("multi-byte name at limit rejected: %v", err)
	}
}

func TestIDs(t *testing.T) {
	if err := PositiveID("studentId", 0); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("zero id accepted: %v", err)
	}
	if err := OptionalPositiveID("creditProgramId", nil); err != nil {
		t.Errorf("nil optional id rejected: %v", err)
	}
	neg := int64(-1)
	if err := OptionalPositiveID("creditProgramId", &neg); err == nil {
		t.Error("negative optional id accepted")
	}
}
