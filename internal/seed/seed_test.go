package seed

import "testing"

func TestDefaultTeachersCoverEverySubject(t *testing.T) {
	if len(DefaultSubjects) != 2*len(DefaultTeachers) {
		t.Fatalf("each teacher takes two subjects: %d subjects for %d teachers", len(DefaultSubjects), len(DefaultTeachers))
	}

	seen := map[string]bool{}
	for _, name := range DefaultSubjects {
		if seen[name] {
			t.Fatalf("duplicate default subject %q", name)
		}
		seen[name] = true
	}
}
