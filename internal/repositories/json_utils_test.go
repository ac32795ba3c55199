package repositories

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestIsDuplicateEntryError(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1-3' for key 'postulations.mission_freelance'"}
	if !isDuplicateEntryError(dup) {
		t.Error("expected 1062 to be treated as duplicate entry")
	}

	other := &mysql.MySQLError{Number: 1146, Message: "Table 'mira.nope' doesn't exist"}
	if isDuplicateEntryError(other) {
		t.Error("unrelated mysql error treated as duplicate")
	}

	if isDuplicateEntryError(errors.New("duplicate entry")) {
		t.Error("plain error treated as duplicate")
	}
}

func TestUnmarshalCompetencesTolerant(t *testing.T) {
	if got := unmarshalCompetences(`["React","Figma"]`); len(got) != 2 || got[0] != "React" {
		t.Errorf("unexpected competences %v", got)
	}
	if got := unmarshalCompetences(""); got == nil || len(got) != 0 {
		t.Errorf("empty column should yield empty slice, got %v", got)
	}
	if got := unmarshalCompetences("not json"); got == nil || len(got) != 0 {
		t.Errorf("bad column should yield empty slice, got %v", got)
	}
}
