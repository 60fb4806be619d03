package mart

import (
	"strings"
	"testing"

	"github.com/premdata/fpl-warehouse/internal/config"
)

func testStore() config.Store {
	return config.Store{
		Host:     "mart.internal",
		Port:     "3306",
		Name:     "mart",
		User:     "replica",
		Password: "secret",
	}
}

func TestBuildInsertQuery_SingleRow(t *testing.T) {
	t.Parallel()

	got := buildInsertQuery("FctTeamHistory", []string{"team_id", "team_name"}, 1)
	want := "INSERT INTO `FctTeamHistory` (`team_id`, `team_name`) VALUES (?, ?)"
	if got != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", got, want)
	}
}

func TestBuildInsertQuery_MultiRow(t *testing.T) {
	t.Parallel()

	got := buildInsertQuery("FctTeamHistory", []string{"team_id", "points"}, 3)
	want := "INSERT INTO `FctTeamHistory` (`team_id`, `points`) VALUES (?, ?), (?, ?), (?, ?)"
	if got != want {
		t.Fatalf("unexpected query:\n got=%s\nwant=%s", got, want)
	}
}

func TestBuildInsertQuery_PlaceholderCountMatchesArgs(t *testing.T) {
	t.Parallel()

	columns := []string{"a", "b", "c", "d", "e"}
	const rows = 117

	query := buildInsertQuery("wide", columns, rows)
	if got, want := strings.Count(query, "?"), rows*len(columns); got != want {
		t.Fatalf("placeholder count mismatch: got=%d want=%d", got, want)
	}
}

func TestDSN(t *testing.T) {
	t.Parallel()

	got := DSN(testStore())
	want := "replica:secret@tcp(mart.internal:3306)/mart?parseTime=true&loc=UTC"
	if got != want {
		t.Fatalf("unexpected dsn: got=%s want=%s", got, want)
	}
}
