package repo_test

import (
	"os"
	"testing"

	"github.com/pkordes/workout-map/testutil"
)

// Without TEST_DATABASE_URL only the in-memory repo tests run.
func TestMain(m *testing.M) {
	os.Exit(testutil.MigrateMain(m))
}
