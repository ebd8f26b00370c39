package testutils

import (
	"path/filepath"
	"testing"

	"github.com/aditbhattarai/Adit-ko-website/db"

	"github.com/gin-gonic/gin"
)

// SetupTestDB opens an isolated SQLite store under the test's temp
// directory. Handlers take the store explicitly, so tests never share state.
func SetupTestDB(t *testing.T) (*db.Store, func()) {
	t.Helper()

	store, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Error opening the test database: %s", err)
	}

	cleanup := func() {
		store.Close()
	}

	return store, cleanup
}

func SetupTestRouter() *gin.Engine {
	r := gin.New()
	return r
}

func InitTestMain() {
	gin.SetMode(gin.TestMode)
}
