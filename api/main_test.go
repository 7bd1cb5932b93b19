package api

import (
	"os"
	"testing"
	"time"

	db "github.com/Drolfothesgnir/m4tags/db/sqlc"
	"github.com/Drolfothesgnir/m4tags/tmpstore"
	"github.com/Drolfothesgnir/m4tags/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var testConfig = util.Config{
	HTTPServerAddress: "http://localhost:8080",
	AllowedOrigins:    []string{"*"},
	ScanCacheTTL:      time.Minute,
	MaxUploadSize:     64,
}

func newTestService(t *testing.T, store db.Store, cache tmpstore.Store) *Service {
	service, err := NewService(testConfig, store, cache)
	require.NoError(t, err)
	return service
}
