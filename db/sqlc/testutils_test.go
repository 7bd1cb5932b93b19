package db

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func createTestScan(t *testing.T, store Store) Scan {
	t.Helper()

	id := uuid.New()
	scan, err := store.CreateScan(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, id, scan.ID)
	require.NotZero(t, scan.CreatedAt)

	return scan
}

// randomPath returns a unique file path, so tests don't step on each other.
func randomPath() string {
	return fmt.Sprintf("/tmp/m4tags-test/%d/%s.m4", rand.Int64(), uuid.NewString())
}

// randomName returns a macro name unlikely to exist in the database already.
func randomName() string {
	return fmt.Sprintf("test_macro_%d", rand.Int64())
}
