package users

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/feastkeeper/internal/common"
	"github.com/dmitrijs2005/feastkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.GetUser(ctx, "alice")
	require.ErrorIs(t, err, common.ErrorNotFound)

	u := &models.User{UserName: "alice", Email: "a@x.com", PasswordHash: "h"}
	require.NoError(t, repo.InsertUser(ctx, u))
	assert.NotEmpty(t, u.ID)

	require.ErrorIs(t, repo.InsertUser(ctx, &models.User{UserName: "alice"}), common.ErrorConflict)

	got, err := repo.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, *u, *got)

	got.Email = "mutated"
	again, err := repo.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", again.Email, "stored record must not alias returned copies")

	require.NoError(t, repo.DeleteUser(ctx, "alice"))
	require.ErrorIs(t, repo.DeleteUser(ctx, "alice"), common.ErrorNotFound)
	_, err = repo.GetUser(ctx, "alice")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_ConcurrentInsertSameName(t *testing.T) {
	repo := NewMemoryRepository()

	var ok, conflicts atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.InsertUser(context.Background(), &models.User{UserName: "alice", Email: fmt.Sprintf("%d@x.com", i)})
			switch err {
			case nil:
				ok.Add(1)
			case common.ErrorConflict:
				conflicts.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), ok.Load())
	assert.Equal(t, int32(15), conflicts.Load())
}
