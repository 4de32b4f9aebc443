package tokenstore

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbmodels "hiring-flow-backend/models/db"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=10000", uuid.NewString())
	DB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, DB.AutoMigrate(&dbmodels.AuthToken{}))
	return DB
}

func seedToken(t *testing.T, store Provider, expiresAt time.Time) string {
	t.Helper()
	token := uuid.NewString()
	_, err := store.Create(dbmodels.AuthToken{
		Token:       token,
		CandidateID: "cand-1",
		Kind:        "verification",
		ExpiresAt:   expiresAt,
	})
	require.NoError(t, err)
	return token
}

func TestConsume(t *testing.T) {
	t.Run(`valid token is consumed once`, func(t *testing.T) {
		store := NewInstance(testDB(t))
		token := seedToken(t, store, time.Now().Add(time.Hour))

		consumed, err := store.Consume(token, time.Now())
		require.NoError(t, err)
		require.True(t, consumed)

		rec, err := store.GetByToken(token)
		require.NoError(t, err)
		require.NotNil(t, rec.UsedAt)
	})

	t.Run(`second consume fails`, func(t *testing.T) {
		store := NewInstance(testDB(t))
		token := seedToken(t, store, time.Now().Add(time.Hour))

		consumed, err := store.Consume(token, time.Now())
		require.NoError(t, err)
		require.True(t, consumed)

		consumed, err = store.Consume(token, time.Now())
		require.NoError(t, err)
		require.False(t, consumed)
	})

	t.Run(`expired token is not consumed`, func(t *testing.T) {
		store := NewInstance(testDB(t))
		token := seedToken(t, store, time.Now().Add(-time.Minute))

		consumed, err := store.Consume(token, time.Now())
		require.NoError(t, err)
		require.False(t, consumed)

		rec, err := store.GetByToken(token)
		require.NoError(t, err)
		require.Nil(t, rec.UsedAt)
	})

	t.Run(`unknown token is not consumed`, func(t *testing.T) {
		store := NewInstance(testDB(t))
		consumed, err := store.Consume("no-such-token", time.Now())
		require.NoError(t, err)
		require.False(t, consumed)
	})

	t.Run(`concurrent consume succeeds exactly once`, func(t *testing.T) {
		store := NewInstance(testDB(t))
		token := seedToken(t, store, time.Now().Add(time.Hour))

		const attempts = 5
		results := make(chan bool, attempts)
		errs := make(chan error, attempts)
		var wg sync.WaitGroup
		for n := 0; n < attempts; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				consumed, err := store.Consume(token, time.Now())
				results <- consumed
				errs <- err
			}()
		}
		wg.Wait()
		close(results)
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}
		succeeded := 0
		for consumed := range results {
			if consumed {
				succeeded++
			}
		}
		require.Equal(t, 1, succeeded)
	})
}

func TestGetByToken(t *testing.T) {
	t.Run(`missing token returns nil without error`, func(t *testing.T) {
		store := NewInstance(testDB(t))
		rec, err := store.GetByToken("missing")
		require.NoError(t, err)
		require.Nil(t, rec)
	})
}

func TestListByCandidate(t *testing.T) {
	t.Run(`returns only the candidate's tokens`, func(t *testing.T) {
		store := NewInstance(testDB(t))
		seedToken(t, store, time.Now().Add(time.Hour))
		seedToken(t, store, time.Now().Add(time.Hour))
		_, err := store.Create(dbmodels.AuthToken{
			Token:       uuid.NewString(),
			CandidateID: "cand-2",
			Kind:        "approver1",
			ExpiresAt:   time.Now().Add(time.Hour),
		})
		require.NoError(t, err)

		list, err := store.ListByCandidate("cand-1")
		require.NoError(t, err)
		require.Len(t, list, 2)
	})
}
