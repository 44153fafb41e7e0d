package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestUserRepository_GetByID_SQL(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "wallet_address", "name"}).
			AddRow(1, "0xAbC", "alice")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2`)).
			WithArgs(1, 1).
			WillReturnRows(rows)

		user, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Name)
	})

	t.Run("Not Found returns nil without error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT $2`)).
			WithArgs(99, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		user, err := repo.GetByID(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Counters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{WalletAddress: "0x1111111111111111111111111111111111111111", Name: "bob"}
	require.NoError(t, repo.Create(ctx, user))

	reload := func() *models.User {
		u, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, u)
		return u
	}

	t.Run("Increment", func(t *testing.T) {
		require.NoError(t, repo.AdjustFollowerCount(ctx, user.ID, 1))
		require.NoError(t, repo.AdjustFollowerCount(ctx, user.ID, 1))
		require.NoError(t, repo.AdjustFollowingCount(ctx, user.ID, 1))

		u := reload()
		assert.Equal(t, int64(2), u.FollowerCount)
		assert.Equal(t, int64(1), u.FollowingCount)
	})

	t.Run("Decrement clamps at zero", func(t *testing.T) {
		require.NoError(t, repo.AdjustFollowerCount(ctx, user.ID, -5))
		require.NoError(t, repo.AdjustFollowingCount(ctx, user.ID, -5))

		u := reload()
		assert.Equal(t, int64(0), u.FollowerCount)
		assert.Equal(t, int64(0), u.FollowingCount)
	})

	t.Run("Unknown user is NotFound", func(t *testing.T) {
		err := repo.AdjustFollowerCount(ctx, 9999, 1)
		assert.True(t, models.IsCode(err, models.CodeNotFound))
	})
}

func TestUserRepository_GetByWallet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{WalletAddress: "0x2222222222222222222222222222222222222222", Name: "carol"}
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.GetByWallet(ctx, user.WalletAddress)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	missing, err := repo.GetByWallet(ctx, "0x3333333333333333333333333333333333333333")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
