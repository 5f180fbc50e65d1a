package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"helpdesk/internal/domain/request"
	vo "helpdesk/internal/domain/request/valueobjects"
	"helpdesk/internal/domain/response"
	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/actor"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = conn.AutoMigrate(&models.RequestModel{}, &models.ResponseModel{}, &models.UserModel{})
	require.NoError(t, err)

	return conn
}

func createTestRequest(t *testing.T, userID uint, description string) *request.Request {
	req, err := request.NewRequest(userID, description, vo.PriorityMedium)
	require.NoError(t, err)
	return req
}

func TestRequestRepository_SaveAssignsSequentialNumbers(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewRequestRepository(conn)
	ctx := context.Background()

	first := createTestRequest(t, 42, "printer is on fire")
	require.NoError(t, repo.Save(ctx, first))
	assert.Equal(t, uint(1), first.Number())
	assert.NotZero(t, first.ID())

	second := createTestRequest(t, 42, "cannot log in")
	require.NoError(t, repo.Save(ctx, second))
	assert.Equal(t, uint(2), second.Number())
}

func TestRequestRepository_RoundTrip(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewRequestRepository(conn)
	ctx := context.Background()

	req := createTestRequest(t, 42, "printer is on fire")
	req.SetExtras(map[string]interface{}{"source": "phone", "attempts": float64(2)})
	require.NoError(t, repo.Save(ctx, req))

	found, err := repo.GetByID(ctx, req.ID())
	require.NoError(t, err)
	assert.Equal(t, req.Number(), found.Number())
	assert.Equal(t, "printer is on fire", found.Description())
	assert.True(t, found.Status().IsOpen())
	assert.Equal(t, "phone", found.Extras()["source"])

	byNumber, err := repo.GetByNumber(ctx, req.Number())
	require.NoError(t, err)
	assert.Equal(t, req.ID(), byNumber.ID())
}

func TestRequestRepository_UpdatePersistsStatusAndClosedAt(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewRequestRepository(conn)
	ctx := context.Background()

	req := createTestRequest(t, 42, "printer is on fire")
	require.NoError(t, repo.Save(ctx, req))

	require.NoError(t, req.ChangeStatus(vo.StatusInProgress))
	require.NoError(t, req.ChangeStatus(vo.StatusClosed))
	require.NoError(t, repo.Update(ctx, req))

	found, err := repo.GetByID(ctx, req.ID())
	require.NoError(t, err)
	assert.True(t, found.Status().IsClosed())
	require.NotNil(t, found.ClosedAt())

	// Reopening clears the closed timestamp.
	require.NoError(t, req.ChangeStatus(vo.StatusOpen))
	require.NoError(t, repo.Update(ctx, req))

	found, err = repo.GetByID(ctx, req.ID())
	require.NoError(t, err)
	assert.True(t, found.Status().IsOpen())
	assert.Nil(t, found.ClosedAt())
}

func TestRequestRepository_ListFilters(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewRequestRepository(conn)
	ctx := context.Background()

	a := createTestRequest(t, 42, "printer is on fire")
	require.NoError(t, repo.Save(ctx, a))
	b := createTestRequest(t, 43, "cannot log in")
	require.NoError(t, repo.Save(ctx, b))
	require.NoError(t, b.ChangeStatus(vo.StatusInProgress))
	require.NoError(t, repo.Update(ctx, b))

	t.Run("by owner", func(t *testing.T) {
		ownerID := uint(42)
		list, total, err := repo.List(ctx, request.Filter{OwnerID: &ownerID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, list, 1)
		assert.Equal(t, uint(42), list[0].UserID())
	})

	t.Run("by status", func(t *testing.T) {
		status := vo.StatusInProgress
		list, total, err := repo.List(ctx, request.Filter{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, list, 1)
		assert.Equal(t, b.ID(), list[0].ID())
	})

	t.Run("no closed tickets yields empty list", func(t *testing.T) {
		status := vo.StatusClosed
		list, total, err := repo.List(ctx, request.Filter{Status: &status})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, list)
	})

	t.Run("sort whitelist falls back on unknown field", func(t *testing.T) {
		list, _, err := repo.List(ctx, request.Filter{SortBy: "1; DROP TABLE requests"})
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})
}

func TestResponseRepository_RoundTrip(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewResponseRepository(conn)
	ctx := context.Background()

	resp, err := response.NewResponse(1, 5, "Please try restarting.")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, resp))
	assert.NotZero(t, resp.ID())

	found, err := repo.GetByID(ctx, resp.ID())
	require.NoError(t, err)
	assert.Equal(t, "Please try restarting.", found.Text())

	require.NoError(t, found.UpdateText("Restart fixed it."))
	require.NoError(t, repo.Update(ctx, found))

	found, err = repo.GetByID(ctx, resp.ID())
	require.NoError(t, err)
	assert.Equal(t, "Restart fixed it.", found.Text())
}

func TestResponseRepository_DeleteByRequestID(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewResponseRepository(conn)
	ctx := context.Background()

	for _, text := range []string{"first", "second"} {
		resp, err := response.NewResponse(1, 5, text)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, resp))
	}
	other, err := response.NewResponse(2, 5, "unrelated")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, other))

	require.NoError(t, repo.DeleteByRequestID(ctx, 1))

	remaining, err := repo.GetByRequestID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	kept, err := repo.GetByRequestID(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	// No responses for the request is not an error.
	assert.NoError(t, repo.DeleteByRequestID(ctx, 99))
}

func TestUserRepository_RoundTrip(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewUserRepository(conn)
	ctx := context.Background()

	email, err := uservo.NewEmail("ivan@example.com")
	require.NoError(t, err)
	u, err := user.NewUser("Ivan", "Petrov", email, "hashed-secret")
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, u))
	assert.NotZero(t, u.ID())

	found, err := repo.GetByEmail(ctx, "ivan@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID(), found.ID())
	assert.Equal(t, actor.RoleClient, found.Role())

	exists, err := repo.ExistsByEmail(ctx, "ivan@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, found.ChangeRole(actor.RoleSupport))
	require.NoError(t, repo.Update(ctx, found))

	found, err = repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, actor.RoleSupport, found.Role())
}

func TestUserRepository_DeleteMissingUser(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewUserRepository(conn)

	err := repo.Delete(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTransactionRollbackCascade(t *testing.T) {
	conn := setupTestDB(t)
	requestRepo := NewRequestRepository(conn)
	responseRepo := NewResponseRepository(conn)
	tm := db.NewTransactionManager(conn)
	ctx := context.Background()

	req := createTestRequest(t, 42, "printer is on fire")
	require.NoError(t, requestRepo.Save(ctx, req))
	resp, err := response.NewResponse(req.ID(), 5, "looking into it")
	require.NoError(t, err)
	require.NoError(t, responseRepo.Save(ctx, resp))

	err = tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := responseRepo.DeleteByRequestID(txCtx, req.ID()); err != nil {
			return err
		}
		// Deleting a nonexistent request fails and rolls back the cascade.
		return requestRepo.Delete(txCtx, 9999)
	})
	require.Error(t, err)

	kept, err := responseRepo.GetByRequestID(ctx, req.ID())
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}
