package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/g-inventory/internal/domain"
	"github.com/jhoicas/g-inventory/internal/domain/entity"
	"github.com/jhoicas/g-inventory/internal/infrastructure/memory"
)

func TestStore_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository()

	p := &entity.Product{ID: "p1", Description: "Tornillo"}
	p.MarkCreated(time.Now())
	require.NoError(t, repo.Create(ctx, p))

	// la copia guardada no comparte memoria con el caller
	p.Description = "cambiado"
	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Tornillo", got.Description)

	got.Description = "Tuerca"
	require.NoError(t, repo.Update(ctx, got))
	got, _ = repo.GetByID(ctx, "p1")
	assert.Equal(t, "Tuerca", got.Description)

	require.NoError(t, repo.Delete(ctx, "p1"))
	got, err = repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.Delete(ctx, "p1"), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &entity.Product{ID: "p1"}), domain.ErrNotFound)
}

func TestUserRepo_UniqueUsername(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u1", Username: "ana", PermissionIDs: []string{"a"}}))
	err := repo.Create(ctx, &entity.User{ID: "u2", Username: "ana"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	u, err := repo.GetByUsername(ctx, "ana")
	require.NoError(t, err)
	require.NotNil(t, u)
	u.PermissionIDs[0] = "mutado"

	again, _ := repo.GetByID(ctx, "u1")
	assert.Equal(t, []string{"a"}, again.PermissionIDs)

	n, _ := repo.Count(ctx)
	assert.Equal(t, 1, n)
}

func TestMovements_ListByProduct(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductInputRepository()
	base := time.Now()
	for i, pid := range []string{"p1", "p2", "p1"} {
		in := &entity.ProductInput{ID: string(rune('a' + i)), ProductID: pid, Quantity: int64(i + 1)}
		in.MarkCreated(base.Add(time.Duration(i) * time.Second))
		require.NoError(t, repo.Create(ctx, in))
	}

	list, err := repo.ListByProduct(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "c", list[1].ID)
}

func TestPermissionDelete_QuitaDeUsuarios(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	require.NoError(t, repos.Permissions.Create(ctx, &entity.Permission{ID: "perm-a", Description: "ver"}))
	require.NoError(t, repos.Permissions.Create(ctx, &entity.Permission{ID: "perm-b", Description: "editar"}))
	require.NoError(t, repos.Users.Create(ctx, &entity.User{ID: "u1", Username: "ana", PermissionIDs: []string{"perm-a", "perm-b"}}))
	require.NoError(t, repos.Users.Create(ctx, &entity.User{ID: "u2", Username: "luis", PermissionIDs: []string{"perm-a"}}))

	require.NoError(t, repos.Permissions.Delete(ctx, "perm-a"))

	u1, _ := repos.Users.GetByID(ctx, "u1")
	assert.Equal(t, []string{"perm-b"}, u1.PermissionIDs)
	u2, _ := repos.Users.GetByID(ctx, "u2")
	assert.Empty(t, u2.PermissionIDs)

	// un permiso inexistente no toca a los usuarios
	assert.ErrorIs(t, repos.Permissions.Delete(ctx, "perm-a"), domain.ErrNotFound)
	u1, _ = repos.Users.GetByID(ctx, "u1")
	assert.Equal(t, []string{"perm-b"}, u1.PermissionIDs)
}
