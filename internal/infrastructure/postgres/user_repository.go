package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/g-inventory/internal/domain"
	"github.com/jhoicas/g-inventory/internal/domain/entity"
	"github.com/jhoicas/g-inventory/internal/domain/repository"
)

var (
	_ repository.UserRepository       = (*UserRepo)(nil)
	_ repository.PermissionRepository = (*PermissionRepo)(nil)
)

const userSelect = `
	SELECT u.id, u.name, u.role, u.username, u.password_hash, u.status,
		ARRAY(SELECT up.permission_id FROM user_permissions up WHERE up.user_id = u.id ORDER BY up.permission_id),
		u.created_at, u.modified_at
	FROM users u`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Los permisos se guardan en user_permissions dentro de la misma transacción.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Name, &u.Role, &u.Username, &u.PasswordHash, &u.Status,
		&u.PermissionIDs, &u.CreatedAt, &u.ModifiedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario con sus permisos.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	return withTx(ctx, r.q, func(tx pgx.Tx) error {
		query := `
			INSERT INTO users (id, name, role, username, password_hash, status, created_at, modified_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		if _, err := tx.Exec(ctx, query,
			u.ID, u.Name, u.Role, u.Username, u.PasswordHash, u.Status, u.CreatedAt, u.ModifiedAt,
		); err != nil {
			return writeError("insert user", err)
		}
		return replacePermissions(ctx, tx, u.ID, u.PermissionIDs)
	})
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return queryOne(ctx, r.q, scanUser, "get user", userSelect+` WHERE u.id = $1`, id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return queryOne(ctx, r.q, scanUser, "get user by username", userSelect+` WHERE u.username = $1`, username)
}

func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return queryAll(ctx, r.q, scanUser, "list users", userSelect+` ORDER BY u.created_at, u.id`)
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// Update reemplaza los datos del usuario y su lista de permisos.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	return withTx(ctx, r.q, func(tx pgx.Tx) error {
		query := `
			UPDATE users SET name = $2, role = $3, username = $4, password_hash = $5, status = $6, modified_at = $7
			WHERE id = $1`
		if err := execOne(ctx, tx, "update user", query,
			u.ID, u.Name, u.Role, u.Username, u.PasswordHash, u.Status, u.ModifiedAt,
		); err != nil {
			return err
		}
		return replacePermissions(ctx, tx, u.ID, u.PermissionIDs)
	})
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete user", `DELETE FROM users WHERE id = $1`, id)
}

func replacePermissions(ctx context.Context, tx pgx.Tx, userID string, permissionIDs []string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM user_permissions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear user permissions: %w", err)
	}
	if len(permissionIDs) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, pid := range permissionIDs {
		batch.Queue(`INSERT INTO user_permissions (user_id, permission_id) VALUES ($1, $2)`, userID, pid)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("permissionIds", "exists")
		}
		return fmt.Errorf("insert user permissions: %w", err)
	}
	return nil
}

// PermissionRepo permisos sobre PostgreSQL.
type PermissionRepo struct {
	q Querier
}

func NewPermissionRepository(q Querier) *PermissionRepo {
	return &PermissionRepo{q: q}
}

const permissionColumns = `id, description, created_at, modified_at`

func scanPermission(row pgx.Row) (*entity.Permission, error) {
	var p entity.Permission
	if err := row.Scan(&p.ID, &p.Description, &p.CreatedAt, &p.ModifiedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PermissionRepo) Create(ctx context.Context, p *entity.Permission) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO permissions (`+permissionColumns+`) VALUES ($1, $2, $3, $4)`,
		p.ID, p.Description, p.CreatedAt, p.ModifiedAt)
	if err != nil {
		return writeError("insert permission", err)
	}
	return nil
}

func (r *PermissionRepo) GetByID(ctx context.Context, id string) (*entity.Permission, error) {
	return queryOne(ctx, r.q, scanPermission, "get permission",
		`SELECT `+permissionColumns+` FROM permissions WHERE id = $1`, id)
}

func (r *PermissionRepo) GetByDescription(ctx context.Context, description string) (*entity.Permission, error) {
	return queryOne(ctx, r.q, scanPermission, "get permission by description",
		`SELECT `+permissionColumns+` FROM permissions WHERE description = $1`, description)
}

func (r *PermissionRepo) List(ctx context.Context) ([]*entity.Permission, error) {
	return queryAll(ctx, r.q, scanPermission, "list permissions",
		`SELECT `+permissionColumns+` FROM permissions ORDER BY created_at, id`)
}

func (r *PermissionRepo) ListByIDs(ctx context.Context, ids []string) ([]*entity.Permission, error) {
	if len(ids) == 0 {
		return []*entity.Permission{}, nil
	}
	return queryAll(ctx, r.q, scanPermission, "list permissions by ids",
		`SELECT `+permissionColumns+` FROM permissions WHERE id = ANY($1) ORDER BY created_at, id`, ids)
}

func (r *PermissionRepo) Update(ctx context.Context, p *entity.Permission) error {
	return execOne(ctx, r.q, "update permission",
		`UPDATE permissions SET description = $2, modified_at = $3 WHERE id = $1`,
		p.ID, p.Description, p.ModifiedAt)
}

func (r *PermissionRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete permission", `DELETE FROM permissions WHERE id = $1`, id)
}
