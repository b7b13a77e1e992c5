// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/yoruba-science-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

const table = "users"

// publicColumns never include the password hash.
var publicColumns = []string{
	"id", "name", "email", "role", "yoruba_proficiency",
	"is_active", "last_login_at", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key. PasswordHash is left empty.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := postgres.Builder.
		Select(publicColumns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	u, err := r.getOne(ctx, query, false)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user together with its password hash.
// The lookup is case-insensitive.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = normalizeEmail(email)
	query := postgres.Builder.
		Select(append(publicColumns, "password_hash")...).
		From(table).
		Where(squirrel.Eq{"email": email})

	u, err := r.getOne(ctx, query, true)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// List returns every user, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	query := postgres.Builder.
		Select(publicColumns...).
		From(table).
		OrderBy("created_at DESC", "id DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		return scanUser(row, false)
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetRefsByIDs returns the public projection of the given users (batch for DataLoader).
// Unknown IDs are silently skipped.
func (r *Repo) GetRefsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.UserRef, error) {
	if len(ids) == 0 {
		return []domain.UserRef{}, nil
	}

	sql, args, err := postgres.Builder.
		Select("id", "name", "email").
		From(table).
		Where("id = ANY(?::uuid[])", ids).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user refs: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("get user refs: %w", err)
	}

	refs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.UserRef, error) {
		var ref domain.UserRef
		err := row.Scan(&ref.ID, &ref.Name, &ref.Email)
		return ref, err
	})
	if err != nil {
		return nil, fmt.Errorf("get user refs: %w", err)
	}
	return refs, nil
}

// Count returns the number of users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// ExistsWithRole reports whether at least one user has the given role.
func (r *Repo) ExistsWithRole(ctx context.Context, role domain.UserRole) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE role = $1)`, role.String()).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check role %s: %w", role, err)
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted domain.User.
// Returns domain.ErrAlreadyExists if the email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := postgres.Builder.
		Insert(table).
		Columns("id", "name", "email", "password_hash", "role", "yoruba_proficiency", "is_active").
		Values(u.ID, u.Name, normalizeEmail(u.Email), u.PasswordHash, u.Role.String(), proficiencyArg(u.Proficiency), u.IsActive).
		Suffix("RETURNING " + strings.Join(publicColumns, ", "))

	created, err := r.getOne(ctx, query, false)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return created, nil
}

// UpdateProfile changes the name and/or proficiency of a user. Nil fields are left unchanged.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, name *string, proficiency *domain.Proficiency) (*domain.User, error) {
	update := postgres.Builder.Update(table).Where(squirrel.Eq{"id": id})
	if name != nil {
		update = update.Set("name", *name)
	}
	if proficiency != nil {
		update = update.Set("yoruba_proficiency", proficiencyArg(proficiency))
	}
	return r.update(ctx, id, update, name == nil && proficiency == nil)
}

// UpdateAccess changes the role and/or active flag of a user. Nil fields are left unchanged.
func (r *Repo) UpdateAccess(ctx context.Context, id uuid.UUID, role *domain.UserRole, isActive *bool) (*domain.User, error) {
	update := postgres.Builder.Update(table).Where(squirrel.Eq{"id": id})
	if role != nil {
		update = update.Set("role", role.String())
	}
	if isActive != nil {
		update = update.Set("is_active", *isActive)
	}
	return r.update(ctx, id, update, role == nil && isActive == nil)
}

// SetRoleByEmail changes the role of the user with the given email.
func (r *Repo) SetRoleByEmail(ctx context.Context, email string, role domain.UserRole) (*domain.User, error) {
	email = normalizeEmail(email)
	query := postgres.Builder.
		Update(table).
		Set("role", role.String()).
		Where(squirrel.Eq{"email": email}).
		Suffix("RETURNING " + strings.Join(publicColumns, ", "))

	u, err := r.getOne(ctx, query, false)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// TouchLastLogin records at as the user's last successful sign-in.
func (r *Repo) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).
		Exec(ctx, `UPDATE users SET last_login_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) update(ctx context.Context, id uuid.UUID, update squirrel.UpdateBuilder, noop bool) (*domain.User, error) {
	if noop {
		return r.GetByID(ctx, id)
	}

	u, err := r.getOne(ctx, update.Suffix("RETURNING "+strings.Join(publicColumns, ", ")), false)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer, withPassword bool) (*domain.User, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...), withPassword)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func scanUser(row pgx.Row, withPassword bool) (domain.User, error) {
	var (
		u           domain.User
		role        string
		proficiency *string
	)
	dest := []any{
		&u.ID, &u.Name, &u.Email, &role, &proficiency,
		&u.IsActive, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
	}
	if withPassword {
		dest = append(dest, &u.PasswordHash)
	}

	if err := row.Scan(dest...); err != nil {
		return domain.User{}, err
	}

	u.Role = domain.UserRole(role)
	if proficiency != nil {
		p := domain.Proficiency(*proficiency)
		u.Proficiency = &p
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// proficiencyArg maps a nil or empty proficiency to NULL.
func proficiencyArg(p *domain.Proficiency) any {
	if p == nil || *p == "" {
		return nil
	}
	return p.String()
}
