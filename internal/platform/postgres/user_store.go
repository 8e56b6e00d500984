package postgres

import (
	"context"
	"log/slog"

	"github.com/lmeyers/users-api/internal/domain"
	"github.com/lmeyers/users-api/internal/platform/logger"
	"github.com/lmeyers/users-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface using a
// PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, the default logger is used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore
var _ store.UserStore = (*PostgresUserStore)(nil)

// List implements store.UserStore.List.
// It returns every user ordered by ID. The result is an empty slice,
// never nil, when the table is empty.
func (s *PostgresUserStore) List(ctx context.Context) ([]domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, email
		FROM users
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		log.Error("failed while iterating user rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("users listed", slog.Int("count", len(users)))
	return users, nil
}

// GetByID implements store.UserStore.GetByID.
// Returns store.ErrUserNotFound if no user has the given ID.
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, email
		FROM users
		WHERE id = $1
	`

	var u domain.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if mapped := MapError(err); store.IsNotFoundError(mapped) {
			log.Debug("user not found", slog.Int64("user_id", id))
			return nil, mapped
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, MapError(err)
	}

	return &u, nil
}

// Create implements store.UserStore.Create.
// The ID of the returned user is assigned by the database.
// Returns store.ErrEmailExists if the email is already registered.
func (s *PostgresUserStore) Create(ctx context.Context, name, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	candidate := domain.User{Name: name, Email: email}
	if err := candidate.Validate(); err != nil {
		log.Warn("user validation failed during create", slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING id, name, email
	`

	var u domain.User
	err := s.db.QueryRowContext(ctx, query, name, email).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate email on user creation", slog.String("email", email))
			return nil, MapError(err)
		}
		log.Error("failed to create user", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Info("user created", slog.Int64("user_id", u.ID))
	return &u, nil
}

// Update implements store.UserStore.Update.
// Returns store.ErrUserNotFound if the user does not exist and
// store.ErrEmailExists if the new email belongs to another user.
func (s *PostgresUserStore) Update(ctx context.Context, id int64, name, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	candidate := domain.User{ID: id, Name: name, Email: email}
	if err := candidate.Validate(); err != nil {
		log.Warn("user validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, err
	}

	query := `
		UPDATE users
		SET name = $2, email = $3
		WHERE id = $1
		RETURNING id, name, email
	`

	var u domain.User
	err := s.db.QueryRowContext(ctx, query, id, name, email).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		mapped := MapError(err)
		switch {
		case store.IsNotFoundError(mapped):
			log.Debug("user not found on update", slog.Int64("user_id", id))
		case store.IsDuplicateError(mapped):
			log.Warn("duplicate email on user update",
				slog.Int64("user_id", id),
				slog.String("email", email))
		default:
			log.Error("failed to update user",
				slog.String("error", err.Error()),
				slog.Int64("user_id", id))
		}
		return nil, mapped
	}

	log.Info("user updated", slog.Int64("user_id", u.ID))
	return &u, nil
}

// Delete implements store.UserStore.Delete.
// Zero affected rows is reported as store.ErrUserNotFound, so deleting
// the same ID twice fails the second time.
func (s *PostgresUserStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM users
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result); err != nil {
		log.Debug("user not found on delete", slog.Int64("user_id", id))
		return err
	}

	log.Info("user deleted", slog.Int64("user_id", id))
	return nil
}
