package user

import (
	"context"
	"database/sql"
	"errors"

	"marketstore-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, params CreateUserParams) (User, error)
	CreateSupplierAccount(ctx context.Context, params CreateUserParams, companyName, inn, companyPhone string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id uint) (User, error)
}

type CreateUserParams struct {
	Email    string
	Username string
	Password string
	Role     Role
	Phone    string
	Address  string
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const insertUserQuery = `
	INSERT INTO users (email, username, password, role, phone, address)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, email, username, password, role, phone, address, created_at
`

func scanUser(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.Password,
		&u.Role, &u.Phone, &u.Address, &u.CreatedAt,
	)
	return u, err
}

func (r *repository) Create(ctx context.Context, params CreateUserParams) (User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("email", params.Email),
	)

	u, err := scanUser(r.db.QueryRowContext(ctx, insertUserQuery,
		params.Email, params.Username, params.Password,
		params.Role, params.Phone, params.Address,
	))
	if err != nil {
		log.Error("db: failed to insert user", zap.Error(err))
		return User{}, mapUserInsertError(err)
	}

	return u, nil
}

// CreateSupplierAccount inserts the user and its supplier company record in
// one transaction so a half-registered supplier can never exist.
func (r *repository) CreateSupplierAccount(
	ctx context.Context,
	params CreateUserParams,
	companyName, inn, companyPhone string,
) (User, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateSupplierAccount"),
		zap.String("email", params.Email),
		zap.String("company_name", companyName),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return User{}, err
	}
	defer tx.Rollback()

	var u User
	err = tx.QueryRowContext(ctx, insertUserQuery,
		params.Email, params.Username, params.Password,
		params.Role, params.Phone, params.Address,
	).Scan(
		&u.ID, &u.Email, &u.Username, &u.Password,
		&u.Role, &u.Phone, &u.Address, &u.CreatedAt,
	)
	if err != nil {
		log.Error("db: failed to insert supplier user", zap.Error(err))
		return User{}, mapUserInsertError(err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO suppliers (company_name, inn, phone, email)
		VALUES ($1, $2, $3, $4)
	`, companyName, inn, companyPhone, params.Email)
	if err != nil {
		log.Error("db: failed to insert supplier company", zap.Error(err))
		return User{}, mapUserInsertError(err)
	}

	if err := tx.Commit(); err != nil {
		return User{}, err
	}

	log.Info("supplier account created", zap.Uint("user_id", u.ID))
	return u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `
		SELECT id, email, username, password, role, phone, address, created_at
		FROM users WHERE email = $1
	`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	return u, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `
		SELECT id, email, username, password, role, phone, address, created_at
		FROM users WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	return u, err
}

func mapUserInsertError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
		switch pqErr.Constraint {
		case "users_email_key":
			return ErrEmailExists
		case "suppliers_company_name_key":
			return ErrCompanyExists
		}
	}
	return err
}
