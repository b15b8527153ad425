package user

import (
	"context"
	"fmt"

	"marketstore-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, params RegisterParams) (string, User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	GetByID(ctx context.Context, id uint) (User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (string, User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
		zap.String("email", params.Email),
		zap.String("role", string(params.Role)),
	)

	if err := validateRegistration(params); err != nil {
		log.Warn("registration validation failed", zap.Error(err))
		return "", User{}, err
	}

	hashed, err := HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	create := CreateUserParams{
		Email:    params.Email,
		Password: hashed,
		Role:     params.Role,
		Address:  params.Address,
	}

	var u User
	switch params.Role {
	case RoleSupplier:
		// Suppliers sign in under the company name; their profile phone is
		// the company phone.
		create.Username = params.CompanyName
		create.Phone = params.CompanyPhone
		u, err = s.repo.CreateSupplierAccount(ctx, create, params.CompanyName, params.INN, params.CompanyPhone)
	default:
		create.Username = params.Username
		create.Phone = params.Phone
		u, err = s.repo.Create(ctx, create)
	}
	if err != nil {
		log.Error("failed to create user", zap.Error(err))
		return "", User{}, err
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", fmt.Sprint(u.ID)), zap.Error(err))
		return "", User{}, err
	}

	log.Info("register completed", zap.Uint("user_id", u.ID))
	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Info("login failed: email not found")
		return "", User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Info("login failed: password mismatch", zap.Uint("user_id", u.ID))
		return "", User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	return token, u, err
}

func (s *service) GetByID(ctx context.Context, id uint) (User, error) {
	return s.repo.FindByID(ctx, id)
}

func validateRegistration(params RegisterParams) error {
	if params.Email == "" {
		return &FieldError{Field: "email", Message: "email is required"}
	}
	if params.Password == "" {
		return &FieldError{Field: "password", Message: "password is required"}
	}

	switch params.Role {
	case RoleCustomer:
		if params.Username == "" {
			return &FieldError{Field: "username", Message: "name is required for a customer"}
		}
		if params.Phone == "" {
			return &FieldError{Field: "phone", Message: "phone is required"}
		}
		if params.Address == "" {
			return &FieldError{Field: "address", Message: "address is required"}
		}
	case RoleSupplier:
		if params.CompanyName == "" {
			return &FieldError{Field: "company_name", Message: "company name is required"}
		}
		if params.INN == "" {
			return &FieldError{Field: "inn", Message: "tax number is required"}
		}
		if params.CompanyPhone == "" {
			return &FieldError{Field: "company_phone", Message: "company phone is required"}
		}
	default:
		return &FieldError{Field: "role", Message: "role must be customer or supplier"}
	}

	return nil
}
