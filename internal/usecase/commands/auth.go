package commands

import (
	"context"

	"rentigo/internal/domain/user"
	"rentigo/internal/infra"
	"rentigo/internal/pkg/errs"
	"rentigo/internal/pkg/jwt"
	"rentigo/internal/pkg/password"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrEmailAlreadyRegistered = errs.New("email is already registered")
	ErrInvalidCredentials     = errs.New("invalid email or password")
	ErrAccountDisabled        = errs.New("account is disabled")
)

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	User  *user.User
	Token string
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
}

type authUseCaseImpl struct {
	userRepo UserRepository
	jwtSvc   *jwt.Service
	pool     *pgxpool.Pool
}

func NewAuthCommands(userRepo UserRepository, jwtSvc *jwt.Service, pool *pgxpool.Pool) AuthCommands {
	return &authUseCaseImpl{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		pool:     pool,
	}
}

func (u *authUseCaseImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	account := user.NewUser(email, hash, user.RoleCustomer)
	if err := u.userRepo.Create(ctx, u.pool, account); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	token, err := u.jwtSvc.GenerateToken(account.ID(), account.Role())
	if err != nil {
		return nil, errs.Wrap(err, "issue token")
	}
	return &AuthResult{User: account, Token: token}, nil
}

func (u *authUseCaseImpl) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	account, err := u.userRepo.FindByEmail(ctx, u.pool, in.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !account.IsActive() {
		return nil, ErrAccountDisabled
	}
	if err := password.ComparePassword(account.PasswordHash(), in.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.jwtSvc.GenerateToken(account.ID(), account.Role())
	if err != nil {
		return nil, errs.Wrap(err, "issue token")
	}
	return &AuthResult{User: account, Token: token}, nil
}
