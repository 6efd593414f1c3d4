package service

import (
	"context"
	"errors"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/repo"
	"quotation-management-api/internal/repo/repo_errors"
	"quotation-management-api/pkg/jwtutil"
	"quotation-management-api/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo repo.User
	jwt      *jwtutil.JWTUtil
}

func NewAuthService(repos *repo.Repositories, jwt *jwtutil.JWTUtil) *AuthService {
	return &AuthService{
		userRepo: repos.User,
		jwt:      jwt,
	}
}

// Login verifies the credentials and issues a signed token. Unknown users,
// inactive users and wrong passwords all collapse into the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return "", ErrInvalidCredentials
		}

		return "", err
	}

	if !user.Active {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	if err = s.userRepo.UpdateLastAccess(ctx, user.Id); err != nil {
		return "", err
	}

	return s.jwt.GenerateToken(user.Username, user.Id)
}

func (s *AuthService) Register(ctx context.Context, username, email, password, fullName string) (*entity.UserOutputModel, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if fullName == "" {
		fullName = username
	}

	input := &entity.CreateUserInput{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
	}

	userId, err := s.userRepo.CreateUser(ctx, input)
	if err != nil {
		if errors.Is(err, repo_errors.ErrAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}

		return nil, err
	}

	return &entity.UserOutputModel{
		Id:       userId,
		Username: username,
		Email:    email,
		FullName: fullName,
	}, nil
}

// EnsureDefaultAdmin creates the bootstrap user on first start so the API is
// reachable on a fresh database.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	_, err := s.userRepo.GetUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repo_errors.ErrNotFound) {
		return err
	}

	_, err = s.Register(ctx, username, username+"@localhost", password, "Administrator")
	if err != nil {
		return err
	}

	logger.L().Info("default admin user created", zap.String("username", username))

	return nil
}
