package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/rewardcore/internal/domain"
	"github.com/GlebRadaev/rewardcore/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	Create(ctx context.Context, acc *domain.Account) (*domain.Account, error)
}

type Service struct {
	accountRepo Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(accountRepo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		accountRepo: accountRepo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Register creates a fresh account: balance 0, level 1, role user.
func (s *Service) Register(ctx context.Context, username, password string) (*domain.Account, error) {
	existing, err := s.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find account: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("username already taken", zap.String("username", username))
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	acc, err := s.accountRepo.Create(ctx, &domain.Account{
		Username:     username,
		DisplayName:  username,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		zap.L().Error("can't create account: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("account successfully registered", zap.String("username", username))
	return acc, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	acc, err := s.accountRepo.FindByUsername(ctx, username)
	if err != nil || acc == nil {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(acc.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	return acc, nil
}

func (s *Service) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	acc, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		zap.L().Error("can't find account: ", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (s *Service) GenerateToken(accountID string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(accountID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
