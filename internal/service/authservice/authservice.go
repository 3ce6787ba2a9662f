package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/pkg/auth"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

const tokenTTL = 12 * time.Hour

var ErrInvalidCredentials = errors.New("invalid credentials")

type Repo interface {
	FindAgentByPhone(ctx context.Context, dialCode, phone string) (*domain.Agent, error)
}

type Service struct {
	agentRepo   Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		agentRepo:   repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Authenticate checks an agent's PIN against the stored bcrypt hash.
func (s *Service) Authenticate(ctx context.Context, dialCode, phone, pin string) (*domain.Agent, error) {
	agent, err := s.agentRepo.FindAgentByPhone(ctx, dialCode, phone)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			zap.L().Info("invalid credentials", zap.String("phone", phone))
			return nil, ErrInvalidCredentials
		}
		zap.L().Error("can't find agent", zap.Error(err))
		return nil, err
	}
	if ok := s.hashService.ComparePIN(agent.PinHash, pin); !ok {
		zap.L().Info("invalid credentials", zap.Int64("agent_id", agent.ID))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("agent successfully authenticated", zap.Int64("agent_id", agent.ID))
	return agent, nil
}

func (s *Service) GenerateToken(agentID int64) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(agentID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
