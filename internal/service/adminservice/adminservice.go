package adminservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/rewardcore/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	UpdateRole(ctx context.Context, accountID string, role domain.Role) (bool, error)
	UpdateLevel(ctx context.Context, accountID string, level int) (bool, error)
	UpdateBans(ctx context.Context, accountID string, chatBan, coinBan bool, reason string) (bool, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
}

type Audit interface {
	Record(event domain.AuditEvent)
}

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrTargetNotFound  = errors.New("target user not found")
	ErrNotAdmin        = errors.New("admin role required")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidLevel    = errors.New("level out of range")
)

type Service struct {
	accountRepo Repo
	ledgerRepo  LedgerRepo
	audit       Audit
}

func New(accountRepo Repo, ledgerRepo LedgerRepo, audit Audit) *Service {
	return &Service{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		audit:       audit,
	}
}

func (s *Service) resolve(ctx context.Context, actorID, targetUsername string) (*domain.Account, *domain.Account, error) {
	actor, err := s.accountRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, nil, err
	}
	if actor == nil {
		return nil, nil, ErrAccountNotFound
	}
	if !actor.IsAdmin() {
		return nil, nil, ErrNotAdmin
	}
	target, err := s.accountRepo.FindByUsername(ctx, strings.TrimSpace(targetUsername))
	if err != nil {
		return nil, nil, err
	}
	if target == nil {
		return nil, nil, ErrTargetNotFound
	}
	return actor, target, nil
}

func (s *Service) SetRole(ctx context.Context, actorID, targetUsername string, role domain.Role) error {
	switch role {
	case domain.RoleUser, domain.RoleMod, domain.RoleAdmin:
	default:
		return ErrInvalidRole
	}

	actor, target, err := s.resolve(ctx, actorID, targetUsername)
	if err != nil {
		return err
	}

	if _, err := s.accountRepo.UpdateRole(ctx, target.ID, role); err != nil {
		return err
	}
	if _, err := s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
		Type:          domain.LedgerAdminSetRole,
		FromAccountID: actor.ID,
		FromName:      actor.Username,
		ToAccountID:   target.ID,
		ToName:        target.Username,
		Description:   fmt.Sprintf("role set to %s", role),
	}); err != nil {
		zap.L().Error("can't record role change", zap.Error(err))
		return err
	}

	s.audit.Record(domain.AuditEvent{
		ActorID:   actor.ID,
		TargetID:  target.ID,
		Action:    "set_role",
		Detail:    string(role),
		CreatedAt: time.Now(),
	})
	return nil
}

func (s *Service) SetLevel(ctx context.Context, actorID, targetUsername string, level int) error {
	if level < domain.MinLevel || level > domain.MaxLevel {
		return ErrInvalidLevel
	}

	actor, target, err := s.resolve(ctx, actorID, targetUsername)
	if err != nil {
		return err
	}

	if _, err := s.accountRepo.UpdateLevel(ctx, target.ID, level); err != nil {
		return err
	}
	if _, err := s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
		Type:          domain.LedgerAdminSetLevel,
		FromAccountID: actor.ID,
		FromName:      actor.Username,
		ToAccountID:   target.ID,
		ToName:        target.Username,
		Description:   fmt.Sprintf("level set to %d", level),
	}); err != nil {
		zap.L().Error("can't record level change", zap.Error(err))
		return err
	}

	s.audit.Record(domain.AuditEvent{
		ActorID:   actor.ID,
		TargetID:  target.ID,
		Action:    "set_level",
		Detail:    fmt.Sprintf("%d", level),
		CreatedAt: time.Now(),
	})
	return nil
}

func (s *Service) SetBans(ctx context.Context, actorID, targetUsername string, chatBan, coinBan bool, reason string) error {
	actor, target, err := s.resolve(ctx, actorID, targetUsername)
	if err != nil {
		return err
	}

	if _, err := s.accountRepo.UpdateBans(ctx, target.ID, chatBan, coinBan, reason); err != nil {
		return err
	}
	if _, err := s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
		Type:          domain.LedgerAdminSetBans,
		FromAccountID: actor.ID,
		FromName:      actor.Username,
		ToAccountID:   target.ID,
		ToName:        target.Username,
		Description:   fmt.Sprintf("bans set chat=%t coins=%t: %s", chatBan, coinBan, reason),
	}); err != nil {
		zap.L().Error("can't record ban change", zap.Error(err))
		return err
	}

	s.audit.Record(domain.AuditEvent{
		ActorID:   actor.ID,
		TargetID:  target.ID,
		Action:    "set_bans",
		Detail:    fmt.Sprintf("chat=%t coins=%t: %s", chatBan, coinBan, reason),
		CreatedAt: time.Now(),
	})
	return nil
}
