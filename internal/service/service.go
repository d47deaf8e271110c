package service

import (
	"time"

	"github.com/GlebRadaev/rewardcore/internal/audit"
	"github.com/GlebRadaev/rewardcore/internal/catalog"
	"github.com/GlebRadaev/rewardcore/internal/config"
	"github.com/GlebRadaev/rewardcore/internal/pg"
	"github.com/GlebRadaev/rewardcore/internal/repo"
	"github.com/GlebRadaev/rewardcore/internal/service/adminservice"
	"github.com/GlebRadaev/rewardcore/internal/service/authservice"
	"github.com/GlebRadaev/rewardcore/internal/service/awardservice"
	"github.com/GlebRadaev/rewardcore/internal/service/quotaservice"
	"github.com/GlebRadaev/rewardcore/internal/service/statservice"
	"github.com/GlebRadaev/rewardcore/internal/service/transferservice"
	pkgauth "github.com/GlebRadaev/rewardcore/pkg/auth"
)

type Services struct {
	AuthService     *authservice.Service
	AwardService    *awardservice.Service
	StatService     *statservice.Service
	TransferService *transferservice.Service
	AdminService    *adminservice.Service
	QuotaService    *quotaservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, cat *catalog.Catalog, auditService *audit.Service) *Services {
	quotaService := quotaservice.New(repo.LedgerRepo)
	awardService := awardservice.New(repo.AccountRepo, repo.LedgerRepo, cat)
	statService := statservice.New(repo.AccountRepo, cat)
	transferService := transferservice.New(
		repo.AccountRepo,
		repo.LedgerRepo,
		txManager,
		quotaService,
		awardService,
		auditService,
		cat,
		time.Duration(cfg.TransferWindowHours)*time.Hour,
		cfg.TransferMaxCount,
		cfg.TransferMaxSum,
	)
	adminService := adminservice.New(repo.AccountRepo, repo.LedgerRepo, auditService)
	authService := authservice.New(repo.AccountRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:     authService,
		AwardService:    awardService,
		StatService:     statService,
		TransferService: transferService,
		AdminService:    adminService,
		QuotaService:    quotaService,
	}
}
