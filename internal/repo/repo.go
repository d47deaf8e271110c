package repo

import (
	"github.com/GlebRadaev/rewardcore/internal/pg"
	accountrepo "github.com/GlebRadaev/rewardcore/internal/repo/account-repo"
	auditrepo "github.com/GlebRadaev/rewardcore/internal/repo/audit-repo"
	ledgerrepo "github.com/GlebRadaev/rewardcore/internal/repo/ledger-repo"
)

type Repositories struct {
	AccountRepo *accountrepo.Repository
	LedgerRepo  *ledgerrepo.Repository
	AuditRepo   *auditrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		AccountRepo: accountrepo.New(conn, txManager),
		LedgerRepo:  ledgerrepo.New(conn),
		AuditRepo:   auditrepo.New(conn),
	}
}
