package repo

import (
	"github.com/Amitjang/XAlISS-SERVER/internal/pg"
	contractrepo "github.com/Amitjang/XAlISS-SERVER/internal/repo/contract-repo"
	historyrepo "github.com/Amitjang/XAlISS-SERVER/internal/repo/history-repo"
	notificationrepo "github.com/Amitjang/XAlISS-SERVER/internal/repo/notification-repo"
	partyrepo "github.com/Amitjang/XAlISS-SERVER/internal/repo/party-repo"
	transactionrepo "github.com/Amitjang/XAlISS-SERVER/internal/repo/transaction-repo"
)

type Repositories struct {
	ContractRepo     *contractrepo.Repository
	TransactionRepo  *transactionrepo.Repository
	HistoryRepo      *historyrepo.Repository
	PartyRepo        *partyrepo.Repository
	NotificationRepo *notificationrepo.Repository
	TxManager        pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		ContractRepo:     contractrepo.New(conn, txManager),
		TransactionRepo:  transactionrepo.New(conn),
		HistoryRepo:      historyrepo.New(conn),
		PartyRepo:        partyrepo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
		TxManager:        txManager,
	}
}
