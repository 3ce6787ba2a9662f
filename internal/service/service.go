package service

import (
	"github.com/Amitjang/XAlISS-SERVER/internal/config"
	"github.com/Amitjang/XAlISS-SERVER/internal/repo"
	"github.com/Amitjang/XAlISS-SERVER/internal/service/authservice"
	"github.com/Amitjang/XAlISS-SERVER/internal/service/collectionservice"
	"github.com/Amitjang/XAlISS-SERVER/internal/service/contractservice"
	"github.com/Amitjang/XAlISS-SERVER/internal/service/notifyservice"
	"github.com/Amitjang/XAlISS-SERVER/internal/service/reconcileservice"
	pkgauth "github.com/Amitjang/XAlISS-SERVER/pkg/auth"
	"github.com/Amitjang/XAlISS-SERVER/pkg/ledger"
	"github.com/Amitjang/XAlISS-SERVER/pkg/rabbitmq"
)

type Services struct {
	AuthService       *authservice.Service
	NotifyService     *notifyservice.Service
	CollectionService *collectionservice.Service
	ContractService   *contractservice.Service
	ReconcileService  *reconcileservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, ledgerClient *ledger.Client, publisher rabbitmq.Publisher, jwtService pkgauth.JWTServiceInterface) *Services {
	loc := cfg.Location()

	notifyService := notifyservice.New(publisher, repo.NotificationRepo, notifyservice.Config{
		Exchange: cfg.NotifyExchange,
		Lang:     cfg.NotifyLang,
		ImageURL: cfg.NotifyImageURL,
	})
	authService := authservice.New(repo.PartyRepo, &pkgauth.HashService{}, jwtService)
	collectionService := collectionservice.New(
		repo.ContractRepo, repo.TransactionRepo, repo.PartyRepo,
		ledgerClient, notifyService, repo.TxManager,
		collectionservice.Config{Location: loc, Asset: cfg.LedgerAsset, LedgerTimeout: cfg.LedgerTimeout},
	)
	contractService := contractservice.New(repo.ContractRepo, repo.PartyRepo, notifyService, loc)
	fees := reconcileservice.NewFeeSchedule(cfg.FeeRateDaily, cfg.FeeRateWeekly, cfg.FeeRateMonthly, cfg.HouseWalletID, cfg.LedgerAsset)
	reconcileService := reconcileservice.New(
		repo.ContractRepo, repo.TransactionRepo, repo.HistoryRepo, repo.PartyRepo,
		ledgerClient, notifyService, fees,
		reconcileservice.Config{Location: loc, LedgerTimeout: cfg.LedgerTimeout},
	)

	return &Services{
		AuthService:       authService,
		NotifyService:     notifyService,
		CollectionService: collectionService,
		ContractService:   contractService,
		ReconcileService:  reconcileService,
	}
}
