package service

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Amitjang/XAlISS-SERVER/internal/config"
	"github.com/Amitjang/XAlISS-SERVER/internal/pg"
	"github.com/Amitjang/XAlISS-SERVER/internal/repo"
	"github.com/Amitjang/XAlISS-SERVER/pkg/auth"
	"github.com/Amitjang/XAlISS-SERVER/pkg/clients"
	"github.com/Amitjang/XAlISS-SERVER/pkg/ledger"
	"github.com/Amitjang/XAlISS-SERVER/pkg/rabbitmq"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))
	cfg := &config.Config{Timezone: "Africa/Dakar", LedgerAsset: "native", FeeRateDaily: 3.5, FeeRateWeekly: 3, FeeRateMonthly: 3}
	ledgerClient := ledger.New("http://localhost:8081", clients.NewHTTPClient(), time.Second)

	services := New(cfg, repos, ledgerClient, rabbitmq.NewMockPublisher(ctrl), auth.NewMockJWTServiceInterface(ctrl))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.NotifyService)
	assert.NotNil(t, services.CollectionService)
	assert.NotNil(t, services.ContractService)
	assert.NotNil(t, services.ReconcileService)
}
