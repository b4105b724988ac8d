package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/flexwork/internal/pkg/models"
	"github.com/piresc/flexwork/services/workspace"
	"github.com/piresc/flexwork/services/workspace/mocks"
)

const testCompanyID = "6f1c2c1e-0a4b-4d8e-9a57-3f3b2d1e0c11"

var baseTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func testConfig() *models.Config {
	return &models.Config{
		App: models.AppConfig{Name: "flexwork", Environment: "test", BaseURL: "https://app.flexwork.test/"},
		OTP: models.OTPConfig{
			Issuer: "Flexwork",
			Drift:  10 * time.Minute,
			Period: 30 * time.Second,
		},
	}
}

type testEnv struct {
	uc   *WorkspaceUC
	repo *mocks.MockWorkspaceRepo
	tx   *mocks.MockTxRepo
	gw   *mocks.MockWorkspaceGW
}

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	env := &testEnv{
		repo: mocks.NewMockWorkspaceRepo(ctrl),
		tx:   mocks.NewMockTxRepo(ctrl),
		gw:   mocks.NewMockWorkspaceGW(ctrl),
	}
	env.uc = NewWorkspaceUC(env.repo, env.gw, testConfig())
	env.uc.now = func() time.Time { return baseTime }

	seq := 0
	env.uc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return env
}

// expectTx runs the transaction body and every savepoint body inline
func (e *testEnv) expectTx() {
	e.repo.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(workspace.TxRepo) error) error {
			return fn(e.tx)
		})
	e.tx.EXPECT().Savepoint(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func() error) error {
			return fn()
		}).AnyTimes()
}

func adminActor() models.Actor {
	return models.Actor{
		UserID: "admin-1",
		Email:  "Boss@Flexwork.test",
		Memberships: []models.Membership{
			{ID: "m-admin", UserID: "admin-1", CompanyID: testCompanyID, Role: models.RoleAdministrator},
		},
	}
}
