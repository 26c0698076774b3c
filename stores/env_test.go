package stores_test

import (
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/venkatakrishna06/restaurant-pos/client"
	"github.com/venkatakrishna06/restaurant-pos/mockapi"
	"github.com/venkatakrishna06/restaurant-pos/services"
	"github.com/venkatakrishna06/restaurant-pos/stores"
	"github.com/venkatakrishna06/restaurant-pos/utils"
)

var dbSeq atomic.Int64

// testEnv wires the stores against a real API instance backed by an
// in-memory database, so every store mutation goes through the full
// client -> router -> controller -> gorm path.
type testEnv struct {
	db       *gorm.DB
	api      *client.Client
	tables   *stores.TableStore
	orders   *stores.OrderStore
	menu     *stores.MenuStore
	staff    *stores.StaffStore
	payments *stores.PaymentStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:stores%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	server, err := mockapi.NewServer(db)
	if err != nil {
		panic(err)
	}

	srv := httptest.NewServer(server.Engine)
	t.Cleanup(srv.Close)

	tokens := client.NewTokenStore()
	token, err := utils.GenerateToken(1, "admin")
	if err != nil {
		panic(err)
	}
	tokens.SetToken(token)

	api := client.New(srv.URL, 5*time.Second, tokens)

	return &testEnv{
		db:       db,
		api:      api,
		tables:   stores.NewTableStore(services.NewTableService(api)),
		orders:   stores.NewOrderStore(services.NewOrderService(api)),
		menu:     stores.NewMenuStore(services.NewMenuService(api)),
		staff:    stores.NewStaffStore(services.NewStaffService(api)),
		payments: stores.NewPaymentStore(services.NewPaymentService(api)),
	}
}
