package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-timeclock/internal/payroll"
	payrollerrors "go-timeclock/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	getAllFn       func(ctx context.Context) ([]payroll.PayrollRowResponse, error)
	summaryFn      func(ctx context.Context, employeeID string) (payroll.SummaryResponse, error)
	markPaidFn     func(ctx context.Context, employeeID string) (payroll.SummaryResponse, error)
	markPaidBulkFn func(ctx context.Context, req payroll.BulkMarkPaidRequest) (payroll.BulkMarkPaidResponse, error)
}

func (f *fakeService) GetAll(ctx context.Context) ([]payroll.PayrollRowResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeService) Summary(ctx context.Context, employeeID string) (payroll.SummaryResponse, error) {
	return f.summaryFn(ctx, employeeID)
}
func (f *fakeService) MarkPaid(ctx context.Context, employeeID string) (payroll.SummaryResponse, error) {
	return f.markPaidFn(ctx, employeeID)
}
func (f *fakeService) MarkPaidBulk(ctx context.Context, req payroll.BulkMarkPaidRequest) (payroll.BulkMarkPaidResponse, error) {
	return f.markPaidBulkFn(ctx, req)
}

func TestHandler_MarkPaid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	paid := "2026-01-09"
	svc := &fakeService{
		markPaidFn: func(ctx context.Context, employeeID string) (payroll.SummaryResponse, error) {
			assert.Equal(t, "123456", employeeID)
			return payroll.SummaryResponse{EmployeeID: employeeID, LastPaidDate: &paid}, nil
		},
	}

	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "123456"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/123456/mark-paid", nil)
	h.MarkPaid(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2026-01-09")
}

func TestHandler_MarkPaid_Unknown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		markPaidFn: func(ctx context.Context, employeeID string) (payroll.SummaryResponse, error) {
			return payroll.SummaryResponse{}, payrollerrors.ErrEmployeeNotFound
		},
	}

	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "999999"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/999999/mark-paid", nil)
	h.MarkPaid(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestHandler_MarkPaid_CachesResponseAndReleasesLock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	paid := "2026-01-09"
	resp := payroll.SummaryResponse{EmployeeID: "123456", LastPaidDate: &paid}
	svc := &fakeService{
		markPaidFn: func(ctx context.Context, employeeID string) (payroll.SummaryResponse, error) {
			return resp, nil
		},
	}

	rdb, redisMock := redismock.NewClientMock()
	h := payroll.NewHandlerWithRedis(svc, rdb)

	cacheKey := "idemp:/payroll/:id/mark-paid:admin:key-1"
	lockKey := cacheKey + ":lock"
	payload, _ := json.Marshal(resp)
	redisMock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
	redisMock.ExpectDel(lockKey).SetVal(1)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "123456"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/123456/mark-paid", nil)
	c.Set("idempotency_cache_key", cacheKey)
	c.Set("idempotency_lock_key", lockKey)
	h.MarkPaid(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_MarkPaid_ReleasesLockOnError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		markPaidFn: func(ctx context.Context, employeeID string) (payroll.SummaryResponse, error) {
			return payroll.SummaryResponse{}, payrollerrors.ErrEmployeeNotFound
		},
	}

	rdb, redisMock := redismock.NewClientMock()
	h := payroll.NewHandlerWithRedis(svc, rdb)

	lockKey := "idemp:/payroll/:id/mark-paid:admin:key-1:lock"
	redisMock.ExpectDel(lockKey).SetVal(1)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "999999"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/999999/mark-paid", nil)
	c.Set("idempotency_cache_key", "idemp:/payroll/:id/mark-paid:admin:key-1")
	c.Set("idempotency_lock_key", lockKey)
	h.MarkPaid(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_MarkPaidBulk_ValidatesBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := payroll.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/mark-paid", strings.NewReader(`{"employee_ids":[]}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.MarkPaidBulk(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_MarkPaidBulk(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		markPaidBulkFn: func(ctx context.Context, req payroll.BulkMarkPaidRequest) (payroll.BulkMarkPaidResponse, error) {
			return payroll.BulkMarkPaidResponse{Requested: 2, Paid: 1, Skipped: []string{"999999"}}, nil
		},
	}

	h := payroll.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/mark-paid",
		strings.NewReader(`{"employee_ids":["123456","999999"]}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.MarkPaidBulk(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"paid":1`)
}
