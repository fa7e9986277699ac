package observability

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMetrics_UnaryServerInterceptor(t *testing.T) {
	m := NewMetrics()
	intercept := m.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/goblinden.v1.DenService/Build"}

	for _, err := range []error{nil, nil, status.Error(codes.FailedPrecondition, "occupied")} {
		_, got := intercept(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
			return nil, err
		})
		assert.Equal(t, err, got)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.rpcs.WithLabelValues(info.FullMethod, "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rpcs.WithLabelValues(info.FullMethod, "FailedPrecondition")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.rpcDuration))
}

func TestMetrics_DomainCounters(t *testing.T) {
	m := NewMetrics()
	m.TurnEnded(3, 2, 1)
	m.TurnEnded(4, 3, 0)
	m.SetDens(5)
	m.Built("farm")
	m.Built("farm")
	m.Spent(50, 0)

	assert.Equal(t, 4.0, testutil.ToFloat64(m.turn))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.densPaid))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.payFailures))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.dens))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.builds.WithLabelValues("farm")))
	assert.Equal(t, 50.0, testutil.ToFloat64(m.spent.WithLabelValues("gold")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.spent), "zero food is not recorded")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.TurnEnded(1, 1, 0)
		m.SetDens(1)
		m.Built("farm")
		m.Spent(1, 1)
		_, _ = m.UnaryServerInterceptor()(context.Background(), nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, req any) (any, error) {
			return nil, nil
		})
	})
}

func get(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return rec.Code, string(body)
}

func TestOpsHandler(t *testing.T) {
	m := NewMetrics()
	m.Built("shrine")
	healthy := true
	h := NewOpsHandler(m, func(ctx context.Context) error {
		if !healthy {
			return errors.New("db down")
		}
		return nil
	}, zaptest.NewLogger(t))

	code, body := get(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `goblinden_buildings_built_total{building="shrine"} 1`)

	code, body = get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok\n", body)

	healthy = false
	code, body = get(t, h, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Contains(t, body, "db down")

	code, _ = get(t, h, "/nope")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestOpsHandler_NilHealth(t *testing.T) {
	h := NewOpsHandler(NewMetrics(), nil, zaptest.NewLogger(t))
	code, _ := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, code)
}
