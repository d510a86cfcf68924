package interceptors

import (
	"context"
	"testing"

	"github.com/Kotlang/accountGo/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMetricsUnaryInterceptor(t *testing.T) {
	recorder := metrics.NewRecorder(prometheus.NewRegistry())
	interceptor := MetricsUnaryInterceptor(recorder)
	info := &grpc.UnaryServerInfo{FullMethod: "/accounts.Functions/DeleteUser"}

	ok := func(ctx context.Context, req interface{}) (interface{}, error) { return "ok", nil }
	denied := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.Unauthenticated, "no")
	}

	resp, err := interceptor(context.Background(), nil, info, ok)
	assert.NoError(t, err)
	assert.Equal(t, "ok", resp)

	_, err = interceptor(context.Background(), nil, info, denied)
	assert.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.GrpcRequests().WithLabelValues(info.FullMethod, codes.OK.String())))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.GrpcRequests().WithLabelValues(info.FullMethod, codes.Unauthenticated.String())))
}
