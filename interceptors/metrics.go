package interceptors

import (
	"context"

	"github.com/Kotlang/accountGo/metrics"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

func MetricsUnaryInterceptor(recorder *metrics.Recorder) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		resp, err := handler(ctx, req)
		recorder.ObserveGrpcRequest(info.FullMethod, status.Code(err))
		return resp, err
	}
}
