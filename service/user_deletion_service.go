package service

import (
	"context"
	"time"

	"github.com/Kotlang/accountGo/auth"
	"github.com/Kotlang/accountGo/callable"
	"github.com/Kotlang/accountGo/logger"
	"github.com/Kotlang/accountGo/metrics"
	"github.com/Kotlang/accountGo/models"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// UserDeletionService exposes DeleteUserHandler over gRPC and as a callable
// HTTP function.
type UserDeletionService struct {
	callable.UnimplementedFunctionsServer
	handler *DeleteUserHandler
	metrics *metrics.Recorder
}

func NewUserDeletionService(handler *DeleteUserHandler, recorder *metrics.Recorder) *UserDeletionService {
	return &UserDeletionService{
		handler: handler,
		metrics: recorder,
	}
}

func (s *UserDeletionService) DeleteUser(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	result, err := s.Delete(ctx, auth.CallerFromContext(ctx), req.AsMap())
	if err != nil {
		return nil, err
	}

	res, err := structpb.NewStruct(map[string]interface{}{
		"success": result.Success,
		"message": result.Message,
	})
	if err != nil {
		logger.Error("Failed encoding response", zap.Error(err))
		return nil, status.Error(codes.Internal, "Failed encoding response")
	}
	return res, nil
}

// Delete reads "userId" from data. A value that is not a string is treated
// as absent.
func (s *UserDeletionService) Delete(ctx context.Context, caller *auth.Caller, data map[string]interface{}) (*models.DeletionResult, error) {
	userId, _ := data["userId"].(string)

	start := time.Now()
	result, err := s.handler.Handle(ctx, models.DeletionRequest{
		Caller: caller,
		UserId: userId,
	})
	s.metrics.ObserveDeletion(status.Code(err), time.Since(start))

	return result, err
}

// DeleteFunction adapts Delete to the callable router.
func (s *UserDeletionService) DeleteFunction() callable.Function {
	return func(ctx context.Context, caller *auth.Caller, data map[string]interface{}) (interface{}, error) {
		return s.Delete(ctx, caller, data)
	}
}
