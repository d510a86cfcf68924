package service

import (
	"context"

	"github.com/Kotlang/accountGo/db"
	"github.com/Kotlang/accountGo/logger"
	"github.com/Kotlang/accountGo/models"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const deletedMessage = "User deleted successfully"

// DeleteUserHandler removes a user's identity record and then their profile
// document. The second delete only runs once the first has succeeded, and a
// failed second delete does not restore the identity record.
type DeleteUserHandler struct {
	db db.AccountDbInterface
}

func NewDeleteUserHandler(accountDb db.AccountDbInterface) *DeleteUserHandler {
	return &DeleteUserHandler{
		db: accountDb,
	}
}

func (h *DeleteUserHandler) Handle(ctx context.Context, req models.DeletionRequest) (*models.DeletionResult, error) {
	if err := ValidateDeletionRequest(req); err != nil {
		return nil, err
	}

	// Delete login from db
	if err := <-h.db.Login().DeleteById(ctx, req.UserId); err != nil {
		logger.Error("Error deleting user",
			zap.String("userId", req.UserId),
			zap.String("callerId", req.Caller.UserId),
			zap.String("step", "identity"),
			zap.Error(err))
		return nil, internalError(err)
	}

	// Delete profile from db
	if err := <-h.db.Users().DeleteById(ctx, req.UserId); err != nil {
		logger.Error("Error deleting user, identity deleted but profile document remains",
			zap.String("userId", req.UserId),
			zap.String("callerId", req.Caller.UserId),
			zap.String("step", "profile"),
			zap.Error(err))
		return nil, internalError(err)
	}

	logger.Info("User deleted", zap.String("userId", req.UserId), zap.String("callerId", req.Caller.UserId))
	return &models.DeletionResult{
		Success: true,
		Message: deletedMessage,
	}, nil
}

func internalError(err error) error {
	return status.Error(codes.Internal, "Error deleting user: "+err.Error())
}
