package service

import (
	"github.com/Kotlang/accountGo/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// all input validations will be added here.

// ValidateDeletionRequest checks the caller before the payload; the first
// failure wins.
func ValidateDeletionRequest(req models.DeletionRequest) error {
	if req.Caller == nil {
		return status.Error(codes.Unauthenticated, "Only authenticated users can delete users")
	}
	if len(req.UserId) == 0 {
		return status.Error(codes.InvalidArgument, "User ID is required")
	}

	return nil
}
