package interceptors

import (
	"context"

	"github.com/Kotlang/accountGo/auth"
	"github.com/Kotlang/accountGo/logger"
	grpc_auth "github.com/grpc-ecosystem/go-grpc-middleware/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/util/metautils"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// VerifyToken attaches the caller named by the bearer token to the context.
// Requests without an authorization header pass through with no caller, so
// handlers decide for themselves whether anonymous access is allowed.
func VerifyToken(verifier auth.TokenVerifier) grpc_auth.AuthFunc {
	return func(ctx context.Context) (context.Context, error) {
		if metautils.ExtractIncoming(ctx).Get("authorization") == "" {
			return ctx, nil
		}

		token, err := grpc_auth.AuthFromMD(ctx, "bearer")
		if err != nil {
			return nil, err
		}

		caller, err := verifier.Verify(ctx, token)
		if err != nil {
			logger.Error("Failed validating token", zap.Error(err))
			return nil, status.Error(codes.Unauthenticated, "Bad authorization string")
		}

		return auth.WithCaller(ctx, caller), nil
	}
}
