package firebaseDb

import (
	"context"

	firebaseAuth "firebase.google.com/go/v4/auth"
	"github.com/Kotlang/accountGo/auth"
)

type IdTokenClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseAuth.Token, error)
}

// IdTokenVerifier accepts Firebase ID tokens. The optional "userType" custom
// claim is copied onto the caller.
type IdTokenVerifier struct {
	client IdTokenClient
}

func NewIdTokenVerifier(client IdTokenClient) *IdTokenVerifier {
	return &IdTokenVerifier{client: client}
}

func (v *IdTokenVerifier) Verify(ctx context.Context, token string) (*auth.Caller, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if decoded.UID == "" {
		return nil, auth.ErrInvalidToken
	}

	userType, _ := decoded.Claims["userType"].(string)
	return &auth.Caller{UserId: decoded.UID, UserType: userType}, nil
}
