package auth

import (
	"context"
	"errors"

	"github.com/dgrijalva/jwt-go"
)

// Caller is the verified principal behind a request.
type Caller struct {
	UserId   string
	UserType string
}

type callerKey struct{}

// TokenVerifier turns a bearer token into a Caller.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Caller, error)
}

var ErrInvalidToken = errors.New("invalid token")

// JwtVerifier checks HS256 tokens signed with the shared access secret.
type JwtVerifier struct {
	secret []byte
}

func NewJwtVerifier(accessSecret string) *JwtVerifier {
	return &JwtVerifier{secret: []byte(accessSecret)}
}

func (v *JwtVerifier) Verify(ctx context.Context, token string) (*Caller, error) {
	parsedToken, err := jwt.ParseWithClaims(
		token,
		&jwt.StandardClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return v.secret, nil
		})
	if err != nil {
		return nil, err
	}

	claims, ok := parsedToken.Claims.(*jwt.StandardClaims)
	if !ok || !parsedToken.Valid || claims.Id == "" {
		return nil, ErrInvalidToken
	}

	return &Caller{UserId: claims.Id, UserType: claims.Subject}, nil
}

// GetToken issues a token JwtVerifier accepts.
func GetToken(accessSecret, userId, userType string) string {
	atClaims := jwt.StandardClaims{}
	atClaims.Id = userId
	atClaims.Subject = userType

	at := jwt.NewWithClaims(jwt.SigningMethodHS256, atClaims)
	token, _ := at.SignedString([]byte(accessSecret))
	return token
}

func WithCaller(ctx context.Context, caller *Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFromContext returns nil when the request carried no credential.
func CallerFromContext(ctx context.Context) *Caller {
	caller, _ := ctx.Value(callerKey{}).(*Caller)
	return caller
}
