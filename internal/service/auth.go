package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"quizcafe/internal/config"
	"quizcafe/internal/domain"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// Auth error codes sent to clients.
const (
	AuthCodeHeaderMissing = "authorization_header_missing"
	AuthCodeInvalidHeader = "invalid_header"
	AuthCodeTokenExpired  = "token_expired"
	AuthCodeInvalidClaims = "invalid_claims"
	AuthCodeUnauthorized  = "unauthorized"
)

var (
	errMissingKid  = errors.New("token header has no kid")
	errKeyNotFound = errors.New("signing key not found")
)

// KeySource resolves the verification key of a token. keyfunc.Keyfunc
// satisfies it.
type KeySource interface {
	Keyfunc(token *jwt.Token) (interface{}, error)
}

// NewJWKSKeySource fetches and keeps refreshing the identity provider's JWKS
// until ctx is cancelled.
func NewJWKSKeySource(ctx context.Context, jwksURL string) (KeySource, error) {
	k, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("failed to load JWKS from %s: %w", jwksURL, err)
	}
	return k, nil
}

// StaticKeySource serves fixed public keys by kid.
type StaticKeySource map[string]interface{}

func (s StaticKeySource) Keyfunc(token *jwt.Token) (interface{}, error) {
	kid, _ := token.Header["kid"].(string)
	key, ok := s[kid]
	if !ok {
		return nil, fmt.Errorf("no key with kid %q", kid)
	}
	return key, nil
}

// Claims are the verified claims of a coffee-shop access token.
type Claims struct {
	jwt.RegisteredClaims
	Permissions []string `json:"permissions"`
}

// PermissionVerifier checks bearer tokens issued by the identity provider.
type PermissionVerifier struct {
	keys   KeySource
	parser *jwt.Parser
}

func NewPermissionVerifier(keys KeySource, cfg config.AuthConfig) *PermissionVerifier {
	algorithms := cfg.Algorithms
	if len(algorithms) == 0 {
		algorithms = []string{jwt.SigningMethodRS256.Alg()}
	}
	return &PermissionVerifier{
		keys: keys,
		parser: jwt.NewParser(
			jwt.WithValidMethods(algorithms),
			jwt.WithAudience(cfg.Audience),
			jwt.WithIssuer(cfg.Issuer()),
			jwt.WithExpirationRequired(),
		),
	}
}

// TokenFromHeader extracts the token of a "Bearer <token>" header value.
func TokenFromHeader(header string) (string, error) {
	if header == "" {
		return "", domain.NewAuthError(AuthCodeHeaderMissing, "Authorization header is expected.", http.StatusUnauthorized)
	}

	parts := strings.Fields(header)
	switch {
	case len(parts) == 0 || !strings.EqualFold(parts[0], "bearer"):
		return "", domain.NewAuthError(AuthCodeInvalidHeader, `Authorization header must start with "Bearer".`, http.StatusUnauthorized)
	case len(parts) == 1:
		return "", domain.NewAuthError(AuthCodeInvalidHeader, "Token not found.", http.StatusUnauthorized)
	case len(parts) > 2:
		return "", domain.NewAuthError(AuthCodeInvalidHeader, "Authorization header must be bearer token.", http.StatusUnauthorized)
	}
	return parts[1], nil
}

// Verify checks the signature, audience, issuer and expiry of token.
func (v *PermissionVerifier) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(token, claims, v.keyfunc)
	if err == nil {
		return claims, nil
	}

	switch {
	case errors.Is(err, errMissingKid):
		return nil, domain.NewAuthError(AuthCodeInvalidHeader, "Authorization malformed.", http.StatusUnauthorized)
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, domain.NewAuthError(AuthCodeTokenExpired, "Token expired.", http.StatusUnauthorized)
	case errors.Is(err, jwt.ErrTokenInvalidAudience), errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return nil, domain.NewAuthError(AuthCodeInvalidClaims, "Incorrect claims. Please, check the audience and issuer.", http.StatusUnauthorized)
	case errors.Is(err, errKeyNotFound):
		return nil, domain.NewAuthError(AuthCodeInvalidHeader, "Unable to find the appropriate key.", http.StatusBadRequest)
	default:
		return nil, domain.NewAuthError(AuthCodeInvalidHeader, "Unable to parse authentication token.", http.StatusBadRequest)
	}
}

func (v *PermissionVerifier) keyfunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Header["kid"]; !ok {
		return nil, errMissingKid
	}
	key, err := v.keys.Keyfunc(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errKeyNotFound, err)
	}
	return key, nil
}

// CheckPermission requires permission in the token's permissions claim.
func CheckPermission(claims *Claims, permission string) error {
	if claims.Permissions == nil {
		return domain.NewAuthError(AuthCodeInvalidClaims, "Permissions not included in JWT.", http.StatusBadRequest)
	}
	if !slices.Contains(claims.Permissions, permission) {
		return domain.NewAuthError(AuthCodeUnauthorized, "Permission not found.", http.StatusForbidden)
	}
	return nil
}
