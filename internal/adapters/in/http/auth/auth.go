// Package auth verifies bearer tokens issued by the external auth service and
// exposes the verified actor to handlers.
package auth

import (
	"strings"

	"laundry/internal/core/domain/model/identity"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorKey = "laundry.actor"

// Claims are the token fields this service relies on.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier checks HS256 signatures and expiry.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// Verify turns a raw token into an Actor. Every failure is an AuthError.
func (v *Verifier) Verify(raw string) (identity.Actor, error) {
	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return identity.Actor{}, errs.NewAuthError("token is invalid or expired", err)
	}

	userID, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return identity.Actor{}, errs.NewAuthError("token has no valid userId", err)
	}

	actor, err := identity.NewActor(userID, claims.Role)
	if err != nil {
		return identity.Actor{}, errs.NewAuthError("token has no valid userId", err)
	}
	return actor, nil
}

// Middleware rejects requests without a valid bearer token. onError renders
// the AuthError so the envelope stays uniform.
func Middleware(v *Verifier, onError func(echo.Context, error) error) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || strings.TrimSpace(raw) == "" {
				return onError(c, errs.NewAuthError("bearer token is missing", nil))
			}

			actor, err := v.Verify(strings.TrimSpace(raw))
			if err != nil {
				return onError(c, err)
			}

			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

// ActorFrom returns the actor stored by Middleware.
func ActorFrom(c echo.Context) (identity.Actor, error) {
	actor, ok := c.Get(actorKey).(identity.Actor)
	if !ok {
		return identity.Actor{}, errs.NewAuthError("request is not authenticated", nil)
	}
	return actor, nil
}
