package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// Claims is the payload of a staff bearer token.
type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller attached to the request.
type Principal struct {
	UserID   string
	Username string
}

// IssueToken signs an HS256 token for p that expires after ttl.
func IssueToken(secret []byte, p Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   p.UserID,
		Username: p.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// BearerAuth rejects requests without a valid HS256 bearer token signed with secret
// and stores the caller's Principal in the echo context.
func BearerAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header required (Bearer <token>)")
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token").SetInternal(err)
			}
			if claims.UserID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token").
					SetInternal(errors.New("token has no userId"))
			}

			ctx.Set(principalKey, Principal{UserID: claims.UserID, Username: claims.Username})
			return next(ctx)
		}
	}
}

// PrincipalFrom returns the caller set by BearerAuth.
func PrincipalFrom(ctx echo.Context) (Principal, bool) {
	p, ok := ctx.Get(principalKey).(Principal)
	return p, ok
}
