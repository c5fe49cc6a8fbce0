package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/studentcert/studentcert/pkg/errs"
	"github.com/studentcert/studentcert/pkg/response"
	"github.com/studentcert/studentcert/pkg/utils"
)

const userContextKey = "user"

// RequireAuth rejects requests without a valid bearer token and stores the
// parsed claims on the echo context.
func RequireAuth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := parseAuthHeader(c, jwtSecret)
			if !ok {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			c.Set(userContextKey, claims)
			return next(c)
		}
	}
}

// RequireRole builds on RequireAuth and additionally checks the token role.
func RequireRole(jwtSecret string, roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := parseAuthHeader(c, jwtSecret)
			if !ok {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			for _, role := range roles {
				if strings.EqualFold(claims.Role, role) {
					c.Set(userContextKey, claims)
					return next(c)
				}
			}

			return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
		}
	}
}

// ExtractTokenClaims returns the claims stored by RequireAuth/RequireRole.
func ExtractTokenClaims(c echo.Context) (utils.TokenClaims, bool) {
	claims, ok := c.Get(userContextKey).(utils.TokenClaims)
	return claims, ok
}

// ParseOptionalToken parses the Authorization header without failing the
// request. Listing endpoints degrade to an unfiltered view when the token is
// absent or unparsable.
func ParseOptionalToken(c echo.Context, jwtSecret string) (utils.TokenClaims, bool) {
	return parseAuthHeader(c, jwtSecret)
}

func parseAuthHeader(c echo.Context, jwtSecret string) (utils.TokenClaims, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.TokenClaims{}, false
	}

	claims, err := utils.ParseJWTToken(strings.TrimPrefix(authHeader, "Bearer "), jwtSecret)
	if err != nil {
		return utils.TokenClaims{}, false
	}

	return claims, true
}
