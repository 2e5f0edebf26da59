package middleware

import (
	"errors"
	"eventos_xpto/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const principalContextKey = "auth.principal"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "No token provided", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient permissions", http.StatusForbidden)
)

// Principal is the authenticated caller extracted from the bearer token.
type Principal struct {
	Subject string
	Role    string
}

// HasRole reports whether the principal carries the given role.
func (p Principal) HasRole(role string) bool {
	return p.Role == role
}

// Authenticate validates the Authorization bearer token with the given HMAC
// secret and stores the resulting Principal in the gin context. Only HMAC
// signing methods are accepted.
func Authenticate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		principal := Principal{}
		if sub, ok := claims["sub"].(string); ok {
			principal.Subject = sub
		}
		if role, ok := claims["role"].(string); ok {
			principal.Role = role
		}

		c.Set(principalContextKey, principal)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated principal has the role.
// It must run after Authenticate.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok || !principal.HasRole(role) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// PrincipalFrom returns the Principal stored by Authenticate, if any.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalContextKey)
	if !ok {
		return Principal{}, false
	}
	principal, ok := v.(Principal)
	return principal, ok
}
