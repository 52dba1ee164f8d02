package middleware

import (
	"fmt"
	"log"
	"net/http"
	"propertyhub/pkg"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "user_role"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or malformed bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Admin access required", http.StatusForbidden)
)

// AdminRequired accepts HS256 tokens signed with secret whose role claim, or
// app_metadata.role, equals role. An empty secret disables the check.
func AdminRequired(secret, role string) gin.HandlerFunc {
	if strings.TrimSpace(secret) == "" {
		log.Printf("[auth][middleware] AUTH_JWT_SECRET is empty, admin routes are NOT protected")
		return func(c *gin.Context) { c.Next() }
	}
	key := []byte(secret)

	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			log.Printf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		if !hasRole(claims, role) {
			log.Printf("[auth][middleware] forbidden path=%s role=%v", c.FullPath(), claims["role"])
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Set(ContextUserID, sub)
		}
		c.Set(ContextRole, role)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// hasRole checks the top-level role claim first, then app_metadata.role.
func hasRole(claims jwt.MapClaims, role string) bool {
	if r, ok := claims["role"].(string); ok && r == role {
		return true
	}
	meta, ok := claims["app_metadata"].(map[string]interface{})
	if !ok {
		return false
	}
	r, ok := meta["role"].(string)
	return ok && r == role
}
