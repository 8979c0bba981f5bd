package middleware

import (
	"net/http"
	"strings"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase"
	"coletaverde/pkg"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "coletaverde.user"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "You don't have permission to access this resource", http.StatusForbidden)
)

// Authenticate resolves the bearer token to a user of the directory and stores
// it in the request context. Requests without a valid token stop with 401.
func Authenticate(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil || user.ID == 0 {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		SetCurrentUser(c, user)
		c.Next()
	}
}

// RequireRoles must run after Authenticate.
func RequireRoles(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if !user.Role.In(roles...) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func SetCurrentUser(c *gin.Context, u entities.User) {
	c.Set(currentUserKey, u)
}

func CurrentUser(c *gin.Context) (entities.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return entities.User{}, false
	}
	u, ok := v.(entities.User)
	return u, ok
}

// CurrentActor is the authenticated user reduced to what authorization checks need.
func CurrentActor(c *gin.Context) entities.Actor {
	u, _ := CurrentUser(c)
	return entities.Actor{ID: u.ID, Role: u.Role}
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
