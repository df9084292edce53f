package middleware

import (
	"errors"
	"strings"

	autherrors "go-leave/internal/auth/errors"
	"go-leave/internal/auth/token"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware accepts a bearer token or the access_token cookie and exposes
// user_id, employee_id and role on the gin context.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenNotFound.HTTPStatus, autherrors.ErrTokenNotFound.Code, autherrors.ErrTokenNotFound.Message)
			return
		}

		claims, err := tokens.Parse(tokenString, token.TypeAccess)
		if err != nil {
			errObj := autherrors.ErrInvalidToken
			if errors.Is(err, autherrors.ErrTokenExpired) {
				errObj = autherrors.ErrTokenExpired
			}
			abortWith(c, errObj.HTTPStatus, errObj.Code, errObj.Message)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("employee_id", claims.EmployeeID)
		c.Set("role", claims.Role)

		ctx := contextutil.WithUserID(c.Request.Context(), claims.UserID)
		ctx = contextutil.WithEmployeeID(ctx, claims.EmployeeID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortWith(c *gin.Context, status int, code, message string) {
	response.Error(c, status, code, message, nil)
	c.Abort()
}
