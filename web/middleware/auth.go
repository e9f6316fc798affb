package middleware

import (
	"net/http"

	"tbs-api/web/entity"
	"tbs-api/web/token"

	"github.com/gin-gonic/gin"
)

// UserIdKey is the gin context key under which TokenAuth stores the
// verified user id for downstream handlers.
const UserIdKey = "userId"

// TokenAuth rejects requests without a valid bearer token before the
// handler runs. On success the verified user id is stored in the context.
func TokenAuth(tm *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := token.FromHeader(c.GetHeader("Authorization"))
		if err != nil {
			unauthorized(c, err)
			return
		}
		userId, err := tm.Verify(tokenStr)
		if err != nil {
			unauthorized(c, err)
			return
		}
		c.Set(UserIdKey, userId)
		c.Next()
	}
}

func unauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, entity.ApiError{
		Code:    http.StatusUnauthorized,
		Status:  http.StatusText(http.StatusUnauthorized),
		Message: err.Error(),
	})
}
