package api

import (
	"strconv"

	"sportshub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortWithBindError(c, err)
		return uuid.Nil, false
	}
	return id, true
}

// queryLimit ignores malformed values and falls back to the default page size.
func queryLimit(c *gin.Context) int {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	return limit
}
