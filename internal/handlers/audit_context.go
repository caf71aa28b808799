package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-manager/internal/middleware"
)

// auditActor pulls the request correlation ID and the authenticated
// user out of the gin context, so audit events record who did what
// under which request. Both are empty on unauthenticated paths.
func auditActor(c *gin.Context) (requestID string, userID *uint) {
	requestID = middleware.RequestIDFrom(c)

	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			userID = &id
		}
	}

	return requestID, userID
}
