package middleware

import "github.com/gin-gonic/gin"

// organizerIDKey is the key used to store the authenticated organizer's subject in the request context.
const organizerIDKey = contextKey("organizerID")

// GetOrganizerIDFromContext retrieves the authenticated organizer subject.
// It returns the subject and a boolean indicating if it was found.
func GetOrganizerIDFromContext(c *gin.Context) (string, bool) {
	id, ok := c.Request.Context().Value(organizerIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
