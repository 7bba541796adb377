package handlers

import "github.com/labstack/echo/v4"

// userIDFromContext returns the internal user ID stored by the auth middleware
func userIDFromContext(c echo.Context) string {
	userID, _ := c.Get("userID").(string)
	return userID
}
