package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags every request with an id, honoring one the
// gateway already assigned.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := c.Request().Header.Get(echo.HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Response().Header().Set(echo.HeaderXRequestID, reqID)
		c.Set("request_id", reqID)
		return next(c)
	}
}
