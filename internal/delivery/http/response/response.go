package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the JSON envelope of the few machine endpoints.
type Response struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`    // HTTP status code
	Message string `json:"message"` // User-friendly message
	Data    any    `json:"data,omitempty"`
}

// Success successful JSON response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Page renders an HTML page with the given status.
func Page(c echo.Context, statusCode int, name string, data any) error {
	return c.Render(statusCode, name, data)
}

// SeeOther redirects after a form post so a reload never resubmits it.
func SeeOther(c echo.Context, path string) error {
	return c.Redirect(http.StatusSeeOther, path)
}

// PNG writes an image that browsers may cache for a short while.
func PNG(c echo.Context, data []byte) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=300")
	return c.Blob(http.StatusOK, "image/png", data)
}
