package utils

import "github.com/gofiber/fiber/v2"

// SuccessResponse is the body returned by mutating endpoints.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SendJSON writes data as the response body with the given status.
func SendJSON(c *fiber.Ctx, status int, data interface{}) error {
	if status == 0 {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(data)
}

// SendSuccess writes {"success": true}.
func SendSuccess(c *fiber.Ctx) error {
	return SendJSON(c, fiber.StatusOK, SuccessResponse{Success: true})
}

// SendError writes {"error": message} with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(ErrorResponse{Error: message})
}
