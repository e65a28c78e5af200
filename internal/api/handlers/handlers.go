package handlers

import (
	"errors"
	"time"

	"money-manager/internal/dto"
	"money-manager/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Response envelope shared by every endpoint.

func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": message, "data": data})
}

func okMessage(c *fiber.Ctx, message string, data interface{}) error {
	resp := fiber.Map{"success": true, "message": message}
	if data != nil {
		resp["data"] = data
	}
	return c.JSON(resp)
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}

// failValidation lists every violated field of the request.
func failValidation(c *fiber.Ctx, verr *dto.ValidationError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed",
		"errors":  verr.Fields,
	})
}

func validationError(err error) (*dto.ValidationError, bool) {
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

// parseDateRange reads optional startDate/endDate query params; a date-only
// endDate is forced to the end of that day so the range stays end-inclusive.
func parseDateRange(c *fiber.Ctx) (start, end *time.Time, err error) {
	if s := c.Query("startDate"); s != "" {
		t, perr := dto.ParseDate(s)
		if perr != nil {
			return nil, nil, perr
		}
		start = &t
	}
	if s := c.Query("endDate"); s != "" {
		t, perr := dto.ParseEndDate(s)
		if perr != nil {
			return nil, nil, perr
		}
		end = &t
	}
	return start, end, nil
}
