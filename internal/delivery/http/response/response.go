package response

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/culturepay/pkg/failure"
)

type Data[T any] struct {
	Data T `json:"data,omitempty"`
}

type Error struct {
	Error   *string `json:"error,omitempty"`
	Details string  `json:"details,omitempty"`
}

// Unsuccessful is the error body of the payment verification endpoint.
type Unsuccessful struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

// WithJSON wraps the payload in a data envelope.
func WithJSON(ctx *fiber.Ctx, code int, payload interface{}) error {
	return response(ctx, code, Data[any]{Data: payload})
}

// WithPayload writes the payload as is. Gateway clients expect unwrapped bodies.
func WithPayload(ctx *fiber.Ctx, code int, payload interface{}) error {
	return response(ctx, code, payload)
}

func WithMessage(ctx *fiber.Ctx, code int, message string) error {
	return response(ctx, code, Message{Message: message})
}

func WithError(ctx *fiber.Ctx, err error) error {
	code := failure.GetCode(err)
	errMsg := err.Error()

	return response(ctx, code, Error{Error: &errMsg, Details: failure.GetDetails(err)})
}

func WithUnsuccessful(ctx *fiber.Ctx, err error) error {
	return response(ctx, failure.GetCode(err), Unsuccessful{
		Success: false,
		Error:   err.Error(),
		Details: failure.GetDetails(err),
	})
}

func response(ctx *fiber.Ctx, code int, payload interface{}) error {
	if payload == nil {
		return ctx.SendStatus(code)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)

	if err := ctx.Status(code).JSON(payload); err != nil {
		return err
	}

	return nil
}
