package middleware

import (
	"errors"
	"net/http"
	"strings"

	"quizcafe/internal/domain"
	"quizcafe/internal/dto"
	"quizcafe/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorMessages decides the message of the error envelope per status.
type ErrorMessages struct {
	Defaults map[int]string
	// PassThrough sends the message of a 4xx domain error instead of the
	// status default.
	PassThrough bool
}

// TriviaMessages answers every failure with a fixed message per status.
var TriviaMessages = ErrorMessages{
	Defaults: map[int]string{
		http.StatusBadRequest:          "invalid syntax",
		http.StatusNotFound:            "Resource not found",
		http.StatusMethodNotAllowed:    "method not allowed",
		http.StatusUnprocessableEntity: "request cannot be processed",
		http.StatusTooManyRequests:     "too many requests",
		http.StatusInternalServerError: "internal server error",
	},
}

// CoffeeMessages carries the domain error message to the client.
var CoffeeMessages = ErrorMessages{
	Defaults: map[int]string{
		http.StatusBadRequest:          "bad request",
		http.StatusNotFound:            "resource not found",
		http.StatusMethodNotAllowed:    "method not allowed",
		http.StatusUnprocessableEntity: "unprocessable",
		http.StatusTooManyRequests:     "too many requests",
		http.StatusInternalServerError: "internal server error",
	},
	PassThrough: true,
}

func (m ErrorMessages) forStatus(status int) string {
	if msg, ok := m.Defaults[status]; ok {
		return msg
	}
	return strings.ToLower(http.StatusText(status))
}

// ErrorHandler is a centralized error handling middleware. It writes the
// {success, error, message} envelope for every error a handler returns.
func ErrorHandler(messages ErrorMessages) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		var authErr *domain.AuthError
		if errors.As(err, &authErr) {
			log.Warn("Authorization failed",
				zap.String("path", c.Path()),
				zap.String("code", authErr.Code),
				zap.Int("status", authErr.Status),
			)
			return writeError(c, authErr.Status, authErr.Description)
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			status := domainErr.Status()
			fields := []zap.Field{
				zap.String("path", c.Path()),
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", status),
				zap.Error(domainErr.Err),
			}
			if status >= http.StatusInternalServerError {
				log.Error("Domain error occurred", fields...)
				return writeError(c, status, messages.forStatus(status))
			}

			log.Warn("Domain error occurred", fields...)
			if messages.PassThrough && domainErr.Message != "" {
				return writeError(c, status, domainErr.Message)
			}
			return writeError(c, status, messages.forStatus(status))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.String("path", c.Path()),
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return writeError(c, fiberErr.Code, messages.forStatus(fiberErr.Code))
		}

		log.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return writeError(c, http.StatusInternalServerError, messages.forStatus(http.StatusInternalServerError))
	}
}

func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// handleChainError renders err through the app's error handler so the
// response status is final when the caller inspects it.
func handleChainError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}
	if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
	return nil
}
