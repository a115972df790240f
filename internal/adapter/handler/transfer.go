package handler

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/core/domain"
	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/core/transfer"
)

type TransferHandler struct {
	Service *transfer.Service
}

// AmountTransfer hands the request to the orchestrator and returns its
// outcome string. Every attempt answers 200 with exactly one outcome; the
// outcome text, not the status code, carries success or failure.
func (h *TransferHandler) AmountTransfer(c *fiber.Ctx) error {
	var req domain.TransferRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Warn("invalid transfer body", "error", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	slog.Info("transfer requested", "from", req.AccountFrom, "to", req.AccountTo)

	result := h.Service.TransferAmount(c.Context(), req.AccountFrom, req.AccountTo, req.Amount)
	return c.JSON(fiber.Map{"result": result})
}
