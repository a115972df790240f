package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/adapter/storage"
	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/core/domain"
)

type AccountHandler struct {
	Store storage.AccountStore
}

// CreateAccountRequest defines what the caller sends us. The id is
// optional; a fresh UUID is assigned when it is omitted.
type CreateAccountRequest struct {
	ID      string          `json:"id"`
	Balance decimal.Decimal `json:"balance"`
}

func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	var req CreateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Warn("invalid account body", "error", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Balance.IsNegative() {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Initial balance must not be negative"})
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	account := &domain.Account{ID: req.ID, Balance: req.Balance}
	if err := h.Store.Create(c.Context(), account); err != nil {
		var dup *storage.DuplicateAccountError
		if errors.As(err, &dup) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": dup.Error()})
		}
		slog.Error("failed to create account", "error", err, "id", req.ID)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create account"})
	}

	slog.Info("✅ account created", "id", account.ID, "balance", account.Balance)
	return c.Status(http.StatusCreated).JSON(account)
}

func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	id := c.Params("id")

	account, err := h.Store.Get(c.Context(), id)
	if err != nil {
		slog.Error("failed to load account", "error", err, "id", id)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load account"})
	}
	if account == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Account not found"})
	}

	return c.JSON(account)
}
