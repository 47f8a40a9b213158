// Package handlers contains the HTTP handlers binding cookies, params, and
// JSON bodies to the ledger service.
package handlers

import (
	"errors"
	"log"

	"moneta/internal/config"
	"moneta/internal/middleware"
	"moneta/internal/services/ledger"
	"moneta/internal/utils/response"
	"moneta/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Session cookies live for seven days; expiry is client-side only, the store
// never checks token age.
const sessionMaxAge = 7 * 24 * 60 * 60

type TransactionHandler struct {
	service ledger.Service
}

func NewTransactionHandler(service ledger.Service) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// Create persists a new transaction, minting a session cookie when the
// request carries none. Responds 201 with an empty body.
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req ledger.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	sessionID := c.Cookies(middleware.SessionCookie)
	minted := false
	if sessionID == "" {
		sessionID = uuid.NewString()
		minted = true
	}

	if err := h.service.Create(c.Context(), sessionID, req); err != nil {
		var verr *validation.Errors
		if errors.As(err, &verr) {
			return response.BadRequest(c, verr.Error())
		}
		log.Printf("Create transaction error: %v", err)
		return response.ServerError(c, "Failed to create transaction")
	}

	if minted {
		c.Cookie(&fiber.Cookie{
			Name:   middleware.SessionCookie,
			Value:  sessionID,
			Path:   "/",
			MaxAge: sessionMaxAge,
			Secure: config.IsProduction(),
		})
	}

	return c.Status(fiber.StatusCreated).Send(nil)
}

// List returns every transaction belonging to the caller's session.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	sessionID := c.Locals(middleware.SessionKey).(string)

	transactions, err := h.service.List(c.Context(), sessionID)
	if err != nil {
		log.Printf("List transactions error: %v", err)
		return response.ServerError(c, "Failed to retrieve transactions")
	}

	return c.JSON(fiber.Map{
		"transactions": transactions,
	})
}

// GetByID returns a single transaction, or null when the id does not match a
// row in the caller's session. Other sessions' rows are reported the same as
// nonexistent ones.
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	sessionID := c.Locals(middleware.SessionKey).(string)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid transaction id")
	}

	tx, err := h.service.Get(c.Context(), sessionID, id)
	if err != nil {
		log.Printf("Get transaction error: %v", err)
		return response.ServerError(c, "Failed to retrieve transaction")
	}

	return c.JSON(fiber.Map{
		"transaction": tx,
	})
}

// Summary returns the session's net balance, zero for an empty session.
func (h *TransactionHandler) Summary(c *fiber.Ctx) error {
	sessionID := c.Locals(middleware.SessionKey).(string)

	summary, err := h.service.Summary(c.Context(), sessionID)
	if err != nil {
		log.Printf("Summary error: %v", err)
		return response.ServerError(c, "Failed to summarize transactions")
	}

	return c.JSON(fiber.Map{
		"summary": summary,
	})
}
