package http

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-atm-ledger/internal/app/core/usecase"
)

// MessageTryAgain 儲存層故障時回給使用者的訊息，不包含原因
const MessageTryAgain = "service temporarily unavailable, please try again"

// Tokens 簽發與驗證 session token
type Tokens interface {
	Issue(sess domain.Session) (string, error)
	Parse(token string) (domain.Session, error)
}

type TellerHandler struct {
	Core   *usecase.CoreUseCase
	Tokens Tokens
	// Health 檢查儲存層是否可用，nil 代表永遠健康 (記憶體帳本)
	Health func(ctx context.Context) error
}

// NewApp 建立 fiber app 並註冊所有路由
func NewApp(h *TellerHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/healthz", h.Healthz)

	api := app.Group("/v1")

	// Public
	api.Post("/sessions", h.Login)

	// Protected
	private := api.Use(Protected(h.Tokens))
	private.Get("/balance", h.GetBalance)
	private.Post("/deposit", h.Deposit)
	private.Post("/withdraw", h.Withdraw)
	private.Put("/pin", h.ChangePIN)
	private.Get("/history", h.GetHistory)
	private.Get("/history/export", h.ExportHistory)

	return app
}

type LoginRequest struct {
	AccountNumber string `json:"account_number"`
	PIN           string `json:"pin"`
}

type AmountRequest struct {
	Amount string `json:"amount"`
}

type ChangePINRequest struct {
	NewPIN     string `json:"new_pin"`
	ConfirmPIN string `json:"confirm_pin"`
}

type EntryResponse struct {
	Sequence     uint64 `json:"sequence"`
	RefID        string `json:"ref_id"`
	Kind         string `json:"kind"`
	Amount       string `json:"amount"`
	BalanceAfter string `json:"balance_after"`
	CreatedAt    int64  `json:"created_at"`
}

// Healthz 儲存層不可用時回 503，不揭露原因
func (h *TellerHandler) Healthz(c *fiber.Ctx) error {
	if h.Health != nil {
		if err := h.Health(c.UserContext()); err != nil {
			slog.WarnContext(c.UserContext(), "health check failed", "error", err)
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *TellerHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	sess, err := h.Core.Login(c.UserContext(), req.AccountNumber, req.PIN)
	if err != nil {
		return respondError(c, err)
	}
	token, err := h.Tokens.Issue(sess)
	if err != nil {
		slog.Error("Failed to issue session token", "error", err, "account", sess.AccountNumber)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": MessageTryAgain})
	}

	resp := fiber.Map{"token": token}
	if !sess.ExpiresAt.IsZero() {
		resp["expires_at"] = sess.ExpiresAt.Unix()
	}
	return c.Status(http.StatusCreated).JSON(resp)
}

func (h *TellerHandler) GetBalance(c *fiber.Ctx) error {
	balance, err := h.Core.GetBalance(c.UserContext(), sessionOf(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"balance": balance.String()})
}

func (h *TellerHandler) Deposit(c *fiber.Ctx) error {
	amount, err := parseAmount(c)
	if err != nil {
		return respondError(c, err)
	}
	balance, err := h.Core.Deposit(c.UserContext(), sessionOf(c), amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"balance": balance.String()})
}

// Withdraw 餘額不足回 200 與 success=false
func (h *TellerHandler) Withdraw(c *fiber.Ctx) error {
	amount, err := parseAmount(c)
	if err != nil {
		return respondError(c, err)
	}
	ok, balance, err := h.Core.Withdraw(c.UserContext(), sessionOf(c), amount)
	if err != nil {
		return respondError(c, err)
	}
	resp := fiber.Map{"success": ok, "balance": balance.String()}
	if !ok {
		resp["message"] = "insufficient balance"
	}
	return c.JSON(resp)
}

func (h *TellerHandler) ChangePIN(c *fiber.Ctx) error {
	var req ChangePINRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := domain.ValidatePINChange(req.NewPIN, req.ConfirmPIN); err != nil {
		return respondError(c, err)
	}
	if err := h.Core.ChangePIN(c.UserContext(), sessionOf(c), req.NewPIN); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *TellerHandler) GetHistory(c *fiber.Ctx) error {
	query, err := historyQuery(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	entries, err := h.Core.GetHistory(c.UserContext(), sessionOf(c), query)
	if err != nil {
		return respondError(c, err)
	}

	resp := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, EntryResponse{
			Sequence:     e.Sequence,
			RefID:        e.RefID.String(),
			Kind:         e.Kind.String(),
			Amount:       e.Amount.String(),
			BalanceAfter: e.BalanceAfter.String(),
			CreatedAt:    e.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"entries": resp})
}

// ExportHistory 以純文字回傳，格式與 transaction_history.txt 相同
func (h *TellerHandler) ExportHistory(c *fiber.Ctx) error {
	query, err := historyQuery(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	var buf bytes.Buffer
	if _, err := h.Core.ExportHistory(c.UserContext(), sessionOf(c), query, &buf); err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transaction_history.txt"`)
	return c.Send(buf.Bytes())
}

func parseAmount(c *fiber.Ctx) (domain.Amount, error) {
	var req AmountRequest
	if err := c.BodyParser(&req); err != nil {
		return 0, domain.ErrInvalidAmount
	}
	return domain.ParseAmount(req.Amount)
}

func historyQuery(c *fiber.Ctx) (domain.HistoryQuery, error) {
	kind, err := domain.ParseEntryKind(c.Query("kind"))
	if err != nil {
		return domain.HistoryQuery{}, err
	}
	return domain.HistoryQuery{Kind: kind, Limit: c.QueryInt("limit", 0)}, nil
}

// respondError 將 domain 錯誤轉為 HTTP 狀態碼，儲存層錯誤只回通用訊息
func respondError(c *fiber.Ctx, err error) error {
	var code int
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidPIN),
		errors.Is(err, domain.ErrPINMismatch):
		code = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidSession):
		code = http.StatusUnauthorized
	case errors.Is(err, domain.ErrAccountLocked):
		code = http.StatusLocked
	case errors.Is(err, domain.ErrAccountNotFound):
		code = http.StatusNotFound
	default:
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"error": MessageTryAgain})
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

const sessionLocal = "session"

func sessionOf(c *fiber.Ctx) domain.Session {
	sess, _ := c.Locals(sessionLocal).(domain.Session)
	return sess
}

// Protected 驗證 Authorization: Bearer <token>，把 Session 存進 Locals
func Protected(tokens Tokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Missing session token"})
		}

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid Header Format"})
		}

		sess, err := tokens.Parse(token)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": domain.ErrInvalidSession.Error()})
		}

		c.Locals(sessionLocal, sess)
		return c.Next()
	}
}
