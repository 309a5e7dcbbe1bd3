package http //nolint:revive // directory-based package name, imported with alias

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/scheme-pay/internal/domain/entity"
	"github.com/Xausdorf/scheme-pay/internal/domain/repository"
	"github.com/Xausdorf/scheme-pay/internal/usecase/account"
	"github.com/Xausdorf/scheme-pay/internal/usecase/generateqr"
	"github.com/Xausdorf/scheme-pay/internal/usecase/payment"
)

type Handler struct {
	paymentUC    *payment.UseCase
	accountUC    *account.UseCase
	generateQRUC *generateqr.UseCase
	logger       *slog.Logger
}

func NewHandler(
	paymentUC *payment.UseCase,
	accountUC *account.UseCase,
	generateQRUC *generateqr.UseCase,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		paymentUC:    paymentUC,
		accountUC:    accountUC,
		generateQRUC: generateQRUC,
		logger:       logger,
	}
}

type PaymentRequest struct {
	DebtorAccountNumber string          `json:"debtor_account_number"`
	Amount              decimal.Decimal `json:"amount"`
	PaymentScheme       string          `json:"payment_scheme"`
}

type PaymentResponse struct {
	Success   bool   `json:"success"`
	Reason    string `json:"reason,omitempty"`
	PaymentID string `json:"payment_id,omitempty"`
}

type AccountResponse struct {
	AccountNumber  string          `json:"account_number"`
	Balance        decimal.Decimal `json:"balance"`
	Status         string          `json:"status"`
	AllowedSchemes []string        `json:"allowed_schemes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) HandlePayment(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.DebtorAccountNumber == "" {
		writeError(w, http.StatusBadRequest, "debtor_account_number is required")
		return
	}
	if err := entity.ValidateAmount(req.Amount); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	scheme, err := entity.ParsePaymentScheme(req.PaymentScheme)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment_scheme")
		return
	}

	res, err := h.paymentUC.MakePayment(r.Context(), payment.Request{
		DebtorAccountNumber: req.DebtorAccountNumber,
		Amount:              req.Amount,
		PaymentScheme:       scheme,
	})
	if err != nil {
		h.logger.Error("make payment failed", "account", req.DebtorAccountNumber, "scheme", scheme.String(), "error", err)
		writeError(w, http.StatusInternalServerError, "payment failed")
		return
	}

	resp := PaymentResponse{Success: res.Success, Reason: string(res.Reason)}
	if res.Success {
		resp.PaymentID = res.PaymentID.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "account_number")

	acc, err := h.accountUC.Get(r.Context(), accountNumber)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "account not found")
		return
	}
	if err != nil {
		h.logger.Error("get account failed", "account", accountNumber, "error", err)
		writeError(w, http.StatusInternalServerError, "account lookup failed")
		return
	}

	schemes := make([]string, 0, 3)
	for _, s := range acc.AllowedPaymentSchemes().Schemes() {
		schemes = append(schemes, s.String())
	}
	writeJSON(w, http.StatusOK, AccountResponse{
		AccountNumber:  acc.AccountNumber(),
		Balance:        acc.Balance(),
		Status:         acc.Status().String(),
		AllowedSchemes: schemes,
	})
}

func (h *Handler) HandleQR(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "account_number")

	amount, err := decimal.NewFromString(r.URL.Query().Get("amount"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount")
		return
	}
	if err := entity.ValidateAmount(amount); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	scheme, err := entity.ParsePaymentScheme(r.URL.Query().Get("scheme"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid scheme")
		return
	}

	png, err := h.generateQRUC.Execute(r.Context(), generateqr.Request{
		DebtorAccountNumber: accountNumber,
		Amount:              amount,
		PaymentScheme:       scheme,
	})
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "account not found")
		return
	case errors.Is(err, generateqr.ErrSchemeNotAllowed):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		h.logger.Error("qr generation failed", "account", accountNumber, "error", err)
		writeError(w, http.StatusInternalServerError, "qr generation failed")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}
