package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	ledgerservice "stablecoin/contexts/token-core/ledger-service"
	ledgererrors "stablecoin/contexts/token-core/ledger-service/domain/errors"
	ledgerhttp "stablecoin/contexts/token-core/ledger-service/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "stablecoin/internal/platform/httpserver/docs"
)

// callerHeader carries the authenticated principal attached by the fronting
// gateway. The ledger treats it as the invocation's caller.
const callerHeader = "X-Caller-Id"

type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string
	ledger ledgerservice.Module
}

func New(ledger ledgerservice.Module, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
		addr:   addr,
		ledger: ledger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routed mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/ledger/v1/tokens", s.handleCreateToken)
	s.mux.HandleFunc("POST /api/ledger/v1/issue", s.handleIssue)
	s.mux.HandleFunc("POST /api/ledger/v1/transfer", s.handleTransfer)
	s.mux.HandleFunc("POST /api/ledger/v1/burn", s.handleBurn)

	s.mux.HandleFunc("POST /api/ledger/v1/policy/pause", s.handlePause)
	s.mux.HandleFunc("POST /api/ledger/v1/policy/unpause", s.handleUnpause)
	s.mux.HandleFunc("GET /api/ledger/v1/policy", s.handleGetPolicy)
	s.mux.HandleFunc("POST /api/ledger/v1/policy/blacklist", s.handleBlacklist)
	s.mux.HandleFunc("DELETE /api/ledger/v1/policy/blacklist/{account}", s.handleUnblacklist)
	s.mux.HandleFunc("GET /api/ledger/v1/policy/blacklist", s.handleListBlacklist)

	s.mux.HandleFunc("GET /api/ledger/v1/tokens/{symbol}/supply", s.handleGetSupply)
	s.mux.HandleFunc("GET /api/ledger/v1/accounts/{account}/balances", s.handleListBalances)
	s.mux.HandleFunc("GET /api/ledger/v1/accounts/{account}/balances/{symbol}", s.handleGetBalance)
}

func (s *Server) handleCreateToken(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req ledgerhttp.CreateTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.ledger.Handler.CreateTokenHandler(r.Context(), caller, req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleIssue(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req ledgerhttp.IssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.ledger.Handler.IssueHandler(r.Context(), caller, req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req ledgerhttp.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.ledger.Handler.TransferHandler(r.Context(), caller, req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBurn(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req ledgerhttp.BurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.ledger.Handler.BurnHandler(r.Context(), caller, req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}
	resp, err := s.ledger.Handler.PauseHandler(r.Context(), caller)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUnpause(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}
	resp, err := s.ledger.Handler.UnpauseHandler(r.Context(), caller)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPolicy(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ledger.Handler.GetPolicyHandler(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBlacklist(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req ledgerhttp.BlacklistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.ledger.Handler.BlacklistHandler(r.Context(), caller, req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUnblacklist(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}
	resp, err := s.ledger.Handler.UnblacklistHandler(r.Context(), caller, r.PathValue("account"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListBlacklist(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ledger.Handler.ListBlacklistHandler(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetSupply(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ledger.Handler.GetSupplyHandler(r.Context(), r.PathValue("symbol"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListBalances(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ledger.Handler.ListBalancesHandler(r.Context(), r.PathValue("account"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetBalance(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ledger.Handler.GetBalanceHandler(r.Context(), r.PathValue("account"), r.PathValue("symbol"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) caller(w http.ResponseWriter, r *http.Request) (string, bool) {
	caller := r.Header.Get(callerHeader)
	if caller == "" {
		writeLedgerError(w, http.StatusUnauthorized, "missing_caller", "X-Caller-Id header is required")
		return "", false
	}
	return caller, true
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgererrors.ErrUnauthorized):
		writeLedgerError(w, http.StatusForbidden, "unauthorized", err.Error())
	case errors.Is(err, ledgererrors.ErrSymbolNotFound):
		writeLedgerError(w, http.StatusNotFound, "symbol_not_found", err.Error())
	case errors.Is(err, ledgererrors.ErrAccountNotFound):
		writeLedgerError(w, http.StatusNotFound, "account_not_found", err.Error())
	case errors.Is(err, ledgererrors.ErrBalanceNotFound):
		writeLedgerError(w, http.StatusNotFound, "balance_not_found", err.Error())
	case errors.Is(err, ledgererrors.ErrSymbolExists):
		writeLedgerError(w, http.StatusConflict, "symbol_exists", err.Error())
	case errors.Is(err, ledgererrors.ErrInvalidSymbol):
		writeLedgerError(w, http.StatusBadRequest, "invalid_symbol", err.Error())
	case errors.Is(err, ledgererrors.ErrInvalidAmount):
		writeLedgerError(w, http.StatusBadRequest, "invalid_amount", err.Error())
	case errors.Is(err, ledgererrors.ErrInvalidQuantity):
		writeLedgerError(w, http.StatusBadRequest, "invalid_quantity", err.Error())
	case errors.Is(err, ledgererrors.ErrPrecisionMismatch):
		writeLedgerError(w, http.StatusBadRequest, "precision_mismatch", err.Error())
	case errors.Is(err, ledgererrors.ErrMemoTooLong):
		writeLedgerError(w, http.StatusBadRequest, "memo_too_long", err.Error())
	case errors.Is(err, ledgererrors.ErrSelfTransfer):
		writeLedgerError(w, http.StatusBadRequest, "self_transfer", err.Error())
	case errors.Is(err, ledgererrors.ErrInsufficientBalance):
		writeLedgerError(w, http.StatusConflict, "insufficient_balance", err.Error())
	case errors.Is(err, ledgererrors.ErrInsufficientSupply):
		writeLedgerError(w, http.StatusConflict, "insufficient_supply", err.Error())
	case errors.Is(err, ledgererrors.ErrExceedsMaxSupply):
		writeLedgerError(w, http.StatusConflict, "exceeds_max_supply", err.Error())
	case errors.Is(err, ledgererrors.ErrPaused):
		writeLedgerError(w, http.StatusLocked, "ledger_paused", err.Error())
	case errors.Is(err, ledgererrors.ErrSenderBlacklisted):
		writeLedgerError(w, http.StatusForbidden, "sender_blacklisted", err.Error())
	case errors.Is(err, ledgererrors.ErrRecipientBlacklisted):
		writeLedgerError(w, http.StatusForbidden, "recipient_blacklisted", err.Error())
	case errors.Is(err, ledgererrors.ErrAlreadyBlacklisted):
		writeLedgerError(w, http.StatusConflict, "already_blacklisted", err.Error())
	case errors.Is(err, ledgererrors.ErrNotBlacklisted):
		writeLedgerError(w, http.StatusConflict, "not_blacklisted", err.Error())
	default:
		s.logger.Error("unhandled ledger error",
			"event", "http_unhandled_error",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writeLedgerError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeLedgerError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, ledgerhttp.ErrorResponse{Code: code, Message: message})
}
