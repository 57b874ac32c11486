package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"stablecoin/contexts/token-core/ledger-service/application"
	"stablecoin/contexts/token-core/ledger-service/domain/entities"
	domainerrors "stablecoin/contexts/token-core/ledger-service/domain/errors"
	"stablecoin/contexts/token-core/ledger-service/ports"
	httptransport "stablecoin/contexts/token-core/ledger-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateTokenHandler(
	ctx context.Context,
	caller string,
	req httptransport.CreateTokenRequest,
) (httptransport.StatusResponse, error) {
	maxSupply, err := entities.ParseAsset(req.MaxSupply)
	if err != nil {
		return httptransport.StatusResponse{}, domainerrors.ErrInvalidAmount
	}
	if err := h.Service.CreateToken(ctx, caller, ports.CreateTokenInput{
		Issuer:    req.Issuer,
		MaxSupply: maxSupply,
	}); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) IssueHandler(
	ctx context.Context,
	caller string,
	req httptransport.IssueRequest,
) (httptransport.StatusResponse, error) {
	quantity, err := entities.ParseAsset(req.Quantity)
	if err != nil {
		return httptransport.StatusResponse{}, domainerrors.ErrInvalidQuantity
	}
	if err := h.Service.Issue(ctx, caller, ports.IssueInput{
		To:       req.To,
		Quantity: quantity,
		Memo:     req.Memo,
	}); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) TransferHandler(
	ctx context.Context,
	caller string,
	req httptransport.TransferRequest,
) (httptransport.StatusResponse, error) {
	quantity, err := entities.ParseAsset(req.Quantity)
	if err != nil {
		return httptransport.StatusResponse{}, domainerrors.ErrInvalidQuantity
	}
	if err := h.Service.Transfer(ctx, caller, ports.TransferInput{
		From:     req.From,
		To:       req.To,
		Quantity: quantity,
		Memo:     req.Memo,
	}); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) BurnHandler(
	ctx context.Context,
	caller string,
	req httptransport.BurnRequest,
) (httptransport.StatusResponse, error) {
	quantity, err := entities.ParseAsset(req.Quantity)
	if err != nil {
		return httptransport.StatusResponse{}, domainerrors.ErrInvalidQuantity
	}
	if err := h.Service.Burn(ctx, caller, ports.BurnInput{
		Quantity: quantity,
		Memo:     req.Memo,
	}); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) PauseHandler(ctx context.Context, caller string) (httptransport.StatusResponse, error) {
	if err := h.Service.Pause(ctx, caller); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) UnpauseHandler(ctx context.Context, caller string) (httptransport.StatusResponse, error) {
	if err := h.Service.Unpause(ctx, caller); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) BlacklistHandler(
	ctx context.Context,
	caller string,
	req httptransport.BlacklistRequest,
) (httptransport.StatusResponse, error) {
	if err := h.Service.Blacklist(ctx, caller, req.Account, req.Memo); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) UnblacklistHandler(
	ctx context.Context,
	caller string,
	account string,
) (httptransport.StatusResponse, error) {
	if err := h.Service.Unblacklist(ctx, caller, account); err != nil {
		return httptransport.StatusResponse{}, err
	}
	return httptransport.StatusResponse{Status: "success"}, nil
}

func (h Handler) GetSupplyHandler(ctx context.Context, symbolCode string) (httptransport.SupplyResponse, error) {
	supply, err := h.Service.GetSupply(ctx, symbolCode)
	if err != nil {
		return httptransport.SupplyResponse{}, err
	}
	return httptransport.SupplyResponse{
		Status: "success",
		Data: httptransport.SupplyDTO{
			Symbol:    supply.Symbol.Code,
			Precision: supply.Symbol.Precision,
			Supply:    supply.String(),
		},
	}, nil
}

func (h Handler) GetBalanceHandler(
	ctx context.Context,
	account string,
	symbolCode string,
) (httptransport.BalanceResponse, error) {
	balance, err := h.Service.GetBalance(ctx, account, symbolCode)
	if err != nil {
		return httptransport.BalanceResponse{}, err
	}
	return httptransport.BalanceResponse{
		Status: "success",
		Data: httptransport.BalanceDTO{
			Account: account,
			Symbol:  balance.Symbol.Code,
			Balance: balance.String(),
		},
	}, nil
}

func (h Handler) ListBalancesHandler(ctx context.Context, account string) (httptransport.BalanceListResponse, error) {
	records, err := h.Service.ListBalances(ctx, account)
	if err != nil {
		return httptransport.BalanceListResponse{}, err
	}
	resp := httptransport.BalanceListResponse{
		Status: "success",
		Data:   make([]httptransport.BalanceDTO, 0, len(records)),
	}
	for _, record := range records {
		resp.Data = append(resp.Data, httptransport.BalanceDTO{
			Account: record.Account,
			Symbol:  record.Balance.Symbol.Code,
			Balance: record.Balance.String(),
		})
	}
	return resp, nil
}

func (h Handler) GetPolicyHandler(ctx context.Context) (httptransport.PolicyResponse, error) {
	paused, err := h.Service.Paused(ctx)
	if err != nil {
		return httptransport.PolicyResponse{}, err
	}
	return httptransport.PolicyResponse{
		Status: "success",
		Data:   httptransport.PolicyDTO{Paused: paused},
	}, nil
}

func (h Handler) ListBlacklistHandler(ctx context.Context) (httptransport.BlacklistListResponse, error) {
	entries, err := h.Service.ListBlacklist(ctx)
	if err != nil {
		return httptransport.BlacklistListResponse{}, err
	}
	resp := httptransport.BlacklistListResponse{
		Status: "success",
		Data:   make([]httptransport.BlacklistEntryDTO, 0, len(entries)),
	}
	for _, entry := range entries {
		resp.Data = append(resp.Data, httptransport.BlacklistEntryDTO{
			Account:   entry.Account,
			Memo:      entry.Memo,
			CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp, nil
}
