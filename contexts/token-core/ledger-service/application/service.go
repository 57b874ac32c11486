package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"stablecoin/contexts/token-core/ledger-service/domain/entities"
	domainerrors "stablecoin/contexts/token-core/ledger-service/domain/errors"
	"stablecoin/contexts/token-core/ledger-service/ports"
	"stablecoin/internal/shared/events"

	"github.com/google/uuid"
)

const DefaultMemoLimit = 256

// Service implements the token ledger: issuance, transfer, burning, and the
// pause/blacklist policy gating value movement. Every mutating operation
// validates inside one atomic store unit, so a rejected operation leaves no
// partial state behind.
type Service struct {
	Store     ports.Store
	Authority ports.Authority
	Accounts  ports.AccountDirectory
	Notifier  ports.Notifier
	Clock     ports.Clock

	// Owner holds contract-owner authority: token creation, pause switch,
	// blacklist edits.
	Owner string

	// MemoLimit bounds memo bytes; zero means DefaultMemoLimit.
	MemoLimit int

	// RaiseCeilingOnIssue lets an issue that would push supply past
	// max_supply lift the ceiling to match instead of rejecting.
	RaiseCeilingOnIssue bool

	// ShrinkCeilingOnBurn lowers max_supply in lockstep with supply when
	// burning.
	ShrinkCeilingOnBurn bool

	Logger *slog.Logger
}

type pendingNotification struct {
	account string
	event   events.Envelope
}

// CreateToken registers a new symbol with zero supply. Only the contract
// owner may create tokens.
func (s Service) CreateToken(ctx context.Context, caller string, input ports.CreateTokenInput) error {
	if err := s.requireAuthority(ctx, caller, s.Owner); err != nil {
		return err
	}

	symbol := input.MaxSupply.Symbol
	if !symbol.Valid() {
		return domainerrors.ErrInvalidSymbol
	}
	if !input.MaxSupply.Valid() || !input.MaxSupply.Positive() {
		return domainerrors.ErrInvalidAmount
	}

	issuer := strings.TrimSpace(input.Issuer)
	err := s.Store.Atomically(ctx, func(tx ports.StoreTx) error {
		_, exists, err := tx.GetSupply(ctx, symbol.Code)
		if err != nil {
			return err
		}
		if exists {
			return domainerrors.ErrSymbolExists
		}
		return tx.CreateSupply(ctx, entities.SupplyRecord{
			Supply:    entities.ZeroAsset(symbol),
			MaxSupply: input.MaxSupply,
			Issuer:    issuer,
		})
	})
	if err != nil {
		return err
	}

	s.logger().Info("token created",
		"event", "ledger_token_created",
		"module", "token-core/ledger-service",
		"layer", "application",
		"symbol", symbol.Code,
		"issuer", issuer,
		"max_supply", input.MaxSupply.String(),
	)
	return nil
}

// Issue mints quantity to the issuer's balance and raises supply. When the
// recipient is not the issuer, an internal transfer issuer->to runs inside
// the same atomic unit under full transfer invariants.
func (s Service) Issue(ctx context.Context, caller string, input ports.IssueInput) error {
	quantity := input.Quantity
	if !quantity.Symbol.Valid() {
		return domainerrors.ErrInvalidSymbol
	}
	if err := s.checkMemo(input.Memo); err != nil {
		return err
	}

	to := strings.TrimSpace(input.To)
	var notes []pendingNotification
	err := s.Store.Atomically(ctx, func(tx ports.StoreTx) error {
		record, exists, err := tx.GetSupply(ctx, quantity.Symbol.Code)
		if err != nil {
			return err
		}
		if !exists {
			return domainerrors.ErrSymbolNotFound
		}
		if err := s.requireAuthority(ctx, caller, record.Issuer); err != nil {
			return err
		}
		if !quantity.Valid() || !quantity.Positive() {
			return domainerrors.ErrInvalidQuantity
		}
		if !quantity.Symbol.Equal(record.Supply.Symbol) {
			return domainerrors.ErrPrecisionMismatch
		}

		newSupply, err := record.Supply.Add(quantity)
		if err != nil {
			return domainerrors.ErrInvalidQuantity
		}
		if newSupply.Amount > record.MaxSupply.Amount {
			if !s.RaiseCeilingOnIssue {
				return domainerrors.ErrExceedsMaxSupply
			}
			record.MaxSupply = newSupply
		}
		record.Supply = newSupply
		if err := tx.UpdateSupply(ctx, record); err != nil {
			return err
		}
		if err := s.addBalance(ctx, tx, record.Issuer, quantity, record.Issuer); err != nil {
			return err
		}

		if to != record.Issuer {
			// Forward to the recipient as a sub-operation under the full
			// transfer invariants, pause and blacklist included.
			notes, err = s.applyTransferChecked(ctx, tx, caller, record, true, record.Issuer, to, quantity, input.Memo)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.dispatch(ctx, notes)
	s.logger().Info("tokens issued",
		"event", "ledger_tokens_issued",
		"module", "token-core/ledger-service",
		"layer", "application",
		"symbol", quantity.Symbol.Code,
		"to", to,
		"quantity", quantity.String(),
	)
	return nil
}

// Transfer moves quantity between two accounts. Preconditions are checked
// in a fixed order so the earliest detectable failure wins: pause, sender
// blacklist, recipient blacklist, self-transfer, sender authority,
// recipient existence, quantity, precision, memo.
func (s Service) Transfer(ctx context.Context, caller string, input ports.TransferInput) error {
	from := strings.TrimSpace(input.From)
	to := strings.TrimSpace(input.To)

	var notes []pendingNotification
	err := s.Store.Atomically(ctx, func(tx ports.StoreTx) error {
		record, exists, err := tx.GetSupply(ctx, input.Quantity.Symbol.Code)
		if err != nil {
			return err
		}
		var inner error
		notes, inner = s.applyTransferChecked(ctx, tx, caller, record, exists, from, to, input.Quantity, input.Memo)
		return inner
	})
	if err != nil {
		return err
	}

	s.dispatch(ctx, notes)
	s.logger().Info("tokens transferred",
		"event", "ledger_tokens_transferred",
		"module", "token-core/ledger-service",
		"layer", "application",
		"symbol", input.Quantity.Symbol.Code,
		"from", from,
		"to", to,
		"quantity", input.Quantity.String(),
	)
	return nil
}

// Burn destroys quantity from the issuer's balance and lowers supply. Only
// the registered issuer may burn.
func (s Service) Burn(ctx context.Context, caller string, input ports.BurnInput) error {
	quantity := input.Quantity
	if !quantity.Symbol.Valid() {
		return domainerrors.ErrInvalidSymbol
	}
	if err := s.checkMemo(input.Memo); err != nil {
		return err
	}

	var issuer string
	err := s.Store.Atomically(ctx, func(tx ports.StoreTx) error {
		record, exists, err := tx.GetSupply(ctx, quantity.Symbol.Code)
		if err != nil {
			return err
		}
		if !exists {
			return domainerrors.ErrSymbolNotFound
		}
		if err := s.requireAuthority(ctx, caller, record.Issuer); err != nil {
			return err
		}
		if !quantity.Valid() || !quantity.Positive() {
			return domainerrors.ErrInvalidQuantity
		}
		if !quantity.Symbol.Equal(record.Supply.Symbol) {
			return domainerrors.ErrPrecisionMismatch
		}
		if quantity.Amount > record.Supply.Amount {
			return domainerrors.ErrInsufficientSupply
		}

		record.Supply, err = record.Supply.Sub(quantity)
		if err != nil {
			return domainerrors.ErrInvalidQuantity
		}
		if s.ShrinkCeilingOnBurn {
			record.MaxSupply, err = record.MaxSupply.Sub(quantity)
			if err != nil {
				return domainerrors.ErrInvalidQuantity
			}
		}
		if err := tx.UpdateSupply(ctx, record); err != nil {
			return err
		}
		issuer = record.Issuer
		return s.subBalance(ctx, tx, record.Issuer, quantity)
	})
	if err != nil {
		return err
	}

	s.logger().Info("tokens burned",
		"event", "ledger_tokens_burned",
		"module", "token-core/ledger-service",
		"layer", "application",
		"symbol", quantity.Symbol.Code,
		"issuer", issuer,
		"quantity", quantity.String(),
	)
	return nil
}

// Pause freezes all transfers. Idempotent: pausing a paused ledger is a
// no-op success.
func (s Service) Pause(ctx context.Context, caller string) error {
	return s.setPaused(ctx, caller, true)
}

// Unpause re-enables transfers. Idempotent.
func (s Service) Unpause(ctx context.Context, caller string) error {
	return s.setPaused(ctx, caller, false)
}

func (s Service) setPaused(ctx context.Context, caller string, paused bool) error {
	if err := s.requireAuthority(ctx, caller, s.Owner); err != nil {
		return err
	}
	err := s.Store.Atomically(ctx, func(tx ports.StoreTx) error {
		return tx.SetPauseState(ctx, entities.PauseState{Paused: paused})
	})
	if err != nil {
		return err
	}

	s.logger().Info("pause state changed",
		"event", "ledger_pause_state_changed",
		"module", "token-core/ledger-service",
		"layer", "application",
		"paused", paused,
	)
	return nil
}

// Blacklist bars an account from sending or receiving transfers. Fails if
// the account is already listed.
func (s Service) Blacklist(ctx context.Context, caller string, account string, memo string) error {
	if err := s.requireAuthority(ctx, caller, s.Owner); err != nil {
		return err
	}
	if err := s.checkMemo(memo); err != nil {
		return err
	}

	account = strings.TrimSpace(account)
	err := s.Store.Atomically(ctx, func(tx ports.StoreTx) error {
		_, exists, err := tx.GetBlacklistEntry(ctx, account)
		if err != nil {
			return err
		}
		if exists {
			return domainerrors.ErrAlreadyBlacklisted
		}
		return tx.CreateBlacklistEntry(ctx, entities.BlacklistEntry{
			Account:   account,
			Memo:      memo,
			CreatedAt: s.now(),
		})
	})
	if err != nil {
		return err
	}

	s.logger().Info("account blacklisted",
		"event", "ledger_account_blacklisted",
		"module", "token-core/ledger-service",
		"layer", "application",
		"account", account,
	)
	return nil
}

// Unblacklist removes an account from the blacklist. Fails if the account
// is not listed.
func (s Service) Unblacklist(ctx context.Context, caller string, account string) error {
	if err := s.requireAuthority(ctx, caller, s.Owner); err != nil {
		return err
	}

	account = strings.TrimSpace(account)
	err := s.Store.Atomically(ctx, func(tx ports.StoreTx) error {
		_, exists, err := tx.GetBlacklistEntry(ctx, account)
		if err != nil {
			return err
		}
		if !exists {
			return domainerrors.ErrNotBlacklisted
		}
		return tx.DeleteBlacklistEntry(ctx, account)
	})
	if err != nil {
		return err
	}

	s.logger().Info("account unblacklisted",
		"event", "ledger_account_unblacklisted",
		"module", "token-core/ledger-service",
		"layer", "application",
		"account", account,
	)
	return nil
}

// GetSupply returns the circulating supply of a registered symbol.
func (s Service) GetSupply(ctx context.Context, symbolCode string) (entities.Asset, error) {
	record, exists, err := s.Store.GetSupply(ctx, strings.TrimSpace(symbolCode))
	if err != nil {
		return entities.Asset{}, err
	}
	if !exists {
		return entities.Asset{}, domainerrors.ErrSymbolNotFound
	}
	return record.Supply, nil
}

// GetBalance returns an account's balance for a registered symbol. An
// absent balance record and a zero balance are the same state: both read
// as a zero asset of the registry's precision.
func (s Service) GetBalance(ctx context.Context, account string, symbolCode string) (entities.Asset, error) {
	symbolCode = strings.TrimSpace(symbolCode)
	record, exists, err := s.Store.GetSupply(ctx, symbolCode)
	if err != nil {
		return entities.Asset{}, err
	}
	if !exists {
		return entities.Asset{}, domainerrors.ErrSymbolNotFound
	}

	balance, found, err := s.Store.GetBalance(ctx, strings.TrimSpace(account), symbolCode)
	if err != nil {
		return entities.Asset{}, err
	}
	if !found {
		return entities.ZeroAsset(record.Supply.Symbol), nil
	}
	return balance.Balance, nil
}

// ListBalances returns every nonzero balance an account holds.
func (s Service) ListBalances(ctx context.Context, account string) ([]entities.BalanceRecord, error) {
	return s.Store.ListBalancesByAccount(ctx, strings.TrimSpace(account))
}

// Paused reports the current pause switch.
func (s Service) Paused(ctx context.Context) (bool, error) {
	state, err := s.Store.GetPauseState(ctx)
	if err != nil {
		return false, err
	}
	return state.Paused, nil
}

// ListBlacklist returns the current blacklist entries.
func (s Service) ListBlacklist(ctx context.Context) ([]entities.BlacklistEntry, error) {
	return s.Store.ListBlacklist(ctx)
}

// applyTransferChecked runs the full transfer precondition chain, then the
// balance moves. The supply record lookup happens outside so Issue can
// reuse applyTransfer with the record it already holds.
func (s Service) applyTransferChecked(
	ctx context.Context,
	tx ports.StoreTx,
	caller string,
	record entities.SupplyRecord,
	symbolRegistered bool,
	from string,
	to string,
	quantity entities.Asset,
	memo string,
) ([]pendingNotification, error) {
	pause, err := tx.GetPauseState(ctx)
	if err != nil {
		return nil, err
	}
	if pause.Paused {
		return nil, domainerrors.ErrPaused
	}
	if _, listed, err := tx.GetBlacklistEntry(ctx, from); err != nil {
		return nil, err
	} else if listed {
		return nil, domainerrors.ErrSenderBlacklisted
	}
	if _, listed, err := tx.GetBlacklistEntry(ctx, to); err != nil {
		return nil, err
	} else if listed {
		return nil, domainerrors.ErrRecipientBlacklisted
	}
	if from == to {
		return nil, domainerrors.ErrSelfTransfer
	}
	if err := s.requireAuthority(ctx, caller, from); err != nil {
		return nil, err
	}
	if s.Accounts != nil {
		resolvable, err := s.Accounts.Exists(ctx, to)
		if err != nil {
			return nil, err
		}
		if !resolvable {
			return nil, domainerrors.ErrAccountNotFound
		}
	}
	if !symbolRegistered {
		return nil, domainerrors.ErrSymbolNotFound
	}
	if !quantity.Valid() || !quantity.Positive() {
		return nil, domainerrors.ErrInvalidQuantity
	}
	if !quantity.Symbol.Equal(record.Supply.Symbol) {
		return nil, domainerrors.ErrPrecisionMismatch
	}
	if err := s.checkMemo(memo); err != nil {
		return nil, err
	}

	return s.applyTransfer(ctx, tx, caller, from, to, quantity, memo)
}

// applyTransfer performs the debit/credit pair and prepares the two
// fire-and-forget notifications. Preconditions are the caller's problem.
func (s Service) applyTransfer(
	ctx context.Context,
	tx ports.StoreTx,
	caller string,
	from string,
	to string,
	quantity entities.Asset,
	memo string,
) ([]pendingNotification, error) {
	// Storage cost for a record created on the receiving side lands on
	// the recipient only when they independently authorized this same
	// invocation; otherwise the sender pays. Neither side can impose
	// storage cost on the other unilaterally.
	payer := from
	if toAuthorized, err := s.Authority.HoldsAuthority(ctx, caller, to); err != nil {
		return nil, err
	} else if toAuthorized {
		payer = to
	}

	if err := s.subBalance(ctx, tx, from, quantity); err != nil {
		return nil, err
	}
	if err := s.addBalance(ctx, tx, to, quantity, payer); err != nil {
		return nil, err
	}

	event := events.Envelope{
		EventID:        uuid.NewString(),
		EventType:      "ledger.transfer",
		SourceService:  "token-core/ledger-service",
		OccurredAtUTC:  s.now(),
		EntityType:     "token",
		EntityID:       quantity.Symbol.Code,
		PayloadVersion: 1,
		Payload: map[string]any{
			"from":     from,
			"to":       to,
			"quantity": quantity.String(),
			"memo":     memo,
		},
	}
	return []pendingNotification{
		{account: from, event: event},
		{account: to, event: event},
	}, nil
}

// subBalance debits owner. A record drained to exactly zero is deleted so
// no zero-amount rows persist.
func (s Service) subBalance(ctx context.Context, tx ports.StoreTx, owner string, value entities.Asset) error {
	record, found, err := tx.GetBalance(ctx, owner, value.Symbol.Code)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrBalanceNotFound
	}
	if record.Balance.Amount < value.Amount {
		return domainerrors.ErrInsufficientBalance
	}
	if record.Balance.Amount == value.Amount {
		return tx.DeleteBalance(ctx, owner, value.Symbol.Code)
	}
	record.Balance, err = record.Balance.Sub(value)
	if err != nil {
		return err
	}
	return tx.UpdateBalance(ctx, record)
}

// addBalance credits owner, creating the record on first credit with the
// given storage payer.
func (s Service) addBalance(ctx context.Context, tx ports.StoreTx, owner string, value entities.Asset, payer string) error {
	record, found, err := tx.GetBalance(ctx, owner, value.Symbol.Code)
	if err != nil {
		return err
	}
	if !found {
		return tx.CreateBalance(ctx, entities.BalanceRecord{
			Account: owner,
			Balance: value,
			Payer:   payer,
		})
	}
	record.Balance, err = record.Balance.Add(value)
	if err != nil {
		return err
	}
	return tx.UpdateBalance(ctx, record)
}

func (s Service) dispatch(ctx context.Context, notes []pendingNotification) {
	if s.Notifier == nil {
		return
	}
	for _, note := range notes {
		s.Notifier.Notify(ctx, note.account, note.event)
	}
}

func (s Service) requireAuthority(ctx context.Context, caller string, principal string) error {
	holds, err := s.Authority.HoldsAuthority(ctx, strings.TrimSpace(caller), strings.TrimSpace(principal))
	if err != nil {
		return err
	}
	if !holds {
		return domainerrors.ErrUnauthorized
	}
	return nil
}

func (s Service) checkMemo(memo string) error {
	if len(memo) > s.memoLimit() {
		return domainerrors.ErrMemoTooLong
	}
	return nil
}

func (s Service) memoLimit() int {
	if s.MemoLimit <= 0 {
		return DefaultMemoLimit
	}
	return s.MemoLimit
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
