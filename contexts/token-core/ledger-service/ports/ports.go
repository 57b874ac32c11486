package ports

import (
	"context"
	"time"

	"stablecoin/contexts/token-core/ledger-service/domain/entities"
	"stablecoin/internal/shared/events"
)

type CreateTokenInput struct {
	Issuer    string
	MaxSupply entities.Asset
}

type IssueInput struct {
	To       string
	Quantity entities.Asset
	Memo     string
}

type TransferInput struct {
	From     string
	To       string
	Quantity entities.Asset
	Memo     string
}

type BurnInput struct {
	Quantity entities.Asset
	Memo     string
}

// SupplyStore keys supply records by symbol code. Exactly one record per
// registered code.
type SupplyStore interface {
	GetSupply(ctx context.Context, symbolCode string) (entities.SupplyRecord, bool, error)
	CreateSupply(ctx context.Context, record entities.SupplyRecord) error
	UpdateSupply(ctx context.Context, record entities.SupplyRecord) error
}

// BalanceStore keys balance records by (account, symbol code) and supports
// the by-account secondary index.
type BalanceStore interface {
	GetBalance(ctx context.Context, account string, symbolCode string) (entities.BalanceRecord, bool, error)
	CreateBalance(ctx context.Context, record entities.BalanceRecord) error
	UpdateBalance(ctx context.Context, record entities.BalanceRecord) error
	DeleteBalance(ctx context.Context, account string, symbolCode string) error
	ListBalancesByAccount(ctx context.Context, account string) ([]entities.BalanceRecord, error)
	ListBalancesBySymbol(ctx context.Context, symbolCode string) ([]entities.BalanceRecord, error)
}

// PolicyStore holds the pause singleton and the blacklist set.
type PolicyStore interface {
	GetPauseState(ctx context.Context) (entities.PauseState, error)
	SetPauseState(ctx context.Context, state entities.PauseState) error
	GetBlacklistEntry(ctx context.Context, account string) (entities.BlacklistEntry, bool, error)
	CreateBlacklistEntry(ctx context.Context, entry entities.BlacklistEntry) error
	DeleteBlacklistEntry(ctx context.Context, account string) error
	ListBlacklist(ctx context.Context) ([]entities.BlacklistEntry, error)
}

// StoreTx is the view of the ledger stores inside one atomic unit.
type StoreTx interface {
	SupplyStore
	BalanceStore
	PolicyStore
}

// Store is the persistent keyed storage collaborator. Atomically runs fn
// against a transactional view; if fn returns an error no write performed
// inside it becomes visible.
type Store interface {
	StoreTx
	Atomically(ctx context.Context, fn func(tx StoreTx) error) error
}

// Authority answers whether caller holds a principal's signing authority
// for the current invocation. The host authenticates callers; this port
// only consults that verdict.
type Authority interface {
	HoldsAuthority(ctx context.Context, caller string, principal string) (bool, error)
}

// AccountDirectory resolves account existence in the host environment.
type AccountDirectory interface {
	Exists(ctx context.Context, account string) (bool, error)
}

// Notifier delivers fire-and-forget signals to external observers. Delivery
// is best effort and never influences the outcome of an operation.
type Notifier interface {
	Notify(ctx context.Context, account string, event events.Envelope)
}

type Clock interface {
	Now() time.Time
}
