package ledgerservice

import (
	"log/slog"

	httpadapter "stablecoin/contexts/token-core/ledger-service/adapters/http"
	"stablecoin/contexts/token-core/ledger-service/adapters/memory"
	"stablecoin/contexts/token-core/ledger-service/application"
	"stablecoin/contexts/token-core/ledger-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
}

type Dependencies struct {
	Store               ports.Store
	Authority           ports.Authority
	Accounts            ports.AccountDirectory
	Notifier            ports.Notifier
	Clock               ports.Clock
	Owner               string
	MemoLimit           int
	RaiseCeilingOnIssue bool
	ShrinkCeilingOnBurn bool
	Logger              *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Store:               deps.Store,
		Authority:           deps.Authority,
		Accounts:            deps.Accounts,
		Notifier:            deps.Notifier,
		Clock:               deps.Clock,
		Owner:               deps.Owner,
		MemoLimit:           deps.MemoLimit,
		RaiseCeilingOnIssue: deps.RaiseCeilingOnIssue,
		ShrinkCeilingOnBurn: deps.ShrinkCeilingOnBurn,
		Logger:              deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

// NewInMemoryModule wires the ledger against the in-memory store and host
// stub and returns both so callers can seed accounts and inspect state.
// The owner account is pre-registered with the host.
func NewInMemoryModule(owner string, logger *slog.Logger) (Module, *memory.Store, *memory.Host) {
	store := memory.NewStore()
	host := memory.NewHost()
	host.RegisterAccount(owner)

	module := NewModule(Dependencies{
		Store:               store,
		Authority:           host,
		Accounts:            host,
		Notifier:            host,
		Clock:               host,
		Owner:               owner,
		MemoLimit:           application.DefaultMemoLimit,
		RaiseCeilingOnIssue: true,
		ShrinkCeilingOnBurn: true,
		Logger:              logger,
	})
	return module, store, host
}
