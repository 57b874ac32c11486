package memory

import (
	"context"
	"sort"
	"sync"

	"stablecoin/contexts/token-core/ledger-service/domain/entities"
	domainerrors "stablecoin/contexts/token-core/ledger-service/domain/errors"
	"stablecoin/contexts/token-core/ledger-service/ports"
)

// Store is the in-memory ledger storage used for tests and DSN-less runs.
// Atomically stages every mutation on a copy of the state and swaps it in
// only when the unit succeeds, so a failed operation is invisible.
type Store struct {
	mu    sync.RWMutex
	state storeState
}

type storeState struct {
	supplies  map[string]entities.SupplyRecord
	balances  map[string]map[string]entities.BalanceRecord
	pause     entities.PauseState
	blacklist map[string]entities.BlacklistEntry
}

func NewStore() *Store {
	return &Store{
		state: storeState{
			supplies:  make(map[string]entities.SupplyRecord),
			balances:  make(map[string]map[string]entities.BalanceRecord),
			blacklist: make(map[string]entities.BlacklistEntry),
		},
	}
}

func (s *Store) Atomically(_ context.Context, fn func(tx ports.StoreTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	if err := fn(&txView{state: &staged}); err != nil {
		return err
	}
	s.state = staged
	return nil
}

func (s *Store) GetSupply(ctx context.Context, symbolCode string) (entities.SupplyRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (&txView{state: &s.state}).GetSupply(ctx, symbolCode)
}

func (s *Store) CreateSupply(ctx context.Context, record entities.SupplyRecord) error {
	return s.Atomically(ctx, func(tx ports.StoreTx) error { return tx.CreateSupply(ctx, record) })
}

func (s *Store) UpdateSupply(ctx context.Context, record entities.SupplyRecord) error {
	return s.Atomically(ctx, func(tx ports.StoreTx) error { return tx.UpdateSupply(ctx, record) })
}

func (s *Store) GetBalance(ctx context.Context, account string, symbolCode string) (entities.BalanceRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (&txView{state: &s.state}).GetBalance(ctx, account, symbolCode)
}

func (s *Store) CreateBalance(ctx context.Context, record entities.BalanceRecord) error {
	return s.Atomically(ctx, func(tx ports.StoreTx) error { return tx.CreateBalance(ctx, record) })
}

func (s *Store) UpdateBalance(ctx context.Context, record entities.BalanceRecord) error {
	return s.Atomically(ctx, func(tx ports.StoreTx) error { return tx.UpdateBalance(ctx, record) })
}

func (s *Store) DeleteBalance(ctx context.Context, account string, symbolCode string) error {
	return s.Atomically(ctx, func(tx ports.StoreTx) error { return tx.DeleteBalance(ctx, account, symbolCode) })
}

func (s *Store) ListBalancesByAccount(ctx context.Context, account string) ([]entities.BalanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (&txView{state: &s.state}).ListBalancesByAccount(ctx, account)
}

func (s *Store) ListBalancesBySymbol(ctx context.Context, symbolCode string) ([]entities.BalanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (&txView{state: &s.state}).ListBalancesBySymbol(ctx, symbolCode)
}

func (s *Store) GetPauseState(ctx context.Context) (entities.PauseState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (&txView{state: &s.state}).GetPauseState(ctx)
}

func (s *Store) SetPauseState(ctx context.Context, state entities.PauseState) error {
	return s.Atomically(ctx, func(tx ports.StoreTx) error { return tx.SetPauseState(ctx, state) })
}

func (s *Store) GetBlacklistEntry(ctx context.Context, account string) (entities.BlacklistEntry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (&txView{state: &s.state}).GetBlacklistEntry(ctx, account)
}

func (s *Store) CreateBlacklistEntry(ctx context.Context, entry entities.BlacklistEntry) error {
	return s.Atomically(ctx, func(tx ports.StoreTx) error { return tx.CreateBlacklistEntry(ctx, entry) })
}

func (s *Store) DeleteBlacklistEntry(ctx context.Context, account string) error {
	return s.Atomically(ctx, func(tx ports.StoreTx) error { return tx.DeleteBlacklistEntry(ctx, account) })
}

func (s *Store) ListBlacklist(ctx context.Context) ([]entities.BlacklistEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (&txView{state: &s.state}).ListBlacklist(ctx)
}

func (st storeState) clone() storeState {
	copied := storeState{
		supplies:  make(map[string]entities.SupplyRecord, len(st.supplies)),
		balances:  make(map[string]map[string]entities.BalanceRecord, len(st.balances)),
		pause:     st.pause,
		blacklist: make(map[string]entities.BlacklistEntry, len(st.blacklist)),
	}
	for code, record := range st.supplies {
		copied.supplies[code] = record
	}
	for account, byCode := range st.balances {
		rows := make(map[string]entities.BalanceRecord, len(byCode))
		for code, record := range byCode {
			rows[code] = record
		}
		copied.balances[account] = rows
	}
	for account, entry := range st.blacklist {
		copied.blacklist[account] = entry
	}
	return copied
}

// txView mutates one staged state. Not safe for concurrent use; the owning
// Store serializes access.
type txView struct {
	state *storeState
}

func (v *txView) GetSupply(_ context.Context, symbolCode string) (entities.SupplyRecord, bool, error) {
	record, ok := v.state.supplies[symbolCode]
	return record, ok, nil
}

func (v *txView) CreateSupply(_ context.Context, record entities.SupplyRecord) error {
	code := record.SymbolCode()
	if _, exists := v.state.supplies[code]; exists {
		return domainerrors.ErrSymbolExists
	}
	v.state.supplies[code] = record
	return nil
}

func (v *txView) UpdateSupply(_ context.Context, record entities.SupplyRecord) error {
	code := record.SymbolCode()
	if _, exists := v.state.supplies[code]; !exists {
		return domainerrors.ErrSymbolNotFound
	}
	v.state.supplies[code] = record
	return nil
}

func (v *txView) GetBalance(_ context.Context, account string, symbolCode string) (entities.BalanceRecord, bool, error) {
	record, ok := v.state.balances[account][symbolCode]
	return record, ok, nil
}

func (v *txView) CreateBalance(_ context.Context, record entities.BalanceRecord) error {
	code := record.Balance.Symbol.Code
	if v.state.balances[record.Account] == nil {
		v.state.balances[record.Account] = make(map[string]entities.BalanceRecord)
	}
	v.state.balances[record.Account][code] = record
	return nil
}

func (v *txView) UpdateBalance(_ context.Context, record entities.BalanceRecord) error {
	code := record.Balance.Symbol.Code
	if _, ok := v.state.balances[record.Account][code]; !ok {
		return domainerrors.ErrBalanceNotFound
	}
	v.state.balances[record.Account][code] = record
	return nil
}

func (v *txView) DeleteBalance(_ context.Context, account string, symbolCode string) error {
	byCode, ok := v.state.balances[account]
	if !ok {
		return domainerrors.ErrBalanceNotFound
	}
	if _, ok := byCode[symbolCode]; !ok {
		return domainerrors.ErrBalanceNotFound
	}
	delete(byCode, symbolCode)
	if len(byCode) == 0 {
		delete(v.state.balances, account)
	}
	return nil
}

func (v *txView) ListBalancesByAccount(_ context.Context, account string) ([]entities.BalanceRecord, error) {
	byCode := v.state.balances[account]
	records := make([]entities.BalanceRecord, 0, len(byCode))
	for _, record := range byCode {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Balance.Symbol.Code < records[j].Balance.Symbol.Code
	})
	return records, nil
}

func (v *txView) ListBalancesBySymbol(_ context.Context, symbolCode string) ([]entities.BalanceRecord, error) {
	records := make([]entities.BalanceRecord, 0)
	for _, byCode := range v.state.balances {
		if record, ok := byCode[symbolCode]; ok {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Account < records[j].Account
	})
	return records, nil
}

func (v *txView) GetPauseState(_ context.Context) (entities.PauseState, error) {
	return v.state.pause, nil
}

func (v *txView) SetPauseState(_ context.Context, state entities.PauseState) error {
	v.state.pause = state
	return nil
}

func (v *txView) GetBlacklistEntry(_ context.Context, account string) (entities.BlacklistEntry, bool, error) {
	entry, ok := v.state.blacklist[account]
	return entry, ok, nil
}

func (v *txView) CreateBlacklistEntry(_ context.Context, entry entities.BlacklistEntry) error {
	if _, exists := v.state.blacklist[entry.Account]; exists {
		return domainerrors.ErrAlreadyBlacklisted
	}
	v.state.blacklist[entry.Account] = entry
	return nil
}

func (v *txView) DeleteBlacklistEntry(_ context.Context, account string) error {
	if _, exists := v.state.blacklist[account]; !exists {
		return domainerrors.ErrNotBlacklisted
	}
	delete(v.state.blacklist, account)
	return nil
}

func (v *txView) ListBlacklist(_ context.Context) ([]entities.BlacklistEntry, error) {
	entries := make([]entities.BlacklistEntry, 0, len(v.state.blacklist))
	for _, entry := range v.state.blacklist {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Account < entries[j].Account
	})
	return entries, nil
}
