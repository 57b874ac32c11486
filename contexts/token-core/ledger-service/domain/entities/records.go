package entities

import "time"

// SupplyRecord is the registry row for one token symbol. Created once by
// create, mutated by issue/burn, never deleted. Supply and MaxSupply always
// share the symbol, so the record's precision is authoritative for every
// later operation on the code.
type SupplyRecord struct {
	Supply    Asset
	MaxSupply Asset
	Issuer    string
}

func (r SupplyRecord) SymbolCode() string {
	return r.Supply.Symbol.Code
}

// BalanceRecord holds one (account, symbol) balance. Records with a zero
// amount are deleted rather than persisted, so a missing record and a zero
// balance are the same observable state.
type BalanceRecord struct {
	Account string
	Balance Asset
	// Payer is the principal whose storage quota was charged when the
	// record was created.
	Payer string
}

// PauseState is the singleton transfer-freeze switch. The zero value is
// the unpaused default.
type PauseState struct {
	Paused bool
}

// BlacklistEntry marks an account barred from sending or receiving
// transfers. Membership is a strict set.
type BlacklistEntry struct {
	Account   string
	Memo      string
	CreatedAt time.Time
}
