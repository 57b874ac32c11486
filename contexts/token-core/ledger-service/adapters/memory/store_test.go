package memory

import (
	"context"
	"errors"
	"testing"

	"stablecoin/contexts/token-core/ledger-service/domain/entities"
	domainerrors "stablecoin/contexts/token-core/ledger-service/domain/errors"
	"stablecoin/contexts/token-core/ledger-service/ports"
)

func eusd(amount int64) entities.Asset {
	return entities.Asset{Amount: amount, Symbol: entities.Symbol{Code: "EUSD", Precision: 4}}
}

func TestAtomicallyDiscardsWritesOnError(t *testing.T) {
	store := NewStore()
	boom := errors.New("boom")

	err := store.Atomically(context.Background(), func(tx ports.StoreTx) error {
		if err := tx.CreateSupply(context.Background(), entities.SupplyRecord{
			Supply:    eusd(0),
			MaxSupply: eusd(1000),
			Issuer:    "eusd.issuer",
		}); err != nil {
			return err
		}
		if err := tx.CreateBalance(context.Background(), entities.BalanceRecord{
			Account: "alice",
			Balance: eusd(100),
			Payer:   "alice",
		}); err != nil {
			return err
		}
		if err := tx.SetPauseState(context.Background(), entities.PauseState{Paused: true}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected unit error surfaced, got %v", err)
	}

	if _, exists, _ := store.GetSupply(context.Background(), "EUSD"); exists {
		t.Fatal("failed unit leaked a supply record")
	}
	if _, found, _ := store.GetBalance(context.Background(), "alice", "EUSD"); found {
		t.Fatal("failed unit leaked a balance record")
	}
	state, _ := store.GetPauseState(context.Background())
	if state.Paused {
		t.Fatal("failed unit leaked pause state")
	}
}

func TestAtomicallyCommitsOnSuccess(t *testing.T) {
	store := NewStore()

	err := store.Atomically(context.Background(), func(tx ports.StoreTx) error {
		if err := tx.CreateSupply(context.Background(), entities.SupplyRecord{
			Supply:    eusd(500),
			MaxSupply: eusd(1000),
			Issuer:    "eusd.issuer",
		}); err != nil {
			return err
		}
		return tx.CreateBalance(context.Background(), entities.BalanceRecord{
			Account: "alice",
			Balance: eusd(500),
			Payer:   "alice",
		})
	})
	if err != nil {
		t.Fatalf("unit failed: %v", err)
	}

	record, exists, _ := store.GetSupply(context.Background(), "EUSD")
	if !exists || record.Supply.Amount != 500 {
		t.Fatalf("expected committed supply, got %v %v", exists, record)
	}
	balance, found, _ := store.GetBalance(context.Background(), "alice", "EUSD")
	if !found || balance.Balance.Amount != 500 {
		t.Fatalf("expected committed balance, got %v %v", found, balance)
	}
}

func TestCreateSupplyDuplicate(t *testing.T) {
	store := NewStore()
	record := entities.SupplyRecord{Supply: eusd(0), MaxSupply: eusd(1000), Issuer: "eusd.issuer"}
	if err := store.CreateSupply(context.Background(), record); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := store.CreateSupply(context.Background(), record); !errors.Is(err, domainerrors.ErrSymbolExists) {
		t.Fatalf("expected symbol exists, got %v", err)
	}
}

func TestUpdateMissingRecords(t *testing.T) {
	store := NewStore()
	err := store.UpdateSupply(context.Background(), entities.SupplyRecord{Supply: eusd(1), MaxSupply: eusd(1)})
	if !errors.Is(err, domainerrors.ErrSymbolNotFound) {
		t.Fatalf("expected symbol not found, got %v", err)
	}
	err = store.UpdateBalance(context.Background(), entities.BalanceRecord{Account: "alice", Balance: eusd(1)})
	if !errors.Is(err, domainerrors.ErrBalanceNotFound) {
		t.Fatalf("expected balance not found, got %v", err)
	}
	err = store.DeleteBalance(context.Background(), "alice", "EUSD")
	if !errors.Is(err, domainerrors.ErrBalanceNotFound) {
		t.Fatalf("expected balance not found, got %v", err)
	}
}

func TestListBalancesSorted(t *testing.T) {
	store := NewStore()
	gold := entities.Asset{Amount: 7, Symbol: entities.Symbol{Code: "GOLD", Precision: 0}}
	for _, record := range []entities.BalanceRecord{
		{Account: "bob", Balance: eusd(10), Payer: "bob"},
		{Account: "alice", Balance: eusd(20), Payer: "alice"},
		{Account: "alice", Balance: gold, Payer: "alice"},
	} {
		if err := store.CreateBalance(context.Background(), record); err != nil {
			t.Fatalf("create balance failed: %v", err)
		}
	}

	byAccount, err := store.ListBalancesByAccount(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list by account failed: %v", err)
	}
	if len(byAccount) != 2 || byAccount[0].Balance.Symbol.Code != "EUSD" || byAccount[1].Balance.Symbol.Code != "GOLD" {
		t.Fatalf("unexpected by-account rows %v", byAccount)
	}

	bySymbol, err := store.ListBalancesBySymbol(context.Background(), "EUSD")
	if err != nil {
		t.Fatalf("list by symbol failed: %v", err)
	}
	if len(bySymbol) != 2 || bySymbol[0].Account != "alice" || bySymbol[1].Account != "bob" {
		t.Fatalf("unexpected by-symbol rows %v", bySymbol)
	}
}

func TestBlacklistSetOperations(t *testing.T) {
	store := NewStore()
	entry := entities.BlacklistEntry{Account: "mallory", Memo: "fraud"}
	if err := store.CreateBlacklistEntry(context.Background(), entry); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := store.CreateBlacklistEntry(context.Background(), entry); !errors.Is(err, domainerrors.ErrAlreadyBlacklisted) {
		t.Fatalf("expected already blacklisted, got %v", err)
	}
	if err := store.DeleteBlacklistEntry(context.Background(), "mallory"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := store.DeleteBlacklistEntry(context.Background(), "mallory"); !errors.Is(err, domainerrors.ErrNotBlacklisted) {
		t.Fatalf("expected not blacklisted, got %v", err)
	}
}
