package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"stablecoin/contexts/token-core/ledger-service/adapters/memory"
	"stablecoin/contexts/token-core/ledger-service/domain/entities"
	domainerrors "stablecoin/contexts/token-core/ledger-service/domain/errors"
	"stablecoin/contexts/token-core/ledger-service/ports"
)

const testOwner = "ledger.owner"

func newTestService() (Service, *memory.Store, *memory.Host) {
	store := memory.NewStore()
	host := memory.NewHost()
	host.RegisterAccount(testOwner, "eusd.issuer", "alice", "bob")
	host.SetNow(time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC))
	service := Service{
		Store:               store,
		Authority:           host,
		Accounts:            host,
		Notifier:            host,
		Clock:               host,
		Owner:               testOwner,
		RaiseCeilingOnIssue: true,
		ShrinkCeilingOnBurn: true,
	}
	return service, store, host
}

func mustAsset(t *testing.T, raw string) entities.Asset {
	t.Helper()
	asset, err := entities.ParseAsset(raw)
	if err != nil {
		t.Fatalf("parse asset %q failed: %v", raw, err)
	}
	return asset
}

func createEUSD(t *testing.T, service Service) {
	t.Helper()
	err := service.CreateToken(context.Background(), testOwner, ports.CreateTokenInput{
		Issuer:    "eusd.issuer",
		MaxSupply: mustAsset(t, "1000000.0000 EUSD"),
	})
	if err != nil {
		t.Fatalf("create token failed: %v", err)
	}
}

func issueEUSD(t *testing.T, service Service, to string, raw string) {
	t.Helper()
	err := service.Issue(context.Background(), "eusd.issuer", ports.IssueInput{
		To:       to,
		Quantity: mustAsset(t, raw),
	})
	if err != nil {
		t.Fatalf("issue %s to %s failed: %v", raw, to, err)
	}
}

// checkConservation verifies circulating supply equals the sum of all
// balances for the symbol.
func checkConservation(t *testing.T, service Service, store *memory.Store, symbolCode string) {
	t.Helper()
	supply, err := service.GetSupply(context.Background(), symbolCode)
	if err != nil {
		t.Fatalf("get supply failed: %v", err)
	}
	records, err := store.ListBalancesBySymbol(context.Background(), symbolCode)
	if err != nil {
		t.Fatalf("list balances failed: %v", err)
	}
	var sum int64
	for _, record := range records {
		if record.Balance.Amount == 0 {
			t.Fatalf("zero-amount balance row persisted for %s", record.Account)
		}
		sum += record.Balance.Amount
	}
	if sum != supply.Amount {
		t.Fatalf("balances sum to %d but supply is %d", sum, supply.Amount)
	}
}

func TestCreateTokenRegistersZeroSupply(t *testing.T) {
	service, _, _ := newTestService()
	createEUSD(t, service)

	supply, err := service.GetSupply(context.Background(), "EUSD")
	if err != nil {
		t.Fatalf("get supply failed: %v", err)
	}
	if supply.Amount != 0 {
		t.Fatalf("expected zero supply, got %s", supply)
	}
	if supply.Symbol.Precision != 4 {
		t.Fatalf("expected precision 4, got %d", supply.Symbol.Precision)
	}
}

func TestCreateTokenDuplicateSymbol(t *testing.T) {
	service, _, _ := newTestService()
	createEUSD(t, service)

	err := service.CreateToken(context.Background(), testOwner, ports.CreateTokenInput{
		Issuer:    "alice",
		MaxSupply: mustAsset(t, "5.0000 EUSD"),
	})
	if !errors.Is(err, domainerrors.ErrSymbolExists) {
		t.Fatalf("expected symbol exists error, got %v", err)
	}
}

func TestCreateTokenRequiresOwnerAuthority(t *testing.T) {
	service, _, _ := newTestService()
	err := service.CreateToken(context.Background(), "alice", ports.CreateTokenInput{
		Issuer:    "alice",
		MaxSupply: mustAsset(t, "100.0000 EUSD"),
	})
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestCreateTokenRejectsNonPositiveMaxSupply(t *testing.T) {
	service, _, _ := newTestService()
	for _, raw := range []string{"0.0000 EUSD", "-1.0000 EUSD"} {
		err := service.CreateToken(context.Background(), testOwner, ports.CreateTokenInput{
			Issuer:    "eusd.issuer",
			MaxSupply: mustAsset(t, raw),
		})
		if !errors.Is(err, domainerrors.ErrInvalidAmount) {
			t.Fatalf("expected invalid amount for %s, got %v", raw, err)
		}
	}
}

func TestIssueToIssuerCreditsAndRaisesSupply(t *testing.T) {
	service, store, _ := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "eusd.issuer", "500.0000 EUSD")

	supply, err := service.GetSupply(context.Background(), "EUSD")
	if err != nil {
		t.Fatalf("get supply failed: %v", err)
	}
	if supply.String() != "500.0000 EUSD" {
		t.Fatalf("unexpected supply %s", supply)
	}
	balance, err := service.GetBalance(context.Background(), "eusd.issuer", "EUSD")
	if err != nil {
		t.Fatalf("get balance failed: %v", err)
	}
	if balance.String() != "500.0000 EUSD" {
		t.Fatalf("unexpected issuer balance %s", balance)
	}
	checkConservation(t, service, store, "EUSD")
}

func TestIssueToThirdPartyRunsInternalTransfer(t *testing.T) {
	service, store, host := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "alice", "100.0000 EUSD")

	aliceBalance, err := service.GetBalance(context.Background(), "alice", "EUSD")
	if err != nil {
		t.Fatalf("get balance failed: %v", err)
	}
	if aliceBalance.String() != "100.0000 EUSD" {
		t.Fatalf("unexpected alice balance %s", aliceBalance)
	}
	issuerBalance, err := service.GetBalance(context.Background(), "eusd.issuer", "EUSD")
	if err != nil {
		t.Fatalf("get balance failed: %v", err)
	}
	if issuerBalance.Amount != 0 {
		t.Fatalf("expected issuer drained, got %s", issuerBalance)
	}

	notes := host.Notifications()
	if len(notes) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notes))
	}
	if notes[0].Account != "eusd.issuer" || notes[1].Account != "alice" {
		t.Fatalf("unexpected notification targets %s, %s", notes[0].Account, notes[1].Account)
	}
	checkConservation(t, service, store, "EUSD")
}

func TestIssueRequiresIssuerAuthority(t *testing.T) {
	service, _, _ := newTestService()
	createEUSD(t, service)

	err := service.Issue(context.Background(), "alice", ports.IssueInput{
		To:       "alice",
		Quantity: mustAsset(t, "1.0000 EUSD"),
	})
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestIssueUnknownSymbol(t *testing.T) {
	service, _, _ := newTestService()
	err := service.Issue(context.Background(), "eusd.issuer", ports.IssueInput{
		To:       "eusd.issuer",
		Quantity: mustAsset(t, "1.0000 EUSD"),
	})
	if !errors.Is(err, domainerrors.ErrSymbolNotFound) {
		t.Fatalf("expected symbol not found, got %v", err)
	}
}

func TestIssuePrecisionMismatch(t *testing.T) {
	service, _, _ := newTestService()
	createEUSD(t, service)

	err := service.Issue(context.Background(), "eusd.issuer", ports.IssueInput{
		To:       "eusd.issuer",
		Quantity: mustAsset(t, "1.00 EUSD"),
	})
	if !errors.Is(err, domainerrors.ErrPrecisionMismatch) {
		t.Fatalf("expected precision mismatch, got %v", err)
	}
}

func TestIssueBeyondCeilingRaisesCeiling(t *testing.T) {
	service, store, _ := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "eusd.issuer", "1500000.0000 EUSD")

	record, exists, err := store.GetSupply(context.Background(), "EUSD")
	if err != nil || !exists {
		t.Fatalf("supply record lookup failed: %v", err)
	}
	if record.MaxSupply.String() != "1500000.0000 EUSD" {
		t.Fatalf("expected ceiling raised to supply, got %s", record.MaxSupply)
	}
}

func TestIssueBeyondCeilingRejectedWhenRaiseDisabled(t *testing.T) {
	service, store, _ := newTestService()
	service.RaiseCeilingOnIssue = false
	createEUSD(t, service)

	err := service.Issue(context.Background(), "eusd.issuer", ports.IssueInput{
		To:       "eusd.issuer",
		Quantity: mustAsset(t, "1500000.0000 EUSD"),
	})
	if !errors.Is(err, domainerrors.ErrExceedsMaxSupply) {
		t.Fatalf("expected max supply error, got %v", err)
	}

	record, _, err := store.GetSupply(context.Background(), "EUSD")
	if err != nil {
		t.Fatalf("supply lookup failed: %v", err)
	}
	if record.Supply.Amount != 0 {
		t.Fatalf("rejected issue mutated supply: %s", record.Supply)
	}
}

func TestIssueToBlacklistedRecipientRejected(t *testing.T) {
	service, store, _ := newTestService()
	createEUSD(t, service)
	if err := service.Blacklist(context.Background(), testOwner, "alice", "sanctioned"); err != nil {
		t.Fatalf("blacklist failed: %v", err)
	}

	err := service.Issue(context.Background(), "eusd.issuer", ports.IssueInput{
		To:       "alice",
		Quantity: mustAsset(t, "10.0000 EUSD"),
	})
	if !errors.Is(err, domainerrors.ErrRecipientBlacklisted) {
		t.Fatalf("expected recipient blacklisted, got %v", err)
	}

	// The whole issue rolls back, including the mint to the issuer.
	record, _, err := store.GetSupply(context.Background(), "EUSD")
	if err != nil {
		t.Fatalf("supply lookup failed: %v", err)
	}
	if record.Supply.Amount != 0 {
		t.Fatalf("rejected issue left supply at %s", record.Supply)
	}
	balance, err := service.GetBalance(context.Background(), "eusd.issuer", "EUSD")
	if err != nil {
		t.Fatalf("get balance failed: %v", err)
	}
	if balance.Amount != 0 {
		t.Fatalf("rejected issue left issuer balance at %s", balance)
	}
}

func TestTransferMovesValueAndConserves(t *testing.T) {
	service, store, _ := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "alice", "100.0000 EUSD")

	err := service.Transfer(context.Background(), "alice", ports.TransferInput{
		From:     "alice",
		To:       "bob",
		Quantity: mustAsset(t, "30.0000 EUSD"),
		Memo:     "rent",
	})
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	aliceBalance, _ := service.GetBalance(context.Background(), "alice", "EUSD")
	bobBalance, _ := service.GetBalance(context.Background(), "bob", "EUSD")
	if aliceBalance.String() != "70.0000 EUSD" || bobBalance.String() != "30.0000 EUSD" {
		t.Fatalf("unexpected balances %s / %s", aliceBalance, bobBalance)
	}
	checkConservation(t, service, store, "EUSD")
}

func TestTransferFullBalanceDeletesRow(t *testing.T) {
	service, store, _ := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "alice", "100.0000 EUSD")

	err := service.Transfer(context.Background(), "alice", ports.TransferInput{
		From:     "alice",
		To:       "bob",
		Quantity: mustAsset(t, "100.0000 EUSD"),
	})
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	if _, found, _ := store.GetBalance(context.Background(), "alice", "EUSD"); found {
		t.Fatal("expected drained balance row to be deleted")
	}
	// A drained balance still reads as zero through the service.
	balance, err := service.GetBalance(context.Background(), "alice", "EUSD")
	if err != nil {
		t.Fatalf("get balance failed: %v", err)
	}
	if balance.Amount != 0 || balance.Symbol.Precision != 4 {
		t.Fatalf("expected zero balance at registry precision, got %s", balance)
	}
	rows, err := service.ListBalances(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list balances failed: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows for alice, got %d", len(rows))
	}
	checkConservation(t, service, store, "EUSD")
}

func TestTransferOverdrawnRollsBack(t *testing.T) {
	service, store, _ := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "alice", "10.0000 EUSD")

	err := service.Transfer(context.Background(), "alice", ports.TransferInput{
		From:     "alice",
		To:       "bob",
		Quantity: mustAsset(t, "10.0001 EUSD"),
	})
	if !errors.Is(err, domainerrors.ErrInsufficientBalance) {
		t.Fatalf("expected overdrawn error, got %v", err)
	}

	aliceBalance, _ := service.GetBalance(context.Background(), "alice", "EUSD")
	bobBalance, _ := service.GetBalance(context.Background(), "bob", "EUSD")
	if aliceBalance.String() != "10.0000 EUSD" || bobBalance.Amount != 0 {
		t.Fatalf("rejected transfer mutated balances: %s / %s", aliceBalance, bobBalance)
	}
	checkConservation(t, service, store, "EUSD")
}

func TestTransferToSelfRejected(t *testing.T) {
	service, _, _ := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "alice", "10.0000 EUSD")

	err := service.Transfer(context.Background(), "alice", ports.TransferInput{
		From:     "alice",
		To:       "alice",
		Quantity: mustAsset(t, "1.0000 EUSD"),
	})
	if !errors.Is(err, domainerrors.ErrSelfTransfer) {
		t.Fatalf("expected self transfer error, got %v", err)
	}
}

func TestTransferToUnknownAccountRejected(t *testing.T) {
	service, _, _ := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "alice", "10.0000 EUSD")

	err := service.Transfer(context.Background(), "alice", ports.TransferInput{
		From:     "alice",
		To:       "nobody",
		Quantity: mustAsset(t, "1.0000 EUSD"),
	})
	if !errors.Is(err, domainerrors.ErrAccountNotFound) {
		t.Fatalf("expected account not found, got %v", err)
	}
}

func TestTransferRequiresSenderAuthority(t *testing.T) {
	service, _, _ := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "alice", "10.0000 EUSD")

	err := service.Transfer(context.Background(), "bob", ports.TransferInput{
		From:     "alice",
		To:       "bob",
		Quantity: mustAsset(t, "1.0000 EUSD"),
	})
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestTransferGrantedAuthorityAllowsActingForSender(t *testing.T) {
	service, store, host := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "alice", "10.0000 EUSD")
	host.GrantAuthority("bob", "alice")

	err := service.Transfer(context.Background(), "bob", ports.TransferInput{
		From:     "alice",
		To:       "bob",
		Quantity: mustAsset(t, "4.0000 EUSD"),
	})
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	checkConservation(t, service, store, "EUSD")
}

func TestTransferWhilePausedRejected(t *testing.T) {
	service, _, _ := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "alice", "10.0000 EUSD")
	if err := service.Pause(context.Background(), testOwner); err != nil {
		t.Fatalf("pause failed: %v", err)
	}

	err := service.Transfer(context.Background(), "alice", ports.TransferInput{
		From:     "alice",
		To:       "bob",
		Quantity: mustAsset(t, "1.0000 EUSD"),
	})
	if !errors.Is(err, domainerrors.ErrPaused) {
		t.Fatalf("expected paused error, got %v", err)
	}

	if err := service.Unpause(context.Background(), testOwner); err != nil {
		t.Fatalf("unpause failed: %v", err)
	}
	err = service.Transfer(context.Background(), "alice", ports.TransferInput{
		From:     "alice",
		To:       "bob",
		Quantity: mustAsset(t, "1.0000 EUSD"),
	})
	if err != nil {
		t.Fatalf("transfer after unpause failed: %v", err)
	}
}

// The pause gate fires before any other transfer check, so even a caller
// with no authority over the sender sees the paused error first.
func TestTransferPauseCheckedBeforeAuthority(t *testing.T) {
	service, _, _ := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "alice", "10.0000 EUSD")
	if err := service.Pause(context.Background(), testOwner); err != nil {
		t.Fatalf("pause failed: %v", err)
	}

	err := service.Transfer(context.Background(), "bob", ports.TransferInput{
		From:     "alice",
		To:       "bob",
		Quantity: mustAsset(t, "1.0000 EUSD"),
	})
	if !errors.Is(err, domainerrors.ErrPaused) {
		t.Fatalf("expected paused error to win, got %v", err)
	}
}

func TestTransferSenderBlacklistCheckedBeforeRecipient(t *testing.T) {
	service, _, _ := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "alice", "10.0000 EUSD")
	if err := service.Blacklist(context.Background(), testOwner, "alice", ""); err != nil {
		t.Fatalf("blacklist alice failed: %v", err)
	}
	if err := service.Blacklist(context.Background(), testOwner, "bob", ""); err != nil {
		t.Fatalf("blacklist bob failed: %v", err)
	}

	err := service.Transfer(context.Background(), "alice", ports.TransferInput{
		From:     "alice",
		To:       "bob",
		Quantity: mustAsset(t, "1.0000 EUSD"),
	})
	if !errors.Is(err, domainerrors.ErrSenderBlacklisted) {
		t.Fatalf("expected sender blacklisted to win, got %v", err)
	}
}

func TestTransferToBlacklistedRecipientRejected(t *testing.T) {
	service, _, _ := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "alice", "10.0000 EUSD")
	if err := service.Blacklist(context.Background(), testOwner, "bob", ""); err != nil {
		t.Fatalf("blacklist failed: %v", err)
	}

	err := service.Transfer(context.Background(), "alice", ports.TransferInput{
		From:     "alice",
		To:       "bob",
		Quantity: mustAsset(t, "1.0000 EUSD"),
	})
	if !errors.Is(err, domainerrors.ErrRecipientBlacklisted) {
		t.Fatalf("expected recipient blacklisted, got %v", err)
	}
}

func TestTransferMemoLimit(t *testing.T) {
	service, _, _ := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "alice", "10.0000 EUSD")

	err := service.Transfer(context.Background(), "alice", ports.TransferInput{
		From:     "alice",
		To:       "bob",
		Quantity: mustAsset(t, "1.0000 EUSD"),
		Memo:     strings.Repeat("x", 257),
	})
	if !errors.Is(err, domainerrors.ErrMemoTooLong) {
		t.Fatalf("expected memo too long, got %v", err)
	}

	err = service.Transfer(context.Background(), "alice", ports.TransferInput{
		From:     "alice",
		To:       "bob",
		Quantity: mustAsset(t, "1.0000 EUSD"),
		Memo:     strings.Repeat("x", 256),
	})
	if err != nil {
		t.Fatalf("256-byte memo should pass: %v", err)
	}
}

func TestTransferPayerAttribution(t *testing.T) {
	service, store, host := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "alice", "10.0000 EUSD")

	// Sender-initiated transfer: the sender pays for the recipient's new
	// balance row.
	err := service.Transfer(context.Background(), "alice", ports.TransferInput{
		From:     "alice",
		To:       "bob",
		Quantity: mustAsset(t, "2.0000 EUSD"),
	})
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	record, found, _ := store.GetBalance(context.Background(), "bob", "EUSD")
	if !found || record.Payer != "alice" {
		t.Fatalf("expected alice as payer, got %q", record.Payer)
	}

	// When the caller holds the recipient's authority the recipient pays.
	host.RegisterAccount("carol")
	host.GrantAuthority("carol", "alice")
	err = service.Transfer(context.Background(), "carol", ports.TransferInput{
		From:     "alice",
		To:       "carol",
		Quantity: mustAsset(t, "2.0000 EUSD"),
	})
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	record, found, _ = store.GetBalance(context.Background(), "carol", "EUSD")
	if !found || record.Payer != "carol" {
		t.Fatalf("expected carol as payer, got %q", record.Payer)
	}
}

func TestTransferNotificationEnvelope(t *testing.T) {
	service, _, host := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "eusd.issuer", "10.0000 EUSD")

	err := service.Transfer(context.Background(), "eusd.issuer", ports.TransferInput{
		From:     "eusd.issuer",
		To:       "alice",
		Quantity: mustAsset(t, "3.0000 EUSD"),
		Memo:     "hello",
	})
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	notes := host.Notifications()
	if len(notes) != 2 {
		t.Fatalf("expected sender and recipient notifications, got %d", len(notes))
	}
	event := notes[0].Event
	if event.EventType != "ledger.transfer" {
		t.Fatalf("unexpected event type %s", event.EventType)
	}
	if event.EventID == "" {
		t.Fatal("expected a generated event id")
	}
	payload, ok := event.Payload.(map[string]any)
	if !ok {
		t.Fatalf("unexpected payload type %T", event.Payload)
	}
	if payload["from"] != "eusd.issuer" || payload["to"] != "alice" {
		t.Fatalf("unexpected payload parties: %v", payload)
	}
	if payload["quantity"] != "3.0000 EUSD" || payload["memo"] != "hello" {
		t.Fatalf("unexpected payload contents: %v", payload)
	}
	if notes[0].Event.EventID != notes[1].Event.EventID {
		t.Fatal("both notifications should share one event")
	}
}

func TestBurnLowersSupplyAndCeiling(t *testing.T) {
	service, store, _ := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "eusd.issuer", "100.0000 EUSD")

	err := service.Burn(context.Background(), "eusd.issuer", ports.BurnInput{
		Quantity: mustAsset(t, "40.0000 EUSD"),
	})
	if err != nil {
		t.Fatalf("burn failed: %v", err)
	}

	record, _, err := store.GetSupply(context.Background(), "EUSD")
	if err != nil {
		t.Fatalf("supply lookup failed: %v", err)
	}
	if record.Supply.String() != "60.0000 EUSD" {
		t.Fatalf("unexpected supply %s", record.Supply)
	}
	if record.MaxSupply.String() != "999960.0000 EUSD" {
		t.Fatalf("expected ceiling shrunk in lockstep, got %s", record.MaxSupply)
	}
	checkConservation(t, service, store, "EUSD")
}

func TestBurnKeepsCeilingWhenShrinkDisabled(t *testing.T) {
	service, store, _ := newTestService()
	service.ShrinkCeilingOnBurn = false
	createEUSD(t, service)
	issueEUSD(t, service, "eusd.issuer", "100.0000 EUSD")

	err := service.Burn(context.Background(), "eusd.issuer", ports.BurnInput{
		Quantity: mustAsset(t, "40.0000 EUSD"),
	})
	if err != nil {
		t.Fatalf("burn failed: %v", err)
	}

	record, _, err := store.GetSupply(context.Background(), "EUSD")
	if err != nil {
		t.Fatalf("supply lookup failed: %v", err)
	}
	if record.MaxSupply.String() != "1000000.0000 EUSD" {
		t.Fatalf("ceiling should be untouched, got %s", record.MaxSupply)
	}
}

func TestBurnBeyondSupplyRejected(t *testing.T) {
	service, _, _ := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "eusd.issuer", "10.0000 EUSD")

	err := service.Burn(context.Background(), "eusd.issuer", ports.BurnInput{
		Quantity: mustAsset(t, "10.0001 EUSD"),
	})
	if !errors.Is(err, domainerrors.ErrInsufficientSupply) {
		t.Fatalf("expected insufficient supply, got %v", err)
	}
}

func TestBurnBeyondIssuerBalanceRollsBackSupply(t *testing.T) {
	service, store, _ := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "eusd.issuer", "100.0000 EUSD")
	err := service.Transfer(context.Background(), "eusd.issuer", ports.TransferInput{
		From:     "eusd.issuer",
		To:       "alice",
		Quantity: mustAsset(t, "95.0000 EUSD"),
	})
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}

	// Supply covers the burn but the issuer's own balance does not; the
	// supply decrement must roll back with the failed debit.
	err = service.Burn(context.Background(), "eusd.issuer", ports.BurnInput{
		Quantity: mustAsset(t, "50.0000 EUSD"),
	})
	if !errors.Is(err, domainerrors.ErrInsufficientBalance) {
		t.Fatalf("expected overdrawn error, got %v", err)
	}

	record, _, err := store.GetSupply(context.Background(), "EUSD")
	if err != nil {
		t.Fatalf("supply lookup failed: %v", err)
	}
	if record.Supply.String() != "100.0000 EUSD" {
		t.Fatalf("failed burn mutated supply: %s", record.Supply)
	}
	checkConservation(t, service, store, "EUSD")
}

func TestBurnRequiresIssuerAuthority(t *testing.T) {
	service, _, _ := newTestService()
	createEUSD(t, service)
	issueEUSD(t, service, "eusd.issuer", "10.0000 EUSD")

	err := service.Burn(context.Background(), "alice", ports.BurnInput{
		Quantity: mustAsset(t, "1.0000 EUSD"),
	})
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestPauseIsIdempotent(t *testing.T) {
	service, _, _ := newTestService()
	for i := 0; i < 2; i++ {
		if err := service.Pause(context.Background(), testOwner); err != nil {
			t.Fatalf("pause round %d failed: %v", i, err)
		}
	}
	paused, err := service.Paused(context.Background())
	if err != nil || !paused {
		t.Fatalf("expected paused state, got %v %v", paused, err)
	}
	for i := 0; i < 2; i++ {
		if err := service.Unpause(context.Background(), testOwner); err != nil {
			t.Fatalf("unpause round %d failed: %v", i, err)
		}
	}
	paused, err = service.Paused(context.Background())
	if err != nil || paused {
		t.Fatalf("expected unpaused state, got %v %v", paused, err)
	}
}

func TestPauseRequiresOwnerAuthority(t *testing.T) {
	service, _, _ := newTestService()
	if err := service.Pause(context.Background(), "alice"); !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestBlacklistStrictSetSemantics(t *testing.T) {
	service, _, _ := newTestService()

	if err := service.Blacklist(context.Background(), testOwner, "alice", "fraud"); err != nil {
		t.Fatalf("blacklist failed: %v", err)
	}
	err := service.Blacklist(context.Background(), testOwner, "alice", "again")
	if !errors.Is(err, domainerrors.ErrAlreadyBlacklisted) {
		t.Fatalf("expected already blacklisted, got %v", err)
	}

	entries, err := service.ListBlacklist(context.Background())
	if err != nil {
		t.Fatalf("list blacklist failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Account != "alice" || entries[0].Memo != "fraud" {
		t.Fatalf("unexpected blacklist entries %v", entries)
	}

	if err := service.Unblacklist(context.Background(), testOwner, "alice"); err != nil {
		t.Fatalf("unblacklist failed: %v", err)
	}
	err = service.Unblacklist(context.Background(), testOwner, "alice")
	if !errors.Is(err, domainerrors.ErrNotBlacklisted) {
		t.Fatalf("expected not blacklisted, got %v", err)
	}
}

func TestBlacklistRequiresOwnerAuthority(t *testing.T) {
	service, _, _ := newTestService()
	err := service.Blacklist(context.Background(), "alice", "bob", "")
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	err = service.Unblacklist(context.Background(), "alice", "bob")
	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestGetBalanceUnknownSymbol(t *testing.T) {
	service, _, _ := newTestService()
	_, err := service.GetBalance(context.Background(), "alice", "EUSD")
	if !errors.Is(err, domainerrors.ErrSymbolNotFound) {
		t.Fatalf("expected symbol not found, got %v", err)
	}
}

func TestGetSupplyUnknownSymbol(t *testing.T) {
	service, _, _ := newTestService()
	_, err := service.GetSupply(context.Background(), "EUSD")
	if !errors.Is(err, domainerrors.ErrSymbolNotFound) {
		t.Fatalf("expected symbol not found, got %v", err)
	}
}

func TestListBalancesAcrossSymbols(t *testing.T) {
	service, _, _ := newTestService()
	createEUSD(t, service)
	err := service.CreateToken(context.Background(), testOwner, ports.CreateTokenInput{
		Issuer:    "eusd.issuer",
		MaxSupply: mustAsset(t, "1000 GOLD"),
	})
	if err != nil {
		t.Fatalf("create second token failed: %v", err)
	}

	issueEUSD(t, service, "alice", "5.0000 EUSD")
	err = service.Issue(context.Background(), "eusd.issuer", ports.IssueInput{
		To:       "alice",
		Quantity: mustAsset(t, "7 GOLD"),
	})
	if err != nil {
		t.Fatalf("issue gold failed: %v", err)
	}

	rows, err := service.ListBalances(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list balances failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// Sorted by symbol code.
	if rows[0].Balance.Symbol.Code != "EUSD" || rows[1].Balance.Symbol.Code != "GOLD" {
		t.Fatalf("unexpected order: %s, %s", rows[0].Balance.Symbol.Code, rows[1].Balance.Symbol.Code)
	}
}
