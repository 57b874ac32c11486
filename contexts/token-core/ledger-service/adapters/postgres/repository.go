package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"stablecoin/contexts/token-core/ledger-service/domain/entities"
	domainerrors "stablecoin/contexts/token-core/ledger-service/domain/errors"
	"stablecoin/contexts/token-core/ledger-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const pauseRowID = 1

// Repository implements the ledger store over Postgres. Atomically maps the
// host's all-or-nothing transaction boundary onto a gorm transaction.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the ledger tables.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(
		&supplyModel{},
		&balanceModel{},
		&pauseModel{},
		&blacklistModel{},
	)
}

func (r *Repository) Atomically(ctx context.Context, fn func(tx ports.StoreTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&storeView{db: tx, logger: r.logger})
	})
}

func (r *Repository) view(ctx context.Context) *storeView {
	return &storeView{db: r.db.WithContext(ctx), logger: r.logger}
}

func (r *Repository) GetSupply(ctx context.Context, symbolCode string) (entities.SupplyRecord, bool, error) {
	return r.view(ctx).GetSupply(ctx, symbolCode)
}

func (r *Repository) CreateSupply(ctx context.Context, record entities.SupplyRecord) error {
	return r.view(ctx).CreateSupply(ctx, record)
}

func (r *Repository) UpdateSupply(ctx context.Context, record entities.SupplyRecord) error {
	return r.view(ctx).UpdateSupply(ctx, record)
}

func (r *Repository) GetBalance(ctx context.Context, account string, symbolCode string) (entities.BalanceRecord, bool, error) {
	return r.view(ctx).GetBalance(ctx, account, symbolCode)
}

func (r *Repository) CreateBalance(ctx context.Context, record entities.BalanceRecord) error {
	return r.view(ctx).CreateBalance(ctx, record)
}

func (r *Repository) UpdateBalance(ctx context.Context, record entities.BalanceRecord) error {
	return r.view(ctx).UpdateBalance(ctx, record)
}

func (r *Repository) DeleteBalance(ctx context.Context, account string, symbolCode string) error {
	return r.view(ctx).DeleteBalance(ctx, account, symbolCode)
}

func (r *Repository) ListBalancesByAccount(ctx context.Context, account string) ([]entities.BalanceRecord, error) {
	return r.view(ctx).ListBalancesByAccount(ctx, account)
}

func (r *Repository) ListBalancesBySymbol(ctx context.Context, symbolCode string) ([]entities.BalanceRecord, error) {
	return r.view(ctx).ListBalancesBySymbol(ctx, symbolCode)
}

func (r *Repository) GetPauseState(ctx context.Context) (entities.PauseState, error) {
	return r.view(ctx).GetPauseState(ctx)
}

func (r *Repository) SetPauseState(ctx context.Context, state entities.PauseState) error {
	return r.view(ctx).SetPauseState(ctx, state)
}

func (r *Repository) GetBlacklistEntry(ctx context.Context, account string) (entities.BlacklistEntry, bool, error) {
	return r.view(ctx).GetBlacklistEntry(ctx, account)
}

func (r *Repository) CreateBlacklistEntry(ctx context.Context, entry entities.BlacklistEntry) error {
	return r.view(ctx).CreateBlacklistEntry(ctx, entry)
}

func (r *Repository) DeleteBlacklistEntry(ctx context.Context, account string) error {
	return r.view(ctx).DeleteBlacklistEntry(ctx, account)
}

func (r *Repository) ListBlacklist(ctx context.Context) ([]entities.BlacklistEntry, error) {
	return r.view(ctx).ListBlacklist(ctx)
}

// storeView runs the store operations against one gorm handle, either the
// root connection or an open transaction.
type storeView struct {
	db     *gorm.DB
	logger *slog.Logger
}

func (v *storeView) GetSupply(_ context.Context, symbolCode string) (entities.SupplyRecord, bool, error) {
	var row supplyModel
	err := v.db.Where("symbol_code = ?", strings.TrimSpace(symbolCode)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.SupplyRecord{}, false, nil
		}
		return entities.SupplyRecord{}, false, v.logError("ledger_repo_get_supply_failed", err, "symbol", symbolCode)
	}
	return row.toEntity(), true, nil
}

func (v *storeView) CreateSupply(_ context.Context, record entities.SupplyRecord) error {
	row := supplyModelFromEntity(record)
	if err := v.db.Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrSymbolExists
		}
		return v.logError("ledger_repo_create_supply_failed", err, "symbol", row.SymbolCode)
	}
	return nil
}

func (v *storeView) UpdateSupply(_ context.Context, record entities.SupplyRecord) error {
	row := supplyModelFromEntity(record)
	update := v.db.Model(&supplyModel{}).
		Where("symbol_code = ?", row.SymbolCode).
		Updates(map[string]any{
			"supply_amount":     row.SupplyAmount,
			"max_supply_amount": row.MaxSupplyAmount,
			"issuer":            row.Issuer,
		})
	if update.Error != nil {
		return v.logError("ledger_repo_update_supply_failed", update.Error, "symbol", row.SymbolCode)
	}
	if update.RowsAffected == 0 {
		return domainerrors.ErrSymbolNotFound
	}
	return nil
}

func (v *storeView) GetBalance(_ context.Context, account string, symbolCode string) (entities.BalanceRecord, bool, error) {
	var row balanceModel
	err := v.db.
		Where("account = ?", strings.TrimSpace(account)).
		Where("symbol_code = ?", strings.TrimSpace(symbolCode)).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.BalanceRecord{}, false, nil
		}
		return entities.BalanceRecord{}, false, v.logError("ledger_repo_get_balance_failed", err,
			"account", account,
			"symbol", symbolCode,
		)
	}
	return row.toEntity(), true, nil
}

func (v *storeView) CreateBalance(_ context.Context, record entities.BalanceRecord) error {
	row := balanceModelFromEntity(record)
	if err := v.db.Create(&row).Error; err != nil {
		return v.logError("ledger_repo_create_balance_failed", err,
			"account", row.Account,
			"symbol", row.SymbolCode,
		)
	}
	return nil
}

func (v *storeView) UpdateBalance(_ context.Context, record entities.BalanceRecord) error {
	row := balanceModelFromEntity(record)
	update := v.db.Model(&balanceModel{}).
		Where("account = ?", row.Account).
		Where("symbol_code = ?", row.SymbolCode).
		Updates(map[string]any{
			"amount": row.Amount,
			"payer":  row.Payer,
		})
	if update.Error != nil {
		return v.logError("ledger_repo_update_balance_failed", update.Error,
			"account", row.Account,
			"symbol", row.SymbolCode,
		)
	}
	if update.RowsAffected == 0 {
		return domainerrors.ErrBalanceNotFound
	}
	return nil
}

func (v *storeView) DeleteBalance(_ context.Context, account string, symbolCode string) error {
	del := v.db.
		Where("account = ?", strings.TrimSpace(account)).
		Where("symbol_code = ?", strings.TrimSpace(symbolCode)).
		Delete(&balanceModel{})
	if del.Error != nil {
		return v.logError("ledger_repo_delete_balance_failed", del.Error,
			"account", account,
			"symbol", symbolCode,
		)
	}
	if del.RowsAffected == 0 {
		return domainerrors.ErrBalanceNotFound
	}
	return nil
}

func (v *storeView) ListBalancesByAccount(_ context.Context, account string) ([]entities.BalanceRecord, error) {
	var rows []balanceModel
	err := v.db.
		Where("account = ?", strings.TrimSpace(account)).
		Order("symbol_code ASC").
		Find(&rows).Error
	if err != nil {
		return nil, v.logError("ledger_repo_list_balances_by_account_failed", err, "account", account)
	}
	return toBalanceEntities(rows), nil
}

func (v *storeView) ListBalancesBySymbol(_ context.Context, symbolCode string) ([]entities.BalanceRecord, error) {
	var rows []balanceModel
	err := v.db.
		Where("symbol_code = ?", strings.TrimSpace(symbolCode)).
		Order("account ASC").
		Find(&rows).Error
	if err != nil {
		return nil, v.logError("ledger_repo_list_balances_by_symbol_failed", err, "symbol", symbolCode)
	}
	return toBalanceEntities(rows), nil
}

func (v *storeView) GetPauseState(_ context.Context) (entities.PauseState, error) {
	var row pauseModel
	err := v.db.Where("id = ?", pauseRowID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Absence reads as the unpaused default.
			return entities.PauseState{}, nil
		}
		return entities.PauseState{}, v.logError("ledger_repo_get_pause_state_failed", err)
	}
	return entities.PauseState{Paused: row.Paused}, nil
}

func (v *storeView) SetPauseState(_ context.Context, state entities.PauseState) error {
	row := pauseModel{ID: pauseRowID, Paused: state.Paused}
	err := v.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{"paused": row.Paused}),
	}).Create(&row).Error
	if err != nil {
		return v.logError("ledger_repo_set_pause_state_failed", err, "paused", state.Paused)
	}
	return nil
}

func (v *storeView) GetBlacklistEntry(_ context.Context, account string) (entities.BlacklistEntry, bool, error) {
	var row blacklistModel
	err := v.db.Where("account = ?", strings.TrimSpace(account)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.BlacklistEntry{}, false, nil
		}
		return entities.BlacklistEntry{}, false, v.logError("ledger_repo_get_blacklist_entry_failed", err, "account", account)
	}
	return row.toEntity(), true, nil
}

func (v *storeView) CreateBlacklistEntry(_ context.Context, entry entities.BlacklistEntry) error {
	row := blacklistModelFromEntity(entry)
	if err := v.db.Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyBlacklisted
		}
		return v.logError("ledger_repo_create_blacklist_entry_failed", err, "account", row.Account)
	}
	return nil
}

func (v *storeView) DeleteBlacklistEntry(_ context.Context, account string) error {
	del := v.db.Where("account = ?", strings.TrimSpace(account)).Delete(&blacklistModel{})
	if del.Error != nil {
		return v.logError("ledger_repo_delete_blacklist_entry_failed", del.Error, "account", account)
	}
	if del.RowsAffected == 0 {
		return domainerrors.ErrNotBlacklisted
	}
	return nil
}

func (v *storeView) ListBlacklist(_ context.Context) ([]entities.BlacklistEntry, error) {
	var rows []blacklistModel
	if err := v.db.Order("account ASC").Find(&rows).Error; err != nil {
		return nil, v.logError("ledger_repo_list_blacklist_failed", err)
	}
	entries := make([]entities.BlacklistEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toEntity())
	}
	return entries, nil
}

func (v *storeView) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "token-core/ledger-service",
		"layer", "adapters/postgres",
		"error", err.Error(),
	}, args...)
	v.logger.Error("ledger repository operation failed", fields...)
	return err
}

func toBalanceEntities(rows []balanceModel) []entities.BalanceRecord {
	records := make([]entities.BalanceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toEntity())
	}
	return records
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
