package postgresadapter

import (
	"time"

	"stablecoin/contexts/token-core/ledger-service/domain/entities"
)

type supplyModel struct {
	SymbolCode      string `gorm:"column:symbol_code;primaryKey"`
	Precision       uint8  `gorm:"column:precision"`
	SupplyAmount    int64  `gorm:"column:supply_amount"`
	MaxSupplyAmount int64  `gorm:"column:max_supply_amount"`
	Issuer          string `gorm:"column:issuer"`
}

func (supplyModel) TableName() string {
	return "token_supplies"
}

func supplyModelFromEntity(record entities.SupplyRecord) supplyModel {
	return supplyModel{
		SymbolCode:      record.Supply.Symbol.Code,
		Precision:       record.Supply.Symbol.Precision,
		SupplyAmount:    record.Supply.Amount,
		MaxSupplyAmount: record.MaxSupply.Amount,
		Issuer:          record.Issuer,
	}
}

func (m supplyModel) toEntity() entities.SupplyRecord {
	symbol := entities.Symbol{Code: m.SymbolCode, Precision: m.Precision}
	return entities.SupplyRecord{
		Supply:    entities.Asset{Amount: m.SupplyAmount, Symbol: symbol},
		MaxSupply: entities.Asset{Amount: m.MaxSupplyAmount, Symbol: symbol},
		Issuer:    m.Issuer,
	}
}

type balanceModel struct {
	Account    string `gorm:"column:account;primaryKey;index:idx_token_balances_account"`
	SymbolCode string `gorm:"column:symbol_code;primaryKey"`
	Precision  uint8  `gorm:"column:precision"`
	Amount     int64  `gorm:"column:amount"`
	Payer      string `gorm:"column:payer"`
}

func (balanceModel) TableName() string {
	return "token_balances"
}

func balanceModelFromEntity(record entities.BalanceRecord) balanceModel {
	return balanceModel{
		Account:    record.Account,
		SymbolCode: record.Balance.Symbol.Code,
		Precision:  record.Balance.Symbol.Precision,
		Amount:     record.Balance.Amount,
		Payer:      record.Payer,
	}
}

func (m balanceModel) toEntity() entities.BalanceRecord {
	return entities.BalanceRecord{
		Account: m.Account,
		Balance: entities.Asset{
			Amount: m.Amount,
			Symbol: entities.Symbol{Code: m.SymbolCode, Precision: m.Precision},
		},
		Payer: m.Payer,
	}
}

// pauseModel is a single-row table; id is always 1.
type pauseModel struct {
	ID     int  `gorm:"column:id;primaryKey"`
	Paused bool `gorm:"column:paused"`
}

func (pauseModel) TableName() string {
	return "token_pause_state"
}

type blacklistModel struct {
	Account   string    `gorm:"column:account;primaryKey"`
	Memo      string    `gorm:"column:memo"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (blacklistModel) TableName() string {
	return "token_blacklist"
}

func blacklistModelFromEntity(entry entities.BlacklistEntry) blacklistModel {
	return blacklistModel{
		Account:   entry.Account,
		Memo:      entry.Memo,
		CreatedAt: entry.CreatedAt,
	}
}

func (m blacklistModel) toEntity() entities.BlacklistEntry {
	return entities.BlacklistEntry{
		Account:   m.Account,
		Memo:      m.Memo,
		CreatedAt: m.CreatedAt,
	}
}
