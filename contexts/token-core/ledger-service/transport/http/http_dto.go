package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateTokenRequest struct {
	Issuer string `json:"issuer"`
	// MaxSupply uses the canonical asset form, e.g. "1000000.0000 EUSD".
	// The fractional digits fix the symbol precision.
	MaxSupply string `json:"max_supply"`
}

type IssueRequest struct {
	To       string `json:"to"`
	Quantity string `json:"quantity"`
	Memo     string `json:"memo,omitempty"`
}

type TransferRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Quantity string `json:"quantity"`
	Memo     string `json:"memo,omitempty"`
}

type BurnRequest struct {
	Quantity string `json:"quantity"`
	Memo     string `json:"memo,omitempty"`
}

type BlacklistRequest struct {
	Account string `json:"account"`
	Memo    string `json:"memo,omitempty"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type SupplyDTO struct {
	Symbol    string `json:"symbol"`
	Precision uint8  `json:"precision"`
	Supply    string `json:"supply"`
}

type SupplyResponse struct {
	Status string    `json:"status"`
	Data   SupplyDTO `json:"data"`
}

type BalanceDTO struct {
	Account string `json:"account"`
	Symbol  string `json:"symbol"`
	Balance string `json:"balance"`
}

type BalanceResponse struct {
	Status string     `json:"status"`
	Data   BalanceDTO `json:"data"`
}

type BalanceListResponse struct {
	Status string       `json:"status"`
	Data   []BalanceDTO `json:"data"`
}

type PolicyDTO struct {
	Paused bool `json:"paused"`
}

type PolicyResponse struct {
	Status string    `json:"status"`
	Data   PolicyDTO `json:"data"`
}

type BlacklistEntryDTO struct {
	Account   string `json:"account"`
	Memo      string `json:"memo,omitempty"`
	CreatedAt string `json:"created_at"`
}

type BlacklistListResponse struct {
	Status string              `json:"status"`
	Data   []BlacklistEntryDTO `json:"data"`
}
