package models

// Fxtr014Message is the detailed schema for an FXTR.014 Foreign Exchange
// Trade Instruction: exchange rate, trade dates and settling amounts.
type Fxtr014Message struct {
	PaymentMessage

	CreationDateTime *string `json:"creation_date_time"`
	TradeDate        *string `json:"trade_date"`
	SettlementDate   *string `json:"settlement_date"`
	ExchangeRate     *string `json:"exchange_rate"`
	TradingParty     *string `json:"trading_party"`
	Counterparty     *string `json:"counterparty"`
	TradedCurrency   *string `json:"traded_currency"`
	TradedAmount     *string `json:"traded_amount"`
}

func (m *Fxtr014Message) SchemaKey() string { return "fxtr.014" }
