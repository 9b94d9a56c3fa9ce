package models

// Sese023Message is the detailed schema for a SESE.023 Securities Settlement
// Transaction Instruction: the traded security, its quantity and the
// settlement parties.
type Sese023Message struct {
	PaymentMessage

	CreationDateTime     *string `json:"creation_date_time"`
	TradeDate            *string `json:"trade_date"`
	SettlementDate       *string `json:"settlement_date"`
	SecurityID           *string `json:"security_id"`
	SecurityIDType       *string `json:"security_id_type"`
	SecurityQuantity     *string `json:"security_quantity"`
	SecurityQuantityType *string `json:"security_quantity_type"`
	SettlementAmount     *string `json:"settlement_amount"`
	SettlementCurrency   *string `json:"settlement_currency"`
	DeliveringAgent      *string `json:"delivering_agent"`
	ReceivingAgent       *string `json:"receiving_agent"`
}

func (m *Sese023Message) SchemaKey() string { return "sese.023" }
