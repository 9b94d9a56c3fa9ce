package models

// Pacs008Message is the detailed schema for a PACS.008 FI to FI Customer
// Credit Transfer: settlement info plus the distinct credit transactions.
type Pacs008Message struct {
	PaymentMessage

	SettlementMethod     *string  `json:"settlement_method"`
	ClearingSystem       *string  `json:"clearing_system"`
	NumberOfTransactions *int     `json:"number_of_transactions"`
	SettlementAmount     *string  `json:"settlement_amount"`
	SettlementCurrency   *string  `json:"settlement_currency"`
	Transactions         []Detail `json:"transactions,omitempty"`
}

func (m *Pacs008Message) SchemaKey() string { return "pacs.008" }
func (m *Pacs008Message) TransactionList() []Detail { return m.Transactions }

// Pacs009Message is the detailed schema for a PACS.009 Financial Institution
// Credit Transfer.
type Pacs009Message struct {
	PaymentMessage

	CreationDateTime *string  `json:"creation_date_time"`
	SettlementMethod *string  `json:"settlement_method"`
	Transactions     []Detail `json:"transactions,omitempty"`
}

func (m *Pacs009Message) SchemaKey() string { return "pacs.009" }
func (m *Pacs009Message) TransactionList() []Detail { return m.Transactions }

// Pacs004Message is the detailed schema for a PACS.004 Payment Return,
// referencing the original message being returned.
type Pacs004Message struct {
	PaymentMessage

	CreationDateTime      *string  `json:"creation_date_time"`
	OriginalMessageID     *string  `json:"original_message_id"`
	OriginalMessageNameID *string  `json:"original_message_name_id"`
	Transactions          []Detail `json:"transactions,omitempty"`
}

func (m *Pacs004Message) SchemaKey() string { return "pacs.004" }
func (m *Pacs004Message) TransactionList() []Detail { return m.Transactions }
func (m *Pacs004Message) OriginalMessageRef() *string { return m.OriginalMessageID }

// Pacs002Message is the detailed schema for a PACS.002 FI to FI Payment
// Status Report.
type Pacs002Message struct {
	PaymentMessage

	CreationDateTime      *string  `json:"creation_date_time"`
	OriginalMessageID     *string  `json:"original_message_id"`
	OriginalMessageNameID *string  `json:"original_message_name_id"`
	GroupStatus           *string  `json:"group_status"`
	TransactionsStatus    []Detail `json:"transactions_status,omitempty"`
}

func (m *Pacs002Message) SchemaKey() string { return "pacs.002" }
func (m *Pacs002Message) OriginalMessageRef() *string { return m.OriginalMessageID }
