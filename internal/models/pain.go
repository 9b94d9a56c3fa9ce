package models

// Pain001Message is the detailed schema for a PAIN.001 Customer Credit
// Transfer Initiation: the initiating party plus the payment information
// blocks carrying individual transfers.
type Pain001Message struct {
	PaymentMessage

	CreationDateTime     *string  `json:"creation_date_time"`
	NumberOfTransactions *int     `json:"number_of_transactions"`
	ControlSum           *string  `json:"control_sum"`
	InitiatingParty      *string  `json:"initiating_party"`
	PaymentInformation   []Detail `json:"payment_information,omitempty"`
}

func (m *Pain001Message) SchemaKey() string { return "pain.001" }
func (m *Pain001Message) TransactionList() []Detail { return m.PaymentInformation }

// Pain008Message is the detailed schema for a PAIN.008 Customer Direct
// Debit Initiation.
type Pain008Message struct {
	PaymentMessage

	CreationDateTime     *string  `json:"creation_date_time"`
	NumberOfTransactions *int     `json:"number_of_transactions"`
	ControlSum           *string  `json:"control_sum"`
	InitiatingParty      *string  `json:"initiating_party"`
	PaymentInformation   []Detail `json:"payment_information,omitempty"`
}

func (m *Pain008Message) SchemaKey() string { return "pain.008" }
func (m *Pain008Message) TransactionList() []Detail { return m.PaymentInformation }

// Pain002Message is the detailed schema for a PAIN.002 Customer Payment
// Status Report: original group info plus per-transaction statuses.
type Pain002Message struct {
	PaymentMessage

	CreationDateTime      *string  `json:"creation_date_time"`
	InitiatingParty       *string  `json:"initiating_party"`
	OriginalMessageID     *string  `json:"original_message_id"`
	OriginalMessageNameID *string  `json:"original_message_name_id"`
	GroupStatus           *string  `json:"group_status"`
	TransactionsStatus    []Detail `json:"transactions_status,omitempty"`
}

func (m *Pain002Message) SchemaKey() string { return "pain.002" }
func (m *Pain002Message) OriginalMessageRef() *string { return m.OriginalMessageID }
