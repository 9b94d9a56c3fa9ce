package models

// Camt052Message is the detailed schema for a CAMT.052 Bank to Customer
// Account Report.
type Camt052Message struct {
	PaymentMessage

	CreationDateTime   *string  `json:"creation_date_time"`
	ReportID           *string  `json:"report_id"`
	AccountID          *string  `json:"account_id"`
	AccountCurrency    *string  `json:"account_currency"`
	AccountOwner       *string  `json:"account_owner"`
	AccountServicer    *string  `json:"account_servicer"`
	TotalCreditEntries *int     `json:"total_credit_entries"`
	TotalCreditAmount  *string  `json:"total_credit_amount"`
	TotalDebitEntries  *int     `json:"total_debit_entries"`
	TotalDebitAmount   *string  `json:"total_debit_amount"`
	Entries            []Detail `json:"entries,omitempty"`
}

func (m *Camt052Message) SchemaKey() string { return "camt.052" }
func (m *Camt052Message) EntryList() []Detail { return m.Entries }

// Camt053Message is the detailed schema for a CAMT.053 Bank to Customer
// Statement: statement details, balances and distinct entries.
type Camt053Message struct {
	PaymentMessage

	CreationDateTime   *string  `json:"creation_date_time"`
	StatementID        *string  `json:"statement_id"`
	AccountID          *string  `json:"account_id"`
	AccountCurrency    *string  `json:"account_currency"`
	AccountOwner       *string  `json:"account_owner"`
	AccountServicer    *string  `json:"account_servicer"`
	Balances           []Detail `json:"balances,omitempty"`
	TotalCreditEntries *int     `json:"total_credit_entries"`
	TotalCreditAmount  *string  `json:"total_credit_amount"`
	TotalDebitEntries  *int     `json:"total_debit_entries"`
	TotalDebitAmount   *string  `json:"total_debit_amount"`
	Entries            []Detail `json:"entries,omitempty"`
}

func (m *Camt053Message) SchemaKey() string { return "camt.053" }
func (m *Camt053Message) EntryList() []Detail { return m.Entries }
func (m *Camt053Message) BalanceList() []Detail { return m.Balances }

// Camt054Message is the detailed schema for a CAMT.054 Bank to Customer
// Debit/Credit Notification.
type Camt054Message struct {
	PaymentMessage

	CreationDateTime   *string  `json:"creation_date_time"`
	NotificationID     *string  `json:"notification_id"`
	AccountID          *string  `json:"account_id"`
	AccountCurrency    *string  `json:"account_currency"`
	AccountOwner       *string  `json:"account_owner"`
	AccountServicer    *string  `json:"account_servicer"`
	TotalCreditEntries *int     `json:"total_credit_entries"`
	TotalCreditAmount  *string  `json:"total_credit_amount"`
	TotalDebitEntries  *int     `json:"total_debit_entries"`
	TotalDebitAmount   *string  `json:"total_debit_amount"`
	Entries            []Detail `json:"entries,omitempty"`
}

func (m *Camt054Message) SchemaKey() string { return "camt.054" }
func (m *Camt054Message) EntryList() []Detail { return m.Entries }

// Camt004Message is the detailed schema for a CAMT.004 Return Account:
// account details, balances, limits and business errors.
type Camt004Message struct {
	PaymentMessage

	CreationDateTime      *string  `json:"creation_date_time"`
	OriginalBusinessQuery *string  `json:"original_business_query"`
	AccountID             *string  `json:"account_id"`
	AccountOwner          *string  `json:"account_owner"`
	AccountServicer       *string  `json:"account_servicer"`
	AccountStatus         *string  `json:"account_status"`
	AccountCurrency       *string  `json:"account_currency"`
	Balances              []Detail `json:"balances,omitempty"`
	Limits                []Detail `json:"limits,omitempty"`
	NumberOfPayments      *string  `json:"number_of_payments"`
	BusinessErrors        []Detail `json:"business_errors,omitempty"`
}

func (m *Camt004Message) SchemaKey() string { return "camt.004" }
func (m *Camt004Message) BalanceList() []Detail { return m.Balances }

// Camt056Message is the detailed schema for a CAMT.056 FI to FI Customer
// Credit Transfer Recall, requesting cancellation of a previous payment.
type Camt056Message struct {
	PaymentMessage

	CreationDateTime       *string  `json:"creation_date_time"`
	AssignmentID           *string  `json:"assignment_id"`
	CaseID                 *string  `json:"case_id"`
	OriginalMessageID      *string  `json:"original_message_id"`
	OriginalMessageNameID  *string  `json:"original_message_name_id"`
	RecallReason           *string  `json:"recall_reason"`
	UnderlyingTransactions []Detail `json:"underlying_transactions,omitempty"`
}

func (m *Camt056Message) SchemaKey() string { return "camt.056" }
func (m *Camt056Message) OriginalMessageRef() *string { return m.OriginalMessageID }
func (m *Camt056Message) CaseRef() *string { return m.CaseID }

// Camt029Message is the detailed schema for a CAMT.029 Resolution Of
// Investigation, the response to a recall or investigation.
type Camt029Message struct {
	PaymentMessage

	CreationDateTime    *string  `json:"creation_date_time"`
	AssignmentID        *string  `json:"assignment_id"`
	CaseID              *string  `json:"case_id"`
	InvestigationStatus *string  `json:"investigation_status"`
	CancellationDetails []Detail `json:"cancellation_details,omitempty"`
}

func (m *Camt029Message) SchemaKey() string { return "camt.029" }
func (m *Camt029Message) CaseRef() *string { return m.CaseID }

// Camt086Message is the detailed schema for a CAMT.086 Bank Services
// Billing Statement.
type Camt086Message struct {
	PaymentMessage

	ReportID         *string `json:"report_id"`
	GroupID          *string `json:"group_id"`
	StatementID      *string `json:"statement_id"`
	CreationDateTime *string `json:"creation_date_time"`
	StatementStatus  *string `json:"statement_status"`
}

func (m *Camt086Message) SchemaKey() string { return "camt.086" }
