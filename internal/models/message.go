package models

// Detail is a loosely-typed nested structure: one repeating transaction,
// entry, balance or order inside a message. Keys map to scalar strings; a
// missing key means the sub-field was not present in the source. Nesting
// deliberately stops here: one level of structured typing at the message
// level, plain maps below.
type Detail map[string]string

// Get returns the value for key, or nil when the key is absent or blank.
func (d Detail) Get(key string) *string {
	v, ok := d[key]
	if !ok || v == "" {
		return nil
	}

	return &v
}

// PostalAddress is the standardized representation of an ISO 20022 PstlAdr.
// It is only ever constructed when at least one sub-field carries data;
// otherwise the owning message keeps a nil address.
type PostalAddress struct {
	Country        *string  `json:"country"`
	TownName       *string  `json:"town_name"`
	PostCode       *string  `json:"post_code"`
	StreetName     *string  `json:"street_name"`
	BuildingNumber *string  `json:"building_number"`
	AddressLines   []string `json:"address_lines,omitempty"`
}

// Empty reports whether no sub-field carries data.
func (a *PostalAddress) Empty() bool {
	if a == nil {
		return true
	}

	return a.Country == nil && a.TownName == nil && a.PostCode == nil &&
		a.StreetName == nil && a.BuildingNumber == nil && len(a.AddressLines) == 0
}

// PaymentMessage is the unified representation of a parsed financial payment
// message. It flattens fields extracted from deeply nested ISO 20022 XML
// (pacs, camt, pain, ...) and legacy SWIFT MT formats into one lightweight
// shape. Every field is independently optional: nil means "not present in
// source", never an error. Amount is kept as a string to preserve the exact
// decimal representation of the raw document.
type PaymentMessage struct {
	MessageID       *string        `json:"message_id"`
	EndToEndID      *string        `json:"end_to_end_id"`
	Amount          *string        `json:"amount"`
	Currency        *string        `json:"currency"`
	SenderBIC       *string        `json:"sender_bic"`
	ReceiverBIC     *string        `json:"receiver_bic"`
	DebtorName      *string        `json:"debtor_name"`
	CreditorName    *string        `json:"creditor_name"`
	DebtorAddress   *PostalAddress `json:"debtor_address,omitempty"`
	CreditorAddress *PostalAddress `json:"creditor_address,omitempty"`
	DebtorAccount   *string        `json:"debtor_account"`
	CreditorAccount *string        `json:"creditor_account"`
	UETR            *string        `json:"uetr"`
}

func (m *PaymentMessage) Base() *PaymentMessage { return m }

func (m *PaymentMessage) SchemaKey() string { return "" }

// Message is the common surface of the base record and every specialized
// variant. Base exposes the shared field bag; SchemaKey identifies the
// message family ("pacs.008", "camt.053", ...) or "" for the plain record.
type Message interface {
	Base() *PaymentMessage
	SchemaKey() string
}

// Capability interfaces implemented by the variants that carry the matching
// repeating structure. Consumers type-assert against these instead of
// probing concrete types.
type (
	TransactionCarrier interface{ TransactionList() []Detail }
	EntryCarrier       interface{ EntryList() []Detail }
	BalanceCarrier     interface{ BalanceList() []Detail }
	OrderCarrier       interface{ OrderList() []Detail }

	// OriginalMessageCarrier is implemented by status reports, returns and
	// recalls that reference the message they respond to.
	OriginalMessageCarrier interface{ OriginalMessageRef() *string }

	// CaseCarrier is implemented by investigation-flow messages sharing a
	// case identification.
	CaseCarrier interface{ CaseRef() *string }
)

// ValidationReport is the outcome of structural or business validation.
// It is always a value; validation never raises.
type ValidationReport struct {
	Valid  bool     `json:"is_valid"`
	Errors []string `json:"errors"`
}
