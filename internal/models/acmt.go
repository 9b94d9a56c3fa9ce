package models

// Acmt007Message is the detailed schema for an ACMT.007 Account Opening
// Request.
type Acmt007Message struct {
	PaymentMessage

	CreationDateTime *string `json:"creation_date_time"`
	ProcessID        *string `json:"process_id"`
	AccountID        *string `json:"account_id"`
	AccountCurrency  *string `json:"account_currency"`
	OrganizationName *string `json:"organization_name"`
	CountryOfOp      *string `json:"country_of_operation"`
	ServicerBIC      *string `json:"servicer_bic"`
	BranchName       *string `json:"branch_name"`
}

func (m *Acmt007Message) SchemaKey() string { return "acmt.007" }

// Acmt015Message is the detailed schema for an ACMT.015 Account Excluded
// Mandate Maintenance Request. Shares the reference and account shape of
// the opening request.
type Acmt015Message struct {
	PaymentMessage

	CreationDateTime *string `json:"creation_date_time"`
	ProcessID        *string `json:"process_id"`
	AccountID        *string `json:"account_id"`
	AccountCurrency  *string `json:"account_currency"`
	OrganizationName *string `json:"organization_name"`
	CountryOfOp      *string `json:"country_of_operation"`
	ServicerBIC      *string `json:"servicer_bic"`
	BranchName       *string `json:"branch_name"`
}

func (m *Acmt015Message) SchemaKey() string { return "acmt.015" }
