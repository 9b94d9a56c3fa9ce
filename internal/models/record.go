package models

import (
	"encoding/json"
	"time"
)

// MessageRecord is the relational projection of a parsed message. Scalar
// base fields get their own columns for querying; everything family
// specific rides along as a JSON details blob.
type MessageRecord struct {
	ID              int64     `json:"id"`
	MsgType         string    `json:"msg_type"`
	MessageID       *string   `json:"message_id"`
	EndToEndID      *string   `json:"end_to_end_id"`
	UETR            *string   `json:"uetr"`
	Amount          *string   `json:"amount"`
	Currency        *string   `json:"currency"`
	SenderBIC       *string   `json:"sender_bic"`
	ReceiverBIC     *string   `json:"receiver_bic"`
	DebtorName      *string   `json:"debtor_name"`
	CreditorName    *string   `json:"creditor_name"`
	DebtorAccount   *string   `json:"debtor_account"`
	CreditorAccount *string   `json:"creditor_account"`
	Details         []byte    `json:"details"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewMessageRecord projects a message onto its relational shape. The full
// typed record is serialized into Details so no field is lost on the way
// through the database.
func NewMessageRecord(msg Message) (*MessageRecord, error) {
	details, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	base := msg.Base()
	return &MessageRecord{
		MsgType:         msg.SchemaKey(),
		MessageID:       base.MessageID,
		EndToEndID:      base.EndToEndID,
		UETR:            base.UETR,
		Amount:          base.Amount,
		Currency:        base.Currency,
		SenderBIC:       base.SenderBIC,
		ReceiverBIC:     base.ReceiverBIC,
		DebtorName:      base.DebtorName,
		CreditorName:    base.CreditorName,
		DebtorAccount:   base.DebtorAccount,
		CreditorAccount: base.CreditorAccount,
		Details:         details,
	}, nil
}

// MessageFilter narrows a message search. Zero values mean "no constraint".
type MessageFilter struct {
	MsgType   string
	SenderBIC string
	Currency  string
	Limit     uint64
}
