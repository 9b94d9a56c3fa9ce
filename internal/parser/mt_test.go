package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpurse/go-openpurse/internal/models"
)

const mt103Sample = `{1:F01BANKBEBBAXXX0000000000}{2:I103BANKDEFFXXXX0000000000N}{3:{121:EB6305C9-1F7F-49DE-AED0-16487C27B42D}}{4:
:20:REF12345
:23B:CRED
:32A:250101EUR1234,56
:50K:/BE71096123456769
JOHN DOE
AVENUE LOUISE 1
:59:/DE89370400440532013000
JANE SMITH
:71A:SHA
-}`

func TestParseMT103(t *testing.T) {
	msg := New([]byte(mt103Sample)).Parse()

	typed, ok := msg.(*models.Pacs008Message)
	require.True(t, ok)
	assert.Equal(t, "pacs.008", typed.SchemaKey())

	base := typed.Base()
	require.NotNil(t, base.SenderBIC)
	assert.Equal(t, "BANKBEBBAXXX", *base.SenderBIC)
	require.NotNil(t, base.ReceiverBIC)
	assert.Equal(t, "BANKDEFFXXXX", *base.ReceiverBIC)

	require.NotNil(t, base.UETR)
	assert.Equal(t, "eb6305c9-1f7f-49de-aed0-16487c27b42d", *base.UETR)

	require.NotNil(t, base.MessageID)
	assert.Equal(t, "REF12345", *base.MessageID)
	require.NotNil(t, base.Currency)
	assert.Equal(t, "EUR", *base.Currency)
	require.NotNil(t, base.Amount)
	assert.Equal(t, "1234.56", *base.Amount)

	require.NotNil(t, base.DebtorAccount)
	assert.Equal(t, "BE71096123456769", *base.DebtorAccount)
	require.NotNil(t, base.DebtorName)
	assert.Equal(t, "JOHN DOE AVENUE LOUISE 1", *base.DebtorName)
	require.NotNil(t, base.CreditorAccount)
	assert.Equal(t, "DE89370400440532013000", *base.CreditorAccount)
	require.NotNil(t, base.CreditorName)
	assert.Equal(t, "JANE SMITH", *base.CreditorName)
}

func TestParseMT940Statement(t *testing.T) {
	raw := `{1:F01BANKUS33AXXX0000000000}{2:I940BANKGB2LXXXX0000000000N}{4:
:20:STMT001
:25:12345678
:28C:1/1
:60F:C250101USD5000,00
:61:2501020102D250,00NTRF123456
:86:PAYMENT FOR INVOICE 42
:62F:C250102USD4750,00
-}`

	msg := New([]byte(raw)).Parse()
	stmt, ok := msg.(*models.Camt053Message)
	require.True(t, ok)
	assert.Equal(t, "camt.053", stmt.SchemaKey())

	require.NotNil(t, stmt.StatementID)
	assert.Equal(t, "STMT001", *stmt.StatementID)
	require.NotNil(t, stmt.AccountID)
	assert.Equal(t, "12345678", *stmt.AccountID)

	require.Len(t, stmt.Balances, 2)
	assert.Equal(t, "OPBD", stmt.Balances[0]["type"])
	assert.Equal(t, "CRDT", stmt.Balances[0]["credit_debit_indicator"])
	assert.Equal(t, "250101", stmt.Balances[0]["date"])
	assert.Equal(t, "USD", stmt.Balances[0]["currency"])
	assert.Equal(t, "5000.00", stmt.Balances[0]["amount"])
	assert.Equal(t, "CLBD", stmt.Balances[1]["type"])
	assert.Equal(t, "4750.00", stmt.Balances[1]["amount"])

	require.Len(t, stmt.Entries, 1)
	entry := stmt.Entries[0]
	assert.Equal(t, "250102", entry["value_date"])
	assert.Equal(t, "DBIT", entry["credit_debit_indicator"])
	assert.Equal(t, "250.00", entry["amount"])
	assert.Equal(t, "123456", entry["reference"])
	assert.Equal(t, "PAYMENT FOR INVOICE 42", entry["remittance"])
}

func TestParseMT940EntryGrouping(t *testing.T) {
	raw := `{1:F01BANKUS33AXXX0000000000}{2:I940BANKGB2LXXXX0000000000N}{4:
:20:STMT002
:25:12345678
:60F:C250101USD5000,00
:61:2501020102D250,00NTRF123456
:86:PAYMENT FOR INVOICE 42
:61:2501030103C1000,00NTRFREF-2
:62F:C250103USD5750,00
-}`

	stmt, ok := New([]byte(raw)).Parse().(*models.Camt053Message)
	require.True(t, ok)

	require.Len(t, stmt.Entries, 2)
	first, second := stmt.Entries[0], stmt.Entries[1]

	assert.Equal(t, "250102", first["value_date"])
	assert.Equal(t, "DBIT", first["credit_debit_indicator"])
	assert.Equal(t, "PAYMENT FOR INVOICE 42", first["remittance"])

	// the :86: belongs to the entry it follows, not the one after
	assert.Equal(t, "250103", second["value_date"])
	assert.Equal(t, "CRDT", second["credit_debit_indicator"])
	assert.Equal(t, "1000.00", second["amount"])
	assert.Equal(t, "REF-2", second["reference"])
	assert.NotContains(t, second, "remittance")
}

func TestParseMT942InterimReport(t *testing.T) {
	raw := `{1:F01BANKUS33AXXX0000000000}{2:I942BANKGB2LXXXX0000000000N}{4:
:20:IR-42
:25:98765432
:61:2502150215C1000,00NTRFREF9
-}`

	msg := New([]byte(raw)).Parse()
	rpt, ok := msg.(*models.Camt052Message)
	require.True(t, ok)
	assert.Equal(t, "camt.052", rpt.SchemaKey())

	require.NotNil(t, rpt.ReportID)
	assert.Equal(t, "IR-42", *rpt.ReportID)
	require.NotNil(t, rpt.AccountID)
	assert.Equal(t, "98765432", *rpt.AccountID)

	require.Len(t, rpt.Entries, 1)
	assert.Equal(t, "CRDT", rpt.Entries[0]["credit_debit_indicator"])
	assert.Equal(t, "1000.00", rpt.Entries[0]["amount"])
	assert.Equal(t, "REF9", rpt.Entries[0]["reference"])
}

func TestParseMT101Initiation(t *testing.T) {
	raw := `{1:F01BANKUS33AXXX0000000000}{2:I101BANKGB2LXXXX0000000000N}{4:
:20:CUSTREF-1
:28D:1/1
:50H:/US12345678901234
ACME CORP
:30:250301
:21:TX-A
:32B:USD100,00
:59:/GB82WEST12345698765432
ALICE
:21:TX-B
:32B:EUR50,50
:59:/FR1420041010050500013M02606
BOB
-}`

	msg := New([]byte(raw)).Parse()
	init, ok := msg.(*models.Pain001Message)
	require.True(t, ok)
	assert.Equal(t, "pain.001", init.SchemaKey())

	require.NotNil(t, init.InitiatingParty)
	assert.Equal(t, "ACME CORP", *init.InitiatingParty)
	require.NotNil(t, init.NumberOfTransactions)
	assert.Equal(t, 2, *init.NumberOfTransactions)

	require.Len(t, init.PaymentInformation, 2)
	assert.Equal(t, "TX-A", init.PaymentInformation[0]["end_to_end_id"])
	assert.Equal(t, "USD", init.PaymentInformation[0]["currency"])
	assert.Equal(t, "100.00", init.PaymentInformation[0]["amount"])
	assert.Equal(t, "GB82WEST12345698765432", init.PaymentInformation[0]["creditor_account"])
	assert.Equal(t, "ALICE", init.PaymentInformation[0]["creditor_name"])

	assert.Equal(t, "TX-B", init.PaymentInformation[1]["end_to_end_id"])
	assert.Equal(t, "EUR", init.PaymentInformation[1]["currency"])
	assert.Equal(t, "50.50", init.PaymentInformation[1]["amount"])
	assert.Equal(t, "BOB", init.PaymentInformation[1]["creditor_name"])
}

func TestParseMTTruncatedBlock4(t *testing.T) {
	raw := `{1:F01BANKBEBBAXXX0000000000}{2:I103BANKDEFFXXXX0000000000N}{4:
:20:TRUNCATED
:32A:250101USD10,00`

	base := New([]byte(raw)).Parse().Base()
	require.NotNil(t, base.MessageID)
	assert.Equal(t, "TRUNCATED", *base.MessageID)
	require.NotNil(t, base.Amount)
	assert.Equal(t, "10.00", *base.Amount)
}

func TestCreditDebitMarks(t *testing.T) {
	tests := []struct {
		mark string
		want string
	}{
		{"C", "CRDT"},
		{"CR", "CRDT"},
		{"RC", "CRDT"},
		{"D", "DBIT"},
		{"DR", "DBIT"},
		{"RD", "DBIT"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, creditDebit(tt.mark), "mark %s", tt.mark)
	}
}

func TestSplitPartyBlock(t *testing.T) {
	acct, name := splitPartyBlock("/BE71096123456769\nJOHN DOE\nBRUSSELS")
	require.NotNil(t, acct)
	assert.Equal(t, "BE71096123456769", *acct)
	require.NotNil(t, name)
	assert.Equal(t, "JOHN DOE BRUSSELS", *name)

	acct, name = splitPartyBlock("JANE SMITH")
	assert.Nil(t, acct)
	require.NotNil(t, name)
	assert.Equal(t, "JANE SMITH", *name)
}
