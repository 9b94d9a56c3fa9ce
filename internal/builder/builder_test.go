package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpurse/go-openpurse/internal/common"
	"github.com/openpurse/go-openpurse/internal/models"
)

func TestBuildPacs008(t *testing.T) {
	msg := Build("pacs.008", Fields{
		"message_id":        "MSGID-001",
		"amount":            "1500.00",
		"currency":          "EUR",
		"settlement_method": "CLRG",
	})

	p, ok := msg.(*models.Pacs008Message)
	require.True(t, ok)
	assert.Equal(t, "pacs.008", p.SchemaKey())
	require.NotNil(t, p.MessageID)
	assert.Equal(t, "MSGID-001", *p.MessageID)
	require.NotNil(t, p.SettlementMethod)
	assert.Equal(t, "CLRG", *p.SettlementMethod)
}

func TestBuildNormalizesKeyCasing(t *testing.T) {
	for _, key := range []string{"MessageID", "messageId", "message_id"} {
		msg := Build("pacs.008", Fields{key: "M-1"})
		require.NotNil(t, msg.Base().MessageID, "key %s", key)
		assert.Equal(t, "M-1", *msg.Base().MessageID, "key %s", key)
	}
}

func TestBuildAcceptsPointerValues(t *testing.T) {
	msg := Build("pacs.008", Fields{
		"end_to_end_id":          common.Ptr("E2E-1"),
		"number_of_transactions": 3,
	})

	p := msg.(*models.Pacs008Message)
	require.NotNil(t, p.EndToEndID)
	assert.Equal(t, "E2E-1", *p.EndToEndID)
	require.NotNil(t, p.NumberOfTransactions)
	assert.Equal(t, 3, *p.NumberOfTransactions)
}

func TestBuildDetailSlices(t *testing.T) {
	msg := Build("camt.053", Fields{
		"account_id": "ACCT-1",
		"entries": []map[string]string{
			{"amount": "100.00", "credit_debit_indicator": "CRDT"},
		},
		"balances": []models.Detail{
			{"type": "OPBD", "amount": "1000.00"},
		},
	})

	stmt, ok := msg.(*models.Camt053Message)
	require.True(t, ok)
	require.Len(t, stmt.Entries, 1)
	assert.Equal(t, "100.00", stmt.Entries[0]["amount"])
	require.Len(t, stmt.Balances, 1)
	assert.Equal(t, "OPBD", stmt.Balances[0]["type"])
}

func TestBuildPostalAddress(t *testing.T) {
	msg := Build("pacs.008", Fields{
		"debtor_name": "John Doe",
		"debtor_address": models.PostalAddress{
			Country:  common.Ptr("BE"),
			TownName: common.Ptr("Brussels"),
		},
	})

	addr := msg.Base().DebtorAddress
	require.NotNil(t, addr)
	assert.Equal(t, "BE", *addr.Country)
	assert.False(t, addr.Empty())
}

func TestBuildDropsMismatchedValues(t *testing.T) {
	msg := Build("pacs.008", Fields{
		"message_id":             42,
		"number_of_transactions": "three",
		"no_such_field":          "x",
	})

	p := msg.(*models.Pacs008Message)
	assert.Nil(t, p.MessageID)
	assert.Nil(t, p.NumberOfTransactions)
}

func TestBuildUnknownSchemaFallsBack(t *testing.T) {
	msg := Build("xyz.999", Fields{"message_id": "M-9"})

	_, ok := msg.(*models.PaymentMessage)
	require.True(t, ok)
	assert.Equal(t, "", msg.SchemaKey())
	require.NotNil(t, msg.Base().MessageID)
	assert.Equal(t, "M-9", *msg.Base().MessageID)
}

func TestSchemas(t *testing.T) {
	keys := Schemas()
	assert.Len(t, keys, 20)
	assert.Contains(t, keys, "pacs.008")
	assert.Contains(t, keys, "sese.023")
	assert.Contains(t, keys, "camt.086")
}
