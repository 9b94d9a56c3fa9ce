package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/openpurse/go-openpurse/internal/models"
)

// query to payment_messages database
var (
	queryMessageCreateSchema = `
		CREATE TABLE IF NOT EXISTS payment_messages (
			"id" BIGSERIAL PRIMARY KEY,
			"msgType" VARCHAR(16) NOT NULL DEFAULT '',
			"messageId" VARCHAR(64),
			"endToEndId" VARCHAR(64),
			"uetr" VARCHAR(36),
			"amount" VARCHAR(32),
			"currency" VARCHAR(3),
			"senderBic" VARCHAR(12),
			"receiverBic" VARCHAR(12),
			"debtorName" VARCHAR(140),
			"creditorName" VARCHAR(140),
			"debtorAccount" VARCHAR(34),
			"creditorAccount" VARCHAR(34),
			"details" JSONB,
			"createdAt" TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`

	queryMessageCreate = `
		INSERT INTO payment_messages(
			"msgType", "messageId", "endToEndId", "uetr", "amount", "currency",
			"senderBic", "receiverBic", "debtorName", "creditorName",
			"debtorAccount", "creditorAccount", "details", "createdAt"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now()
		)
		RETURNING "id", "createdAt";
	`

	queryMessageColumns = []string{
		`"id"`, `"msgType"`, `"messageId"`, `"endToEndId"`, `"uetr"`,
		`"amount"`, `"currency"`, `"senderBic"`, `"receiverBic"`,
		`"debtorName"`, `"creditorName"`, `"debtorAccount"`,
		`"creditorAccount"`, `"details"`, `"createdAt"`,
	}

	queryMessageGetByMessageID = `SELECT
		"id", "msgType", "messageId", "endToEndId", "uetr", "amount", "currency",
		"senderBic", "receiverBic", "debtorName", "creditorName",
		"debtorAccount", "creditorAccount", "details", "createdAt"
		FROM payment_messages
		WHERE "messageId" = $1
		ORDER BY "id" DESC
		LIMIT 1;`

	queryMessageListBySender = `SELECT
		"id", "msgType", "messageId", "endToEndId", "uetr", "amount", "currency",
		"senderBic", "receiverBic", "debtorName", "creditorName",
		"debtorAccount", "creditorAccount", "details", "createdAt"
		FROM payment_messages
		WHERE "senderBic" = $1
		ORDER BY "id" DESC;`
)

// queryMessageSearch builds the filtered listing query. Zero-valued filter
// fields add no predicate.
func queryMessageSearch(filter models.MessageFilter) (string, []interface{}, error) {
	builder := sq.Select(queryMessageColumns...).
		From("payment_messages").
		OrderBy(`"id" DESC`).
		PlaceholderFormat(sq.Dollar)

	if filter.MsgType != "" {
		builder = builder.Where(sq.Eq{`"msgType"`: filter.MsgType})
	}
	if filter.SenderBIC != "" {
		builder = builder.Where(sq.Eq{`"senderBic"`: filter.SenderBIC})
	}
	if filter.Currency != "" {
		builder = builder.Where(sq.Eq{`"currency"`: filter.Currency})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	return builder.ToSql()
}
