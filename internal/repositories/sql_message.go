package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/openpurse/go-openpurse/internal/common"
	"github.com/openpurse/go-openpurse/internal/models"
)

type MessageRepository interface {
	Save(ctx context.Context, msg models.Message) (*models.MessageRecord, error)
	GetByMessageID(ctx context.Context, messageID string) (*models.MessageRecord, error)
	ListBySender(ctx context.Context, senderBIC string) ([]models.MessageRecord, error)
	Search(ctx context.Context, filter models.MessageFilter) ([]models.MessageRecord, error)
	CreateSchema(ctx context.Context) error
}

type messageRepository sqlRepo

var _ MessageRepository = (*messageRepository)(nil)

// Save projects the message onto its relational record and inserts it,
// returning the record with id and creation time populated.
func (r *messageRepository) Save(ctx context.Context, msg models.Message) (*models.MessageRecord, error) {
	record, err := models.NewMessageRecord(msg)
	if err != nil {
		return nil, err
	}

	db := r.r.extractTxWrite(ctx)
	err = db.QueryRowContext(ctx, queryMessageCreate,
		record.MsgType,
		record.MessageID,
		record.EndToEndID,
		record.UETR,
		record.Amount,
		record.Currency,
		record.SenderBIC,
		record.ReceiverBIC,
		record.DebtorName,
		record.CreditorName,
		record.DebtorAccount,
		record.CreditorAccount,
		record.Details,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnableToPersist, err)
	}

	return record, nil
}

// GetByMessageID retrieves the newest record carrying the given message id,
// or nil when none exists.
func (r *messageRepository) GetByMessageID(ctx context.Context, messageID string) (*models.MessageRecord, error) {
	if messageID == "" {
		return nil, common.ErrMessageIDEmpty
	}

	db := r.r.extractTxRead(ctx)

	var record models.MessageRecord
	err := db.QueryRowContext(ctx, queryMessageGetByMessageID, messageID).Scan(
		&record.ID,
		&record.MsgType,
		&record.MessageID,
		&record.EndToEndID,
		&record.UETR,
		&record.Amount,
		&record.Currency,
		&record.SenderBIC,
		&record.ReceiverBIC,
		&record.DebtorName,
		&record.CreditorName,
		&record.DebtorAccount,
		&record.CreditorAccount,
		&record.Details,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

// ListBySender lists every record sent by one BIC, newest first.
func (r *messageRepository) ListBySender(ctx context.Context, senderBIC string) ([]models.MessageRecord, error) {
	db := r.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryMessageListBySender, senderBIC)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMessageRows(rows)
}

// Search lists records matching the filter, newest first.
func (r *messageRepository) Search(ctx context.Context, filter models.MessageFilter) ([]models.MessageRecord, error) {
	query, args, err := queryMessageSearch(filter)
	if err != nil {
		return nil, err
	}

	db := r.r.extractTxRead(ctx)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMessageRows(rows)
}

// CreateSchema creates the payment_messages table when it does not exist.
func (r *messageRepository) CreateSchema(ctx context.Context) error {
	db := r.r.extractTxWrite(ctx)
	_, err := db.ExecContext(ctx, queryMessageCreateSchema)

	return err
}

func scanMessageRows(rows *sql.Rows) ([]models.MessageRecord, error) {
	var result []models.MessageRecord
	for rows.Next() {
		var record models.MessageRecord
		if err := rows.Scan(
			&record.ID,
			&record.MsgType,
			&record.MessageID,
			&record.EndToEndID,
			&record.UETR,
			&record.Amount,
			&record.Currency,
			&record.SenderBIC,
			&record.ReceiverBIC,
			&record.DebtorName,
			&record.CreditorName,
			&record.DebtorAccount,
			&record.CreditorAccount,
			&record.Details,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
