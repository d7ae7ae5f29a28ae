package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/supplychain-go/internal/domain/ledger"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

// GormTransactionRepository implements TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

var _ ledger.TransactionRepository = (*GormTransactionRepository)(nil)

// NewGormTransactionRepository creates a new GORM transaction repository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Create persists a new transaction
func (r *GormTransactionRepository) Create(ctx context.Context, transaction *ledger.Transaction) error {
	model, err := r.transactionToModel(transaction)
	if err != nil {
		return fmt.Errorf("failed to convert transaction to model: %w", err)
	}

	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return fmt.Errorf("failed to create transaction: %w", result.Error)
	}
	return nil
}

// FindByID retrieves a transaction by its ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id ledger.TransactionID) (*ledger.Transaction, error) {
	var model TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &ledger.ErrTransactionNotFound{ID: id.String()}
		}
		return nil, fmt.Errorf("failed to find transaction: %w", result.Error)
	}

	return r.modelToTransaction(&model)
}

// FindByParty retrieves transactions where party is either side
func (r *GormTransactionRepository) FindByParty(ctx context.Context, party string, opts ledger.QueryOptions) ([]*ledger.Transaction, error) {
	query := r.applyFilters(r.db.WithContext(ctx), party, opts)

	orderBy := "timestamp DESC"
	if opts.OrderBy != "" {
		orderBy = opts.OrderBy
	}
	query = query.Order(orderBy)

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	var models []TransactionModel
	if result := query.Find(&models); result.Error != nil {
		return nil, fmt.Errorf("failed to find transactions: %w", result.Error)
	}

	transactions := make([]*ledger.Transaction, len(models))
	for i := range models {
		tx, err := r.modelToTransaction(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert transaction model: %w", err)
		}
		transactions[i] = tx
	}
	return transactions, nil
}

// CountByParty returns the count of transactions matching the criteria
func (r *GormTransactionRepository) CountByParty(ctx context.Context, party string, opts ledger.QueryOptions) (int, error) {
	query := r.applyFilters(r.db.WithContext(ctx).Model(&TransactionModel{}), party, opts)

	var count int64
	if result := query.Count(&count); result.Error != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", result.Error)
	}
	return int(count), nil
}

// applyFilters applies the party and query options to a GORM query
func (r *GormTransactionRepository) applyFilters(query *gorm.DB, party string, opts ledger.QueryOptions) *gorm.DB {
	if party != "" {
		query = query.Where("party = ? OR counterparty = ?", party, party)
	}

	if opts.StartDate != nil {
		query = query.Where("timestamp >= ?", *opts.StartDate)
	}
	if opts.EndDate != nil {
		query = query.Where("timestamp <= ?", *opts.EndDate)
	}

	if opts.Category != nil {
		query = query.Where("category = ?", opts.Category.String())
	}
	if opts.TransactionType != nil {
		query = query.Where("transaction_type = ?", opts.TransactionType.String())
	}
	if opts.Good != nil {
		query = query.Where("good = ?", *opts.Good)
	}

	return query
}

// modelToTransaction converts database model to domain entity
func (r *GormTransactionRepository) modelToTransaction(model *TransactionModel) (*ledger.Transaction, error) {
	id, err := ledger.ParseTransactionID(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction ID in database: %w", err)
	}

	transactionType, err := ledger.ParseTransactionType(model.TransactionType)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction type in database: %w", err)
	}

	category, err := ledger.ParseCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("invalid category in database: %w", err)
	}

	var metadata map[string]interface{}
	if model.Metadata != "" {
		if err := json.Unmarshal([]byte(model.Metadata), &metadata); err != nil {
			// If unmarshal fails, leave metadata as nil
			metadata = nil
		}
	}

	return ledger.ReconstructTransaction(id, category, ledger.TransactionParams{
		Timestamp:     model.Timestamp,
		Type:          transactionType,
		Party:         model.Party,
		Counterparty:  model.Counterparty,
		Good:          model.Good,
		Quantity:      model.Quantity,
		UnitPrice:     shared.NewMoney(model.UnitPrice),
		Total:         shared.NewMoney(model.Total),
		BalanceBefore: shared.NewMoney(model.BalanceBefore),
		BalanceAfter:  shared.NewMoney(model.BalanceAfter),
		Description:   model.Description,
		Metadata:      metadata,
	}), nil
}

// transactionToModel converts domain entity to database model
func (r *GormTransactionRepository) transactionToModel(tx *ledger.Transaction) (*TransactionModel, error) {
	var metadataJSON string
	if tx.Metadata() != nil {
		bytes, err := json.Marshal(tx.Metadata())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata: %w", err)
		}
		metadataJSON = string(bytes)
	}

	return &TransactionModel{
		ID:              tx.ID().String(),
		Timestamp:       tx.Timestamp(),
		TransactionType: tx.TransactionType().String(),
		Category:        tx.Category().String(),
		Party:           tx.Party(),
		Counterparty:    tx.Counterparty(),
		Good:            tx.Good(),
		Quantity:        tx.Quantity(),
		UnitPrice:       tx.UnitPrice().Decimal(),
		Total:           tx.Total().Decimal(),
		BalanceBefore:   tx.BalanceBefore().Decimal(),
		BalanceAfter:    tx.BalanceAfter().Decimal(),
		Description:     tx.Description(),
		Metadata:        metadataJSON,
	}, nil
}
