package policy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
	"github.com/pkamnoy/PVB-BookingService/pkg/dbmetrics"
	"github.com/pkamnoy/PVB-BookingService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий политик отмены бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория политик отмены
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает политику отмены вместе с её правилами
// Отсутствующая политика - это ErrPolicyNotFound, никогда не "политика по умолчанию":
// молчаливый дефолт в финансовом расчете недопустим
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CancellationPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"processing_fee",
		"fee_exempt",
		"created_at",
		"updated_at",
	).
		From("cancellation_policies").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.CancellationPolicy
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Name,
		&p.ProcessingFee,
		&p.FeeExempt,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan policy: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	rules, err := r.listRules(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	p.Rules = rules

	// Канонический порядок правил не зависит от порядка строк в таблице
	p.SortRules()

	return &p, nil
}

func (r *Repository) listRules(ctx context.Context, executor DBExecutor, policyID int64) ([]domain.PolicyRule, error) {
	query, args, err := psqlbuilder.Select(
		"days_before_check_in",
		"refund_percentage",
		"deduction_amount",
		"deduction_percentage",
	).
		From("cancellation_policy_rules").
		Where(squirrel.Eq{"policy_id": policyID}).
		OrderBy("days_before_check_in DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: listRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listRules - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var rules []domain.PolicyRule
	for rows.Next() {
		var rule domain.PolicyRule

		err = rows.Scan(
			&rule.DaysBeforeCheckIn,
			&rule.RefundPercentage,
			&rule.DeductionAmount,
			&rule.DeductionPercentage,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: listRules - scan rule: %v", ErrScanRow, err)
		}

		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listRules - iterate rows: %v", ErrScanRow, err)
	}

	return rules, nil
}
