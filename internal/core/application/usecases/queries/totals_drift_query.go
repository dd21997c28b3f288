package queries

import (
	"context"
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/ports"
	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrFindTotalsDriftQueryIsNotConstructed = errors.New(
	"FindTotalsDriftQuery must be created via NewFindTotalsDriftQuery constructor",
)

const (
	DriftKindOrder  = "order"
	DriftKindSupply = "supply"
)

// FindTotalsDriftQuery looks for orders and supplies whose stored total no
// longer equals the sum of their line items.
type FindTotalsDriftQuery struct {
	limit int

	guard guard.ConstructorGuard
}

func NewFindTotalsDriftQuery(limit int) (FindTotalsDriftQuery, error) {
	if limit <= 0 {
		return FindTotalsDriftQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}
	return FindTotalsDriftQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q FindTotalsDriftQuery) Validate() error {
	return q.guard.Validate(ErrFindTotalsDriftQueryIsNotConstructed)
}

type TotalsDrift struct {
	Kind     string
	ID       kernel.ID
	Stored   decimal.Decimal
	Computed decimal.Decimal
}

type FindTotalsDriftQueryHandler struct {
	db         *gorm.DB
	classifier ports.ErrorClassifier
}

func NewFindTotalsDriftQueryHandler(db *gorm.DB, classifier ports.ErrorClassifier) FindTotalsDriftQueryHandler {
	return FindTotalsDriftQueryHandler{db: db, classifier: classifier}
}

func (h FindTotalsDriftQueryHandler) Handle(ctx context.Context, query FindTotalsDriftQuery) ([]TotalsDrift, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drift := make([]TotalsDrift, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT kind, id, stored, computed FROM (
			SELECT ?::text AS kind, o.id, o.total_sum AS stored,
				COALESCE(SUM(li.price * li.quantity), 0) AS computed
			FROM orders o
			LEFT JOIN order_line_items li ON li.order_id = o.id
			GROUP BY o.id, o.total_sum
			UNION ALL
			SELECT ?::text AS kind, s.id, s.total_cost AS stored,
				COALESCE(SUM(li.price * li.quantity), 0) AS computed
			FROM supplies s
			LEFT JOIN supply_line_items li ON li.supply_id = s.id
			GROUP BY s.id, s.total_cost
		) t
		WHERE stored <> round(computed, 2)
		ORDER BY kind, id
		LIMIT ?
	`, DriftKindOrder, DriftKindSupply, query.limit).Scan(&drift).Error
	if err != nil {
		return nil, h.classifier.Classify("find totals drift", err)
	}
	return drift, nil
}
