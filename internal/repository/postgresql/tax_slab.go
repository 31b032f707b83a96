package postgresql

import (
	"context"
	"fmt"

	"github.com/emsuite/ems-backend-go/internal/domain/salary"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
)

type taxSlabRepositoryImpl struct {
	db *database.DB
}

func NewTaxSlabRepository(db *database.DB) salary.TaxSlabRepository {
	return &taxSlabRepositoryImpl{db: db}
}

// ListOrdered implements salary.TaxSlabRepository.
func (r *taxSlabRepositoryImpl) ListOrdered(ctx context.Context) ([]salary.TaxSlab, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, min_income, max_income, tax_rate, description
		FROM tax_slabs
		ORDER BY min_income ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax slabs: %w", err)
	}
	defer rows.Close()

	var slabs []salary.TaxSlab
	for rows.Next() {
		var s salary.TaxSlab
		if err := rows.Scan(&s.ID, &s.MinIncome, &s.MaxIncome, &s.TaxRate, &s.Description); err != nil {
			return nil, fmt.Errorf("failed to scan tax slab: %w", err)
		}
		slabs = append(slabs, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slabs, nil
}
