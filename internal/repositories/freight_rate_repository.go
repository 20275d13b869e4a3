package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

const freightRateTable = "shipping_company"

// FreightRateRepository reads fares from the shipping_company table. A nil DB,
// a missing table or a missing row all yield an empty fare.
type FreightRateRepository struct {
	DB *sql.DB
}

func (r FreightRateRepository) LookupFare(ctx context.Context, company, departure, destination string) (string, error) {
	if r.DB == nil {
		return "", nil
	}
	if !HasTable(r.DB, freightRateTable) || !HasColumn(r.DB, freightRateTable, "fare") {
		return "", nil
	}

	var fare sql.NullString
	err := r.DB.QueryRowContext(ctx, `
		SELECT fare
		FROM `+freightRateTable+`
		WHERE company_name = ?
		  AND departure_port = ?
		  AND destination_port = ?
		LIMIT 1
	`, company, departure, destination).Scan(&fare)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(fare.String), nil
}
