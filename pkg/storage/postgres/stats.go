package postgres

import (
	"context"
	"fmt"
	"midcar/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
)

type statusCount struct {
	Status string `db:"status"`
	Count  int64  `db:"count"`
}

func (p *PgSQL) countByStatus(ctx context.Context, table string, where ...goqu.Expression) ([]statusCount, error) {
	var rows []statusCount
	if err := p.Builder.From(table).
		Select(goqu.I("status"), goqu.COUNT("*").As("count")).
		Where(where...).
		GroupBy(goqu.I("status")).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not count %s by status: %w", table, err)
	}

	return rows, nil
}

func (p *PgSQL) VehicleCountsByStatus(ctx context.Context) (map[domain.VehicleStatus]int64, error) {
	rows, err := p.countByStatus(ctx, vehiclesTable, goqu.I("deleted_at").IsNull())
	if err != nil {
		return nil, err
	}

	out := make(map[domain.VehicleStatus]int64, len(rows))
	for _, r := range rows {
		out[domain.VehicleStatus(r.Status)] = r.Count
	}

	return out, nil
}

func (p *PgSQL) StockValue(ctx context.Context) (domain.Money, error) {
	var sum int64
	if _, err := p.Builder.From(vehiclesTable).
		Select(goqu.COALESCE(goqu.SUM("price"), 0)).
		Where(
			goqu.I("deleted_at").IsNull(),
			goqu.I("status").In(string(domain.VehicleStatusAvailable), string(domain.VehicleStatusReserved)),
		).
		Executor().ScanValContext(ctx, &sum); err != nil {
		return 0, fmt.Errorf("could not sum stock value: %w", err)
	}

	return domain.Money(sum), nil
}

func (p *PgSQL) AverageDaysInStock(ctx context.Context, now time.Time) (float64, error) {
	var avg float64
	if _, err := p.Builder.From(vehiclesTable).
		Select(goqu.L("COALESCE(AVG(EXTRACT(EPOCH FROM (?::timestamptz - created_at)) / 86400), 0)::float8", now)).
		Where(
			goqu.I("deleted_at").IsNull(),
			goqu.I("status").Eq(string(domain.VehicleStatusAvailable)),
		).
		Executor().ScanValContext(ctx, &avg); err != nil {
		return 0, fmt.Errorf("could not average days in stock: %w", err)
	}

	return avg, nil
}

func (p *PgSQL) VehiclesSoldSince(ctx context.Context, since time.Time) (int64, error) {
	n, err := p.Builder.From(vehiclesTable).
		Where(
			goqu.I("deleted_at").IsNull(),
			goqu.I("status").Eq(string(domain.VehicleStatusSold)),
			goqu.I("sold_at").Gte(since),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count sold vehicles: %w", err)
	}

	return n, nil
}

func (p *PgSQL) LeadCountsByStatus(ctx context.Context) (map[domain.LeadStatus]int64, error) {
	rows, err := p.countByStatus(ctx, leadsTable)
	if err != nil {
		return nil, err
	}

	out := make(map[domain.LeadStatus]int64, len(rows))
	for _, r := range rows {
		out[domain.LeadStatus(r.Status)] = r.Count
	}

	return out, nil
}

func (p *PgSQL) LeadsCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	n, err := p.Builder.From(leadsTable).
		Where(goqu.I("created_at").Gte(since)).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count new leads: %w", err)
	}

	return n, nil
}

func (p *PgSQL) UnhandledContactCount(ctx context.Context) (int64, error) {
	n, err := p.Builder.From(contactsTable).
		Where(goqu.I("handled").IsFalse()).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count pending contacts: %w", err)
	}

	return n, nil
}

func (p *PgSQL) PoliciesEndingBetween(ctx context.Context, from, to time.Time) (int64, error) {
	n, err := p.Builder.From(policiesTable).
		Where(
			goqu.I("end_date").Gte(from),
			goqu.I("end_date").Lt(to),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count expiring policies: %w", err)
	}

	return n, nil
}

func (p *PgSQL) RecentSales(ctx context.Context, limit uint) ([]domain.Vehicle, error) {
	var rows []PgVehicle
	if err := p.Builder.From(vehiclesTable).
		Where(
			goqu.I("deleted_at").IsNull(),
			goqu.I("status").Eq(string(domain.VehicleStatusSold)),
		).
		Order(goqu.I("sold_at").Desc().NullsLast(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch recent sales: %w", err)
	}

	return toDomainSlice(rows, (*PgVehicle).ToDomain), nil
}
