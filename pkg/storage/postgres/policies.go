package postgres

import (
	"context"
	"fmt"
	"midcar/pkg/domain"
	"midcar/pkg/storage"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const policiesTable = "insurance_policies"

func (p *PgSQL) StorePolicy(ctx context.Context,
	policy domain.InsurancePolicy) (*domain.InsurancePolicy, error) {
	var row PgPolicy
	row.FromDomain(policy)

	var stored PgPolicy
	if _, err := p.Builder.Insert(policiesTable).
		Rows(row).
		Returning(&PgPolicy{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, mapWriteErr(err, "could not store policy into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) UpdatePolicy(ctx context.Context,
	policy domain.InsurancePolicy) (*domain.InsurancePolicy, error) {
	var row PgPolicy
	row.FromDomain(policy)

	var updated PgPolicy
	found, err := p.Builder.Update(policiesTable).
		Set(goqu.Record{
			"policy_number":      row.PolicyNumber,
			"insurer":            row.Insurer,
			"holder_name":        row.HolderName,
			"holder_national_id": row.HolderNationalID,
			"license_plate":      row.LicensePlate,
			"vehicle_id":         row.VehicleID,
			"client_id":          row.ClientID,
			"coverage":           row.Coverage,
			"premium":            row.Premium,
			"start_date":         row.StartDate,
			"end_date":           row.EndDate,
			"updated_at":         goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Returning(&PgPolicy{}).
		Executor().ScanStructContext(ctx, &updated)
	if err != nil {
		return nil, mapWriteErr(err, "could not update policy in pg")
	}
	if !found {
		return nil, nil
	}

	return updated.ToDomain(), nil
}

func (p *PgSQL) PolicyByID(ctx context.Context, id domain.PolicyID) (*domain.InsurancePolicy, error) {
	var row PgPolicy
	found, err := p.Builder.From(policiesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch policy by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) PolicyByNumber(ctx context.Context, insurer, number string) (*domain.InsurancePolicy, error) {
	var row PgPolicy
	found, err := p.Builder.From(policiesTable).
		Where(
			goqu.Func("lower", goqu.I("insurer")).Eq(strings.ToLower(strings.TrimSpace(insurer))),
			goqu.I("policy_number").Eq(strings.TrimSpace(number)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch policy by number: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Policies(ctx context.Context,
	filter storage.PolicyFilter) (storage.List[domain.InsurancePolicy], error) {
	var w []goqu.Expression
	if filter.Insurer != "" {
		w = append(w, goqu.Func("lower", goqu.I("insurer")).Eq(strings.ToLower(strings.TrimSpace(filter.Insurer))))
	}
	if filter.VehicleID != nil {
		w = append(w, goqu.I("vehicle_id").Eq(uuid.UUID(*filter.VehicleID)))
	}
	if filter.ClientID != nil {
		w = append(w, goqu.I("client_id").Eq(uuid.UUID(*filter.ClientID)))
	}
	if !filter.EndsFrom.IsZero() {
		w = append(w, goqu.I("end_date").Gte(filter.EndsFrom))
	}
	if !filter.EndsBefore.IsZero() {
		w = append(w, goqu.I("end_date").Lt(filter.EndsBefore))
	}
	if strings.TrimSpace(filter.Search) != "" {
		like := likePattern(filter.Search)
		w = append(w, goqu.Or(
			goqu.I("policy_number").ILike(like),
			goqu.I("holder_name").ILike(like),
			goqu.I("license_plate").ILike(likePattern(domain.NormalizePlate(filter.Search))),
		))
	}
	ds := p.Builder.From(policiesTable).Where(w...)

	total, err := ds.CountContext(ctx)
	if err != nil {
		return storage.List[domain.InsurancePolicy]{}, fmt.Errorf("could not count policies: %w", err)
	}

	var rows []PgPolicy
	if err := ds.Order(goqu.I("end_date").Asc().NullsLast(), goqu.I("id").Asc()).
		Limit(limitOf(filter.Page)).
		Offset(filter.Offset).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.List[domain.InsurancePolicy]{}, fmt.Errorf("could not fetch policies from pg: %w", err)
	}

	return storage.List[domain.InsurancePolicy]{
		Items: toDomainSlice(rows, (*PgPolicy).ToDomain),
		Total: total,
	}, nil
}

func (p *PgSQL) DeletePolicy(ctx context.Context, id domain.PolicyID) (bool, error) {
	res, err := p.Builder.Delete(policiesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete policy: %w", err)
	}

	return affected(res)
}
