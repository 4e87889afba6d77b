package postgres

import (
	"context"
	"fmt"
	"midcar/pkg/domain"
	"midcar/pkg/storage"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	vehiclesTable = "vehicles"
	photosTable   = "vehicle_photos"
)

func (p *PgSQL) StoreVehicle(ctx context.Context, vehicle domain.Vehicle) (*domain.Vehicle, error) {
	var row PgVehicle
	row.FromDomain(vehicle)

	var stored PgVehicle
	if _, err := p.Builder.Insert(vehiclesTable).
		Rows(row).
		Returning(&PgVehicle{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, mapWriteErr(err, "could not store vehicle into pg")
	}

	return stored.ToDomain(), nil
}

// UpdateVehicle overwrites every editable column. created_at and deleted_at
// are never touched.
func (p *PgSQL) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) (*domain.Vehicle, error) {
	var row PgVehicle
	row.FromDomain(vehicle)

	var updated PgVehicle
	found, err := p.Builder.Update(vehiclesTable).
		Set(goqu.Record{
			"vin":            row.VIN,
			"license_plate":  row.LicensePlate,
			"make":           row.Make,
			"model":          row.Model,
			"version":        row.Version,
			"year":           row.Year,
			"mileage_km":     row.MileageKm,
			"fuel_type":      row.FuelType,
			"transmission":   row.Transmission,
			"body_type":      row.BodyType,
			"color":          row.Color,
			"doors":          row.Doors,
			"engine_cc":      row.EngineCC,
			"power_hp":       row.PowerHP,
			"price":          row.Price,
			"purchase_price": row.PurchasePrice,
			"status":         row.Status,
			"description":    row.Description,
			"featured":       row.Featured,
			"sold_at":        row.SoldAt,
			"updated_at":     goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(row.ID),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgVehicle{}).
		Executor().ScanStructContext(ctx, &updated)
	if err != nil {
		return nil, mapWriteErr(err, "could not update vehicle in pg")
	}
	if !found {
		return nil, nil
	}

	return updated.ToDomain(), nil
}

func (p *PgSQL) VehicleByID(ctx context.Context, id domain.VehicleID) (*domain.Vehicle, error) {
	var row PgVehicle
	found, err := p.Builder.From(vehiclesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch vehicle by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func vehicleConditions(f storage.VehicleFilter) []goqu.Expression {
	w := []goqu.Expression{goqu.I("deleted_at").IsNull()}

	if len(f.Statuses) > 0 {
		statuses := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			statuses = append(statuses, string(s))
		}
		w = append(w, goqu.I("status").In(statuses))
	}
	if f.Make != "" {
		w = append(w, goqu.Func("lower", goqu.I("make")).Eq(strings.ToLower(strings.TrimSpace(f.Make))))
	}
	if f.FuelType != "" {
		w = append(w, goqu.I("fuel_type").Eq(string(f.FuelType)))
	}
	if f.MinPrice > 0 {
		w = append(w, goqu.I("price").Gte(int64(f.MinPrice)))
	}
	if f.MaxPrice > 0 {
		w = append(w, goqu.I("price").Lte(int64(f.MaxPrice)))
	}
	if f.MinYear > 0 {
		w = append(w, goqu.I("year").Gte(f.MinYear))
	}
	if f.MaxYear > 0 {
		w = append(w, goqu.I("year").Lte(f.MaxYear))
	}
	if f.Featured != nil {
		w = append(w, goqu.I("featured").Eq(*f.Featured))
	}
	if strings.TrimSpace(f.Search) != "" {
		like := likePattern(f.Search)
		match := []exp.Expression{
			goqu.I("make").ILike(like),
			goqu.I("model").ILike(like),
			goqu.I("version").ILike(like),
		}
		if !f.PublicSearch {
			match = append(match,
				goqu.I("vin").ILike(like),
				goqu.I("license_plate").ILike(likePattern(domain.NormalizePlate(f.Search))))
		}
		w = append(w, goqu.Or(match...))
	}

	return w
}

func vehicleOrder(s storage.VehicleSort) []exp.OrderedExpression {
	switch s {
	case storage.VehicleSortPriceAsc:
		return []exp.OrderedExpression{goqu.I("price").Asc(), goqu.I("id").Asc()}
	case storage.VehicleSortPriceDesc:
		return []exp.OrderedExpression{goqu.I("price").Desc(), goqu.I("id").Desc()}
	case storage.VehicleSortMileageAsc:
		return []exp.OrderedExpression{goqu.I("mileage_km").Asc(), goqu.I("id").Asc()}
	case storage.VehicleSortYearDesc:
		return []exp.OrderedExpression{goqu.I("year").Desc(), goqu.I("created_at").Desc()}
	default:
		return []exp.OrderedExpression{goqu.I("created_at").Desc(), goqu.I("id").Desc()}
	}
}

func (p *PgSQL) Vehicles(ctx context.Context, filter storage.VehicleFilter) (storage.List[domain.Vehicle], error) {
	ds := p.Builder.From(vehiclesTable).Where(vehicleConditions(filter)...)

	total, err := ds.CountContext(ctx)
	if err != nil {
		return storage.List[domain.Vehicle]{}, fmt.Errorf("could not count vehicles: %w", err)
	}

	var rows []PgVehicle
	if err := ds.Order(vehicleOrder(filter.Sort)...).
		Limit(limitOf(filter.Page)).
		Offset(filter.Offset).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.List[domain.Vehicle]{}, fmt.Errorf("could not fetch vehicles from pg: %w", err)
	}

	return storage.List[domain.Vehicle]{
		Items: toDomainSlice(rows, (*PgVehicle).ToDomain),
		Total: total,
	}, nil
}

// DeleteVehicle performs a soft delete by setting deleted_at.
func (p *PgSQL) DeleteVehicle(ctx context.Context, id domain.VehicleID) (*domain.Vehicle, error) {
	var row PgVehicle
	found, err := p.Builder.Update(vehiclesTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgVehicle{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete vehicle in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) VehiclesByPlates(ctx context.Context, plates []string) ([]domain.Vehicle, error) {
	if len(plates) == 0 {
		return nil, nil
	}

	var rows []PgVehicle
	if err := p.Builder.From(vehiclesTable).
		Where(
			goqu.I("license_plate").In(plates),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch vehicles by plates: %w", err)
	}

	return toDomainSlice(rows, (*PgVehicle).ToDomain), nil
}

func (p *PgSQL) StorePhoto(ctx context.Context, photo domain.VehiclePhoto) (*domain.VehiclePhoto, error) {
	vehicleID := uuid.UUID(photo.VehicleID)

	var row PgPhoto
	if _, err := p.Builder.Insert(photosTable).
		Rows(goqu.Record{
			"vehicle_id":   vehicleID,
			"object_key":   photo.ObjectKey,
			"url":          photo.URL,
			"content_type": photo.ContentType,
			"position": goqu.L(
				"(SELECT COALESCE(MAX(position) + 1, 0) FROM vehicle_photos WHERE vehicle_id = ?)", vehicleID),
		}).
		Returning(&PgPhoto{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, mapWriteErr(err, "could not store photo into pg")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) PhotosByVehicles(ctx context.Context, vehicleIDs []domain.VehicleID) ([]domain.VehiclePhoto, error) {
	if len(vehicleIDs) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(vehicleIDs))
	for _, id := range vehicleIDs {
		ids = append(ids, uuid.UUID(id))
	}

	var rows []PgPhoto
	if err := p.Builder.From(photosTable).
		Where(goqu.I("vehicle_id").In(ids)).
		Order(goqu.I("vehicle_id").Asc(), goqu.I("position").Asc(), goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch photos: %w", err)
	}

	return toDomainSlice(rows, (*PgPhoto).ToDomain), nil
}

func (p *PgSQL) DeletePhoto(ctx context.Context,
	vehicleID domain.VehicleID,
	id domain.PhotoID) (*domain.VehiclePhoto, error) {
	var row PgPhoto
	found, err := p.Builder.Delete(photosTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("vehicle_id").Eq(uuid.UUID(vehicleID)),
		).
		Returning(&PgPhoto{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete photo: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) SetPhotoPositions(ctx context.Context, vehicleID domain.VehicleID, ordered []domain.PhotoID) error {
	for i, id := range ordered {
		if _, err := p.Builder.Update(photosTable).
			Set(goqu.Record{"position": i}).
			Where(
				goqu.I("id").Eq(uuid.UUID(id)),
				goqu.I("vehicle_id").Eq(uuid.UUID(vehicleID)),
			).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not update photo position: %w", err)
		}
	}

	return nil
}
