package insurance

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"midcar/pkg/domain"
	"midcar/pkg/logger"
	"midcar/pkg/storage"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// Import parses a spreadsheet and upserts its policies by (insurer, policy
// number) in a single transaction. Plates are matched against the inventory
// and the first vehicle found is linked.
func (s *insurance) Import(ctx context.Context,
	name string,
	r io.Reader,
	defaultInsurer string) (*ImportReport, error) {
	sheet, err := ParseSpreadsheet(name, r)
	if err != nil {
		return nil, err
	}

	report := &ImportReport{
		Total:   len(sheet.Rows) + len(sheet.Skipped),
		Skipped: append([]SkippedRow{}, sheet.Skipped...),
	}

	defaultInsurer = strings.TrimSpace(defaultInsurer)
	rows := make([]ParsedPolicy, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		if row.Policy.Insurer == "" {
			row.Policy.Insurer = defaultInsurer
		}
		if row.Policy.Insurer == "" {
			report.Skipped = append(report.Skipped, SkippedRow{Line: row.Line, Reason: "missing insurer"})

			continue
		}
		rows = append(rows, row)
	}
	slices.SortStableFunc(report.Skipped, func(a, b SkippedRow) int { return cmp.Compare(a.Line, b.Line) })
	if len(rows) == 0 {
		return report, nil
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		vehicles, err := vehiclesByPlate(ctx, tx, rows)
		if err != nil {
			return err
		}

		for _, row := range rows {
			p := row.Policy
			if v, ok := vehicles[p.LicensePlate]; ok {
				p.VehicleID = &v
				report.MatchedVehicles++
			}

			updated, err := upsert(ctx, tx, p)
			if err != nil {
				return fmt.Errorf("row %d: %w", row.Line, err)
			}
			if updated {
				report.Updated++
			} else {
				report.Imported++
			}
		}

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	logger.Info(ctx, "policies imported",
		zap.String("file", name),
		zap.Int("total", report.Total),
		zap.Int("imported", report.Imported),
		zap.Int("updated", report.Updated),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("matchedVehicles", report.MatchedVehicles))

	return report, nil
}

// vehiclesByPlate maps the plates of rows to inventory vehicles. When a plate
// matches several vehicles the first returned wins.
func vehiclesByPlate(ctx context.Context,
	tx storage.VehicleStorage,
	rows []ParsedPolicy) (map[string]domain.VehicleID, error) {
	seen := make(map[string]struct{}, len(rows))
	plates := make([]string, 0, len(rows))
	for _, r := range rows {
		if plate := r.Policy.LicensePlate; plate != "" {
			if _, ok := seen[plate]; !ok {
				seen[plate] = struct{}{}
				plates = append(plates, plate)
			}
		}
	}
	if len(plates) == 0 {
		return map[string]domain.VehicleID{}, nil
	}

	vehicles, err := tx.VehiclesByPlates(ctx, plates)
	if err != nil {
		return nil, fmt.Errorf("could not match plates: %w", err)
	}
	out := make(map[string]domain.VehicleID, len(vehicles))
	for _, v := range vehicles {
		if _, ok := out[v.LicensePlate]; !ok {
			out[v.LicensePlate] = v.ID
		}
	}

	return out, nil
}

// upsert stores p or overwrites the policy with the same natural key. Links
// to a vehicle or client set by staff survive when the row brings none, and
// the stored spelling of the insurer is kept.
func upsert(ctx context.Context, tx storage.PolicyStorage, p domain.InsurancePolicy) (bool, error) {
	existing, err := tx.PolicyByNumber(ctx, p.Insurer, p.PolicyNumber)
	if err != nil {
		return false, fmt.Errorf("could not look up policy: %w", err)
	}
	if existing == nil {
		if _, err := tx.StorePolicy(ctx, p); err != nil {
			return false, fmt.Errorf("could not store policy: %w", err)
		}

		return false, nil
	}

	p.ID = existing.ID
	p.Insurer = existing.Insurer
	if p.VehicleID == nil {
		p.VehicleID = existing.VehicleID
	}
	p.ClientID = existing.ClientID
	if _, err := tx.UpdatePolicy(ctx, p); err != nil {
		return true, fmt.Errorf("could not update policy: %w", err)
	}

	return true, nil
}
