package inventory

import (
	"context"
	"fmt"
	"io"
	"midcar/pkg/domain"
	"midcar/pkg/storage"
	"strconv"

	"github.com/go-pdf/fpdf"
)

const (
	dealerName    = "MidCar"
	exportPage    = 200
	sheetLabelW   = 55.0
	sheetRowH     = 8.0
	listRowH      = 7.0
	pdfFontFamily = "Helvetica"
)

//nolint: gochecknoglobals
var (
	fuelLabels = map[domain.FuelType]string{
		domain.FuelGasoline: "Gasolina",
		domain.FuelDiesel:   "Diésel",
		domain.FuelElectric: "Eléctrico",
		domain.FuelHybrid:   "Híbrido",
		domain.FuelLPG:      "GLP",
		domain.FuelOther:    "Otro",
	}
	transmissionLabels = map[domain.Transmission]string{
		domain.TransmissionManual:    "Manual",
		domain.TransmissionAutomatic: "Automático",
	}
	statusLabels = map[domain.VehicleStatus]string{
		domain.VehicleStatusAvailable: "Disponible",
		domain.VehicleStatusReserved:  "Reservado",
		domain.VehicleStatusSold:      "Vendido",
	}
)

func newDocument(orientation, title string) (*fpdf.Fpdf, func(string) string) {
	pdf := fpdf.New(orientation, "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetAuthor(dealerName, true)
	pdf.SetMargins(15, 15, 15)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(pdfFontFamily, "I", 8)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s · página %d/{nb}", dealerName, pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	return pdf, tr
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

func intOrDash(n int, unit string) string {
	if n == 0 {
		return "-"
	}
	if unit == "" {
		return strconv.Itoa(n)
	}

	return strconv.Itoa(n) + " " + unit
}

// ExportSheetPDF writes the one page sheet (ficha) of a vehicle.
func (s *inventory) ExportSheetPDF(ctx context.Context, id domain.VehicleID, w io.Writer) error {
	v, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	pdf, tr := newDocument("P", v.Title())
	pdf.AddPage()

	pdf.SetFont(pdfFontFamily, "B", 20)
	pdf.CellFormat(0, 12, tr(v.Title()), "", 1, "L", false, 0, "")
	pdf.SetFont(pdfFontFamily, "B", 16)
	pdf.SetTextColor(200, 30, 30)
	pdf.CellFormat(0, 10, tr(v.Price.String()), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	rows := [][2]string{
		{"Matrícula", orDash(v.LicensePlate)},
		{"Bastidor (VIN)", orDash(v.VIN)},
		{"Año", intOrDash(v.Year, "")},
		{"Kilómetros", intOrDash(v.MileageKm, "km")},
		{"Combustible", orDash(fuelLabels[v.FuelType])},
		{"Cambio", orDash(transmissionLabels[v.Transmission])},
		{"Carrocería", orDash(v.BodyType)},
		{"Color", orDash(v.Color)},
		{"Puertas", intOrDash(v.Doors, "")},
		{"Cilindrada", intOrDash(v.EngineCC, "cc")},
		{"Potencia", intOrDash(v.PowerHP, "CV")},
		{"Estado", orDash(statusLabels[v.Status])},
		{"Fotos", strconv.Itoa(len(v.Photos))},
	}
	pdf.SetFillColor(240, 240, 240)
	for i, r := range rows {
		fill := i%2 == 0
		pdf.SetFont(pdfFontFamily, "B", 11)
		pdf.CellFormat(sheetLabelW, sheetRowH, tr(r[0]), "", 0, "L", fill, 0, "")
		pdf.SetFont(pdfFontFamily, "", 11)
		pdf.CellFormat(0, sheetRowH, tr(r[1]), "", 1, "L", fill, 0, "")
	}

	if v.Description != "" {
		pdf.Ln(6)
		pdf.SetFont(pdfFontFamily, "B", 12)
		pdf.CellFormat(0, 8, tr("Descripción"), "", 1, "L", false, 0, "")
		pdf.SetFont(pdfFontFamily, "", 11)
		pdf.MultiCell(0, 6, tr(v.Description), "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("could not render vehicle sheet: %w", err)
	}

	return nil
}

// ExportInventoryPDF writes a landscape table with every vehicle matching
// filter, ignoring its page window.
func (s *inventory) ExportInventoryPDF(ctx context.Context, filter storage.VehicleFilter, w io.Writer) error {
	var vehicles []domain.Vehicle
	filter.Page = storage.Page{Limit: exportPage}
	for {
		list, err := s.storage.Vehicles(ctx, filter)
		if err != nil {
			return fmt.Errorf("could not list vehicles: %w", err)
		}
		vehicles = append(vehicles, list.Items...)
		if len(list.Items) < exportPage || int64(len(vehicles)) >= list.Total {
			break
		}
		filter.Offset += exportPage
	}

	pdf, tr := newDocument("L", "Inventario")
	pdf.AddPage()
	pdf.SetFont(pdfFontFamily, "B", 16)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Inventario (%d vehículos)", len(vehicles))), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	headers := []string{"Matrícula", "Vehículo", "Año", "Km", "Combustible", "Precio", "Estado"}
	widths := []float64{30, 95, 18, 28, 32, 35, 29}
	header := func() {
		pdf.SetFont(pdfFontFamily, "B", 10)
		pdf.SetFillColor(50, 50, 50)
		pdf.SetTextColor(255, 255, 255)
		for i, h := range headers {
			pdf.CellFormat(widths[i], listRowH, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont(pdfFontFamily, "", 9)
	}
	header()

	var total domain.Money
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, v := range vehicles {
		if pdf.GetY()+listRowH > pageHeight-bottom-10 {
			pdf.AddPage()
			header()
		}
		cells := []string{
			orDash(v.LicensePlate),
			v.Title(),
			intOrDash(v.Year, ""),
			intOrDash(v.MileageKm, ""),
			orDash(fuelLabels[v.FuelType]),
			v.Price.String(),
			statusLabels[v.Status],
		}
		for i, c := range cells {
			align := "L"
			if i >= 2 && i <= 5 {
				align = "R"
			}
			pdf.CellFormat(widths[i], listRowH, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
		total += v.Price
	}

	pdf.SetFont(pdfFontFamily, "B", 10)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3]+widths[4], listRowH, tr("Total"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[5], listRowH, tr(total.String()), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[6], listRowH, "", "1", 1, "L", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("could not render inventory: %w", err)
	}

	return nil
}
