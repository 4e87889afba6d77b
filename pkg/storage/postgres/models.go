package postgres

import (
	"database/sql"
	"midcar/pkg/domain"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Row types mirror the table columns. Fields tagged skipinsert are generated
// by the database; writes that must set them use goqu.Record instead.

type PgVehicle struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	VIN          string `db:"vin"`
	LicensePlate string `db:"license_plate"`

	Make         string `db:"make"`
	Model        string `db:"model"`
	Version      string `db:"version"`
	Year         int    `db:"year"`
	MileageKm    int    `db:"mileage_km"`
	FuelType     string `db:"fuel_type"`
	Transmission string `db:"transmission"`
	BodyType     string `db:"body_type"`
	Color        string `db:"color"`
	Doors        int    `db:"doors"`
	EngineCC     int    `db:"engine_cc"`
	PowerHP      int    `db:"power_hp"`

	Price         int64 `db:"price"`
	PurchasePrice int64 `db:"purchase_price"`

	Status      string `db:"status"`
	Description string `db:"description"`
	Featured    bool   `db:"featured"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	SoldAt    sql.NullTime `db:"sold_at"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgVehicle) ToDomain() *domain.Vehicle {
	return &domain.Vehicle{
		ID:            domain.VehicleID(p.ID),
		VIN:           p.VIN,
		LicensePlate:  p.LicensePlate,
		Make:          p.Make,
		Model:         p.Model,
		Version:       p.Version,
		Year:          p.Year,
		MileageKm:     p.MileageKm,
		FuelType:      domain.FuelType(p.FuelType),
		Transmission:  domain.Transmission(p.Transmission),
		BodyType:      p.BodyType,
		Color:         p.Color,
		Doors:         p.Doors,
		EngineCC:      p.EngineCC,
		PowerHP:       p.PowerHP,
		Price:         domain.Money(p.Price),
		PurchasePrice: domain.Money(p.PurchasePrice),
		Status:        domain.VehicleStatus(p.Status),
		Description:   p.Description,
		Featured:      p.Featured,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
		SoldAt:        p.SoldAt.Time,
		DeletedAt:     p.DeletedAt.Time,
	}
}

func (p *PgVehicle) FromDomain(v domain.Vehicle) {
	*p = PgVehicle{
		ID:            uuid.UUID(v.ID),
		VIN:           v.VIN,
		LicensePlate:  v.LicensePlate,
		Make:          v.Make,
		Model:         v.Model,
		Version:       v.Version,
		Year:          v.Year,
		MileageKm:     v.MileageKm,
		FuelType:      string(v.FuelType),
		Transmission:  string(v.Transmission),
		BodyType:      v.BodyType,
		Color:         v.Color,
		Doors:         v.Doors,
		EngineCC:      v.EngineCC,
		PowerHP:       v.PowerHP,
		Price:         int64(v.Price),
		PurchasePrice: int64(v.PurchasePrice),
		Status:        string(v.Status),
		Description:   v.Description,
		Featured:      v.Featured,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     nullTime(v.UpdatedAt),
		SoldAt:        nullTime(v.SoldAt),
		DeletedAt:     nullTime(v.DeletedAt),
	}
}

type PgPhoto struct {
	ID          uuid.UUID `db:"id"           goqu:"skipinsert"`
	VehicleID   uuid.UUID `db:"vehicle_id"`
	ObjectKey   string    `db:"object_key"`
	URL         string    `db:"url"`
	ContentType string    `db:"content_type"`
	Position    int       `db:"position"`
	CreatedAt   time.Time `db:"created_at"   goqu:"skipinsert"`
}

func (p *PgPhoto) ToDomain() *domain.VehiclePhoto {
	return &domain.VehiclePhoto{
		ID:          domain.PhotoID(p.ID),
		VehicleID:   domain.VehicleID(p.VehicleID),
		ObjectKey:   p.ObjectKey,
		URL:         p.URL,
		ContentType: p.ContentType,
		Position:    p.Position,
		CreatedAt:   p.CreatedAt,
	}
}

type PgContact struct {
	ID        uuid.UUID     `db:"id"         goqu:"skipinsert"`
	Name      string        `db:"name"`
	Email     string        `db:"email"`
	Phone     string        `db:"phone"`
	Message   string        `db:"message"`
	VehicleID uuid.NullUUID `db:"vehicle_id"`
	Source    string        `db:"source"`
	Handled   bool          `db:"handled"`
	LeadID    uuid.NullUUID `db:"lead_id"`
	CreatedAt time.Time     `db:"created_at" goqu:"skipinsert"`
}

func (p *PgContact) ToDomain() *domain.Contact {
	c := &domain.Contact{
		ID:        domain.ContactID(p.ID),
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Message:   p.Message,
		Source:    domain.Source(p.Source),
		Handled:   p.Handled,
		CreatedAt: p.CreatedAt,
	}
	if p.VehicleID.Valid {
		id := domain.VehicleID(p.VehicleID.UUID)
		c.VehicleID = &id
	}
	if p.LeadID.Valid {
		id := domain.LeadID(p.LeadID.UUID)
		c.LeadID = &id
	}

	return c
}

func (p *PgContact) FromDomain(c domain.Contact) {
	*p = PgContact{
		ID:        uuid.UUID(c.ID),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		VehicleID: nullUUID((*uuid.UUID)(c.VehicleID)),
		Source:    string(c.Source),
		Handled:   c.Handled,
		LeadID:    nullUUID((*uuid.UUID)(c.LeadID)),
		CreatedAt: c.CreatedAt,
	}
}

type PgLead struct {
	ID         uuid.UUID     `db:"id"          goqu:"skipinsert"`
	Name       string        `db:"name"`
	Email      string        `db:"email"`
	Phone      string        `db:"phone"`
	VehicleID  uuid.NullUUID `db:"vehicle_id"`
	Source     string        `db:"source"`
	Status     string        `db:"status"`
	Notes      string        `db:"notes"`
	AssignedTo uuid.NullUUID `db:"assigned_to"`
	ClientID   uuid.NullUUID `db:"client_id"`
	CreatedAt  time.Time     `db:"created_at"  goqu:"skipinsert"`
	UpdatedAt  time.Time     `db:"updated_at"  goqu:"skipinsert"`
}

func (p *PgLead) ToDomain() *domain.Lead {
	l := &domain.Lead{
		ID:        domain.LeadID(p.ID),
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Source:    domain.Source(p.Source),
		Status:    domain.LeadStatus(p.Status),
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.VehicleID.Valid {
		id := domain.VehicleID(p.VehicleID.UUID)
		l.VehicleID = &id
	}
	if p.AssignedTo.Valid {
		id := domain.UserID(p.AssignedTo.UUID)
		l.AssignedTo = &id
	}
	if p.ClientID.Valid {
		id := domain.ClientID(p.ClientID.UUID)
		l.ClientID = &id
	}

	return l
}

func (p *PgLead) FromDomain(l domain.Lead) {
	*p = PgLead{
		ID:         uuid.UUID(l.ID),
		Name:       l.Name,
		Email:      l.Email,
		Phone:      l.Phone,
		VehicleID:  nullUUID((*uuid.UUID)(l.VehicleID)),
		Source:     string(l.Source),
		Status:     string(l.Status),
		Notes:      l.Notes,
		AssignedTo: nullUUID((*uuid.UUID)(l.AssignedTo)),
		ClientID:   nullUUID((*uuid.UUID)(l.ClientID)),
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

type PgClient struct {
	ID         uuid.UUID    `db:"id"          goqu:"skipinsert"`
	FirstName  string       `db:"first_name"`
	LastName   string       `db:"last_name"`
	NationalID string       `db:"national_id"`
	Email      string       `db:"email"`
	Phone      string       `db:"phone"`
	Address    string       `db:"address"`
	City       string       `db:"city"`
	PostalCode string       `db:"postal_code"`
	Notes      string       `db:"notes"`
	CreatedAt  time.Time    `db:"created_at"  goqu:"skipinsert"`
	UpdatedAt  sql.NullTime `db:"updated_at"  goqu:"skipinsert"`
}

func (p *PgClient) ToDomain() *domain.Client {
	return &domain.Client{
		ID:         domain.ClientID(p.ID),
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		NationalID: p.NationalID,
		Email:      p.Email,
		Phone:      p.Phone,
		Address:    p.Address,
		City:       p.City,
		PostalCode: p.PostalCode,
		Notes:      p.Notes,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt.Time,
	}
}

func (p *PgClient) FromDomain(c domain.Client) {
	*p = PgClient{
		ID:         uuid.UUID(c.ID),
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		NationalID: c.NationalID,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		City:       c.City,
		PostalCode: c.PostalCode,
		Notes:      c.Notes,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  nullTime(c.UpdatedAt),
	}
}

type PgPolicy struct {
	ID               uuid.UUID     `db:"id"                 goqu:"skipinsert"`
	PolicyNumber     string        `db:"policy_number"`
	Insurer          string        `db:"insurer"`
	HolderName       string        `db:"holder_name"`
	HolderNationalID string        `db:"holder_national_id"`
	LicensePlate     string        `db:"license_plate"`
	VehicleID        uuid.NullUUID `db:"vehicle_id"`
	ClientID         uuid.NullUUID `db:"client_id"`
	Coverage         string        `db:"coverage"`
	Premium          int64         `db:"premium"`
	StartDate        sql.NullTime  `db:"start_date"`
	EndDate          sql.NullTime  `db:"end_date"`
	CreatedAt        time.Time     `db:"created_at"         goqu:"skipinsert"`
	UpdatedAt        sql.NullTime  `db:"updated_at"         goqu:"skipinsert"`
}

func (p *PgPolicy) ToDomain() *domain.InsurancePolicy {
	out := &domain.InsurancePolicy{
		ID:               domain.PolicyID(p.ID),
		PolicyNumber:     p.PolicyNumber,
		Insurer:          p.Insurer,
		HolderName:       p.HolderName,
		HolderNationalID: p.HolderNationalID,
		LicensePlate:     p.LicensePlate,
		Coverage:         p.Coverage,
		Premium:          domain.Money(p.Premium),
		StartDate:        p.StartDate.Time,
		EndDate:          p.EndDate.Time,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt.Time,
	}
	if p.VehicleID.Valid {
		id := domain.VehicleID(p.VehicleID.UUID)
		out.VehicleID = &id
	}
	if p.ClientID.Valid {
		id := domain.ClientID(p.ClientID.UUID)
		out.ClientID = &id
	}

	return out
}

func (p *PgPolicy) FromDomain(in domain.InsurancePolicy) {
	*p = PgPolicy{
		ID:               uuid.UUID(in.ID),
		PolicyNumber:     in.PolicyNumber,
		Insurer:          in.Insurer,
		HolderName:       in.HolderName,
		HolderNationalID: in.HolderNationalID,
		LicensePlate:     in.LicensePlate,
		VehicleID:        nullUUID((*uuid.UUID)(in.VehicleID)),
		ClientID:         nullUUID((*uuid.UUID)(in.ClientID)),
		Coverage:         in.Coverage,
		Premium:          int64(in.Premium),
		StartDate:        nullTime(in.StartDate),
		EndDate:          nullTime(in.EndDate),
		CreatedAt:        in.CreatedAt,
		UpdatedAt:        nullTime(in.UpdatedAt),
	}
}

type PgPost struct {
	ID            uuid.UUID      `db:"id"              goqu:"skipinsert"`
	Title         string         `db:"title"`
	Slug          string         `db:"slug"`
	Excerpt       string         `db:"excerpt"`
	Content       string         `db:"content"`
	CoverImageURL string         `db:"cover_image_url"`
	Tags          pq.StringArray `db:"tags"`
	Status        string         `db:"status"`
	PublishedAt   sql.NullTime   `db:"published_at"`
	CreatedAt     time.Time      `db:"created_at"      goqu:"skipinsert"`
	UpdatedAt     sql.NullTime   `db:"updated_at"      goqu:"skipinsert"`
}

func (p *PgPost) ToDomain() *domain.BlogPost {
	tags := []string(p.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &domain.BlogPost{
		ID:            domain.PostID(p.ID),
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
		CoverImageURL: p.CoverImageURL,
		Tags:          tags,
		Status:        domain.PostStatus(p.Status),
		PublishedAt:   p.PublishedAt.Time,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}
}

func (p *PgPost) FromDomain(in domain.BlogPost) {
	tags := pq.StringArray(in.Tags)
	if tags == nil {
		tags = pq.StringArray{}
	}

	*p = PgPost{
		ID:            uuid.UUID(in.ID),
		Title:         in.Title,
		Slug:          in.Slug,
		Excerpt:       in.Excerpt,
		Content:       in.Content,
		CoverImageURL: in.CoverImageURL,
		Tags:          tags,
		Status:        string(in.Status),
		PublishedAt:   nullTime(in.PublishedAt),
		CreatedAt:     in.CreatedAt,
		UpdatedAt:     nullTime(in.UpdatedAt),
	}
}

type PgWebContent struct {
	Section   string        `db:"section"`
	Key       string        `db:"key"`
	Value     string        `db:"value"`
	UpdatedBy uuid.NullUUID `db:"updated_by"`
	UpdatedAt time.Time     `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgWebContent) ToDomain() *domain.WebContent {
	out := &domain.WebContent{
		Section:   p.Section,
		Key:       p.Key,
		Value:     p.Value,
		UpdatedAt: p.UpdatedAt,
	}
	if p.UpdatedBy.Valid {
		id := domain.UserID(p.UpdatedBy.UUID)
		out.UpdatedBy = &id
	}

	return out
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}

	return uuid.NullUUID{UUID: *id, Valid: true}
}

// toDomainSlice converts a slice of rows with the given converter.
func toDomainSlice[P any, D any](rows []P, conv func(*P) *D) []D {
	out := make([]D, 0, len(rows))
	for i := range rows {
		out = append(out, *conv(&rows[i]))
	}

	return out
}
