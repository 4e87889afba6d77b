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

const (
	contactsTable = "contacts"
	leadsTable    = "leads"
	clientsTable  = "clients"
)

func (p *PgSQL) StoreContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	var row PgContact
	row.FromDomain(contact)

	var stored PgContact
	if _, err := p.Builder.Insert(contactsTable).
		Rows(row).
		Returning(&PgContact{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, mapWriteErr(err, "could not store contact into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) UpdateContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	var row PgContact
	row.FromDomain(contact)

	var updated PgContact
	found, err := p.Builder.Update(contactsTable).
		Set(goqu.Record{
			"handled": row.Handled,
			"lead_id": row.LeadID,
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Returning(&PgContact{}).
		Executor().ScanStructContext(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("could not update contact in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return updated.ToDomain(), nil
}

func (p *PgSQL) ContactByID(ctx context.Context, id domain.ContactID) (*domain.Contact, error) {
	var row PgContact
	found, err := p.Builder.From(contactsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch contact by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Contacts(ctx context.Context, filter storage.ContactFilter) (storage.List[domain.Contact], error) {
	var w []goqu.Expression
	if filter.Handled != nil {
		w = append(w, goqu.I("handled").Eq(*filter.Handled))
	}
	if strings.TrimSpace(filter.Search) != "" {
		like := likePattern(filter.Search)
		w = append(w, goqu.Or(
			goqu.I("name").ILike(like),
			goqu.I("email").ILike(like),
			goqu.I("phone").ILike(like),
		))
	}
	ds := p.Builder.From(contactsTable).Where(w...)

	total, err := ds.CountContext(ctx)
	if err != nil {
		return storage.List[domain.Contact]{}, fmt.Errorf("could not count contacts: %w", err)
	}

	var rows []PgContact
	if err := ds.Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limitOf(filter.Page)).
		Offset(filter.Offset).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.List[domain.Contact]{}, fmt.Errorf("could not fetch contacts from pg: %w", err)
	}

	return storage.List[domain.Contact]{Items: toDomainSlice(rows, (*PgContact).ToDomain), Total: total}, nil
}

func (p *PgSQL) StoreLead(ctx context.Context, lead domain.Lead) (*domain.Lead, error) {
	var row PgLead
	row.FromDomain(lead)

	var stored PgLead
	if _, err := p.Builder.Insert(leadsTable).
		Rows(row).
		Returning(&PgLead{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, mapWriteErr(err, "could not store lead into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) UpdateLead(ctx context.Context, lead domain.Lead) (*domain.Lead, error) {
	var row PgLead
	row.FromDomain(lead)

	var updated PgLead
	found, err := p.Builder.Update(leadsTable).
		Set(goqu.Record{
			"name":        row.Name,
			"email":       row.Email,
			"phone":       row.Phone,
			"vehicle_id":  row.VehicleID,
			"source":      row.Source,
			"status":      row.Status,
			"notes":       row.Notes,
			"assigned_to": row.AssignedTo,
			"client_id":   row.ClientID,
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Returning(&PgLead{}).
		Executor().ScanStructContext(ctx, &updated)
	if err != nil {
		return nil, mapWriteErr(err, "could not update lead in pg")
	}
	if !found {
		return nil, nil
	}

	return updated.ToDomain(), nil
}

func (p *PgSQL) LeadByID(ctx context.Context, id domain.LeadID) (*domain.Lead, error) {
	var row PgLead
	found, err := p.Builder.From(leadsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch lead by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Leads(ctx context.Context, filter storage.LeadFilter) (storage.List[domain.Lead], error) {
	var w []goqu.Expression
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.Source != "" {
		w = append(w, goqu.I("source").Eq(string(filter.Source)))
	}
	if filter.AssignedTo != nil {
		w = append(w, goqu.I("assigned_to").Eq(uuid.UUID(*filter.AssignedTo)))
	}
	if filter.VehicleID != nil {
		w = append(w, goqu.I("vehicle_id").Eq(uuid.UUID(*filter.VehicleID)))
	}
	if strings.TrimSpace(filter.Search) != "" {
		like := likePattern(filter.Search)
		w = append(w, goqu.Or(
			goqu.I("name").ILike(like),
			goqu.I("email").ILike(like),
			goqu.I("phone").ILike(like),
			goqu.I("notes").ILike(like),
		))
	}
	ds := p.Builder.From(leadsTable).Where(w...)

	total, err := ds.CountContext(ctx)
	if err != nil {
		return storage.List[domain.Lead]{}, fmt.Errorf("could not count leads: %w", err)
	}

	var rows []PgLead
	if err := ds.Order(goqu.I("updated_at").Desc(), goqu.I("id").Desc()).
		Limit(limitOf(filter.Page)).
		Offset(filter.Offset).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.List[domain.Lead]{}, fmt.Errorf("could not fetch leads from pg: %w", err)
	}

	return storage.List[domain.Lead]{Items: toDomainSlice(rows, (*PgLead).ToDomain), Total: total}, nil
}

func (p *PgSQL) DeleteLead(ctx context.Context, id domain.LeadID) (bool, error) {
	res, err := p.Builder.Delete(leadsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete lead: %w", err)
	}

	return affected(res)
}

func (p *PgSQL) StoreClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	var row PgClient
	row.FromDomain(client)

	var stored PgClient
	if _, err := p.Builder.Insert(clientsTable).
		Rows(row).
		Returning(&PgClient{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, mapWriteErr(err, "could not store client into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) UpdateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	var row PgClient
	row.FromDomain(client)

	var updated PgClient
	found, err := p.Builder.Update(clientsTable).
		Set(goqu.Record{
			"first_name":  row.FirstName,
			"last_name":   row.LastName,
			"national_id": row.NationalID,
			"email":       row.Email,
			"phone":       row.Phone,
			"address":     row.Address,
			"city":        row.City,
			"postal_code": row.PostalCode,
			"notes":       row.Notes,
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Returning(&PgClient{}).
		Executor().ScanStructContext(ctx, &updated)
	if err != nil {
		return nil, mapWriteErr(err, "could not update client in pg")
	}
	if !found {
		return nil, nil
	}

	return updated.ToDomain(), nil
}

func (p *PgSQL) ClientByID(ctx context.Context, id domain.ClientID) (*domain.Client, error) {
	var row PgClient
	found, err := p.Builder.From(clientsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch client by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Clients(ctx context.Context, filter storage.ClientFilter) (storage.List[domain.Client], error) {
	var w []goqu.Expression
	if strings.TrimSpace(filter.Search) != "" {
		like := likePattern(filter.Search)
		w = append(w, goqu.Or(
			goqu.I("first_name").ILike(like),
			goqu.I("last_name").ILike(like),
			goqu.I("national_id").ILike(likePattern(domain.NormalizeNationalID(filter.Search))),
			goqu.I("email").ILike(like),
			goqu.I("phone").ILike(like),
		))
	}
	ds := p.Builder.From(clientsTable).Where(w...)

	total, err := ds.CountContext(ctx)
	if err != nil {
		return storage.List[domain.Client]{}, fmt.Errorf("could not count clients: %w", err)
	}

	var rows []PgClient
	if err := ds.Order(goqu.I("last_name").Asc(), goqu.I("first_name").Asc(), goqu.I("id").Asc()).
		Limit(limitOf(filter.Page)).
		Offset(filter.Offset).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.List[domain.Client]{}, fmt.Errorf("could not fetch clients from pg: %w", err)
	}

	return storage.List[domain.Client]{Items: toDomainSlice(rows, (*PgClient).ToDomain), Total: total}, nil
}

func (p *PgSQL) DeleteClient(ctx context.Context, id domain.ClientID) (bool, error) {
	res, err := p.Builder.Delete(clientsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete client: %w", err)
	}

	return affected(res)
}
