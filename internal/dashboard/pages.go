package dashboard

import (
	"context"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/salesdesk/internal/catalog"
	"github.com/dmitrymomot/salesdesk/internal/views"
	"github.com/dmitrymomot/salesdesk/internal/workspace"
	"github.com/dmitrymomot/salesdesk/pkg/form"
)

func (s *Service) salesTableParams(ctx context.Context, ws workspace.Workspace) (views.SalesTableParams, error) {
	rows, err := s.source.Sales(ctx)
	if err != nil {
		return views.SalesTableParams{}, err
	}
	return views.SalesTableParams{
		Page:      catalog.Paginate(rows, ws.Sales.Page, ws.Sales.Size),
		Selection: ws.Sales.Selection,
	}, nil
}

func (s *Service) customerTableParams(ctx context.Context, ws workspace.Workspace) (views.CustomerTableParams, error) {
	rows, err := s.source.Customers(ctx)
	if err != nil {
		return views.CustomerTableParams{}, err
	}
	return views.CustomerTableParams{
		Page:      catalog.Paginate(rows, ws.Customers.Page, ws.Customers.Size),
		Selection: ws.Customers.Selection,
	}, nil
}

func (s *Service) salesTable(ctx context.Context, ws workspace.Workspace) (templ.Component, error) {
	p, err := s.salesTableParams(ctx, ws)
	if err != nil {
		return nil, err
	}
	return views.SalesTable(p), nil
}

func (s *Service) customerTable(ctx context.Context, ws workspace.Workspace) (templ.Component, error) {
	p, err := s.customerTableParams(ctx, ws)
	if err != nil {
		return nil, err
	}
	return views.CustomerTable(p), nil
}

func (s *Service) salesPage(ctx context.Context, ws workspace.Workspace) (templ.Component, error) {
	layout, err := s.layout(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.source.SalesStats(ctx)
	if err != nil {
		return nil, err
	}
	table, err := s.salesTableParams(ctx, ws)
	if err != nil {
		return nil, err
	}
	return views.SalesPage(views.SalesPageParams{
		Layout: layout,
		Stats:  stats,
		Table:  table,
		Form:   views.FormParams{Schema: form.SaleSchema(), State: ws.SaleForm},
	}), nil
}

func (s *Service) customersPage(ctx context.Context, ws workspace.Workspace) (templ.Component, error) {
	layout, err := s.layout(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.source.CustomerStats(ctx)
	if err != nil {
		return nil, err
	}
	table, err := s.customerTableParams(ctx, ws)
	if err != nil {
		return nil, err
	}
	return views.CustomersPage(views.CustomersPageParams{
		Layout: layout,
		Stats:  stats,
		Table:  table,
		Form:   views.FormParams{Schema: form.CustomerSchema(), State: ws.CustomerForm},
	}), nil
}
