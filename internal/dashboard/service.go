package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/salesdesk/handler"
	"github.com/dmitrymomot/salesdesk/internal/catalog"
	"github.com/dmitrymomot/salesdesk/internal/views"
	"github.com/dmitrymomot/salesdesk/internal/workspace"
	"github.com/dmitrymomot/salesdesk/pkg/binder"
	"github.com/dmitrymomot/salesdesk/pkg/environment"
	"github.com/dmitrymomot/salesdesk/pkg/form"
	"github.com/dmitrymomot/salesdesk/pkg/logger"
)

// Service serves the sales dashboard and the customer page.
type Service struct {
	source       catalog.Source
	store        workspace.Store
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]

	forms  map[string]formRoute
	tables map[string]tableView
}

// formRoute ties a modal form to the page that hosts it.
type formRoute struct {
	controller form.Controller
	pageURL    string
	successMsg string
}

// tableView knows how to count, render and re-render one table's page.
type tableView struct {
	name    string
	pageURL string
	total   func(ctx context.Context) (int, error)
	page    func(ctx context.Context, ws workspace.Workspace) (templ.Component, error)
	table   func(ctx context.Context, ws workspace.Workspace) (templ.Component, error)
	bar     func(ws workspace.Workspace) templ.Component
}

// NewService wires the dashboard to its data source and state store.
func NewService(source catalog.Source, store workspace.Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With(logger.Component("dashboard"))

	s := &Service{
		source: source,
		store:  store,
		log:    log,
		errorHandler: handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
			ErrorPage:   views.ErrorPage,
			ErrorToast:  views.ErrorToast,
			ToastTarget: views.ToastTarget,
		}),
	}

	s.forms = map[string]formRoute{
		form.SaleFormID: {
			controller: s.controller(form.SaleSchema()),
			pageURL:    "/",
			successMsg: "Sale added successfully",
		},
		form.CustomerFormID: {
			controller: s.controller(form.CustomerSchema()),
			pageURL:    "/customers",
			successMsg: "Customer added successfully",
		},
	}

	s.tables = map[string]tableView{
		workspace.SalesTable: {
			name:    workspace.SalesTable,
			pageURL: "/",
			total: func(ctx context.Context) (int, error) {
				rows, err := source.Sales(ctx)
				return len(rows), err
			},
			page:  s.salesPage,
			table: s.salesTable,
			bar:   func(ws workspace.Workspace) templ.Component { return views.SalesActionBar(ws.Sales.Selection) },
		},
		workspace.CustomersTable: {
			name:    workspace.CustomersTable,
			pageURL: "/customers",
			total: func(ctx context.Context) (int, error) {
				rows, err := source.Customers(ctx)
				return len(rows), err
			},
			page:  s.customersPage,
			table: s.customerTable,
			bar:   func(ws workspace.Workspace) templ.Component { return views.CustomersActionBar(ws.Customers.Selection) },
		},
	}

	return s
}

// controller logs submissions; nothing is persisted.
func (s *Service) controller(schema form.Schema) form.Controller {
	return form.Controller{
		Schema: schema,
		OnSubmit: func(ctx context.Context, values form.Values) {
			attrs := make([]slog.Attr, 0, len(schema.Fields))
			for _, f := range schema.Fields {
				attrs = append(attrs, slog.String(f.Name, values[f.Name]))
			}
			s.log.LogAttrs(ctx, slog.LevelInfo, schema.ID+" submitted",
				logger.Form(schema.ID),
				logger.Event("form.submitted"),
				logger.Group("values", attrs...),
			)
		},
		OnClose: func(ctx context.Context) {
			s.log.DebugContext(ctx, "modal closed", logger.Form(schema.ID), logger.Event("form.closed"))
		},
	}
}

// Handle returns the dashboard routes.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", wrap(s, s.showPage(workspace.SalesTable), binder.Query()))
	r.Get("/customers", wrap(s, s.showPage(workspace.CustomersTable), binder.Query()))

	r.Get("/sales/table", wrap(s, s.repageTable(workspace.SalesTable), binder.Query()))
	r.Get("/customers/table", wrap(s, s.repageTable(workspace.CustomersTable), binder.Query()))
	r.Post("/sales/selection", wrap(s, s.changeSelection(workspace.SalesTable), binder.Query()))
	r.Post("/customers/selection", wrap(s, s.changeSelection(workspace.CustomersTable), binder.Query()))

	r.Route("/forms/{form}", func(r chi.Router) {
		pathBinder := binder.Path(chi.URLParam)
		r.Post("/open", wrap(s, s.openForm, pathBinder))
		r.Post("/close", wrap(s, s.closeForm, pathBinder))
		r.Post("/field", wrap(s, s.changeField, pathBinder, binder.Query(), binder.Signals()))
		r.Post("/submit", wrap(s, s.submitForm, pathBinder, binder.Signals(), binder.Form()))
	})

	r.NotFound(wrap(s, func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrNotFound)
	}))
	r.MethodNotAllowed(wrap(s, func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrMethodNotAllowed)
	}))

	return r
}

func wrap[R any](s *Service, h handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](s.errorHandler),
		handler.WithDecorators(timed[R](s.log)),
	)
}

// timed logs how long each handler took to build its response.
func timed[R any](log *slog.Logger) handler.Decorator[handler.Context, R] {
	return func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
		return func(ctx handler.Context, req R) handler.Response {
			start := time.Now()
			resp := next(ctx, req)
			r := ctx.Request()
			log.DebugContext(ctx, "request handled",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				logger.Duration(time.Since(start)),
			)
			return resp
		}
	}
}

func (s *Service) visitor(ctx context.Context) (string, error) {
	id := workspace.VisitorFromContext(ctx)
	if id == "" {
		return "", ErrNoVisitor
	}
	return id, nil
}

func (s *Service) layout(ctx context.Context) (views.LayoutParams, error) {
	customers, err := s.source.Customers(ctx)
	if err != nil {
		return views.LayoutParams{}, err
	}
	return views.LayoutParams{
		CustomerCount: len(customers),
		Env:           environment.FromContext(ctx),
	}, nil
}

// fail maps domain and store errors onto HTTP errors.
func fail(err error) handler.Response {
	switch {
	case errors.Is(err, form.ErrUnknownForm), errors.Is(err, workspace.ErrUnknownTable):
		err = errors.Join(handler.ErrNotFound, err)
	case errors.Is(err, form.ErrUnknownField), errors.Is(err, ErrUnknownAction):
		err = errors.Join(handler.ErrBadRequest, err)
	case errors.Is(err, workspace.ErrStoreUnavailable), errors.Is(err, workspace.ErrConflict):
		err = errors.Join(handler.ErrServiceUnavailable, err)
	}
	return handler.Error(err)
}
