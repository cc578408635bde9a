package dashboard

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/salesdesk/handler"
	"github.com/dmitrymomot/salesdesk/internal/catalog"
	"github.com/dmitrymomot/salesdesk/internal/workspace"
	"github.com/dmitrymomot/salesdesk/pkg/logger"
	"github.com/dmitrymomot/salesdesk/pkg/selection"
)

// PageRequest picks a table page. Zero values keep the stored page and size.
type PageRequest struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// SelectionRequest carries one of all, none, one or unone.
type SelectionRequest struct {
	Action string `query:"action"`
}

func selectionAction(name string, displayed int) (selection.Action, error) {
	switch name {
	case "all":
		return selection.SelectAll{Total: displayed}, nil
	case "none":
		return selection.DeselectAll{}, nil
	case "one":
		return selection.SelectOne{}, nil
	case "unone":
		return selection.DeselectOne{}, nil
	}
	return nil, ErrUnknownAction
}

// repage moves the table to the requested page and clears its selection,
// since the rows on screen are replaced.
func (s *Service) repage(ctx context.Context, v tableView, req PageRequest) (workspace.Workspace, error) {
	visitor, err := s.visitor(ctx)
	if err != nil {
		return workspace.Workspace{}, err
	}
	total, err := v.total(ctx)
	if err != nil {
		return workspace.Workspace{}, err
	}

	return s.store.Update(ctx, visitor, func(ws *workspace.Workspace) error {
		t, err := ws.Table(v.name)
		if err != nil {
			return err
		}
		if req.Page != 0 {
			t.Page = req.Page
		}
		if req.Size != 0 {
			t.Size = req.Size
		}
		page, size, start, end := catalog.Window(total, t.Page, t.Size)
		t.Page, t.Size = page, size
		t.Selection = selection.Reduce(t.Selection, selection.RowsReplaced{Total: end - start})
		return nil
	})
}

// showPage renders a full page. Every full render starts with no rows
// selected.
func (s *Service) showPage(table string) handler.HandlerFunc[handler.Context, PageRequest] {
	return func(ctx handler.Context, req PageRequest) handler.Response {
		v := s.tables[table]
		ws, err := s.repage(ctx, v, req)
		if err != nil {
			return fail(err)
		}
		page, err := v.page(ctx, ws)
		if err != nil {
			return fail(err)
		}
		return handler.Templ(page)
	}
}

func (s *Service) repageTable(table string) handler.HandlerFunc[handler.Context, PageRequest] {
	return func(ctx handler.Context, req PageRequest) handler.Response {
		v := s.tables[table]
		ws, err := s.repage(ctx, v, req)
		if err != nil {
			return fail(err)
		}

		if t, err := ws.Table(table); err == nil {
			s.log.DebugContext(ctx, "table paged",
				logger.Table(table),
				slog.Int("page", t.Page),
				slog.Int("size", t.Size),
			)
		}

		page, err := v.page(ctx, ws)
		if err != nil {
			return fail(err)
		}
		tbl, err := v.table(ctx, ws)
		if err != nil {
			return fail(err)
		}
		return handler.TemplMultiPartial(page, handler.Patch(tbl), handler.Patch(v.bar(ws)))
	}
}

func (s *Service) changeSelection(table string) handler.HandlerFunc[handler.Context, SelectionRequest] {
	return func(ctx handler.Context, req SelectionRequest) handler.Response {
		v := s.tables[table]
		visitor, err := s.visitor(ctx)
		if err != nil {
			return fail(err)
		}
		total, err := v.total(ctx)
		if err != nil {
			return fail(err)
		}

		ws, err := s.store.Update(ctx, visitor, func(ws *workspace.Workspace) error {
			t, err := ws.Table(v.name)
			if err != nil {
				return err
			}
			_, _, start, end := catalog.Window(total, t.Page, t.Size)
			displayed := end - start
			action, err := selectionAction(req.Action, displayed)
			if err != nil {
				return err
			}
			// The stored total is stale after a fixture change or an expired workspace.
			if t.Selection.Total != displayed {
				t.Selection = selection.Reduce(t.Selection, selection.RowsReplaced{Total: displayed})
			}
			t.Selection = selection.Reduce(t.Selection, action)
			return nil
		})
		if err != nil {
			return fail(err)
		}

		t, _ := ws.Table(v.name)
		s.log.DebugContext(ctx, "selection changed",
			logger.Table(table),
			logger.Action(req.Action),
			slog.Int("selected", t.Selection.Selected),
			slog.Int("total", t.Selection.Total),
		)

		if !handler.IsDataStar(ctx.Request()) {
			return handler.Redirect(v.pageURL)
		}
		if req.Action == "one" || req.Action == "unone" {
			return handler.Templ(v.bar(ws))
		}
		tbl, err := v.table(ctx, ws)
		if err != nil {
			return fail(err)
		}
		return handler.TemplMulti(handler.Patch(tbl), handler.Patch(v.bar(ws)))
	}
}
