package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/fmstack/fmstack/components/scaffold/table"
	"github.com/fmstack/fmstack/modules/assets/domain/aggregates/asset"
	"github.com/fmstack/fmstack/modules/assets/services"
	"github.com/fmstack/fmstack/pkg/application"
	"github.com/fmstack/fmstack/pkg/composables"
)

const assetsLayoutKey = "assets:table:layout"

type AssetsController struct {
	app      application.Application
	service  *services.AssetService
	basePath string
}

func NewAssetsController(app application.Application) application.Controller {
	return &AssetsController{
		app:      app,
		service:  app.Service(services.AssetService{}).(*services.AssetService),
		basePath: "/assets",
	}
}

func (c *AssetsController) Key() string {
	return c.basePath
}

func (c *AssetsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/layout", c.SaveLayout).Methods(http.MethodPost)
}

// assetColumns builds the column set with labels already localized, so sort
// headers and export headers agree.
func assetColumns(ctx context.Context) []table.Column {
	t := func(key string) string { return key }
	if pageCtx, ok := composables.TryUsePageCtx(ctx); ok {
		t = func(key string) string { return pageCtx.TSafe(key) }
	}
	return []table.Column{
		table.NewColumn("name", t("Assets.List.Name"), table.Fixed()),
		table.NewColumn("category", t("Assets.List.Category")),
		table.NewColumn("location", t("Assets.List.Location")),
		table.NewColumn("status", t("Assets.List.Status")),
		table.NewColumn("serialNumber", t("Assets.List.SerialNumber"), table.HiddenByDefault()),
		table.NewColumn("purchasedAt", t("Assets.List.PurchasedAt")),
	}
}

func assetValue(a asset.Asset, key string) any {
	switch key {
	case "name":
		return a.Name()
	case "category":
		return a.Category()
	case "location":
		return a.Location()
	case "status":
		return string(a.Status())
	case "serialNumber":
		return a.SerialNumber()
	case "purchasedAt":
		if a.PurchasedAt().IsZero() {
			return nil
		}
		return a.PurchasedAt().Format("2006-01-02")
	}
	return nil
}

func assetID(a asset.Asset) string {
	return a.ID().String()
}

type assetsListQuery struct {
	Search string `form:"search"`
	Sort   string `form:"sort"`
	Dir    string `form:"dir"`
	Page   int    `form:"page"`
	Export string `form:"export"`
	Status string `form:"status"`
}

func (c *AssetsController) newTable(r *http.Request) (*table.Table[asset.Asset], *assetsListQuery, error) {
	q, err := composables.UseQuery(&assetsListQuery{}, r)
	if err != nil {
		return nil, nil, err
	}

	opts := []table.Option[asset.Asset]{}
	if store, storeErr := composables.UsePrefs(r.Context()); storeErr == nil {
		opts = append(opts, table.WithStorage[asset.Asset](store, assetsLayoutKey))
	}

	tbl := table.New(assetColumns(r.Context()), assetValue, assetID, opts...)
	if err := tbl.Load(r.Context()); err != nil {
		return nil, nil, err
	}

	st := tbl.State()
	st.SetSearch(q.Search)
	if q.Sort != "" {
		st.SortBy = q.Sort
		switch table.SortDirection(q.Dir) {
		case table.SortDesc:
			st.SortDir = table.SortDesc
		default:
			st.SortDir = table.SortAsc
		}
	}
	if status := asset.Status(q.Status); status.IsValid() {
		tbl.SetFilter(func(a asset.Asset) bool {
			return a.Status() == status
		})
	}
	if q.Page > 1 {
		st.Page = q.Page
	}
	return tbl, q, nil
}

func (c *AssetsController) List(w http.ResponseWriter, r *http.Request) {
	tbl, q, err := c.newTable(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows, err := c.service.GetAll(r.Context())
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to load assets")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	switch q.Export {
	case "csv":
		c.exportCSV(w, tbl, rows)
		return
	case "xlsx":
		c.exportXLSX(w, r, tbl, rows)
		return
	}

	pageCtx := composables.UsePageCtx(r.Context())
	component := table.Render(table.Props[asset.Asset]{
		Table:          tbl,
		Rows:           rows,
		BasePath:       c.basePath,
		EmptyMessage:   pageCtx.T("Assets.List.NoAssets"),
		EnableSearch:   true,
		EnableExport:   true,
		ExportFileName: "assets.csv",
		Selectable:     true,
		RenderCell: func(a asset.Asset, key string) templ.Component {
			if key == "status" {
				return statusBadge(a.Status())
			}
			return templ.Raw(templ.EscapeString(table.Stringify(assetValue(a, key))))
		},
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<h1>%s</h1>`, templ.EscapeString(pageCtx.T("Assets.List.Title")))
	if err := component.Render(r.Context(), w); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to render assets table")
	}
}

func (c *AssetsController) exportCSV(w http.ResponseWriter, tbl *table.Table[asset.Asset], rows []asset.Asset) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="assets.csv"`)
	if err := tbl.ExportCSV(w, rows); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (c *AssetsController) exportXLSX(w http.ResponseWriter, r *http.Request, tbl *table.Table[asset.Asset], rows []asset.Asset) {
	data, err := tbl.ExportXLSX(r.Context(), rows, "Assets")
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="assets.xlsx"`)
	_, _ = w.Write(data)
}

type layoutForm struct {
	Order  string `form:"order"`
	Hidden string `form:"hidden"`
}

// SaveLayout persists the column arrangement submitted by the column picker.
func (c *AssetsController) SaveLayout(w http.ResponseWriter, r *http.Request) {
	f, err := composables.UseForm(&layoutForm{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	store, err := composables.UsePrefs(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	tbl := table.New(assetColumns(r.Context()), assetValue, assetID,
		table.WithStorage[asset.Asset](store, assetsLayoutKey))
	if err := tbl.Load(r.Context()); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	layout := table.Layout{
		Order:  splitList(f.Order),
		Hidden: splitList(f.Hidden),
	}
	table.ApplyLayout(tbl.State(), tbl.Columns(), layout)
	if err := tbl.Save(r.Context()); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, c.basePath, http.StatusSeeOther)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func statusBadge(s asset.Status) templ.Component {
	return templ.Raw(fmt.Sprintf(
		`<span class="badge badge--%s">%s</span>`,
		templ.EscapeString(string(s)),
		templ.EscapeString(string(s)),
	))
}
