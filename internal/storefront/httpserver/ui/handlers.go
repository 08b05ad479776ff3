package ui

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"finitefield.org/storefront/internal/storefront/catalog"
	"finitefield.org/storefront/internal/storefront/content"
	"finitefield.org/storefront/internal/storefront/navigation"
	"finitefield.org/storefront/internal/storefront/seo"
	"finitefield.org/storefront/internal/storefront/templates/partials"
	"finitefield.org/storefront/internal/storefront/templates/shop"
)

// Dependencies collects external services required by the UI handlers.
type Dependencies struct {
	Catalog  catalog.Service
	Now      func() time.Time
	Logger   *zap.Logger
	Markdown *content.Renderer
}

// Handlers exposes HTTP handlers for storefront pages.
type Handlers struct {
	catalog  catalog.Service
	now      func() time.Time
	logger   *zap.Logger
	markdown *content.Renderer
}

// NewHandlers wires the UI handler set.
func NewHandlers(deps Dependencies) *Handlers {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	markdown := deps.Markdown
	if markdown == nil {
		markdown = content.NewRenderer()
	}
	return &Handlers{
		catalog:  deps.Catalog,
		now:      now,
		logger:   logger,
		markdown: markdown,
	}
}

// sectionQueries maps header link keys to catalog filters.
var sectionQueries = map[string]catalog.Query{
	"sale":        {Section: catalog.SectionSale},
	"new":         {Section: catalog.SectionNew},
	"men":         {Category: catalog.CategoryMen},
	"women":       {Category: catalog.CategoryWomen},
	"kids":        {Category: catalog.CategoryKids},
	"collections": {},
}

// Home renders every product.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.renderListing(w, r, "", catalog.Query{})
}

// Section returns a handler for the header link identified by key.
func (h *Handlers) Section(key string) http.HandlerFunc {
	query, ok := sectionQueries[key]
	if !ok {
		panic("ui: unknown section " + key)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderListing(w, r, key, query)
	}
}

func (h *Handlers) renderListing(w http.ResponseWriter, r *http.Request, key string, query catalog.Query) {
	query.Sort = catalog.ParseSort(r.URL.Query().Get("sort"))

	products, err := h.catalog.ListProducts(r.Context(), query)
	if err != nil {
		h.catalogFailure(w, r, err, zap.String("section", key))
		return
	}

	data := shop.BuildListing(key, r.URL.Path, query.Sort, products, h.now())
	templ.Handler(shop.Listing(data)).ServeHTTP(w, r)
}

// Product renders the detail page for the {slug} path parameter.
func (h *Handlers) Product(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		h.NotFound(w, r)
		return
	}

	product, err := h.catalog.Product(r.Context(), slug)
	if errors.Is(err, catalog.ErrProductNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		h.catalogFailure(w, r, err, zap.String("slug", slug))
		return
	}

	description, err := h.markdown.Render(product.Description)
	if err != nil {
		h.logger.Warn("render description failed", zap.String("slug", slug), zap.Error(err))
		description = ""
	}

	summary := h.markdown.PlainText(product.Description)
	crumbs := navigation.Breadcrumbs(string(product.Category), product.Name)

	data := shop.DetailData{
		Card:            partials.NewProductCardData(product, h.now()),
		Summary:         summary,
		DescriptionHTML: description,
		Breadcrumbs:     crumbs,
		JSONLD:          productJSONLD(r, product, summary, crumbs),
	}
	templ.Handler(shop.Detail(data)).ServeHTTP(w, r)
}

// NotFound renders the storefront 404 page.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	component := shop.StatusPage("Not Found", "We couldn't find the page you were looking for.")
	templ.Handler(component, templ.WithStatus(http.StatusNotFound)).ServeHTTP(w, r)
}

func (h *Handlers) catalogFailure(w http.ResponseWriter, r *http.Request, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("path", r.URL.Path),
		zap.String("request_id", chimw.GetReqID(r.Context())),
		zap.Error(err),
	)
	h.logger.Error("catalog request failed", fields...)
	component := shop.StatusPage("Something went wrong", "The catalog is unavailable right now. Please try again shortly.")
	templ.Handler(component, templ.WithStatus(http.StatusBadGateway)).ServeHTTP(w, r)
}

func productJSONLD(r *http.Request, p catalog.Product, description string, crumbs []navigation.Crumb) []string {
	base := baseURL(r)
	pageURL := base + p.Href()
	image := p.ImageSrc
	if strings.HasPrefix(image, "/") {
		image = base + image
	}

	offer := seo.Offer{
		Price:    p.EffectivePrice().StringFixed(2),
		Currency: "USD",
		URL:      pageURL,
	}
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		item := seo.BreadcrumbItem{Name: c.Label}
		switch {
		case c.Href != "":
			item.Item = base + c.Href
		case c.Active:
			item.Item = pageURL
		}
		items = append(items, item)
	}

	return []string{
		seo.JSON(seo.Product(p.Name, description, pageURL, image, p.Slug, offer)),
		seo.JSON(seo.BreadcrumbList(items)),
	}
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(forwarded, ",")[0]))
	}
	return scheme + "://" + r.Host
}
