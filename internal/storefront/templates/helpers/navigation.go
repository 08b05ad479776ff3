package helpers

import (
	"context"

	"finitefield.org/storefront/internal/storefront/httpserver/middleware"
	"finitefield.org/storefront/internal/storefront/navigation"
)

// ActiveSection returns the header link key for the current request, or ""
// when no header link should be highlighted.
func ActiveSection(ctx context.Context) string {
	return navigation.SectionFor(middleware.RequestPathFromContext(ctx))
}
