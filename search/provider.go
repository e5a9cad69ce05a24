// Package search serves the mock flight and hotel inventory behind the
// results page. Providers are interfaces so a real inventory integration can
// replace the in-memory catalogs later.
package search

import (
	"context"

	"voyago/models"
)

type FlightSearchProvider interface {
	SearchFlights(ctx context.Context, q models.SearchQuery) ([]models.FlightOption, error)
}

type HotelSearchProvider interface {
	SearchHotels(ctx context.Context, q models.SearchQuery) ([]models.HotelOption, error)
}

// maxResults caps every listing, matching the "top 5" results page.
const maxResults = 5
