package services

import (
	"routeplanner/internal/models/response_models"
	"routeplanner/pkg/geo"
)

// EnrichItem fills both coordinates from the gazetteer when the item lacks either one.
// A miss leaves both unset.
func EnrichItem(g geo.Gazetteer, item response_models.POIItem) response_models.POIItem {
	if item.HasCoordinates() {
		return item
	}

	item.Lng, item.Lat = nil, nil
	if p, ok := g.Lookup(item.Name); ok {
		lng, lat := p.Lon(), p.Lat()
		item.Lng, item.Lat = &lng, &lat
	}
	return item
}

// EnrichVariants applies EnrichItem to every item in place.
func EnrichVariants(g geo.Gazetteer, variants []response_models.PlanVariant) {
	for vi := range variants {
		for di := range variants[vi].Days {
			items := variants[vi].Days[di].Items
			for ii := range items {
				items[ii] = EnrichItem(g, items[ii])
			}
		}
	}
}
