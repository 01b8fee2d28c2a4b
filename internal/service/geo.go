package service

import (
	"github.com/fisherfans/api/internal/model"
)

// GeoRangeFilter evaluates bounding-box membership for search results
type GeoRangeFilter struct{}

// NewGeoRangeFilter creates a new geo range filter
func NewGeoRangeFilter() *GeoRangeFilter {
	return &GeoRangeFilter{}
}

// NewBoundingBox builds a box only when all four bounds are supplied. Any
// missing bound means no geographic filter at all, never a half-open range.
func NewBoundingBox(minLat, maxLat, minLng, maxLng *float64) *model.BoundingBox {
	if minLat == nil || maxLat == nil || minLng == nil || maxLng == nil {
		return nil
	}
	return &model.BoundingBox{
		MinLat: *minLat,
		MaxLat: *maxLat,
		MinLng: *minLng,
		MaxLng: *maxLng,
	}
}

// InRange reports whether p lies inside box, bounds included
func (f *GeoRangeFilter) InRange(p model.Coordinates, box model.BoundingBox) bool {
	return p.Lat >= box.MinLat && p.Lat <= box.MaxLat &&
		p.Lng >= box.MinLng && p.Lng <= box.MaxLng
}

// FilterBoats keeps the boats positioned inside box. A nil box keeps every
// boat; with a box, boats without a position are dropped.
func (f *GeoRangeFilter) FilterBoats(boats []*model.Boat, box *model.BoundingBox) []*model.Boat {
	if box == nil {
		return boats
	}
	kept := make([]*model.Boat, 0, len(boats))
	for _, b := range boats {
		pos := b.Position()
		if pos != nil && f.InRange(*pos, *box) {
			kept = append(kept, b)
		}
	}
	return kept
}
