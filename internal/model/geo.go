package model

// Coordinates is a WGS84 position in decimal degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BoundingBox is a rectangular latitude/longitude range, inclusive on every edge
type BoundingBox struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLng float64 `json:"minLng"`
	MaxLng float64 `json:"maxLng"`
}

// IsEmpty reports whether no point can satisfy the box (an inverted range)
func (b BoundingBox) IsEmpty() bool {
	return b.MinLat > b.MaxLat || b.MinLng > b.MaxLng
}
