package model

// MediaItem is one image attached to a venue.
type MediaItem struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// VenueMeta lists venue amenities.
type VenueMeta struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

// VenueLocation describes where a venue is.
type VenueLocation struct {
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	Zip       string  `json:"zip,omitempty"`
	Country   string  `json:"country,omitempty"`
	Continent string  `json:"continent,omitempty"`
	Lat       float64 `json:"lat,omitempty"`
	Lng       float64 `json:"lng,omitempty"`
}

// Venue is a bookable venue. Instances are fetched per query and never
// cached across distinct query executions.
type Venue struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Media       []MediaItem    `json:"media"`
	Price       float64        `json:"price"`
	MaxGuests   int            `json:"maxGuests"`
	Rating      float64        `json:"rating"`
	Meta        *VenueMeta     `json:"meta,omitempty"`
	Location    *VenueLocation `json:"location,omitempty"`
}
