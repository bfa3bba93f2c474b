package schema

import (
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/holidaze/client-go/internal/model"
)

// Venue validates a single venue object. id and name are required;
// media defaults to an empty list and price, maxGuests and rating
// default to 0 when absent. The meta and location sub-objects and each
// media item's alt are optional.
func Venue(v gjson.Result) (model.Venue, error) {
	var out model.Venue

	if !v.IsObject() {
		return out, errAt("$", "object")
	}

	var err error
	if out.ID, err = requiredString(v, "id"); err != nil {
		return out, err
	}
	if out.Name, err = requiredString(v, "name"); err != nil {
		return out, err
	}
	if out.Description, err = optionalString(v, "description"); err != nil {
		return out, err
	}

	if out.Media, err = mediaList(v.Get("media")); err != nil {
		return out, err
	}

	if out.Price, err = numberOrDefault(v, "price", 0); err != nil {
		return out, err
	}
	maxGuests, err := numberOrDefault(v, "maxGuests", 0)
	if err != nil {
		return out, err
	}
	out.MaxGuests = int(maxGuests)
	if out.Rating, err = numberOrDefault(v, "rating", 0); err != nil {
		return out, err
	}

	if out.Meta, err = venueMeta(v.Get("meta")); err != nil {
		return out, err
	}
	if out.Location, err = venueLocation(v.Get("location")); err != nil {
		return out, err
	}

	return out, nil
}

// VenueList validates an array of venues.
func VenueList(v gjson.Result) ([]model.Venue, error) {
	if !v.IsArray() {
		return nil, errAt("$", "array")
	}

	items := v.Array()
	venues := make([]model.Venue, 0, len(items))
	for i, item := range items {
		venue, err := Venue(item)
		if err != nil {
			return nil, prefixPath(err, itemPath(i))
		}
		venues = append(venues, venue)
	}
	return venues, nil
}

// Pagination validates the pagination descriptor attached to list
// responses, including the boundary invariant that previousPage is null
// exactly on the first page and nextPage null exactly on the last.
func Pagination(v gjson.Result) (model.PaginationMeta, error) {
	var out model.PaginationMeta

	if !v.IsObject() {
		return out, errAt("meta", "object")
	}

	var err error
	if out.IsFirstPage, err = requiredBool(v, "isFirstPage"); err != nil {
		return out, prefixPath(err, "meta")
	}
	if out.IsLastPage, err = requiredBool(v, "isLastPage"); err != nil {
		return out, prefixPath(err, "meta")
	}
	if out.CurrentPage, err = requiredInt(v, "currentPage"); err != nil {
		return out, prefixPath(err, "meta")
	}
	if out.PreviousPage, err = nullableInt(v, "previousPage"); err != nil {
		return out, prefixPath(err, "meta")
	}
	if out.NextPage, err = nullableInt(v, "nextPage"); err != nil {
		return out, prefixPath(err, "meta")
	}
	if out.PageCount, err = requiredInt(v, "pageCount"); err != nil {
		return out, prefixPath(err, "meta")
	}
	if out.TotalCount, err = requiredInt(v, "totalCount"); err != nil {
		return out, prefixPath(err, "meta")
	}

	if !out.Consistent() {
		return out, errAt("meta", "previousPage/nextPage consistent with page flags")
	}

	return out, nil
}

func mediaList(v gjson.Result) ([]model.MediaItem, error) {
	if !v.Exists() || v.Type == gjson.Null {
		return []model.MediaItem{}, nil
	}
	if !v.IsArray() {
		return nil, errAt("media", "array")
	}

	items := v.Array()
	media := make([]model.MediaItem, 0, len(items))
	for i, item := range items {
		if !item.IsObject() {
			return nil, errAt("media."+itemPath(i), "object")
		}
		url, err := requiredString(item, "url")
		if err != nil {
			return nil, prefixPath(err, "media."+itemPath(i))
		}
		alt, err := optionalString(item, "alt")
		if err != nil {
			return nil, prefixPath(err, "media."+itemPath(i))
		}
		media = append(media, model.MediaItem{URL: url, Alt: alt})
	}
	return media, nil
}

func venueMeta(v gjson.Result) (*model.VenueMeta, error) {
	if !v.Exists() || v.Type == gjson.Null {
		return nil, nil
	}
	if !v.IsObject() {
		return nil, errAt("meta", "object or null")
	}

	var out model.VenueMeta
	var err error
	if out.Wifi, err = optionalBool(v, "wifi"); err != nil {
		return nil, prefixPath(err, "meta")
	}
	if out.Parking, err = optionalBool(v, "parking"); err != nil {
		return nil, prefixPath(err, "meta")
	}
	if out.Breakfast, err = optionalBool(v, "breakfast"); err != nil {
		return nil, prefixPath(err, "meta")
	}
	if out.Pets, err = optionalBool(v, "pets"); err != nil {
		return nil, prefixPath(err, "meta")
	}
	return &out, nil
}

func venueLocation(v gjson.Result) (*model.VenueLocation, error) {
	if !v.Exists() || v.Type == gjson.Null {
		return nil, nil
	}
	if !v.IsObject() {
		return nil, errAt("location", "object or null")
	}

	var out model.VenueLocation
	var err error
	if out.Address, err = optionalString(v, "address"); err != nil {
		return nil, prefixPath(err, "location")
	}
	if out.City, err = optionalString(v, "city"); err != nil {
		return nil, prefixPath(err, "location")
	}
	if out.Zip, err = optionalString(v, "zip"); err != nil {
		return nil, prefixPath(err, "location")
	}
	if out.Country, err = optionalString(v, "country"); err != nil {
		return nil, prefixPath(err, "location")
	}
	if out.Continent, err = optionalString(v, "continent"); err != nil {
		return nil, prefixPath(err, "location")
	}
	lat, err := optionalNumber(v, "lat")
	if err != nil {
		return nil, prefixPath(err, "location")
	}
	if lat != nil {
		out.Lat = *lat
	}
	lng, err := optionalNumber(v, "lng")
	if err != nil {
		return nil, prefixPath(err, "location")
	}
	if lng != nil {
		out.Lng = *lng
	}
	return &out, nil
}

func itemPath(i int) string {
	return strconv.Itoa(i)
}
