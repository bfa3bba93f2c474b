// Package venues implements venue listing, search and detail lookup,
// plus the query controller that keeps rapid query changes from
// publishing stale results.
package venues

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/holidaze/client-go/internal/api"
	"github.com/holidaze/client-go/internal/model"
	"github.com/holidaze/client-go/internal/schema"
)

const venuesPath = "/holidaze/venues"

// Params are the paging and sorting parameters shared by List and
// Search. Zero values are omitted from the request; the server applies
// its own defaults.
type Params struct {
	Page      int
	Limit     int
	Sort      string
	SortOrder model.SortOrder
}

func (p Params) values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", string(p.SortOrder))
	}
	return q
}

// Service fetches venues through the API gateway and validates every
// response before returning it.
type Service struct {
	client *api.Client
	log    zerolog.Logger
}

// NewService creates a venue service.
func NewService(client *api.Client, log zerolog.Logger) *Service {
	return &Service{client: client, log: log}
}

// List returns one page of venues.
func (s *Service) List(ctx context.Context, p Params) ([]model.Venue, model.PaginationMeta, error) {
	return s.page(ctx, venuesPath, p.values())
}

// Search returns one page of venues matching q.
func (s *Service) Search(ctx context.Context, q string, p Params) ([]model.Venue, model.PaginationMeta, error) {
	vals := p.values()
	vals.Set("q", q)
	return s.page(ctx, venuesPath+"/search", vals)
}

// Get returns a single venue by id.
func (s *Service) Get(ctx context.Context, id string) (model.Venue, error) {
	if id == "" {
		return model.Venue{}, &schema.ValidationError{Path: "id", Expected: "non-empty string"}
	}

	raw, err := s.client.Get(ctx, venuesPath+"/"+url.PathEscape(id), "")
	if err != nil {
		return model.Venue{}, err
	}

	data, _, err := schema.Envelope(raw)
	if err != nil {
		return model.Venue{}, err
	}
	return schema.Venue(data)
}

func (s *Service) page(ctx context.Context, path string, vals url.Values) ([]model.Venue, model.PaginationMeta, error) {
	if enc := vals.Encode(); enc != "" {
		path += "?" + enc
	}

	raw, err := s.client.Get(ctx, path, "")
	if err != nil {
		return nil, model.PaginationMeta{}, err
	}

	data, meta, err := schema.Envelope(raw)
	if err != nil {
		return nil, model.PaginationMeta{}, err
	}

	list, err := schema.VenueList(data)
	if err != nil {
		return nil, model.PaginationMeta{}, err
	}
	pagination, err := schema.Pagination(meta)
	if err != nil {
		return nil, model.PaginationMeta{}, err
	}

	return list, pagination, nil
}
