package main

import (
	"fmt"
	"strings"

	"github.com/holidaze/client-go/internal/model"
)

func venueLine(v model.Venue) string {
	return fmt.Sprintf("%-24s  %-30s  %8.0f kr  %2d guests  %.1f★",
		v.ID, truncate(v.Name, 30), v.Price, v.MaxGuests, v.Rating)
}

// paginationLine renders the navigation state. Pages past the bounds
// are shown as "-" so there is nothing to navigate to.
func paginationLine(m model.PaginationMeta) string {
	prev, next := "-", "-"
	if m.PreviousPage != nil {
		prev = fmt.Sprintf("%d", *m.PreviousPage)
	}
	if m.NextPage != nil {
		next = fmt.Sprintf("%d", *m.NextPage)
	}
	return fmt.Sprintf("Page %d/%d (%d venues total)  prev: %s  next: %s",
		m.CurrentPage, m.PageCount, m.TotalCount, prev, next)
}

func venueDetail(v model.Venue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", v.Name)
	fmt.Fprintf(&b, "ID: %s\n", v.ID)
	if v.Description != "" {
		fmt.Fprintf(&b, "%s\n", v.Description)
	}
	fmt.Fprintf(&b, "Price: %.0f kr/night  Max guests: %d  Rating: %.1f\n",
		v.Price, v.MaxGuests, v.Rating)
	if v.Meta != nil {
		var amenities []string
		if v.Meta.Wifi {
			amenities = append(amenities, "wifi")
		}
		if v.Meta.Parking {
			amenities = append(amenities, "parking")
		}
		if v.Meta.Breakfast {
			amenities = append(amenities, "breakfast")
		}
		if v.Meta.Pets {
			amenities = append(amenities, "pets")
		}
		if len(amenities) > 0 {
			fmt.Fprintf(&b, "Amenities: %s\n", strings.Join(amenities, ", "))
		}
	}
	if v.Location != nil && v.Location.City != "" {
		loc := v.Location.City
		if v.Location.Country != "" {
			loc += ", " + v.Location.Country
		}
		fmt.Fprintf(&b, "Location: %s\n", loc)
	}
	for _, m := range v.Media {
		fmt.Fprintf(&b, "Image: %s\n", m.URL)
	}
	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
