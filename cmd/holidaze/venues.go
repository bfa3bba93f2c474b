package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holidaze/client-go/internal/model"
	"github.com/holidaze/client-go/internal/venues"
)

func newVenuesCmd() *cobra.Command {
	var (
		searchTerm string
		page       int
		limit      int
		sortKey    string
		sortOrder  string
	)

	cmd := &cobra.Command{
		Use:   "venues",
		Short: "List or search venues",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			query := model.DefaultQuery()
			query.SearchTerm = searchTerm
			query.Page = page
			query.Limit = limit
			query.SortKey = sortKey
			query.SortOrder = model.SortOrder(sortOrder)

			snapshots := make(chan venues.Snapshot, 4)
			ctrl := venues.NewController(cmd.Context(), a.venues, query,
				func(s venues.Snapshot) { snapshots <- s }, a.log)
			ctrl.Refresh()

			// The controller publishes a loading snapshot first and the
			// settled result second.
			var snap venues.Snapshot
			for snap = range snapshots {
				if !snap.Loading {
					break
				}
			}
			if snap.ErrMessage != "" {
				return errors.New(snap.ErrMessage)
			}

			if len(snap.Venues) == 0 {
				fmt.Println("No venues found.")
				return nil
			}
			for _, v := range snap.Venues {
				fmt.Println(venueLine(v))
			}
			if snap.Meta != nil {
				fmt.Println(paginationLine(*snap.Meta))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&searchTerm, "query", "q", "", "search term (name or description)")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 12, "venues per page")
	cmd.Flags().StringVar(&sortKey, "sort", model.SortCreated, "sort key (created, updated, price, rating, maxGuests, name)")
	cmd.Flags().StringVar(&sortOrder, "order", string(model.SortDesc), "sort order (asc or desc)")
	return cmd
}

func newVenueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "venue <id>",
		Short: "Show a single venue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			v, err := a.venues.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(venueDetail(v))
			return nil
		},
	}
}
