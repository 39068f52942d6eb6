package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"educonnect/models"
	"educonnect/services"
	"educonnect/storage"
	"educonnect/utils"
)

type housingFlags struct {
	query      string
	location   string
	price      string
	roomType   string
	university string
	distance   string
	amenities  []string
	sortBy     string
	export     string
	summary    bool
}

func newHousingCmd(a *app) *cobra.Command {
	f := &housingFlags{}
	cmd := &cobra.Command{
		Use:   "housing",
		Short: "Search student housing listings",
		Long: housingHelp(),
		Example: `  educonnect housing --price "$500 - $800" --sort rating
  educonnect housing -q toronto --amenity WiFi --amenity Laundry --summary
  educonnect housing --export ./output/housing.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHousing(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.query, "query", "q", "", "Free-text search over title, address, university and room type")
	cmd.Flags().StringVar(&f.location, "location", "", "Location (accepted, does not narrow results)")
	cmd.Flags().StringVar(&f.price, "price", "", "Price bucket label")
	cmd.Flags().StringVar(&f.roomType, "room-type", "", "Room type label")
	cmd.Flags().StringVar(&f.university, "university", "", "Exact university name")
	cmd.Flags().StringVar(&f.distance, "distance", "", "Distance bucket label (accepted, does not narrow results)")
	cmd.Flags().StringArrayVar(&f.amenities, "amenity", nil, "Required amenity; repeat for several")
	cmd.Flags().StringVar(&f.sortBy, "sort", "price", "Sort key: price, distance or rating")
	cmd.Flags().StringVar(&f.export, "export", "", `Write the view as CSV to this path ("-" for stdout)`)
	cmd.Flags().BoolVar(&f.summary, "summary", false, "Print a summary of the view")
	return cmd
}

func housingHelp() string {
	var prices, rooms []string
	for _, pr := range models.PriceRanges() {
		prices = append(prices, strconv.Quote(pr.Label))
	}
	for _, rt := range models.RoomTypes() {
		rooms = append(rooms, strconv.Quote(rt.String()))
	}
	return "Filter and sort the housing catalog the way the listings grid does.\n\n" +
		"Price buckets: " + strings.Join(prices, ", ") + ".\n" +
		"Room types: " + strings.Join(rooms, ", ") + ".\n" +
		"Every --amenity given must be present on a listing."
}

func (f *housingFlags) criteria() (models.FilterCriteria, models.SortKey, error) {
	var c models.FilterCriteria
	var err error

	c.Location = strings.TrimSpace(f.location)
	c.University = strings.TrimSpace(f.university)
	c.Amenities = f.amenities
	if c.PriceRange, err = models.ParsePriceRange(f.price); err != nil {
		return c, 0, err
	}
	if c.RoomType, err = models.ParseRoomType(f.roomType); err != nil {
		return c, 0, err
	}
	if c.Distance, err = models.ParseDistanceRange(f.distance); err != nil {
		return c, 0, err
	}
	key, err := models.ParseSortKey(f.sortBy)
	if err != nil {
		return c, 0, err
	}
	return c, key, nil
}

func (a *app) runHousing(cmd *cobra.Command, f *housingFlags) error {
	criteria, sortKey, err := f.criteria()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	all, err := a.loadListings(ctx)
	if err != nil {
		return err
	}

	visible := services.ComputeVisibleListings(all, f.query, criteria, sortKey)
	a.logger.Debug("[housing] %d of %d listings visible (sort=%s)", len(visible), len(all), sortKey)

	w := out(cmd)
	if f.export == "-" {
		cw, err := storage.NewCSVStreamWriter(w)
		if err != nil {
			return err
		}
		return exportListings(cw, visible)
	}

	printListings(w, visible)

	if f.export != "" {
		cw, err := storage.NewCSVWriter(f.export)
		if err == nil {
			err = exportListings(cw, visible)
		}
		if err != nil {
			a.logger.Error("[housing] CSV export failed: %v", err)
			return err
		}
		a.logger.Info("[housing] Exported %d listings to %s", len(visible), f.export)
	}

	if f.summary {
		insights := services.NewInsightService(a.logger)
		insights.Print(w, insights.Summarize(visible))
	}
	return nil
}

// loadListings reads the raw catalog from the configured source and cleans it.
func (a *app) loadListings(ctx context.Context) ([]*models.Listing, error) {
	var src storage.ListingSource
	switch a.cfg.ListingSource {
	case "fixtures", "":
		src = storage.FixtureSource{}
	case "postgres":
		pc, err := storage.NewPostgresCatalog(ctx, a.cfg.DSN(), a.retry())
		if err != nil {
			a.logger.Error("[housing] PostgreSQL catalog unavailable: %v", err)
			return nil, err
		}
		defer pc.Close()
		src = pc
	default:
		return nil, fmt.Errorf("unknown LISTING_SOURCE %q (want fixtures or postgres)", a.cfg.ListingSource)
	}

	raw, err := src.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load listings: %w", err)
	}
	return services.NewCleaner(a.logger).Clean(raw), nil
}

func exportListings(w storage.ListingWriter, ls []*models.Listing) error {
	if err := w.Write(ls); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func printListings(w io.Writer, ls []*models.Listing) {
	if len(ls) == 0 {
		fmt.Fprintln(w, "No listings match your search.")
		return
	}
	fmt.Fprintf(w, "%d listing(s)\n\n", len(ls))
	for _, l := range ls {
		status := "available"
		if !l.Available {
			status = "taken"
		}
		fmt.Fprintf(w, "#%-3d %-40s $%-5d %-13s %4.1f★  %s\n",
			l.ID, utils.Truncate(l.Title, 40), l.Price, l.RoomType, l.Rating, status)
		fmt.Fprintf(w, "     %s · %s from %s\n", l.Address, l.Distance, l.University)
		if len(l.Amenities) > 0 {
			fmt.Fprintf(w, "     %s\n", strings.Join(l.Amenities, ", "))
		}
	}
}
