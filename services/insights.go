package services

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"educonnect/models"
	"educonnect/utils"
)

const topRatedCount = 5

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Summarize reports on a housing view, typically the output of
// ComputeVisibleListings.
func (s *InsightService) Summarize(listings []*models.Listing) *models.HousingSummary {
	report := &models.HousingSummary{
		ListingsByUniversity: make(map[string]int),
	}

	if len(listings) == 0 {
		return report
	}

	report.TotalListings = len(listings)

	var priced []*models.Listing
	var rated []*models.Listing

	for _, l := range listings {
		if l.Available {
			report.AvailableListings++
		}
		if l.Price > 0 {
			priced = append(priced, l)
		}
		if l.Rating > 0 {
			rated = append(rated, l)
		}
		if l.University != "" {
			report.ListingsByUniversity[l.University]++
		}
	}

	if len(priced) > 0 {
		report.MinPrice = priced[0].Price
		report.MaxPrice = priced[0].Price
		report.MostExpensive = priced[0]
		total := 0
		for _, l := range priced {
			total += l.Price
			if l.Price < report.MinPrice {
				report.MinPrice = l.Price
			}
			if l.Price > report.MaxPrice {
				report.MaxPrice = l.Price
				report.MostExpensive = l
			}
		}
		report.AveragePrice = round2(float64(total) / float64(len(priced)))
	}

	// Top 5 by rating; the input order breaks ties.
	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].Rating > rated[j].Rating
	})
	if len(rated) > topRatedCount {
		report.TopRated = rated[:topRatedCount]
	} else {
		report.TopRated = rated
	}

	s.logger.Debug("[insights] Summarised %d listings (%d available)",
		report.TotalListings, report.AvailableListings)
	return report
}

func (s *InsightService) Print(out io.Writer, r *models.HousingSummary) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(out, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(out, "\033[1;35m  🏠 STUDENT HOUSING SUMMARY\033[0m\n")
	fmt.Fprintf(out, "\033[1;35m%s\033[0m\n\n", sep)

	fmt.Fprintf(out, "\033[1;33m  Overview\033[0m\n")
	fmt.Fprintf(out, "  %s\n", thin)
	fmt.Fprintf(out, "  Listings shown     : \033[1m%d\033[0m\n", r.TotalListings)
	fmt.Fprintf(out, "  Available now      : \033[1m%d\033[0m\n", r.AvailableListings)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "\033[1;33m  Rent (per month)\033[0m\n")
	fmt.Fprintf(out, "  %s\n", thin)
	if r.AveragePrice > 0 {
		fmt.Fprintf(out, "  Average rent : \033[1;32m$%.2f\033[0m\n", r.AveragePrice)
		fmt.Fprintf(out, "  Lowest rent  : \033[1;32m$%d\033[0m\n", r.MinPrice)
		fmt.Fprintf(out, "  Highest rent : \033[1;32m$%d\033[0m\n", r.MaxPrice)
	} else {
		fmt.Fprintf(out, "  No price data available\n")
	}
	fmt.Fprintln(out)

	if r.MostExpensive != nil {
		fmt.Fprintf(out, "\033[1;33m  Most Expensive Listing\033[0m\n")
		fmt.Fprintf(out, "  %s\n", thin)
		fmt.Fprintf(out, "  %s\n", utils.Truncate(r.MostExpensive.Title, 50))
		fmt.Fprintf(out, "  Near  : %s\n", r.MostExpensive.University)
		fmt.Fprintf(out, "  Rent  : \033[1;31m$%d/month\033[0m\n", r.MostExpensive.Price)
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "\033[1;33m  Top 5 Highest Rated\033[0m\n")
	fmt.Fprintf(out, "  %s\n", thin)
	if len(r.TopRated) == 0 {
		fmt.Fprintf(out, "  No rated listings found\n")
	} else {
		for i, l := range r.TopRated {
			fmt.Fprintf(out, "  \033[1m%d.\033[0m %-40s \033[1;32m%.1f ★\033[0m\n",
				i+1, utils.Truncate(l.Title, 38), l.Rating)
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "\033[1;33m  Listings by University\033[0m\n")
	fmt.Fprintf(out, "  %s\n", thin)
	if len(r.ListingsByUniversity) == 0 {
		fmt.Fprintf(out, "  No university data\n")
	} else {
		type uniCount struct {
			name  string
			count int
		}
		var unis []uniCount
		for name, cnt := range r.ListingsByUniversity {
			unis = append(unis, uniCount{name, cnt})
		}
		sort.Slice(unis, func(i, j int) bool {
			if unis[i].count != unis[j].count {
				return unis[i].count > unis[j].count
			}
			return unis[i].name < unis[j].name
		})
		for _, u := range unis {
			bar := strings.Repeat("█", u.count)
			fmt.Fprintf(out, "  %-30s %s (%d)\n", utils.Truncate(u.name, 28), bar, u.count)
		}
	}

	fmt.Fprintf(out, "\n\033[1;35m%s\033[0m\n\n", sep)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
