package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Belphemur/ReelRate/internal/client"
	"github.com/Belphemur/ReelRate/internal/models"
	"github.com/Belphemur/ReelRate/internal/session"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printMovies(w io.Writer, page *models.Page[models.Movie]) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tSCORE\tRELEASED")
	for _, m := range page.Results {
		fmt.Fprintf(tw, "%d\t%s\t%.1f\t%s\n", m.ID, m.Title, m.VoteAverage, m.ReleaseDate)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return printPageFooter(w, page.Page, page.TotalPages, page.TotalResults)
}

func printTvShows(w io.Writer, page *models.Page[models.TvShow]) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tSCORE\tFIRST AIRED")
	for _, s := range page.Results {
		fmt.Fprintf(tw, "%d\t%s\t%.1f\t%s\n", s.ID, s.Name, s.VoteAverage, s.FirstAirDate)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return printPageFooter(w, page.Page, page.TotalPages, page.TotalResults)
}

func printRatedMovies(w io.Writer, page *models.Page[models.RatedMovie]) error {
	if len(page.Results) == 0 {
		_, err := fmt.Fprintln(w, "No rated movies yet")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tYOUR RATING")
	for _, m := range page.Results {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", m.ID, m.Title, formatRating(m.Rating))
	}
	return tw.Flush()
}

func printRatedTvShows(w io.Writer, page *models.Page[models.RatedTvShow]) error {
	if len(page.Results) == 0 {
		_, err := fmt.Fprintln(w, "No rated TV shows yet")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tYOUR RATING")
	for _, s := range page.Results {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.ID, s.Name, formatRating(s.Rating))
	}
	return tw.Flush()
}

func printMovieDetails(w io.Writer, d *models.MovieDetails) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Title:\t%s\n", d.Title)
	if d.Tagline != "" {
		fmt.Fprintf(tw, "Tagline:\t%s\n", d.Tagline)
	}
	fmt.Fprintf(tw, "Released:\t%s\n", d.ReleaseDate)
	fmt.Fprintf(tw, "Runtime:\t%d min\n", d.Runtime)
	fmt.Fprintf(tw, "Genres:\t%s\n", strings.Join(models.GenreNames(d.Genres), ", "))
	fmt.Fprintf(tw, "Score:\t%.1f (%d votes)\n", d.VoteAverage, d.VoteCount)
	fmt.Fprintf(tw, "Budget:\t$%d\n", d.Budget)
	fmt.Fprintf(tw, "Revenue:\t$%d\n", d.Revenue)
	fmt.Fprintf(tw, "Companies:\t%s\n", companyNames(d.ProductionCompanies))
	if poster := client.PosterURL(d.PosterPath, ""); poster != "" {
		fmt.Fprintf(tw, "Poster:\t%s\n", poster)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return printOverview(w, d.Overview)
}

func printTvShowDetails(w io.Writer, d *models.TvShowDetails) error {
	creators := make([]string, len(d.CreatedBy))
	for i, c := range d.CreatedBy {
		creators[i] = c.Name
	}
	networks := make([]string, len(d.Networks))
	for i, n := range d.Networks {
		networks[i] = n.Name
	}

	tw := newTable(w)
	fmt.Fprintf(tw, "Name:\t%s\n", d.Name)
	fmt.Fprintf(tw, "First aired:\t%s\n", d.FirstAirDate)
	if d.LastAirDate != "" {
		fmt.Fprintf(tw, "Last aired:\t%s\n", d.LastAirDate)
	}
	fmt.Fprintf(tw, "Seasons:\t%d (%d episodes)\n", d.NumberOfSeasons, d.NumberOfEpisodes)
	fmt.Fprintf(tw, "Genres:\t%s\n", strings.Join(models.GenreNames(d.Genres), ", "))
	fmt.Fprintf(tw, "Created by:\t%s\n", strings.Join(creators, ", "))
	fmt.Fprintf(tw, "Networks:\t%s\n", strings.Join(networks, ", "))
	fmt.Fprintf(tw, "Score:\t%.1f (%d votes)\n", d.VoteAverage, d.VoteCount)
	if poster := client.PosterURL(d.PosterPath, ""); poster != "" {
		fmt.Fprintf(tw, "Poster:\t%s\n", poster)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return printOverview(w, d.Overview)
}

func printSession(w io.Writer, current session.Session, ok bool) {
	if !ok {
		fmt.Fprintln(w, "No guest session stored")
		return
	}
	fmt.Fprintf(w, "Guest session %s (generation %s)\n", session.Mask(current.ID), current.Generation)
}

func printPageFooter(w io.Writer, page, totalPages, totalResults int) error {
	_, err := fmt.Fprintf(w, "\nPage %d of %d (%d results)\n", page, totalPages, totalResults)
	return err
}

func printOverview(w io.Writer, overview string) error {
	if overview == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, "\n%s\n", overview)
	return err
}

func companyNames(companies []models.Company) string {
	names := make([]string, len(companies))
	for i, c := range companies {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
