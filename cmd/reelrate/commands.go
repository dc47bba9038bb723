package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Belphemur/ReelRate/internal/config"
	"github.com/Belphemur/ReelRate/internal/models"
	"github.com/Belphemur/ReelRate/internal/session"
)

// defaultRating is submitted when `rate` is given no value.
const defaultRating = 10

// newRootCommand builds the command tree. The returned func releases the
// dependencies opened by the pre-run hook and must be called once Execute returns,
// whether or not the command failed.
func newRootCommand(cfg *config.Config) (*cobra.Command, func() error) {
	var (
		a        *app
		language string
	)

	root := &cobra.Command{
		Use:           "reelrate",
		Short:         "Browse top rated movies and TV shows and rate them with a TMDB guest session",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if language != "" {
				cfg.TMDB.Language = config.NormalizeLanguage(language)
			}
			var err error
			a, err = newApp(cfg)
			return err
		},
	}
	root.PersistentFlags().StringVar(&language, "language", "", "response language, e.g. en-US or fr")

	deps := func() *app { return a }
	root.AddCommand(
		newLoginCommand(deps),
		newLogoutCommand(deps),
		newSessionCommand(deps),
		newListCommand(deps, models.MediaTypeMovie),
		newListCommand(deps, models.MediaTypeTvShow),
		newDetailsCommand(deps, models.MediaTypeMovie),
		newDetailsCommand(deps, models.MediaTypeTvShow),
		newRatedCommand(deps),
		newRateCommand(deps),
		newServeCommand(cfg, deps),
	)

	closeApp := func() error {
		if a == nil {
			return nil
		}
		err := a.Close()
		a = nil
		return err
	}
	return root, closeApp
}

func newLoginCommand(deps func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Create a guest session and store it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stored, err := deps().service.Login(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in with guest session %s\n", session.Mask(stored.ID))
			return nil
		},
	}
}

func newLogoutCommand(deps func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored guest session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps().service.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newSessionCommand(deps func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show the stored guest session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current, ok, err := deps().service.CurrentSession(cmd.Context())
			if err != nil {
				return err
			}
			printSession(cmd.OutOrStdout(), current, ok)
			return nil
		},
	}
}

func newListCommand(deps func() *app, mediaType models.MediaType) *cobra.Command {
	var page int
	use, short := "movies", "List top rated movies"
	if mediaType == models.MediaTypeTvShow {
		use, short = "shows", "List top rated TV shows"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := deps().service
			if mediaType == models.MediaTypeMovie {
				result, err := svc.TopRatedMovies(cmd.Context(), page)
				if err != nil {
					return err
				}
				return printMovies(cmd.OutOrStdout(), result)
			}
			result, err := svc.TopRatedTvShows(cmd.Context(), page)
			if err != nil {
				return err
			}
			return printTvShows(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to fetch")
	return cmd
}

func newDetailsCommand(deps func() *app, mediaType models.MediaType) *cobra.Command {
	use, short := "movie <id>", "Show details of a movie"
	if mediaType == models.MediaTypeTvShow {
		use, short = "show <id>", "Show details of a TV show"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			svc := deps().service
			if mediaType == models.MediaTypeMovie {
				details, err := svc.MovieDetails(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printMovieDetails(cmd.OutOrStdout(), details)
			}
			details, err := svc.TvShowDetails(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printTvShowDetails(cmd.OutOrStdout(), details)
		},
	}
}

func newRatedCommand(deps func() *app) *cobra.Command {
	return &cobra.Command{
		Use:       "rated [movies|shows]",
		Short:     "List what the guest session rated",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"movies", "shows"},
		RunE: func(cmd *cobra.Command, args []string) error {
			mediaType := models.MediaTypeMovie
			if len(args) == 1 {
				if mediaType = models.ParseMediaType(args[0]); mediaType == models.MediaTypeUnknown {
					return fmt.Errorf("unknown media type %q, expected movies or shows", args[0])
				}
			}

			svc := deps().service
			if mediaType == models.MediaTypeMovie {
				result, err := svc.RatedMovies(cmd.Context())
				if err != nil {
					return err
				}
				return printRatedMovies(cmd.OutOrStdout(), result)
			}
			result, err := svc.RatedTvShows(cmd.Context())
			if err != nil {
				return err
			}
			return printRatedTvShows(cmd.OutOrStdout(), result)
		},
	}
}

func newRateCommand(deps func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <movie|show> <id> [rating]",
		Short: "Rate a movie or TV show (rating defaults to 10)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			mediaType, id, rating, err := parseRateArgs(args)
			if err != nil {
				return err
			}

			svc := deps().service
			var status *models.StatusResponse
			if mediaType == models.MediaTypeMovie {
				status, err = svc.RateMovie(cmd.Context(), id, rating)
			} else {
				status, err = svc.RateTvShow(cmd.Context(), id, rating)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rated %s %d with %s: %s\n",
				mediaType, id, strconv.FormatFloat(rating, 'f', -1, 64), status.StatusMessage)
			return nil
		},
	}
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be an integer", raw)
	}
	return id, nil
}

// parseRateArgs reads "<movie|show> <id> [rating]". The rating is not range checked.
func parseRateArgs(args []string) (models.MediaType, int, float64, error) {
	mediaType := models.ParseMediaType(args[0])
	if mediaType == models.MediaTypeUnknown {
		return mediaType, 0, 0, fmt.Errorf("unknown media type %q, expected movie or show", args[0])
	}
	id, err := parseID(args[1])
	if err != nil {
		return mediaType, 0, 0, err
	}

	rating := float64(defaultRating)
	if len(args) == 3 {
		rating, err = strconv.ParseFloat(args[2], 64)
		if err != nil {
			return mediaType, 0, 0, fmt.Errorf("invalid rating %q: must be a number", args[2])
		}
	}
	return mediaType, id, rating, nil
}
