package models

// Genre is a named genre attached to a movie or show
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Company is a production company
type Company struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logo_path"`
	OriginCountry string `json:"origin_country"`
}

// Network is a broadcaster of a TV show
type Network struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logo_path"`
	OriginCountry string `json:"origin_country"`
}

// Creator is a person credited with creating a TV show
type Creator struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path"`
}

// Season summarises one season of a TV show
type Season struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	SeasonNumber int     `json:"season_number"`
	EpisodeCount int     `json:"episode_count"`
	AirDate      string  `json:"air_date"`
	PosterPath   string  `json:"poster_path"`
	VoteAverage  float64 `json:"vote_average"`
}

// MovieDetails is the full movie detail object
type MovieDetails struct {
	Movie
	Adult               bool      `json:"adult"`
	Budget              int64     `json:"budget"`
	Revenue             int64     `json:"revenue"`
	Genres              []Genre   `json:"genres"`
	IMDBID              string    `json:"imdb_id"`
	Popularity          float64   `json:"popularity"`
	ProductionCompanies []Company `json:"production_companies"`
	Runtime             int       `json:"runtime"`
	OriginalLanguage    string    `json:"original_language"`
	Tagline             string    `json:"tagline"`
	Status              string    `json:"status"`
	VoteCount           int       `json:"vote_count"`
}

// TvShowDetails is the full TV show detail object
type TvShowDetails struct {
	TvShow
	CreatedBy           []Creator `json:"created_by"`
	EpisodeRunTime      []int     `json:"episode_run_time"`
	Genres              []Genre   `json:"genres"`
	LastAirDate         string    `json:"last_air_date"`
	Networks            []Network `json:"networks"`
	ProductionCompanies []Company `json:"production_companies"`
	NumberOfEpisodes    int       `json:"number_of_episodes"`
	NumberOfSeasons     int       `json:"number_of_seasons"`
	Seasons             []Season  `json:"seasons"`
	OriginalLanguage    string    `json:"original_language"`
	Popularity          float64   `json:"popularity"`
	Status              string    `json:"status"`
	VoteCount           int       `json:"vote_count"`
}

// GenreNames returns the genre names in order
func GenreNames(genres []Genre) []string {
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = g.Name
	}
	return names
}
