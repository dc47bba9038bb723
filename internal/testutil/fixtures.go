package testutil

// Canned TMDB payloads shared by client, service and gRPC tests.
const (
	TopRatedMoviesPage1 = `{"page":1,"total_results":2,"total_pages":1,"results":[` +
		`{"id":278,"title":"The Shawshank Redemption","poster_path":"/q6y0Go1tsGEsmtFryDOJo3dEmqu.jpg","overview":"Imprisoned in the 1940s...","vote_average":8.7,"release_date":"1994-09-23"},` +
		`{"id":238,"title":"The Godfather","poster_path":"/3bhkrj58Vtu7enYsRolD1fZdja1.jpg","overview":"Spanning the years 1945 to 1955...","vote_average":8.7,"release_date":"1972-03-14"}]}`

	TopRatedTvShowsPage2 = `{"page":2,"total_results":41,"total_pages":3,"results":[` +
		`{"id":1396,"name":"Breaking Bad","poster_path":"/ztkUQFLlC19CCMYHW9o1zWhJRNq.jpg","overview":"Walter White...","vote_average":8.9,"first_air_date":"2008-01-20"}]}`

	MovieDetails550 = `{"id":550,"title":"Fight Club","adult":false,"budget":63000000,"revenue":100853753,` +
		`"genres":[{"id":18,"name":"Drama"}],"imdb_id":"tt0137523","popularity":61.4,` +
		`"production_companies":[{"id":508,"name":"Regency Enterprises","origin_country":"US"}],` +
		`"release_date":"1999-10-15","runtime":139,"vote_average":8.4,"original_language":"en","poster_path":"/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"}`

	TvShowDetails1396 = `{"id":1396,"name":"Breaking Bad","created_by":[{"id":66633,"name":"Vince Gilligan"}],` +
		`"episode_run_time":[45,47],"genres":[{"id":18,"name":"Drama"}],"first_air_date":"2008-01-20",` +
		`"networks":[{"id":174,"name":"AMC","origin_country":"US"}],"number_of_episodes":62,"number_of_seasons":5,` +
		`"seasons":[{"id":3572,"name":"Season 1","season_number":1,"episode_count":7}],"vote_average":8.9,"original_language":"en"}`

	RatedMoviesGuest42 = `{"page":1,"total_results":2,"total_pages":1,"results":[{"id":1,"rating":7},{"id":2,"rating":9}]}`

	RatedTvShowsEmpty = `{"page":1,"total_results":0,"total_pages":0,"results":[]}`

	RatingCreated = `{"success":true,"status_code":1,"status_message":"Success."}`

	GuestSessionCreated = `{"success":true,"guest_session_id":"1ce82ec1223641636ad4a60b07de3581","expires_at":"2026-10-18 12:00:00 UTC"}`

	NotFoundBody = `{"status_message":"not found"}`
)
