package clapboard

func providers(regions ...string) map[string]WatchProviderRegion {
	wp := make(map[string]WatchProviderRegion, len(regions))
	for _, r := range regions {
		wp[r] = WatchProviderRegion{Providers: []WatchProvider{}}
	}

	return wp
}

func syntheticMovies() []Movie {
	return []Movie{
		{
			ID: 1, Title: "A", Year: 2000, Director: "Dir One",
			Genres: []string{"Action", "Drama"}, Actors: []string{"Alice", "Bob"},
			VoteAverage: 7, WatchProviders: providers("US", "GB"),
		},
		{
			ID: 2, Title: "B", Year: 2010, Director: "Dir One",
			Genres: []string{"Drama", "Thriller"}, Actors: []string{"Bob", "Carol"},
			VoteAverage: 8, OscarWins: 1, WatchProviders: providers("US", "FR"),
		},
		{
			ID: 3, Title: "C", Year: 2020, Director: "Dir Two",
			Genres: []string{"Comedy"}, Actors: []string{"Dave"},
			VoteAverage: 6, WatchProviders: providers("JP"),
		},
	}
}
