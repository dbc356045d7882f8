package genius

// Hit is one search result: a song page that may carry the lyrics we want.
type Hit struct {
	Title  string
	Artist string
	URL    string
}

// searchResponse is the JSON envelope of the Genius /search endpoint.
type searchResponse struct {
	Response struct {
		Hits []struct {
			Result struct {
				Title         string `json:"title"`
				URL           string `json:"url"`
				PrimaryArtist struct {
					Name string `json:"name"`
				} `json:"primary_artist"`
			} `json:"result"`
		} `json:"hits"`
	} `json:"response"`
}
