package movies

// Movie is a candidate record as submitted by a client. The identifier is
// not part of the stored body; it lives only in the object key.
type Movie struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	Genre string `json:"genre"`
}

// ListedMovie pairs an approved movie with the identifier recovered from
// its object key, so listing clients do not have to parse keys themselves.
type ListedMovie struct {
	ID string `json:"movie_id"`
	Movie
}
