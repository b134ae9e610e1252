// MovieRec - Content and Collaborative Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package recommend

// ProfileEntry is one configured rating of the active user, by title.
type ProfileEntry struct {
	Title  string  `koanf:"title" json:"title"`
	Rating float64 `koanf:"rating" json:"rating"`
}

// Profile is the resolved rating set of the active user.
type Profile struct {
	UserID     int
	Ratings    []Rating
	Unresolved []string
}

// ResolveProfile turns configured (title, rating) pairs into ordinary
// ratings for userID. Titles resolve exactly against the catalog; titles
// with no match are reported in Unresolved and skipped.
func ResolveProfile(catalog *Catalog, userID int, entries []ProfileEntry) Profile {
	p := Profile{UserID: userID, Ratings: make([]Rating, 0, len(entries))}
	for _, e := range entries {
		i, ok := catalog.IndexOf(e.Title)
		if !ok {
			p.Unresolved = append(p.Unresolved, e.Title)
			continue
		}
		p.Ratings = append(p.Ratings, Rating{
			UserID:  userID,
			MovieID: catalog.Movies[i].ID,
			Value:   e.Rating,
		})
	}
	return p
}

// WithProfile places the profile ratings ahead of the dataset ratings,
// so a dataset rating for the same pair wins when grouped.
func WithProfile(p Profile, ratings []Rating) []Rating {
	out := make([]Rating, 0, len(p.Ratings)+len(ratings))
	out = append(out, p.Ratings...)
	return append(out, ratings...)
}
