package unsplash

import "strings"

// Photo mirrors the photo objects returned by /photos and /search/photos.
// Only URLs.Regular and User.Name are needed to render a card; the rest is
// kept for the detail line and downloads.
type Photo struct {
	ID             string    `json:"id"`
	Description    string    `json:"description"`
	AltDescription string    `json:"alt_description"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	Color          string    `json:"color"`
	Likes          int       `json:"likes"`
	URLs           PhotoURLs `json:"urls"`
	User           User      `json:"user"`
	Links          Links     `json:"links"`
}

// PhotoURLs lists the image variants the API serves for a photo.
type PhotoURLs struct {
	Raw     string `json:"raw"`
	Full    string `json:"full"`
	Regular string `json:"regular"`
	Small   string `json:"small"`
	Thumb   string `json:"thumb"`
}

// User is the uploader of a photo.
type User struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Links are the non-image links attached to a photo.
type Links struct {
	HTML     string `json:"html"`
	Download string `json:"download"`
}

// SearchResponse mirrors /search/photos.
type SearchResponse struct {
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	Results    []Photo `json:"results"`
}

// DisplayURL returns the image variant shown in the grid.
func (p Photo) DisplayURL() string {
	return p.URLs.Regular
}

// DownloadURL returns the best available full-size image URL.
func (p Photo) DownloadURL() string {
	if full := strings.TrimSpace(p.URLs.Full); full != "" {
		return full
	}
	return p.URLs.Regular
}

// Caption returns a short human description, preferring the uploader's own text.
func (p Photo) Caption() string {
	if d := strings.TrimSpace(p.Description); d != "" {
		return d
	}
	return strings.TrimSpace(p.AltDescription)
}
