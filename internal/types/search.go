package types

// Review is a visitor review surfaced from live search results.
type Review struct {
	Text     string `json:"text"`
	Source   string `json:"source"`
	Rating   string `json:"rating"`
	Reviewer string `json:"reviewer"`
	Title    string `json:"title"`
	URL      string `json:"url,omitempty"`
	Date     string `json:"date,omitempty"`
}

// LocalGuide is a guide or tour operator contact for a destination.
type LocalGuide struct {
	Name            string   `json:"name"`
	Contact         string   `json:"contact"`
	Source          string   `json:"source"`
	Description     string   `json:"description"`
	URL             string   `json:"url,omitempty"`
	Verified        bool     `json:"verified"`
	Specializations []string `json:"specializations"`
	Languages       []string `json:"languages"`
	PriceRange      string   `json:"priceRange"`
	Availability    string   `json:"availability"`
}

// NewsItem is a recent travel-relevant news entry for the region.
type NewsItem struct {
	Title     string `json:"title"`
	Snippet   string `json:"snippet"`
	Source    string `json:"source"`
	Date      string `json:"date"`
	Link      string `json:"link"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Relevance string `json:"relevance"`
}

// Hotel is an accommodation option surfaced from live search.
type Hotel struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	PriceRange  string   `json:"priceRange"`
	Rating      string   `json:"rating"`
	Amenities   []string `json:"amenities"`
	Contact     string   `json:"contact"`
	BookingTips string   `json:"bookingTips"`
}
