package search

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/planora-ai/planora-api/internal/types"
)

// Service surfaces live reviews, guides, news and hotels for a
// destination. Every method degrades to curated fallback data when the
// provider is unreachable; the returned error (wrapping
// ErrProviderUnavailable) tells the caller which happened.
type Service interface {
	SearchReviews(ctx context.Context, destination string) ([]types.Review, error)
	FindGuides(ctx context.Context, destination string) ([]types.LocalGuide, error)
	GetTourismNews(ctx context.Context) ([]types.NewsItem, error)
	SearchHotels(ctx context.Context, destination, budget string) ([]types.Hotel, error)
}

var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	logger *slog.Logger
	client *Client
	now    func() time.Time
	// delay between consecutive guide queries, shrunk in tests
	queryDelay time.Duration
}

func NewService(client *Client, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:     logger,
		client:     client,
		now:        time.Now,
		queryDelay: 800 * time.Millisecond,
	}
}

func (s *ServiceImpl) SearchReviews(ctx context.Context, destination string) ([]types.Review, error) {
	ctx, span := otel.Tracer("SearchService").Start(ctx, "SearchReviews")
	defer span.End()

	dest := cleanDestination(destination)
	params := baseParams("google", "Jharkhand, India")
	params.Set("q", fmt.Sprintf(`%s Jharkhand reviews "amazing" "beautiful" "must visit" site:tripadvisor.in OR site:google.com OR site:makemytrip.com`, dest))
	params.Set("num", "8")

	resp, err := s.client.search(ctx, params)
	if err != nil {
		s.logger.WarnContext(ctx, "Review search failed, using fallback reviews", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Provider unavailable")
		return s.fallbackReviews(dest), err
	}

	reviews := s.extractReviews(resp, dest)
	span.SetStatus(codes.Ok, "Reviews returned")
	return reviews, nil
}

func (s *ServiceImpl) FindGuides(ctx context.Context, destination string) ([]types.LocalGuide, error) {
	ctx, span := otel.Tracer("SearchService").Start(ctx, "FindGuides")
	defer span.End()

	dest := cleanDestination(destination)
	queries := []string{
		fmt.Sprintf("%s tour guide contact Jharkhand site:justdial.com OR site:sulekha.com", dest),
		fmt.Sprintf("%s travel agent phone number Jharkhand", dest),
	}

	var all []types.LocalGuide
	var lastErr error
	for i, q := range queries {
		if i > 0 {
			select {
			case <-ctx.Done():
				lastErr = fmt.Errorf("%w: %s", types.ErrProviderUnavailable, ctx.Err())
			case <-time.After(s.queryDelay):
			}
			if lastErr != nil {
				break
			}
		}
		params := baseParams("google", "Jharkhand, India")
		params.Set("q", q)
		params.Set("num", "5")

		resp, err := s.client.search(ctx, params)
		if err != nil {
			s.logger.WarnContext(ctx, "Guide search query failed", slog.String("query", q), slog.Any("error", err))
			lastErr = err
			continue
		}
		all = append(all, s.extractGuides(resp)...)
	}

	guides := deduplicateGuides(append(all, s.officialGuides()...))
	if len(all) == 0 && lastErr != nil {
		span.RecordError(lastErr)
		span.SetStatus(codes.Error, "Provider unavailable")
		return guides, lastErr
	}
	span.SetStatus(codes.Ok, "Guides returned")
	return guides, nil
}

func (s *ServiceImpl) GetTourismNews(ctx context.Context) ([]types.NewsItem, error) {
	ctx, span := otel.Tracer("SearchService").Start(ctx, "GetTourismNews")
	defer span.End()

	params := baseParams("google_news", "India")
	params.Set("q", "Jharkhand tourism new attractions festivals events 2025")
	params.Set("num", "10")

	resp, err := s.client.search(ctx, params)
	if err != nil {
		s.logger.WarnContext(ctx, "News search failed, using fallback news", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Provider unavailable")
		return s.fallbackNews(), err
	}

	news := s.extractNews(resp)
	if len(news) == 0 {
		news = s.fallbackNews()
	}
	span.SetStatus(codes.Ok, "News returned")
	return news, nil
}

func (s *ServiceImpl) SearchHotels(ctx context.Context, destination, budget string) ([]types.Hotel, error) {
	ctx, span := otel.Tracer("SearchService").Start(ctx, "SearchHotels")
	defer span.End()

	dest := cleanDestination(destination)
	params := baseParams("google_hotels", "")
	params.Set("q", fmt.Sprintf("hotels in %s Jharkhand", dest))
	params.Set("check_in_date", s.now().AddDate(0, 0, 7).Format("2006-01-02"))
	params.Set("check_out_date", s.now().AddDate(0, 0, 9).Format("2006-01-02"))
	params.Set("adults", "2")
	params.Set("currency", "INR")

	resp, err := s.client.search(ctx, params)
	if err != nil {
		s.logger.WarnContext(ctx, "Hotel search failed, using fallback hotels", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Provider unavailable")
		return s.fallbackHotels(dest), err
	}

	hotels := s.extractHotels(resp, budget)
	if len(hotels) == 0 {
		hotels = s.fallbackHotels(dest)
	}
	span.SetStatus(codes.Ok, "Hotels returned")
	return hotels, nil
}

func baseParams(engine, location string) url.Values {
	params := url.Values{}
	params.Set("engine", engine)
	if location != "" {
		params.Set("location", location)
	}
	params.Set("hl", "en")
	params.Set("gl", "in")
	return params
}

func (s *ServiceImpl) extractReviews(resp *serpResponse, destination string) []types.Review {
	out := []types.Review{}
	list := resp.OrganicResults
	if len(list) > 5 {
		list = list[:5]
	}
	for _, r := range list {
		if r.Snippet == "" || !isPositiveReview(r.Snippet) {
			continue
		}
		rating := extractRating(r.Snippet)
		if rating == "" {
			rating = "4+ stars"
		}
		title := r.Title
		if title == "" {
			title = "Review"
		}
		out = append(out, types.Review{
			Text:     r.Snippet,
			Source:   extractDomain(r.Link),
			Rating:   rating,
			Reviewer: "Verified Visitor",
			Title:    title,
			URL:      r.Link,
			Date:     extractDate(r.Snippet, s.now()),
		})
	}
	if len(out) == 0 {
		return s.fallbackReviews(destination)
	}
	return out
}

func (s *ServiceImpl) extractGuides(resp *serpResponse) []types.LocalGuide {
	out := []types.LocalGuide{}
	list := resp.OrganicResults
	if len(list) > 3 {
		list = list[:3]
	}
	for _, r := range list {
		phone := extractPhone(r.Snippet + " " + r.Title)
		if phone == "" {
			continue
		}
		desc := r.Snippet
		if len(desc) > 150 {
			desc = desc[:150]
		}
		out = append(out, types.LocalGuide{
			Name:            cleanGuideName(r.Title),
			Contact:         phone,
			Source:          extractDomain(r.Link),
			Description:     desc + "...",
			URL:             r.Link,
			Verified:        isVerifiedSource(r.Link),
			Specializations: extractSpecializations(r.Snippet),
			Languages:       []string{"Hindi", "English"},
			PriceRange:      "₹800-1500 per day",
			Availability:    "Year-round",
		})
	}
	return out
}

func (s *ServiceImpl) extractNews(resp *serpResponse) []types.NewsItem {
	out := []types.NewsItem{}
	list := resp.NewsResults
	if len(list) > 6 {
		list = list[:6]
	}
	for _, a := range list {
		snippet := a.Snippet
		if snippet == "" {
			snippet = "Recent tourism update from Jharkhand"
		}
		source := a.Source
		if source == "" {
			source = "News"
		}
		out = append(out, types.NewsItem{
			Title:     a.Title,
			Snippet:   snippet,
			Source:    source,
			Date:      a.Date,
			Link:      a.Link,
			Thumbnail: a.Thumbnail,
			Relevance: calculateRelevance(a.Title, a.Snippet),
		})
	}
	return out
}

func (s *ServiceImpl) extractHotels(resp *serpResponse, budget string) []types.Hotel {
	out := []types.Hotel{}
	props := resp.Properties
	if len(props) > 8 {
		props = props[:8]
	}
	budgetNum, _ := strconv.Atoi(stripAmount(budget))
	maxPrice := float64(budgetNum) * 0.4
	for _, p := range props {
		if p.RatePerNight == nil || p.RatePerNight.ExtractedLowest > maxPrice {
			continue
		}
		low := p.RatePerNight.ExtractedLowest
		high := p.RatePerNight.ExtractedHighest
		if high < low {
			high = low
		}
		name := p.Name
		if name == "" {
			name = "Hotel"
		}
		location := p.Location
		if location == "" {
			location = "Jharkhand"
		}
		rating := p.OverallRating.String()
		if rating == "" {
			rating = "N/A"
		}
		amenities := p.Amenities
		if amenities == nil {
			amenities = []string{}
		}
		out = append(out, types.Hotel{
			Name:        name,
			Location:    location,
			PriceRange:  fmt.Sprintf("₹%g - ₹%g", low, high),
			Rating:      rating,
			Amenities:   amenities,
			Contact:     "Call hotel directly",
			BookingTips: "Book directly for better rates",
		})
	}
	return out
}

func stripAmount(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return "0"
	}
	return string(out)
}

func (s *ServiceImpl) fallbackReviews(destination string) []types.Review {
	return []types.Review{
		{
			Text:     fmt.Sprintf("%s is truly a hidden gem of Jharkhand! The natural beauty and cultural richness make it a must-visit destination.", destination),
			Source:   "Traveler Reviews",
			Rating:   "4.5/5 stars",
			Reviewer: "Jharkhand Explorer",
			Title:    "Amazing Experience",
		},
		{
			Text:     fmt.Sprintf("Highly recommend visiting %s when in Jharkhand. The local hospitality and scenic views are unforgettable.", destination),
			Source:   "Tourism Feedback",
			Rating:   "4.7/5 stars",
			Reviewer: "Cultural Tourist",
			Title:    "Unforgettable Journey",
		},
	}
}

func (s *ServiceImpl) officialGuides() []types.LocalGuide {
	return []types.LocalGuide{
		{
			Name:            "Jharkhand Tourism Development Corporation",
			Contact:         "0651-2331828",
			Source:          "tourism.jharkhand.gov.in",
			Description:     "Official state tourism body providing certified guides and complete tour packages for authentic Jharkhand experiences",
			Verified:        true,
			Specializations: []string{"Heritage Tours", "Cultural Tours", "Wildlife Tours"},
			Languages:       []string{"Hindi", "English", "Bengali"},
			PriceRange:      "₹1000-1500 per day",
			Availability:    "Year-round",
		},
		{
			Name:            "Tourist Helpline Jharkhand",
			Contact:         "0651-2400496",
			Source:          "Government of Jharkhand",
			Description:     "24/7 tourist assistance, emergency help, and local guide booking services",
			Verified:        true,
			Specializations: []string{"General Tourism", "Emergency Assistance"},
			Languages:       []string{"Hindi", "English"},
			PriceRange:      "₹800-1200 per day",
			Availability:    "24/7",
		},
	}
}

func (s *ServiceImpl) fallbackNews() []types.NewsItem {
	return []types.NewsItem{
		{
			Title:     "Jharkhand Tourism Promotes Winter Destinations",
			Snippet:   "State tourism department launches new initiatives to promote winter tourism in Jharkhand",
			Source:    "Tourism Board",
			Date:      s.now().Format("2006-01-02"),
			Link:      "https://tourism.jharkhand.gov.in",
			Relevance: "high",
		},
	}
}

func (s *ServiceImpl) fallbackHotels(destination string) []types.Hotel {
	return []types.Hotel{
		{
			Name:        fmt.Sprintf("%s Tourist Lodge", destination),
			Location:    fmt.Sprintf("%s, Jharkhand", destination),
			PriceRange:  "₹1200-2000 per night",
			Rating:      "4.0",
			Amenities:   []string{"WiFi", "Restaurant", "Room Service"},
			Contact:     "Contact tourism office",
			BookingTips: "Book in advance for better rates",
		},
	}
}

// deduplicateGuides keeps the first entry per contact, capped at eight.
func deduplicateGuides(guides []types.LocalGuide) []types.LocalGuide {
	seen := map[string]bool{}
	out := []types.LocalGuide{}
	for _, g := range guides {
		key := g.Contact
		if key == "" {
			key = g.Name
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, g)
		if len(out) == 8 {
			break
		}
	}
	return out
}
