package search

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

var positiveKeywords = []string{
	"amazing", "beautiful", "excellent", "wonderful", "great", "fantastic",
	"must visit", "highly recommend", "loved", "perfect", "stunning",
	"incredible", "awesome", "breathtaking", "memorable", "spectacular",
}

var ratingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+\.?\d*)\s*[/\-]\s*5`),
	regexp.MustCompile(`(?i)(\d+\.?\d*)\s*star`),
	regexp.MustCompile(`(?i)rated\s+(\d+\.?\d*)`),
}

var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\+91[\s-]?)?[6-9]\d{9}`),
	regexp.MustCompile(`\d{5}[\s-]\d{5}`),
	regexp.MustCompile(`\d{3}[\s-]\d{3}[\s-]\d{4}`),
	regexp.MustCompile(`\d{4}[\s-]\d{3}[\s-]\d{3}`),
}

var datePattern = regexp.MustCompile(`(?i)(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})|([A-Za-z]{3,9}\s+\d{1,2},?\s+\d{2,4})`)

var guideNameNoise = regexp.MustCompile(`[-|•].*`)

var verifiedDomains = []string{
	"justdial.com", "sulekha.com", "tourism.jharkhand.gov.in",
	"india.com", "makemytrip.com", "tripadvisor.in", "goibibo.com",
}

func isPositiveReview(text string) bool {
	t := strings.ToLower(text)
	for _, k := range positiveKeywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}

func extractRating(text string) string {
	for _, re := range ratingPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1] + "/5"
		}
	}
	return ""
}

func extractPhone(text string) string {
	for _, re := range phonePatterns {
		if m := re.FindString(text); m != "" {
			cleaned := strings.NewReplacer(" ", "", "-", "").Replace(m)
			if len(cleaned) >= 10 && len(cleaned) <= 13 {
				return cleaned
			}
		}
	}
	return ""
}

func extractDomain(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Hostname() == "" {
		return "Web Source"
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

func extractDate(text string, now time.Time) string {
	if m := datePattern.FindString(text); m != "" {
		return m
	}
	return now.Format("2/1/2006")
}

func extractSpecializations(text string) []string {
	t := strings.ToLower(text)
	out := []string{}
	if strings.Contains(t, "heritage") {
		out = append(out, "Heritage Tours")
	}
	if strings.Contains(t, "wildlife") {
		out = append(out, "Wildlife Tours")
	}
	if strings.Contains(t, "adventure") {
		out = append(out, "Adventure Tours")
	}
	if strings.Contains(t, "culture") {
		out = append(out, "Cultural Tours")
	}
	if strings.Contains(t, "temple") {
		out = append(out, "Religious Tours")
	}
	if len(out) == 0 {
		return []string{"General Tourism"}
	}
	return out
}

func calculateRelevance(title, snippet string) string {
	content := strings.ToLower(title + " " + snippet)
	score := 0
	for _, k := range []string{"jharkhand", "tourism", "new", "festival", "attraction"} {
		if strings.Contains(content, k) {
			score++
		}
	}
	switch {
	case score >= 3:
		return "high"
	case score >= 2:
		return "medium"
	default:
		return "low"
	}
}

func cleanGuideName(title string) string {
	name := guideNameNoise.ReplaceAllString(title, "")
	name = strings.Join(strings.Fields(name), " ")
	if len(name) > 60 {
		name = name[:60]
	}
	if name == "" {
		return "Local Guide"
	}
	return name
}

func isVerifiedSource(link string) bool {
	for _, d := range verifiedDomains {
		if strings.Contains(link, d) {
			return true
		}
	}
	return false
}

func cleanDestination(dest string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(dest)), " ")
}
