package screening

import (
	"regexp"
	"strings"
)

// Links holds the profile URLs found in a resume. Empty when not found.
type Links struct {
	Portfolio string
	Github    string
	Linkedin  string
}

var urlPattern = regexp.MustCompile(`(?i)(?:https?://|www\.)[^\s<>"'()\[\],|]+|\b(?:github\.com|linkedin\.com|behance\.net|dribbble\.com|artstation\.com)/[^\s<>"'()\[\],|]+`)

// portfolioDomains are hosts that always count as a portfolio.
var portfolioDomains = []string{
	"behance.net",
	"dribbble.com",
	"artstation.com",
	"github.io",
	"wixsite.com",
	"squarespace.com",
	"carrd.co",
	"notion.site",
	"vercel.app",
	"netlify.app",
	"about.me",
}

// portfolioSuffixes are generic top-level domains accepted as a portfolio.
var portfolioSuffixes = []string{".com", ".design"}

// ExtractLinks scans text line by line and fills each slot with the first
// matching URL. A filled slot is never overwritten.
func ExtractLinks(text string) Links {
	var links Links
	for _, line := range strings.Split(text, "\n") {
		for _, match := range urlPattern.FindAllString(line, -1) {
			url := strings.TrimRight(match, ".;:!?")
			host := hostOf(url)

			switch {
			case strings.Contains(host, "github.com"):
				if links.Github == "" {
					links.Github = url
				}
			case strings.Contains(host, "linkedin.com"):
				if links.Linkedin == "" {
					links.Linkedin = url
				}
			case isPortfolioHost(host):
				if links.Portfolio == "" {
					links.Portfolio = url
				}
			}
		}
	}
	return links
}

func hostOf(url string) string {
	host := strings.ToLower(url)
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	if i := strings.LastIndex(host, "@"); i >= 0 {
		host = host[i+1:]
	}
	if i := strings.Index(host, ":"); i >= 0 {
		host = host[:i]
	}
	return host
}

func isPortfolioHost(host string) bool {
	for _, domain := range portfolioDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	for _, suffix := range portfolioSuffixes {
		if strings.HasSuffix(host, suffix) {
			return true
		}
	}
	return false
}
