package model

import (
	"net/url"
	"strings"
)

// MatchType describes how a company record was resolved from user input.
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchPartial MatchType = "partial"
	MatchNone    MatchType = "none"
)

// CompanyRecord is one row of verified company data, resolved for a single run.
// Records are built fresh per lookup and never mutated afterward.
type CompanyRecord struct {
	Name          string    `json:"name"`
	Website       string    `json:"website"`
	MonthlyVisits int64     `json:"monthly_visits"`
	AppDownloads  int64     `json:"app_downloads"`
	Match         MatchType `json:"match_type"`
}

// Verified reports whether the numeric fields come from the dataset rather
// than being synthesized for an unmatched name.
func (c CompanyRecord) Verified() bool {
	return c.Match != MatchNone
}

// Domain returns the website's host with any leading "www." prefix stripped.
// An absent website yields "Unknown"; a non-empty but unparseable one yields
// the raw value.
func (c CompanyRecord) Domain() string {
	if c.Website == "" {
		return "Unknown"
	}
	u, err := url.Parse(c.Website)
	if err != nil || u.Host == "" {
		return c.Website
	}
	return strings.TrimPrefix(u.Host, "www.")
}
