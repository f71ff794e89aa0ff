package config

import (
	"errors"
	"net/url"
)

// Scrape configures the catalog job.
type Scrape struct {
	// BaseURL resolves relative product links.
	BaseURL string `json:"base_url"`
	// Categories maps a category name to a listing URL prefix; the page number is appended.
	Categories  map[string]string `json:"categories"`
	Pages       int               `json:"pages"`
	Output      string            `json:"output"`
	Concurrency int               `json:"concurrency"`
	Timeout     Duration          `json:"timeout"`
	UserAgent   string            `json:"user_agent,omitempty"`
	TLS         ClientTLS         `json:"tls"`
}

// Validate reports configuration that would make the job do nothing or fail on the first request.
func (s Scrape) Validate() error {
	if _, err := url.Parse(s.BaseURL); err != nil || s.BaseURL == "" {
		return errors.Join(errors.New("scrape base_url is not a valid url"), err)
	}
	if len(s.Categories) == 0 {
		return errors.New("scrape categories are empty")
	}
	if s.Pages <= 0 {
		return errors.New("scrape pages must be positive")
	}
	if s.Output == "" {
		return errors.New("scrape output is empty")
	}
	return nil
}

func (s Scrape) GetConcurrency() int {
	if s.Concurrency <= 0 {
		return 1
	}
	return s.Concurrency
}
