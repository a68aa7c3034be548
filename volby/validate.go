package volby

import (
	"context"
	"fmt"
	"strings"
)

const csvExtension = ".csv"

// Validate checks the command line arguments in order: URL prefix, file
// extension, then that the URL answers with 200. The downloaded index page is
// kept for Run.
func (s *Scraper) Validate(ctx context.Context, url, fileName string) error {
	if !strings.HasPrefix(url, s.Profile.Root) {
		return &ValidationError{Message: fmt.Sprintf("URL must start with '%s'", s.Profile.Root)}
	}

	if !strings.HasSuffix(fileName, csvExtension) {
		return &ValidationError{Message: fmt.Sprintf("file name must end with '%s'", csvExtension)}
	}

	if _, err := s.pages.get(ctx, url); err != nil {
		return &ValidationError{Message: "invalid URL: " + url, Cause: err}
	}

	return nil
}
