package volby

import (
	"fmt"
	"net/url"
	"volby-scrapper/models/results"
	"volby-scrapper/models/site"

	"github.com/PuerkitoBio/goquery"
	"github.com/ahmetb/go-linq/v3"
	"github.com/pkg/errors"
)

// DiscoverLinks collects the municipality pages linked from an index page.
// Only links whose query carries the municipality parameter are kept; they are
// resolved against the site root and deduplicated in first-seen order.
func DiscoverLinks(doc *goquery.Document, profile site.Profile, indexURL string) ([]string, error) {
	root, err := url.Parse(profile.Root)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing site root %q", profile.Root)
	}

	var found []string
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		ref, err := url.Parse(href)
		if err != nil {
			return
		}

		resolved := root.ResolveReference(ref)
		if !resolved.Query().Has(profile.MunicipalityParam) {
			return
		}
		found = append(found, resolved.String())
	})

	var links []string
	linq.From(found).Distinct().ToSlice(&links)

	if len(links) == 0 {
		return nil, &EmptyResultError{What: "municipality links", URL: indexURL}
	}
	return links, nil
}

// Identities reads the municipality codes and names listed on an index page.
// The two sequences are not checked against each other here.
func Identities(doc *goquery.Document, profile site.Profile) (codes, names []string) {
	codes = Fields(doc, profile.Index.CodeClass, "")
	names = Fields(doc, profile.Index.NameClass, "")
	return codes, names
}

// Municipalities zips codes, names and links by position.
func Municipalities(codes, names, links []string) ([]results.Municipality, error) {
	if len(codes) != len(names) || len(codes) != len(links) {
		return nil, &AlignmentError{Message: fmt.Sprintf(
			"index lists %d codes and %d names but links %d municipality pages", len(codes), len(names), len(links))}
	}

	municipalities := make([]results.Municipality, len(codes))
	for i := range codes {
		municipalities[i] = results.Municipality{Code: codes[i], Name: names[i], URL: links[i]}
	}
	return municipalities, nil
}
