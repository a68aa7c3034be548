package volby

import (
	"context"
	"fmt"
	"sync/atomic"
	"volby-scrapper/models/results"
	"volby-scrapper/models/site"

	"github.com/ahmetb/go-linq/v3"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Scraper walks one district: the index page and every municipality page it
// links to. Each page is downloaded once and shared by all extraction passes.
type Scraper struct {
	Profile site.Profile
	// Workers bounds concurrent downloads in Prefetch. Values below 1 mean 1.
	Workers int

	pages *pageStore
}

func NewScraper(fetcher Fetcher, profile site.Profile, workers int) *Scraper {
	return &Scraper{
		Profile: profile,
		Workers: workers,
		pages:   newPageStore(fetcher),
	}
}

func log(category string) *logger.Entry {
	return logger.WithFields(logger.Fields{"component": "volby", "category": category})
}

// Index reads the district page and returns its municipalities in discovery
// order.
func (s *Scraper) Index(ctx context.Context, indexURL string) ([]results.Municipality, error) {
	doc, err := s.pages.get(ctx, indexURL)
	if err != nil {
		return nil, err
	}

	links, err := DiscoverLinks(doc, s.Profile, indexURL)
	if err != nil {
		return nil, err
	}
	codes, names := Identities(doc, s.Profile)

	log("index").Infof("Found [%d] municipalities on [%s]", len(links), indexURL)
	return Municipalities(codes, names, links)
}

// Prefetch downloads all urls with at most Workers requests in flight and
// stops at the first failure.
func (s *Scraper) Prefetch(ctx context.Context, urls []string) error {
	workers := s.Workers
	if workers < 1 {
		workers = 1
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var done atomic.Int64
	for _, url := range urls {
		url := url
		g.Go(func() error {
			if _, err := s.pages.get(gCtx, url); err != nil {
				return err
			}
			log("prefetch").Infof("Downloaded [%s]. [%d] of [%d]", url, done.Add(1), len(urls))
			return nil
		})
	}

	return g.Wait()
}

func (s *Scraper) Turnout(ctx context.Context, url string) (results.Turnout, error) {
	doc, err := s.pages.get(ctx, url)
	if err != nil {
		return results.Turnout{}, err
	}
	return ExtractTurnout(doc, s.Profile, url)
}

func (s *Scraper) Turnouts(ctx context.Context, urls []string) ([]results.Turnout, error) {
	turnouts := make([]results.Turnout, 0, len(urls))
	for _, url := range urls {
		turnout, err := s.Turnout(ctx, url)
		if err != nil {
			return nil, err
		}
		turnouts = append(turnouts, turnout)
	}
	return turnouts, nil
}

// Catalog builds the party list from the first municipality page. It is the
// column schema for every row of the run.
func (s *Scraper) Catalog(ctx context.Context, urls []string) ([]string, error) {
	if len(urls) == 0 {
		return nil, &EmptyResultError{What: "municipality pages to read parties from"}
	}

	doc, err := s.pages.get(ctx, urls[0])
	if err != nil {
		return nil, err
	}

	parties := ExtractParties(doc, s.Profile)
	if len(parties) == 0 {
		return nil, &EmptyResultError{What: "parties", URL: urls[0]}
	}

	log("catalog").Infof("Found [%d] parties on [%s]", len(parties), urls[0])
	return parties, nil
}

func (s *Scraper) Tallies(ctx context.Context, urls []string) ([][]int, error) {
	tallies := make([][]int, 0, len(urls))
	for _, url := range urls {
		doc, err := s.pages.get(ctx, url)
		if err != nil {
			return nil, err
		}

		votes, err := ExtractVotes(doc, s.Profile, url)
		if err != nil {
			return nil, err
		}
		tallies = append(tallies, votes)
	}
	return tallies, nil
}

// CheckCatalog re-reads the party list of every municipality and fails on the
// first one that differs from catalog in names or order.
func (s *Scraper) CheckCatalog(ctx context.Context, municipalities []results.Municipality, catalog []string) error {
	for _, m := range municipalities {
		doc, err := s.pages.get(ctx, m.URL)
		if err != nil {
			return err
		}

		parties := ExtractParties(doc, s.Profile)
		if !linq.From(parties).SequenceEqual(linq.From(catalog)) {
			return &AlignmentError{Message: fmt.Sprintf(
				"municipality %s (%s) lists parties %q, expected %q", m.Code, m.Name, parties, catalog)}
		}
	}
	return nil
}

// Run scrapes the whole district behind indexURL. Nothing is written; the
// returned table is complete or an error is returned.
func (s *Scraper) Run(ctx context.Context, indexURL string) (results.Table, error) {
	municipalities, err := s.Index(ctx, indexURL)
	if err != nil {
		return results.Table{}, err
	}

	var urls []string
	linq.From(municipalities).SelectT(func(m results.Municipality) string {
		return m.URL
	}).ToSlice(&urls)

	if err := s.Prefetch(ctx, urls); err != nil {
		return results.Table{}, err
	}

	turnouts, err := s.Turnouts(ctx, urls)
	if err != nil {
		return results.Table{}, err
	}

	catalog, err := s.Catalog(ctx, urls)
	if err != nil {
		return results.Table{}, err
	}

	tallies, err := s.Tallies(ctx, urls)
	if err != nil {
		return results.Table{}, err
	}

	if err := s.CheckCatalog(ctx, municipalities, catalog); err != nil {
		return results.Table{}, err
	}

	return Assemble(municipalities, turnouts, catalog, tallies)
}
