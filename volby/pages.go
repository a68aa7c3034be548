package volby

import (
	"bytes"
	"context"
	"sync"

	"github.com/MisterKaiou/go-functional/result"
	"github.com/PuerkitoBio/goquery"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"
)

type downloadedPage struct {
	body        []byte
	contentType string
}

type cachedPage struct {
	once sync.Once
	doc  result.Of[*goquery.Document]
}

// pageStore downloads and parses every URL at most once per run, so the
// turnout, party and vote passes all read the same document.
type pageStore struct {
	fetcher Fetcher

	mu    sync.Mutex
	pages map[string]*cachedPage
}

func newPageStore(fetcher Fetcher) *pageStore {
	return &pageStore{fetcher: fetcher, pages: make(map[string]*cachedPage)}
}

func (s *pageStore) get(ctx context.Context, url string) (*goquery.Document, error) {
	s.mu.Lock()
	page, ok := s.pages[url]
	if !ok {
		page = &cachedPage{}
		s.pages[url] = page
	}
	s.mu.Unlock()

	page.once.Do(func() {
		page.doc = downloadDocument(ctx, s.fetcher, url)
		if page.doc.IsError() {
			logger.WithFields(logger.Fields{"component": "pages", "category": "download"}).
				Debugf("Download of [%s] failed", url)
		}
	})

	if page.doc.IsError() {
		return nil, page.doc.UnwrapError()
	}
	return page.doc.Unwrap(), nil
}

func downloadDocument(ctx context.Context, fetcher Fetcher, url string) result.Of[*goquery.Document] {
	downloaded := result.FromTupleOf(download(ctx, fetcher, url))
	return result.Bind(downloaded, func(p downloadedPage) result.Of[*goquery.Document] {
		doc, err := parseDocument(p)
		if err != nil {
			return result.FromTupleOf[*goquery.Document](nil, &ParseError{Field: "document", URL: url, Cause: err})
		}

		logger.WithFields(logger.Fields{"component": "pages", "category": "download"}).
			Debugf("Downloaded [%s]. Size [%dKB]", url, len(p.body)/1024)
		return result.FromTupleOf(doc, nil)
	})
}

func download(ctx context.Context, fetcher Fetcher, url string) (downloadedPage, error) {
	body, contentType, err := fetcher.Fetch(ctx, url)
	return downloadedPage{body: body, contentType: contentType}, err
}

// parseDocument decodes the body using the charset announced by the server or
// the page itself before handing it to goquery.
func parseDocument(p downloadedPage) (*goquery.Document, error) {
	reader, err := charset.NewReader(bytes.NewReader(p.body), p.contentType)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(reader)
}
