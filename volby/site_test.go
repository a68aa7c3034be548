package volby

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"volby-scrapper/models/site"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const rootPath = "/pls/ps2017nss/"

type fixtureMunicipality struct {
	code, name                string
	registered, issued, valid string
	parties                   []string
	votes                     []string
}

// fixtureSite serves one district index and its municipality pages the way
// volby.cz lays them out: ballot split into two sub-tables, NBSP thousands.
type fixtureSite struct {
	server *httptest.Server
	pages  map[string]string

	mu   sync.Mutex
	hits map[string]int
}

func newFixtureSite(t *testing.T, municipalities ...fixtureMunicipality) *fixtureSite {
	t.Helper()

	s := &fixtureSite{pages: map[string]string{}, hits: map[string]int{}}
	s.pages["ps32?xjazyk=CZ&xkraj=2&xnumnuts=2101"] = indexPage(municipalities)
	for _, m := range municipalities {
		s.pages[municipalityHref(m.code)] = municipalityPage(m)
	}

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(r.URL.RequestURI(), rootPath)
		s.mu.Lock()
		s.hits[key]++
		s.mu.Unlock()

		body, ok := s.pages[key]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(s.server.Close)

	return s
}

func (s *fixtureSite) root() string { return s.server.URL + rootPath }

func (s *fixtureSite) indexURL() string {
	return s.root() + "ps32?xjazyk=CZ&xkraj=2&xnumnuts=2101"
}

func (s *fixtureSite) municipalityURL(code string) string {
	return s.root() + municipalityHref(code)
}

func (s *fixtureSite) profile() site.Profile {
	p := site.Default()
	p.Root = s.root()
	return p
}

func (s *fixtureSite) hitCounts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.hits))
	for k, v := range s.hits {
		out[k] = v
	}
	return out
}

func (s *fixtureSite) scraper(workers int) *Scraper {
	return NewScraper(NewRestyFetcher(0, "volby-test"), s.profile(), workers)
}

func municipalityHref(code string) string {
	return "ps311?xjazyk=CZ&xkraj=2&xobec=" + code + "&xvyber=2101"
}

func indexPage(municipalities []fixtureMunicipality) string {
	var b strings.Builder
	b.WriteString(`<html><head><meta charset="utf-8"><title>Výsledky</title></head><body>
<a href="ps2?xjazyk=CZ">Zpět</a>
<table class="table">
<tr><th id="t1sa1">Obec</th><th id="t1sb1">číslo</th><th id="t1sb2">název</th><th id="t1sa2">Výběr okrsku</th></tr>
`)
	for _, m := range municipalities {
		href := strings.ReplaceAll(municipalityHref(m.code), "&", "&amp;")
		fmt.Fprintf(&b, `<tr><td class="cislo" headers="t1sa1 t1sb1"><a href="%s">%s</a></td>`, href, m.code)
		fmt.Fprintf(&b, `<td class="overflow_name" headers="t1sa1 t1sb2">%s</td>`, m.name)
		fmt.Fprintf(&b, `<td class="center" headers="t1sa2"><a href="%s">X</a></td></tr>`+"\n", href)
	}
	b.WriteString(`</table></body></html>`)
	return b.String()
}

func municipalityPage(m fixtureMunicipality) string {
	var b strings.Builder
	b.WriteString(`<html><head><meta charset="utf-8"></head><body>
<table id="ps311_t1">
<tr><th id="sa1">Okrsky</th><th id="sa2">Voliči v seznamu</th><th id="sa3">Vydané obálky</th><th id="sa6">Platné hlasy</th></tr>
`)
	fmt.Fprintf(&b, `<tr><td class="cislo" headers="sa1 sb1">1</td><td class="cislo" headers="sa2">%s</td><td class="cislo" headers="sa3">%s</td><td class="cislo" headers="sa6">%s</td></tr>`,
		m.registered, m.issued, m.valid)
	b.WriteString("</table>\n")

	split := (len(m.parties) + 1) / 2
	for table, bounds := range [][2]int{{0, split}, {split, len(m.parties)}} {
		n := table + 1
		fmt.Fprintf(&b, `<table class="table"><tr><th id="t%dsa1">Strana</th><th id="t%dsa2">Platné hlasy</th></tr>`+"\n", n, n)
		for i := bounds[0]; i < bounds[1]; i++ {
			fmt.Fprintf(&b, `<tr><td class="cislo" headers="t%dsa1 t%dsb1">%d</td>`, n, n, i+1)
			fmt.Fprintf(&b, `<td class="overflow_name" headers="t%dsa1 t%dsb2">%s</td>`, n, n, m.parties[i])
			fmt.Fprintf(&b, `<td class="cislo" headers="t%dsa2 t%dsb3">%s</td>`, n, n, m.votes[i])
			fmt.Fprintf(&b, `<td class="cislo" headers="t%dsa2 t%dsb4">0,00</td></tr>`+"\n", n, n)
		}
		b.WriteString("</table>\n")
	}
	b.WriteString(`</body></html>`)
	return b.String()
}

func scenarioMunicipalities() []fixtureMunicipality {
	return []fixtureMunicipality{
		{
			code: "501", name: "Alpha",
			registered: "1\u00a0000", issued: "800", valid: "790",
			parties: []string{"PartyA", "PartyB"},
			votes:   []string{"400", "390"},
		},
		{
			code: "502", name: "Beta",
			registered: "1&nbsp;000", issued: "800", valid: "790",
			parties: []string{"PartyA", "PartyB"},
			votes:   []string{"410", "380"},
		},
	}
}

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

// countingFetcher records how often each URL is requested.
type countingFetcher struct {
	next Fetcher

	mu    sync.Mutex
	calls map[string]int
}

func newCountingFetcher(next Fetcher) *countingFetcher {
	return &countingFetcher{next: next, calls: map[string]int{}}
}

func (f *countingFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	f.mu.Lock()
	f.calls[url]++
	f.mu.Unlock()
	return f.next.Fetch(ctx, url)
}
