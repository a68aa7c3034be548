package models

import (
	"time"

	"github.com/sirupsen/logrus"
)

type Parameters struct {
	URL         string        `arg:"positional, required" placeholder:"URL" help:"The district index page to scrape. Must start with the site root, e.g. https://volby.cz/pls/ps2017nss/ps32?xjazyk=CZ&xkraj=2&xnumnuts=2101"`
	FileName    string        `arg:"positional, required" placeholder:"FILE" help:"The CSV file the results are written to. Must end with .csv"`
	Workers     int           `arg:"-w, --workers, env:VOLBY_WORKERS" placeholder:"N" help:"How many municipality pages are downloaded at the same time. 1 keeps the run fully sequential"`
	Timeout     time.Duration `arg:"-t, --timeout, env:VOLBY_TIMEOUT" placeholder:"DURATION" help:"Upper bound for a single page download, e.g. 30s"`
	Profile     string        `arg:"-p, --profile, env:VOLBY_PROFILE" placeholder:"PATH" help:"Optional JSON file overriding the site root, link parameter, cell classes and header keys"`
	UserAgent   string        `arg:"--user-agent" placeholder:"UA" help:"User-Agent header sent with every request"`
	Preview     int           `arg:"--preview" placeholder:"N" help:"If greater than zero, print the first N rows as a table after the file is written"`
	Verbosity   logrus.Level  `arg:"-v, --verbosity" placeholder:"LEVEL" help:"How many logs are shown. In order of severity (0 to 6): panic > fatal > error > warn > info > debug > trace"`
}

func (Parameters) Description() string {
	return "Scrapes the municipality results of one electoral district into a single CSV file."
}
