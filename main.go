package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	"volby-scrapper/models"
	"volby-scrapper/models/site"
	"volby-scrapper/volby"

	"github.com/alexflint/go-arg"
	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

const (
	exitOk = iota
	exitValidation
	exitEmptyResult
	exitParse
	exitAlignment
	exitTransport
	exitOther
)

func main() {
	args := models.Parameters{Workers: 1, Timeout: 30 * time.Second, Verbosity: logger.InfoLevel}
	arg.MustParse(&args)
	logger.SetLevel(args.Verbosity)
	logger.SetFormatter(&nested.Formatter{
		HideKeys:    true,
		FieldsOrder: []string{"component", "category"},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, args)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context, args models.Parameters) error {
	profile, err := site.Load(args.Profile)
	if err != nil {
		return &volby.ValidationError{Message: "invalid site profile", Cause: err}
	}

	fetcher := volby.NewRestyFetcher(args.Timeout, args.UserAgent)
	scraper := volby.NewScraper(fetcher, profile, args.Workers)

	if err := scraper.Validate(ctx, args.URL, args.FileName); err != nil {
		return err
	}

	logger.Infof("Initializing program with URL [%s] and file name [%s]. Extracting data...", args.URL, args.FileName)
	table, err := scraper.Run(ctx, args.URL)
	if err != nil {
		return err
	}

	if err := volby.WriteCSVFile(args.FileName, table); err != nil {
		return err
	}
	logger.Infof("File [%s] has been generated with [%d] municipalities and [%d] parties", args.FileName, len(table.Rows), len(table.Parties))

	if args.Preview > 0 {
		volby.RenderPreview(os.Stdout, table, args.Preview)
	}
	return nil
}

func exitCode(err error) int {
	var (
		validation *volby.ValidationError
		empty      *volby.EmptyResultError
		parse      *volby.ParseError
		alignment  *volby.AlignmentError
		transport  *volby.TransportError
	)

	switch {
	case errors.As(err, &validation):
		return exitValidation
	case errors.As(err, &empty):
		return exitEmptyResult
	case errors.As(err, &parse):
		return exitParse
	case errors.As(err, &alignment):
		return exitAlignment
	case errors.As(err, &transport):
		return exitTransport
	default:
		return exitOther
	}
}
