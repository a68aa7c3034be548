package volby

import (
	"volby-scrapper/helpers"
	"volby-scrapper/models/results"
	"volby-scrapper/models/site"

	"github.com/PuerkitoBio/goquery"
	"github.com/ahmetb/go-linq/v3"
)

// ExtractTurnout reads registered voters, issued ballots and valid votes from a
// municipality page. Each must be present exactly once and be numeric.
func ExtractTurnout(doc *goquery.Document, profile site.Profile, url string) (results.Turnout, error) {
	var err error
	count := func(field, header string) int {
		if err != nil {
			return 0
		}
		n, cErr := Count(doc, profile.Turnout.Class, header)
		if cErr != nil {
			err = &ParseError{Field: field, URL: url, Cause: cErr}
		}
		return n
	}

	turnout := results.Turnout{
		RegisteredVoters: count("registered voters", profile.Turnout.RegisteredVoters),
		IssuedBallots:    count("issued ballots", profile.Turnout.IssuedBallots),
		ValidVotes:       count("valid votes", profile.Turnout.ValidVotes),
	}
	if err != nil {
		return results.Turnout{}, err
	}
	return turnout, nil
}

// ExtractParties lists the party names of every ballot sub-table, sub-tables
// concatenated in profile order.
func ExtractParties(doc *goquery.Document, profile site.Profile) []string {
	var parties []string
	linq.From(profile.Ballot.PartyHeaders).
		SelectManyT(func(header string) linq.Query {
			return linq.From(Fields(doc, profile.Ballot.PartyClass, header))
		}).
		ToSlice(&parties)
	return parties
}

// ExtractVotes reads the vote counts in the same order as ExtractParties.
func ExtractVotes(doc *goquery.Document, profile site.Profile, url string) ([]int, error) {
	var votes []int
	for _, header := range profile.Ballot.VoteHeaders {
		for _, value := range Fields(doc, profile.Ballot.VoteClass, header) {
			n, err := helpers.ParseCount(value)
			if err != nil {
				return nil, &ParseError{Field: "party votes", URL: url, Cause: err}
			}
			votes = append(votes, n)
		}
	}
	return votes, nil
}
