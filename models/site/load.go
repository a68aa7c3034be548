package site

import (
	"os"
	"strings"
	"volby-scrapper/jsonHelpers"

	"github.com/pkg/errors"
)

// Load returns the default profile when path is empty, otherwise the default
// profile overlaid with the JSON file at path.
func Load(path string) (Profile, error) {
	if path == "" {
		return Default(), nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, errors.Wrapf(err, "reading site profile %s", path)
	}

	profile, err := jsonHelpers.DeserializeJsonOnto(bytes, Default())
	if err != nil {
		return Profile{}, errors.Wrapf(err, "decoding site profile %s", path)
	}

	return profile, profile.Check()
}

func (p Profile) Check() error {
	switch {
	case !strings.HasSuffix(p.Root, "/"):
		return errors.Errorf("site root %q must end with a slash", p.Root)
	case p.MunicipalityParam == "":
		return errors.New("municipality link parameter is empty")
	case p.Index.CodeClass == "" || p.Index.NameClass == "":
		return errors.New("index cell classes are empty")
	case p.Turnout.RegisteredVoters == "" || p.Turnout.IssuedBallots == "" || p.Turnout.ValidVotes == "":
		return errors.New("turnout header keys are empty")
	case len(p.Ballot.PartyHeaders) == 0:
		return errors.New("no ballot sub-tables configured")
	case len(p.Ballot.PartyHeaders) != len(p.Ballot.VoteHeaders):
		return errors.Errorf("%d party header keys but %d vote header keys", len(p.Ballot.PartyHeaders), len(p.Ballot.VoteHeaders))
	}
	return nil
}
