package volby

import (
	"fmt"
	"volby-scrapper/models/results"
)

// Assemble merges the per-municipality sequences by position. Every sequence
// must have one entry per municipality and every tally one count per party.
func Assemble(municipalities []results.Municipality, turnouts []results.Turnout, catalog []string, tallies [][]int) (results.Table, error) {
	if len(turnouts) != len(municipalities) {
		return results.Table{}, &AlignmentError{Message: fmt.Sprintf(
			"%d turnout records for %d municipalities", len(turnouts), len(municipalities))}
	}
	if len(tallies) != len(municipalities) {
		return results.Table{}, &AlignmentError{Message: fmt.Sprintf(
			"%d vote tallies for %d municipalities", len(tallies), len(municipalities))}
	}

	rows := make([]results.Row, len(municipalities))
	for i, m := range municipalities {
		if len(tallies[i]) != len(catalog) {
			return results.Table{}, &AlignmentError{Message: fmt.Sprintf(
				"municipality %s (%s) has %d vote counts for %d parties", m.Code, m.Name, len(tallies[i]), len(catalog))}
		}
		rows[i] = results.Row{Municipality: m, Turnout: turnouts[i], Votes: tallies[i]}
	}

	return results.Table{Parties: catalog, Rows: rows}, nil
}
