package results

import "strconv"

var fixedColumns = []string{
	"City Code",
	"City Name",
	"Registered Voters",
	"Issued Ballots",
	"Valid Votes",
}

type Municipality struct {
	Code string
	Name string
	URL  string
}

type Turnout struct {
	RegisteredVoters int
	IssuedBallots    int
	ValidVotes       int
}

type Row struct {
	Municipality
	Turnout
	Votes []int
}

// Record renders the row in column order: identity, turnout, then one vote
// count per party.
func (r Row) Record() []string {
	record := make([]string, 0, len(fixedColumns)+len(r.Votes))
	record = append(record,
		r.Code,
		r.Name,
		strconv.Itoa(r.RegisteredVoters),
		strconv.Itoa(r.IssuedBallots),
		strconv.Itoa(r.ValidVotes),
	)
	for _, v := range r.Votes {
		record = append(record, strconv.Itoa(v))
	}
	return record
}

// Table is the whole result of a run. Parties is the catalog and defines the
// meaning of Row.Votes by position.
type Table struct {
	Parties []string
	Rows    []Row
}

func (t Table) Header() []string {
	header := make([]string, 0, len(fixedColumns)+len(t.Parties))
	header = append(header, fixedColumns...)
	return append(header, t.Parties...)
}
