package site

const DefaultRoot = "https://volby.cz/pls/ps2017nss/"

// Profile describes where the values live on the results site. The defaults
// match the 2017 Chamber of Deputies pages; a JSON file with the same keys can
// override any subset of them.
type Profile struct {
	Root              string       `json:"root"`
	MunicipalityParam string       `json:"municipalityParam"`
	Index             IndexCells   `json:"index"`
	Turnout           TurnoutCells `json:"turnout"`
	Ballot            BallotCells  `json:"ballot"`
}

type IndexCells struct {
	CodeClass string `json:"codeClass"`
	NameClass string `json:"nameClass"`
}

type TurnoutCells struct {
	Class            string `json:"class"`
	RegisteredVoters string `json:"registeredVoters"`
	IssuedBallots    string `json:"issuedBallots"`
	ValidVotes       string `json:"validVotes"`
}

// BallotCells holds one header key per ballot sub-table. The party and vote
// lists are the concatenation of all sub-tables in this order.
type BallotCells struct {
	PartyClass   string   `json:"partyClass"`
	VoteClass    string   `json:"voteClass"`
	PartyHeaders []string `json:"partyHeaders"`
	VoteHeaders  []string `json:"voteHeaders"`
}

func Default() Profile {
	return Profile{
		Root:              DefaultRoot,
		MunicipalityParam: "xobec",
		Index: IndexCells{
			CodeClass: "cislo",
			NameClass: "overflow_name",
		},
		Turnout: TurnoutCells{
			Class:            "cislo",
			RegisteredVoters: "sa2",
			IssuedBallots:    "sa3",
			ValidVotes:       "sa6",
		},
		Ballot: BallotCells{
			PartyClass:   "overflow_name",
			VoteClass:    "cislo",
			PartyHeaders: []string{"t1sa1 t1sb2", "t2sa1 t2sb2"},
			VoteHeaders:  []string{"t1sa2 t1sb3", "t2sa2 t2sb3"},
		},
	}
}
