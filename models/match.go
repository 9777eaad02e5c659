package models

type MatchStatus string

const (
	MatchStatusPending   MatchStatus = "pending"
	MatchStatusActive    MatchStatus = "active"
	MatchStatusCompleted MatchStatus = "completed"
)

// Side identifies which seat of a match is acting.
type Side string

const (
	SideTeam1 Side = "team1"
	SideTeam2 Side = "team2"
)

func (s Side) Other() Side {
	if s == SideTeam1 {
		return SideTeam2
	}
	return SideTeam1
}

// Round is one answered (or timed-out) question within a match. Rounds are
// append-only and form the audit trail for match history.
type Round struct {
	TeamID         string  `json:"teamId"`
	QuestionID     string  `json:"questionId"`
	SelectedAnswer *string `json:"selectedAnswer"`
	IsCorrect      bool    `json:"isCorrect"`
	IsTimeout      bool    `json:"isTimeout"`
}

type Match struct {
	ID                  string      `json:"id"`
	SlotNumber          int         `json:"slotNumber"`
	Team1ID             string      `json:"team1Id"`
	Team2ID             string      `json:"team2Id"`
	Status              MatchStatus `json:"status"`
	WinnerID            *string     `json:"winnerId"`
	Team1Score          int         `json:"team1Score"`
	Team2Score          int         `json:"team2Score"`
	Rounds              []Round     `json:"rounds"`
	CurrentTurn         Side        `json:"currentTurn"`
	CurrentQuestionID   *string     `json:"currentQuestionId"`
	QuestionsPerTeam    int         `json:"questionsPerTeam"`
	TiebreakerActivated bool        `json:"tiebreakerActivated"`
}

// CurrentTeamID resolves the side whose turn it is to answer.
func (m *Match) CurrentTeamID() string {
	if m.CurrentTurn == SideTeam1 {
		return m.Team1ID
	}
	return m.Team2ID
}

// RoundsFor counts rounds attributed to the given team.
func (m *Match) RoundsFor(teamID string) int {
	n := 0
	for _, r := range m.Rounds {
		if r.TeamID == teamID {
			n++
		}
	}
	return n
}
