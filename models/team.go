package models

type Team struct {
	ID         string `json:"id"`
	SchoolName string `json:"schoolName"`
	Member1    string `json:"member1"`
	Member2    string `json:"member2"`
	Score      int    `json:"score"`
}

// TeamPublic is the identity-only view embedded in battle state snapshots.
type TeamPublic struct {
	ID         string `json:"id"`
	SchoolName string `json:"schoolName"`
	Member1    string `json:"member1"`
	Member2    string `json:"member2"`
}

func (t *Team) Public() TeamPublic {
	return TeamPublic{
		ID:         t.ID,
		SchoolName: t.SchoolName,
		Member1:    t.Member1,
		Member2:    t.Member2,
	}
}

// RankedTeam is a leaderboard row: a team with its 1-based rank attached.
type RankedTeam struct {
	Team
	Rank int `json:"rank"`
}
