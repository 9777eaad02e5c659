package models

// DashboardStats are the aggregate counters shown on the operator dashboard.
type DashboardStats struct {
	TeamCount          int `json:"teamCount"`
	QuestionCount      int `json:"questionCount"`
	UsedQuestions      int `json:"usedQuestions"`
	AvailableQuestions int `json:"availableQuestions"`
	SuggestedPerTeam   int `json:"suggestedPerTeam"`
	MatchCount         int `json:"matchCount"`
	CompletedMatches   int `json:"completedMatches"`
	PendingMatches     int `json:"pendingMatches"`
	ActiveMatches      int `json:"activeMatches"`
}
