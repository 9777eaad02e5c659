package services

import (
	"context"
	"log/slog"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/gns-club/quiz-battle-system/models"
	"github.com/gns-club/quiz-battle-system/store"
)

const seedTeamLimit = 10

type SeedResult struct {
	TeamsAdded     int `json:"teamsAdded"`
	QuestionsAdded int `json:"questionsAdded"`
}

// AdminService covers the destructive operator actions: wiping the data
// set and seeding demo content. The UI is expected to confirm before
// calling; the service performs the action unconditionally.
type AdminService interface {
	ResetAll(ctx context.Context) error
	SeedDemo(ctx context.Context) (*SeedResult, error)
}

type adminService struct {
	store  *store.Store
	logger *slog.Logger
}

func NewAdminService(st *store.Store, logger *slog.Logger) AdminService {
	if logger == nil {
		logger = slog.Default()
	}
	return &adminService{store: st, logger: logger}
}

func (s *adminService) ResetAll(ctx context.Context) error {
	if err := s.store.Replace(ctx, models.NewState()); err != nil {
		return err
	}
	s.logger.Warn("data set wiped")
	return nil
}

var demoSchools = []string{
	"GNS Colombo", "Nalanda College", "Ananda College", "Thurstan College",
	"Royal College", "Visakha Vidyalaya", "Holy Cross College",
	"Devi Balika", "DS Senanayake", "Mahanama College",
}

type demoQuestion struct {
	q, a, b, c, d, ans string
}

var demoQuestions = []demoQuestion{
	{"What does CPU stand for?", "Central Processing Unit", "Computer Processing Unit", "Central Program Unit", "Computer Program Unit", "A"},
	{"What does HTML stand for?", "Hyper Text Markup Language", "High Text Machine Language", "Hyper Text Machine Language", "High Text Markup Language", "A"},
	{"Which company developed Java?", "Microsoft", "Sun Microsystems", "Apple", "Google", "B"},
	{"What does RAM stand for?", "Read Access Memory", "Random Access Memory", "Rapid Access Memory", "Read All Memory", "B"},
	{"What does HTTP stand for?", "Hyper Text Transfer Protocol", "High Text Transfer Protocol", "Hyper Transfer Text Protocol", "High Transfer Text Protocol", "A"},
	{"Which language is used for web styling?", "Python", "Java", "CSS", "C++", "C"},
	{"What is the binary representation of 10?", "1010", "1001", "1100", "0110", "A"},
	{"What does URL stand for?", "Uniform Resource Locator", "Universal Resource Locator", "Uniform Record Locator", "Universal Record Locator", "A"},
	{"Which is NOT a programming language?", "Python", "Java", "HTML", "C++", "C"},
	{"What does OS stand for?", "Online System", "Operating System", "Output System", "Open System", "B"},
	{"What does SQL stand for?", "Structured Query Language", "Simple Query Language", "Standard Query Language", "Sequential Query Language", "A"},
	{"Who created the World Wide Web?", "Bill Gates", "Steve Jobs", "Tim Berners-Lee", "Linus Torvalds", "C"},
	{"What does USB stand for?", "Universal System Bus", "Universal Serial Bus", "United System Bus", "United Serial Bus", "B"},
	{"Which of these is an input device?", "Monitor", "Printer", "Speaker", "Keyboard", "D"},
	{"What does IP stand for in networking?", "Internet Port", "Internal Protocol", "Internet Protocol", "Internal Port", "C"},
	{"Which is a search engine?", "Ubuntu", "Firefox", "Google", "Python", "C"},
	{"What does LAN stand for?", "Large Area Network", "Local Area Network", "Long Area Network", "Linked Area Network", "B"},
	{"Which programming language uses indentation as syntax?", "Java", "C++", "Python", "JavaScript", "C"},
	{"What is the default port for HTTP?", "21", "443", "80", "8080", "C"},
	{"Which data structure works on LIFO principle?", "Queue", "Array", "Stack", "Tree", "C"},
}

// SeedDemo tops the roster up to ten demo teams and loads a batch of demo
// questions. Member names are faked; school names come from a fixed list
// so brackets read sensibly on a projector.
func (s *adminService) SeedDemo(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}
	err := s.store.Update(ctx, func(state *models.State) error {
		for _, school := range demoSchools {
			if len(state.Teams) >= seedTeamLimit {
				break
			}
			state.Teams = append(state.Teams, &models.Team{
				ID:         uuid.NewString(),
				SchoolName: school,
				Member1:    gofakeit.Name(),
				Member2:    gofakeit.Name(),
			})
			result.TeamsAdded++
		}
		for _, dq := range demoQuestions {
			state.Questions = append(state.Questions, &models.Question{
				ID:            uuid.NewString(),
				Question:      dq.q,
				OptionA:       dq.a,
				OptionB:       dq.b,
				OptionC:       dq.c,
				OptionD:       dq.d,
				CorrectAnswer: dq.ans,
			})
			result.QuestionsAdded++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("demo data seeded",
		slog.Int("teams", result.TeamsAdded),
		slog.Int("questions", result.QuestionsAdded))
	return result, nil
}
