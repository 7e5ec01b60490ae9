package questions

import (
	"context"
	"testing"

	"github.com/siammpl/arena/internal/models"
	"github.com/siammpl/arena/internal/teams"
)

type fakeQuestionsRepo struct {
	questions   map[string]*models.Question
	assignments map[string]*models.TeamQuestion
	nextID      int
}

func newFakeQuestionsRepo() *fakeQuestionsRepo {
	return &fakeQuestionsRepo{
		questions:   make(map[string]*models.Question),
		assignments: make(map[string]*models.TeamQuestion),
		nextID:      1,
	}
}

func (f *fakeQuestionsRepo) CreateQuestion(ctx context.Context, id, text string) (*models.Question, error) {
	q := &models.Question{ID: id, Question: text}
	f.questions[id] = q
	clone := *q
	return &clone, nil
}

func (f *fakeQuestionsRepo) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, ErrQuestionNotFound
	}
	clone := *q
	return &clone, nil
}

func (f *fakeQuestionsRepo) ListQuestions(ctx context.Context) ([]models.Question, error) {
	var out []models.Question
	for _, q := range f.questions {
		out = append(out, *q)
	}
	return out, nil
}

func (f *fakeQuestionsRepo) CreateAssignment(ctx context.Context, questionID string, teamID int) (*models.TeamQuestion, error) {
	m := &models.TeamQuestion{ID: f.nextID, QuestionID: questionID, TeamID: teamID}
	f.nextID++
	f.assignments[questionID] = m
	clone := *m
	return &clone, nil
}

func (f *fakeQuestionsRepo) GetAssignmentByQuestion(ctx context.Context, questionID string) (*models.TeamQuestion, error) {
	m, ok := f.assignments[questionID]
	if !ok {
		return nil, ErrMappingNotFound
	}
	clone := *m
	return &clone, nil
}

func (f *fakeQuestionsRepo) DeleteAssignment(ctx context.Context, id int) error {
	for questionID, m := range f.assignments {
		if m.ID == id {
			delete(f.assignments, questionID)
			return nil
		}
	}
	return ErrMappingNotFound
}

type fakeRegistry struct {
	teams  map[string]*models.Team
	nextID int
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{teams: make(map[string]*models.Team), nextID: 1}
}

func (f *fakeRegistry) GetTeamByName(ctx context.Context, name string) (*models.Team, error) {
	t, ok := f.teams[name]
	if !ok {
		return nil, teams.ErrNotFound
	}
	clone := *t
	return &clone, nil
}

func (f *fakeRegistry) CreateTeam(ctx context.Context, name string) (*models.Team, error) {
	t := &models.Team{ID: f.nextID, Name: name, Points: 100}
	f.nextID++
	f.teams[name] = t
	clone := *t
	return &clone, nil
}

func TestAssignQuestionRegistersTeam(t *testing.T) {
	repo := newFakeQuestionsRepo()
	registry := newFakeRegistry()
	repo.CreateQuestion(context.Background(), "Q1", "Name the largest moon of Saturn.")
	app := NewApp(repo, registry)

	result, err := app.AssignQuestion(context.Background(), "Alpha", "Q1")
	if err != nil {
		t.Fatalf("AssignQuestion() error = %v", err)
	}

	if result.TeamName != "Alpha" || result.Points != 100 {
		t.Errorf("result = %+v, want Alpha with 100 points", result)
	}
	if result.Question != "Name the largest moon of Saturn." {
		t.Errorf("result question = %q, want the question text", result.Question)
	}
	if _, err := registry.GetTeamByName(context.Background(), "Alpha"); err != nil {
		t.Errorf("team was not registered: %v", err)
	}
	if _, err := repo.GetAssignmentByQuestion(context.Background(), "Q1"); err != nil {
		t.Errorf("assignment was not created: %v", err)
	}
}

func TestAssignQuestionExistingTeam(t *testing.T) {
	repo := newFakeQuestionsRepo()
	registry := newFakeRegistry()
	registry.CreateTeam(context.Background(), "Alpha")
	repo.CreateQuestion(context.Background(), "Q1", "text")
	app := NewApp(repo, registry)

	_, err := app.AssignQuestion(context.Background(), "Alpha", "Q1")
	if err != ErrTeamExists {
		t.Errorf("AssignQuestion() error = %v, want ErrTeamExists", err)
	}
}

func TestAssignQuestionUnknownQuestion(t *testing.T) {
	app := NewApp(newFakeQuestionsRepo(), newFakeRegistry())

	_, err := app.AssignQuestion(context.Background(), "Alpha", "Q404")
	if err != ErrQuestionNotFound {
		t.Errorf("AssignQuestion() error = %v, want ErrQuestionNotFound", err)
	}
}

func TestAssignQuestionAlreadyAssigned(t *testing.T) {
	repo := newFakeQuestionsRepo()
	registry := newFakeRegistry()
	repo.CreateQuestion(context.Background(), "Q1", "text")
	app := NewApp(repo, registry)

	if _, err := app.AssignQuestion(context.Background(), "Alpha", "Q1"); err != nil {
		t.Fatalf("first AssignQuestion() error = %v", err)
	}

	_, err := app.AssignQuestion(context.Background(), "Beta", "Q1")
	if err != ErrQuestionAssigned {
		t.Errorf("second AssignQuestion() error = %v, want ErrQuestionAssigned", err)
	}
}

func TestCreateQuestionRejectsDuplicates(t *testing.T) {
	app := NewApp(newFakeQuestionsRepo(), newFakeRegistry())

	if _, err := app.CreateQuestion(context.Background(), "Q1", "text"); err != nil {
		t.Fatalf("CreateQuestion() error = %v", err)
	}
	_, err := app.CreateQuestion(context.Background(), "Q1", "other text")
	if err != ErrQuestionExists {
		t.Errorf("duplicate CreateQuestion() error = %v, want ErrQuestionExists", err)
	}
}
