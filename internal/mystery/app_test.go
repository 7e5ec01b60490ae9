package mystery

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/siammpl/arena/internal/keylock"
	"github.com/siammpl/arena/internal/models"
	"github.com/siammpl/arena/internal/teams"
)

// fakeStore backs both the team reader and the allocation repository with a
// single in-memory state so purchase/release mutations stay consistent.
type fakeStore struct {
	mu        sync.Mutex
	teams     map[string]*models.Team
	questions map[int]*models.MysteryQuestion
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		teams:     make(map[string]*models.Team),
		questions: make(map[int]*models.MysteryQuestion),
	}
}

func (f *fakeStore) addTeam(name string, points int) *models.Team {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &models.Team{ID: len(f.teams) + 1, Name: name, Points: points}
	f.teams[name] = t
	return t
}

func (f *fakeStore) addQuestion(id int, difficulty, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.questions[id] = &models.MysteryQuestion{
		ID:         id,
		Difficulty: difficulty,
		Question:   text,
		Status:     models.QuestionStatusUnallocated,
	}
}

func (f *fakeStore) GetTeamByName(ctx context.Context, name string) (*models.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.teams[name]
	if !ok {
		return nil, teams.ErrNotFound
	}
	clone := *t
	return &clone, nil
}

func (f *fakeStore) PurchaseQuestion(ctx context.Context, teamID int, difficulty string, cost int) (*models.MysteryQuestion, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var claimed *models.MysteryQuestion
	for _, q := range f.questions {
		if q.Difficulty != difficulty || q.Status != models.QuestionStatusUnallocated {
			continue
		}
		if claimed == nil || q.ID < claimed.ID {
			claimed = q
		}
	}
	if claimed == nil {
		return nil, 0, ErrNoQuestionAvailable
	}

	for _, t := range f.teams {
		if t.ID != teamID {
			continue
		}
		if t.MysteryQuestionID != nil || t.Points < cost {
			return nil, 0, ErrAlreadyAllocated
		}
		claimed.Status = models.QuestionStatusAllocated
		id := claimed.ID
		t.MysteryQuestionID = &id
		t.Points -= cost
		result := *claimed
		return &result, t.Points, nil
	}

	return nil, 0, ErrAlreadyAllocated
}

func (f *fakeStore) ReleaseQuestion(ctx context.Context, teamID int, questionID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	q, ok := f.questions[questionID]
	if !ok {
		return ErrQuestionNotFound
	}
	q.Status = models.QuestionStatusUnallocated
	for _, t := range f.teams {
		if t.ID == teamID {
			t.MysteryQuestionID = nil
		}
	}
	return nil
}

func (f *fakeStore) GetQuestion(ctx context.Context, id int) (*models.MysteryQuestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.questions[id]
	if !ok {
		return nil, ErrQuestionNotFound
	}
	clone := *q
	return &clone, nil
}

func (f *fakeStore) ListQuestions(ctx context.Context) ([]models.MysteryQuestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.MysteryQuestion
	for _, q := range f.questions {
		out = append(out, *q)
	}
	return out, nil
}

func (f *fakeStore) CreateQuestion(ctx context.Context, difficulty, question string, status models.QuestionStatus) (*models.MysteryQuestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q := &models.MysteryQuestion{ID: len(f.questions) + 1, Difficulty: difficulty, Question: question, Status: status}
	f.questions[q.ID] = q
	clone := *q
	return &clone, nil
}

func (f *fakeStore) UpdateQuestion(ctx context.Context, id int, difficulty, question string, status models.QuestionStatus) (*models.MysteryQuestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.questions[id]
	if !ok {
		return nil, ErrQuestionNotFound
	}
	q.Difficulty, q.Question, q.Status = difficulty, question, status
	clone := *q
	return &clone, nil
}

func (f *fakeStore) DeleteQuestion(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.questions, id)
	return nil
}

// fakeNotifier records points_updated broadcasts.
type fakeNotifier struct {
	mu     sync.Mutex
	events []pointsEvent
}

type pointsEvent struct {
	Team   string
	Points int
}

func (f *fakeNotifier) PointsUpdated(team string, newPoints int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, pointsEvent{Team: team, Points: newPoints})
}

func (f *fakeNotifier) recorded() []pointsEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]pointsEvent(nil), f.events...)
}

func newTestApp(store *fakeStore, notifier *fakeNotifier) *App {
	return NewApp(store, store, notifier, keylock.New())
}

func TestPurchaseDebitsPointsAndAllocates(t *testing.T) {
	store := newFakeStore()
	store.addTeam("Alpha", 100)
	store.addQuestion(7, "easy", "What is the airspeed velocity of an unladen swallow?")
	notifier := &fakeNotifier{}
	app := newTestApp(store, notifier)

	result, err := app.Purchase(context.Background(), PurchaseRequest{TeamName: "Alpha", Difficulty: "easy", Cost: 30})
	if err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}

	want := &PurchaseResult{
		TeamName:        "Alpha",
		RemainingPoints: 70,
		MysteryID:       7,
		Difficulty:      "easy",
		Question:        "What is the airspeed velocity of an unladen swallow?",
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("Purchase() mismatch (-want +got):\n%s", diff)
	}

	events := notifier.recorded()
	if len(events) != 1 || events[0] != (pointsEvent{Team: "Alpha", Points: 70}) {
		t.Errorf("notifier events = %v, want one points_updated for Alpha with 70", events)
	}
}

func TestPurchasePicksLowestIDFirst(t *testing.T) {
	store := newFakeStore()
	store.addTeam("Alpha", 100)
	store.addQuestion(12, "hard", "second")
	store.addQuestion(3, "hard", "first")
	app := newTestApp(store, &fakeNotifier{})

	result, err := app.Purchase(context.Background(), PurchaseRequest{TeamName: "Alpha", Difficulty: "hard", Cost: 10})
	if err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}
	if result.MysteryID != 3 {
		t.Errorf("Purchase() allocated id %d, want lowest id 3", result.MysteryID)
	}
}

func TestPurchaseConflictWhenAlreadyHolding(t *testing.T) {
	store := newFakeStore()
	store.addTeam("Alpha", 100)
	store.addQuestion(1, "easy", "q1")
	store.addQuestion(2, "easy", "q2")
	app := newTestApp(store, &fakeNotifier{})

	if _, err := app.Purchase(context.Background(), PurchaseRequest{TeamName: "Alpha", Difficulty: "easy", Cost: 30}); err != nil {
		t.Fatalf("first Purchase() error = %v", err)
	}

	_, err := app.Purchase(context.Background(), PurchaseRequest{TeamName: "Alpha", Difficulty: "easy", Cost: 10})
	if err != ErrAlreadyAllocated {
		t.Errorf("second Purchase() error = %v, want ErrAlreadyAllocated", err)
	}
}

func TestPurchaseInsufficientPoints(t *testing.T) {
	store := newFakeStore()
	store.addTeam("Alpha", 20)
	store.addQuestion(1, "easy", "q1")
	notifier := &fakeNotifier{}
	app := newTestApp(store, notifier)

	_, err := app.Purchase(context.Background(), PurchaseRequest{TeamName: "Alpha", Difficulty: "easy", Cost: 30})
	if err != ErrInsufficientPoints {
		t.Fatalf("Purchase() error = %v, want ErrInsufficientPoints", err)
	}

	team, _ := store.GetTeamByName(context.Background(), "Alpha")
	if team.Points != 20 || team.MysteryQuestionID != nil {
		t.Errorf("rejected purchase mutated team: %+v", team)
	}
	if len(notifier.recorded()) != 0 {
		t.Errorf("rejected purchase must not broadcast")
	}
}

func TestPurchaseNoQuestionAvailable(t *testing.T) {
	store := newFakeStore()
	store.addTeam("Alpha", 100)
	store.addQuestion(1, "hard", "q1")
	app := newTestApp(store, &fakeNotifier{})

	_, err := app.Purchase(context.Background(), PurchaseRequest{TeamName: "Alpha", Difficulty: "easy", Cost: 10})
	if err != ErrNoQuestionAvailable {
		t.Errorf("Purchase() error = %v, want ErrNoQuestionAvailable", err)
	}
}

func TestPurchaseUnknownTeam(t *testing.T) {
	store := newFakeStore()
	app := newTestApp(store, &fakeNotifier{})

	_, err := app.Purchase(context.Background(), PurchaseRequest{TeamName: "Ghost", Difficulty: "easy", Cost: 10})
	if err != ErrTeamNotFound {
		t.Errorf("Purchase() error = %v, want ErrTeamNotFound", err)
	}
}

func TestConcurrentPurchasesOneWinner(t *testing.T) {
	store := newFakeStore()
	store.addTeam("Alpha", 100)
	store.addQuestion(1, "easy", "q1")
	store.addQuestion(2, "easy", "q2")
	app := newTestApp(store, &fakeNotifier{})

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := app.Purchase(context.Background(), PurchaseRequest{TeamName: "Alpha", Difficulty: "easy", Cost: 30})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var successes, conflicts int
	for err := range errs {
		switch err {
		case nil:
			successes++
		case ErrAlreadyAllocated:
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 || conflicts != 1 {
		t.Errorf("got %d successes and %d conflicts, want exactly 1 and 1", successes, conflicts)
	}

	team, _ := store.GetTeamByName(context.Background(), "Alpha")
	if team.Points != 70 {
		t.Errorf("team points = %d, want exactly one debit to 70", team.Points)
	}
}

func TestReleaseRoundTrip(t *testing.T) {
	store := newFakeStore()
	store.addTeam("Alpha", 100)
	store.addQuestion(5, "easy", "q5")
	app := newTestApp(store, &fakeNotifier{})

	if _, err := app.Purchase(context.Background(), PurchaseRequest{TeamName: "Alpha", Difficulty: "easy", Cost: 30}); err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}

	result, err := app.Release(context.Background(), "Alpha")
	if err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if result.MysteryID == nil || *result.MysteryID != 5 {
		t.Errorf("Release() freed id = %v, want 5", result.MysteryID)
	}

	team, _ := store.GetTeamByName(context.Background(), "Alpha")
	if team.MysteryQuestionID != nil {
		t.Errorf("team still holds question after release")
	}
	if team.Points != 70 {
		t.Errorf("release changed points to %d; no refund is given", team.Points)
	}
	question, _ := store.GetQuestion(context.Background(), 5)
	if question.Status != models.QuestionStatusUnallocated {
		t.Errorf("question status = %s, want UNALLOCATED", question.Status)
	}
}

func TestReleaseWithoutHeldQuestion(t *testing.T) {
	store := newFakeStore()
	store.addTeam("Alpha", 100)
	app := newTestApp(store, &fakeNotifier{})

	result, err := app.Release(context.Background(), "Alpha")
	if err != nil {
		t.Fatalf("Release() error = %v, want permissive no-op", err)
	}
	if result.MysteryID != nil {
		t.Errorf("Release() freed id = %v, want nil", result.MysteryID)
	}
}

func TestReleaseDanglingReference(t *testing.T) {
	store := newFakeStore()
	team := store.addTeam("Alpha", 100)
	missing := 99
	team.MysteryQuestionID = &missing
	app := newTestApp(store, &fakeNotifier{})

	_, err := app.Release(context.Background(), "Alpha")
	if err != ErrQuestionNotFound {
		t.Errorf("Release() error = %v, want ErrQuestionNotFound", err)
	}
}
