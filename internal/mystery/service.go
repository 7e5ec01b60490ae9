package mystery

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/siammpl/arena/internal/httpjson"
	"github.com/siammpl/arena/internal/models"
)

// Service exposes the mystery purchase/quit endpoints and the admin CRUD
// endpoints over HTTP.
type Service struct {
	app *App
}

// NewService creates a new mystery HTTP service
func NewService(app *App) *Service {
	return &Service{app: app}
}

// QuestionResponse is the wire representation of a mystery question.
type QuestionResponse struct {
	ID             int    `json:"id"`
	Difficulty     string `json:"difficulty"`
	Question       string `json:"question"`
	QuestionStatus string `json:"question_status"`
}

func questionToResponse(q *models.MysteryQuestion) QuestionResponse {
	return QuestionResponse{
		ID:             q.ID,
		Difficulty:     q.Difficulty,
		Question:       q.Question,
		QuestionStatus: string(q.Status),
	}
}

// HandlePurchase handles PUT /mystery
func (s *Service) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	var req PurchaseRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	result, err := s.app.Purchase(r.Context(), req)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, result)
}

// HandleQuit handles DELETE /mystery/quit?team_name=...
func (s *Service) HandleQuit(w http.ResponseWriter, r *http.Request) {
	teamName := r.URL.Query().Get("team_name")
	if teamName == "" {
		httpjson.Error(w, http.StatusBadRequest, "team_name is required")
		return
	}

	result, err := s.app.Release(r.Context(), teamName)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	freed := "none"
	if result.MysteryID != nil {
		freed = strconv.Itoa(*result.MysteryID)
	}
	httpjson.Write(w, http.StatusOK, map[string]interface{}{
		"detail":     fmt.Sprintf("Team %s has quit mystery question with question id %s", result.TeamName, freed),
		"mystery_id": result.MysteryID,
	})
}

// writeEngineError maps engine failures onto HTTP status codes.
func (s *Service) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrTeamNotFound),
		errors.Is(err, ErrNoQuestionAvailable),
		errors.Is(err, ErrQuestionNotFound):
		httpjson.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadyAllocated):
		httpjson.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInsufficientPoints):
		httpjson.Error(w, http.StatusBadRequest, err.Error())
	default:
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
	}
}

// HandleCreateQuestion handles POST /admin/mystery-questions
func (s *Service) HandleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestionRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	q, err := s.app.CreateQuestion(r.Context(), req)
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, "failed to create mystery question")
		return
	}

	httpjson.Write(w, http.StatusOK, questionToResponse(q))
}

// HandleListQuestions handles GET /admin/mystery-questions
func (s *Service) HandleListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := s.app.ListQuestions(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, "failed to list mystery questions")
		return
	}

	resp := make([]QuestionResponse, len(questions))
	for i := range questions {
		resp[i] = questionToResponse(&questions[i])
	}
	httpjson.Write(w, http.StatusOK, resp)
}

// HandleUpdateQuestion handles PUT /admin/mystery-questions/{id}
func (s *Service) HandleUpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid mystery question id")
		return
	}

	var req UpdateQuestionRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	q, err := s.app.UpdateQuestion(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Mystery question not found")
			return
		}
		httpjson.Error(w, http.StatusInternalServerError, "failed to update mystery question")
		return
	}

	httpjson.Write(w, http.StatusOK, questionToResponse(q))
}

// HandleDeleteQuestion handles DELETE /admin/mystery-questions/{id}
func (s *Service) HandleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid mystery question id")
		return
	}

	if err := s.app.DeleteQuestion(r.Context(), id); err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Mystery question not found")
			return
		}
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete mystery question")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{"detail": "Mystery question deleted successfully"})
}

// RegisterRoutes registers the mystery routes with an HTTP mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("PUT /mystery", s.HandlePurchase)
	mux.HandleFunc("DELETE /mystery/quit", s.HandleQuit)
	mux.HandleFunc("POST /admin/mystery-questions", s.HandleCreateQuestion)
	mux.HandleFunc("GET /admin/mystery-questions", s.HandleListQuestions)
	mux.HandleFunc("PUT /admin/mystery-questions/{id}", s.HandleUpdateQuestion)
	mux.HandleFunc("DELETE /admin/mystery-questions/{id}", s.HandleDeleteQuestion)
}
