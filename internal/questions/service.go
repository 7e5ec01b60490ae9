package questions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/siammpl/arena/internal/httpjson"
	"github.com/siammpl/arena/internal/models"
)

// Service exposes the question assignment and admin question endpoints.
type Service struct {
	app *App
}

// NewService creates a new questions HTTP service
func NewService(app *App) *Service {
	return &Service{app: app}
}

// AssignRequest registers a team and hands it a question by code.
type AssignRequest struct {
	TeamName     string `json:"teamname"`
	QuestionCode string `json:"question_code"`
}

// QuestionRequest is the admin payload for a new regular question.
type QuestionRequest struct {
	ID       string `json:"id"`
	Question string `json:"question"`
}

// QuestionResponse is the wire representation of a regular question.
type QuestionResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
}

func questionToResponse(q *models.Question) QuestionResponse {
	return QuestionResponse{ID: q.ID, Question: q.Question}
}

// HandleAssign handles POST /teamquestions
func (s *Service) HandleAssign(w http.ResponseWriter, r *http.Request) {
	var req AssignRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	result, err := s.app.AssignQuestion(r.Context(), req.TeamName, req.QuestionCode)
	if err != nil {
		switch {
		case errors.Is(err, ErrTeamExists), errors.Is(err, ErrQuestionAssigned):
			httpjson.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrQuestionNotFound):
			httpjson.Error(w, http.StatusNotFound, err.Error())
		default:
			httpjson.Error(w, http.StatusInternalServerError, "failed to assign question")
		}
		return
	}

	httpjson.Write(w, http.StatusOK, result)
}

// HandleCreateQuestion handles POST /admin/questions
func (s *Service) HandleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuestionRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	question, err := s.app.CreateQuestion(r.Context(), req.ID, req.Question)
	if err != nil {
		if errors.Is(err, ErrQuestionExists) {
			httpjson.Error(w, http.StatusBadRequest, "Question ID already exists.")
			return
		}
		httpjson.Error(w, http.StatusInternalServerError, "failed to create question")
		return
	}

	httpjson.Write(w, http.StatusOK, questionToResponse(question))
}

// HandleListQuestions handles GET /admin/questions
func (s *Service) HandleListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := s.app.ListQuestions(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, "failed to list questions")
		return
	}

	resp := make([]QuestionResponse, len(questions))
	for i := range questions {
		resp[i] = questionToResponse(&questions[i])
	}
	httpjson.Write(w, http.StatusOK, resp)
}

// HandleDeleteAssignment handles DELETE /admin/teams_question/{id}
func (s *Service) HandleDeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid mapping id")
		return
	}

	if err := s.app.DeleteAssignment(r.Context(), id); err != nil {
		if errors.Is(err, ErrMappingNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Team question mapping not found")
			return
		}
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete mapping")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{"detail": "The mapped question is deleted successfully"})
}

// RegisterRoutes registers the question routes with an HTTP mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /teamquestions", s.HandleAssign)
	mux.HandleFunc("POST /admin/questions", s.HandleCreateQuestion)
	mux.HandleFunc("GET /admin/questions", s.HandleListQuestions)
	mux.HandleFunc("DELETE /admin/teams_question/{id}", s.HandleDeleteAssignment)
}
