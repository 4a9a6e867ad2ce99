package handlers

import (
	"fmt"
	"net/http"

	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/SAP-F-2025/quiz-service/internal/services"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	BaseHandler
	quizService         services.QuizService
	importExportService services.ImportExportService
}

func NewQuizHandler(
	quizService services.QuizService,
	importExportService services.ImportExportService,
	logger utils.Logger,
) *QuizHandler {
	return &QuizHandler{
		BaseHandler:         NewBaseHandler(logger),
		quizService:         quizService,
		importExportService: importExportService,
	}
}

// ListQuizzes returns summaries of all quizzes, newest first
// @Router /api/quizzes [get]
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	summaries, err := h.quizService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// GetQuiz returns the public projection, or the full quiz for admins
// @Router /api/quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	if isAdmin(c) {
		h.LogRequest(c, "Getting full quiz", "quiz_id", id)
		quiz, err := h.quizService.Get(c.Request.Context(), id)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, quiz)
		return
	}

	quiz, err := h.quizService.GetPublic(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// CreateQuiz validates and stores a new quiz
// @Router /api/quizzes [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req models.QuizInput
	if !h.bindJSON(c, &req, "Invalid request payload") {
		return
	}

	h.LogRequest(c, "Creating quiz", "questions", len(req.Questions))

	quiz, err := h.quizService.Create(c.Request.Context(), &req, actor(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

// UpdateQuiz replaces title and questions of an existing quiz
// @Router /api/quizzes/{id} [put]
func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	var req models.QuizInput
	if !h.bindJSON(c, &req, "Invalid request payload") {
		return
	}

	h.LogRequest(c, "Updating quiz", "quiz_id", id, "questions", len(req.Questions))

	quiz, err := h.quizService.Update(c.Request.Context(), id, &req, actor(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// DeleteQuiz removes a quiz and its questions
// @Router /api/quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	h.LogRequest(c, "Deleting quiz", "quiz_id", id)

	if err := h.quizService.Delete(c.Request.Context(), id, actor(c)); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Quiz removed"})
}

// SubmitQuiz grades a taker's answers
// @Router /api/quizzes/{id}/submit [post]
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	var req models.SubmissionRequest
	if !h.bindJSON(c, &req, "Please provide answers") {
		return
	}

	report, err := h.quizService.Submit(c.Request.Context(), id, req.Answers)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExportQuiz downloads a quiz with its answers as xlsx or csv
// @Router /api/quizzes/{id}/export [get]
func (h *QuizHandler) ExportQuiz(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	file, err := h.importExportService.ExportQuiz(c.Request.Context(), id, c.Query("format"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// ImportQuiz creates a quiz from an uploaded xlsx or csv file
// @Router /api/quizzes/import [post]
func (h *QuizHandler) ImportQuiz(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Please upload a file", err)
		return
	}

	file, err := header.Open()
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Unable to read uploaded file", err)
		return
	}
	defer file.Close()

	h.LogRequest(c, "Importing quiz", "filename", header.Filename, "size", header.Size)

	quiz, err := h.importExportService.ImportQuiz(c.Request.Context(), file, header.Filename, c.PostForm("title"), actor(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, quiz)
}
