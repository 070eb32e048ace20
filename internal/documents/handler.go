package documents

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"studybuddy-backend/internal/extract"
	"studybuddy-backend/internal/llm"
	"studybuddy-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/upload", h.upload)
	rg.GET("/documents", h.list)
	rg.POST("/documents/:id/summary", h.summary)
	rg.POST("/documents/:id/flashcards", h.flashcards)
	rg.POST("/documents/:id/chat", h.chat)
	rg.DELETE("/documents/:id", h.delete)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "upload document failed: file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "upload document failed: unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "upload document failed: unable to read file", nil)
		return
	}

	doc, err := h.Svc.Ingest(c.Request.Context(), data, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		h.fail(c, "upload document", err)
		return
	}

	c.Set("documentId", doc.ID)
	respond.JSON(c, http.StatusCreated, toUploadResponse(doc))
}

func (h *Handler) list(c *gin.Context) {
	docs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list documents", err)
		return
	}

	resp := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, toResponse(doc))
	}
	respond.OK(c, resp)
}

func (h *Handler) summary(c *gin.Context) {
	id := c.Param("id")
	c.Set("documentId", id)

	summary, err := h.Svc.Summary(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "generate summary", err)
		return
	}
	respond.OK(c, gin.H{"summary": summary})
}

func (h *Handler) flashcards(c *gin.Context) {
	id := c.Param("id")
	c.Set("documentId", id)

	flashcards, err := h.Svc.Flashcards(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "generate flashcards", err)
		return
	}
	respond.OK(c, gin.H{"flashcards": flashcards})
}

type chatRequest struct {
	Question string `json:"question"`
}

func (h *Handler) chat(c *gin.Context) {
	id := c.Param("id")
	c.Set("documentId", id)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "answer question failed: invalid request body", nil)
		return
	}

	answer, err := h.Svc.Answer(c.Request.Context(), id, req.Question)
	if err != nil {
		h.fail(c, "answer question", err)
		return
	}
	respond.OK(c, gin.H{"answer": answer})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	c.Set("documentId", id)

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete document", err)
		return
	}
	respond.OK(c, gin.H{"message": "Document deleted successfully"})
}

// fail maps the error taxonomy to distinct statuses: unknown id 404, bad
// input 400, upstream generation failure 502, anything else 500.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	msg := op + " failed: " + err.Error()
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", msg, nil)
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, extract.ErrUnsupportedMediaType),
		errors.Is(err, extract.ErrExtractionFailed):
		respond.Error(c, http.StatusBadRequest, "validation_error", msg, nil)
	case errors.Is(err, llm.ErrGenerationFailed):
		respond.Error(c, http.StatusBadGateway, "generation_failed", msg, nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", msg, nil)
	}
}
