package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/middleware"
	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/models"
	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/service"
)

// MessageWriter defines the write-side operations used by MessageHandler.
type MessageWriter interface {
	CreateMessage(candidate models.Message) (*models.Message, error)
	UpdateMessage(id int64, newText string) (*models.Message, error)
	DeleteMessage(id int64) (*models.Message, error)
}

// MessageReader defines the read-side operations used by MessageHandler.
type MessageReader interface {
	GetAllMessages() ([]models.Message, error)
	GetMessageByID(id int64) (*models.Message, error)
	GetMessagesByAccount(accountID int64) ([]models.Message, error)
}

// MessageHandler handles message CRUD HTTP requests.
type MessageHandler struct {
	writes MessageWriter
	reads  MessageReader
}

type CreateMessageRequest struct {
	PostedBy      int64  `json:"posted_by" validate:"required,gt=0"`
	Text          string `json:"message_text" validate:"required,max=254"`
	PostedAtEpoch int64  `json:"time_posted_epoch"`
}

type UpdateMessageRequest struct {
	Text string `json:"message_text" validate:"required,max=254"`
}

func NewMessageHandler(writes MessageWriter, reads MessageReader) *MessageHandler {
	return &MessageHandler{writes: writes, reads: reads}
}

func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	message, err := h.writes.CreateMessage(models.Message{
		PostedBy:      req.PostedBy,
		Text:          req.Text,
		PostedAtEpoch: req.PostedAtEpoch,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidMessage) {
			middleware.RespondWithError(c, http.StatusBadRequest, "Invalid message")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create message")
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	messages, err := h.reads.GetAllMessages()
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) GetMessage(c *gin.Context) {
	id, ok := pathID(c, "message_id")
	if !ok {
		return
	}

	message, err := h.reads.GetMessageByID(id)
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to get message")
		return
	}
	if message == nil {
		middleware.RespondWithError(c, http.StatusNotFound, "Message not found")
		return
	}

	c.JSON(http.StatusOK, message)
}

func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	id, ok := pathID(c, "message_id")
	if !ok {
		return
	}

	deleted, err := h.writes.DeleteMessage(id)
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to delete message")
		return
	}
	if deleted == nil {
		middleware.RespondWithError(c, http.StatusNotFound, "Message not found")
		return
	}

	c.JSON(http.StatusOK, deleted)
}

func (h *MessageHandler) UpdateMessage(c *gin.Context) {
	id, ok := pathID(c, "message_id")
	if !ok {
		return
	}

	var req UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	updated, err := h.writes.UpdateMessage(id, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMessage) {
			middleware.RespondWithError(c, http.StatusBadRequest, "Invalid message")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to update message")
		return
	}
	if updated == nil {
		middleware.RespondWithError(c, http.StatusNotFound, "Message not found")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *MessageHandler) ListMessagesByAccount(c *gin.Context) {
	accountID, ok := pathID(c, "account_id")
	if !ok {
		return
	}

	messages, err := h.reads.GetMessagesByAccount(accountID)
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}

// pathID parses an integer path parameter, responding 400 itself on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}
