package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tutorhub/backend/internal/app/models/dto"
	"github.com/tutorhub/backend/internal/app/services"
	"github.com/tutorhub/backend/internal/middleware"
)

// MessageController handles direct messaging
type MessageController struct {
	messageService *services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService *services.MessageService) *MessageController {
	return &MessageController{messageService: messageService}
}

// SendMessage sends a direct message
// @Summary Send a message
// @Description Sends a direct message to another user.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=dto.MessageResponse} "Message sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or self-messaging"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Receiver not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages [post]
func (c *MessageController) SendMessage(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !bindJSON(ctx, &req) {
		return
	}

	message, err := c.messageService.SendMessage(ctx.Request.Context(), identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(message))
}

// ListConversations lists the caller's conversations
// @Summary List conversations
// @Description Lists the caller's conversations, one entry per counterpart with the latest message, newest first. Counterparts whose account no longer exists are omitted.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ConversationResponse} "Conversations retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/conversations [get]
func (c *MessageController) ListConversations(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}

	conversations, err := c.messageService.ListConversations(ctx.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(conversations))
}

// GetThread returns the thread with one counterpart
// @Summary Get a thread
// @Description Returns the full message thread with a counterpart, oldest first, and marks their messages as read.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param userId path int true "Counterpart user ID" minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.MessageResponse} "Thread retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Counterpart not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/{userId} [get]
func (c *MessageController) GetThread(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}
	counterpartID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	messages, err := c.messageService.GetThread(ctx.Request.Context(), identity, counterpartID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(messages))
}

// CountUnread counts the caller's unread messages
// @Summary Count unread messages
// @Description Returns how many unread messages the caller has.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=int64} "Unread count"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/unread [get]
func (c *MessageController) CountUnread(ctx *gin.Context) {
	identity, ok := mustIdentity(ctx)
	if !ok {
		return
	}

	count, err := c.messageService.CountUnread(ctx.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"unread": count}))
}
