package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"taskbridge/internal/conversation"
	"taskbridge/internal/proposal"
	"taskbridge/internal/proposal/model"
	"taskbridge/internal/review"
	"taskbridge/internal/user"
	"taskbridge/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type registerReq struct {
	Username    string `json:"username" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
}

type displayNameReq struct {
	DisplayName string `json:"display_name" binding:"required"`
}

type openConversationReq struct {
	ProviderID     uuid.UUID `json:"provider_id"`
	InitialMessage *string   `json:"initial_message"`
}

type sendMessageReq struct {
	Content     string   `json:"content"`
	Attachments []string `json:"attachments"`
}

type termsReq struct {
	Rate      int64     `json:"rate"`
	RateType  string    `json:"rate_type"`
	StartTime time.Time `json:"start_time"`
	Notes     string    `json:"notes"`
}

func (r termsReq) terms() model.Terms {
	return model.Terms{
		Rate:      r.Rate,
		RateType:  model.RateType(r.RateType),
		StartTime: r.StartTime,
		Notes:     r.Notes,
	}
}

type reviewReq struct {
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return false
	}
	return true
}

// users

func (s *Server) register(c *gin.Context) {
	var req registerReq
	if !bind(c, &req) {
		return
	}
	dto, err := s.uc.Users.Register(c.Request.Context(), user.RegisterCommand{Username: req.Username, DisplayName: req.DisplayName})
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	token, err := utils.GenerateJWTToken(dto.ID, *s.cfg)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": dto, "token": token})
}

func (s *Server) getUserProfile(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dto, err := s.uc.Users.GetUserProfile(c.Request.Context(), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto})
}

func (s *Server) updateDisplayName(c *gin.Context) {
	var req displayNameReq
	if !bind(c, &req) {
		return
	}
	if err := s.uc.Users.UpdateDisplayName(c.Request.Context(), callerFrom(c), req.DisplayName); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// conversations

func (s *Server) listConversations(c *gin.Context) {
	out, err := s.uc.Conversations.ListConversations(c.Request.Context(), callerFrom(c))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func (s *Server) openConversation(c *gin.Context) {
	var req openConversationReq
	if !bind(c, &req) {
		return
	}
	id, err := s.uc.Conversations.OpenConversation(c.Request.Context(), callerFrom(c), conversation.OpenConversationCommand{
		ProviderID:     req.ProviderID,
		InitialMessage: req.InitialMessage,
	})
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"conversation_id": id})
}

func (s *Server) getConversation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dto, err := s.uc.Conversations.GetConversation(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto})
}

func (s *Server) markRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.uc.Conversations.MarkRead(c.Request.Context(), callerFrom(c), id); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listMessages(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	q := conversation.ListMessagesQuery{ConversationID: id}
	if v := c.Query("before_seq"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid before_seq"})
			return
		}
		q.BeforeSeq = n
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid limit"})
			return
		}
		q.Limit = n
	}

	out, err := s.uc.Conversations.ListMessages(c.Request.Context(), callerFrom(c), q)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func (s *Server) sendMessage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req sendMessageReq
	if !bind(c, &req) {
		return
	}
	msgID, err := s.uc.Conversations.SendMessage(c.Request.Context(), callerFrom(c), conversation.SendMessageCommand{
		ConversationID: id,
		Content:        req.Content,
		Attachments:    req.Attachments,
	})
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message_id": msgID})
}

// proposals

func (s *Server) listProposals(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := s.uc.Proposals.ListProposals(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func (s *Server) sendProposal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req termsReq
	if !bind(c, &req) {
		return
	}
	proposalID, err := s.uc.Proposals.SendProposal(c.Request.Context(), callerFrom(c), proposal.SendProposalCommand{
		ConversationID: id,
		Terms:          req.terms(),
	})
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"proposal_id": proposalID})
}

func (s *Server) getProposal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dto, err := s.uc.Proposals.GetProposal(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto})
}

func (s *Server) acceptProposal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	jobID, err := s.uc.Proposals.AcceptProposal(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job_id": jobID})
}

func (s *Server) declineProposal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.uc.Proposals.DeclineProposal(c.Request.Context(), callerFrom(c), id); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) counterProposal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req termsReq
	if !bind(c, &req) {
		return
	}
	counterID, err := s.uc.Proposals.CounterProposal(c.Request.Context(), callerFrom(c), proposal.CounterProposalCommand{
		ProposalID: id,
		Terms:      req.terms(),
	})
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"proposal_id": counterID})
}

// jobs

func (s *Server) getJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dto, err := s.uc.Jobs.GetJob(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto})
}

func (s *Server) startJob(c *gin.Context) {
	s.jobMove(c, s.uc.Jobs.StartJob)
}

func (s *Server) completeJob(c *gin.Context) {
	s.jobMove(c, s.uc.Jobs.CompleteJob)
}

func (s *Server) cancelJob(c *gin.Context) {
	s.jobMove(c, s.uc.Jobs.CancelJob)
}

func (s *Server) jobMove(c *gin.Context, move func(ctx context.Context, caller *user.Caller, jobID uuid.UUID) error) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := move(c.Request.Context(), callerFrom(c), id); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// reviews

func (s *Server) listJobReviews(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := s.uc.Reviews.ListJobReviews(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func (s *Server) submitReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reviewReq
	if !bind(c, &req) {
		return
	}
	reviewID, err := s.uc.Reviews.SubmitReview(c.Request.Context(), callerFrom(c), review.SubmitReviewCommand{
		JobID:  id,
		Rating: req.Rating,
		Text:   req.Text,
	})
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review_id": reviewID})
}
