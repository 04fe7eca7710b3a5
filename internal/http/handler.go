package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/printhub-quotes/internal/http/middleware"
	"github.com/nurpe/printhub-quotes/internal/model"
	"github.com/nurpe/printhub-quotes/internal/service"
)

type Handler struct {
	requests   *service.QuoteRequestService
	quotations *service.QuotationService
	messages   *service.MessageService
	identity   *service.IdentityService
	log        zerolog.Logger
}

func NewHandler(
	requests *service.QuoteRequestService,
	quotations *service.QuotationService,
	messages *service.MessageService,
	identity *service.IdentityService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		requests:   requests,
		quotations: quotations,
		messages:   messages,
		identity:   identity,
		log:        log,
	}
}

func (h *Handler) Register(router *gin.Engine, requireAuth, optionalAuth gin.HandlerFunc) {
	public := router.Group("/")
	public.Use(optionalAuth)
	public.POST("/quote-requests", h.submitQuoteRequest)
	public.GET("/quote-requests/:id", h.getQuoteRequest)
	public.POST("/quote-requests/:id/messages", h.sendMessage)
	public.GET("/quote-requests/:id/messages", h.getMessagesForQuoteRequest)
	public.GET("/quotations/:id", h.getQuotation)
	public.POST("/quotations/:id/accept", h.acceptQuotation)
	public.POST("/quotations/:id/decline", h.declineQuotation)
	public.GET("/quotations/:id/pdf", h.getQuotationPDF)
	public.GET("/me/role", h.getCallerRole)
	public.GET("/me/is-admin", h.isCallerAdmin)

	protected := router.Group("/")
	protected.Use(requireAuth)
	protected.GET("/quote-requests", h.getAllQuoteRequests)
	protected.GET("/exports/quote-requests", h.exportQuoteRequests)
	protected.PATCH("/quote-requests/:id/status", h.updateQuoteRequestStatus)
	protected.POST("/quotations", h.createQuotation)
	protected.GET("/quotations", h.getAllQuotations)
	protected.GET("/messages", h.getAllMessages)
	protected.GET("/me/profile", h.getCallerProfile)
	protected.PUT("/me/profile", h.saveCallerProfile)
	protected.GET("/users/:id/profile", h.getUserProfile)
	protected.POST("/users/:id/role", h.assignUserRole)
}

type submitQuoteRequestRequest struct {
	CustomerName   string `json:"customerName"`
	CustomerEmail  string `json:"customerEmail"`
	CustomerPhone  string `json:"customerPhone"`
	ServicesNeeded string `json:"servicesNeeded"`
	DeadlineDate   int64  `json:"deadlineDate"`
	Message        string `json:"message"`
}

func (h *Handler) submitQuoteRequest(c *gin.Context) {
	var req submitQuoteRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.requests.Submit(c.Request.Context(), service.SubmitQuoteRequestInput{
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		ServicesNeeded: req.ServicesNeeded,
		DeadlineDate:   fromEpochNanos(req.DeadlineDate),
		Message:        req.Message,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) getQuoteRequest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	request, err := h.requests.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if request == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, toQuoteRequestResponse(*request))
}

func (h *Handler) getAllQuoteRequests(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	requests, err := h.requests.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	out := make([]quoteRequestResponse, 0, len(requests))
	for _, request := range requests {
		out = append(out, toQuoteRequestResponse(request))
	}
	c.JSON(http.StatusOK, out)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) updateQuoteRequestStatus(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status, ok := model.ParseRequestStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	if err := h.requests.UpdateStatus(c.Request.Context(), principal, id, status); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) exportQuoteRequests(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	result, err := h.requests.ExportRegister(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Content)
}

type createQuotationRequest struct {
	QuoteRequestID int64  `json:"quoteRequestId" binding:"required"`
	PriceAmount    *int64 `json:"priceAmount" binding:"required"`
	Description    string `json:"description"`
	ValidityDate   int64  `json:"validityDate"`
}

func (h *Handler) createQuotation(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	var req createQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.quotations.Create(c.Request.Context(), principal, service.CreateQuotationInput{
		QuoteRequestID: req.QuoteRequestID,
		PriceAmount:    *req.PriceAmount,
		Description:    req.Description,
		ValidityDate:   fromEpochNanos(req.ValidityDate),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) getQuotation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	quotation, err := h.quotations.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if quotation == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, toQuotationResponse(*quotation))
}

func (h *Handler) getAllQuotations(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	quotations, err := h.quotations.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	out := make([]quotationResponse, 0, len(quotations))
	for _, quotation := range quotations {
		out = append(out, toQuotationResponse(quotation))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) acceptQuotation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.quotations.Accept(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) declineQuotation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.quotations.Decline(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) getQuotationPDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	result, err := h.quotations.RenderPDF(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

type sendMessageRequest struct {
	SenderType string `json:"senderType" binding:"required"`
	Content    string `json:"content"`
}

func (h *Handler) sendMessage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	senderType, ok := model.ParseSenderType(req.SenderType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sender type"})
		return
	}

	messageID, err := h.messages.Send(c.Request.Context(), id, senderType, req.Content)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": messageID})
}

func (h *Handler) getMessagesForQuoteRequest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	messages, err := h.messages.ListForRequest(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	out := make([]messageResponse, 0, len(messages))
	for _, message := range messages {
		out = append(out, toMessageResponse(message))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) getAllMessages(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	messages, err := h.messages.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	out := make([]messageResponse, 0, len(messages))
	for _, message := range messages {
		out = append(out, toMessageResponse(message))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) getCallerRole(c *gin.Context) {
	role, err := h.identity.RoleOf(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}

func (h *Handler) isCallerAdmin(c *gin.Context) {
	isAdmin, err := h.identity.IsAdmin(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

func (h *Handler) getCallerProfile(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	profile, err := h.identity.CallerProfile(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if profile == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": profile.Name})
}

type saveProfileRequest struct {
	Name string `json:"name"`
}

func (h *Handler) saveCallerProfile(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	var req saveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.identity.SaveCallerProfile(c.Request.Context(), principal, req.Name); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) getUserProfile(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	profile, err := h.identity.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if profile == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": profile.Name})
}

type assignRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *Handler) assignUserRole(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	target, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	var req assignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role, ok := model.ParseRole(req.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	if err := h.identity.AssignRole(c.Request.Context(), principal, target, role); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func fromEpochNanos(nanos int64) time.Time {
	if nanos == 0 {
		return time.Time{}
	}
	return time.Unix(0, nanos).UTC()
}

func toEpochNanos(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

type quoteRequestResponse struct {
	ID             int64  `json:"id"`
	CustomerName   string `json:"customerName"`
	CustomerEmail  string `json:"customerEmail"`
	CustomerPhone  string `json:"customerPhone"`
	ServicesNeeded string `json:"servicesNeeded"`
	DeadlineDate   int64  `json:"deadlineDate"`
	Message        string `json:"message"`
	Status         string `json:"status"`
	Timestamp      int64  `json:"timestamp"`
}

func toQuoteRequestResponse(request model.QuoteRequest) quoteRequestResponse {
	return quoteRequestResponse{
		ID:             request.ID,
		CustomerName:   request.CustomerName,
		CustomerEmail:  request.CustomerEmail,
		CustomerPhone:  request.CustomerPhone,
		ServicesNeeded: request.ServicesNeeded,
		DeadlineDate:   toEpochNanos(request.DeadlineDate),
		Message:        request.Message,
		Status:         string(request.Status),
		Timestamp:      toEpochNanos(request.CreatedAt),
	}
}

type quotationResponse struct {
	ID             int64  `json:"id"`
	QuoteRequestID int64  `json:"quoteRequestId"`
	PriceAmount    int64  `json:"priceAmount"`
	Description    string `json:"description"`
	ValidityDate   int64  `json:"validityDate"`
	Status         string `json:"status"`
	Timestamp      int64  `json:"timestamp"`
}

func toQuotationResponse(quotation model.Quotation) quotationResponse {
	return quotationResponse{
		ID:             quotation.ID,
		QuoteRequestID: quotation.QuoteRequestID,
		PriceAmount:    quotation.PriceAmount,
		Description:    quotation.Description,
		ValidityDate:   toEpochNanos(quotation.ValidityDate),
		Status:         string(quotation.Status),
		Timestamp:      toEpochNanos(quotation.CreatedAt),
	}
}

type messageResponse struct {
	ID             int64  `json:"id"`
	QuoteRequestID int64  `json:"quoteRequestId"`
	SenderType     string `json:"senderType"`
	Content        string `json:"content"`
	Timestamp      int64  `json:"timestamp"`
}

func toMessageResponse(message model.Message) messageResponse {
	return messageResponse{
		ID:             message.ID,
		QuoteRequestID: message.QuoteRequestID,
		SenderType:     string(message.SenderType),
		Content:        message.Content,
		Timestamp:      toEpochNanos(message.CreatedAt),
	}
}
