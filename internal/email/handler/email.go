package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/DSI-OMS-RPA/email-notifier/internal/email/service"
	"github.com/DSI-OMS-RPA/email-notifier/internal/email/types"
	"github.com/DSI-OMS-RPA/email-notifier/internal/pkg/response"
)

// NotifyHandler exposes the notification entry points over HTTP.
type NotifyHandler struct {
	svc *service.Service
}

// NewNotifyHandler creates the notification handler.
func NewNotifyHandler(svc *service.Service) *NotifyHandler {
	return &NotifyHandler{svc: svc}
}

// RegisterRoutes mounts the notification endpoints on the given group.
func (h *NotifyHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/notifications/send", h.Send)
	group.POST("/notifications/alert", h.SendAlert)
}

// SendRequest is a plain notification request.
type SendRequest struct {
	To          []string          `json:"to" binding:"required,min=1,dive,email"`
	Cc          []string          `json:"cc" binding:"omitempty,dive,email"`
	Bcc         []string          `json:"bcc" binding:"omitempty,dive,email"`
	From        string            `json:"from" binding:"omitempty,email"`
	Subject     string            `json:"subject" binding:"required,min=1,max=200"`
	Body        string            `json:"body" binding:"required,min=1"`
	IsHTML      bool              `json:"is_html"`
	Attachments []string          `json:"attachments"`
	Headers     map[string]string `json:"headers"`
}

// Send delivers a plain notification and returns its receipt.
func (h *NotifyHandler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	receipt, err := h.svc.Deliver(c.Request.Context(), &types.Email{
		To:          req.To,
		Cc:          req.Cc,
		Bcc:         req.Bcc,
		From:        req.From,
		Subject:     req.Subject,
		Body:        req.Body,
		IsHTML:      req.IsHTML,
		Attachments: req.Attachments,
		Headers:     req.Headers,
	})
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, receipt)
}

// AlertRequest is a templated report notification request.
type AlertRequest struct {
	Report      types.ReportConfig `json:"report" binding:"required"`
	Alert       types.Alert        `json:"alert" binding:"required"`
	Attachments []string           `json:"attachments"`
}

// SendAlert renders the alert payload and delivers the report.
func (h *NotifyHandler) SendAlert(c *gin.Context) {
	var req AlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	if len(req.Report.To) == 0 {
		response.BadRequest(c, "report.to must contain at least one recipient")
		return
	}

	receipt, err := h.svc.DeliverAlert(c.Request.Context(), &req.Report, &req.Alert, req.Attachments...)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, receipt)
}
