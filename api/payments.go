package api

import (
	"net/http"
	"strconv"

	"github.com/Mehra2004/airline-booking/internal/domain"
	"github.com/Mehra2004/airline-booking/internal/service/payment"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service payment.PaymentUseCase
}

type makePaymentRequest struct {
	TicketID    int64   `json:"ticket_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Method      string  `json:"method" binding:"required"`
	PassengerID int64   `json:"passenger_id" binding:"required"`
}

type makePaymentResponse struct {
	PaymentID int64   `json:"payment_id"`
	TicketID  int64   `json:"ticket_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Status    string  `json:"status"`
	Reference string  `json:"reference"`
	Message   string  `json:"message"`
}

func NewPaymentHandler(service payment.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.pay)
}

func (h *PaymentHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.GET("", h.listAll)
	router.DELETE("/:id", h.delete)
}

func (h *PaymentHandler) pay(c *gin.Context) {
	var req makePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pay, err := h.service.MakePayment(c.Request.Context(), payment.MakePaymentInput{
		TicketID:    req.TicketID,
		Amount:      req.Amount,
		Method:      domain.PaymentMethod(req.Method),
		PassengerID: req.PassengerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, makePaymentResponse{
		PaymentID: pay.ID,
		TicketID:  pay.TicketID,
		Amount:    pay.Amount,
		Method:    string(pay.Method),
		Status:    string(pay.Status),
		Reference: pay.Reference,
		Message:   "Payment successful! Ticket confirmed.",
	})
}

func (h *PaymentHandler) listAll(c *gin.Context) {
	payments, err := h.service.AllPayments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) delete(c *gin.Context) {
	paymentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}
	rows, err := h.service.DeletePayment(c.Request.Context(), paymentID)
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": rows})
}
