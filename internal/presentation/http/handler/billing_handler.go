package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/StephenEkwedike/FunRobin/internal/application/service"
	"github.com/StephenEkwedike/FunRobin/internal/presentation/http/dto/response"
)

const maxWebhookBodyBytes = 1 << 20

// BillingHandler handles Stripe checkout and webhook HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// CreateCheckout starts a pro-subscription checkout for the authenticated user
func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	email := GetUserEmail(c)
	if email == "" {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	url, err := h.billingService.CreateCheckout(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checkout session created", gin.H{
		"checkout_url": url,
	})
}

// Webhook receives Stripe events. The body must be read raw because signature
// verification runs over the exact bytes Stripe sent.
func (h *BillingHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		response.BadRequest(c, "Could not read request body")
		return
	}

	signature := c.GetHeader("Stripe-Signature")

	if err := h.billingService.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Webhook processed", nil)
}
