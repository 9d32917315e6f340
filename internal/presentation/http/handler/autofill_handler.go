package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/StephenEkwedike/FunRobin/internal/application/service"
	"github.com/StephenEkwedike/FunRobin/internal/presentation/http/dto/response"
)

// Order payloads are a handful of fields; anything near this limit is abuse.
const maxAutofillPayloadBytes = 64 * 1024

// AutofillHandler handles the one-time code exchange between the web app and
// the browser extension
type AutofillHandler struct {
	autofillService *service.AutofillService
}

// NewAutofillHandler creates a new autofill handler
func NewAutofillHandler(autofillService *service.AutofillService) *AutofillHandler {
	return &AutofillHandler{autofillService: autofillService}
}

// Create handles autofill code creation
// @Summary Create autofill code
// @Description Store an order payload and return a short one-time code
// @Tags autofill
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Failure 402 {object} response.APIResponse
// @Router /autofill/create [post]
func (h *AutofillHandler) Create(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxAutofillPayloadBytes+1))
	if err != nil {
		response.BadRequest(c, "Could not read request body")
		return
	}
	if len(body) > maxAutofillPayloadBytes {
		response.BadRequest(c, "Payload too large")
		return
	}

	code, expiresAt, err := h.autofillService.Issue(c.Request.Context(), json.RawMessage(body))
	if err != nil {
		response.Error(c, err)
		return
	}

	// Flat body, no envelope: the web app reads {code} directly
	c.JSON(http.StatusOK, gin.H{
		"code":       code,
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
		"ttl_sec":    int(h.autofillService.CodeTTL().Seconds()),
	})
}

// Get handles autofill code redemption. On success the stored payload is
// written back raw, byte for byte, rather than wrapped in the API envelope:
// the extension must receive exactly what the web app submitted.
// @Summary Redeem autofill code
// @Description Exchange a one-time code for its stored order payload
// @Tags autofill
// @Produce json
// @Param code query string true "One-time code"
// @Success 200 {object} object
// @Failure 404 {object} response.APIResponse
// @Router /autofill/get [get]
func (h *AutofillHandler) Get(c *gin.Context) {
	code := c.Query("code")

	payload, err := h.autofillService.Redeem(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}
