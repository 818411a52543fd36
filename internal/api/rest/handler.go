package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/artledger/content-registry/internal/api/middleware"
	"github.com/artledger/content-registry/internal/domain"
	"github.com/artledger/content-registry/internal/registry"
	"github.com/artledger/content-registry/internal/roles"
	"github.com/artledger/content-registry/internal/settlement"
	"github.com/artledger/content-registry/internal/store"
	"github.com/artledger/content-registry/internal/store/schema"
	internalTypes "github.com/artledger/content-registry/internal/types"
)

// webhookSecretBytes sizes the random webhook signing secret
const webhookSecretBytes = 32

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// RegisterContent registers new content owned by the caller
	// POST /api/v1/contents
	RegisterContent(c *gin.Context)

	// GetContent retrieves a single content record by id
	// GET /api/v1/contents/:id
	GetContent(c *gin.Context)

	// ListContents lists the content ids owned by a principal
	// GET /api/v1/contents?owner=<principal>
	ListContents(c *gin.Context)

	// UpdateContent mutates the caller's content record
	// PATCH /api/v1/contents/:id
	UpdateContent(c *gin.Context)

	// GrantAccess adds a principal to a record's authorized set
	// POST /api/v1/contents/:id/access
	GrantAccess(c *gin.Context)

	// RevokeAccess removes a principal from a record's authorized set
	// DELETE /api/v1/contents/:id/access/:principal
	RevokeAccess(c *gin.Context)

	// CheckAccess reports whether a principal may view a record
	// GET /api/v1/contents/:id/access/:principal
	CheckAccess(c *gin.Context)

	// PurchaseAccess settles a paid access purchase for the caller
	// POST /api/v1/contents/:id/purchase
	PurchaseAccess(c *gin.Context)

	// CheckAITraining reports whether the owner permits AI training use
	// GET /api/v1/contents/:id/ai-training
	CheckAITraining(c *gin.Context)

	// ReportDispute marks a record disputed on behalf of the caller
	// POST /api/v1/contents/:id/dispute
	ReportDispute(c *gin.Context)

	// ResolveDispute closes a dispute (admin only)
	// POST /api/v1/contents/:id/dispute/resolve
	ResolveDispute(c *gin.Context)

	// CheckDispute reports whether a record has an unresolved dispute
	// GET /api/v1/contents/:id/dispute
	CheckDispute(c *gin.Context)

	// GetFeeConfig returns the current platform fee configuration
	// GET /api/v1/fees
	GetFeeConfig(c *gin.Context)

	// SetFeeBasisPoints updates the platform fee (admin only)
	// PUT /api/v1/fees/basis-points
	SetFeeBasisPoints(c *gin.Context)

	// SetFeeRecipient updates the platform fee recipient (admin only)
	// PUT /api/v1/fees/recipient
	SetFeeRecipient(c *gin.Context)

	// AssignRole assigns a role to a principal (admin only)
	// PUT /api/v1/roles/:principal
	AssignRole(c *gin.Context)

	// GetAccount retrieves a ledger account (admin only)
	// GET /api/v1/accounts/:principal
	GetAccount(c *gin.Context)

	// CreditAccount adds funds to a ledger account (admin only)
	// POST /api/v1/accounts/:principal/credit
	CreditAccount(c *gin.Context)

	// SetAccountFrozen freezes or unfreezes a ledger account (admin only)
	// PUT /api/v1/accounts/:principal/frozen
	SetAccountFrozen(c *gin.Context)

	// CreateWebhookClient creates a new webhook client (requires authentication via API key)
	// POST /api/v1/webhooks/clients
	CreateWebhookClient(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug     bool
	registry  registry.Registry
	settler   settlement.Settler
	authority roles.Authority
	store     store.Store
}

// NewHandler creates a new REST API handler over the registry services
func NewHandler(
	debug bool,
	reg registry.Registry,
	settler settlement.Settler,
	authority roles.Authority,
	st store.Store,
) Handler {
	return &handler{
		debug:     debug,
		registry:  reg,
		settler:   settler,
		authority: authority,
		store:     st,
	}
}

// contentID parses the :id path parameter. A false return means a response
// has already been written.
func contentID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid content id")
		return 0, false
	}
	return id, true
}

// pathPrincipal parses the :principal path parameter
func pathPrincipal(c *gin.Context) (domain.Principal, bool) {
	principal, err := domain.NewPrincipal(c.Param("principal"))
	if err != nil {
		respondBadRequest(c, "Invalid principal address")
		return domain.ZeroPrincipal, false
	}
	return principal, true
}

// caller resolves the authenticated caller from the request context
func caller(c *gin.Context) (domain.Principal, bool) {
	principal, err := middleware.CallerPrincipal(c)
	if err != nil {
		respondBadRequest(c, "Invalid caller principal", err.Error())
		return domain.ZeroPrincipal, false
	}
	return principal, true
}

// requireAdmin checks the caller against the role authority. A false return
// means a response has already been written.
func (h *handler) requireAdmin(c *gin.Context, principal domain.Principal) bool {
	isAdmin, err := h.authority.IsAdmin(c.Request.Context(), principal)
	if err != nil {
		respondInternalError(c, err, "Failed to check caller role")
		return false
	}
	if !isAdmin {
		respondDomainError(c, domain.ErrNotAdmin)
		return false
	}
	return true
}

// RegisterContent registers new content owned by the caller
func (h *handler) RegisterContent(c *gin.Context) {
	callerPrincipal, ok := caller(c)
	if !ok {
		return
	}

	var req RegisterContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	record, err := h.registry.Register(c.Request.Context(), callerPrincipal, registry.RegisterInput{
		Fingerprint:         req.Fingerprint,
		MetadataFingerprint: req.MetadataFingerprint,
		Category:            domain.Category(req.Category),
		Price:               req.Price,
		AITrainingAllowed:   req.AITrainingAllowed,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewContentResponse(record))
}

// GetContent retrieves a single content record by id
func (h *handler) GetContent(c *gin.Context) {
	id, ok := contentID(c)
	if !ok {
		return
	}

	record, err := h.registry.Get(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewContentResponse(record))
}

// ListContents lists the content ids owned by a principal
func (h *handler) ListContents(c *gin.Context) {
	owner, err := domain.NewPrincipal(c.Query("owner"))
	if err != nil {
		respondBadRequest(c, "Query parameter owner must be a valid principal")
		return
	}

	ids, err := h.registry.ListOwned(c.Request.Context(), owner)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListOwnedResponse{
		Owner:      owner.String(),
		ContentIDs: ids,
	})
}

// UpdateContent mutates the caller's content record
func (h *handler) UpdateContent(c *gin.Context) {
	callerPrincipal, ok := caller(c)
	if !ok {
		return
	}
	id, ok := contentID(c)
	if !ok {
		return
	}

	var req UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	err := h.registry.Update(c.Request.Context(), callerPrincipal, id, registry.UpdateInput{
		MetadataFingerprint: req.MetadataFingerprint,
		Price:               req.Price,
		AITrainingAllowed:   req.AITrainingAllowed,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GrantAccess adds a principal to a record's authorized set
func (h *handler) GrantAccess(c *gin.Context) {
	callerPrincipal, ok := caller(c)
	if !ok {
		return
	}
	id, ok := contentID(c)
	if !ok {
		return
	}

	var req GrantAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	grantee, err := domain.NewPrincipal(req.Principal)
	if err != nil {
		respondValidationError(c, "principal must be a valid principal address")
		return
	}

	if err := h.registry.GrantAccess(c.Request.Context(), callerPrincipal, id, grantee); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RevokeAccess removes a principal from a record's authorized set
func (h *handler) RevokeAccess(c *gin.Context) {
	callerPrincipal, ok := caller(c)
	if !ok {
		return
	}
	id, ok := contentID(c)
	if !ok {
		return
	}
	principal, ok := pathPrincipal(c)
	if !ok {
		return
	}

	if err := h.registry.RevokeAccess(c.Request.Context(), callerPrincipal, id, principal); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CheckAccess reports whether a principal may view a record
func (h *handler) CheckAccess(c *gin.Context) {
	id, ok := contentID(c)
	if !ok {
		return
	}
	principal, ok := pathPrincipal(c)
	if !ok {
		return
	}

	hasAccess, err := h.registry.HasAccess(c.Request.Context(), id, principal)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, HasAccessResponse{
		ContentID: id,
		Principal: principal.String(),
		HasAccess: hasAccess,
	})
}

// PurchaseAccess settles a paid access purchase for the caller
func (h *handler) PurchaseAccess(c *gin.Context) {
	callerPrincipal, ok := caller(c)
	if !ok {
		return
	}
	id, ok := contentID(c)
	if !ok {
		return
	}

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	receipt, err := h.registry.PurchaseAccess(c.Request.Context(), callerPrincipal, id, req.PaidAmount)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewPurchaseResponse(id, receipt))
}

// CheckAITraining reports whether the owner permits AI training use
func (h *handler) CheckAITraining(c *gin.Context) {
	id, ok := contentID(c)
	if !ok {
		return
	}

	allowed, err := h.registry.IsAITrainingAllowed(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, AITrainingResponse{
		ContentID:         id,
		AITrainingAllowed: allowed,
	})
}

// ReportDispute marks a record disputed on behalf of the caller
func (h *handler) ReportDispute(c *gin.Context) {
	callerPrincipal, ok := caller(c)
	if !ok {
		return
	}
	id, ok := contentID(c)
	if !ok {
		return
	}

	var req ReportDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := h.registry.ReportDispute(c.Request.Context(), callerPrincipal, id, req.EvidenceReference); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ResolveDispute closes a dispute (admin only)
func (h *handler) ResolveDispute(c *gin.Context) {
	callerPrincipal, ok := caller(c)
	if !ok {
		return
	}
	id, ok := contentID(c)
	if !ok {
		return
	}

	var req ResolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	newOwner := domain.ZeroPrincipal
	if !req.ConfirmOwnership {
		var err error
		newOwner, err = domain.NewPrincipal(req.NewOwner)
		if err != nil {
			respondValidationError(c, "new_owner must be a valid principal when ownership is not confirmed")
			return
		}
	}

	err := h.registry.ResolveDispute(c.Request.Context(), callerPrincipal, id, req.ConfirmOwnership, newOwner)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CheckDispute reports whether a record has an unresolved dispute
func (h *handler) CheckDispute(c *gin.Context) {
	id, ok := contentID(c)
	if !ok {
		return
	}

	disputed, err := h.registry.IsDisputed(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, DisputeStatusResponse{
		ContentID: id,
		Disputed:  disputed,
	})
}

// GetFeeConfig returns the current platform fee configuration
func (h *handler) GetFeeConfig(c *gin.Context) {
	bps, err := h.settler.FeeBasisPoints(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to read fee configuration")
		return
	}
	recipient, err := h.settler.FeeRecipient(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to read fee configuration")
		return
	}

	c.JSON(http.StatusOK, FeeConfigResponse{
		BasisPoints: bps,
		Recipient:   recipient.String(),
	})
}

// SetFeeBasisPoints updates the platform fee (admin only)
func (h *handler) SetFeeBasisPoints(c *gin.Context) {
	callerPrincipal, ok := caller(c)
	if !ok {
		return
	}

	var req SetFeeBasisPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := h.settler.SetFeeBasisPoints(c.Request.Context(), callerPrincipal, req.BasisPoints); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetFeeRecipient updates the platform fee recipient (admin only)
func (h *handler) SetFeeRecipient(c *gin.Context) {
	callerPrincipal, ok := caller(c)
	if !ok {
		return
	}

	var req SetFeeRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	recipient, err := domain.NewPrincipal(req.Recipient)
	if err != nil {
		respondValidationError(c, "recipient must be a valid principal address")
		return
	}

	if err := h.settler.SetFeeRecipient(c.Request.Context(), callerPrincipal, recipient); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignRole assigns a role to a principal (admin only)
func (h *handler) AssignRole(c *gin.Context) {
	callerPrincipal, ok := caller(c)
	if !ok {
		return
	}
	principal, ok := pathPrincipal(c)
	if !ok {
		return
	}

	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	err := h.authority.AssignRole(c.Request.Context(), callerPrincipal, principal, domain.Role(req.Role))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAccount retrieves a ledger account (admin only)
func (h *handler) GetAccount(c *gin.Context) {
	callerPrincipal, ok := caller(c)
	if !ok {
		return
	}
	if !h.requireAdmin(c, callerPrincipal) {
		return
	}
	principal, ok := pathPrincipal(c)
	if !ok {
		return
	}

	account, err := h.store.GetAccount(c.Request.Context(), principal)
	if err != nil {
		respondInternalError(c, err, "Failed to get account")
		return
	}
	if account == nil {
		respondDomainError(c, domain.ErrAccountNotFound)
		return
	}

	c.JSON(http.StatusOK, AccountResponse{
		Principal: account.Principal.String(),
		Balance:   account.Balance,
		Frozen:    account.Frozen,
	})
}

// CreditAccount adds funds to a ledger account (admin only)
func (h *handler) CreditAccount(c *gin.Context) {
	callerPrincipal, ok := caller(c)
	if !ok {
		return
	}
	if !h.requireAdmin(c, callerPrincipal) {
		return
	}
	principal, ok := pathPrincipal(c)
	if !ok {
		return
	}

	var req CreditAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := h.store.CreditAccount(c.Request.Context(), principal, req.Amount); err != nil {
		respondInternalError(c, err, "Failed to credit account")
		return
	}

	c.Status(http.StatusNoContent)
}

// SetAccountFrozen freezes or unfreezes a ledger account (admin only)
func (h *handler) SetAccountFrozen(c *gin.Context) {
	callerPrincipal, ok := caller(c)
	if !ok {
		return
	}
	if !h.requireAdmin(c, callerPrincipal) {
		return
	}
	principal, ok := pathPrincipal(c)
	if !ok {
		return
	}

	var req SetFrozenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := h.store.SetAccountFrozen(c.Request.Context(), principal, req.Frozen); err != nil {
		respondInternalError(c, err, "Failed to update account")
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateWebhookClient creates a new webhook client (requires authentication via API key)
func (h *handler) CreateWebhookClient(c *gin.Context) {
	var req CreateWebhookClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(h.debug); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	retryMaxAttempts := DefaultRetryMaxAttempts
	if req.RetryMaxAttempts != nil {
		retryMaxAttempts = *req.RetryMaxAttempts
	}

	secret, err := internalTypes.GenerateSecureToken(webhookSecretBytes)
	if err != nil {
		respondInternalError(c, err, "Failed to generate webhook secret")
		return
	}

	filters, err := json.Marshal(req.EventFilters)
	if err != nil {
		respondInternalError(c, err, "Failed to encode event filters")
		return
	}

	client := &schema.WebhookClient{
		ClientID:         internalTypes.GenerateUUID(),
		WebhookURL:       req.WebhookURL,
		WebhookSecret:    secret,
		EventFilters:     datatypes.JSON(filters),
		IsActive:         true,
		RetryMaxAttempts: retryMaxAttempts,
	}
	if err := h.store.CreateWebhookClient(c.Request.Context(), client); err != nil {
		respondInternalError(c, err, "Failed to create webhook client")
		return
	}

	c.JSON(http.StatusCreated, CreateWebhookClientResponse{
		ClientID:         client.ClientID,
		WebhookURL:       client.WebhookURL,
		WebhookSecret:    client.WebhookSecret,
		EventFilters:     req.EventFilters,
		RetryMaxAttempts: client.RetryMaxAttempts,
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "content-registry-api",
	})
}
