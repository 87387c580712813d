package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/you/rentalfront/domain"
	"github.com/you/rentalfront/internal/http/middleware"
)

// maxSignedFileBytes caps the staged signed-contract upload.
const maxSignedFileBytes = 10 << 20

// ContractHandler exposes the contract flow: draft creation, editing while
// pending, the two-step signed upload, deposit confirmation and download.
type ContractHandler struct {
	contracts domain.ContractService
}

// NewContractHandler creates the contract handler.
func NewContractHandler(contracts domain.ContractService) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

// contractView is a contract plus the actions its status offers.
type contractView struct {
	domain.Contract
	AllowedActions []domain.ContractAction `json:"allowedActions"`
	StagedFileName string                  `json:"stagedFileName,omitempty"`
}

func (h *ContractHandler) viewOf(ct domain.Contract) contractView {
	view := contractView{Contract: ct, AllowedActions: ct.Status.Actions()}
	if staged, ok := h.contracts.StagedSignedFile(ct.ID); ok {
		view.StagedFileName = staged.Name
	}
	return view
}

func contractID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return 0, false
	}
	return uint(id), true
}

// Create submits a new contract draft. Required fields are checked before
// any backend call.
func (h *ContractHandler) Create(c *gin.Context) {
	var draft domain.ContractDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract payload"})
		return
	}
	created, err := h.contracts.CreateDraft(c.Request.Context(), middleware.TokenFrom(c), draft)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": h.viewOf(*created)})
}

// Get returns a contract with the actions its status offers.
func (h *ContractHandler) Get(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}
	ct, err := h.contracts.Get(c.Request.Context(), middleware.TokenFrom(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.viewOf(*ct)})
}

// Update edits a pending contract. The current state is fetched first so
// the status gate and the reservation-backed field lock run against what
// the backend holds, not what the caller claims.
func (h *ContractHandler) Update(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}
	var draft domain.ContractDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract payload"})
		return
	}

	token := middleware.TokenFrom(c)
	current, err := h.contracts.Get(c.Request.Context(), token, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	updated, err := h.contracts.Update(c.Request.Context(), token, *current, draft)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.viewOf(*updated)})
}

// StageSignedFile holds the uploaded scan in memory for preview. Nothing
// reaches the backend until ConfirmSignedUpload.
func (h *ContractHandler) StageSignedFile(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if header.Size > maxSignedFileBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxSignedFileBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}

	h.contracts.StageSignedFile(id, domain.StagedFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	c.JSON(http.StatusOK, gin.H{"staged": header.Filename, "size": len(data)})
}

// DiscardSignedFile drops the staged scan without uploading it.
func (h *ContractHandler) DiscardSignedFile(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}
	h.contracts.ClearStagedFile(id)
	c.JSON(http.StatusOK, gin.H{"message": "staged file discarded"})
}

// ConfirmSignedUpload sends the staged scan to the backend. The staged
// copy survives a failed upload so the user can retry without re-picking.
func (h *ContractHandler) ConfirmSignedUpload(c *gin.Context) {
	h.withCurrent(c, func(c *gin.Context, token string, current domain.Contract) (*domain.Contract, error) {
		return h.contracts.ConfirmSignedUpload(c.Request.Context(), token, current)
	})
}

type depositRequest struct {
	Method domain.DepositMethod `json:"method" binding:"required"`
}

// ConfirmDeposit records a cash or bank-transfer deposit.
func (h *ContractHandler) ConfirmDeposit(c *gin.Context) {
	var req depositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deposit method is required"})
		return
	}
	h.withCurrent(c, func(c *gin.Context, token string, current domain.Contract) (*domain.Contract, error) {
		return h.contracts.ConfirmDeposit(c.Request.Context(), token, current, req.Method)
	})
}

// InitiateDepositMomo starts an online deposit and returns the pay URL.
// The contract is left untouched locally; the gateway callback moves it.
func (h *ContractHandler) InitiateDepositMomo(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}
	token := middleware.TokenFrom(c)
	current, err := h.contracts.Get(c.Request.Context(), token, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	payURL, err := h.contracts.InitiateDepositMomo(c.Request.Context(), token, *current)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payUrl": payURL})
}

// Download streams the contract document through to the caller.
func (h *ContractHandler) Download(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}
	body, contentType, err := h.contracts.Download(c.Request.Context(), middleware.TokenFrom(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, body); err != nil {
		// headers are already out; nothing sensible left to send
		c.Abort()
	}
}

func (h *ContractHandler) withCurrent(c *gin.Context, run func(*gin.Context, string, domain.Contract) (*domain.Contract, error)) {
	id, ok := contractID(c)
	if !ok {
		return
	}
	token := middleware.TokenFrom(c)
	current, err := h.contracts.Get(c.Request.Context(), token, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	updated, err := run(c, token, *current)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.viewOf(*updated)})
}
