package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/you/rentalfront/domain"
)

// ContractClientImpl implements domain.ContractClient against /api/contracts.
type ContractClientImpl struct {
	c *Client
}

// NewContractClient creates a new contract client.
func NewContractClient(c *Client) domain.ContractClient {
	return &ContractClientImpl{c: c}
}

// Create implements domain.ContractClient.
func (cc *ContractClientImpl) Create(ctx context.Context, token string, draft domain.ContractDraft) (*domain.Contract, error) {
	var out domain.Contract
	if err := cc.c.doJSON(ctx, http.MethodPost, "/api/contracts", token, nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByID implements domain.ContractClient.
func (cc *ContractClientImpl) GetByID(ctx context.Context, token string, id uint) (*domain.Contract, error) {
	var out domain.Contract
	if err := cc.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/contracts/%d", id), token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update implements domain.ContractClient.
func (cc *ContractClientImpl) Update(ctx context.Context, token string, id uint, draft domain.ContractDraft) (*domain.Contract, error) {
	var out domain.Contract
	if err := cc.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/contracts/%d", id), token, nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Download implements domain.ContractClient. The response is a docx stream;
// the caller owns closing the reader.
func (cc *ContractClientImpl) Download(ctx context.Context, token string, id uint) (io.ReadCloser, string, error) {
	return cc.c.doStream(ctx, http.MethodGet, fmt.Sprintf("/api/contracts/%d/download", id), token)
}

// UploadSigned implements domain.ContractClient. One multipart request per
// call; the explicit-confirmation step lives in the service layer.
func (cc *ContractClientImpl) UploadSigned(ctx context.Context, token string, id uint, file domain.StagedFile) (*domain.Contract, error) {
	var out domain.Contract
	path := fmt.Sprintf("/api/contracts/%d/upload-signed", id)
	if err := cc.c.doMultipart(ctx, http.MethodPost, path, token, "file", file, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmDeposit implements domain.ContractClient.
func (cc *ContractClientImpl) ConfirmDeposit(ctx context.Context, token string, id uint, method domain.DepositMethod) (*domain.Contract, error) {
	var out domain.Contract
	path := fmt.Sprintf("/api/contracts/%d/confirm-deposit", id)
	q := url.Values{"method": {string(method)}}
	if err := cc.c.doJSON(ctx, http.MethodPut, path, token, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InitiateDepositMomo implements domain.ContractClient. Returns the external
// payment URL; activation arrives out-of-band and is observed on a later fetch.
func (cc *ContractClientImpl) InitiateDepositMomo(ctx context.Context, token string, id uint) (string, error) {
	var out struct {
		PayURL string `json:"payUrl"`
	}
	path := fmt.Sprintf("/api/contracts/%d/deposit/momo", id)
	if err := cc.c.doJSON(ctx, http.MethodPost, path, token, nil, nil, &out); err != nil {
		return "", err
	}
	return out.PayURL, nil
}

var _ domain.ContractClient = (*ContractClientImpl)(nil)
