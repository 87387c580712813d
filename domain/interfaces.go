package domain

import (
	"context"
	"io"
)

// SessionStore defines durable session persistence. Implementations must
// keep the token and the user record in lockstep: a session is either fully
// present or fully absent.
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	Load(ctx context.Context, sessionID string) (*Session, error)
	Clear(ctx context.Context, sessionID string) error
}

// LoginResult is the backend's answer to a successful login. The payload
// is flat: the token sits alongside the user's own fields, so the user is
// embedded rather than nested.
type LoginResult struct {
	AccessToken string `json:"accessToken"`
	User
}

// AuthClient wraps the backend auth endpoints.
type AuthClient interface {
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	RegisterGuest(ctx context.Context, req RegisterRequest) error
	RegisterPartner(ctx context.Context, req RegisterRequest) error
	RegisterEmployee(ctx context.Context, req RegisterRequest) error
}

// ReservationClient wraps the backend reservation endpoints. Every method is
// a single request; the backend performs all filtering and enforcement.
type ReservationClient interface {
	ListByStatus(ctx context.Context, token string, status ReservationStatus) ([]Reservation, error)
	ListMyBranch(ctx context.Context, token string) ([]Reservation, error)
	Search(ctx context.Context, token, query string) ([]Reservation, error)
	ListMine(ctx context.Context, token string) ([]Reservation, error)
	Create(ctx context.Context, token string, req CreateReservationRequest) (*Reservation, error)
	Delete(ctx context.Context, token string, id uint) error
	Confirm(ctx context.Context, token string, id uint) error
	MarkCompleted(ctx context.Context, token string, id uint) error
	MarkNoShow(ctx context.Context, token string, id uint) error
	MarkContracted(ctx context.Context, token string, id uint) error
	ContractPrefill(ctx context.Context, token string, id uint) (*ContractDraft, error)
	ConvertToContract(ctx context.Context, token string, id uint, draft ContractDraft) (*Contract, error)
}

// ContractClient wraps the backend contract endpoints.
type ContractClient interface {
	Create(ctx context.Context, token string, draft ContractDraft) (*Contract, error)
	GetByID(ctx context.Context, token string, id uint) (*Contract, error)
	Update(ctx context.Context, token string, id uint, draft ContractDraft) (*Contract, error)
	Download(ctx context.Context, token string, id uint) (io.ReadCloser, string, error)
	UploadSigned(ctx context.Context, token string, id uint, file StagedFile) (*Contract, error)
	ConfirmDeposit(ctx context.Context, token string, id uint, method DepositMethod) (*Contract, error)
	InitiateDepositMomo(ctx context.Context, token string, id uint) (string, error)
}

// UserClient wraps the backend management profile endpoints.
type UserClient interface {
	GetTenant(ctx context.Context, token string, id uint) (*User, error)
	PatchTenant(ctx context.Context, token string, id uint, patch UserPatch) (*User, error)
	GetPartner(ctx context.Context, token string, id uint) (*User, error)
	PatchPartner(ctx context.Context, token string, id uint, patch UserPatch) (*User, error)
	GetEmployee(ctx context.Context, token string, id uint) (*User, error)
	PatchEmployeeStatus(ctx context.Context, token string, id uint, status string) (*User, error)
}

// SystemConfigClient wraps the singleton system-config endpoints.
type SystemConfigClient interface {
	Get(ctx context.Context, token string) (*SystemConfig, error)
	Update(ctx context.Context, token string, cfg SystemConfig) (*SystemConfig, error)
}

// SessionService defines session lifecycle business logic.
type SessionService interface {
	Login(ctx context.Context, creds Credentials) (*Session, error)
	Logout(ctx context.Context, sessionID string) error
	Current(ctx context.Context, sessionID string) (*Session, error)
	UpdateUserInfo(ctx context.Context, sessionID string, patch UserPatch) (*Session, error)
}

// ReservationService defines the reservation workflow as driven from the
// frontend. Transition methods take the caller's local copy, refuse actions
// the current status does not offer, and return the optimistically patched
// copy only after the backend confirmed the transition.
type ReservationService interface {
	List(ctx context.Context, token string, filter ReservationFilter) ([]Reservation, error)
	ListMyBranch(ctx context.Context, token string) ([]Reservation, error)
	ListMine(ctx context.Context, token string) ([]Reservation, error)
	Create(ctx context.Context, token string, req CreateReservationRequest) (*Reservation, error)
	Delete(ctx context.Context, token string, id uint) error
	Approve(ctx context.Context, token string, r Reservation) (Reservation, error)
	Cancel(ctx context.Context, token string, r Reservation, confirmed bool) (Reservation, error)
	MarkCompleted(ctx context.Context, token string, r Reservation) (Reservation, error)
	MarkNoShow(ctx context.Context, token string, r Reservation) (Reservation, error)
	Prefill(ctx context.Context, token string, reservationID uint) (*ContractDraft, error)
	ConvertToContract(ctx context.Context, token string, r Reservation, draft ContractDraft) (*Contract, error)
}

// ContractService defines the contract creation and completion flow,
// including the two-step signed-file upload.
type ContractService interface {
	CreateDraft(ctx context.Context, token string, draft ContractDraft) (*Contract, error)
	Get(ctx context.Context, token string, id uint) (*Contract, error)
	Update(ctx context.Context, token string, current Contract, draft ContractDraft) (*Contract, error)
	Download(ctx context.Context, token string, id uint) (io.ReadCloser, string, error)
	StageSignedFile(contractID uint, file StagedFile)
	StagedSignedFile(contractID uint) (*StagedFile, bool)
	ClearStagedFile(contractID uint)
	ConfirmSignedUpload(ctx context.Context, token string, current Contract) (*Contract, error)
	ConfirmDeposit(ctx context.Context, token string, current Contract, method DepositMethod) (*Contract, error)
	InitiateDepositMomo(ctx context.Context, token string, current Contract) (string, error)
}

// CapabilityService answers whether a role may use a frontend resource.
// Gating here is advisory UX; the backend re-checks every call.
type CapabilityService interface {
	Can(role, resource, action string) (bool, error)
	CapabilitiesFor(role string) [][]string
}

// CasbinEnforcer is the slice of the casbin enforcer the capability
// service needs, kept as an interface for testing.
type CasbinEnforcer interface {
	Enforce(rvals ...interface{}) (bool, error)
	GetImplicitPermissionsForUser(name string, domain ...string) ([][]string, error)
}
