package domain

import "time"

// User represents the authenticated user profile as returned by the backend.
type User struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `json:"role"`
}

// Roles known to the platform.
const (
	RoleGuest   = "GUEST"
	RoleTenant  = "TENANT"
	RolePartner = "PARTNER"
	RoleStaff   = "STAFF"
	RoleAdmin   = "ADMIN"
)

// Credentials represents a login request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session binds a backend access token to the user it belongs to.
// Token and User are always persisted and cleared together.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UserPatch carries the profile fields a user may change. Nil fields are
// left untouched by a merge.
type UserPatch struct {
	FullName    *string `json:"fullName,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Address     *string `json:"address,omitempty"`
}

// Merge applies the patch to a user, shallow-merging non-nil fields.
func (p UserPatch) Merge(u User) User {
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = *p.PhoneNumber
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	return u
}

// RegisterRequest represents a registration request for any of the three
// self-service registration endpoints.
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address,omitempty"`
}

// VisitSlot is the half-day slot of a room visit.
type VisitSlot string

const (
	SlotMorning   VisitSlot = "MORNING"
	SlotAfternoon VisitSlot = "AFTERNOON"
)

// Reservation represents a room-visit reservation record.
type Reservation struct {
	ID                uint              `json:"id"`
	ReservationCode   string            `json:"reservationCode"`
	RoomNumber        string            `json:"roomNumber"`
	RoomID            uint              `json:"roomId"`
	TenantName        string            `json:"tenantName"`
	TenantPhoneNumber string            `json:"tenantPhoneNumber"`
	TenantEmail       string            `json:"tenantEmail"`
	ReservationDate   time.Time         `json:"reservationDate"`
	VisitDate         string            `json:"visitDate"`
	VisitSlot         VisitSlot         `json:"visitSlot"`
	Status            ReservationStatus `json:"status"`
	Notes             string            `json:"notes,omitempty"`
}

// ReservationFilter is forwarded to the backend verbatim; the client does
// no filtering of its own.
type ReservationFilter struct {
	Status ReservationStatus
	Query  string
}

// CreateReservationRequest represents a guest/tenant reservation request.
type CreateReservationRequest struct {
	RoomID            uint      `json:"roomId"`
	TenantName        string    `json:"tenantName"`
	TenantPhoneNumber string    `json:"tenantPhoneNumber"`
	TenantEmail       string    `json:"tenantEmail"`
	VisitDate         string    `json:"visitDate"`
	VisitSlot         VisitSlot `json:"visitSlot"`
	Notes             string    `json:"notes,omitempty"`
}

// Contract represents a tenancy contract as held by the backend.
type Contract struct {
	ID                uint           `json:"id"`
	BranchCode        string         `json:"branchCode"`
	RoomNumber        string         `json:"roomNumber"`
	TenantFullName    string         `json:"tenantFullName"`
	TenantPhoneNumber string         `json:"tenantPhoneNumber"`
	TenantEmail       string         `json:"tenantEmail"`
	TenantAddress     string         `json:"tenantAddress,omitempty"`
	TenantCCCD        string         `json:"tenantCccd"`
	TenantStudentID   string         `json:"tenantStudentId,omitempty"`
	TenantUniversity  string         `json:"tenantUniversity,omitempty"`
	Deposit           float64        `json:"deposit"`
	StartDate         string         `json:"startDate"`
	EndDate           string         `json:"endDate"`
	Status            ContractStatus `json:"status"`
	SignedContractURL string         `json:"signedContractUrl,omitempty"`
	DepositInvoiceURL string         `json:"depositInvoiceUrl,omitempty"`
	DepositReceiptURL string         `json:"depositReceiptUrl,omitempty"`
	ReservationID     uint           `json:"reservationId,omitempty"`
}

// ContractDraft carries the fields of a new contract. When the draft comes
// from a reservation prefill, BranchCode and RoomNumber are fixed by the
// reservation and not re-negotiable during drafting.
type ContractDraft struct {
	BranchCode        string  `json:"branchCode"`
	RoomNumber        string  `json:"roomNumber"`
	TenantFullName    string  `json:"tenantFullName"`
	TenantPhoneNumber string  `json:"tenantPhoneNumber"`
	TenantEmail       string  `json:"tenantEmail"`
	TenantAddress     string  `json:"tenantAddress,omitempty"`
	TenantCCCD        string  `json:"tenantCccd"`
	TenantStudentID   string  `json:"tenantStudentId,omitempty"`
	TenantUniversity  string  `json:"tenantUniversity,omitempty"`
	Deposit           float64 `json:"deposit"`
	StartDate         string  `json:"startDate"`
	EndDate           string  `json:"endDate"`
	ReservationID     uint    `json:"reservationId,omitempty"`
}

// DepositMethod is the offline payment method for a deposit confirmation.
type DepositMethod string

const (
	DepositCash         DepositMethod = "CASH"
	DepositBankTransfer DepositMethod = "BANK_TRANSFER"
)

// StagedFile is a signed-contract file held in memory until the user
// explicitly confirms the upload.
type StagedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// SystemConfig is the singleton platform configuration record.
type SystemConfig struct {
	ElectricPricePerUnit float64 `json:"electricPricePerUnit"`
	WaterPricePerUnit    float64 `json:"waterPricePerUnit"`
	LateFeePerDay        float64 `json:"lateFeePerDay"`
	MomoReceiverName     string  `json:"momoReceiverName"`
	MomoReceiverPhone    string  `json:"momoReceiverPhone"`
	MomoReceiverQRURL    string  `json:"momoReceiverQrUrl"`
}
