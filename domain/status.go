package domain

// ReservationStatus is the closed status enumeration of a reservation.
// The backend owns every transition; the tables below only mirror them so
// the frontend knows which actions to offer.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING_CONFIRMATION"
	ReservationReserved  ReservationStatus = "RESERVED"
	ReservationCompleted ReservationStatus = "COMPLETED"
	ReservationNoShow    ReservationStatus = "NO_SHOW"
	ReservationCancelled ReservationStatus = "CANCELLED"
)

// ReservationAction is a staff action against a reservation.
type ReservationAction string

const (
	ActionConfirm           ReservationAction = "confirm"
	ActionCancel            ReservationAction = "cancel"
	ActionMarkCompleted     ReservationAction = "markCompleted"
	ActionMarkNoShow        ReservationAction = "markNoShow"
	ActionConvertToContract ReservationAction = "convertToContract"
)

// reservationActions mirrors the server-side workflow:
//
//	PENDING_CONFIRMATION --confirm--> RESERVED
//	PENDING_CONFIRMATION --cancel--> CANCELLED
//	RESERVED --markCompleted--> COMPLETED
//	RESERVED --markNoShow--> NO_SHOW
//	RESERVED --cancel--> CANCELLED
//
// Terminal statuses offer no actions. convertToContract leads into the
// contract flow without changing the reservation status.
var reservationActions = map[ReservationStatus][]ReservationAction{
	ReservationPending:  {ActionConfirm, ActionCancel},
	ReservationReserved: {ActionConvertToContract, ActionMarkCompleted, ActionMarkNoShow, ActionCancel},
}

// Actions returns the actions offered for the status, in display order.
// Unknown or terminal statuses return nil.
func (s ReservationStatus) Actions() []ReservationAction {
	return reservationActions[s]
}

// Allows reports whether the action is offered for the status.
func (s ReservationStatus) Allows(a ReservationAction) bool {
	for _, allowed := range reservationActions[s] {
		if allowed == a {
			return true
		}
	}
	return false
}

// Terminal reports whether the status permits no further action.
func (s ReservationStatus) Terminal() bool {
	switch s {
	case ReservationCompleted, ReservationNoShow, ReservationCancelled:
		return true
	}
	return false
}

// ContractStatus is the contract lifecycle status. The set is open: the
// backend may report ended states this client does not enumerate, and any
// unknown status degrades to the download action only.
type ContractStatus string

const (
	ContractPending              ContractStatus = "PENDING"
	ContractSignedPendingDeposit ContractStatus = "SIGNED_PENDING_DEPOSIT"
	ContractActive               ContractStatus = "ACTIVE"
)

// ContractAction is an action offered in the contract flow.
type ContractAction string

const (
	ContractActionUpdate         ContractAction = "update"
	ContractActionUploadSigned   ContractAction = "uploadSigned"
	ContractActionConfirmDeposit ContractAction = "confirmDeposit"
	ContractActionInitiateMomo   ContractAction = "initiateMomo"
	ContractActionDownload       ContractAction = "download"
)

// contractActions mirrors the server-side lifecycle:
//
//	PENDING --uploadSigned--> SIGNED_PENDING_DEPOSIT
//	SIGNED_PENDING_DEPOSIT --confirmDeposit--> ACTIVE
//
// Field edits only while PENDING; deposit actions only while
// SIGNED_PENDING_DEPOSIT. Download is always available.
var contractActions = map[ContractStatus][]ContractAction{
	ContractPending:              {ContractActionUpdate, ContractActionUploadSigned, ContractActionDownload},
	ContractSignedPendingDeposit: {ContractActionConfirmDeposit, ContractActionInitiateMomo, ContractActionDownload},
	ContractActive:               {ContractActionDownload},
}

// Actions returns the actions offered for the status. Statuses outside the
// known lifecycle fall back to download only.
func (s ContractStatus) Actions() []ContractAction {
	if acts, ok := contractActions[s]; ok {
		return acts
	}
	return []ContractAction{ContractActionDownload}
}

// Allows reports whether the action is offered for the status.
func (s ContractStatus) Allows(a ContractAction) bool {
	for _, allowed := range s.Actions() {
		if allowed == a {
			return true
		}
	}
	return false
}
