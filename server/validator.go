package server

import (
	"fmt"
	"strings"

	"github.com/giansalex/cw-lockbox/logger"
	pb "github.com/giansalex/cw-lockbox/proto"
)

// RequestValidator defines the interface for validating incoming gRPC requests
// to the lockbox server. Each method should return an error if the request is invalid.
type RequestValidator interface {
	// ValidateCreateLockRequest validates a CreateLockRequest.
	ValidateCreateLockRequest(req *pb.CreateLockRequest) error

	// ValidateReleaseRequest validates a ReleaseRequest.
	ValidateReleaseRequest(req *pb.ReleaseRequest) error

	// ValidateCancelRequest validates a CancelRequest.
	ValidateCancelRequest(req *pb.CancelRequest) error

	// ValidateGetLockRequest validates a GetLockRequest.
	ValidateGetLockRequest(req *pb.GetLockRequest) error

	// ValidateListLocksByOwnerRequest validates a ListLocksByOwnerRequest.
	ValidateListLocksByOwnerRequest(req *pb.ListLocksByOwnerRequest) error

	// ValidateListLocksByRecipientRequest validates a ListLocksByRecipientRequest.
	ValidateListLocksByRecipientRequest(req *pb.ListLocksByRecipientRequest) error
}

// requestValidator implements the RequestValidator interface.
type requestValidator struct {
	logger logger.Logger
}

// NewRequestValidator creates a new default request validator.
func NewRequestValidator(logger logger.Logger) RequestValidator {
	return &requestValidator{
		logger: logger,
	}
}

// ValidateCreateLockRequest validates a create lock request.
//
// The amount and condition bounds are deliberately left to the engine: the
// validator only rejects requests that are structurally unusable, so the
// engine's typed errors stay the single source of truth for domain rules.
func (v *requestValidator) ValidateCreateLockRequest(req *pb.CreateLockRequest) error {
	if err := v.validatePartyID("caller", req.Caller); err != nil {
		return err
	}
	if err := v.validatePartyID("recipient", req.Recipient); err != nil {
		return err
	}
	if err := v.validateToken(req.Token); err != nil {
		return err
	}
	if req.Condition == nil {
		return NewValidationError("condition", nil, "condition is required")
	}
	if req.Condition.ReleaseTime != nil && req.Condition.ReleaseHeight != 0 {
		return NewValidationError("condition", req.Condition,
			"condition must set exactly one of release_time and release_height")
	}
	if req.Condition.ReleaseTime == nil && req.Condition.ReleaseHeight == 0 {
		return NewValidationError("condition", req.Condition,
			"condition must set one of release_time and release_height")
	}
	if req.Condition.ReleaseTime != nil && !req.Condition.ReleaseTime.IsValid() {
		return NewValidationError("condition.release_time", req.Condition.ReleaseTime,
			"invalid timestamp for release_time")
	}
	return nil
}

// ValidateReleaseRequest validates a release request.
func (v *requestValidator) ValidateReleaseRequest(req *pb.ReleaseRequest) error {
	if err := v.validatePartyID("caller", req.Caller); err != nil {
		return err
	}
	return v.validateLockID(req.LockId)
}

// ValidateCancelRequest validates a cancel request.
func (v *requestValidator) ValidateCancelRequest(req *pb.CancelRequest) error {
	if err := v.validatePartyID("caller", req.Caller); err != nil {
		return err
	}
	return v.validateLockID(req.LockId)
}

// ValidateGetLockRequest validates a get lock request.
func (v *requestValidator) ValidateGetLockRequest(req *pb.GetLockRequest) error {
	return v.validateLockID(req.LockId)
}

// ValidateListLocksByOwnerRequest validates a list-by-owner request.
func (v *requestValidator) ValidateListLocksByOwnerRequest(req *pb.ListLocksByOwnerRequest) error {
	if err := v.validatePartyID("owner", req.Owner); err != nil {
		return err
	}
	return v.validateStatusFilter(req.StatusFilter)
}

// ValidateListLocksByRecipientRequest validates a list-by-recipient request.
func (v *requestValidator) ValidateListLocksByRecipientRequest(req *pb.ListLocksByRecipientRequest) error {
	if err := v.validatePartyID("recipient", req.Recipient); err != nil {
		return err
	}
	return v.validateStatusFilter(req.StatusFilter)
}

func (v *requestValidator) validateLockID(lockID string) error {
	if lockID == "" {
		return NewValidationError("lock_id", lockID, "lock_id cannot be empty")
	}
	if len(lockID) > MaxLockIDLength {
		return NewValidationError("lock_id", lockID, fmt.Sprintf(ErrMsgInvalidLockID, MaxLockIDLength))
	}
	if strings.ContainsAny(lockID, "\x00\n\r\t") {
		return NewValidationError("lock_id", lockID, "lock_id contains invalid characters (null, newline, tab)")
	}
	return nil
}

func (v *requestValidator) validatePartyID(field, partyID string) error {
	if partyID == "" {
		return NewValidationError(field, partyID, fmt.Sprintf("%s cannot be empty", field))
	}
	if len(partyID) > MaxPartyIDLength {
		return NewValidationError(field, partyID, fmt.Sprintf(ErrMsgInvalidPartyID, field, MaxPartyIDLength))
	}
	if strings.ContainsAny(partyID, "\x00\n\r\t") {
		return NewValidationError(field, partyID, fmt.Sprintf("%s contains invalid characters (null, newline, tab)", field))
	}
	return nil
}

func (v *requestValidator) validateToken(token string) error {
	if token == "" {
		return NewValidationError("token", token, "token cannot be empty")
	}
	if len(token) > MaxTokenIDLength {
		return NewValidationError("token", token, fmt.Sprintf(ErrMsgInvalidToken, MaxTokenIDLength))
	}
	if strings.ContainsAny(token, "\x00\n\r\t") {
		return NewValidationError("token", token, "token contains invalid characters (null, newline, tab)")
	}
	return nil
}

func (v *requestValidator) validateStatusFilter(filter pb.LockStatus) error {
	switch filter {
	case pb.LockStatus_LOCK_STATUS_UNSPECIFIED,
		pb.LockStatus_LOCKED,
		pb.LockStatus_RELEASED,
		pb.LockStatus_CANCELLED:
		return nil
	default:
		return NewValidationError("status_filter", filter, "unknown lock status")
	}
}
