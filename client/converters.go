package client

import (
	pb "github.com/giansalex/cw-lockbox/proto"
	"github.com/giansalex/cw-lockbox/types"
)

// domainLock converts a wire lock into its domain representation.
func domainLock(lock *pb.Lock) *types.LockRecord {
	if lock == nil {
		return nil
	}
	record := &types.LockRecord{
		ID:        types.LockID(lock.LockId),
		Owner:     types.PartyID(lock.Owner),
		Recipient: types.PartyID(lock.Recipient),
		Token:     types.TokenID(lock.Token),
		Amount:    types.Amount(lock.Amount),
		Condition: domainCondition(lock.Condition),
		Status:    domainStatus(lock.Status),
	}
	if lock.CreatedAt != nil {
		record.CreatedAt = lock.CreatedAt.AsTime()
	}
	if lock.FinalizedAt != nil {
		record.FinalizedAt = lock.FinalizedAt.AsTime()
	}
	return record
}

// domainTransfer converts a wire transfer instruction into its domain representation.
func domainTransfer(instruction *pb.TransferInstruction) *types.TransferInstruction {
	if instruction == nil {
		return nil
	}
	return &types.TransferInstruction{
		Token:       types.TokenID(instruction.Token),
		Amount:      types.Amount(instruction.Amount),
		Beneficiary: types.PartyID(instruction.Beneficiary),
		LockID:      types.LockID(instruction.LockId),
	}
}

func domainCondition(condition *pb.ReleaseCondition) types.ReleaseCondition {
	if condition == nil {
		return types.ReleaseCondition{}
	}
	if condition.ReleaseTime != nil {
		return types.ReleaseCondition{
			Kind:      types.ConditionTime,
			ReleaseAt: condition.ReleaseTime.AsTime(),
		}
	}
	return types.ReleaseCondition{
		Kind:          types.ConditionHeight,
		ReleaseHeight: types.BlockHeight(condition.ReleaseHeight),
	}
}

func domainStatus(status pb.LockStatus) types.LockStatus {
	switch status {
	case pb.LockStatus_RELEASED:
		return types.StatusReleased
	case pb.LockStatus_CANCELLED:
		return types.StatusCancelled
	default:
		return types.StatusLocked
	}
}

// protoStatusFilter converts an optional status filter into its wire form.
// Nil means no filter and maps to LOCK_STATUS_UNSPECIFIED.
func protoStatusFilter(status *types.LockStatus) pb.LockStatus {
	if status == nil {
		return pb.LockStatus_LOCK_STATUS_UNSPECIFIED
	}
	switch *status {
	case types.StatusReleased:
		return pb.LockStatus_RELEASED
	case types.StatusCancelled:
		return pb.LockStatus_CANCELLED
	default:
		return pb.LockStatus_LOCKED
	}
}
