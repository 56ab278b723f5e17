package server

import (
	pb "github.com/giansalex/cw-lockbox/proto"
	"github.com/giansalex/cw-lockbox/types"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// protoLock converts a lock record into its wire representation.
func protoLock(record *types.LockRecord) *pb.Lock {
	if record == nil {
		return nil
	}
	lock := &pb.Lock{
		LockId:    string(record.ID),
		Owner:     string(record.Owner),
		Recipient: string(record.Recipient),
		Token:     string(record.Token),
		Amount:    uint64(record.Amount),
		Condition: protoCondition(record.Condition),
		Status:    protoStatus(record.Status),
		CreatedAt: timestamppb.New(record.CreatedAt),
	}
	if !record.FinalizedAt.IsZero() {
		lock.FinalizedAt = timestamppb.New(record.FinalizedAt)
	}
	return lock
}

// protoTransfer converts a transfer instruction into its wire representation.
func protoTransfer(instruction *types.TransferInstruction) *pb.TransferInstruction {
	if instruction == nil {
		return nil
	}
	return &pb.TransferInstruction{
		Token:       string(instruction.Token),
		Amount:      uint64(instruction.Amount),
		Beneficiary: string(instruction.Beneficiary),
		LockId:      string(instruction.LockID),
	}
}

func protoCondition(condition types.ReleaseCondition) *pb.ReleaseCondition {
	switch condition.Kind {
	case types.ConditionHeight:
		return &pb.ReleaseCondition{ReleaseHeight: uint64(condition.ReleaseHeight)}
	default:
		return &pb.ReleaseCondition{ReleaseTime: timestamppb.New(condition.ReleaseAt)}
	}
}

func protoStatus(status types.LockStatus) pb.LockStatus {
	switch status {
	case types.StatusLocked:
		return pb.LockStatus_LOCKED
	case types.StatusReleased:
		return pb.LockStatus_RELEASED
	case types.StatusCancelled:
		return pb.LockStatus_CANCELLED
	default:
		return pb.LockStatus_LOCK_STATUS_UNSPECIFIED
	}
}

// domainCondition converts a wire release condition into the engine's form.
// Validation guarantees exactly one axis is set before this is called.
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

// domainStatus converts a wire status filter into the engine's form.
// The second return is false for LOCK_STATUS_UNSPECIFIED, meaning no filter.
func domainStatus(status pb.LockStatus) (types.LockStatus, bool) {
	switch status {
	case pb.LockStatus_LOCKED:
		return types.StatusLocked, true
	case pb.LockStatus_RELEASED:
		return types.StatusReleased, true
	case pb.LockStatus_CANCELLED:
		return types.StatusCancelled, true
	default:
		return 0, false
	}
}
