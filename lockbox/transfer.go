package lockbox

import "github.com/giansalex/cw-lockbox/types"

// transferBuilder translates an approved terminal transition into the single
// outbound instruction the token ledger collaborator executes. It never emits
// an instruction for CreateLock and never more than one per request, and the
// instruction's amount always equals the lock's recorded amount.
type transferBuilder struct{}

// releaseTransfer builds the instruction sending the full custodied amount to
// the lock's recipient.
func (transferBuilder) releaseTransfer(lock *types.LockRecord) *types.TransferInstruction {
	return &types.TransferInstruction{
		Token:       lock.Token,
		Amount:      lock.Amount,
		Beneficiary: lock.Recipient,
		LockID:      lock.ID,
	}
}

// refundTransfer builds the instruction returning the full custodied amount
// to the lock's owner.
func (transferBuilder) refundTransfer(lock *types.LockRecord) *types.TransferInstruction {
	return &types.TransferInstruction{
		Token:       lock.Token,
		Amount:      lock.Amount,
		Beneficiary: lock.Owner,
		LockID:      lock.ID,
	}
}
