package lockbox

import (
	"testing"

	"github.com/giansalex/cw-lockbox/testutil"
	"github.com/giansalex/cw-lockbox/types"
)

func TestTransferBuilder_ReleaseTransfer(t *testing.T) {
	lock := &types.LockRecord{
		ID:        "lock-7",
		Owner:     "alice",
		Recipient: "bob",
		Token:     "uatom",
		Amount:    250,
	}

	instruction := transferBuilder{}.releaseTransfer(lock)
	testutil.AssertEqual(t, &types.TransferInstruction{
		Token:       "uatom",
		Amount:      250,
		Beneficiary: "bob",
		LockID:      "lock-7",
	}, instruction)
}

func TestTransferBuilder_RefundTransfer(t *testing.T) {
	lock := &types.LockRecord{
		ID:        "lock-7",
		Owner:     "alice",
		Recipient: "bob",
		Token:     "uatom",
		Amount:    250,
	}

	instruction := transferBuilder{}.refundTransfer(lock)
	testutil.AssertEqual(t, types.PartyID("alice"), instruction.Beneficiary,
		"refund must return funds to the owner")
	testutil.AssertEqual(t, types.Amount(250), instruction.Amount,
		"instruction amount must equal the recorded amount exactly")
	testutil.AssertEqual(t, types.TokenID("uatom"), instruction.Token)
}
