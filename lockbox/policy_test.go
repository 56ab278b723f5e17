package lockbox

import (
	"testing"

	"github.com/giansalex/cw-lockbox/testutil"
	"github.com/giansalex/cw-lockbox/types"
)

func policyTestLock() *types.LockRecord {
	return &types.LockRecord{
		ID:        "lock-1",
		Owner:     "alice",
		Recipient: "bob",
		Status:    types.StatusLocked,
	}
}

func TestAuthorize_CreateIsOpenToAnyCaller(t *testing.T) {
	for _, policy := range []types.ReleasePolicy{
		types.ReleaseRecipientOnly,
		types.ReleaseOwnerOrRecipient,
		types.ReleaseAnyone,
	} {
		testutil.AssertNoError(t, authorize(policy, ActionCreate, nil, "anyone"),
			"CreateLock must be open under policy %s", policy)
	}
}

func TestAuthorize_ReleaseRecipientOnly(t *testing.T) {
	lock := policyTestLock()

	testutil.AssertNoError(t, authorize(types.ReleaseRecipientOnly, ActionRelease, lock, "bob"))
	testutil.AssertErrorIs(t, authorize(types.ReleaseRecipientOnly, ActionRelease, lock, "alice"), ErrUnauthorized,
		"owner may not release under recipient-only policy")
	testutil.AssertErrorIs(t, authorize(types.ReleaseRecipientOnly, ActionRelease, lock, "mallory"), ErrUnauthorized)
}

func TestAuthorize_ReleaseOwnerOrRecipient(t *testing.T) {
	lock := policyTestLock()

	testutil.AssertNoError(t, authorize(types.ReleaseOwnerOrRecipient, ActionRelease, lock, "bob"))
	testutil.AssertNoError(t, authorize(types.ReleaseOwnerOrRecipient, ActionRelease, lock, "alice"))
	testutil.AssertErrorIs(t, authorize(types.ReleaseOwnerOrRecipient, ActionRelease, lock, "mallory"), ErrUnauthorized)
}

func TestAuthorize_ReleaseAnyone(t *testing.T) {
	lock := policyTestLock()

	testutil.AssertNoError(t, authorize(types.ReleaseAnyone, ActionRelease, lock, "mallory"),
		"permissionless release admits any caller once the condition is met")
}

func TestAuthorize_CancelIsOwnerOnly(t *testing.T) {
	lock := policyTestLock()

	for _, policy := range []types.ReleasePolicy{
		types.ReleaseRecipientOnly,
		types.ReleaseOwnerOrRecipient,
		types.ReleaseAnyone,
	} {
		testutil.AssertNoError(t, authorize(policy, ActionCancel, lock, "alice"),
			"owner must be able to cancel under policy %s", policy)
		testutil.AssertErrorIs(t, authorize(policy, ActionCancel, lock, "bob"), ErrUnauthorized,
			"recipient may not cancel under policy %s", policy)
		testutil.AssertErrorIs(t, authorize(policy, ActionCancel, lock, "mallory"), ErrUnauthorized)
	}
}

func TestAuthorize_UnknownAction(t *testing.T) {
	testutil.AssertErrorIs(t, authorize(types.ReleaseAnyone, Action(42), policyTestLock(), "alice"), ErrUnauthorized)
}

func TestActionString(t *testing.T) {
	testutil.AssertEqual(t, "CreateLock", ActionCreate.String())
	testutil.AssertEqual(t, "Release", ActionRelease.String())
	testutil.AssertEqual(t, "Cancel", ActionCancel.String())
	testutil.AssertEqual(t, "Unknown", Action(9).String())
}
