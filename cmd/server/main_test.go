package main

import (
	"testing"

	"github.com/giansalex/cw-lockbox/lockbox"
	"github.com/giansalex/cw-lockbox/store"
	"github.com/giansalex/cw-lockbox/testutil"
	"github.com/giansalex/cw-lockbox/types"
)

func TestParseReleasePolicy(t *testing.T) {
	tests := []struct {
		input       string
		expected    types.ReleasePolicy
		expectError bool
	}{
		{input: "recipient", expected: types.ReleaseRecipientOnly},
		{input: "owner-or-recipient", expected: types.ReleaseOwnerOrRecipient},
		{input: "anyone", expected: types.ReleaseAnyone},
		{input: "", expectError: true},
		{input: "everyone", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			policy, err := parseReleasePolicy(tt.input)
			if tt.expectError {
				testutil.AssertError(t, err)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, tt.expected, policy)
		})
	}
}

func TestDefaultReleasePolicyMatchesEngine(t *testing.T) {
	policy, err := parseReleasePolicy(*releasePolicy)
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, lockbox.DefaultConfig().ReleasePolicy, policy,
		"the flag default must select the engine's default policy")
}

func TestBuildStore(t *testing.T) {
	s, err := buildStore("", nil)
	testutil.RequireNoError(t, err)
	if _, ok := s.(*store.MemoryStore); !ok {
		t.Fatalf("expected in-memory store when no data dir is set, got %T", s)
	}

	dir := t.TempDir()
	s, err = buildStore(dir, nil)
	testutil.RequireNoError(t, err)
	if _, ok := s.(*store.FileStore); !ok {
		t.Fatalf("expected file-backed store for %s, got %T", dir, s)
	}
}
