package policy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_Approve(t *testing.T) {
	var testCases = []struct {
		description string
		policy      *Policy
		step        string
		expectErr   bool
	}{
		{description: "nil policy", policy: nil, step: "python.install"},
		{description: "auto", policy: &Policy{Mode: ModeAuto}, step: "python.install"},
		{description: "deny", policy: &Policy{Mode: ModeDeny}, step: "env.resolve", expectErr: true},
		{description: "blocked", policy: &Policy{BlockList: []string{"Python.Install"}}, step: "python.install", expectErr: true},
		{description: "blocked prefix", policy: &Policy{BlockList: []string{"venv."}}, step: "venv.clean", expectErr: true},
		{description: "not in allow list", policy: &Policy{AllowList: []string{"env.resolve"}}, step: "venv.create", expectErr: true},
		{description: "allow list", policy: &Policy{AllowList: []string{"env.resolve"}}, step: "env.resolve"},
		{description: "ask approved", policy: &Policy{Mode: ModeAsk, Ask: func(ctx context.Context, step string, p *Policy) bool { return true }}, step: "venv.create"},
		{description: "ask rejected", policy: &Policy{Mode: ModeAsk, Ask: func(ctx context.Context, step string, p *Policy) bool { return false }}, step: "venv.create", expectErr: true},
		{description: "ask without prompt", policy: &Policy{Mode: ModeAsk}, step: "venv.create", expectErr: true},
	}
	for _, testCase := range testCases {
		err := testCase.policy.Approve(context.Background(), testCase.step)
		if testCase.expectErr {
			assert.True(t, errors.Is(err, ErrRejected), testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
	}
}

func TestParseBool(t *testing.T) {
	var testCases = []struct {
		input        string
		defaultValue bool
		expect       bool
	}{
		{input: "yes", expect: true},
		{input: "Y", expect: true},
		{input: "ye", expect: true},
		{input: "no", defaultValue: true, expect: false},
		{input: "N", defaultValue: true, expect: false},
		{input: "maybe", defaultValue: true, expect: true},
		{input: "", expect: false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, ParseBool(testCase.input, testCase.defaultValue), testCase.input)
	}
}

func TestContext(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))
	p := &Policy{Mode: ModeDeny}
	assert.Same(t, p, FromContext(WithPolicy(context.Background(), p)))
	assert.Nil(t, FromConfig(nil))
	assert.Equal(t, ModeAsk, FromConfig(&Config{Mode: ModeAsk}).Mode)
	assert.Error(t, (&Config{Mode: "sometimes"}).Validate())
}
