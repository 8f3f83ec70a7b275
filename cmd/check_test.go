package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"funcsnap.dev/pkg/funcsnap/internal/domain"
	domainmocks "funcsnap.dev/pkg/funcsnap/internal/domain/mocks"
	m "funcsnap.dev/pkg/funcsnap/internal/model"
)

func TestCheckCmd_Defaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Check", mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Root == m.Path(".") &&
			args.Snapshot == m.Path(".funcsnap/current_modules.json") &&
			args.Previous == m.Path(".funcsnap/previous_modules.json") &&
			args.Parallel == 1 &&
			len(args.Targets) == 0 &&
			!args.ShowDiff
	})).Return(nil)

	cmd.SetArgs([]string{"check"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestCheckCmd_TargetsAndFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Check", mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Root == m.Path("./src") &&
			args.Previous == m.Path("base.json") &&
			args.Parallel == 4 &&
			args.ShowDiff &&
			assert.ObjectsAreEqual([]string{`_test\.go$`}, args.Exclude) &&
			assert.ObjectsAreEqual([]m.LookupPath{
				{File: "dq/utility.go", Qualifier: "<type dq.DataCheck>", Function: "AddErrorCol"},
				{File: "m.go", Qualifier: m.TopLevel, Function: "f"},
			}, args.Targets)
	})).Return(nil)

	cmd.SetArgs([]string{
		"check",
		"--root", "./src",
		"--previous", "base.json",
		"-p", "4",
		"-x", `_test\.go$`,
		"--diff",
		"-t", "dq/utility.go:<type dq.DataCheck>:AddErrorCol",
		"--target", "m.go::f",
	})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestCheckCmd_InvalidTarget(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"check", "-t", "m.go"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --target")

	mockWorkflow.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestCheckCmd_PropagatesFailure(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Check", mock.Anything, mock.Anything).Return(domain.ErrChecksFailed)

	cmd.SetArgs([]string{"check", "-t", "m.go::gone"})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrChecksFailed)
}

func TestParseTargets(t *testing.T) {
	targets, err := parseTargets([]string{"a.go::F", "b/c.go:<type c.T>:M"})
	require.NoError(t, err)
	assert.Equal(t, []m.LookupPath{
		{File: "a.go", Function: "F"},
		{File: "b/c.go", Qualifier: "<type c.T>", Function: "M"},
	}, targets)

	targets, err = parseTargets(nil)
	require.NoError(t, err)
	assert.Empty(t, targets)
}
