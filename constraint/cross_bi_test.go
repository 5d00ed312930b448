package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-forge/lattice-solver/constraint"
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

func employeeName(e interface{}) interface{} { return e.(*employee).name }
func shiftAssignee(e interface{}) interface{} { return e.(*shift).assignedName }

func newAssignmentCrossBi(desc *domain.SolutionDescriptor) *constraint.CrossBi {
	return constraint.NewCrossBi(
		"assignment", "assignment", true,
		desc, 0, 1,
		score.ZeroHardSoft(),
		employeeName, shiftAssignee,
		nil,
		func(interface{}, interface{}) score.Score { return score.NewHardSoft(1, 0) },
		false, // reward: every matched (employee, shift) pair contributes +1hard
	)
}

func newRoster() *roster {
	return &roster{
		employees: []*employee{{name: "alice"}, {name: "bob"}},
		shifts: []*shift{
			{day: "mon", assignedName: "alice"},
			{day: "tue", assignedName: "alice"},
			{day: "wed", assignedName: "bob"},
			{day: "thu", assignedName: ""},
		},
	}
}

func TestCrossBiInitializeCountsAssignedShifts(t *testing.T) {
	desc := rosterDescriptor()
	r := newRoster()
	c := newAssignmentCrossBi(desc)

	total, err := c.Initialize(r)
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(3, 0), total) // 2 alice + 1 bob, thu is unassigned

	n, err := c.MatchCount(r)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestCrossBiReassignShift(t *testing.T) {
	desc := rosterDescriptor()
	r := newRoster()
	c := newAssignmentCrossBi(desc)
	_, err := c.Initialize(r)
	require.NoError(t, err)

	// Reassign shift 1 (tue, alice) to bob.
	delta, err := c.OnRetract(r, domain.EntityRef{DescriptorIndex: 1, EntityIndex: 1})
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(-1, 0), delta)

	r.shifts[1].assignedName = "bob"
	delta, err = c.OnInsert(r, domain.EntityRef{DescriptorIndex: 1, EntityIndex: 1})
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(1, 0), delta)

	full, err := c.Evaluate(r)
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(3, 0), full)
}

func TestCrossBiRetractEmployeeDropsTheirMatches(t *testing.T) {
	desc := rosterDescriptor()
	r := newRoster()
	c := newAssignmentCrossBi(desc)
	_, err := c.Initialize(r)
	require.NoError(t, err)

	delta, err := c.OnRetract(r, domain.EntityRef{DescriptorIndex: 0, EntityIndex: 0}) // alice
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(-2, 0), delta)
}
