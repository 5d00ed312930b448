package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-forge/lattice-solver/constraint"
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

func newIdleEmployeeExists(desc *domain.SolutionDescriptor) *constraint.Exists {
	return constraint.NewExists(
		"idleEmployee", "idleEmployee", true,
		desc, 0, 1,
		score.ZeroHardSoft(),
		constraint.ModeNotExists,
		employeeName, shiftAssignee,
		nil,
		func(interface{}) score.Score { return score.NewHardSoft(1, 0) },
		true,
	)
}

func rosterWithIdleEmployee() *roster {
	return &roster{
		employees: []*employee{{name: "alice"}, {name: "bob"}, {name: "carol"}},
		shifts: []*shift{
			{day: "mon", assignedName: "alice"},
			{day: "tue", assignedName: "bob"},
		},
	}
}

func TestExistsPenalizesIdleEmployees(t *testing.T) {
	desc := rosterDescriptor()
	r := rosterWithIdleEmployee()
	c := newIdleEmployeeExists(desc)

	total, err := c.Initialize(r)
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(-1, 0), total) // only carol is idle

	n, err := c.MatchCount(r)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestExistsTransitionOnNewShiftAssignment(t *testing.T) {
	desc := rosterDescriptor()
	r := rosterWithIdleEmployee()
	c := newIdleEmployeeExists(desc)
	_, err := c.Initialize(r)
	require.NoError(t, err)

	// A brand-new shift, assigned to carol directly, flips her from idle
	// to busy in a single insert.
	r.shifts = append(r.shifts, &shift{day: "wed", assignedName: "carol"})
	delta, err := c.OnInsert(r, domain.EntityRef{DescriptorIndex: 1, EntityIndex: 2})
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(1, 0), delta) // carol's idle penalty is removed

	full, err := c.Evaluate(r)
	require.NoError(t, err)
	require.Equal(t, score.ZeroHardSoft(), full)
}
