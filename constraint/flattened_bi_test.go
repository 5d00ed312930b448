package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lattice-forge/lattice-solver/constraint"
	"github.com/lattice-forge/lattice-solver/domain"
	"github.com/lattice-forge/lattice-solver/score"
)

func taskList(b interface{}) []interface{} {
	tasks := b.(*shift).tasks
	out := make([]interface{}, len(tasks))
	for i, t := range tasks {
		out[i] = t
	}
	return out
}

func identityString(v interface{}) interface{} { return v }

func employeeUnqualified(a interface{}) interface{} { return a.(*employee).unqualified }

func newUnqualifiedTaskConstraint(desc *domain.SolutionDescriptor) *constraint.FlattenedBi {
	return constraint.NewFlattenedBi(
		"unqualifiedTask", "unqualifiedTask", true,
		desc, 0, 1,
		score.ZeroHardSoft(),
		employeeName, shiftAssignee,
		taskList,
		identityString,
		employeeUnqualified,
		nil,
		func(interface{}, interface{}, interface{}) score.Score { return score.NewHardSoft(1, 0) },
		true,
	)
}

func rosterWithTasks() *roster {
	return &roster{
		employees: []*employee{
			{name: "alice", unqualified: "welding"},
			{name: "bob", unqualified: "driving"},
		},
		shifts: []*shift{
			{day: "mon", assignedName: "alice", tasks: []string{"welding", "paint"}},
			{day: "tue", assignedName: "alice", tasks: []string{"paint"}},
			{day: "wed", assignedName: "bob", tasks: []string{"driving"}},
			{day: "thu", assignedName: "", tasks: []string{"welding"}},
		},
	}
}

func TestFlattenedBiInitializeFindsUnqualifiedAssignments(t *testing.T) {
	desc := rosterDescriptor()
	r := rosterWithTasks()
	c := newUnqualifiedTaskConstraint(desc)

	total, err := c.Initialize(r)
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(-2, 0), total) // alice/mon/welding and bob/wed/driving

	n, err := c.MatchCount(r)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestFlattenedBiRetractShiftDropsItsMatches(t *testing.T) {
	desc := rosterDescriptor()
	r := rosterWithTasks()
	c := newUnqualifiedTaskConstraint(desc)
	_, err := c.Initialize(r)
	require.NoError(t, err)

	delta, err := c.OnRetract(r, domain.EntityRef{DescriptorIndex: 1, EntityIndex: 0}) // mon shift
	require.NoError(t, err)
	require.Equal(t, score.NewHardSoft(1, 0), delta)
}

func TestFlattenedBiEvaluateMatchesInitialize(t *testing.T) {
	desc := rosterDescriptor()
	r := rosterWithTasks()
	c := newUnqualifiedTaskConstraint(desc)

	initTotal, err := c.Initialize(r)
	require.NoError(t, err)
	evalTotal, err := c.Evaluate(r)
	require.NoError(t, err)
	require.Equal(t, initTotal, evalTotal)
}
