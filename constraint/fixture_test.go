package constraint_test

import (
	"github.com/lattice-forge/lattice-solver/domain"
)

// queen is the same minimal fixture domain/descriptor_test.go uses:
// column is fixed at construction, row is the sole genuine variable.
type queen struct {
	column int
	row    int
}

type board struct {
	queens []*queen
}

func queenDescriptor() domain.EntityDescriptor {
	return domain.EntityDescriptor{
		Name:  "queen",
		Count: func(sol interface{}) int { return len(sol.(*board).queens) },
		Get:   func(sol interface{}, i int) interface{} { return sol.(*board).queens[i] },
	}
}

func newBoard(rows ...int) *board {
	b := &board{}
	for col, row := range rows {
		b.queens = append(b.queens, &queen{column: col, row: row})
	}
	return b
}

func boardDescriptor() *domain.SolutionDescriptor {
	return domain.NewSolutionDescriptor([]domain.EntityDescriptor{queenDescriptor()}, nil)
}

// employee/shift is a second, two-collection fixture for the cross-join,
// exists and flattened-join patterns.
type employee struct {
	name        string
	unqualified string // a skill this employee cannot perform
}

type shift struct {
	day          string
	assignedName string // employee.name this shift is assigned to, "" if unassigned
	tasks        []string
}

type roster struct {
	employees []*employee
	shifts    []*shift
}

func employeeDescriptor() domain.EntityDescriptor {
	return domain.EntityDescriptor{
		Name:  "employee",
		Count: func(sol interface{}) int { return len(sol.(*roster).employees) },
		Get:   func(sol interface{}, i int) interface{} { return sol.(*roster).employees[i] },
	}
}

func shiftDescriptor() domain.EntityDescriptor {
	return domain.EntityDescriptor{
		Name:  "shift",
		Count: func(sol interface{}) int { return len(sol.(*roster).shifts) },
		Get:   func(sol interface{}, i int) interface{} { return sol.(*roster).shifts[i] },
	}
}

func rosterDescriptor() *domain.SolutionDescriptor {
	return domain.NewSolutionDescriptor([]domain.EntityDescriptor{employeeDescriptor(), shiftDescriptor()}, nil)
}
