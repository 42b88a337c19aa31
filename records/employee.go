package records

import (
	"fmt"
	"io"
)

// Employee is a staff record keyed by staff number.
type Employee struct {
	ID         int64
	Name       string
	Role       string
	Department string
	Salary     float64
}

// NewEmployee creates an employee record.
func NewEmployee(id int64, name, role, department string, salary float64) *Employee {
	return &Employee{ID: id, Name: name, Role: role, Department: department, Salary: salary}
}

// Key returns the staff number.
func (e *Employee) Key() int64 { return e.ID }

// SetSalary replaces the salary.
func (e *Employee) SetSalary(salary float64) { e.Salary = salary }

// SetRole replaces the role.
func (e *Employee) SetRole(role string) { e.Role = role }

// Display writes e on a single line.
func (e *Employee) Display(w io.Writer) {
	fmt.Fprintf(w, "Employee %6d  %s %s, %s  %s", e.ID, pad(e.Name, NameWidth),
		e.Role, e.Department, Money(e.Salary))
}
