package records

import (
	"fmt"
	"io"
)

// Student is a student record keyed by enrollment number.
type Student struct {
	ID     int64
	Name   string
	Course string
	Grade  float64
}

// NewStudent creates a student record.
func NewStudent(id int64, name, course string, grade float64) *Student {
	return &Student{ID: id, Name: name, Course: course, Grade: grade}
}

// Key returns the enrollment number.
func (s *Student) Key() int64 { return s.ID }

// SetGrade replaces the student's grade.
func (s *Student) SetGrade(grade float64) { s.Grade = grade }

// Display writes s on a single line.
func (s *Student) Display(w io.Writer) {
	fmt.Fprintf(w, "Student %6d  %s %s  grade %5.2f", s.ID, pad(s.Name, NameWidth),
		s.Course, s.Grade)
}
