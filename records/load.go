package records

import (
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/keyed"
)

// ErrUnknownField is returned by Load for keys which do not belong to any
// record field.
var ErrUnknownField = errors.New("records: unknown field")

type document struct {
	Student  []studentRecord  `toml:"student"`
	Employee []employeeRecord `toml:"employee"`
	Product  []productRecord  `toml:"product"`
}

type studentRecord struct {
	ID     int64   `toml:"id"`
	Name   string  `toml:"name"`
	Course string  `toml:"course"`
	Grade  float64 `toml:"grade"`
}

type employeeRecord struct {
	ID         int64   `toml:"id"`
	Name       string  `toml:"name"`
	Role       string  `toml:"role"`
	Department string  `toml:"department"`
	Salary     float64 `toml:"salary"`
}

type productRecord struct {
	ID       int64   `toml:"id"`
	Name     string  `toml:"name"`
	Category string  `toml:"category"`
	Brand    string  `toml:"brand"`
	Price    float64 `toml:"price"`
	Stock    int     `toml:"stock"`
}

// Load reads records from a TOML document with [[student]], [[employee]]
// and [[product]] tables. Records are returned students first, then
// employees, then products, each in document order.
func Load(r io.Reader) ([]keyed.Element, error) {
	var doc document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(err, "records: cannot decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Wrapf(ErrUnknownField, "%s", strings.Join(keys, ", "))
	}
	elems := make([]keyed.Element, 0, len(doc.Student)+len(doc.Employee)+len(doc.Product))
	for _, s := range doc.Student {
		elems = append(elems, NewStudent(s.ID, s.Name, s.Course, s.Grade))
	}
	for _, e := range doc.Employee {
		elems = append(elems, NewEmployee(e.ID, e.Name, e.Role, e.Department, e.Salary))
	}
	for _, p := range doc.Product {
		elems = append(elems, NewProduct(p.ID, p.Name, p.Category, p.Brand, p.Price, p.Stock))
	}
	keyed.T().Debugf("records: loaded %d records", len(elems))
	return elems, nil
}
