package records

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/npillmayer/keyed"
	"github.com/npillmayer/keyed/bst"
	"github.com/npillmayer/keyed/seqlist"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/require"
)

func display(e keyed.Element) string {
	var bf bytes.Buffer
	e.Display(&bf)
	return bf.String()
}

func TestMoney(t *testing.T) {
	require.Equal(t, "R$ 1.234,56", Money(1234.56))
	require.Equal(t, "R$ 0,00", Money(0))
	require.Equal(t, "-R$ 12,50", Money(-12.5))
	require.Equal(t, "1.200 units", units(1200))
	require.Equal(t, "1 unit", units(1))
}

func TestPadByDisplayWidth(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	require.Equal(t, 4, Width("João"))
	require.Equal(t, 4, Width("Joa\u0303o"), "combining tilde occupies no cell")
	require.Equal(t, "João  ", pad("João", 6))
	require.Equal(t, "Joa\u0303o  ", pad("Joa\u0303o", 6))
	require.Equal(t, "Guimarães", pad("Guimarães", 3))
}

func TestStudent(t *testing.T) {
	name := randomdata.FullName(randomdata.RandomGender)
	s := NewStudent(17, name, "Física", 8)
	require.Equal(t, int64(17), s.Key())
	s.SetGrade(9.25)
	out := display(s)
	require.Contains(t, out, name)
	require.Contains(t, out, "grade  9.25")
	require.NotContains(t, out, "\n")
}

func TestEmployee(t *testing.T) {
	e := NewEmployee(501, randomdata.FullName(randomdata.Female), "Analista", "TI", 5000)
	e.SetSalary(8450)
	e.SetRole("Coordenadora")
	out := display(e)
	require.Contains(t, out, "Coordenadora, TI")
	require.Contains(t, out, "R$ 8.450,00")
}

func TestProductStock(t *testing.T) {
	p := NewProduct(1001, randomdata.SillyName(), "Papelaria", "Tilibra", 12.5, 10)
	require.True(t, p.Available())
	require.False(t, p.RemoveStock(11))
	require.Equal(t, 10, p.Stock)
	require.False(t, p.RemoveStock(0))
	require.True(t, p.RemoveStock(10))
	require.False(t, p.Available())
	p.AddStock(-3)
	require.Equal(t, 0, p.Stock)
	p.AddStock(4)
	p.SetPrice(-1)
	require.Equal(t, 12.5, p.Price)
	require.Equal(t, 50.0, p.StockValue())
	require.Contains(t, display(p), "4 units × R$ 12,50 = R$ 50,00")

	q := NewProduct(1002, "x", "y", "z", -5, -1)
	require.Equal(t, 0.0, q.Price)
	require.Equal(t, 0, q.Stock)
	require.Contains(t, display(q), "sold out")
}

func loadFixture(t *testing.T) []keyed.Element {
	t.Helper()
	f, err := os.Open("testdata/records.toml")
	require.NoError(t, err)
	defer f.Close()
	elems, err := Load(f)
	require.NoError(t, err)
	return elems
}

func TestLoad(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	elems := loadFixture(t)
	require.Equal(t, []int64{20230017, 20230042, 501, 1001, 1002}, keyed.Keys(elems))

	student, ok := elems[1].(*Student)
	require.True(t, ok)
	require.Equal(t, "João Guimarães", student.Name)
	require.Equal(t, 7.25, student.Grade)
	product := elems[3].(*Product)
	require.Equal(t, 1200, product.Stock)
	require.Contains(t, display(product), "1.200 units")
}

func TestLoadRejectsUnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("[[student]]\nid = 1\nnickname = \"x\"\n"))
	require.True(t, errors.Is(err, ErrUnknownField), "got %v", err)
	_, err = Load(strings.NewReader("[[student]\n"))
	require.Error(t, err)
}

func TestRecordsInContainers(t *testing.T) {
	list, err := seqlist.NewOrdered(2)
	require.NoError(t, err)
	for _, e := range loadFixture(t) {
		require.True(t, list.Insert(e))
	}
	// a container owns its elements, the tree gets its own copies
	tree := bst.New()
	for _, e := range loadFixture(t) {
		require.True(t, tree.Insert(e))
	}
	require.True(t, list.IsSorted())
	require.Equal(t, keyed.Keys(collect(list.All())), keyed.Keys(collect(tree.All())))

	var bf bytes.Buffer
	list.Print(&bf)
	require.Contains(t, bf.String(), "5 elements")
	require.Contains(t, bf.String(), "Carla Souza")
}

func collect(seq func(func(keyed.Element) bool)) []keyed.Element {
	var elems []keyed.Element
	for e := range seq {
		elems = append(elems, e)
	}
	return elems
}
