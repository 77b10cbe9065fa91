package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shoestock/internal/csv"
	"shoestock/internal/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInventory = `Country,Code,Product,Cost,Quantity
South Africa,SKU44386,Air Max 90,2300,20
China,SKU90000,Jordan 1,3200,50
Vietnam,SKU63221,Blazer,1700,19
`

type session struct {
	shell *Shell
	svc   *inventory.Service
	path  string
	out   *bytes.Buffer
}

func newSession(t *testing.T, content *string, input string) *session {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.txt")
	if content != nil {
		require.NoError(t, os.WriteFile(path, []byte(*content), 0o644))
	}

	svc := inventory.NewService(csv.NewFile(path), inventory.Options{Currency: "£"})
	out := &bytes.Buffer{}
	return &session{
		shell: New(svc, "inventory.txt", strings.NewReader(input), out),
		svc:   svc,
		path:  path,
		out:   out,
	}
}

func (s *session) run(t *testing.T) string {
	t.Helper()
	require.NoError(t, s.shell.Run())
	return s.out.String()
}

func (s *session) file(t *testing.T) string {
	t.Helper()
	content, err := os.ReadFile(s.path)
	require.NoError(t, err)
	return string(content)
}

func inventoryText(s string) *string {
	return &s
}

func TestShell_QuitImmediately(t *testing.T) {
	s := newSession(t, inventoryText(sampleInventory), "0\n")
	out := s.run(t)

	assert.Contains(t, out, "Inventory successfully imported from 'inventory.txt'")
	assert.Contains(t, out, "Welcome to the inventory console. Options are as follows:\n\n")
	assert.Contains(t, out, "Promotional sale advice")
	assert.NotContains(t, out, "Continue?")
	assert.Equal(t, 3, s.svc.Store().Len())
}

func TestShell_EndOfInput(t *testing.T) {
	s := newSession(t, inventoryText(sampleInventory), "")
	s.run(t)
}

func TestShell_InvalidChoiceRedisplaysMenu(t *testing.T) {
	s := newSession(t, inventoryText(sampleInventory), "9\nquit\n")
	out := s.run(t)

	assert.Contains(t, out, "Invalid input")
	assert.Equal(t, 2, strings.Count(out, "Enter the number or keyword your choice"))
}

func TestShell_ViewThenStop(t *testing.T) {
	s := newSession(t, inventoryText(sampleInventory), "view\nmaybe\nN\n")
	out := s.run(t)

	assert.Contains(t, out, "SKU44386")
	assert.Contains(t, out, "Air Max 90")
	assert.Contains(t, out, "£23.00")
	assert.Contains(t, out, "Enter Y or N")
	assert.Contains(t, out, "Bye bye!")
}

func TestShell_ValueReport(t *testing.T) {
	s := newSession(t, inventoryText("h\nUK,ABC12345,Runner,500,10\n"), "6\nn\n")
	out := s.run(t)

	assert.Contains(t, out, "Value")
	assert.Contains(t, out, "£5.00")
	assert.Contains(t, out, "£50.00")
}

func TestShell_RepeatedImportDuplicates(t *testing.T) {
	s := newSession(t, inventoryText(sampleInventory), "import\ny\n0\n")
	s.run(t)

	assert.Equal(t, 6, s.svc.Store().Len())
}

func TestShell_CaptureDuplicateAbort(t *testing.T) {
	s := newSession(t, inventoryText(sampleInventory), "input\nUK\nSKU90000\nN\n0\n")
	out := s.run(t)

	assert.Contains(t, out, "Code already assigned to previous product")
	assert.Contains(t, out, "Jordan 1")
	assert.Contains(t, out, "Bye bye!")
	assert.NotContains(t, out, "Enter product")
	assert.Equal(t, 3, s.svc.Store().Len())
	assert.Equal(t, sampleInventory, s.file(t))
	// the session ended, so the queued quit was never read
	assert.Equal(t, 1, strings.Count(out, "Enter the number or keyword your choice"))
}

func TestShell_CaptureDuplicateRetry(t *testing.T) {
	input := "2\nUK\nSKU90000\ny\nABC12345\nRunner\n500\n10\nn\n"
	s := newSession(t, inventoryText(sampleInventory), input)
	s.run(t)

	assert.Equal(t, 4, s.svc.Store().Len())
	assert.Contains(t, s.file(t), "UK,ABC12345,Runner,500,10\n")
}

func TestShell_Capture(t *testing.T) {
	input := "2\nUK\nAB1\n12345678\nABC12345\nRunner\nfive\n-3\n500\nten\n10\nn\n"
	s := newSession(t, inventoryText(sampleInventory), input)
	out := s.run(t)

	assert.Contains(t, out, "Shoe codes should be 8 characters long")
	assert.Contains(t, out, "Shoe code must be in the form 'ABC12345'")
	assert.Contains(t, out, "Invalid cost")
	assert.Contains(t, out, "Invalid quantity")
	assert.Contains(t, out, "Shoe successfully added to list")
	assert.Contains(t, out, "'inventory.txt' updated")

	require.Equal(t, 4, s.svc.Store().Len())
	added := s.svc.Store().At(3)
	assert.Equal(t, 500, added.Cost)
	assert.Equal(t, 10, added.Quantity)
	assert.Equal(t, sampleInventory+"UK,ABC12345,Runner,500,10\n", s.file(t))
}

func TestShell_Restock(t *testing.T) {
	s := newSession(t, inventoryText(sampleInventory), "4\nmaybe\ny\nx\n0\n20\nn\n")
	out := s.run(t)

	assert.Contains(t, out, "Lowest stock determined to be 19 units")
	assert.Contains(t, out, "Please enter yes or no")
	assert.Contains(t, out, "Invalid quantity. Orders of zero or less are not accepted")
	assert.Contains(t, out, "Product inventory updated")

	assert.Equal(t, 39, s.svc.Store().At(2).Quantity)
	assert.Equal(t, 20, s.svc.Store().At(0).Quantity)
	assert.Equal(t, 50, s.svc.Store().At(1).Quantity)

	content := s.file(t)
	assert.Contains(t, content, "Vietnam,SKU63221,Blazer,1700,39\n")
	assert.Contains(t, content, "South Africa,SKU44386,Air Max 90,2300,20\n")
	assert.Contains(t, content, "China,SKU90000,Jordan 1,3200,50\n")
}

func TestShell_RestockDeclined(t *testing.T) {
	s := newSession(t, inventoryText(sampleInventory), "restock\nno\nn\n")
	s.run(t)

	assert.Equal(t, 19, s.svc.Store().At(2).Quantity)
	assert.Equal(t, sampleInventory, s.file(t))
}

func TestShell_Search(t *testing.T) {
	s := newSession(t, inventoryText(sampleInventory), "5\n12345678\nSKU90000\ny\nsearch\nZZZ00000\nn\n")
	out := s.run(t)

	assert.Contains(t, out, "Shoe code must be in the form 'ABC12345'")
	assert.Contains(t, out, "Product:\t\tJordan 1")
	assert.Contains(t, out, "Sale Status:\tNot on Sale")
	assert.Contains(t, out, "Shoe not found in inventory")
}

func TestShell_SaleAdvice(t *testing.T) {
	s := newSession(t, inventoryText(sampleInventory), "7\nn\n")
	out := s.run(t)

	assert.Contains(t, out, "Largest stock determined to be 50 units")
	assert.Contains(t, out, "Sale Status:\tOn Sale")
	assert.Contains(t, out, "Sale now on")
	assert.True(t, s.svc.Store().At(1).Sale)
}

func TestShell_MissingFile(t *testing.T) {
	s := newSession(t, nil, "4\ny\n7\nn\n")
	out := s.run(t)

	assert.Contains(t, out, "Inventory file not found")
	assert.Contains(t, out, "Cannot import stock from file")
	assert.Equal(t, 2, strings.Count(out, "No stock records loaded"))
	assert.NoFileExists(t, s.path)
}

func TestShell_MissingFileCapture(t *testing.T) {
	s := newSession(t, nil, "2\nUK\nABC12345\nRunner\n500\n10\nn\n")
	out := s.run(t)

	assert.Contains(t, out, "Shoe successfully added to list")
	assert.Contains(t, out, "Cannot update inventory file")
	assert.Equal(t, 1, s.svc.Store().Len())
	assert.NoFileExists(t, s.path)
}

func TestShell_RestockWithoutFile(t *testing.T) {
	s := newSession(t, inventoryText(sampleInventory), "")
	_, err := s.svc.Import()
	require.NoError(t, err)
	require.NoError(t, os.Remove(s.path))

	s.shell.prompt = NewPrompter(strings.NewReader("n\n"), s.out)
	_, err = s.shell.restock()
	require.NoError(t, err)

	assert.Contains(t, s.out.String(), "Cannot update stock")
	assert.NotContains(t, s.out.String(), "Would you like to restock")
}

func TestShell_MalformedFile(t *testing.T) {
	s := newSession(t, inventoryText("h\nUK,ABC12345,Runner,five,10\n"), "0\n")
	out := s.run(t)

	assert.Contains(t, out, "Invalid value(s) for costs or quantities in inventory.txt")
	assert.Equal(t, 0, s.svc.Store().Len())
}

func TestRenderTable_HeaderFirst(t *testing.T) {
	out := renderTable([]string{"Code", "Quantity"}, [][]string{{"ABC12345", "10"}, {"ABD12345", "4"}})
	lines := strings.Split(out, "\n")

	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "Code")
	assert.Contains(t, lines[0], "Quantity")
	assert.NotContains(t, lines[0], "ABC12345")
	assert.Contains(t, out, "ABC12345")
	assert.Contains(t, out, "ABD12345")
}
