package csv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"shoestock/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInventory = `Country,Code,Product,Cost,Quantity
South Africa,SKU44386,Air Max 90,2300,20
China,SKU90000,Jordan 1,3200,50
Vietnam,SKU63221,Blazer,1700,19
`

func writeInventory(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFile_Load(t *testing.T) {
	path := writeInventory(t, sampleInventory)

	shoes, err := NewFile(path).Load()
	require.NoError(t, err)
	require.Len(t, shoes, 3)

	assert.Equal(t, models.Shoe{Country: "South Africa", Code: "SKU44386", Product: "Air Max 90", Cost: 2300, Quantity: 20}, shoes[0])
	assert.Equal(t, "SKU90000", shoes[1].Code)
	assert.Equal(t, 19, shoes[2].Quantity)
}

func TestFile_Load_IgnoresHeaderContent(t *testing.T) {
	path := writeInventory(t, "anything at all\nUK,ABC12345,Runner,500,10\n")

	shoes, err := NewFile(path).Load()
	require.NoError(t, err)
	require.Len(t, shoes, 1)
	assert.Equal(t, "ABC12345", shoes[0].Code)
}

func TestFile_Load_Empty(t *testing.T) {
	tests := map[string]string{
		"no content":  "",
		"header only": "Country,Code,Product,Cost,Quantity\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			shoes, err := NewFile(writeInventory(t, content)).Load()
			require.NoError(t, err)
			assert.Empty(t, shoes)
		})
	}
}

func TestFile_Load_MissingFile(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "nope.txt")).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFile_Load_MalformedAbortsWholeImport(t *testing.T) {
	tests := map[string]string{
		"non integer cost":     sampleInventory + "UK,ABC12345,Runner,five,10\n",
		"non integer quantity": "h\nUK,ABC12345,Runner,500,ten\nUK,ABD12345,Runner,500,10\n",
		"missing field":        "h\nUK,ABC12345,Runner,500\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			shoes, err := NewFile(writeInventory(t, content)).Load()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRecord))
			assert.Nil(t, shoes)
		})
	}
}

func TestFile_Load_MalformedNamesLine(t *testing.T) {
	path := writeInventory(t, sampleInventory+"UK,ABC12345,Runner,five,10\n")

	_, err := NewFile(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 5")
}

func TestFile_Load_QuotesArePlainText(t *testing.T) {
	path := writeInventory(t, "Country,Code,Product,Cost,Quantity\n"+
		"UK,ABC12345,Air \"Max\",500,10\n"+
		"UK,ABD12345,\"Classic Runner,700,3\n")

	shoes, err := NewFile(path).Load()
	require.NoError(t, err)
	require.Len(t, shoes, 2)
	assert.Equal(t, `Air "Max"`, shoes[0].Product)
	assert.Equal(t, `"Classic Runner`, shoes[1].Product)
	assert.Equal(t, 700, shoes[1].Cost)
}

func TestFile_Load_BlankFirstLineIsHeader(t *testing.T) {
	path := writeInventory(t, "\nUK,ABC12345,Runner,500,10\nFR,ABD12345,Trainer,900,4\n")

	shoes, err := NewFile(path).Load()
	require.NoError(t, err)
	require.Len(t, shoes, 2)
	assert.Equal(t, "ABC12345", shoes[0].Code)
	assert.Equal(t, "ABD12345", shoes[1].Code)
}

func TestFile_Load_SkipsBlankBodyLines(t *testing.T) {
	path := writeInventory(t, sampleInventory+"\n   \n")

	shoes, err := NewFile(path).Load()
	require.NoError(t, err)
	assert.Len(t, shoes, 3)
}

func TestFile_Load_TrimsNumbers(t *testing.T) {
	path := writeInventory(t, "h\nUK,ABC12345,Runner,500 , 10\r\n")

	shoes, err := NewFile(path).Load()
	require.NoError(t, err)
	require.Len(t, shoes, 1)
	assert.Equal(t, 500, shoes[0].Cost)
	assert.Equal(t, 10, shoes[0].Quantity)
}

func TestFile_Load_IgnoresExtraColumns(t *testing.T) {
	path := writeInventory(t, "h\nUK,ABC12345,Runner,500,10,discontinued,\n")

	shoes, err := NewFile(path).Load()
	require.NoError(t, err)
	require.Len(t, shoes, 1)
	assert.Equal(t, models.Shoe{Country: "UK", Code: "ABC12345", Product: "Runner", Cost: 500, Quantity: 10}, shoes[0])
}

func TestFile_Append(t *testing.T) {
	path := writeInventory(t, sampleInventory)
	file := NewFile(path)

	shoe := models.Shoe{Country: "UK", Code: "ABC12345", Product: "Runner", Cost: 500, Quantity: 10}
	require.NoError(t, file.Append(shoe))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleInventory+"UK,ABC12345,Runner,500,10\n", string(content))

	shoes, err := file.Load()
	require.NoError(t, err)
	require.Len(t, shoes, 4)
	assert.Equal(t, shoe, shoes[3])
}

func TestFile_Append_NoTrailingNewline(t *testing.T) {
	path := writeInventory(t, "Country,Code,Product,Cost,Quantity\nUK,ABC12345,Runner,500,10")
	file := NewFile(path)

	require.NoError(t, file.Append(models.Shoe{Country: "FR", Code: "XYZ00001", Product: "Boot", Cost: 900, Quantity: 3}))

	shoes, err := file.Load()
	require.NoError(t, err)
	require.Len(t, shoes, 2)
	assert.Equal(t, "XYZ00001", shoes[1].Code)
}

func TestFile_Append_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.txt")

	err := NewFile(path).Append(models.Shoe{Code: "ABC12345"})
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.NoFileExists(t, path)
}

func TestFile_RewriteRoundTrip(t *testing.T) {
	path := writeInventory(t, sampleInventory)
	file := NewFile(path)

	shoes, err := file.Load()
	require.NoError(t, err)

	shoes[2].Quantity += 20
	require.NoError(t, file.Rewrite(shoes))

	reloaded, err := file.Load()
	require.NoError(t, err)
	assert.Equal(t, shoes, reloaded)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Country,Code,Product,Cost,Quantity\n")
	assert.Contains(t, string(content), "Vietnam,SKU63221,Blazer,1700,39\n")
}

func TestFile_Rewrite_ShrinksFile(t *testing.T) {
	path := writeInventory(t, sampleInventory)
	file := NewFile(path)

	require.NoError(t, file.Rewrite([]models.Shoe{{Country: "UK", Code: "ABC12345", Product: "Runner", Cost: 1, Quantity: 2}}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Country,Code,Product,Cost,Quantity\nUK,ABC12345,Runner,1,2\n", string(content))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestFile_QuotedProductRoundTrip(t *testing.T) {
	path := writeInventory(t, "Country,Code,Product,Cost,Quantity\n")
	file := NewFile(path)
	shoe := models.Shoe{Country: "UK", Code: "ABC12345", Product: `Air "Max"`, Cost: 500, Quantity: 10}

	require.NoError(t, file.Append(shoe))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Country,Code,Product,Cost,Quantity\nUK,ABC12345,Air \"Max\",500,10\n", string(content))

	shoe.Product = `"Classic" Runner`
	require.NoError(t, file.Rewrite([]models.Shoe{shoe}))
	shoes, err := file.Load()
	require.NoError(t, err)
	require.Len(t, shoes, 1)
	assert.Equal(t, shoe, shoes[0])
}

func TestFile_Rewrite_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.txt")

	err := NewFile(path).Rewrite(nil)
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.NoFileExists(t, path)
}

func TestFile_Create(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.txt")
	file := NewFile(path)

	require.NoError(t, file.Create())
	assert.True(t, file.Exists())
	assert.Error(t, file.Create())

	shoes, err := file.Load()
	require.NoError(t, err)
	assert.Empty(t, shoes)
}
