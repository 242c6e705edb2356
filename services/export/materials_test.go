package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/unirepo/core/material"
)

func TestMaterialsWorkbook(t *testing.T) {
	materials := []material.Material{
		{ID: "1", Title: "Advanced Data Structures and Algorithms", Author: "Dr. Johnson Smith", Type: material.TypeBook,
			Year: "2023", Keywords: []string{"data structures", "algorithms"}, Downloads: 234, UploadedBy: "admin"},
		{ID: "2", Title: "Machine Learning Applications in Agriculture", Author: "Prof. Mary Adebayo", Type: material.TypeJournal,
			Year: "2024", Keywords: []string{"machine learning"}, Downloads: 156, UploadedBy: "admin"},
		{ID: "3", Title: "Another Book", Type: material.TypeBook, Year: "2020", Downloads: 6},
	}

	buf, err := MaterialsWorkbook(materials)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{materialsSheet, summarySheet}, f.GetSheetList())

	rows, err := f.GetRows(materialsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, materialHeaders, rows[0])
	assert.Equal(t, "Advanced Data Structures and Algorithms", rows[1][1])
	assert.Equal(t, "data structures, algorithms", rows[1][5])
	assert.Equal(t, "156", rows[2][6])

	books, err := f.GetCellValue(summarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "2", books)
	bookDownloads, err := f.GetCellValue(summarySheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "240", bookDownloads)
}

func TestMaterialsWorkbook_empty(t *testing.T) {
	buf, err := MaterialsWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(materialsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
