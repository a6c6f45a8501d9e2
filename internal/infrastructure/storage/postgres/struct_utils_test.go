package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anmds2025/roomify/internal/core/entity"
	"github.com/anmds2025/roomify/internal/core/id"
)

type mockCatalog struct {
	entity.BaseCatalog
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	expectedCols := []string{"id", "deletion_mark", "version", "code", "name"}
	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
}

func TestStructToMap(t *testing.T) {
	cat := mockCatalog{
		BaseCatalog: entity.BaseCatalog{
			BaseEntity: entity.BaseEntity{
				ID:           id.New(),
				DeletionMark: true,
				Version:      5,
			},
		},
		Code: "P101",
		Name: "Room 101",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "P101", m["code"])
	assert.Equal(t, "Room 101", m["name"])
}

func TestStructToMap_SkipsUntaggedFields(t *testing.T) {
	type withUntagged struct {
		Code   string `db:"code"`
		Lines  []int  `db:"-"`
		Hidden string
	}

	m := StructToMap(withUntagged{Code: "X", Lines: []int{1}, Hidden: "y"})

	assert.Equal(t, map[string]any{"code": "X"}, m)
}
