package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogFilter_Matches(t *testing.T) {
	item := &CatalogItem{Name: "Mahatma Gandhi 1948", Description: "Service overprint", Category: "Definitive", Year: 1948}

	tests := []struct {
		name   string
		filter CatalogFilter
		want   bool
	}{
		{"empty filter", CatalogFilter{}, true},
		{"search name", CatalogFilter{Search: "gandhi"}, true},
		{"search description", CatalogFilter{Search: "OVERPRINT"}, true},
		{"search category", CatalogFilter{Search: "definitive"}, true},
		{"search miss", CatalogFilter{Search: "tiger"}, false},
		{"year inside", CatalogFilter{YearFrom: 1940, YearTo: 1950}, true},
		{"year before range", CatalogFilter{YearFrom: 1950}, false},
		{"year after range", CatalogFilter{YearTo: 1947}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(item))
		})
	}

	assert.False(t, CatalogFilter{YearTo: 2000}.Matches(&CatalogItem{}))
	assert.True(t, CatalogFilter{Search: "x"}.HasInMemoryCriteria())
	assert.False(t, CatalogFilter{Category: "x"}.HasInMemoryCriteria())
}
