package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageSize(t *testing.T) {
	tests := []struct {
		input   string
		want    PageSize
		wantErr bool
	}{
		{"10", 10, false},
		{" 50 ", 50, false},
		{"all", PageSizeAll, false},
		{"ALL", PageSizeAll, false},
		{"7", 7, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"twenty", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePageSize(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPageSize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageSize(t *testing.T) {
	assert.Equal(t, "all", PageSizeAll.String())
	assert.Equal(t, "20", DefaultPageSize.String())

	assert.True(t, PageSizeAll.IsAll())
	assert.False(t, DefaultPageSize.IsAll())

	assert.Equal(t, 731, PageSizeAll.Effective(731))
	assert.Equal(t, 0, PageSizeAll.Effective(0))
	assert.Equal(t, 20, DefaultPageSize.Effective(731))

	labels := make([]string, len(PageSizeChoices))
	for i, s := range PageSizeChoices {
		labels[i] = s.String()
	}
	assert.Equal(t, []string{"10", "20", "50", "100", "all"}, labels)
}

func TestPageSizeChoicesWith(t *testing.T) {
	tests := []struct {
		size PageSize
		want []PageSize
	}{
		{25, []PageSize{10, 20, 25, 50, 100, PageSizeAll}},
		{5, []PageSize{5, 10, 20, 50, 100, PageSizeAll}},
		{500, []PageSize{10, 20, 50, 100, 500, PageSizeAll}},
		{50, []PageSize{10, 20, 50, 100, PageSizeAll}},
		{PageSizeAll, []PageSize{10, 20, 50, 100, PageSizeAll}},
	}

	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, PageSizeChoicesWith(tt.size))
		})
	}

	PageSizeChoicesWith(25)[0] = 99
	assert.Equal(t, PageSize(10), PageSizeChoices[0], "choices are not shared")
}

func TestSortOrder(t *testing.T) {
	assert.Equal(t, Descending, Ascending.Toggle())
	assert.Equal(t, Ascending, Descending.Toggle())
	assert.Equal(t, "asc", Ascending.String())
	assert.Equal(t, "desc", Descending.String())
}

func TestView_VisibleRows(t *testing.T) {
	v := View{Rows: []Row{
		{Record: Record{Name: "a"}, Visible: true},
		{Record: Record{Name: "b"}},
		{Record: Record{Name: "c"}, Visible: true},
	}}

	rows := v.VisibleRows()
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].Record.Name)
	assert.Equal(t, "c", rows[1].Record.Name)

	assert.Empty(t, View{}.VisibleRows())
}
