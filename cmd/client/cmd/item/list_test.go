package item

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemdesk/internal/domain/item"
)

var records = []item.Item{
	{ID: 1, Title: "Buy milk", Description: "2 liters, \"fresh\"", Type: item.TypeTask, Color: item.ColorBlue, Position: 0},
	{ID: 2, Title: "Go docs", Type: item.TypeLink, Color: item.ColorGreen, Position: 1, IsPinned: true},
}

func TestPrintCSV(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printCSV(&out, records))

	want := "id,position,type,color,is_pinned,title,description\n" +
		"1,0,task,blue,false,Buy milk,\"2 liters, \"\"fresh\"\"\"\n" +
		"2,1,link,green,true,Go docs,\n"
	assert.Equal(t, want, out.String())
}

func TestPrintJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printJSON(&out, records))

	var got []item.Item
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []int{1, 2}, []int{got[0].ID, got[1].ID})
}

func TestPrintSimple(t *testing.T) {
	var out bytes.Buffer
	printSimple(&out, records)

	assert.Contains(t, out.String(), "  #1 [Задача, blue] Buy milk")
	assert.Contains(t, out.String(), "* #2 [Ссылка, green] Go docs")

	out.Reset()
	printSimple(&out, nil)
	assert.Contains(t, out.String(), "Элементы не найдены")
}

func TestPrintTable(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printTable(&out, records))

	assert.Contains(t, out.String(), "Заголовок")
	assert.Contains(t, out.String(), "Всего: 2")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Прив...", truncate("Привет, мир", 7))
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, bad := range []string{"", "0", "-1", "x"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}
