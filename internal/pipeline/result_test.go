package pipeline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultOrder(t *testing.T) {
	result := NewResult()
	result.Add("微博", []string{"a"})
	result.Add("知乎", []string{"b"})
	result.Add("B站", []string{"c"})

	assert.Equal(t, []string{"微博", "知乎", "B站"}, result.Names())
	assert.Equal(t, 3, result.Len())
}

func TestResultAddDuplicateKeepsPosition(t *testing.T) {
	result := NewResult()
	result.Add("微博", []string{"old"})
	result.Add("知乎", []string{"b"})
	result.Add("微博", []string{"new"})

	assert.Equal(t, []string{"微博", "知乎"}, result.Names())

	keywords, ok := result.Keywords("微博")
	assert.True(t, ok)
	assert.Equal(t, []string{"new"}, keywords)
}

func TestResultMarshalPreservesOrder(t *testing.T) {
	result := NewResult()
	result.Add("z-last-first", []string{"a"})
	result.Add("a-first-last", []string{"b"})

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Equal(t, `{"z-last-first":["a"],"a-first-last":["b"]}`, string(data))
}

func TestEmit(t *testing.T) {
	result := NewResult()
	result.Add("知乎", []string{"AI", "芯片"})
	result.Add("微博", []string{"发布会"})

	var buf bytes.Buffer
	require.NoError(t, result.Emit(&buf))

	expected := `{
  "知乎": [
    "AI",
    "芯片"
  ],
  "微博": [
    "发布会"
  ]
}
`
	assert.Equal(t, expected, buf.String())
}

func TestEmitEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewResult().Emit(&buf))
	assert.Empty(t, buf.String())
}

func TestEmitRoundTrips(t *testing.T) {
	result := NewResult()
	result.Add("知乎", []string{"AI"})

	var buf bytes.Buffer
	require.NoError(t, result.Emit(&buf))

	var decoded map[string][]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, map[string][]string{"知乎": {"AI"}}, decoded)
}
