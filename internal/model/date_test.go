package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(2024, time.March, 15)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15"`, string(b))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15"`), &d))
	assert.Equal(t, NewDate(2024, time.March, 15), d)
}

func TestDate_UnmarshalJSON_InvalidFormat(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"15/03/2024"`), &d))
}

func TestDate_ScanTime(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, NewDate(2024, time.March, 15), d)
}

func TestDate_ScanBytes(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan([]byte("2024-03-15")))
	assert.Equal(t, NewDate(2024, time.March, 15), d)
}

func TestDate_Value(t *testing.T) {
	v, err := NewDate(2024, time.March, 15).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", v)
}
