package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	type payload struct {
		Start Date  `json:"start"`
		Next  *Date `json:"next"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2024-01-31","next":null}`), &p))
	assert.Equal(t, NewDate(2024, time.January, 31), p.Start)
	assert.Nil(t, p.Next)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2024-01-31","next":null}`, string(out))
}

func TestDateRejectsImpossibleDay(t *testing.T) {
	_, err := ParseDate("2023-02-29")
	assert.Error(t, err)
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-05", d.String())

	require.NoError(t, d.Scan([]byte("2025-12-01")))
	assert.Equal(t, NewDate(2025, time.December, 1), d)

	assert.Error(t, d.Scan(42))

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-12-01", v)
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2024, time.December, 28)
	assert.Equal(t, NewDate(2025, time.January, 4), d.AddDays(7))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.False(t, d.Before(d))
	assert.True(t, Date{}.IsZero())
}
