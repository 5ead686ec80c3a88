package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDate_AddDays_CrossesMonth(t *testing.T) {
	require.Equal(t, "2024-01-15", NewDate(2024, time.January, 1).AddDays(14).String())
	require.Equal(t, "2024-03-06", NewDate(2024, time.February, 21).AddDays(14).String())
}

func TestDate_JSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-01"`), &d))
	require.Equal(t, NewDate(2024, time.January, 1), d)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	require.JSONEq(t, `"2024-01-01"`, string(b))

	require.Error(t, json.Unmarshal([]byte(`"01/02/2024"`), &d))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 5, 3, 17, 30, 0, 0, time.UTC)))
	require.Equal(t, "2024-05-03", d.String())

	require.NoError(t, d.Scan("2023-12-31"))
	require.Equal(t, "2023-12-31", d.String())

	require.Error(t, d.Scan(42))
}
