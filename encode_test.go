package fxconv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRatesCSV(t *testing.T) {
	feed := "date, rate\n2021-01-01, 0.8\n2021-01-02, 0.9\n2021-01-02, 0.95\n"
	rates, err := DecodeRatesCSV[EUR, USD](strings.NewReader(feed))
	require.NoError(t, err)
	assert.Equal(t, 2, rates.Len())

	rate, ok := rates.DayRate(day("2021-01-01"))
	require.True(t, ok)
	assert.Equal(t, NewExchangeRate[EUR, USD](0.8), rate)

	// the last rate of a day wins.
	rate, ok = rates.DayRate(day("2021-01-02"))
	require.True(t, ok)
	assert.Equal(t, 0.95, rate.Rate())
}

func TestDecodeRatesCSV_Malformed(t *testing.T) {
	tests := []struct {
		name string
		feed string
		want string
	}{
		{"bad rate", "date,rate\n2021-01-01,0.8\n2021-01-02,abc\n", "line 3"},
		{"bad date", "date,rate\n01/02/2021,0.8\n", "line 2"},
		{"negative rate", "date,rate\n2021-01-01,-0.8\n", "must be a positive number"},
		{"missing column", "day,rate\n2021-01-01,0.8\n", `"date"`},
		{"empty", "", "missing header line"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRatesCSV[EUR, USD](strings.NewReader(tt.feed))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "rate feed")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecodeRatesJSON(t *testing.T) {
	doc := `[{"date":"2021-01-01","rate":0.8},{"date":"2021-01-02","rate":"0.9"}]`
	rates, err := DecodeRatesJSON[EUR, USD](strings.NewReader(doc), DefaultJSONFeed)
	require.NoError(t, err)
	assert.Equal(t, 2, rates.Len())

	rate, ok := rates.DayRate(day("2021-01-02"))
	require.True(t, ok)
	assert.Equal(t, NewExchangeRate[EUR, USD](0.9), rate)
}

func TestDecodeRatesJSON_NestedObservations(t *testing.T) {
	doc := `{
		"series": "EXR.D.USD.EUR.SP00.A",
		"observations": [
			{"TIME_PERIOD": "2021-01-04", "OBS_VALUE": "1.2296"},
			{"TIME_PERIOD": "2021-01-05", "OBS_VALUE": "1.2271"}
		]
	}`
	feed := JSONFeed{Path: "$.observations[*]", DateField: "TIME_PERIOD", RateField: "OBS_VALUE"}
	rates, err := DecodeRatesJSON[USD, EUR](strings.NewReader(doc), feed)
	require.NoError(t, err)

	rate, ok := rates.DayRate(day("2021-01-04"))
	require.True(t, ok)
	assert.Equal(t, 1.2296, rate.Rate())
	assert.Equal(t, "1.2296 USD/EUR", rate.String())
}

func TestDecodeRatesJSON_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"not json", `[{`, "invalid json"},
		{"not objects", `{"date":"2021-01-01","rate":0.8}`, "is not an object"},
		{"bad date", `[{"date":"yesterday","rate":0.8}]`, "observation #0"},
		{"missing rate", `[{"date":"2021-01-01"}]`, `missing "rate" field`},
		{"zero rate", `[{"date":"2021-01-01","rate":0}]`, "must be a positive number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRatesJSON[EUR, USD](strings.NewReader(tt.doc), DefaultJSONFeed)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEncodeRatesCSV(t *testing.T) {
	rates := eurPerUSD(map[string]float64{"2021-01-02": 0.9, "2021-01-01": 0.8})
	var buf bytes.Buffer
	require.NoError(t, EncodeRatesCSV(&buf, rates))
	assert.Equal(t, "date,rate\n2021-01-01,0.8\n2021-01-02,0.9\n", buf.String())

	back, err := DecodeRatesCSV[EUR, USD](&buf)
	require.NoError(t, err)
	assert.Equal(t, rates, back)
}

func TestDecodeTransactionsCSV(t *testing.T) {
	feed := "date,amount\n2021-01-01,100\n2021-01-02,0.29\n2021-01-03,-1.5\n"
	txs, err := DecodeTransactionsCSV[USD](strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, txs, 3)

	assert.Equal(t, NewTransaction(day("2021-01-01"), FromInt[USD](100)), txs[0])
	// amounts are truncated, not rounded: 0.29*100 is 28.999999999999996.
	assert.Equal(t, int64(28), txs[1].Amount().Raw())
	assert.Equal(t, int64(-150), txs[2].Amount().Raw())
}

func TestDecodeTransactionsCSV_Malformed(t *testing.T) {
	_, err := DecodeTransactionsCSV[USD](strings.NewReader("date,amount\n2021-01-01,12,5\n2021-01-02,ten\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transaction feed: line 3")
	assert.Contains(t, err.Error(), `invalid amount "ten"`)
}

func TestEncodeRowsCSV(t *testing.T) {
	rates := eurPerUSD(map[string]float64{"2021-01-01": 0.8, "2021-01-02": 0.9})
	rows := ConvertAll(rates, []Transaction[USD]{
		NewTransaction(day("2021-01-01"), usd(100)),
		NewTransaction(day("2021-01-02"), usd(12.34)),
		NewTransaction(day("2021-01-03"), usd(100)),
	})

	var buf bytes.Buffer
	require.NoError(t, EncodeRowsCSV(&buf, rows))
	want := "date,from_amount,exchange_rate,to_amount\n" +
		"2021-01-01,100.00,0.8,80.00\n" +
		"2021-01-02,12.34,0.9,11.11\n" +
		"2021-01-03,100.00,,missing exchange rate\n"
	assert.Equal(t, want, buf.String())
}
