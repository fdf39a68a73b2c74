package wcif

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWCAID(t *testing.T) {
	id, err := ParseWCAID("2015DOEJ01")
	require.NoError(t, err)
	require.Equal(t, WCAID{Year: 2015, Name: "DOEJ", Discriminant: 1}, id)
	require.Equal(t, "2015DOEJ01", id.String())

	for _, in := range []string{"2015DOEJ1", "2015DOEJ011", "", "2015DOEJÖ01"} {
		_, err := ParseWCAID(in)
		require.ErrorIs(t, err, ErrLength, in)
	}
	for _, in := range []string{"20X5DOEJ01", "2015DOEJ0X", "2015DOEJ-1"} {
		_, err := ParseWCAID(in)
		require.ErrorIs(t, err, ErrDigitParse, in)
	}
}

func TestWCAIDNameIsVerbatim(t *testing.T) {
	id, err := ParseWCAID("2003ab1c99")
	require.NoError(t, err)
	assert.Equal(t, "ab1c", id.Name)
	assert.Equal(t, uint8(99), id.Discriminant)
	assert.Equal(t, "2003ab1c99", id.String())
}

func TestWCAIDOrder(t *testing.T) {
	ids := []WCAID{
		{Year: 2015, Name: "DOEJ", Discriminant: 2},
		{Year: 2009, Name: "ZEMD", Discriminant: 1},
		{Year: 2015, Name: "DOEJ", Discriminant: 1},
		{Year: 2015, Name: "ABCD", Discriminant: 9},
	}
	slices.SortFunc(ids, WCAID.Compare)
	got := make([]string, len(ids))
	for i, id := range ids {
		got[i] = id.String()
	}
	assert.Equal(t, []string{"2009ZEMD01", "2015ABCD09", "2015DOEJ01", "2015DOEJ02"}, got)
}

func TestWCAIDJSON(t *testing.T) {
	var p struct {
		WCAID *WCAID `json:"wcaId"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"wcaId": null}`), &p))
	require.Nil(t, p.WCAID)

	require.NoError(t, json.Unmarshal([]byte(`{"wcaId": "2010ABCD12"}`), &p))
	require.Equal(t, &WCAID{Year: 2010, Name: "ABCD", Discriminant: 12}, p.WCAID)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, `{"wcaId": "2010ABCD12"}`, string(b))

	require.ErrorIs(t, json.Unmarshal([]byte(`{"wcaId": "2010ABCD"}`), &p), ErrLength)
}
