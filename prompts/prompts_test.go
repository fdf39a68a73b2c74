package prompts

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/Nydauron/wcif/wcif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupEvent(t *testing.T) {
	cases := []struct {
		in   string
		want wcif.EventID
	}{
		{"333", wcif.Event333},
		{" 333OH ", wcif.Event333OH},
		{"3x3x3 Cube", wcif.Event333},
		{"megaminx", wcif.EventMinx},
		{"Square-1", wcif.EventSq1},
		{"3x3x3 multi-blind", wcif.Event333MBF},
		{"fmc", wcif.Event333FM},
		{"Master Magic", wcif.EventMMagic},
	}
	for _, tc := range cases {
		got, ok := LookupEvent(tc.in)
		require.True(t, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, ok := LookupEvent("speedstacks")
	assert.False(t, ok)
}

func TestEventPromptRetries(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("speedstacks\nPyraminx\n"), &out)

	event, err := p.EventPrompt()
	require.NoError(t, err)
	assert.Equal(t, wcif.EventPyram, event)
	assert.Equal(t, 2, strings.Count(out.String(), "Event (id or name): "))
	assert.Contains(t, out.String(), `Unknown event "speedstacks"`)
}

func TestRoundPrompt(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("zero\n0\n2\r\n"), &out)

	round, err := p.RoundPrompt()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), round)
	assert.Equal(t, 3, strings.Count(out.String(), "Round number: "))
}

func TestRoundFormatPrompt(t *testing.T) {
	p := NewPrompter(strings.NewReader("\nx\nM\n"), io.Discard)

	format, err := p.RoundFormatPrompt(wcif.Event333)
	require.NoError(t, err)
	assert.Equal(t, wcif.AverageOf5, format)

	format, err = p.RoundFormatPrompt(wcif.Event333)
	require.NoError(t, err)
	assert.Equal(t, wcif.MeanOf3, format)
}

func TestDatePrompt(t *testing.T) {
	p := NewPrompter(strings.NewReader("June 1\n2024-06-01"), io.Discard)

	date, err := p.DatePrompt()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", date.String())
}

func TestPromptEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader("nonsense\n"), io.Discard)

	_, err := p.EventPrompt()
	require.ErrorIs(t, err, io.EOF)
}

func TestDefaultFormat(t *testing.T) {
	assert.Equal(t, wcif.AverageOf5, DefaultFormat(wcif.Event333))
	assert.Equal(t, wcif.MeanOf3, DefaultFormat(wcif.Event666))
	assert.Equal(t, wcif.MeanOf3, DefaultFormat(wcif.Event333FM))
	assert.Equal(t, wcif.BestOf3, DefaultFormat(wcif.Event333BF))
	assert.Equal(t, wcif.BestOf1, DefaultFormat(wcif.Event333MBF))
}
