package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Ask(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("first\r\nlast"), out)

	got, err := p.Ask("? ")
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	got, err = p.Ask("? ")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = p.Ask("? ")
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, "? ? ? ", out.String())
}

func TestPrompter_AskInt(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("abc\n 42 \n"), out)

	n, err := p.AskInt("n: ", "bad", nil)
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	assert.Equal(t, 1, strings.Count(out.String(), "bad"))
}

func TestPrompter_Continue(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"what\nN\n", false},
	}
	for _, tt := range tests {
		out := &bytes.Buffer{}
		got, err := NewPrompter(strings.NewReader(tt.input), out).Continue()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.input)
		assert.Equal(t, !tt.want, strings.Contains(out.String(), "Bye bye!"), tt.input)
	}

	_, err := NewPrompter(strings.NewReader("what\n"), &bytes.Buffer{}).Continue()
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestPrompter_YesNo(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("sure\nYES\nno\n"), out)

	yes, err := p.YesNo("? ")
	require.NoError(t, err)
	assert.True(t, yes)
	assert.Contains(t, out.String(), "Please enter yes or no")

	yes, err = p.YesNo("? ")
	require.NoError(t, err)
	assert.False(t, yes)
}
