package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	require.Contains(t, out.String(), "Name?")
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb\n\n\n"), "Enter text", &out)
	require.NoError(t, err)
	require.Equal(t, "a\nb", got)
}

func TestGetMultiline_CRLFAndEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("line one\r\nline two"), "Enter text", &out)
	require.NoError(t, err)
	require.Equal(t, "line one\nline two", got)
}

func TestGetSecret(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) { return []byte("ABCDEF"), nil }
	var out bytes.Buffer
	got, err := GetSecret("Code", &out)
	require.NoError(t, err)
	require.Equal(t, []byte("ABCDEF"), got)
	require.Equal(t, "Code: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetSecret("Code", &out)
	require.Error(t, err)
}

func TestGetChoice(t *testing.T) {
	options := []string{"Fitter", "Welder"}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "pick by number", input: "2\n", want: "Welder"},
		{name: "number out of range is literal", input: "3\n", want: "3"},
		{name: "typed value", input: "Electrician\n", want: "Electrician"},
		{name: "empty", input: "\n", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetChoice(rdr(tc.input), "Trade", options, &out)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Contains(t, out.String(), "1) Fitter")
		})
	}
}
