package output_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/favonia/cronkit/internal/output"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		ok       bool
		expected output.Format
	}{
		"text":   {true, output.Text},
		"TEXT":   {true, output.Text},
		" json ": {true, output.JSON},
		"yaml":   {true, output.YAML},
		"yml":    {true, output.YAML},
		"xml":    {false, 0},
		"":       {false, 0},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, err := output.ParseFormat(name)
			if tc.ok {
				require.NoError(t, err)
				require.Equal(t, tc.expected, f)
			} else {
				require.ErrorIs(t, err, output.ErrUnknownFormat)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	t.Parallel()

	for _, f := range []output.Format{output.Text, output.JSON, output.YAML} {
		back, err := output.ParseFormat(f.String())
		require.NoError(t, err)
		require.Equal(t, f, back)
	}
	require.Equal(t, "<unknown format 9>", output.Format(9).String())
}
