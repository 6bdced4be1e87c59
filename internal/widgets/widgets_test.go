package widgets

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationRender(t *testing.T) {
	cases := []struct {
		platform string
		want     string
	}{
		{
			platform: "windows",
			want:     "Rendering a button in Windows style.\nRendering a checkbox in Windows style.\n",
		},
		{
			platform: "MAC",
			want:     "Rendering a button in Mac style.\nRendering a checkbox in Mac style.\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.platform, func(t *testing.T) {
			f, err := ForPlatform(tc.platform)
			require.NoError(t, err)

			var out bytes.Buffer
			require.NoError(t, NewApplication(f).Render(&out))
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestForPlatformUnsupported(t *testing.T) {
	f, err := ForPlatform("linux")
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
	assert.ErrorContains(t, err, `"linux"`)
}
