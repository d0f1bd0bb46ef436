package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVars(t *testing.T) {
	vars, err := ParseVars([]string{"clients=8", "ratio=0.5", "refresh=true", "distribution=8.x", "query=a=b", "empty="})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"clients":      8,
		"ratio":        0.5,
		"refresh":      true,
		"distribution": "8.x",
		"query":        "a=b",
		"empty":        "",
	}, vars)
}

func TestParseVars_Invalid(t *testing.T) {
	for _, pair := range []string{"clients", "=8", " =8"} {
		t.Run(pair, func(t *testing.T) {
			_, err := ParseVars([]string{pair})
			assert.Error(t, err)
		})
	}
}
