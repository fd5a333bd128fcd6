package main

import (
	"testing"

	"github.com/maelvls/dungeonname/logutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("api-url", "", "")
	cmd.Flags().String("listen", "", "")
	cmd.Flags().String("vocab", "", "")
	cmd.Flags().Bool("debug", false, "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestGetToolConfig(t *testing.T) {
	t.Cleanup(func() { logutil.EnableDebug = false })

	tests := []struct {
		name string
		env  map[string]string
		args []string
		want ToolConf
	}{
		{
			name: "defaults",
			want: ToolConf{APIURL: "http://localhost:8080", Listen: ":8080"},
		},
		{
			name: "from env",
			env: map[string]string{
				"DUNGEONNAME_API_URL": "http://example.test:9000",
				"DUNGEONNAME_LISTEN":  "127.0.0.1:9000",
				"DUNGEONNAME_VOCAB":   "words.yaml",
				"DUNGEONNAME_DEBUG":   "true",
			},
			want: ToolConf{APIURL: "http://example.test:9000", Listen: "127.0.0.1:9000", VocabPath: "words.yaml", Debug: true},
		},
		{
			name: "flags take precedence over env",
			env: map[string]string{
				"DUNGEONNAME_API_URL": "http://example.test:9000",
				"DUNGEONNAME_VOCAB":   "words.yaml",
				"DUNGEONNAME_DEBUG":   "true",
			},
			args: []string{"--api-url", "http://other.test", "--vocab", "mine.yaml", "--debug=false"},
			want: ToolConf{APIURL: "http://other.test", Listen: ":8080", VocabPath: "mine.yaml", Debug: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"DUNGEONNAME_API_URL", "DUNGEONNAME_LISTEN", "DUNGEONNAME_VOCAB", "DUNGEONNAME_DEBUG"} {
				t.Setenv(k, tt.env[k])
			}

			got, err := getToolConfig(testCmd(t, tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetToolConfig_InvalidEnv(t *testing.T) {
	t.Setenv("DUNGEONNAME_DEBUG", "not-a-bool")

	_, err := getToolConfig(testCmd(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "while reading environment variables")
}

func TestNewGenerator_BuiltIn(t *testing.T) {
	g, err := newGenerator(ToolConf{})
	require.NoError(t, err)
	assert.InDelta(t, 27.0/53.0, g.AdjectiveProbability(), 1e-9)
}
