package task

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		input   string
		want    Type
		wantErr bool
	}{
		{"shell", TypeShell, false},
		{"SHELL", TypeShell, false},
		{"process", TypeProcess, false},
		{" Process ", TypeProcess, false},
		{"npm", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported task type")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "shell", TypeShell.String())
	assert.Equal(t, "process", TypeProcess.String())
	assert.Equal(t, "unknown(9)", Type(9).String())
	assert.Equal(t, "build", GroupKindBuild.String())
	assert.Equal(t, "silent", RevealSilent.String())
	assert.Equal(t, "dedicated", PanelDedicated.String())
	assert.Equal(t, "warning", SeverityWarning.String())
}

func TestKindRoundTrip(t *testing.T) {
	for _, k := range []GroupKind{GroupKindNone, GroupKindBuild, GroupKindTest} {
		got, err := ParseGroupKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	for _, r := range []Reveal{RevealAlways, RevealSilent, RevealNever} {
		got, err := ParseReveal(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	for _, p := range []Panel{PanelShared, PanelDedicated, PanelNew} {
		got, err := ParsePanel(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	for _, s := range []Severity{SeverityError, SeverityWarning, SeverityInfo} {
		got, err := ParseSeverity(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestKindUnmarshalJSON(t *testing.T) {
	var typ Type
	require.NoError(t, json.Unmarshal([]byte(`"process"`), &typ))
	assert.Equal(t, TypeProcess, typ)

	var kind GroupKind
	assert.Error(t, json.Unmarshal([]byte(`"deploy"`), &kind))

	var reveal Reveal
	err := json.Unmarshal([]byte(`3`), &reveal)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reveal must be a string")

	var panel Panel
	require.NoError(t, json.Unmarshal([]byte(`"NEW"`), &panel))
	assert.Equal(t, PanelNew, panel)

	var sev Severity
	require.NoError(t, json.Unmarshal([]byte(`"info"`), &sev))
	assert.Equal(t, SeverityInfo, sev)
}
