package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			"row with location",
			Diagnostic{Severity: SeverityWarning, Code: "BAD_NUMBER", Message: "quantity is not an integer", File: "items.csv", Line: 3},
			"items.csv:3: [BAD_NUMBER] quantity is not an integer",
		},
		{
			"file-level",
			Diagnostic{Severity: SeverityError, Code: "UNREADABLE", Message: "permission denied", File: "sales.csv"},
			"sales.csv: [UNREADABLE] permission denied",
		},
		{
			"bare message",
			Diagnostic{Severity: SeverityInfo, Message: "seeded default items"},
			"seeded default items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestDiagnosticsErrorAndMerge(t *testing.T) {
	var d Diagnostics
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddWarning("BAD_ROW", "short row", "items.csv", 2)
	assert.NoError(t, d.Error())

	var other Diagnostics
	other.AddError("UNREADABLE", "permission denied", "sales.csv", 0)
	other.AddInfo("SEEDED", "seeded default items", "", 0)

	d.Merge(other)
	require.True(t, d.HasErrors())
	assert.EqualError(t, d.Error(), "sales.csv: [UNREADABLE] permission denied")
	assert.Len(t, d.All(), 3)
}
