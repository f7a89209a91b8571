package mcptool

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFinancialMetrics(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	tests := []struct {
		name           string
		input          InputDetectFinancialMetrics
		wantErr        bool
		errContains    string
		validateOutput func(t *testing.T, output OutputDetectFinancialMetrics)
	}{
		{
			name:        "empty content returns error",
			input:       InputDetectFinancialMetrics{Content: ""},
			wantErr:     true,
			errContains: "content is required",
		},
		{
			name: "income statement produces metric entries",
			input: InputDetectFinancialMetrics{
				Content: "Revenue: $1,200,000\nExpenses (500,000)\nNet income of 75,500.25",
			},
			wantErr: false,
			validateOutput: func(t *testing.T, output OutputDetectFinancialMetrics) {
				require.Len(t, output.Metrics, 3)
				assert.Equal(t, "Revenue", output.Metrics[0].Metric)
				require.Len(t, output.Metrics[0].Matches, 1)
				assert.Equal(t, 1200000.0, output.Metrics[0].Matches[0].Value)
				assert.True(t, output.Metrics[0].Matches[0].IsNumber)

				assert.Equal(t, "Expenses", output.Metrics[1].Metric)
				assert.Equal(t, -500000.0, output.Metrics[1].Matches[0].Value)

				assert.Equal(t, "Net Income", output.Metrics[2].Metric)
				assert.Equal(t, 75500.25, output.Metrics[2].Matches[0].Value)
			},
		},
		{
			name: "text without metrics produces no entries",
			input: InputDetectFinancialMetrics{
				Content: "quarterly letter to shareholders, no figures enclosed",
			},
			wantErr: false,
			validateOutput: func(t *testing.T, output OutputDetectFinancialMetrics) {
				assert.Empty(t, output.Metrics)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := DetectFinancialMetrics(ctx, req, tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.validateOutput(t, output)
		})
	}
}

func TestExtractFinancialDocument(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	t.Run("missing path returns error", func(t *testing.T) {
		_, _, err := ExtractFinancialDocument(ctx, req, InputExtractFinancialDocument{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "path is required")
	})

	t.Run("nonexistent file returns error", func(t *testing.T) {
		_, _, err := ExtractFinancialDocument(ctx, req, InputExtractFinancialDocument{
			Path: filepath.Join(t.TempDir(), "missing.pdf"),
		})
		require.Error(t, err)
	})

	t.Run("unsupported extension returns error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.exe")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

		_, _, err := ExtractFinancialDocument(ctx, req, InputExtractFinancialDocument{Path: path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported document format")
	})

	t.Run("plain text document extracts and detects", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "statement.txt")
		require.NoError(t, os.WriteFile(path, []byte("Total Assets 2,400,000\n"), 0644))

		_, output, err := ExtractFinancialDocument(ctx, req, InputExtractFinancialDocument{Path: path})
		require.NoError(t, err)

		assert.Equal(t, "text", output.Kind)
		assert.Contains(t, output.Content, "Total Assets 2,400,000")
		require.Len(t, output.Metrics, 1)
		assert.Equal(t, "Assets", output.Metrics[0].Metric)
		assert.Equal(t, 2400000.0, output.Metrics[0].Matches[0].Value)
	})
}
