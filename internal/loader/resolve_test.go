package loader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dbsmedya/edgarviz/internal/config"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		dataDir string
		file    string
		want    string
	}{
		{
			name:    "remote base with trailing slash",
			base:    "https://example.github.io/EdgarBlog/",
			dataDir: "data",
			file:    "filing_forms.csv",
			want:    "https://example.github.io/EdgarBlog/data/filing_forms.csv",
		},
		{
			name:    "remote base without data dir",
			base:    "http://localhost:5173",
			dataDir: "",
			file:    "filing_forms.csv",
			want:    "http://localhost:5173/filing_forms.csv",
		},
		{
			name:    "local base",
			base:    "./public/",
			dataDir: "data",
			file:    "edgar_filetypes_breakdown.csv",
			want:    filepath.Join("public", "data", "edgar_filetypes_breakdown.csv"),
		},
		{
			name:    "absolute deployment base",
			base:    "/EdgarBlog/",
			dataDir: "data",
			file:    "filing_forms.csv",
			want:    filepath.Join("/EdgarBlog", "data", "filing_forms.csv"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.base, tt.dataDir, tt.file))
		})
	}
}

func TestLocatorsFollowEnvironment(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Data.BasePaths[config.EnvProduction] = "https://example.org/EdgarBlog/"

	assert.Equal(t, filepath.Join("public", "data", "filing_forms.csv"), FilingsLocator(&cfg.Data))

	cfg.Data.Environment = config.EnvProduction
	assert.Equal(t, "https://example.org/EdgarBlog/data/filing_forms.csv", FilingsLocator(&cfg.Data))
	assert.Equal(t, "https://example.org/EdgarBlog/data/edgar_filetypes_breakdown.csv", FiletypesLocator(&cfg.Data))
}
