package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/go/analysis/analysistest"
)

func TestLayeringAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), LayeringAnalyzer,
		"example.com/app/internal/handler",
		"example.com/app/internal/other",
	)
}

func TestHasPrefix(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"database/sql", true},
		{"database/sql/driver", true},
		{"github.com/jackc/pgx/v5/pgxpool", true},
		{"github.com/jackc/pgxlisten", false},
		{"net/http", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, hasPrefix(tt.path, forbiddenImports))
		})
	}
}
