package contenttype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{
			name:     "csv extension",
			fileName: "report.csv",
			want:     "text/csv",
		},
		{
			name:     "html extension",
			fileName: "index.html",
			want:     "text/html",
		},
		{
			name:     "txt extension",
			fileName: "notes.txt",
			want:     "text/plain",
		},
		{
			name:     "xlsx extension",
			fileName: "book.xlsx",
			want:     "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		},
		{
			name:     "pkl extension",
			fileName: "frame.pkl",
			want:     "application/octet-stream",
		},
		{
			name:     "no extension",
			fileName: "data",
			want:     "application/octet-stream",
		},
		{
			name:     "case mismatch falls to default",
			fileName: "archive.CSV",
			want:     "application/octet-stream",
		},
		{
			name:     "unmapped extension",
			fileName: "photo.jpg",
			want:     "application/octet-stream",
		},
		{
			name:     "extension taken from final path segment",
			fileName: "out/2024.05/prices.csv",
			want:     "text/csv",
		},
		{
			name:     "dot in directory only",
			fileName: "out.d/data",
			want:     "application/octet-stream",
		},
		{
			name:     "empty string",
			fileName: "",
			want:     "application/octet-stream",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.fileName))
		})
	}
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("a.csv"))
	assert.True(t, Known("a.pkl"))
	assert.False(t, Known("a.jpg"))
	assert.False(t, Known("a"))
}
