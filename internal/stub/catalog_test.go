package stub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Languages(t *testing.T) {
	wantLanguages := []Language{
		{Code: "EN", Name: "English"},
		{Code: "JA", Name: "Japanese"},
		{Code: "FR", Name: "French"},
	}

	tests := []struct {
		name      string
		direction string
		want      []Language
		wantErr   error
	}{
		{
			name:      "source direction",
			direction: "source",
			want:      wantLanguages,
		},
		{
			name:      "target direction",
			direction: "target",
			want:      wantLanguages,
		},
		{
			name:      "unknown direction",
			direction: "bogus",
			wantErr:   ErrInvalidType,
		},
		{
			name:      "empty direction",
			direction: "",
			wantErr:   ErrInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := NewCatalog()

			got, err := catalog.Languages(tt.direction)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
