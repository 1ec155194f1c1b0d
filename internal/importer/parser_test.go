package importer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/intake/internal/importer"
	"github.com/MrJamesThe3rd/intake/internal/profile"
)

func TestParser_Layouts(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantLayout string
		want       []profile.ServiceArea
		wantSkip   int
	}{
		{
			name:       "NameDescriptionComma",
			input:      "Name,Description\nSpringfield,Main office\nShelbyville,\n",
			wantLayout: "name",
			want: []profile.ServiceArea{
				{Name: "Springfield", Description: "Main office"},
				{Name: "Shelbyville"},
			},
		},
		{
			name:       "CityStateSemicolon",
			input:      "city;state;notes\nAustin;TX;Same-day\nRound Rock;TX;\n",
			wantLayout: "city-state",
			want: []profile.ServiceArea{
				{Name: "Austin, TX", Description: "Same-day"},
				{Name: "Round Rock, TX"},
			},
		},
		{
			name:       "ZipTab",
			input:      "ZIP\tCity\n78701\tAustin\n78702\tAustin\n",
			wantLayout: "zip",
			want: []profile.ServiceArea{
				{Name: "78701", Description: "Austin"},
				{Name: "78702", Description: "Austin"},
			},
		},
		{
			name:       "PreambleBeforeHeader",
			input:      "Exported from CRM\n\nArea,Description\nNorth Side,\n",
			wantLayout: "area",
			want:       []profile.ServiceArea{{Name: "North Side"}},
		},
		{
			name:       "BlankAndDuplicateRowsSkipped",
			input:      "Name\nSpringfield\n\"\"\nspringfield\nCapital City\n",
			wantLayout: "name",
			want:       []profile.ServiceArea{{Name: "Springfield"}, {Name: "Capital City"}},
			wantSkip:   2,
		},
		{
			name:       "ShortRows",
			input:      "Description,Name\nonly one cell\n",
			wantLayout: "name",
			want:       []profile.ServiceArea{},
			wantSkip:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := importer.NewParser().Parse(strings.NewReader(tt.input))
			require.NoError(t, err)

			assert.Equal(t, tt.wantLayout, res.Layout)
			assert.Equal(t, tt.want, res.Areas)
			assert.Equal(t, tt.wantSkip, res.Skipped)
		})
	}
}

func TestParser_Latin1(t *testing.T) {
	encoded, err := charmap.Windows1252.NewEncoder().String("Name;Description\nSão Paulo;Região sul\n")
	require.NoError(t, err)

	res, err := importer.NewParser().Parse(bytes.NewReader([]byte(encoded)))
	require.NoError(t, err)
	require.Len(t, res.Areas, 1)
	assert.Equal(t, "São Paulo", res.Areas[0].Name)
	assert.Equal(t, "Região sul", res.Areas[0].Description)
}

func TestParser_UnknownLayout(t *testing.T) {
	_, err := importer.NewParser().Parse(strings.NewReader("foo,bar\n1,2\n"))
	assert.ErrorIs(t, err, importer.ErrNoLayout)
}
