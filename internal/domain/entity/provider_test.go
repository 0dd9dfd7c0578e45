package entity

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderJSONKeysAreSnakeCase(t *testing.T) {
	distance := 4.2
	group := &CategoryGroup{
		Name: "Primary Care",
		Specializations: []*SpecializationGroup{{
			Name: "General Practitioner",
			Providers: []*Provider{{
				ID:          uuid.New(),
				Name:        "Dr. Anita Desai",
				Clinic:      "Manipal Clinic, Bangalore",
				LocationURL: "https://maps.example/manipal",
				DistanceKm:  &distance,
			}},
		}},
	}

	encoded, err := json.Marshal(group)
	require.NoError(t, err)

	body := string(encoded)
	assert.Contains(t, body, `"specializations"`)
	assert.Contains(t, body, `"providers"`)
	assert.Contains(t, body, `"location_url"`)
	assert.Contains(t, body, `"distance_km"`)
	assert.NotContains(t, body, `"LocationURL"`)
	assert.NotContains(t, body, `"DistanceKm"`)
}
