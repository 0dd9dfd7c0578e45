// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Provider is the core entity for a directory entry: a doctor or clinic
// that can be ranked against a reference location. Clinic is the free-text
// clinic/location field; city filters match against it, not against the
// coordinates. LocationURL is an external map link for the clinic.
type Provider struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Degree         string    `json:"degree"`
	Specialization string    `json:"specialization"`
	Category       string    `json:"category"`
	Clinic         string    `json:"clinic"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	LocationURL    string    `json:"location_url"`

	// DistanceKm is attached transiently when a reference location is
	// available. It is never persisted.
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// Point returns the provider's coordinate as an orb point (lon, lat order).
func (p *Provider) Point() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// SpecializationGroup groups providers sharing one specialization inside a category.
type SpecializationGroup struct {
	Name      string      `json:"name"`
	Providers []*Provider `json:"providers"`
}

// CategoryGroup is one top-level directory section.
type CategoryGroup struct {
	Name            string                 `json:"name"`
	Specializations []*SpecializationGroup `json:"specializations"`
}
