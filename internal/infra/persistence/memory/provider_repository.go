// Package memory provides the embedded persistence layer used when no
// database is configured. The provider directory ships with a built-in
// dataset so the service is usable out of the box.
package memory

import (
	"context"

	"medi/internal/domain/entity"
	"medi/internal/domain/repository"

	"github.com/google/uuid"
)

type providerRepository struct {
	providers []*entity.Provider
}

// NewProviderRepository returns a read-only repository serving the embedded
// provider directory in canonical order (category, then specialization, then
// listing order).
func NewProviderRepository() repository.ProviderRepository {
	return &providerRepository{providers: seedProviders()}
}

func (repo *providerRepository) ListProviders(_ context.Context) ([]*entity.Provider, error) {
	// Callers clone before mutating, so the canonical slice is shared.
	return repo.providers, nil
}

// seedRecord is the compact form the directory is authored in.
type seedRecord struct {
	name           string
	degree         string
	specialization string
	category       string
	clinic         string
	lat            float64
	lon            float64
	locationURL    string
}

const (
	categoryPrimaryCare = "Primary Care"
	categoryMedicine    = "Medicine Specialties (Non-Surgical)"
	categorySurgical    = "Surgical Specialties"
	categoryOthers      = "Others"
)

// Metro coordinates the directory clinics sit at.
const (
	bangaloreLat = 12.9716
	bangaloreLon = 77.5946
	chennaiLat   = 13.0827
	chennaiLon   = 80.2707
	hyderabadLat = 17.3850
	hyderabadLon = 78.4867
)

func seedProviders() []*entity.Provider {
	records := []seedRecord{
		{"Dr. Anita Desai", "MBBS, DNB", "General Practitioner", categoryPrimaryCare, "Manipal Clinic, Bangalore", bangaloreLat, bangaloreLon, "https://www.google.com/maps/search/?api=1&query=Manipal+Clinic+Bangalore"},
		{"Dr. Ramesh Gupta", "MBBS", "General Practitioner", categoryPrimaryCare, "Apollo Clinic, Chennai", chennaiLat, chennaiLon, "https://www.google.com/maps/search/?api=1&query=Apollo+Clinic+Chennai"},
		{"Dr. Rajesh Nair", "MD, Pediatrics", "Pediatrics", categoryPrimaryCare, "Rainbow Children's Hospital, Bangalore", bangaloreLat, bangaloreLon, "https://www.google.com/maps/search/?api=1&query=Rainbow+Childrens+Hospital+Bangalore"},
		{"Dr. Meena Iyer", "DNB, Pediatrics", "Pediatrics", categoryPrimaryCare, "Kanchi Kamakoti Childs Trust, Chennai", chennaiLat, chennaiLon, "https://www.google.com/maps/search/?api=1&query=Kanchi+Kamakoti+Childs+Trust+Hospital+Chennai"},
		{"Dr. Sameer Ahmed", "MD, Pediatrics", "Pediatrics", categoryPrimaryCare, "Lotus Children's Hospital, Hyderabad", hyderabadLat, hyderabadLon, "https://www.google.com/maps/search/?api=1&query=Lotus+Childrens+Hospital+Hyderabad"},
		{"Dr. Priya Sharma", "MD, Cardiology", "Cardiology", categoryMedicine, "Apollo Hospitals, Bangalore", bangaloreLat, bangaloreLon, "https://www.google.com/maps/search/?api=1&query=Apollo+Hospitals+Bangalore"},
		{"Dr. Rohan Mehra", "DM, Cardiology", "Cardiology", categoryMedicine, "Fortis Malar, Chennai", chennaiLat, chennaiLon, "https://www.google.com/maps/search/?api=1&query=Fortis+Malar+Hospital+Chennai"},
		{"Dr. Ananya Reddy", "MD, DNB", "Cardiology", categoryMedicine, "Care Hospitals, Hyderabad", hyderabadLat, hyderabadLon, "https://www.google.com/maps/search/?api=1&query=Care+Hospitals+Banjara+Hills+Hyderabad"},
		{"Dr. Vikram Singh", "DM, Neurology", "Neurology", categoryMedicine, "Manipal Hospital, Bangalore", bangaloreLat, bangaloreLon, "https://www.google.com/maps/search/?api=1&query=Manipal+Hospital+Old+Airport+Road+Bangalore"},
		{"Dr. Sneha Patel", "MD, Neurology", "Neurology", categoryMedicine, "Global Hospitals, Chennai", chennaiLat, chennaiLon, "https://www.google.com/maps/search/?api=1&query=Global+Hospital+Perumbakkam+Chennai"},
		{"Dr. Arjun Kumar", "MBBS, DNB", "Neurology", categoryMedicine, "Yashoda Hospitals, Hyderabad", hyderabadLat, hyderabadLon, "https://www.google.com/maps/search/?api=1&query=Yashoda+Hospitals+Somajiguda+Hyderabad"},
		{"Dr. Aisha Khan", "MD, Dermatology", "Dermatology", categoryMedicine, "Cutis Clinic, Bangalore", bangaloreLat, bangaloreLon, "https://www.google.com/maps/search/?api=1&query=Cutis+Clinic+Bangalore"},
		{"Dr. Mohan Kumar", "MBBS, DDVL", "Dermatology", categoryMedicine, "Kaya Skin Clinic, Chennai", chennaiLat, chennaiLon, "https://www.google.com/maps/search/?api=1&query=Kaya+Skin+Clinic+Chennai"},
		{"Dr. Sunita Reddy", "MD, DVL", "Dermatology", categoryMedicine, "Olivia Skin & Hair, Hyderabad", hyderabadLat, hyderabadLon, "https://www.google.com/maps/search/?api=1&query=Olivia+Skin+Hair+Clinic+Hyderabad"},
		{"Dr. Divya Rao", "MS, Ortho", "Orthopedics", categorySurgical, "Sakra World Hospital, Bangalore", bangaloreLat, bangaloreLon, "https://www.google.com/maps/search/?api=1&query=Sakra+World+Hospital+Bangalore"},
		{"Dr. Karthik Rajan", "MS, DNB", "Orthopedics", categorySurgical, "MIOT International, Chennai", chennaiLat, chennaiLon, "https://www.google.com/maps/search/?api=1&query=MIOT+International+Chennai"},
		{"Dr. Pooja Desai", "MS, Ortho", "Orthopedics", categorySurgical, "Sunshine Hospitals, Hyderabad", hyderabadLat, hyderabadLon, "https://www.google.com/maps/search/?api=1&query=Sunshine+Hospitals+Secunderabad+Hyderabad"},
		{"Dr. Devi Shetty", "MS, FRCS", "Cardiothoracic Surgery", categorySurgical, "Narayana Health, Bangalore", bangaloreLat, bangaloreLon, "https://www.google.com/maps/search/?api=1&query=Narayana+Health+City+Bangalore"},
		{"Dr. Sandeep Attawar", "MS, MCh", "Cardiothoracic Surgery", categorySurgical, "Global Hospitals, Chennai", chennaiLat, chennaiLon, "https://www.google.com/maps/search/?api=1&query=Global+Hospitals+Chennai"},
		{"Dr. Fatima Ali", "BDS, MDS", "Dentistry", categoryOthers, "Apollo White Dental, Bangalore", bangaloreLat, bangaloreLon, "https://www.google.com/maps/search/?api=1&query=Apollo+White+Dental+Bangalore"},
		{"Dr. Anand Kumar", "BDS", "Dentistry", categoryOthers, "Axiss Dental, Chennai", chennaiLat, chennaiLon, "https://www.google.com/maps/search/?api=1&query=Axiss+Dental+Chennai"},
		{"Dr. Lakshmi Rao", "BDS, MDS", "Dentistry", categoryOthers, "FMS Dental, Hyderabad", hyderabadLat, hyderabadLon, "https://www.google.com/maps/search/?api=1&query=FMS+Dental+Hyderabad"},
	}

	providers := make([]*entity.Provider, 0, len(records))
	for _, r := range records {
		providers = append(providers, &entity.Provider{
			// Stable IDs so restarts keep the same directory identifiers.
			ID:             uuid.NewSHA1(uuid.NameSpaceOID, []byte("provider:"+r.name)),
			Name:           r.name,
			Degree:         r.degree,
			Specialization: r.specialization,
			Category:       r.category,
			Clinic:         r.clinic,
			Latitude:       r.lat,
			Longitude:      r.lon,
			LocationURL:    r.locationURL,
		})
	}

	return providers
}
