package profile

// Profile holds the top-level scalar answers of the intake form.
// Everything except YearsOfExperience is optional.
type Profile struct {
	BusinessName         string `json:"businessName,omitempty"`
	OwnerName            string `json:"ownerName,omitempty"`
	Email                string `json:"email,omitempty"`
	Phone                string `json:"phone,omitempty"`
	Website              string `json:"website,omitempty"`
	Address              string `json:"address,omitempty"`
	YearsOfExperience    *int   `json:"yearsOfExperience,omitempty" validate:"required,gte=0,lte=50"`
	Tagline              string `json:"tagline,omitempty"`
	AboutUs              string `json:"aboutUs,omitempty"`
	AboutUsModifications string `json:"aboutUsModifications,omitempty"`
	EmergencyPhoneNumber string `json:"emergencyPhoneNumber,omitempty"`
	AdditionalNotes      string `json:"additionalNotes,omitempty"`
}

// Gallery is the image part of a record. Pictures are local files pending
// upload; PictureURLs are the resolved remote copies.
type Gallery struct {
	Pictures    Attachments `json:"-"`
	PictureURLs []string    `json:"pictureUrls"`
}

type Service struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceRange  string `json:"priceRange,omitempty"`
	Gallery
}

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
	CompletedOn string `json:"completedOn,omitempty"`
	Gallery
}

type ServiceArea struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type FinancingOption struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Terms       string `json:"terms,omitempty"`
}

type StormService struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Gallery
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
	Gallery
}

type MaintenanceTip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type WarrantyTerm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration,omitempty"`
}
