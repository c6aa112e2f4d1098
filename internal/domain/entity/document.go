package entity

// Document documento regulatorio (licencias, permisos) con fecha de vencimiento.
type Document struct {
	ID                ID     `json:"id"`
	OrganizationID    string `json:"organizationId,omitempty"`
	DocumentType      string `json:"documentType"`
	IssuingAuthority  string `json:"issuingAuthority"`
	IssuedDate        Date   `json:"issuedDate"`
	ExpiryDate        Date   `json:"expiryDate"`
	RenewalPeriodDays int    `json:"renewalPeriodDays"`
	ResponsibleParty  string `json:"responsibleParty"`
	FileURL           string `json:"fileUrl"`
	Notes             string `json:"notes,omitempty"`
}

// DocumentLifecycle estado calculado por el backend (documents/lifecycle-status).
type DocumentLifecycle struct {
	DocumentID    ID     `json:"documentId"`
	DocumentType  string `json:"documentType"`
	ExpiryDate    Date   `json:"expiryDate"`
	DaysRemaining int    `json:"daysRemaining"`
	Status        string `json:"status"` // VALID, EXPIRING_SOON, EXPIRED
}
