package template

// CatalogVersion identifies the current template catalog.
const CatalogVersion = "2026.03"

// Template variables
const (
	VarBusinessType      = "business_type"
	VarObjectives        = "objectives"
	VarTargetAudience    = "target_audience"
	VarKeyFeatures       = "key_features"
	VarTechnicalFeatures = "technical_features"
	VarIntegrations      = "integrations"
	VarTone              = "tone"
	VarComplexity        = "complexity"
)

// Template ids
const (
	IDHospitality  = "hospitality"
	IDCommerce     = "commerce"
	IDBeauty       = "beauty"
	IDHealthcare   = "healthcare"
	IDRealEstate   = "real_estate"
	IDProfessional = "professional_services"
	IDEducation    = "education"
	IDGeneric      = "generic"
)

const bulletPrefix = "- "
