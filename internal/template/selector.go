package template

import (
	"agent-discovery/internal/model"
	"agent-discovery/pkg/textnorm"
)

// Select returns the template for businessType: the first catalog entry
// whose domain keys match the folded input, or the generic template. It
// never fails.
func Select(businessType string) model.ConfigurationTemplate {
	text := textnorm.Words(businessType)
	for _, t := range catalog {
		if textnorm.MatchAny(text, t.DomainKeys) {
			return clone(t)
		}
	}
	return Generic()
}

// Generic returns the fallback template.
func Generic() model.ConfigurationTemplate {
	return clone(generic)
}

// ByID returns the catalog template with id.
func ByID(id string) (model.ConfigurationTemplate, bool) {
	if id == generic.ID {
		return Generic(), true
	}
	for _, t := range catalog {
		if t.ID == id {
			return clone(t), true
		}
	}
	return model.ConfigurationTemplate{}, false
}

// Catalog returns copies of every template, generic last.
func Catalog() []model.ConfigurationTemplate {
	out := make([]model.ConfigurationTemplate, 0, len(catalog)+1)
	for _, t := range catalog {
		out = append(out, clone(t))
	}
	return append(out, Generic())
}

func clone(t model.ConfigurationTemplate) model.ConfigurationTemplate {
	t.DomainKeys = append([]string(nil), t.DomainKeys...)
	t.Variables = append([]string(nil), t.Variables...)
	t.Capabilities = append([]string(nil), t.Capabilities...)
	return t
}
