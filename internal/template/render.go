package template

import (
	"fmt"
	"regexp"
	"strings"
	texttemplate "text/template"

	"agent-discovery/internal/model"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// Validate reports ErrInvalidTemplate when the skeleton does not parse or
// references a variable missing from tmpl.Variables.
func Validate(tmpl model.ConfigurationTemplate) error {
	if strings.TrimSpace(tmpl.Skeleton) == "" {
		return fmt.Errorf("%w: %s: empty skeleton", ErrInvalidTemplate, tmpl.ID)
	}
	t, err := parse(tmpl)
	if err != nil {
		return err
	}

	probe := make(map[string]any, len(tmpl.Variables))
	for _, v := range tmpl.Variables {
		probe[v] = "x"
	}
	if err := t.Execute(&strings.Builder{}, probe); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidTemplate, tmpl.ID, err)
	}
	return nil
}

// Render substitutes vars into the skeleton. String slices become bullet
// lists; declared variables absent from vars render empty.
func Render(tmpl model.ConfigurationTemplate, vars map[string]any) (string, error) {
	t, err := parse(tmpl)
	if err != nil {
		return "", err
	}

	data := make(map[string]any, len(tmpl.Variables))
	for _, v := range tmpl.Variables {
		data[v] = ""
	}
	for k, v := range vars {
		if items, ok := v.([]string); ok {
			data[k] = Bullets(items)
			continue
		}
		data[k] = v
	}

	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidTemplate, tmpl.ID, err)
	}
	return strings.TrimSpace(blankRuns.ReplaceAllString(b.String(), "\n\n")), nil
}

// Bullets renders items as "- item" lines. Blank items are skipped.
func Bullets(items []string) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			lines = append(lines, bulletPrefix+it)
		}
	}
	return strings.Join(lines, "\n")
}

func parse(tmpl model.ConfigurationTemplate) (*texttemplate.Template, error) {
	t, err := texttemplate.New(tmpl.ID).Option("missingkey=error").Parse(tmpl.Skeleton)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTemplate, tmpl.ID, err)
	}
	return t, nil
}
