package suite

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

// ExpressionTemplate is an expression with {{name}} placeholders, e.g.
// "{{x}}a{{y}}c{{z}}", so one shape can be checked with many operands.
type ExpressionTemplate struct {
	ID         string `yaml:"id" schema:"required"`
	Expression string `yaml:"expression" schema:"required"`
}

type TemplateParams map[string]any

var placeholderRegex = regexp.MustCompile(`\{\{(\w+)\}\}`)

func (t *ExpressionTemplate) Render(params TemplateParams) (string, error) {
	result := placeholderRegex.ReplaceAllStringFunc(t.Expression, func(match string) string {
		key := match[2 : len(match)-2]
		if val, ok := params[key]; ok {
			return formatValue(val)
		}
		return match
	})

	missing := findMissingPlaceholders(result)
	if len(missing) > 0 {
		return "", fmt.Errorf("template %q missing params: %v", t.ID, missing)
	}

	return result, nil
}

func (t *ExpressionTemplate) RequiredParams() []string {
	seen := make(map[string]bool)
	var params []string

	matches := placeholderRegex.FindAllStringSubmatch(t.Expression, -1)
	for _, m := range matches {
		if len(m) > 1 && !seen[m[1]] {
			seen[m[1]] = true
			params = append(params, m[1])
		}
	}

	return params
}

func (t *ExpressionTemplate) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("template has no id")
	}
	if t.Expression == "" {
		return fmt.Errorf("template %q has no expression", t.ID)
	}
	return nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func findMissingPlaceholders(s string) []string {
	matches := placeholderRegex.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var missing []string
	for _, m := range matches {
		if len(m) > 1 && !seen[m[1]] {
			seen[m[1]] = true
			missing = append(missing, m[1])
		}
	}
	return missing
}

type TemplateRegistry struct {
	templates map[string]*ExpressionTemplate
}

func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]*ExpressionTemplate),
	}
}

func (r *TemplateRegistry) Register(t *ExpressionTemplate) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, exists := r.templates[t.ID]; exists {
		return fmt.Errorf("template %q already registered", t.ID)
	}
	r.templates[t.ID] = t
	return nil
}

func (r *TemplateRegistry) Get(id string) (*ExpressionTemplate, bool) {
	t, ok := r.templates[id]
	return t, ok
}

func (r *TemplateRegistry) Render(templateID string, params TemplateParams) (string, error) {
	t, ok := r.Get(templateID)
	if !ok {
		return "", fmt.Errorf("template %q not found", templateID)
	}
	return t.Render(params)
}

func (r *TemplateRegistry) List() []string {
	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
