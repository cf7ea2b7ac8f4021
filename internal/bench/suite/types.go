package suite

import (
	"fmt"
	"slices"

	"github.com/DjordjeVuckovic/encalc/internal/rpn"
)

type TestSuite struct {
	Name        string                `yaml:"name" schema:"required"`
	Description string                `yaml:"description"`
	Version     string                `yaml:"version"`
	Templates   []*ExpressionTemplate `yaml:"templates,omitempty"`
	Cases       []Case                `yaml:"cases" schema:"required,minItems=1"`
}

// Case is one expression with its expected outcome. The expression is given
// inline or rendered from a template; an inline empty string is a valid
// expression.
type Case struct {
	ID          string         `yaml:"id" schema:"required"`
	Description string         `yaml:"description"`
	Expression  *string        `yaml:"expression,omitempty"`
	Template    string         `yaml:"template,omitempty"`
	Params      TemplateParams `yaml:"params,omitempty"`
	Expect      Expectation    `yaml:"expect" schema:"required"`
	Tags        []string       `yaml:"tags,omitempty"`
}

// ResolveExpression returns the inline expression or renders the template.
func (c *Case) ResolveExpression(registry *TemplateRegistry) (string, error) {
	if c.Expression != nil {
		return *c.Expression, nil
	}
	return registry.Render(c.Template, c.Params)
}

func (c *Case) HasTag(tag string) bool {
	return slices.Contains(c.Tags, tag)
}

// Expectation holds either the value the expression must evaluate to or the
// kind of error it must fail with.
type Expectation struct {
	Result *int32    `yaml:"result,omitempty"`
	Error  *rpn.Kind `yaml:"error,omitempty" schema:"enum=invalid_character|missing_left_paren|missing_right_paren|division_by_zero|numeric_overflow|malformed_expression"`
}

func (e Expectation) Validate() error {
	switch {
	case e.Result != nil && e.Error != nil:
		return fmt.Errorf("expect sets both result and error")
	case e.Result == nil && e.Error == nil:
		return fmt.Errorf("expect sets neither result nor error")
	case e.Error != nil && *e.Error == rpn.KindUnknown:
		return fmt.Errorf("expect has unknown error kind")
	}
	return nil
}

// Check compares an engine outcome against the expectation. kind is
// rpn.KindUnknown when the engine produced a result.
func (e Expectation) Check(result int32, kind rpn.Kind) error {
	if e.Error != nil {
		if kind == rpn.KindUnknown {
			return fmt.Errorf("expected %s, got result %d", *e.Error, result)
		}
		if kind != *e.Error {
			return fmt.Errorf("expected %s, got %s", *e.Error, kind)
		}
		return nil
	}

	if kind != rpn.KindUnknown {
		return fmt.Errorf("expected %d, got %s", *e.Result, kind)
	}
	if result != *e.Result {
		return fmt.Errorf("expected %d, got %d", *e.Result, result)
	}
	return nil
}

func (e Expectation) String() string {
	switch {
	case e.Error != nil:
		return e.Error.String()
	case e.Result != nil:
		return fmt.Sprintf("%d", *e.Result)
	default:
		return "-"
	}
}

// Filter returns the cases carrying any of tags, or all cases if tags is empty.
func (s *TestSuite) Filter(tags ...string) []Case {
	if len(tags) == 0 {
		return s.Cases
	}

	var out []Case
	for _, c := range s.Cases {
		for _, tag := range tags {
			if c.HasTag(tag) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
