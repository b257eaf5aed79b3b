package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/nbuild/internal/config"
	"github.com/vk/nbuild/internal/ctxlog"
)

// Loader loads build specs written in HCL.
type Loader struct{}

// NewLoader creates a new HCL spec loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, path string) (*config.Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding HCL spec file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse spec file %s: %s", path, diags.Error())
	}

	var spec specFile
	if diags := gohcl.DecodeBody(file.Body, nil, &spec); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode spec file %s: %s", path, diags.Error())
	}

	patch := spec.patch()
	extras, err := extrasFromExpression(spec.Extras)
	if err != nil {
		return nil, fmt.Errorf("in spec file %s: %w", path, err)
	}
	patch.Extras = extras

	cfg := config.Default()
	if err := patch.Apply(cfg); err != nil {
		return nil, fmt.Errorf("invalid spec file %s: %w", path, err)
	}
	logger.Debug("Successfully decoded spec file.", "path", path)
	return cfg, nil
}

// extrasFromExpression evaluates the extras attribute, which may hold either
// a single string or a list/tuple of strings.
func extrasFromExpression(expr hcl.Expression) (any, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("extras: %s", diags.Error())
	}
	if val.IsNull() {
		return nil, nil
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString(), nil
	case ty.IsTupleType() || ty.IsListType():
		var list []string
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			s, err := convert.Convert(elem, cty.String)
			if err != nil {
				return nil, fmt.Errorf("extras: element is not a string: %w", err)
			}
			list = append(list, s.AsString())
		}
		return list, nil
	default:
		return nil, fmt.Errorf("extras: expected a string or a list of strings, got %s", ty.FriendlyName())
	}
}
