// This file translates the HCL schema structs into the format-agnostic
// definition model of the config package.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/sheetgo/internal/config"
	"github.com/specialistvlad/sheetgo/internal/ctxlog"
	"github.com/specialistvlad/sheetgo/internal/value"
)

// translateSheet converts a sheet block into the agnostic model.
func (l *Loader) translateSheet(ctx context.Context, s *Sheet) (*config.Definition, error) {
	logger := ctxlog.FromContext(ctx).With("sheet", s.Name)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Translating HCL sheet to definition model.")

	def := &config.Definition{Name: s.Name}
	for _, sc := range s.Scores {
		def.Scores = append(def.Scores, &config.Score{
			Name:  sc.Name,
			Value: sc.Value,
			Min:   sc.Min,
			Max:   sc.Max,
		})
	}
	for _, g := range s.Groups {
		group, err := l.translateGroup(ctx, g)
		if err != nil {
			return nil, err
		}
		def.Groups = append(def.Groups, group)
	}
	return def, nil
}

// translateGroup converts a group block and everything nested in it.
func (l *Loader) translateGroup(ctx context.Context, g *Group) (*config.Group, error) {
	out := &config.Group{Name: g.Name}
	for _, leaf := range g.Leaves {
		translated, err := translateLeaf(ctx, leaf)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
		out.Leaves = append(out.Leaves, translated)
	}
	for _, sum := range g.Sums {
		out.Sums = append(out.Sums, &config.Sum{Name: sum.Name, Values: sum.Values})
	}
	for _, child := range g.Groups {
		translated, err := l.translateGroup(ctx, child)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
		out.Groups = append(out.Groups, translated)
	}
	return out, nil
}

// translateLeaf evaluates a leaf's literal value. Only values the sheet can
// hold are accepted: whole numbers, strings, and lists of those.
func translateLeaf(ctx context.Context, leaf *Leaf) (*config.Leaf, error) {
	out := &config.Leaf{
		Name:     leaf.Name,
		Deferred: leaf.Deferred,
		Min:      leaf.Min,
		Max:      leaf.Max,
	}
	if !isExprDefined(ctx, leaf.Value, "value") {
		return out, nil
	}

	val, diags := leaf.Value.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid value for leaf %q: %w", leaf.Name, diags)
	}
	if val.IsNull() {
		return out, nil
	}
	if _, err := value.FromCty(val); err != nil {
		return nil, fmt.Errorf("invalid value for leaf %q: %w", leaf.Name, err)
	}
	out.Value = &val
	return out, nil
}

// isExprDefined checks if an HCL expression was actually present in the
// source. The decoder fills omitted optional expressions with a zero-width
// placeholder, so a nil check is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		logger.Debug("Expression is nil, considering it undefined.", "attribute", attrName)
		return false
	}

	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	logger.Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}
