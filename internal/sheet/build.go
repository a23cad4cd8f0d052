package sheet

import (
	"context"
	"fmt"
	"slices"

	"github.com/specialistvlad/sheetgo/internal/config"
	"github.com/specialistvlad/sheetgo/internal/ctxlog"
	"github.com/specialistvlad/sheetgo/internal/template"
	"github.com/specialistvlad/sheetgo/internal/value"
)

const (
	ScoresGroup    = "ability_scores"
	AbilitiesGroup = "abilities"
	// TotalMeta is the Sum meta on the scores group.
	TotalMeta = "total"
	// ModMeta is the Common meta on every ability modifier. Its inner leaf
	// has the same name.
	ModMeta = "mod"
	// DefaultScore is used for standard abilities the definition leaves out.
	DefaultScore int64 = 10
)

// Abilities are the standard abilities every sheet has, in sheet order.
var Abilities = []string{"strength", "dexterity", "constitution", "intelligence", "wisdom", "charisma"}

// Sheet is a built template plus the name it was defined with.
type Sheet struct {
	Name     string
	Template *template.Template
}

// Build creates the template for def.
func Build(ctx context.Context, def *config.Definition) (*Sheet, error) {
	logger := ctxlog.FromContext(ctx).With("sheet", def.Name)
	tpl := template.New()
	root := tpl.Root()

	scores, err := root.AddGroup(ScoresGroup)
	if err != nil {
		return nil, err
	}
	abilities, err := root.AddGroup(AbilitiesGroup)
	if err != nil {
		return nil, err
	}

	inputs := scoreInputs(def.Scores)
	total := make([]int64, 0, len(inputs))
	for _, in := range inputs {
		score, err := addScore(scores, in)
		if err != nil {
			return nil, fmt.Errorf("score %q: %w", in.Name, err)
		}
		if err := addModifier(abilities, in.Name, score); err != nil {
			return nil, fmt.Errorf("modifier %q: %w", in.Name, err)
		}
		total = append(total, in.Value)
	}

	sum, err := scores.AddMeta(TotalMeta, template.MetaSum)
	if err != nil {
		return nil, fmt.Errorf("score total: %w", err)
	}
	if _, err := sum.SetMeta(template.Sum{Values: total}); err != nil {
		return nil, fmt.Errorf("score total: %w", err)
	}
	logger.Debug("Ability scores added.", "count", len(inputs))

	for _, g := range def.Groups {
		if err := addGroup(root, g); err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
	}
	logger.Debug("Sheet built.", "groups", len(def.Groups), "nodes", tpl.Len())

	return &Sheet{Name: def.Name, Template: tpl}, nil
}

// scoreInputs returns the standard abilities, taking values from scores
// where given, followed by any other scores in definition order.
func scoreInputs(scores []*config.Score) []*config.Score {
	byName := make(map[string]*config.Score, len(scores))
	for _, s := range scores {
		byName[s.Name] = s
	}

	out := make([]*config.Score, 0, len(Abilities)+len(scores))
	for _, name := range Abilities {
		if s, ok := byName[name]; ok {
			out = append(out, s)
			continue
		}
		out = append(out, &config.Score{Name: name, Value: DefaultScore})
	}
	for _, s := range scores {
		if !slices.Contains(Abilities, s.Name) {
			out = append(out, s)
		}
	}
	return out
}

func addScore(scores template.Handle, in *config.Score) (template.Handle, error) {
	leaf, err := scores.AddLeaf(in.Name, false)
	if err != nil {
		return template.Handle{}, err
	}
	if _, err := leaf.SetValue(value.Integer(in.Value)); err != nil {
		return template.Handle{}, err
	}
	return leaf, addBounds(leaf, in.Min, in.Max)
}

// modifier is (score - 10) / 2.
func modifier(score value.Expr) value.Expr {
	return value.Div(value.Sub(score, value.Int(10)), value.Int(2))
}

// addModifier adds abilities.<name>, computed from the score by reference,
// and its Common meta `mod` whose inner leaf finds the score by name:
//
//	mod.name    Ident, the ability's name
//	mod.source  Concat of "ability_scores." and mod.name
//	mod.mod     (IdentRef(mod.source) - 10) / 2
func addModifier(abilities template.Handle, name string, score template.Handle) error {
	leaf, err := abilities.AddLeaf(name, false)
	if err != nil {
		return err
	}
	if _, err := leaf.SetExpr(modifier(score.Ref())); err != nil {
		return err
	}

	common, err := leaf.AddMeta(ModMeta, template.MetaCommon)
	if err != nil {
		return err
	}
	ident, err := common.AddMeta("name", template.MetaIdent)
	if err != nil {
		return err
	}
	source, err := common.AddMeta("source", template.MetaConcat)
	if err != nil {
		return err
	}
	_, err = source.SetMeta(template.Concat{Parts: []value.Expr{
		value.Str(ScoresGroup + "."),
		ident.Ref(),
	}})
	if err != nil {
		return err
	}

	mod, err := common.AddLeaf(ModMeta, false)
	if err != nil {
		return err
	}
	_, err = mod.SetExpr(modifier(value.Indirect(source.ID())))
	return err
}

func addGroup(parent template.Handle, g *config.Group) error {
	group, err := parent.AddGroup(g.Name)
	if err != nil {
		return err
	}

	for _, l := range g.Leaves {
		if err := addLeaf(group, l); err != nil {
			return fmt.Errorf("leaf %q: %w", l.Name, err)
		}
	}
	for _, s := range g.Sums {
		sum, err := group.AddMeta(s.Name, template.MetaSum)
		if err != nil {
			return fmt.Errorf("sum %q: %w", s.Name, err)
		}
		if _, err := sum.SetMeta(template.Sum{Values: s.Values}); err != nil {
			return fmt.Errorf("sum %q: %w", s.Name, err)
		}
	}
	for _, child := range g.Groups {
		if err := addGroup(group, child); err != nil {
			return fmt.Errorf("group %q: %w", child.Name, err)
		}
	}
	return nil
}

func addLeaf(group template.Handle, l *config.Leaf) error {
	leaf, err := group.AddLeaf(l.Name, l.Deferred)
	if err != nil {
		return err
	}
	if l.HasValue() {
		v, err := value.FromCty(*l.Value)
		if err != nil {
			return err
		}
		if _, err := leaf.SetValue(v); err != nil {
			return err
		}
	}
	return addBounds(leaf, l.Min, l.Max)
}

// addBounds stores the bounds as `min` and `max` Constraint metas on leaf.
func addBounds(leaf template.Handle, lo, hi *int64) error {
	bounds := []struct {
		name  string
		op    template.ConstraintOp
		bound *int64
	}{
		{name: "min", op: template.GreaterOrEqual, bound: lo},
		{name: "max", op: template.LessOrEqual, bound: hi},
	}
	for _, b := range bounds {
		if b.bound == nil {
			continue
		}
		meta, err := leaf.AddMeta(b.name, template.MetaConstraint)
		if err != nil {
			return err
		}
		if _, err := meta.SetMeta(template.Constraint{Op: b.op, Bound: *b.bound}); err != nil {
			return err
		}
	}
	return nil
}
