package scenario

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/region"
)

// Parse decodes an HCL scenario held in memory. filename is used in
// diagnostics only.
func Parse(src []byte, filename string) (*Scenario, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("scenario: parse %s: %w", filename, diags)
	}
	return decode(file, filename)
}

// Load reads and decodes the HCL scenario at path.
func Load(path string) (*Scenario, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, diags)
	}
	return decode(file, path)
}

func decode(file *hcl.File, filename string) (*Scenario, error) {
	var hdr fileHeader
	if diags := gohcl.DecodeBody(file.Body, nil, &hdr); diags.HasErrors() {
		return nil, fmt.Errorf("scenario: decode %s: %w", filename, diags)
	}

	var body fileBody
	ctx := evalContext(hdr.Grid.Width, hdr.Grid.Height)
	if diags := gohcl.DecodeBody(hdr.Remain, ctx, &body); diags.HasErrors() {
		return nil, fmt.Errorf("scenario: decode %s: %w", filename, diags)
	}

	s := &Scenario{
		Source:    filename,
		Width:     hdr.Grid.Width,
		Height:    hdr.Grid.Height,
		Strategy:  body.Strategy,
		Heuristic: body.Heuristic,
	}
	if body.Autoplay != nil {
		s.Autoplay = *body.Autoplay
	}

	var err error
	if s.Start, err = optionalPosition("start", body.Start); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, filename, err)
	}
	if s.Goal, err = optionalPosition("goal", body.Goal); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, filename, err)
	}
	for i, raw := range body.Obstacles {
		p, err := position(fmt.Sprintf("obstacles[%d]", i), raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, filename, err)
		}
		s.Obstacles = append(s.Obstacles, p)
	}
	for _, w := range body.Walls {
		s.Walls = append(s.Walls, Wall{
			Name: w.Name,
			Rect: region.Rect{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height},
		})
	}

	return s, nil
}

// evalContext exposes the grid size and a few numeric helpers to the body.
func evalContext(width, height int) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"width":  cty.NumberIntVal(int64(width)),
			"height": cty.NumberIntVal(int64(height)),
		},
		Functions: map[string]function.Function{
			"min":   stdlib.MinFunc,
			"max":   stdlib.MaxFunc,
			"floor": stdlib.FloorFunc,
			"ceil":  stdlib.CeilFunc,
		},
	}
}

func position(name string, raw []int) (grid.Position, error) {
	if len(raw) != 2 {
		return grid.Position{}, fmt.Errorf("%s must be [x, y], got %d elements", name, len(raw))
	}
	return grid.Position{X: raw[0], Y: raw[1]}, nil
}

func optionalPosition(name string, raw []int) (*grid.Position, error) {
	if raw == nil {
		return nil, nil
	}
	p, err := position(name, raw)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
