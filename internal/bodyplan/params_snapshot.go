package bodyplan

import (
	"strconv"

	"exobio/internal/core"
)

// Parameters describes the configuration for display.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Canvas",
			Params: []core.Parameter{
				intParam("size", "Size", c.Size, "canvas edge length in cells"),
				{Key: "policy", Label: "Bounds policy", Type: core.ParamTypeEnum, Value: c.Policy.String(), Description: "clip or strict"},
			},
		},
		{
			Name: "Body",
			Params: []core.Parameter{
				rangeParam("central_radius", "Central radius", c.CentralRadius, "radius of a circular central body"),
				rangeParam("secondary_radius", "Secondary radius", c.SecondaryRadius, "radius of a circular secondary part"),
				intParam("central_line_half", "Central line half", c.Layout.CentralLineHalf, "half length of a line central body"),
				intParam("secondary_circle_offset", "Secondary circle offset", c.Layout.SecondaryCircleOffset, "column offset of a circular secondary part"),
				intParam("secondary_line_offset", "Secondary line offset", c.Layout.SecondaryLineOffset, "column offset of a line secondary part"),
				intParam("secondary_line_half", "Secondary line half", c.Layout.SecondaryLineHalf, "half length of a line secondary part"),
			},
		},
		{
			Name: "Appendages",
			Params: []core.Parameter{
				rangeParam("appendage_length", "Appendage length", c.AppendageLength, "reach of each appendage"),
				rangeParam("appendage_count", "Appendage count", c.AppendageCount, "radial appendage count"),
			},
		},
	}}
}

func intParam(key, label string, v int, desc string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v), Description: desc}
}

func rangeParam(key, label string, r Range, desc string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeRange, Value: r.String(), Description: desc}
}
