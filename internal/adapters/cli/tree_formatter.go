package cli

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

// TreeFormatter renders a factory's product designs as a recipe tree
type TreeFormatter struct {
	useColors bool
}

// NewTreeFormatter creates a new tree formatter
func NewTreeFormatter(useColors bool) *TreeFormatter {
	return &TreeFormatter{useColors: useColors}
}

// FormatDesigns renders every design with its ingredients.
// Materials the factory is short of for one unit are marked.
func (f *TreeFormatter) FormatDesigns(factory world.FactoryView) string {
	if len(factory.Designs) == 0 {
		return "(no designs)"
	}

	var builder strings.Builder
	for i, design := range factory.Designs {
		f.formatDesign(&builder, factory, design, i == len(factory.Designs)-1)
	}
	return strings.TrimRight(builder.String(), "\n")
}

func (f *TreeFormatter) formatDesign(builder *strings.Builder, factory world.FactoryView, design world.DesignView, isLast bool) {
	linePrefix, childPrefix := "├── ", "│   "
	if isLast {
		linePrefix, childPrefix = "└── ", "    "
	}

	fmt.Fprintf(builder, "%s%s%s%s (cost %s, %d in stock)\n",
		linePrefix, f.color("\033[33m"), design.Name, f.colorReset(),
		design.Cost, factory.Products[design.Name])

	for i, ing := range design.Ingredients {
		branch := "├── "
		if i == len(design.Ingredients)-1 {
			branch = "└── "
		}
		have := factory.Materials[ing.Material]
		status := f.color("\033[32m") + "ok" + f.colorReset()
		if have < ing.PerUnit {
			status = f.color("\033[31m") + "short" + f.colorReset()
		}
		fmt.Fprintf(builder, "%s%s%s x%d (have %d, %s)\n",
			childPrefix, branch, ing.Material, ing.PerUnit, have, status)
	}
}

func (f *TreeFormatter) color(code string) string {
	if !f.useColors {
		return ""
	}
	return code
}

// colorReset returns ANSI reset code
func (f *TreeFormatter) colorReset() string {
	return f.color("\033[0m")
}

// FormatDesignSummary creates a compact one-line summary, e.g. "Chair(Wood x4), Phone(Plastic x2, Gold x1)"
func (f *TreeFormatter) FormatDesignSummary(factory world.FactoryView) string {
	if len(factory.Designs) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(factory.Designs))
	for _, design := range factory.Designs {
		ingredients := make([]string, 0, len(design.Ingredients))
		for _, ing := range design.Ingredients {
			ingredients = append(ingredients, fmt.Sprintf("%s x%d", ing.Material, ing.PerUnit))
		}
		parts = append(parts, fmt.Sprintf("%s(%s)", design.Name, strings.Join(ingredients, ", ")))
	}
	return strings.Join(parts, ", ")
}
