package cmdutil

import (
	"fmt"
	"path/filepath"

	"github.com/wpscaffold/cli/internal/output"
	"github.com/wpscaffold/cli/internal/scaffold"
)

// fileDescriptions annotate well-known boilerplate files in the created tree.
var fileDescriptions = map[string]string{
	"compat.php":   "PHP and WordPress version checks",
	"autoload.php": "class autoloader",
	"views/":       "templates",
}

// CreatedTree renders the files a scaffold created, rooted at the plugin folder.
func CreatedTree(res *scaffold.Result) string {
	folder := filepath.Base(res.InstallPath)
	files := make(map[string]string, len(res.Created))
	for _, p := range res.Created {
		desc := fileDescriptions[p]
		if p == folder+".php" {
			desc = "plugin entry point"
		}
		files[p] = desc
	}
	return output.RenderFileTree(folder, files)
}

// PrintScaffoldResult writes the summary of a completed scaffold to stdout.
func PrintScaffoldResult(res *scaffold.Result) {
	output.Println("")
	if tree := CreatedTree(res); tree != "" {
		output.Println(tree)
	}

	if len(res.Warnings) > 0 {
		output.Println(output.StyleWarning.Render(fmt.Sprintf("%d warning(s):", len(res.Warnings))))
		for _, w := range res.Warnings {
			output.Println("  - " + w)
		}
		output.Println("")
	}

	output.Println(output.FormatCheckmark("Your plugin is ready!"))
	output.Println(output.StyleDim.Render(fmt.Sprintf("  %s (%s layout)", res.InstallPath, res.Variant)))

	if res.ManifestUpdated {
		output.Println("")
		output.Println(fmt.Sprintf("Namespace %s registered for %s.",
			output.StyleNoun.Render(res.Params.Namespace+`\`), res.AutoloadPath))
		output.Println("Run " + output.StyleNoun.Render("composer dump-autoload") + " to load it.")
	}
}

// PrintPartialScaffold writes what an interrupted scaffold left on disk.
func PrintPartialScaffold(res *scaffold.Result) {
	output.Println("")
	output.Println(output.StyleWarning.Render("Plugin left partially scaffolded in " + res.InstallPath))
	if tree := CreatedTree(res); tree != "" {
		output.Println(tree)
	}
	output.Println("Remove it or finish editing its placeholders by hand.")
}
