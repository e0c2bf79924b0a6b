package scaffold

import (
	"strings"

	"github.com/wpscaffold/cli/internal/substitute"
)

// Placeholders baked into the boilerplate sources.
const (
	TextDomainNeedle      = "bea-plugin-boilerplate"
	InitFunctionNeedle    = "init_bea_pb_plugin"
	HumanNameNeedle       = "BEA Plugin Name"
	NamespaceNeedle       = `BEA\PB`
	ConstantsPrefixNeedle = "BEA_PB_"
	ViewFolderNeedle      = "bea-pb"
)

// Questions asked once the files are in place.
const (
	HumanNameQuestion       = "What is your plugin's real name? (e.g: 'My great plugin')"
	NamespaceQuestion       = `What is your plugin's namespace? (e.g: 'My_company\My_Plugin')`
	ConstantsPrefixQuestion = "What is your constants prefix? (e.g: 'MY_COMPANY_MY_PLUGIN_')"
	ViewFolderQuestion      = "What is your plugin's view folder name? (e.g: 'my-plugin')"
)

// Parameters are the user-chosen names substituted into the plugin.
type Parameters struct {
	Folder          string
	HumanName       string
	Namespace       string
	ConstantsPrefix string
	ViewFolder      string
}

// InitFunction is the bootstrap function name derived from the folder.
func (p Parameters) InitFunction() string {
	return "init_" + strings.ReplaceAll(p.Folder, "-", "_") + "_plugin"
}

// identifierRules rename what derives from the folder name alone.
func (p Parameters) identifierRules() []substitute.Rule {
	return []substitute.Rule{
		{Needle: TextDomainNeedle, Replacement: p.Folder},
		{Needle: InitFunctionNeedle, Replacement: p.InitFunction()},
	}
}

// parameterRules rename what the user was asked for.
func (p Parameters) parameterRules() []substitute.Rule {
	return []substitute.Rule{
		{Needle: HumanNameNeedle, Replacement: p.HumanName},
		{Needle: NamespaceNeedle, Replacement: p.Namespace},
		{Needle: ConstantsPrefixNeedle, Replacement: p.ConstantsPrefix},
		{Needle: ViewFolderNeedle, Replacement: p.ViewFolder},
	}
}
