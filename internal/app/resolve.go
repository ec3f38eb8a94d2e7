// Where: cli/internal/app/resolve.go
// What: Merge flags, preset answers, prompts, and defaults into one request.
// Why: Keep the orchestrator free of input plumbing.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/template-api/create-api/internal/config"
	"github.com/template-api/create-api/internal/frontend"
	"github.com/template-api/create-api/internal/generator"
	"github.com/template-api/create-api/internal/interaction"
	"github.com/template-api/create-api/internal/pm"
)

// featureOptions lists the selectable feature flags.
var featureOptions = []interaction.SelectOption{
	{Label: "Authentication (API key middleware)", Value: "auth"},
	{Label: "Request logging", Value: "logging"},
	{Label: "OpenAPI document", Value: "docs"},
}

// providerOptions lists the selectable data providers.
var providerOptions = []interaction.SelectOption{
	{Label: "In-memory store", Value: "memory"},
	{Label: "PostgreSQL", Value: "postgres"},
	{Label: "MongoDB", Value: "mongo"},
}

// createAnswers is the fully resolved input of one create invocation.
type createAnswers struct {
	ProjectName     string
	TargetDirectory string
	Language        generator.Language
	Features        []string
	PackageManager  pm.Manager
	DataProviders   []string
	Framework       frontend.Framework
}

// loadPreset is swapped in tests.
var loadPreset = config.LoadPreset

// resolveAnswers merges, in order of precedence, CLI flags, the preset
// file, interactive answers, and defaults. Every field except dry-run is
// supplied by the time it returns.
func resolveAnswers(cmd CreateCmd, deps Dependencies) (createAnswers, error) {
	var preset config.Preset
	if cmd.Preset != "" {
		loaded, err := loadPreset(cmd.Preset)
		if err != nil {
			return createAnswers{}, err
		}
		preset = loaded
	}

	answers := createAnswers{}

	targetDir := firstNonEmpty(cmd.Directory, preset.TargetDirectory)
	if targetDir == "" {
		if !deps.Interactive {
			return createAnswers{}, fmt.Errorf("target directory is required (pass it as an argument)")
		}
		input, err := deps.Prompter.Input("Where should the project be created?", "my-api")
		if err != nil {
			return createAnswers{}, err
		}
		targetDir = input
	}
	answers.TargetDirectory = targetDir

	name := firstNonEmpty(cmd.Name, preset.ProjectName)
	if name == "" && deps.Interactive {
		input, err := deps.Prompter.Input("Project name?", defaultProjectName(targetDir))
		if err != nil {
			return createAnswers{}, err
		}
		name = input
	}
	if name == "" {
		name = defaultProjectName(targetDir)
	}
	answers.ProjectName = name

	language := firstNonEmpty(cmd.Language, preset.Language)
	if language == "" && deps.Interactive && len(generator.Languages) > 1 {
		options := make([]interaction.SelectOption, len(generator.Languages))
		for i, lang := range generator.Languages {
			options[i] = interaction.SelectOption{Label: string(lang), Value: string(lang)}
		}
		selected, err := deps.Prompter.SelectValue("Backend language?", options)
		if err != nil {
			return createAnswers{}, err
		}
		language = selected
	}
	if language == "" {
		language = string(generator.LanguageNode)
	}
	answers.Language = generator.Language(language)

	manager := firstNonEmpty(cmd.PackageManager, preset.PackageManager)
	if manager == "" && deps.Interactive {
		options := make([]interaction.SelectOption, len(pm.Managers))
		for i, m := range pm.Managers {
			options[i] = interaction.SelectOption{Label: string(m), Value: string(m)}
		}
		selected, err := deps.Prompter.SelectValue("Package manager?", options)
		if err != nil {
			return createAnswers{}, err
		}
		manager = selected
	}
	if manager == "" {
		manager = string(pm.Detect())
	}
	if !pm.Manager(manager).Valid() {
		return createAnswers{}, fmt.Errorf("unsupported package manager: %s", manager)
	}
	answers.PackageManager = pm.Manager(manager)

	answers.Features = cmd.Feature
	if len(answers.Features) == 0 {
		answers.Features = preset.Features
	}
	if answers.Features == nil && deps.Interactive && cmd.Preset == "" {
		selected, err := deps.Prompter.MultiSelect("Features to enable?", featureOptions)
		if err != nil {
			return createAnswers{}, err
		}
		answers.Features = selected
	}

	answers.DataProviders = cmd.DataProvider
	if len(answers.DataProviders) == 0 {
		answers.DataProviders = preset.DataProviders
	}
	if answers.DataProviders == nil && deps.Interactive && cmd.Preset == "" {
		selected, err := deps.Prompter.MultiSelect("Data providers to configure?", providerOptions)
		if err != nil {
			return createAnswers{}, err
		}
		answers.DataProviders = selected
	}

	framework := firstNonEmpty(cmd.Frontend, preset.FrontendFramework)
	if framework == "" && deps.Interactive && cmd.Preset == "" {
		options := make([]interaction.SelectOption, len(frontend.Frameworks))
		for i, fw := range frontend.Frameworks {
			options[i] = interaction.SelectOption{Label: string(fw), Value: string(fw)}
		}
		selected, err := deps.Prompter.SelectValue("Frontend framework?", options)
		if err != nil {
			return createAnswers{}, err
		}
		framework = selected
	}
	if framework == "" {
		framework = string(frontend.FrameworkNone)
	}
	answers.Framework = frontend.Framework(framework)
	if answers.Framework != frontend.FrameworkNone {
		if _, err := frontend.DefinitionFor(answers.Framework); err != nil {
			return createAnswers{}, err
		}
	}

	return answers, nil
}

// defaultProjectName derives a project name from the target directory.
func defaultProjectName(targetDir string) string {
	base := filepath.Base(filepath.Clean(targetDir))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "my-api"
	}
	return base
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
