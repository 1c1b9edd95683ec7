// Package validator checks WebApp instances before they are stored or
// reconciled.
package validator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/skillcoder/webapp-operator/api/v1alpha1"
)

const (
	minReplicas = 1
	// maxReplicas keeps a single site from crowding out its neighbours.
	maxReplicas = 7
)

var (
	ErrNilInstance        = errors.New("instance is nil")
	ErrMissingName        = errors.New("metadata.name is required")
	ErrForbiddenNamespace = errors.New("namespace is not allowed")
	ErrReplicas           = errors.New("spec.replicas out of range")
	ErrTheme              = errors.New("spec.theme is invalid")
	ErrLanguage           = errors.New("spec.language is invalid")
)

var (
	forbiddenNamespaces = []string{"", "default", "kube-system", "kube-public", "webapp-system"}
	themes              = []v1alpha1.Theme{v1alpha1.ThemeDark, v1alpha1.ThemeLight}
	languages           = []v1alpha1.Language{v1alpha1.LanguageEnglish, v1alpha1.LanguageSpanish}
)

// Validate returns nil when the instance may be stored and reconciled, or an
// error wrapping one of the package sentinels describing the first problem.
func Validate(app *v1alpha1.WebApp) error {
	if app == nil {
		return ErrNilInstance
	}

	if app.Name == "" {
		return ErrMissingName
	}

	if slices.Contains(forbiddenNamespaces, app.Namespace) {
		return fmt.Errorf("%w: %q", ErrForbiddenNamespace, app.Namespace)
	}

	if app.Spec.Replicas < minReplicas || app.Spec.Replicas > maxReplicas {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrReplicas, app.Spec.Replicas, minReplicas, maxReplicas)
	}

	if !slices.Contains(themes, app.Spec.Theme) {
		return fmt.Errorf("%w: %q", ErrTheme, app.Spec.Theme)
	}

	if !slices.Contains(languages, app.Spec.Language) {
		return fmt.Errorf("%w: %q", ErrLanguage, app.Spec.Language)
	}

	return nil
}
