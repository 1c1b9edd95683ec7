package validator_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/skillcoder/webapp-operator/api/v1alpha1"
	"github.com/skillcoder/webapp-operator/internal/logic/validator"
)

func newApp(mutate func(*v1alpha1.WebApp)) *v1alpha1.WebApp {
	app := &v1alpha1.WebApp{
		ObjectMeta: metav1.ObjectMeta{Name: "web1", Namespace: "apps"},
		Spec: v1alpha1.WebAppSpec{
			Theme:    v1alpha1.ThemeDark,
			Language: v1alpha1.LanguageEnglish,
			Replicas: 2,
		},
	}

	if mutate != nil {
		mutate(app)
	}

	return app
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    *v1alpha1.WebApp
		wantErr error
	}{
		{name: "valid", give: newApp(nil)},
		{name: "max replicas", give: newApp(func(a *v1alpha1.WebApp) { a.Spec.Replicas = 7 })},
		{name: "nil", give: nil, wantErr: validator.ErrNilInstance},
		{name: "no name", give: newApp(func(a *v1alpha1.WebApp) { a.Name = "" }), wantErr: validator.ErrMissingName},
		{
			name:    "default namespace",
			give:    newApp(func(a *v1alpha1.WebApp) { a.Namespace = "default" }),
			wantErr: validator.ErrForbiddenNamespace,
		},
		{
			name:    "kube-system namespace",
			give:    newApp(func(a *v1alpha1.WebApp) { a.Namespace = "kube-system" }),
			wantErr: validator.ErrForbiddenNamespace,
		},
		{
			name:    "too many replicas",
			give:    newApp(func(a *v1alpha1.WebApp) { a.Spec.Replicas = 8 }),
			wantErr: validator.ErrReplicas,
		},
		{
			name:    "zero replicas",
			give:    newApp(func(a *v1alpha1.WebApp) { a.Spec.Replicas = 0 }),
			wantErr: validator.ErrReplicas,
		},
		{
			name:    "unknown theme",
			give:    newApp(func(a *v1alpha1.WebApp) { a.Spec.Theme = "blue" }),
			wantErr: validator.ErrTheme,
		},
		{
			name:    "unknown language",
			give:    newApp(func(a *v1alpha1.WebApp) { a.Spec.Language = "fr" }),
			wantErr: validator.ErrLanguage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validator.Validate(tt.give)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
		})
	}
}
