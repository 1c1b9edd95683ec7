package policy_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/skillcoder/webapp-operator/internal/logic/policy"
)

func newPod(annotations map[string]string, containers ...corev1.Container) *corev1.Pod {
	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:        "test-pod",
			Namespace:   "apps",
			Annotations: annotations,
		},
		Spec: corev1.PodSpec{Containers: containers},
	}
}

func wantDefaultResources() corev1.ResourceRequirements {
	return corev1.ResourceRequirements{
		Requests: corev1.ResourceList{
			corev1.ResourceCPU:    resource.MustParse("100m"),
			corev1.ResourceMemory: resource.MustParse("128Mi"),
		},
		Limits: corev1.ResourceList{
			corev1.ResourceCPU:    resource.MustParse("200m"),
			corev1.ResourceMemory: resource.MustParse("256Mi"),
		},
	}
}

func wantDefaultSecurityContext() *corev1.SecurityContext {
	return &corev1.SecurityContext{
		RunAsUser:  ptr.To(int64(1000)),
		RunAsGroup: ptr.To(int64(3000)),
		Privileged: ptr.To(false),
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	t.Run("bare containers of every kind get defaults", func(t *testing.T) {
		t.Parallel()

		pod := newPod(nil, corev1.Container{Name: "app"})
		pod.Spec.InitContainers = []corev1.Container{{Name: "init"}}
		pod.Spec.EphemeralContainers = []corev1.EphemeralContainer{
			{EphemeralContainerCommon: corev1.EphemeralContainerCommon{Name: "debug"}},
		}

		policy.Default(pod)

		for _, got := range []struct {
			res corev1.ResourceRequirements
			sc  *corev1.SecurityContext
		}{
			{pod.Spec.Containers[0].Resources, pod.Spec.Containers[0].SecurityContext},
			{pod.Spec.InitContainers[0].Resources, pod.Spec.InitContainers[0].SecurityContext},
			{pod.Spec.EphemeralContainers[0].Resources, pod.Spec.EphemeralContainers[0].SecurityContext},
		} {
			require.True(t, got.res.Requests.Cpu().Equal(resource.MustParse("100m")))
			require.True(t, got.res.Requests.Memory().Equal(resource.MustParse("128Mi")))
			require.True(t, got.res.Limits.Cpu().Equal(resource.MustParse("200m")))
			require.True(t, got.res.Limits.Memory().Equal(resource.MustParse("256Mi")))
			require.Empty(t, cmp.Diff(wantDefaultSecurityContext(), got.sc))
		}
	})

	t.Run("containers do not share default descriptors", func(t *testing.T) {
		t.Parallel()

		pod := newPod(nil, corev1.Container{Name: "a"}, corev1.Container{Name: "b"})

		policy.Default(pod)

		*pod.Spec.Containers[0].SecurityContext.RunAsUser = 42
		require.Equal(t, int64(1000), *pod.Spec.Containers[1].SecurityContext.RunAsUser)
	})

	t.Run("configured containers are left unchanged", func(t *testing.T) {
		t.Parallel()

		configured := corev1.Container{
			Name: "configured",
			Resources: corev1.ResourceRequirements{
				Limits: corev1.ResourceList{corev1.ResourceMemory: resource.MustParse("1Gi")},
			},
			SecurityContext: &corev1.SecurityContext{RunAsUser: ptr.To(int64(2000))},
		}
		pod := newPod(nil, configured, corev1.Container{Name: "bare"})
		want := configured.DeepCopy()

		policy.Default(pod)

		require.Empty(t, cmp.Diff(*want, pod.Spec.Containers[0]))
		require.NotNil(t, pod.Spec.Containers[1].SecurityContext)
	})

	// Presence is checked per descriptor, not per field: a lone limit keeps
	// requests empty and a lone runAsUser keeps runAsGroup unset.
	t.Run("partially set descriptors are not merged", func(t *testing.T) {
		t.Parallel()

		pod := newPod(nil, corev1.Container{
			Name: "partial",
			Resources: corev1.ResourceRequirements{
				Requests: corev1.ResourceList{corev1.ResourceCPU: resource.MustParse("50m")},
			},
			SecurityContext: &corev1.SecurityContext{Privileged: ptr.To(false)},
		})

		policy.Default(pod)

		got := pod.Spec.Containers[0]
		require.Nil(t, got.Resources.Limits)
		require.NotContains(t, got.Resources.Requests, corev1.ResourceMemory)
		require.Nil(t, got.SecurityContext.RunAsUser)
		require.Nil(t, got.SecurityContext.RunAsGroup)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		pod := newPod(nil, corev1.Container{Name: "app"}, corev1.Container{
			Name:            "other",
			SecurityContext: &corev1.SecurityContext{RunAsUser: ptr.To(int64(5000))},
		})

		policy.Default(pod)
		once := pod.DeepCopy()
		policy.Default(pod)

		require.Empty(t, cmp.Diff(once, pod))
	})

	t.Run("defaulted pod passes validation", func(t *testing.T) {
		t.Parallel()

		pod := newPod(nil, corev1.Container{Name: "app"})

		policy.Default(pod)

		require.NoError(t, policy.Validate(pod))
		require.Empty(t, cmp.Diff(wantDefaultResources(), pod.Spec.Containers[0].Resources))
	})

	t.Run("nil pod is a no-op", func(t *testing.T) {
		t.Parallel()

		require.NotPanics(t, func() { policy.Default(nil) })
	})
}

type validateCase struct {
	name            string
	giveAnnotations map[string]string
	giveSC          *corev1.SecurityContext
	giveInitSC      *corev1.SecurityContext
	wantErr         error
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []validateCase{
		{
			name:   "no security context approves",
			giveSC: nil,
		},
		{
			name:   "safe ids approve",
			giveSC: &corev1.SecurityContext{RunAsUser: ptr.To(int64(1000)), RunAsGroup: ptr.To(int64(3000))},
		},
		{
			name:    "user id 5 denies",
			giveSC:  &corev1.SecurityContext{RunAsUser: ptr.To(int64(5))},
			wantErr: policy.ErrRunAsUser,
		},
		{
			name:    "user id 10 is inclusive",
			giveSC:  &corev1.SecurityContext{RunAsUser: ptr.To(int64(10))},
			wantErr: policy.ErrRunAsUser,
		},
		{
			name:    "user id 0 denies",
			giveSC:  &corev1.SecurityContext{RunAsUser: ptr.To(int64(0))},
			wantErr: policy.ErrRunAsUser,
		},
		{
			name:    "group id 7 denies",
			giveSC:  &corev1.SecurityContext{RunAsUser: ptr.To(int64(1000)), RunAsGroup: ptr.To(int64(7))},
			wantErr: policy.ErrRunAsGroup,
		},
		{
			name:    "privileged denies",
			giveSC:  &corev1.SecurityContext{Privileged: ptr.To(true)},
			wantErr: policy.ErrPrivileged,
		},
		{
			name:   "privileged false approves",
			giveSC: &corev1.SecurityContext{Privileged: ptr.To(false)},
		},
		{
			// Probable inverted rule: requesting the safer non-root posture is
			// rejected. Pinned until the policy intent is confirmed.
			name:    "runAsNonRoot true denies",
			giveSC:  &corev1.SecurityContext{RunAsNonRoot: ptr.To(true)},
			wantErr: policy.ErrRunAsNonRoot,
		},
		{
			name:   "runAsNonRoot false approves",
			giveSC: &corev1.SecurityContext{RunAsNonRoot: ptr.To(false)},
		},
		{
			name:    "user rule wins over privileged in the same container",
			giveSC:  &corev1.SecurityContext{RunAsUser: ptr.To(int64(1)), Privileged: ptr.To(true)},
			wantErr: policy.ErrRunAsUser,
		},
		{
			name:       "init container violation denies",
			giveSC:     &corev1.SecurityContext{RunAsUser: ptr.To(int64(1000))},
			giveInitSC: &corev1.SecurityContext{Privileged: ptr.To(true)},
			wantErr:    policy.ErrPrivileged,
		},
		{
			name:            "ignore annotation approves anything",
			giveAnnotations: map[string]string{policy.IgnoreAnnotationKey: ""},
			giveSC:          &corev1.SecurityContext{RunAsUser: ptr.To(int64(0)), Privileged: ptr.To(true)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pod := newPod(tt.giveAnnotations, corev1.Container{Name: "app", SecurityContext: tt.giveSC})
			if tt.giveInitSC != nil {
				pod.Spec.InitContainers = []corev1.Container{{Name: "init", SecurityContext: tt.giveInitSC}}
			}

			before := pod.DeepCopy()
			err := policy.Validate(pod)

			require.Empty(t, cmp.Diff(before, pod), "validate must not mutate the pod")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestValidate_EphemeralContainer(t *testing.T) {
	t.Parallel()

	pod := newPod(nil, corev1.Container{Name: "app"})
	pod.Spec.EphemeralContainers = []corev1.EphemeralContainer{{
		EphemeralContainerCommon: corev1.EphemeralContainerCommon{
			Name:            "debug",
			SecurityContext: &corev1.SecurityContext{RunAsGroup: ptr.To(int64(0))},
		},
	}}

	err := policy.Validate(pod)
	require.ErrorIs(t, err, policy.ErrRunAsGroup)
	require.Contains(t, err.Error(), `"debug"`)
}
