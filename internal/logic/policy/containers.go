package policy

import (
	corev1 "k8s.io/api/core/v1"
)

// container is a view over the fields policy cares about, shared by regular,
// init and ephemeral containers.
type container struct {
	name            string
	resources       *corev1.ResourceRequirements
	securityContext **corev1.SecurityContext
}

// containers flattens the pod's containers, init containers and ephemeral
// containers in that order. The returned views point into the pod.
func containers(pod *corev1.Pod) []container {
	spec := &pod.Spec
	out := make([]container, 0, len(spec.Containers)+len(spec.InitContainers)+len(spec.EphemeralContainers))

	for i := range spec.Containers {
		c := &spec.Containers[i]
		out = append(out, container{name: c.Name, resources: &c.Resources, securityContext: &c.SecurityContext})
	}

	for i := range spec.InitContainers {
		c := &spec.InitContainers[i]
		out = append(out, container{name: c.Name, resources: &c.Resources, securityContext: &c.SecurityContext})
	}

	for i := range spec.EphemeralContainers {
		c := &spec.EphemeralContainers[i].EphemeralContainerCommon
		out = append(out, container{name: c.Name, resources: &c.Resources, securityContext: &c.SecurityContext})
	}

	return out
}
