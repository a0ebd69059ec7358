package scene

import "github.com/wendygui/core-components/engine/shader"

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithNodes adds initial nodes to the scene. Nodes without IDs are assigned
// new IDs.
//
// Parameters:
//   - nodes: the nodes to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithNodes(nodes ...Node) SceneBuilderOption {
	return func(s *scene) {
		for _, n := range nodes {
			if n.ID() == 0 {
				n.SetID(s.nextID)
				s.nextID++
			}
			s.registry[n.ID()] = n
		}
	}
}

// WithExtender replaces the scene's shader extender, letting callers share
// one customized extender (extra hook points, replaced tables) across scenes.
//
// Parameters:
//   - e: the extender to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithExtender(e shader.Extender) SceneBuilderOption {
	return func(s *scene) {
		s.extender = e
	}
}

// WithUpdateWorkers overrides the number of goroutines in the per-tick
// update pool. Values below 1 are clamped to 1.
//
// Parameters:
//   - workers: the worker count
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithUpdateWorkers(workers int) SceneBuilderOption {
	return func(s *scene) {
		s.updateWorkers = max(workers, 1)
	}
}
