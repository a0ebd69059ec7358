package scene

import (
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/wendygui/core-components/engine/material"
	"github.com/wendygui/core-components/engine/shader"
)

// Scene manages a registry of Nodes and drives the per-tick uniform updates
// of every live program material. Thread-safe for concurrent access; the
// update fan-out runs on a bounded worker pool whose goroutines persist
// across frames.
type Scene interface {
	// Name returns the scene's identifier.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// Add registers a node and assigns it a unique ID.
	//
	// Parameters:
	//   - n: the node to register
	//
	// Returns:
	//   - uint64: the assigned node ID
	Add(n Node) uint64

	// Remove unregisters a node by ID. Unknown IDs are ignored.
	//
	// Parameters:
	//   - id: the node ID to remove
	Remove(id uint64)

	// Node retrieves a registered node by ID.
	//
	// Parameters:
	//   - id: the node ID
	//
	// Returns:
	//   - Node: the node, or nil if not registered
	Node(id uint64) Node

	// Count returns the number of registered nodes.
	//
	// Returns:
	//   - int: the node count
	Count() int

	// Elapsed returns the scene clock: the sum of all Update deltas.
	//
	// Returns:
	//   - float64: elapsed scene time in seconds
	Elapsed() float64

	// Update advances the scene clock by dt seconds and fans a uniform
	// update across every enabled node whose mesh carries a program
	// material. The call blocks until all updates for this tick complete.
	//
	// Parameters:
	//   - dt: seconds since the previous tick
	Update(dt float64)

	// ApplyEffect replaces the material of the node's mesh with an instance
	// of a class synthesized from the extension, extended against the mesh's
	// current material. The replacement inherits the current material's
	// name, color, map, opacity, and transparency. When the current material
	// resolves to no known shader, no replacement is performed: the mesh
	// keeps its material and ApplyEffect returns false.
	//
	// Parameters:
	//   - n: the node whose mesh material is replaced
	//   - ext: the effect to apply
	//
	// Returns:
	//   - bool: true if the material was replaced
	ApplyEffect(n Node, ext *shader.Extension) bool
}

type scene struct {
	mu       sync.RWMutex
	name     string
	registry map[uint64]Node
	nextID   uint64
	clock    float64
	extender shader.Extender

	// updatePool manages a bounded set of reusable goroutines for the
	// per-tick uniform update fan-out. Workers persist across frames.
	updatePool    worker.DynamicWorkerPool
	updateWorkers int
}

var _ Scene = &scene{}

// NewScene creates a Scene with its own extender and worker pool, then
// applies the given options.
//
// Parameters:
//   - name: the scene name
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the new scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		name:          name,
		registry:      make(map[uint64]Node),
		nextID:        1,
		extender:      shader.NewExtender(),
		updateWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Initialized after options so WithUpdateWorkers can override the
	// default. Queue size of 256 accommodates typical node counts.
	s.updatePool = worker.NewDynamicWorkerPool(s.updateWorkers, 256, 1*time.Second)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) Add(n Node) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	n.SetID(id)
	s.registry[id] = n
	return id
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.registry, id)
}

func (s *scene) Node(id uint64) Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Elapsed() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clock
}

func (s *scene) Update(dt float64) {
	s.mu.Lock()
	s.clock += dt
	live := make([]shader.ProgramMaterial, 0, len(s.registry))
	for _, n := range s.registry {
		if !n.Enabled() {
			continue
		}
		mesh := n.Mesh()
		if mesh == nil {
			continue
		}
		if pm, ok := mesh.Material().(shader.ProgramMaterial); ok {
			live = append(live, pm)
		}
	}
	s.mu.Unlock()

	// A WaitGroup provides the per-tick barrier; pool.Wait() blocks until
	// workers idle-exit, which is unsuitable for frame-rate workloads.
	var wg sync.WaitGroup
	for i, pm := range live {
		wg.Add(1)
		mCap := pm
		s.updatePool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				mCap.UpdateUniforms(dt)
				return nil, nil
			},
		})
	}
	wg.Wait()
}

func (s *scene) ApplyEffect(n Node, ext *shader.Extension) bool {
	mesh := n.Mesh()
	if mesh == nil || mesh.Material() == nil {
		return false
	}
	current := mesh.Material()

	class, err := s.extender.Extend(current, ext)
	if err != nil {
		log.Printf("scene %s: no replacement performed for node %s: %v", s.name, n.Name(), err)
		return false
	}

	opacity := current.Opacity()
	transparent := current.Transparent()
	replacement := class.New(material.Params{
		Name:        current.Name(),
		Color:       current.Color(),
		Map:         current.Map(),
		Opacity:     &opacity,
		Transparent: &transparent,
	})
	mesh.SetMaterial(replacement)
	return true
}
