package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wendygui/core-components/engine/material"
	"github.com/wendygui/core-components/engine/scene"
	"github.com/wendygui/core-components/engine/shader"
)

func TestEngineSceneRegistry(t *testing.T) {
	s := scene.NewScene("a")
	e := NewEngine(WithScene(0, s))

	assert.Same(t, s, e.Scene(0))
	assert.Nil(t, e.Scene(1))

	other := scene.NewScene("b")
	e.AddScene(1, other)
	assert.Same(t, other, e.Scene(1))

	e.RemoveScene(0)
	assert.Nil(t, e.Scene(0))
}

func TestEngineTicksScenesHeadless(t *testing.T) {
	ext := shader.NewExtender()
	class, err := ext.Extend("basic", &shader.Extension{
		Uniforms: material.Uniforms{"time": {Value: float64(0)}},
		UpdateUniforms: func(elapsed float64, m shader.ProgramMaterial) {
			u := m.Uniforms()
			u["time"].Value = u["time"].Value.(float64) + elapsed
		},
	})
	require.NoError(t, err)

	m := class.New(material.Params{})
	s := scene.NewScene("main", scene.WithUpdateWorkers(1))
	s.Add(scene.NewNode("n", scene.WithMesh(scene.NewMesh("cube", m))))

	ticks := make(chan struct{}, 64)
	e := NewEngine(WithScene(0, s), WithTickRate(200))
	e.SetTickCallback(func(deltaTime float64) {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	// Wait for a few ticks rather than sleeping a fixed duration.
	for i := 0; i < 3; i++ {
		select {
		case <-ticks:
		case <-time.After(2 * time.Second):
			t.Fatal("engine never ticked")
		}
	}
	e.Quit()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("engine did not shut down")
	}

	assert.Greater(t, s.Elapsed(), float64(0))
	assert.Greater(t, m.Uniforms()["time"].Value.(float64), float64(0))
}

func TestEngineQuitIsIdempotent(t *testing.T) {
	e := NewEngine()
	go e.Run()
	e.Quit()
	assert.NotPanics(t, e.Quit)
}
