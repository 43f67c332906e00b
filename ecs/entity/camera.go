package entity

import (
	"fmt"

	"github.com/milk9111/tilegame/ecs"
	"github.com/milk9111/tilegame/ecs/component"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	camera, err := BuildEntity(w, "camera.yaml")
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	if !ecs.Has(w, camera, component.CameraComponent.Kind()) {
		ecs.DestroyEntity(w, camera)
		return 0, fmt.Errorf("camera: prefab has no camera component")
	}
	return camera, nil
}
