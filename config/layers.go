package config

import "github.com/yohamta/donburi/ecs"

// Default is the render layer every entity and renderer lives on.
// Renderers draw in the order they are added.
var Default = ecs.LayerDefault
