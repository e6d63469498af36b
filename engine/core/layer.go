package core

// Layer is a slice of application behavior stacked on the engine: the
// sandbox splits camera control and debug reporting into layers, and a
// game stacks gameplay under pause menus the same way. Updates and
// renders walk bottom-up; events walk top-down until a layer consumes
// them.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // true when consumed
}

// LayerStack holds layers in push order and owns the traversal rules.
// Push through Engine.PushLayer so the attach hook fires.
type LayerStack struct {
	layers []Layer
}

func (s *LayerStack) Push(l Layer) { s.layers = append(s.layers, l) }

func (s *LayerStack) Pop() (Layer, bool) {
	if len(s.layers) == 0 {
		return nil, false
	}
	top := len(s.layers) - 1
	l := s.layers[top]
	s.layers = s.layers[:top]
	return l, true
}

func (s *LayerStack) Len() int { return len(s.layers) }

// Update ticks every layer bottom-up at the fixed timestep.
func (s *LayerStack) Update(e *Engine, dt float64) {
	for _, l := range s.layers {
		l.OnUpdate(e, dt)
	}
}

// Render draws every layer bottom-up with the frame's interpolation
// alpha.
func (s *LayerStack) Render(e *Engine, alpha float64) {
	for _, l := range s.layers {
		l.OnRender(e, alpha)
	}
}

// Dispatch offers the event to layers top-down and reports whether one
// consumed it. Layers above see events before the layers they cover.
func (s *LayerStack) Dispatch(e *Engine, ev Event) bool {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if s.layers[i].OnEvent(e, ev) {
			return true
		}
	}
	return false
}
