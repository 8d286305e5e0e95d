package store

// SceneDirty reports whether geometry must be rebuilt on the next tick.
func (s *Store) SceneDirty() bool { return s.sceneDirty }

// MarkSceneDirty requests a rebuild of every entity on the next tick.
func (s *Store) MarkSceneDirty() { s.sceneDirty = true }

// ClearSceneDirty is called by the render loop once the rebuild is done.
func (s *Store) ClearSceneDirty() { s.sceneDirty = false }

// GuiDirty reports whether the control panel shows stale values.
func (s *Store) GuiDirty() bool { return s.guiDirty }

// MarkGuiDirty asks the control panel to refresh (e.g. after a parameter edit).
func (s *Store) MarkGuiDirty() { s.guiDirty = true }

// ConsumeGuiDirty returns the flag and clears it. The panel calls this once per frame.
func (s *Store) ConsumeGuiDirty() bool {
	d := s.guiDirty
	s.guiDirty = false
	return d
}
