package config

import "testing"

func TestCameraModeShift(t *testing.T) {
	for _, m := range []CameraMode{CameraFixed, CameraFree, CameraFollow} {
		if got := m.ShiftUp(); got != CameraFree {
			t.Errorf("%v.ShiftUp: expected free, got %v", m, got)
		}
		if got := m.ShiftDown(); got != CameraFollow {
			t.Errorf("%v.ShiftDown: expected follow, got %v", m, got)
		}
	}
}

func TestStandableMask(t *testing.T) {
	if StandableMask != 0b1010 {
		t.Errorf("expected standable mask 0b1010, got %b", StandableMask)
	}
	if !StandableMask.Has(LayerTerrain) {
		t.Error("terrain should be standable")
	}
	if StandableMask.Has(LayerItem) || StandableMask.Has(LayerAreaTransition) {
		t.Error("sensor layers should not be standable")
	}
}
