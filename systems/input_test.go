package systems

import (
	"reflect"
	"testing"

	"github.com/automoto/shadow-runner/components"
	cfg "github.com/automoto/shadow-runner/config"
)

func TestStickDirections(t *testing.T) {
	tests := []struct {
		name string
		h, v float64
		want []cfg.StickDirection
	}{
		{"centred", 0, 0, nil},
		{"inside deadzone", 0.2, -0.2, nil},
		{"left", -0.9, 0, []cfg.StickDirection{cfg.StickLeft}},
		{"down right", 0.5, 0.5, []cfg.StickDirection{cfg.StickRight, cfg.StickDown}},
		{"up", 0.1, -1, []cfg.StickDirection{cfg.StickUp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stickDirections(tt.h, tt.v, 0.25); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("stickDirections(%v, %v) = %v, want %v", tt.h, tt.v, got, tt.want)
			}
		})
	}
}

func TestDeviceFromName(t *testing.T) {
	tests := []struct {
		name string
		want components.Device
	}{
		{"Xbox Wireless Controller", components.DeviceXbox},
		{"DualSense Wireless Controller", components.DevicePlayStation},
		{"PS4 Controller", components.DevicePlayStation},
		{"8BitDo Pro 2", components.DeviceXbox},
	}

	for _, tt := range tests {
		if got := deviceFromName(tt.name); got != tt.want {
			t.Errorf("deviceFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
