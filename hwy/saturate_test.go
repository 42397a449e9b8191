package hwy

import (
	"math"
	"testing"
)

func TestSatAddLane(t *testing.T) {
	tests := []struct {
		name      string
		got, want any
	}{
		{"uint8 overflow", SatAddLane[uint8](200, 100), uint8(255)},
		{"uint8 in range", SatAddLane[uint8](200, 55), uint8(255)},
		{"uint8 small", SatAddLane[uint8](1, 2), uint8(3)},
		{"int8 overflow", SatAddLane[int8](100, 100), int8(127)},
		{"int8 underflow", SatAddLane[int8](-100, -100), int8(-128)},
		{"int8 mixed", SatAddLane[int8](-100, 50), int8(-50)},
		{"int64 overflow", SatAddLane[int64](math.MaxInt64, 1), int64(math.MaxInt64)},
		{"uint64 overflow", SatAddLane[uint64](math.MaxUint64, 1), uint64(math.MaxUint64)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestSatSubLane(t *testing.T) {
	tests := []struct {
		name      string
		got, want any
	}{
		{"uint8 underflow", SatSubLane[uint8](5, 10), uint8(0)},
		{"uint8 in range", SatSubLane[uint8](10, 5), uint8(5)},
		{"int16 underflow", SatSubLane[int16](math.MinInt16, 1), int16(math.MinInt16)},
		{"int16 overflow", SatSubLane[int16](math.MaxInt16, -1), int16(math.MaxInt16)},
		{"int32 in range", SatSubLane[int32](-5, -7), int32(2)},
		{"int64 overflow", SatSubLane[int64](0, math.MinInt64), int64(math.MaxInt64)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLaneBounds(t *testing.T) {
	if minLane[int8]() != math.MinInt8 || maxLane[int8]() != math.MaxInt8 {
		t.Errorf("int8 bounds: %d, %d", minLane[int8](), maxLane[int8]())
	}
	if minLane[uint32]() != 0 || maxLane[uint32]() != math.MaxUint32 {
		t.Errorf("uint32 bounds: %d, %d", minLane[uint32](), maxLane[uint32]())
	}
	if clamp(7, 0, 5) != 5 || clamp(-1.5, -1, 1) != -1 {
		t.Error("clamp does not clamp")
	}
}
