package shadegen

import (
	"testing"
	"time"
)

func TestTimeSeed(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if got, want := TimeSeed(at), uint64(at.UnixMicro()); got != want {
		t.Errorf("TimeSeed = %d, want %d", got, want)
	}
	if TimeSeed(at) == TimeSeed(at.Add(time.Microsecond)) {
		t.Error("adjacent microseconds must seed differently")
	}
}

func TestPhraseSeed(t *testing.T) {
	// BLAKE2b-512 of the phrase, first eight bytes little-endian.
	if got, want := PhraseSeed("aurora over basalt"), uint64(1565089989817454095); got != want {
		t.Errorf("PhraseSeed = %d, want %d", got, want)
	}
	if PhraseSeed("a") == PhraseSeed("b") {
		t.Error("distinct phrases collided")
	}
	if PhraseSeed("") == PhraseSeed("a") {
		t.Error("empty phrase collided")
	}
}

func TestFrameUniforms(t *testing.T) {
	u := FrameUniforms(0)
	if u[0] != 0.5 {
		t.Errorf("sin alpha at t=0 is %v, want 0.5", u[0])
	}
	if u[1] != 1.0 {
		t.Errorf("cos alpha at t=0 is %v, want 1.0", u[1])
	}
	if u[2] != 0 || u[3] != 0 {
		t.Error("padding floats must stay zero")
	}

	for _, elapsed := range []float64{0.1, 1, 10, 1000} {
		u := FrameUniforms(elapsed)
		for i := 0; i < 2; i++ {
			if u[i] < 0 || u[i] > 1 {
				t.Errorf("uniform %d at t=%v is %v outside [0, 1]", i, elapsed, u[i])
			}
		}
	}
}
