package buzzer

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"pico-arcade/pkg/hal"
)

type recorder struct {
	calls        []string
	frequency    uint32
	duty         uint16
	configureErr error
}

func (r *recorder) Configure(frequency uint32) error {
	r.calls = append(r.calls, "configure")
	r.frequency = frequency
	return r.configureErr
}

func (r *recorder) SetDuty(duty uint16) {
	r.calls = append(r.calls, "duty")
	r.duty = duty
}

func (r *recorder) Disable() {
	r.calls = append(r.calls, "disable")
}

func (r *recorder) Sleep(d time.Duration) {
	r.calls = append(r.calls, "sleep "+d.String())
}

func TestBeepSequence(t *testing.T) {
	r := &recorder{}
	if err := New(r, r).Beep(); err != nil {
		t.Fatal(err)
	}

	expected := []string{"configure", "duty", "sleep 100ms", "duty", "disable"}
	if !reflect.DeepEqual(r.calls, expected) {
		t.Fatalf("got %v, expected %v", r.calls, expected)
	}
	if r.frequency != Frequency {
		t.Fatalf("frequency: got %d", r.frequency)
	}
	if r.duty != 0 {
		t.Fatalf("channel left at duty %d", r.duty)
	}
}

func TestBeepConfigureFailureSkipsTone(t *testing.T) {
	r := &recorder{configureErr: errors.New("no slice")}
	err := New(r, r).Beep()
	if !errors.Is(err, r.configureErr) {
		t.Fatalf("got %v", err)
	}
	if len(r.calls) != 1 {
		t.Fatalf("tone should not play: %v", r.calls)
	}
}

func TestBeepWithoutChannel(t *testing.T) {
	if err := New(nil, hal.SleepFunc(func(time.Duration) {})).Beep(); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestSquareWave(t *testing.T) {
	// 8 samples per period, high for half of it
	samples := SquareWave(8000, 1000, 32767, 0, 16)
	for i, s := range samples {
		want := int16(-Amplitude)
		if i%8 < 4 {
			want = Amplitude
		}
		if s != want {
			t.Fatalf("sample %d: got %d, expected %d", i, s, want)
		}
	}

	for _, s := range SquareWave(8000, 1000, 0, 0, 8) {
		if s != 0 {
			t.Fatalf("zero duty should be silent")
		}
	}
}

func TestEncodePCM16(t *testing.T) {
	buf := EncodePCM16([]int16{1, -1}, 2)
	expected := []byte{0x01, 0x00, 0x01, 0x00, 0xff, 0xff, 0xff, 0xff}
	if !reflect.DeepEqual(buf, expected) {
		t.Fatalf("got %x, expected %x", buf, expected)
	}
}
