package buzzer

import "encoding/binary"

// Amplitude of the synthesised square wave
const Amplitude = 0x2000

// SquareWave returns n mono PCM16 samples of a square wave at frequency Hz
// whose high phase lasts duty/65535 of every period, starting at sample
// offset phase. A zero duty or frequency yields silence.
func SquareWave(sampleRate, frequency int, duty uint16, phase, n int) []int16 {
	samples := make([]int16, n)
	if duty == 0 || frequency <= 0 || sampleRate <= 0 {
		return samples
	}

	period := float64(sampleRate) / float64(frequency)
	high := period * float64(duty) / 65535

	for i := range samples {
		pos := float64(phase+i) - period*float64(int(float64(phase+i)/period))
		if pos < high {
			samples[i] = Amplitude
		} else {
			samples[i] = -Amplitude
		}
	}
	return samples
}

// EncodePCM16 writes samples as signed 16-bit little endian, repeating each
// sample once per channel.
func EncodePCM16(samples []int16, channels int) []byte {
	if channels < 1 {
		channels = 1
	}
	buf := make([]byte, len(samples)*2*channels)
	off := 0
	for _, s := range samples {
		for c := 0; c < channels; c++ {
			binary.LittleEndian.PutUint16(buf[off:], uint16(s))
			off += 2
		}
	}
	return buf
}
