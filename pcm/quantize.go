package pcm

// Float32ToInt8 scales a normalized sample to signed 8-bit PCM,
// truncating toward zero. There is deliberately no clamp: the synthesis
// core divides every note amplitude by its polyphony cap, which keeps
// the mixed sum nominally within [-1, 1].
func Float32ToInt8(x float32) int8 {
	return int8(x * 127.0)
}
