package scene

// Visibility fingerprinting. The fingerprint summarizes the current set of
// visible drawables in live-list order so that per-frame visibility toggles
// that net out to no change can skip the O(n) visible bounding sphere
// recompute. The zero value is reserved for "never computed".

const fingerprintSeed uint32 = 23

// fingerprintFold folds one visible identity into the running accumulator.
// Both 32-bit halves of the identity participate so ids differing only in
// their high words still perturb the hash.
func fingerprintFold(h uint32, id uint64) uint32 {
	return 31*h + uint32(id^(id>>32))
}

// fingerprintFinish applies an avalanche mix so near-identical visible sets
// produce well-spread fingerprints, then remaps the reserved sentinel 0 to 1
// so a legitimate output never collides with "never computed".
func fingerprintFinish(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	if h == 0 {
		h = 1
	}
	return h
}
