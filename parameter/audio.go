package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive plays of the same sound
	MinSoundGap = 50 * time.Millisecond
)

// Bounce: short low thump
const (
	BounceFreq     = 110.0
	BounceDuration = 90 * time.Millisecond
	BounceVolume   = 0.45
)

// Swish: filtered noise burst for a made basket
const (
	SwishDuration = 220 * time.Millisecond
	SwishVolume   = 0.25
)

// Buzzer: square wave end-of-match horn
const (
	BuzzerFreq     = 220.0
	BuzzerDuration = 900 * time.Millisecond
	BuzzerVolume   = 0.2
)

// Envelope shaping shared by all effects
const (
	SoundAttack  = 5 * time.Millisecond
	SoundRelease = 40 * time.Millisecond
)
