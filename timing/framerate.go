package timing

import (
	"log"
	"time"
)

// FrameRate defines how often a frame boundary occurs, in frames per second.
type FrameRate float64

// DefaultFrameRate matches the common display refresh rate.
const DefaultFrameRate FrameRate = 60

// Interval returns the time between two consecutive frame boundaries.
func (f FrameRate) Interval() time.Duration {
	if f <= 0 {
		log.Panic("frame rate must be positive")
	}
	return time.Duration(float64(time.Second) / float64(f))
}

// ThisFrame returns the first frame boundary at or after now.
//
//	          Input
//	          (         ]
//	|---------|---------|---------|----->
//	                    |
//	                    Output
func (f FrameRate) ThisFrame(now VTime) VTime {
	interval := f.Interval()
	count := (now + interval - 1) / interval
	return count * interval
}

// NextFrame returns the first frame boundary strictly after now.
//
//	          Input
//	          [         )
//	|---------|---------|---------|----->
//	                    |
//	                    Output
func (f FrameRate) NextFrame(now VTime) VTime {
	interval := f.Interval()
	count := now/interval + 1
	return count * interval
}
