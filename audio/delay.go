package audio

// FeedbackDelay is a fixed-length delay line with a feedback path.  The
// feedback amount is a SmoothParam target so the gesture modulator and the
// render loop can both touch it without locking.
type FeedbackDelay struct {
	buf      []float64
	i        int
	Feedback *SmoothParam
}

func NewFeedbackDelay(delayTime, sampleRate float64) *FeedbackDelay {
	n := int(delayTime * sampleRate)
	if n < 1 {
		n = 1
	}
	d := &FeedbackDelay{buf: make([]float64, n)}
	d.Feedback = NewSmoothParam(.35, .25, sampleRate)
	return d
}

func (d *FeedbackDelay) Process(x float64) float64 {
	fb := clamp(d.Feedback.Sing(), 0, .95)
	y := d.buf[d.i]
	d.buf[d.i] = x + y*fb
	d.i = (d.i + 1) % len(d.buf)
	return y
}
