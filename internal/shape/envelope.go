package shape

// Envelope is the normalized result of one upstream API call, and the
// input contract of the shaping pipeline. Exactly one of Data and Err is
// meaningfully populated; Status always mirrors the upstream HTTP status,
// or a synthesized 500 on transport failure.
type Envelope struct {
	Data   any
	Err    string
	Status int
}

// IsError reports whether the envelope carries a failure.
func (e Envelope) IsError() bool {
	return e.Err != ""
}
