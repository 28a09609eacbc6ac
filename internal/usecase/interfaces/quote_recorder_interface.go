package interfaces

// IQuoteRecorder receives the outcome of every quote calculation (metrics sink).
type IQuoteRecorder interface {
	ObserveQuote(lineItems int, total float64)
	IncFailure(reason string)
}
