package ports

import "context"

// AdviceStatus classifies an advice response.
type AdviceStatus int

const (
	// AdviceOK means Text holds the model's suggestion.
	AdviceOK AdviceStatus = iota
	// AdviceRateLimited means the service refused the request for quota reasons.
	AdviceRateLimited
	// AdviceFailed means the request failed; Text holds the reason.
	AdviceFailed
)

// String returns the status name.
func (s AdviceStatus) String() string {
	switch s {
	case AdviceOK:
		return "ok"
	case AdviceRateLimited:
		return "rate_limited"
	case AdviceFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// AdviceRequest asks for background-extension advice for one image.
type AdviceRequest struct {
	ImageName string
	ImageData []byte
	MIMEType  string
	Layouts   []string // Display labels with sizes, e.g. "Feed (1:1) 1080x1080"
}

// Advice is the collaborator's answer. Failures are reported through Status,
// never as an error, so that rendering never depends on the service.
type Advice struct {
	ImageName string
	Text      string
	Status    AdviceStatus
}

// Advisor is an external generative service suggesting how to extend an image's background.
type Advisor interface {
	Advise(ctx context.Context, req AdviceRequest) Advice
}
