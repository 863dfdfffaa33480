package mocks

import (
	"context"
	"sync"

	"github.com/user/reframe/pkg/ports"
)

// Advisor is a mock implementation of ports.Advisor.
// Without AdviseFunc it answers every request with "advice for <name>".
type Advisor struct {
	AdviseFunc func(ctx context.Context, req ports.AdviceRequest) ports.Advice

	mu       sync.Mutex
	Requests []ports.AdviceRequest
}

func (m *Advisor) Advise(ctx context.Context, req ports.AdviceRequest) ports.Advice {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()
	if m.AdviseFunc != nil {
		return m.AdviseFunc(ctx, req)
	}
	return ports.Advice{
		ImageName: req.ImageName,
		Text:      "advice for " + req.ImageName,
		Status:    ports.AdviceOK,
	}
}

var _ ports.Advisor = (*Advisor)(nil)
