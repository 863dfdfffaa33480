package advise

import (
	"context"
	"errors"
	"testing"

	"github.com/user/reframe/pkg/adapters/logger"
	"github.com/user/reframe/pkg/mocks"
	"github.com/user/reframe/pkg/pipeline"
	"github.com/user/reframe/pkg/ports"
)

func testInput() pipeline.AdviseInput {
	return pipeline.AdviseInput{
		Images: []pipeline.NamedImage{
			{Name: "a.jpg", Data: []byte{1}, Format: "jpeg"},
			{Name: "b.png", Data: []byte{2}, Format: "png"},
		},
		Layouts: []pipeline.TargetLayout{
			{Label: "Feed (1:1)", Width: 1080, Height: 1080},
			{Label: "Landscape (1.91:1)", Width: 1200, Height: 628},
		},
	}
}

func TestStage_Execute(t *testing.T) {
	advisor := &mocks.Advisor{}
	sink := mocks.NewDebugSink(true)
	stage := NewStage(advisor, sink, logger.NewNoop())

	result, err := stage.Execute(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Advice) != 2 {
		t.Fatalf("expected 2 advice, got %d", len(result.Advice))
	}
	if result.Advice[0].ImageName != "a.jpg" || result.Advice[1].ImageName != "b.png" {
		t.Errorf("advice out of order: %+v", result.Advice)
	}

	req := advisor.Requests[0]
	if req.MIMEType != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", req.MIMEType)
	}
	if len(req.Layouts) != 2 || req.Layouts[0] != "Feed (1:1) 1080x1080" {
		t.Errorf("unexpected layouts %v", req.Layouts)
	}
	if advisor.Requests[1].MIMEType != "image/png" {
		t.Errorf("expected image/png, got %s", advisor.Requests[1].MIMEType)
	}

	if sink.Advice["b.png"] != "advice for b.png" {
		t.Errorf("expected advice saved to sink, got %v", sink.Advice)
	}
}

func TestStage_Execute_FailuresAreData(t *testing.T) {
	advisor := &mocks.Advisor{
		AdviseFunc: func(ctx context.Context, req ports.AdviceRequest) ports.Advice {
			if req.ImageName == "a.jpg" {
				return ports.Advice{Status: ports.AdviceRateLimited, Text: "quota"}
			}
			return ports.Advice{Status: ports.AdviceFailed, Text: "boom"}
		},
	}
	sink := mocks.NewDebugSink(true)
	stage := NewStage(advisor, sink, logger.NewNoop())

	result, err := stage.Execute(context.Background(), testInput())
	if err != nil {
		t.Fatalf("collaborator failures must not become errors: %v", err)
	}

	if result.Advice[0].Status != ports.AdviceRateLimited {
		t.Errorf("expected rate limited, got %s", result.Advice[0].Status)
	}
	if result.Advice[1].Status != ports.AdviceFailed || result.Advice[1].Text != "boom" {
		t.Errorf("unexpected advice %+v", result.Advice[1])
	}
	if result.Advice[0].ImageName != "a.jpg" {
		t.Errorf("expected image name to be filled in, got %q", result.Advice[0].ImageName)
	}
	if len(sink.Advice) != 0 {
		t.Error("failed advice must not be saved")
	}
}

func TestStage_Execute_CancelledContext(t *testing.T) {
	advisor := &mocks.Advisor{}
	stage := NewStage(advisor, mocks.NewDebugSink(false), logger.NewNoop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stage.Execute(ctx, testInput())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(advisor.Requests) != 0 {
		t.Error("expected no requests after cancellation")
	}
}

func TestMIMEType(t *testing.T) {
	tests := map[string]string{
		"jpeg": "image/jpeg",
		"png":  "image/png",
		"webp": "image/webp",
		"":     "application/octet-stream",
		"heic": "application/octet-stream",
	}
	for format, expected := range tests {
		if got := MIMEType(format); got != expected {
			t.Errorf("MIMEType(%q) = %q, want %q", format, got, expected)
		}
	}
}
