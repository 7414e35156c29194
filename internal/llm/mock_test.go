package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ScriptInOrder(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"question":"What is given?"}`)},
		MockResponse{Content: json.RawMessage(`{"question":"What are you asked?"}`)},
	)

	first, err := m.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	if string(first.Content) != `{"question":"What is given?"}` {
		t.Errorf("first reply = %s", first.Content)
	}

	second, err := m.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if string(second.Content) != `{"question":"What are you asked?"}` {
		t.Errorf("second reply = %s", second.Content)
	}
}

func TestMockProvider_ExhaustedScriptReadsAsUnavailable(t *testing.T) {
	m := NewMockProvider()
	_, err := m.Generate(context.Background(), Request{})
	var unavailable *ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
	if m.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", m.CallCount())
	}
}

func TestMockProvider_GenerateFuncOverridesScript(t *testing.T) {
	m := NewMockProvider(MockResponse{Content: json.RawMessage(`{"ignored":true}`)})
	m.GenerateFunc = func(req Request) (*Response, error) {
		return &Response{Content: json.RawMessage(`{"question":"` + req.System + `?"}`)}, nil
	}

	resp, err := m.Generate(context.Background(), Request{System: "why"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"question":"why?"}` {
		t.Errorf("computed reply = %s", resp.Content)
	}
	if len(m.Calls) != 1 {
		t.Errorf("recorded calls = %d, want 1", len(m.Calls))
	}
}
