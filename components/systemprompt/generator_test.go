package systemprompt

import (
	"strings"
	"testing"
)

type staticProvider struct {
	title string
	info  string
}

func (p staticProvider) Title() string { return p.title }
func (p staticProvider) Info() string  { return p.info }

func TestGenerateSections(t *testing.T) {
	gen := New(
		WithBackground([]string{"- You plan trips."}),
		WithSteps([]string{"- Call tools."}),
		WithOutputInstructs([]string{"- Produce an itinerary."}),
	)
	prompt := gen.Generate()
	for _, section := range []string{"# IDENTITY and PURPOSE", "# INTERNAL ASSISTANT STEPS", "# OUTPUT INSTRUCTIONS"} {
		if !strings.Contains(prompt, section) {
			t.Errorf("prompt missing %q:\n%s", section, prompt)
		}
	}
	if strings.Contains(prompt, "# EXTRA INFORMATION AND CONTEXT") {
		t.Error("context section should be absent without providers")
	}
}

func TestGenerateDefaultBackground(t *testing.T) {
	prompt := New().Generate()
	if !strings.Contains(prompt, "helpful and friendly AI assistant") {
		t.Errorf("missing default background:\n%s", prompt)
	}
}

func TestContextProviders(t *testing.T) {
	gen := New(WithContextProviders(staticProvider{"Cities", "Goa, Delhi"}))
	if _, err := gen.ContextProvider("Cities"); err != nil {
		t.Fatal(err)
	}
	if _, err := gen.ContextProvider("Missing"); err == nil {
		t.Error("unknown provider lookup should fail")
	}

	prompt := gen.Generate()
	if !strings.Contains(prompt, "## Cities") || !strings.Contains(prompt, "Goa, Delhi") {
		t.Errorf("prompt missing provider block:\n%s", prompt)
	}

	gen.AddContextProviders(staticProvider{"Cities", "duplicate"})
	if got, _ := gen.ContextProvider("Cities"); got.Info() != "Goa, Delhi" {
		t.Error("duplicate titles should be skipped")
	}

	gen.RemoveContextProviders("Cities")
	if _, err := gen.ContextProvider("Cities"); err == nil {
		t.Error("removed provider should not resolve")
	}
}
