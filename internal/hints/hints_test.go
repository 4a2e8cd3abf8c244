package hints

// ForBrowserConnect cases run sequentially: they set process environment
// variables and swap IsInContainer.

import (
	"strings"
	"testing"
)

func TestForBrowserConnect(t *testing.T) {
	tests := []struct {
		name        string
		container   bool
		ci          string
		noSandbox   string
		browserBin  string
		wantSandbox bool
		wantBin     bool
	}{
		{name: "ci without settings", ci: "true", wantSandbox: true, wantBin: true},
		{name: "docker without settings", container: true, wantSandbox: true, wantBin: true},
		{name: "sandbox already disabled", container: true, noSandbox: "1", wantBin: true},
		{name: "browser bin set on workstation", browserBin: "/usr/bin/chromium"},
		{name: "all configured in docker", container: true, ci: "true", noSandbox: "1", browserBin: "/usr/bin/chromium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := IsInContainer
			t.Cleanup(func() { IsInContainer = orig })
			IsInContainer = func() bool { return tt.container }

			t.Setenv("CI", tt.ci)
			t.Setenv("GITHUB_ACTIONS", "")
			t.Setenv("GITLAB_CI", "")
			t.Setenv("JENKINS_URL", "")
			t.Setenv("ROD_NO_SANDBOX", tt.noSandbox)
			t.Setenv("ROD_BROWSER_BIN", tt.browserBin)

			hint := ForBrowserConnect()

			if got := strings.Contains(hint, "ROD_NO_SANDBOX"); got != tt.wantSandbox {
				t.Errorf("sandbox hint = %v, want %v (hint %q)", got, tt.wantSandbox, hint)
			}
			if got := strings.Contains(hint, "ROD_BROWSER_BIN"); got != tt.wantBin {
				t.Errorf("browser bin hint = %v, want %v (hint %q)", got, tt.wantBin, hint)
			}
			if !tt.wantSandbox && !tt.wantBin && hint != "" {
				t.Errorf("expected empty hint, got %q", hint)
			}
		})
	}
}

func TestForTimeout(t *testing.T) {
	hint := ForTimeout()

	if !strings.Contains(hint, "hint:") {
		t.Error("expected hint prefix")
	}
	if !strings.Contains(hint, "--timeout") {
		t.Error("expected --timeout flag mention")
	}
	if !strings.Contains(hint, "Chrome") {
		t.Error("expected Chrome mention")
	}
}

func TestForConfigNotFound(t *testing.T) {
	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{name: "empty paths", paths: []string{}, contains: "--config"},
		{
			name:     "suggests user config",
			paths:    []string{"./brandprint.yaml", "/home/u/.config/brandprint/brandprint.yaml"},
			contains: "create /home/u/.config/brandprint/brandprint.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := ForConfigNotFound(tt.paths)

			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestForUnknownAssetAndTemplate(t *testing.T) {
	tests := []struct {
		name      string
		fn        func([]string) string
		available []string
		want      string
	}{
		{name: "no assets", fn: ForUnknownAsset, available: nil, want: ""},
		{name: "assets", fn: ForUnknownAsset, available: []string{"business-card", "envelope"}, want: "\n  hint: available: business-card, envelope"},
		{name: "templates", fn: ForUnknownTemplate, available: []string{"light", "dark-es"}, want: "\n  hint: available: light, dark-es"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.available); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestForMissingFields(t *testing.T) {
	if got := ForMissingFields(nil); got != "" {
		t.Errorf("expected empty hint, got %q", got)
	}
	got := ForMissingFields([]string{"name", "email"})
	if !strings.Contains(got, "name, email") || !strings.Contains(got, "--field") {
		t.Errorf("unexpected hint %q", got)
	}
}

func TestFormat_Consistency(t *testing.T) {
	hints := []string{
		ForTimeout(),
		ForOutputDirectory(),
		ForMarkImage(),
		ForMissingFields([]string{"name"}),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}
