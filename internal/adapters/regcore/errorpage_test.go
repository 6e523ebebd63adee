package regcore

import "testing"

func TestParseErrorPage(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantTitle  string
		wantDetail string
		wantOK     bool
	}{
		{
			name: "django debug page",
			body: `<html><body>
				<div id="summary">
					<h1>ValueError at /diff/1026/a/b</h1>
					<pre class="exception_value">unknown version</pre>
				</div>
			</body></html>`,
			wantTitle:  "ValueError at /diff/1026/a/b",
			wantDetail: "unknown version",
			wantOK:     true,
		},
		{
			name:       "exception value with extra classes",
			body:       `<div id="summary"><h1>Boom</h1><td class="code exception_value">oops</td></div>`,
			wantTitle:  "Boom",
			wantDetail: "oops",
			wantOK:     true,
		},
		{
			name:   "summary without exception value",
			body:   `<div id="summary"><h1>Boom</h1></div>`,
			wantOK: false,
		},
		{
			name:   "no summary block",
			body:   `<html><body><h1>404 Not Found</h1></body></html>`,
			wantOK: false,
		},
		{
			name:   "plain text",
			body:   "gone\n",
			wantOK: false,
		},
		{
			name:   "empty body",
			body:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, detail, ok := parseErrorPage([]byte(tt.body))

			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
			if detail != tt.wantDetail {
				t.Errorf("detail = %q, want %q", detail, tt.wantDetail)
			}
		})
	}
}
