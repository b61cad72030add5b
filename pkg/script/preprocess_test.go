package script

import "testing"

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "keyword",
			input:  `(select :alpha)`,
			expect: `(select "__kw_alpha")`,
		},
		{
			name:   "hyphenated keyword keeps its hyphen",
			input:  `(select :input-format)`,
			expect: `(select "__kw_input-format")`,
		},
		{
			name:   "kebab-case builtin",
			input:  `(expect-notify "")`,
			expect: `(expect_notify "")`,
		},
		{
			name:   "string contents untouched",
			input:  `(click "Red + ColorPreview::HalfAlpha :half-alpha")`,
			expect: `(click "Red + ColorPreview::HalfAlpha :half-alpha")`,
		},
		{
			name:   "minus operator preserved",
			input:  `(- 10 5)`,
			expect: `(- 10 5)`,
		},
		{
			name:   "comments",
			input:  ";; pick :alpha\n(frames)",
			expect: "// pick :alpha\n(frames)",
		},
		{
			name:   "escaped quote inside string",
			input:  `(click "say \"hi\" :x")`,
			expect: `(click "say \"hi\" :x")`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocessSource(tt.input)
			if got != tt.expect {
				t.Errorf("preprocessSource(%q)\n  got:  %q\n  want: %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestParseZygomysError(t *testing.T) {
	errs := parseZygomysError(errString("Error on line 3: unexpected end of input"))
	if len(errs) != 1 || errs[0].Line != 3 || errs[0].Message != "unexpected end of input" {
		t.Errorf("unexpected parse: %+v", errs)
	}

	errs = parseZygomysError(errString("something odd"))
	if errs[0].Line != 0 || errs[0].Message != "something odd" {
		t.Errorf("unexpected parse: %+v", errs)
	}
}

type errString string

func (e errString) Error() string { return string(e) }
