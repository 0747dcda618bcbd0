package otree

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "config/usb/enabled", []string{"config", "usb", "enabled"}},
		{"single key", "config", []string{"config"}},
		{"empty", "", nil},
		{"leading separator", "/config/usb", []string{"config", "usb"}},
		{"trailing separator", "config/usb/", []string{"config", "usb"}},
		{"doubled separator", "config//usb", []string{"config", "usb"}},
		{"only separators", "///", nil},
		{"trailing nul stripped", "config/usb\x00", []string{"config", "usb"}},
		{"nul only segment dropped", "config/\x00", []string{"config"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.in).Keys()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q).Keys() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSep(t *testing.T) {
	p := ParseSep("editor.tab.size", '.')
	want := []string{"editor", "tab", "size"}
	if !reflect.DeepEqual(p.Keys(), want) {
		t.Errorf("ParseSep keys = %v, want %v", p.Keys(), want)
	}
	if got := p.String(); got != "editor.tab.size" {
		t.Errorf("String() = %q, want %q", got, "editor.tab.size")
	}
}

func TestPath_RoundTrip(t *testing.T) {
	inputs := []string{
		"config",
		"config/usb/enabled",
		"a/b/c/d/e",
	}
	for _, in := range inputs {
		if got := Parse(in).String(); got != in {
			t.Errorf("Parse(%q).String() = %q", in, got)
		}
	}
}

func TestPath_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Path
		want bool
	}{
		{"equal", Parse("a/b/c"), Parse("a/b/c"), true},
		{"different separators", Parse("a/b/c"), ParseSep("a.b.c", '.'), true},
		{"prefix is not equal", Parse("a/b"), Parse("a/b/c"), false},
		{"different key", Parse("a/b/c"), Parse("a/x/c"), false},
		{"both empty", Path{}, Parse(""), true},
		{"parsed vs constructed", Parse("a/b"), NewPath("a", "b"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPath_Append(t *testing.T) {
	base := Parse("config/usb")
	extended := base.Append("enabled")

	if got := extended.String(); got != "config/usb/enabled" {
		t.Errorf("Append result = %q, want %q", got, "config/usb/enabled")
	}
	if got := base.String(); got != "config/usb" {
		t.Errorf("Append mutated receiver: %q", got)
	}
}

func TestPath_Join(t *testing.T) {
	joined := Parse("config").Join(Parse("usb/enabled"))
	if !joined.Equal(Parse("config/usb/enabled")) {
		t.Errorf("Join = %q", joined.String())
	}

	// Joining the empty path on either side is identity.
	if got := Parse("a/b").Join(Path{}); !got.Equal(Parse("a/b")) {
		t.Errorf("Join with empty = %q", got.String())
	}
	if got := (Path{}).Join(Parse("a/b")); !got.Equal(Parse("a/b")) {
		t.Errorf("empty Join = %q", got.String())
	}
}

func TestNewPath_CopiesInput(t *testing.T) {
	keys := []string{"a", "b"}
	p := NewPath(keys...)
	keys[0] = "mutated"

	if p.At(0) != "a" {
		t.Errorf("NewPath shares caller slice: got %q", p.At(0))
	}
}

func TestPath_Keys_Copy(t *testing.T) {
	p := Parse("a/b")
	keys := p.Keys()
	keys[0] = "mutated"

	if p.At(0) != "a" {
		t.Error("Keys() exposed internal storage")
	}
}

func TestPath_StringSep(t *testing.T) {
	p := Parse("a/b/c")
	if got := p.StringSep('.'); got != "a.b.c" {
		t.Errorf("StringSep('.') = %q", got)
	}
}

func TestPath_ZeroValue(t *testing.T) {
	var p Path
	if !p.IsEmpty() {
		t.Error("zero path should be empty")
	}
	if got := p.String(); got != "" {
		t.Errorf("zero path String() = %q", got)
	}
	if got := p.Append("key").String(); got != "key" {
		t.Errorf("Append on zero path = %q", got)
	}
}
