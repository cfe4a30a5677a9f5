package parse

import (
	"errors"
	"strings"
	"testing"
)

func TestParseCommaSeparated(t *testing.T) {
	values, f, err := Parse("1,0,0,4\n0,0,1,0\n0,1,0,0\n4,0,0,1\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Delimiter != Comma {
		t.Fatalf("delimiter = %v, want comma", f.Delimiter)
	}
	if len(values) != 4 || len(values[0]) != 4 {
		t.Fatalf("shape %dx%d, want 4x4", len(values), len(values[0]))
	}
	if values[0][0] != 1 || values[0][3] != 4 || values[3][0] != 4 {
		t.Fatalf("values wrong: %v", values)
	}
}

func TestParseTabSeparated(t *testing.T) {
	values, f, err := Parse("1\t0\n0\t1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Delimiter != Tab {
		t.Fatalf("delimiter = %v, want tab", f.Delimiter)
	}
	if values[1][1] != 1 {
		t.Fatalf("values wrong: %v", values)
	}
}

func TestParseTabWinsOverComma(t *testing.T) {
	// A tab anywhere selects tab splitting, matching the sniffing order.
	_, f, err := Parse("1\t2\n3\t4")
	if err != nil || f.Delimiter != Tab {
		t.Fatalf("delimiter = %v err = %v, want tab", f.Delimiter, err)
	}
}

func TestParseUndelimited(t *testing.T) {
	values, f, err := Parse("1004\n0010\n0100\n4001")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Delimiter != None {
		t.Fatalf("delimiter = %v, want none", f.Delimiter)
	}
	if values[0][3] != 4 || values[1][2] != 1 {
		t.Fatalf("values wrong: %v", values)
	}
}

func TestParseBlankMeansUnknown(t *testing.T) {
	values, _, err := Parse("1,,3,4\n,,,\n.,1,,\n4,,,1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if values[0][1] != 0 || values[1][0] != 0 || values[2][0] != 0 {
		t.Fatalf("blanks should parse as 0: %v", values)
	}
	if values[0][2] != 3 {
		t.Fatalf("values wrong: %v", values)
	}
}

func TestParseSurroundingWhitespace(t *testing.T) {
	values, _, err := Parse("\n 1, 2\n 2, 1 \n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(values) != 2 || values[0][1] != 2 {
		t.Fatalf("values wrong: %v", values)
	}
}

func TestParseMalformed(t *testing.T) {
	for _, input := range []string{"", "1,x\n2,1", "a9\n91"} {
		if _, _, err := Parse(input); !errors.Is(err, ErrMalformed) {
			t.Errorf("Parse(%q) err = %v, want ErrMalformed", input, err)
		}
	}
}

func TestParseFileStdin(t *testing.T) {
	values, f, err := ParseFile("-", strings.NewReader("1,2\n2,1"))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if f.Delimiter != Comma || values[1][0] != 2 {
		t.Fatalf("values wrong: %v", values)
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, _, err := ParseFile("no/such/file", nil); !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}
