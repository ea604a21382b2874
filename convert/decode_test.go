package convert

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

func TestDecodeReader(t *testing.T) {
	const text = "<p>\nПривет, мир\n</p>\n"

	cp1251, err := charmap.Windows1251.NewEncoder().String(text)
	if err != nil {
		t.Fatal(err)
	}
	// non-ASCII text appears only after the detection sample
	late := "<html>\n<body>\n" + strings.Repeat("plain ascii line\n", 80) + "café\n</body>\n</html>\n"
	lateMeta := `<meta charset="windows-1251">` + "\n" + strings.Repeat("plain ascii line\n", 80) + cp1251

	tests := []struct {
		name string
		data string
		enc  srcEncoding
		cp   encoding.Encoding
		want string
	}{
		{name: "utf-8 detected", data: text, want: text},
		{name: "forced code page", data: cp1251, cp: charmap.Windows1251, want: text},
		{name: "bom wins over code page", data: "\xEF\xBB\xBF" + text, enc: encUTF8, cp: charmap.Windows1251, want: text},
		{name: "meta charset", data: `<meta charset="windows-1251">` + "\n" + cp1251, want: `<meta charset="windows-1251">` + "\n" + text},
		{name: "late utf-8", data: late, want: late},
		{name: "late code page with meta", data: lateMeta, want: `<meta charset="windows-1251">` + "\n" + strings.Repeat("plain ascii line\n", 80) + text},
		{name: "ascii only", data: "<p>\nplain\n</p>\n", want: "<p>\nplain\n</p>\n"},
		{name: "empty", data: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
			r, err := decodeReader(bytes.NewReader([]byte(tt.data)), tt.enc, tt.cp, log)
			if err != nil {
				t.Fatalf("decodeReader() error = %v", err)
			}
			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("decoded %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookupEncoding(t *testing.T) {
	enc, err := lookupEncoding("")
	if err != nil || enc != nil {
		t.Errorf("lookupEncoding(\"\") = %v, %v; want nil, nil", enc, err)
	}

	enc, err = lookupEncoding("windows-1251")
	if err != nil {
		t.Fatalf("lookupEncoding(windows-1251) error = %v", err)
	}
	if name := encodingName(enc); name != "windows-1251" {
		t.Errorf("encodingName() = %q, want windows-1251", name)
	}

	if _, err := lookupEncoding("no-such-charset"); err == nil {
		t.Error("Expected error for unknown character set")
	}
}
