package convert

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// decodeReader returns UTF-8 reader for the document. Byte order mark wins,
// then forced code page if any. Without either, valid UTF-8 content is taken
// as is and only other content is guessed.
func decodeReader(r io.Reader, enc srcEncoding, cp encoding.Encoding, log *zap.Logger) (io.Reader, error) {
	if enc != encUnknown {
		return selectReader(r, enc), nil
	}
	if cp != nil {
		return transform.NewReader(r, cp.NewDecoder()), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to detect document encoding: %w", err)
	}
	// DetermineEncoding only samples the head and reports windows-1252 for
	// plain ASCII, so check the whole document first.
	if utf8.Valid(data) {
		log.Debug("Document encoding detected", zap.String("charset", "utf-8"), zap.Bool("certain", true))
		return bytes.NewReader(data), nil
	}
	e, name, certain := charset.DetermineEncoding(data, "text/plain")
	log.Debug("Document encoding detected", zap.String("charset", name), zap.Bool("certain", certain))
	return transform.NewReader(bytes.NewReader(data), e.NewDecoder()), nil
}

// lookupEncoding resolves IANA character set name, empty name means none.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if len(name) == 0 {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown character set %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("character set %q is not supported", name)
	}
	return enc, nil
}

func encodingName(enc encoding.Encoding) string {
	if n, err := ianaindex.IANA.Name(enc); err == nil {
		return n
	}
	return "unknown"
}
